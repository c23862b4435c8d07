package response_test

import (
	"airbnc/shared/failure"
	"airbnc/transport/http/response"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "bad request",
			err:      failure.BadRequestFromString("Invalid property ID"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"msg":"Invalid property ID"}`,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("get property: %w", failure.NotFound("Property not found")),
			wantCode: http.StatusNotFound,
			wantBody: `{"msg":"Property not found"}`,
		},
		{
			name:     "wrapped booking clash",
			err:      fmt.Errorf("create booking: %w", failure.BadRequestFromString("Booking dates clash with an existing booking")),
			wantCode: http.StatusBadRequest,
			wantBody: `{"msg":"Booking dates clash with an existing booking"}`,
		},
		{
			name:     "internal errors are masked",
			err:      errors.New(`pq: relation "users" does not exist`),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"msg":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON_Unwrapped(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]any{"properties": []int{}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"properties":[]}`, rec.Body.String())
}

func TestWithNoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDefaultResponses(t *testing.T) {
	tests := []struct {
		name     string
		write    func(http.ResponseWriter)
		wantCode int
		wantMsg  string
	}{
		{name: "path not found", write: response.WithPathNotFound, wantCode: http.StatusNotFound, wantMsg: "Path not found"},
		{name: "method not allowed", write: response.WithMethodNotAllowed, wantCode: http.StatusMethodNotAllowed, wantMsg: "Method not allowed"},
		{name: "rate limited", write: response.WithRequestLimitExceeded, wantCode: http.StatusTooManyRequests, wantMsg: "REQUEST LIMIT EXCEEDED"},
		{name: "shutdown", write: response.WithPreparingShutdown, wantCode: http.StatusServiceUnavailable, wantMsg: "SERVER PREPARING TO SHUT DOWN"},
		{name: "unhealthy", write: response.WithUnhealthy, wantCode: http.StatusServiceUnavailable, wantMsg: "SERVICE UNHEALTHY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tt.write(rec)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, `{"msg":"`+tt.wantMsg+`"}`, rec.Body.String())
		})
	}
}
