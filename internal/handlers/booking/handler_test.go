package booking_test

import (
	otelMocks "airbnc/infras/otel/mocks"
	"airbnc/internal/domains/booking/mocks"
	"airbnc/internal/domains/booking/model/dto"
	"airbnc/internal/handlers/booking"
	"airbnc/shared/constant"
	"airbnc/shared/failure"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (http.Handler, *mocks.MockBookingService) {
	t.Helper()

	svc := mocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	msg, _ := body["msg"].(string)

	return msg
}

func TestCreateBooking(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Create(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
		assert.Equal(t, "2024-01-15", *req.CheckInDate)

		return dto.CreateBookingResponse{Msg: constant.MessageBookingSuccessful, BookingID: 42}, nil
	})

	rec := serve(router, http.MethodPost, "/properties/3/bookings", `{"guest_id": 2, "check_in_date": "2024-01-15", "check_out_date": "2024-01-20"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"msg":"Booking successful","booking_id":42}`, rec.Body.String())
}

func TestCreateBooking_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "missing fields", err: failure.BadRequestFromString(constant.MessageMissingFields), code: http.StatusBadRequest},
		{name: "unknown guest", err: failure.NotFound(constant.MessageUserNotFound), code: http.StatusNotFound},
		{name: "clash", err: failure.BadRequestFromString(constant.MessageBookingClash), code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setup(t)

			svc.EXPECT().Create(gomock.Any(), int64(3), gomock.Any()).Return(dto.CreateBookingResponse{}, tt.err)

			rec := serve(router, http.MethodPost, "/properties/3/bookings", `{}`)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.err.Error(), message(t, rec))
		})
	}
}

func TestCreateBooking_BadInput(t *testing.T) {
	router, _ := setup(t)

	rec := serve(router, http.MethodPost, "/properties/abc/bookings", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid property ID", message(t, rec))

	rec = serve(router, http.MethodPost, "/properties/3/bookings", `{"guest_id": "two"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPropertyBookings(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().GetByProperty(gomock.Any(), int64(3)).Return(dto.GetPropertyBookingsResponse{
		PropertyID: 3,
		Bookings:   []dto.PropertyBookingResponse{{BookingID: 1, CheckInDate: "2024-01-10", CheckOutDate: "2024-01-15", CreatedAt: "2024-01-01T09:00:00Z"}},
	}, nil)

	rec := serve(router, http.MethodGet, "/properties/3/bookings", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"property_id":3,"bookings":[{"booking_id":1,"check_in_date":"2024-01-10","check_out_date":"2024-01-15","created_at":"2024-01-01T09:00:00Z"}]}`, rec.Body.String())
}

func TestGetUserBookings(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, svc := setup(t)

		svc.EXPECT().GetByUser(gomock.Any(), int64(2)).Return(dto.GetUserBookingsResponse{Bookings: []dto.UserBookingResponse{}}, nil)

		rec := serve(router, http.MethodGet, "/users/2/bookings", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		router, svc := setup(t)

		svc.EXPECT().GetByUser(gomock.Any(), int64(1000)).Return(dto.GetUserBookingsResponse{}, failure.NotFound(constant.MessageUserNotFound))

		rec := serve(router, http.MethodGet, "/users/1000/bookings", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", message(t, rec))
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _ := setup(t)

		rec := serve(router, http.MethodGet, "/users/abc/bookings", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid user ID", message(t, rec))
	})
}
