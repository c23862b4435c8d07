package user_test

import (
	otelMocks "airbnc/infras/otel/mocks"
	"airbnc/internal/domains/user/mocks"
	"airbnc/internal/domains/user/model/dto"
	"airbnc/internal/handlers/user"
	"airbnc/shared/failure"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (http.Handler, *mocks.MockUserService) {
	t.Helper()

	svc := mocks.NewMockUserService(gomock.NewController(t))
	handler := user.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestGetUserByID(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		mock     func(svc *mocks.MockUserService)
		wantCode int
		wantBody string
	}{
		{
			name:   "found",
			target: "/users/1",
			mock: func(svc *mocks.MockUserService) {
				svc.EXPECT().Get(gomock.Any(), int64(1)).Return(dto.GetUserResponse{User: dto.UserResponse{UserID: 1, FirstName: "Alice"}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "unknown",
			target: "/users/1000",
			mock: func(svc *mocks.MockUserService) {
				svc.EXPECT().Get(gomock.Any(), int64(1000)).Return(dto.GetUserResponse{}, failure.NotFound("User not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"msg":"User not found"}`,
		},
		{
			name:     "invalid id",
			target:   "/users/abc",
			mock:     func(*mocks.MockUserService) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"msg":"Invalid user ID"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setup(t)
			tt.mock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
