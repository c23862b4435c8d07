package http_test

import (
	"airbnc/config"
	otelMocks "airbnc/infras/otel/mocks"
	bookingMocks "airbnc/internal/domains/booking/mocks"
	propertyMocks "airbnc/internal/domains/property/mocks"
	propertyDto "airbnc/internal/domains/property/model/dto"
	reviewMocks "airbnc/internal/domains/review/mocks"
	userMocks "airbnc/internal/domains/user/mocks"
	"airbnc/internal/handlers/booking"
	"airbnc/internal/handlers/property"
	"airbnc/internal/handlers/review"
	"airbnc/internal/handlers/user"
	cacheMocks "airbnc/shared/cache/mocks"
	transportHTTP "airbnc/transport/http"
	"airbnc/transport/http/middleware"
	"airbnc/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*transportHTTP.HTTP, *propertyMocks.MockPropertyService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	otl := otelMocks.NewOtel()
	cfg := &config.Config{}
	cfg.Server.Env = "test"

	properties := propertyMocks.NewMockPropertyService(ctrl)

	handlers := router.DomainHandlers{
		Property: property.New(properties, otl),
		Review:   review.New(reviewMocks.NewMockReviewService(ctrl), otl),
		Booking:  booking.New(bookingMocks.NewMockBookingService(ctrl), otl),
		User:     user.New(userMocks.NewMockUserService(ctrl), otl),
	}

	mw := middleware.NewAppMiddleware(otl, cfg, cacheMocks.NewMockRedisCache(ctrl))

	return transportHTTP.New(cfg, router.New(cfg, mw, handlers)), properties
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestHealth(t *testing.T) {
	server, _ := setup(t)

	rec := serve(server, http.MethodGet, "/api/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transportHTTP.ServerStateReady, server.State())
}

func TestUnknownRoutes(t *testing.T) {
	server, _ := setup(t)

	rec := serve(server, http.MethodGet, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Path not found"}`, rec.Body.String())

	rec = serve(server, http.MethodGet, "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(server, http.MethodPatch, "/api/properties/1")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"msg":"Method not allowed"}`, rec.Body.String())
}

func TestRoutesToHandlers(t *testing.T) {
	server, properties := setup(t)

	properties.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(propertyDto.GetPropertiesResponse{Properties: []propertyDto.PropertyListItem{}}, nil)

	rec := serve(server, http.MethodGet, "/api/properties")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"properties":[]}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
