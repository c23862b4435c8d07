package property_test

import (
	otelMocks "airbnc/infras/otel/mocks"
	"airbnc/internal/domains/property/mocks"
	"airbnc/internal/domains/property/model/dto"
	"airbnc/internal/handlers/property"
	"airbnc/shared/failure"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (http.Handler, *mocks.MockPropertyService) {
	t.Helper()

	svc := mocks.NewMockPropertyService(gomock.NewController(t))
	handler := property.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestGetProperties(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.GetPropertiesRequest) (dto.GetPropertiesResponse, error) {
		assert.Equal(t, "50", req.MinPrice)
		assert.Equal(t, "cost_per_night", req.Sort)

		return dto.GetPropertiesResponse{Properties: []dto.PropertyListItem{{PropertyID: 1, PropertyName: "Cosy Loft"}}}, nil
	})

	rec := serve(router, http.MethodGet, "/properties?minprice=50&sort=cost_per_night")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["properties"], 1)
}

func TestGetProperties_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "bad price", err: failure.BadRequestFromString("Please use numbers for minprice and maxprice"), code: 400, msg: "Please use numbers for minprice and maxprice"},
		{name: "unknown type", err: failure.NotFound("property_type not found"), code: 404, msg: "property_type not found"},
		{name: "store down", err: errors.New("dial tcp: connection refused"), code: 500, msg: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setup(t)

			svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(dto.GetPropertiesResponse{}, tt.err)

			rec := serve(router, http.MethodGet, "/properties")

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.msg, decode(t, rec)["msg"])
		})
	}
}

func TestGetPropertiesByType(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.GetPropertiesRequest) (dto.GetPropertiesResponse, error) {
		assert.Equal(t, "House", req.PropertyType)

		return dto.GetPropertiesResponse{Properties: []dto.PropertyListItem{}}, nil
	})

	rec := serve(router, http.MethodGet, "/properties/type/House")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"properties":[]}`, rec.Body.String())
}

func TestGetPropertyByID(t *testing.T) {
	t.Run("without user", func(t *testing.T) {
		router, svc := setup(t)

		svc.EXPECT().Get(gomock.Any(), int64(3), (*int64)(nil)).Return(dto.GetPropertyResponse{Property: dto.PropertyDetail{PropertyID: 3}}, nil)

		rec := serve(router, http.MethodGet, "/properties/3")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "favourited")
	})

	t.Run("with user", func(t *testing.T) {
		router, svc := setup(t)
		favourited := true

		svc.EXPECT().Get(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, userID *int64) (dto.GetPropertyResponse, error) {
			require.NotNil(t, userID)
			assert.Equal(t, int64(2), *userID)

			return dto.GetPropertyResponse{Property: dto.PropertyDetail{PropertyID: 3, Favourited: &favourited}}, nil
		})

		rec := serve(router, http.MethodGet, "/properties/3?user_id=2")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decode(t, rec)["property"].(map[string]any)["favourited"])
	})

	t.Run("invalid ids", func(t *testing.T) {
		router, _ := setup(t)

		rec := serve(router, http.MethodGet, "/properties/abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid property ID", decode(t, rec)["msg"])

		rec = serve(router, http.MethodGet, "/properties/3?user_id=abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid user ID", decode(t, rec)["msg"])
	})

	t.Run("not found", func(t *testing.T) {
		router, svc := setup(t)

		svc.EXPECT().Get(gomock.Any(), int64(1000), gomock.Any()).Return(dto.GetPropertyResponse{}, failure.NotFound("Property not found"))

		rec := serve(router, http.MethodGet, "/properties/1000")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Property not found", decode(t, rec)["msg"])
	})
}
