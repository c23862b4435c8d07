package property

import (
	"airbnc/infras/otel"
	"airbnc/internal/domains/property/model/dto"
	"airbnc/internal/domains/property/service"
	"airbnc/shared"
	"airbnc/shared/constant"
	"airbnc/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Property
	otel    otel.Otel
}

func New(service service.Property, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/properties", handler.GetProperties)
	router.Get("/properties/type/{property_type}", handler.GetPropertiesByType)
	router.Get("/properties/{id}", handler.GetPropertyByID)
}

// GetProperties lists properties.
// @Summary List properties
// @Description List properties with optional price and type filters, sorted by popularity or price.
// @Tags Property
// @Produce json
// @Param minprice query number false "Minimum price per night"
// @Param maxprice query number false "Maximum price per night"
// @Param property_type query string false "Property type, case-insensitive"
// @Param sort query string false "cost_per_night or popularity"
// @Param order query string false "ascending or descending"
// @Success 200 {object} dto.GetPropertiesResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/properties [get]
func (handler *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	req := dto.GetPropertiesRequest{}
	req.FromRequest(r)

	handler.getProperties(w, r, req, ".GetProperties")
}

// GetPropertiesByType lists the properties of one type.
// @Summary List properties of a type
// @Tags Property
// @Produce json
// @Param property_type path string true "Property type, case-insensitive"
// @Param minprice query number false "Minimum price per night"
// @Param maxprice query number false "Maximum price per night"
// @Param sort query string false "cost_per_night or popularity"
// @Param order query string false "ascending or descending"
// @Success 200 {object} dto.GetPropertiesResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/properties/type/{property_type} [get]
func (handler *Handler) GetPropertiesByType(w http.ResponseWriter, r *http.Request) {
	req := dto.GetPropertiesRequest{}
	req.FromRequest(r)
	req.PropertyType = chi.URLParam(r, constant.RequestParamPropertyType)

	handler.getProperties(w, r, req, ".GetPropertiesByType")
}

func (handler *Handler) getProperties(w http.ResponseWriter, r *http.Request, req dto.GetPropertiesRequest, operation string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+operation)
	defer scope.End()

	properties, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, properties)
}

// GetPropertyByID returns a property.
// @Summary Get a property
// @Description Property detail. favourited is present only when user_id is given.
// @Tags Property
// @Produce json
// @Param id path int true "Property ID"
// @Param user_id query int false "User ID for the favourited flag"
// @Success 200 {object} dto.GetPropertyResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/properties/{id} [get]
func (handler *Handler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), constant.MessageInvalidPropertyID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var userID *int64

	if value := r.URL.Query().Get(constant.RequestParamUserID); value != "" {
		parsed, err := shared.ParseID(value, constant.MessageInvalidUserID)
		if err != nil {
			response.WithError(w, err)

			return
		}

		userID = &parsed
	}

	property, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("property_id", id).Msg("failed to get property")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, property)
}
