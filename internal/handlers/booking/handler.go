package booking

import (
	"airbnc/infras/otel"
	"airbnc/internal/domains/booking/model/dto"
	"airbnc/internal/domains/booking/service"
	"airbnc/shared"
	"airbnc/shared/constant"
	"airbnc/shared/validator"
	"airbnc/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/properties/{id}/bookings", handler.GetPropertyBookings)
	router.Post("/properties/{id}/bookings", handler.CreateBooking)
	router.Get("/users/{id}/bookings", handler.GetUserBookings)
}

// CreateBooking books a property.
// @Summary Book a property
// @Description Dates are YYYY-MM-DD and the stay is [check_in_date, check_out_date).
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/properties/{id}/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	propertyID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), constant.MessageInvalidPropertyID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, propertyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("property_id", propertyID).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPropertyBookings lists the bookings of a property.
// @Summary List property bookings
// @Tags Booking
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} dto.GetPropertyBookingsResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/properties/{id}/bookings [get]
func (handler *Handler) GetPropertyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyBookings")
	defer scope.End()

	propertyID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), constant.MessageInvalidPropertyID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetByProperty(ctx, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("property_id", propertyID).Msg("failed to get property bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetUserBookings lists the bookings made by a user.
// @Summary List user bookings
// @Tags Booking
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.GetUserBookingsResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/users/{id}/bookings [get]
func (handler *Handler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserBookings")
	defer scope.End()

	userID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), constant.MessageInvalidUserID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetByUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to get user bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}
