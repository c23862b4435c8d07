package review

import (
	"airbnc/infras/otel"
	"airbnc/internal/domains/review/model/dto"
	"airbnc/internal/domains/review/service"
	"airbnc/shared"
	"airbnc/shared/constant"
	"airbnc/shared/validator"
	"airbnc/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/properties/{id}/reviews", handler.GetReviews)
	router.Post("/properties/{id}/reviews", handler.CreateReview)
	router.Delete("/reviews/{id}", handler.DeleteReview)
}

// CreateReview adds a review to a property.
// @Summary Review a property
// @Tags Review
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/properties/{id}/reviews [post]
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	propertyID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), constant.MessageInvalidPropertyID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.Create(ctx, propertyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("property_id", propertyID).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review created successfully")

	response.WithJSON(w, http.StatusCreated, review)
}

// GetReviews lists the reviews of a property.
// @Summary List property reviews
// @Description Reviews newest first with the average rating, 0 when there are none.
// @Tags Review
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} dto.GetReviewsResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/properties/{id}/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	propertyID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), constant.MessageInvalidPropertyID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	reviews, err := handler.service.GetByProperty(ctx, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("property_id", propertyID).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}

// DeleteReview removes a review.
// @Summary Delete a review
// @Tags Review
// @Param id path int true "Review ID"
// @Success 204
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/reviews/{id} [delete]
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), constant.MessageInvalidReviewID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("review_id", id).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review deleted successfully")

	response.WithNoContent(w)
}
