package dto

import (
	"airbnc/internal/domains/review/model"
	"airbnc/shared/constant"
	"airbnc/shared/timezone"
)

type CreateReviewRequest struct {
	Rating  *float64 `json:"rating"   validate:"required,rating"`
	GuestID *int64   `json:"guest_id" validate:"required"`
	Comment *string  `json:"comment"`
}

func (c *CreateReviewRequest) ToModel(propertyID int64) model.Review {
	return model.Review{
		PropertyID: propertyID,
		GuestID:    *c.GuestID,
		Rating:     int(*c.Rating),
		Comment:    c.Comment,
	}
}

type ReviewResponse struct {
	ReviewID   int64   `json:"review_id"`
	PropertyID int64   `json:"property_id"`
	GuestID    int64   `json:"guest_id"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment"`
	CreatedAt  string  `json:"created_at"`
}

func (r *ReviewResponse) FromModel(m model.Review) {
	r.ReviewID = m.ID
	r.PropertyID = m.PropertyID
	r.GuestID = m.GuestID
	r.Rating = m.Rating
	r.Comment = m.Comment
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type PropertyReviewResponse struct {
	ReviewID    int64   `json:"review_id"`
	Comment     *string `json:"comment"`
	Rating      int     `json:"rating"`
	CreatedAt   string  `json:"created_at"`
	Guest       string  `json:"guest"`
	GuestAvatar *string `json:"guest_avatar"`
}

type GetReviewsResponse struct {
	Reviews       []PropertyReviewResponse `json:"reviews"`
	AverageRating float64                  `json:"average_rating"`
}

// FromModels copies the reviews in order and averages their ratings, 0 when
// there are none.
func (g *GetReviewsResponse) FromModels(models []model.PropertyReview) {
	g.Reviews = make([]PropertyReviewResponse, len(models))
	g.AverageRating = 0

	total := 0

	for i, m := range models {
		g.Reviews[i] = PropertyReviewResponse{
			ReviewID:    m.ID,
			Comment:     m.Comment,
			Rating:      m.Rating,
			CreatedAt:   timezone.Format(m.CreatedAt, constant.DateFormat),
			Guest:       m.Guest,
			GuestAvatar: m.GuestAvatar,
		}

		total += m.Rating
	}

	if len(models) > 0 {
		g.AverageRating = float64(total) / float64(len(models))
	}
}
