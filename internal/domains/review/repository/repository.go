package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airbnc/infras/otel"
	"airbnc/infras/postgres"
	"airbnc/internal/domains/review/model"
	"airbnc/shared/constant"
	gDto "airbnc/shared/dto"
	"airbnc/shared/logger"
	gRepo "airbnc/shared/repository"
	"context"
	"fmt"
)

const propertyReviewsQuery = `SELECT r.review_id, r.comment, r.rating, r.created_at,
	u.first_name || ' ' || u.surname AS guest, u.avatar AS guest_avatar
FROM reviews r
JOIN users u ON r.guest_id = u.user_id
WHERE r.property_id = $1
ORDER BY r.created_at DESC, r.review_id DESC`

type Review interface {
	InsertReturning(ctx context.Context, review model.Review) (model.Review, error)
	DeleteReturning(ctx context.Context, filter gDto.FilterGroup) (model.Review, bool, error)
	GetByProperty(ctx context.Context, propertyID int64) ([]model.PropertyReview, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByProperty returns the reviews of a property, newest first.
func (r *repositoryImpl) GetByProperty(ctx context.Context, propertyID int64) ([]model.PropertyReview, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.GetByProperty")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, propertyReviewsQuery)

	reviews := []model.PropertyReview{}

	if err := r.db.Read.SelectContext(ctx, &reviews, propertyReviewsQuery, propertyID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return reviews, fmt.Errorf("failed to get property reviews: %w", err)
	}

	return reviews, nil
}
