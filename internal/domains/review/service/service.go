package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Review=MockReviewService

import (
	"airbnc/config"
	"airbnc/infras/otel"
	propertyModel "airbnc/internal/domains/property/model"
	"airbnc/internal/domains/review/model"
	"airbnc/internal/domains/review/model/dto"
	"airbnc/internal/domains/review/repository"
	userModel "airbnc/internal/domains/user/model"
	"airbnc/shared"
	"airbnc/shared/cache"
	"airbnc/shared/constant"
	"airbnc/shared/failure"
	gRepo "airbnc/shared/repository"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReview = "review:gets"
)

type Review interface {
	Create(ctx context.Context, propertyID int64, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetByProperty(ctx context.Context, propertyID int64) (dto.GetReviewsResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo      repository.Review
	existence gRepo.Existence
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Review, existence gRepo.Existence, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:      repo,
		existence: existence,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) checkProperty(ctx context.Context, propertyID int64) error {
	return s.existence.Check(ctx, gRepo.Lookup{ //nolint:wrapcheck
		Table:   propertyModel.TableName,
		Column:  propertyModel.FieldID,
		Value:   propertyID,
		Message: constant.MessagePropertyNotFound,
	})
}

func (s *serviceImpl) Create(ctx context.Context, propertyID int64, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkProperty(ctx, propertyID); err != nil {
		return res, err
	}

	err = s.existence.Check(ctx, gRepo.Lookup{
		Table:   userModel.TableName,
		Column:  userModel.FieldID,
		Value:   *req.GuestID,
		Message: constant.MessageUserNotFound,
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	review, err := s.repo.InsertReturning(ctx, req.ToModel(propertyID))
	if err != nil {
		log.Error().Err(err).Int64("property_id", propertyID).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	go s.invalidate(context.WithoutCancel(ctx), propertyID)

	return res, nil
}

func (s *serviceImpl) GetByProperty(ctx context.Context, propertyID int64) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetByProperty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAllReview, propertyID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	if err = s.checkProperty(ctx, propertyID); err != nil {
		return res, err
	}

	reviews, err := s.repo.GetByProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Int64("property_id", propertyID).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(reviews)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	review, found, err := s.repo.DeleteReturning(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("review_id", id).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	if !found {
		return failure.NotFound(constant.MessageReviewNotFound) // nolint:wrapcheck
	}

	go s.invalidate(context.WithoutCancel(ctx), review.PropertyID)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, propertyID int64) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetAllReview, propertyID)); err != nil {
		log.Error().Err(err).Int64("property_id", propertyID).Msg("failed to invalidate review cache")
	}
}
