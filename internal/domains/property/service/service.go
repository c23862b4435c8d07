package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Property=MockPropertyService

import (
	"airbnc/config"
	"airbnc/infras/otel"
	"airbnc/internal/domains/property/model"
	"airbnc/internal/domains/property/model/dto"
	"airbnc/internal/domains/property/repository"
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
	cacheGetProperty    = "property:get"
	cacheGetAllProperty = "property:gets"
)

type Property interface {
	GetAll(ctx context.Context, req dto.GetPropertiesRequest) (dto.GetPropertiesResponse, error)
	// Get returns the property detail. Favourited is only set when userID is not nil.
	Get(ctx context.Context, id int64, userID *int64) (dto.GetPropertyResponse, error)
}

type serviceImpl struct {
	repo      repository.Property
	existence gRepo.Existence
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Property, existence gRepo.Existence, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Property {
	return &serviceImpl{
		repo:      repo,
		existence: existence,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.GetPropertiesRequest) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetAllProperty, req.CacheKey())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for properties")

		return res, s.checkEmpty(res)
	}

	if req.PropertyType != "" {
		err = s.existence.Check(ctx, gRepo.Lookup{
			Table:      model.PropertyTypeTableName,
			Column:     model.FieldPropertyType,
			Value:      req.PropertyType,
			IgnoreCase: true,
		})
		if err != nil {
			return res, fmt.Errorf("failed to check property type: %w", err)
		}
	}

	listings, err := s.repo.GetAll(ctx, req.ToFilter(), req.ToOrders())
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(listings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, s.checkEmpty(res)
}

func (s *serviceImpl) checkEmpty(res dto.GetPropertiesResponse) error {
	if len(res.Properties) == 0 && s.cfg.App.Listing.EmptyResultNotFound {
		return failure.NotFound(constant.MessageNoProperties) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64, userID *int64) (res dto.GetPropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Property, err = s.getDetail(ctx, id)
	if err != nil {
		return res, err
	}

	if userID == nil {
		return res, nil
	}

	favourited, err := s.repo.IsFavourited(ctx, id, *userID)
	if err != nil {
		log.Error().Err(err).Int64("property_id", id).Msg("failed to check favourite")

		return res, fmt.Errorf("failed to check favourite: %w", err)
	}

	res.Property.Favourited = &favourited

	return res, nil
}

// getDetail loads the user-independent part of the detail, through the cache.
func (s *serviceImpl) getDetail(ctx context.Context, id int64) (res dto.PropertyDetail, err error) {
	cacheKey := shared.BuildCacheKey(cacheGetProperty, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property")

		res.Favourited = nil

		return res, nil
	}

	detail, found, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("property_id", id).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if !found {
		return res, failure.NotFound(constant.MessagePropertyNotFound) // nolint:wrapcheck
	}

	images, err := s.repo.GetImages(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get property images: %w", err)
	}

	amenities, err := s.repo.GetAmenities(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get property amenities: %w", err)
	}

	res.FromModel(detail, images, amenities)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}
