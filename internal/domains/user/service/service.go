package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"airbnc/config"
	"airbnc/infras/otel"
	"airbnc/internal/domains/user/model/dto"
	"airbnc/internal/domains/user/repository"
	"airbnc/shared"
	"airbnc/shared/cache"
	"airbnc/shared/constant"
	"airbnc/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser = "user:get"
)

type User interface {
	Get(ctx context.Context, id int64) (dto.GetUserResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the public profile of a user. Profiles are cached for the
// configured TTL.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GetUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("user.id", id)

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)
	if s.cache.Get(ctx, cacheKey, &res) == nil {
		scope.AddEvent("cache hit")

		return res, nil
	}

	user, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("user_id", id).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if !found {
		return res, failure.NotFound(constant.MessageUserNotFound) // nolint:wrapcheck
	}

	res.User.FromModel(user)

	go s.remember(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) remember(ctx context.Context, key string, res dto.GetUserResponse) {
	if err := s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache user")
	}
}
