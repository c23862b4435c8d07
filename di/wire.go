//go:build wireinject
// +build wireinject

package di

import (
	"airbnc/config"
	"airbnc/infras/kafka"
	"airbnc/infras/otel"
	"airbnc/infras/postgres"
	"airbnc/infras/redis"
	"airbnc/shared/cache"
	gRepo "airbnc/shared/repository"
	"airbnc/transport/http"
	"airbnc/transport/http/middleware"
	"airbnc/transport/http/router"

	bookingRepository "airbnc/internal/domains/booking/repository"
	bookingService "airbnc/internal/domains/booking/service"
	propertyRepository "airbnc/internal/domains/property/repository"
	propertyService "airbnc/internal/domains/property/service"
	reviewRepository "airbnc/internal/domains/review/repository"
	reviewService "airbnc/internal/domains/review/service"
	userRepository "airbnc/internal/domains/user/repository"
	userService "airbnc/internal/domains/user/service"

	bookingHandler "airbnc/internal/handlers/booking"
	propertyHandler "airbnc/internal/handlers/property"
	reviewHandler "airbnc/internal/handlers/review"
	userHandler "airbnc/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepo.NewExistence,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	reviewDomain,
	bookingDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	propertyHandler.New,
	reviewHandler.New,
	bookingHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
