//go:build wireinject
// +build wireinject

package di

import (
	"queueup/config"
	"queueup/infras/jwt"
	"queueup/infras/kafka"
	"queueup/infras/otel"
	"queueup/infras/postgres"
	"queueup/infras/redis"
	notificationHandler "queueup/internal/handlers/notification"
	reservationHandler "queueup/internal/handlers/reservation"
	"queueup/permissions"
	"queueup/shared/cache"
	"queueup/transport/http"
	"queueup/transport/http/middleware"
	"queueup/transport/http/router"

	catalogRepository "queueup/internal/domains/catalog/repository"
	notificationRepository "queueup/internal/domains/notification/repository"
	notificationService "queueup/internal/domains/notification/service"
	profileRepository "queueup/internal/domains/profile/repository"
	reservationRepository "queueup/internal/domains/reservation/repository"
	reservationService "queueup/internal/domains/reservation/service"
	"queueup/internal/events"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var supportingDomains = wire.NewSet(
	profileRepository.New,
	catalogRepository.New,
	events.NewPublisher,
)

var domains = wire.NewSet(
	reservationDomain,
	notificationDomain,
	supportingDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
