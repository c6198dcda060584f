//go:build wireinject
// +build wireinject

package di

import (
	"staysync/config"
	"staysync/infras/otel"
	"staysync/infras/redis"
	"staysync/internal/domains/booking/form"
	"staysync/shared/cache"
	"staysync/transport/http"
	"staysync/transport/http/middleware"
	"staysync/transport/http/router"

	bookingRepository "staysync/internal/domains/booking/repository"
	bookingService "staysync/internal/domains/booking/service"
	bookingSubmitter "staysync/internal/domains/booking/submitter"
	bookingHandler "staysync/internal/handlers/booking"

	preferenceRepository "staysync/internal/domains/preference/repository"
	preferenceService "staysync/internal/domains/preference/service"
	preferenceHandler "staysync/internal/handlers/preference"

	roomRepository "staysync/internal/domains/room/repository"
	roomService "staysync/internal/domains/room/service"
	roomHandler "staysync/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingSubmitter.New,
	wire.Bind(new(form.Submitter), new(*bookingSubmitter.Simulated)),
	bookingService.New,
)

var preferenceDomain = wire.NewSet(
	preferenceRepository.New,
	preferenceService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	preferenceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	preferenceHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
