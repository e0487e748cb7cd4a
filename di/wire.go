//go:build wireinject
// +build wireinject

package di

import (
	"roombook/config"
	"roombook/infras/otel"
	"roombook/internal/seed"
	"roombook/transport/http"
	"roombook/transport/http/middleware"
	"roombook/transport/http/router"

	bookingHandler "roombook/internal/handlers/booking"
	customerHandler "roombook/internal/handlers/customer"
	roomHandler "roombook/internal/handlers/room"

	bookingRepository "roombook/internal/domains/booking/repository"
	bookingService "roombook/internal/domains/booking/service"
	customerRepository "roombook/internal/domains/customer/repository"
	customerService "roombook/internal/domains/customer/service"
	roomRepository "roombook/internal/domains/room/repository"
	roomService "roombook/internal/domains/room/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	customerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	customerHandler.New,
	router.New,
)

func InitializeApp() App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
		seed.New,
		wire.Struct(new(App), "*"),
	)

	return App{}
}
