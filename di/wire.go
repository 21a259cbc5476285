//go:build wireinject
// +build wireinject

package di

import (
	"localmarket/config"
	"localmarket/infras/jwt"
	"localmarket/infras/otel"
	"localmarket/infras/postgres"
	"localmarket/internal/bootstrap"
	"localmarket/transport/http"
	"localmarket/transport/http/middleware"
	"localmarket/transport/http/router"

	authService "localmarket/internal/domains/auth/service"
	bookingRepository "localmarket/internal/domains/booking/repository"
	bookingService "localmarket/internal/domains/booking/service"
	categoryRepository "localmarket/internal/domains/category/repository"
	categoryService "localmarket/internal/domains/category/service"
	serviceRepository "localmarket/internal/domains/service/repository"
	serviceService "localmarket/internal/domains/service/service"
	userRepository "localmarket/internal/domains/user/repository"
	userService "localmarket/internal/domains/user/service"
	dashboardService "localmarket/internal/domains/dashboard/service"

	authHandler "localmarket/internal/handlers/auth"
	bookingHandler "localmarket/internal/handlers/booking"
	categoryHandler "localmarket/internal/handlers/category"
	serviceHandler "localmarket/internal/handlers/service"
	userHandler "localmarket/internal/handlers/user"
	dashboardHandler "localmarket/internal/handlers/dashboard"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var serviceDomain = wire.NewSet(
	serviceRepository.New,
	serviceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	categoryDomain,
	serviceDomain,
	bookingDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	categoryHandler.New,
	serviceHandler.New,
	bookingHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		bootstrap.New,
		http.New,
	)

	return &http.HTTP{}
}
