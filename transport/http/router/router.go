package router

import (
	"localmarket/internal/handlers/auth"
	"localmarket/internal/handlers/booking"
	"localmarket/internal/handlers/category"
	"localmarket/internal/handlers/dashboard"
	"localmarket/internal/handlers/service"
	"localmarket/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Category  category.Handler
	Service   service.Handler
	Booking   booking.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
