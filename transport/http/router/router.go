package router

import (
	"staysync/internal/handlers/booking"
	"staysync/internal/handlers/preference"
	"staysync/internal/handlers/room"
	"staysync/shared/metrics"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room       room.Handler
	Booking    booking.Handler
	Preference preference.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Handle("/metrics", metrics.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Preference.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
