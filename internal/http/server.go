// README: HTTP server wiring; holds module services and the realtime registry.
package http

import (
	"log/slog"

	"mechmatch/internal/modules/availability"
	"mechmatch/internal/modules/booking"
	"mechmatch/internal/modules/catalog"
	"mechmatch/internal/modules/mechanic"
	"mechmatch/internal/modules/rating"
	"mechmatch/internal/modules/report"
	"mechmatch/internal/modules/upload"
	"mechmatch/internal/modules/user"
	"mechmatch/internal/realtime"
)

type ServerDeps struct {
	Users        *user.Service
	Mechanics    *mechanic.Service
	Catalog      *catalog.Store
	Availability *availability.Service
	Bookings     *booking.Service
	BookingReads *booking.Store
	Ratings      *rating.Service
	Reports      *report.Store
	Upload       *upload.Service
	Registry     *realtime.Registry
	NearbyKm     float64
	Log          *slog.Logger
}

type Server struct {
	users        *user.Service
	mechanics    *mechanic.Service
	catalog      *catalog.Store
	availability *availability.Service
	bookings     *booking.Service
	bookingReads *booking.Store
	ratings      *rating.Service
	reports      *report.Store
	upload       *upload.Service
	registry     *realtime.Registry
	nearbyKm     float64
	log          *slog.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		users:        deps.Users,
		mechanics:    deps.Mechanics,
		catalog:      deps.Catalog,
		availability: deps.Availability,
		bookings:     deps.Bookings,
		bookingReads: deps.BookingReads,
		ratings:      deps.Ratings,
		reports:      deps.Reports,
		upload:       deps.Upload,
		registry:     deps.Registry,
		nearbyKm:     deps.NearbyKm,
		log:          deps.Log,
	}
}
