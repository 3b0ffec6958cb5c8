// README: HTTP route registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mechmatch/internal/http/middleware"
	"mechmatch/internal/realtime"
)

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(s.log), middleware.Recovery(s.log))

	r.POST("/register", s.handleRegister)
	r.POST("/login", s.handleLogin)
	r.GET("/users/:id", s.handleGetUser)

	r.POST("/mechanics", s.handleCreateMechanic)
	r.GET("/mechanics/nearby", s.handleNearbyMechanics)
	r.GET("/mechanics/:id", s.handleGetMechanic)
	r.GET("/mechanics/:id/bookings", s.handleMechanicBookings)
	r.GET("/mechanics/:id/availability", s.handleGetAvailability)
	r.PUT("/mechanics/:id/availability", s.handleSetAvailability)
	r.GET("/mechanics/:id/rating", s.handleMechanicRating)

	r.GET("/services", s.handleListServices)

	r.POST("/bookings", s.handleCreateBooking)
	r.GET("/bookings", s.handleListBookings)
	r.GET("/bookings/:id", s.handleGetBooking)
	r.POST("/bookings/:id/action", s.handleBookingAction)

	r.POST("/ratings", s.handleCreateRating)
	r.POST("/fraud-reports", s.handleCreateFraudReport)
	r.GET("/fraud-reports", s.handleListFraudReports)
	r.GET("/audits", s.handleListAudits)

	r.POST("/upload-image", s.handleUploadImage)

	r.GET("/ws", realtime.Handler(s.registry, s.log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
