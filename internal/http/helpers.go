// README: JSON helpers and error-kind to status mapping.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mechmatch/internal/modules/availability"
	"mechmatch/internal/modules/booking"
	"mechmatch/internal/modules/catalog"
	"mechmatch/internal/modules/dispatch"
	"mechmatch/internal/modules/mechanic"
	"mechmatch/internal/modules/rating"
	"mechmatch/internal/modules/user"
)

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// respondErr maps module sentinels to the client-facing statuses the mobile
// apps expect. Unique-identity conflicts come back as 400, not 409; that is
// what shipped and clients match on it.
func (s *Server) respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrConflict), errors.Is(err, mechanic.ErrConflict):
		writeError(c, http.StatusBadRequest, "Email or phone already exists")
	case errors.Is(err, user.ErrNotFound), errors.Is(err, booking.ErrCustomerNotFound):
		writeError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, booking.ErrServiceNotFound):
		writeError(c, http.StatusNotFound, "Service not found")
	case errors.Is(err, mechanic.ErrNotFound), errors.Is(err, availability.ErrMechanicNotFound):
		writeError(c, http.StatusNotFound, "Mechanic not found")
	case errors.Is(err, booking.ErrNotFound):
		writeError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, dispatch.ErrNoCandidate):
		writeError(c, http.StatusBadRequest, "No mechanics available for this service")
	case errors.Is(err, booking.ErrInvalidAction):
		writeError(c, http.StatusBadRequest, "Invalid action")
	case errors.Is(err, rating.ErrInvalidStars), errors.Is(err, rating.ErrNotRatable):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, user.ErrBadRequest), errors.Is(err, mechanic.ErrBadRequest), errors.Is(err, booking.ErrBadRequest):
		writeError(c, http.StatusBadRequest, "missing required fields")
	default:
		s.log.Error("request failed", "path", c.Request.URL.Path, "err", err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
