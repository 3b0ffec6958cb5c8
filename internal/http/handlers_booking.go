// README: Booking handlers: create with dispatch, flat actions, read endpoints.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mechmatch/internal/modules/booking"
	"mechmatch/internal/types"
)

type createBookingReq struct {
	CustomerID *types.ID `json:"customer_id"`
	ServiceID  *types.ID `json:"service_id"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	Location   string    `json:"location"`
}

func (s *Server) handleCreateBooking(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.CustomerID == nil || req.ServiceID == nil || req.Latitude == nil || req.Longitude == nil || req.Location == "" {
		writeError(c, http.StatusBadRequest, "Missing field(s): customer_id, service_id, latitude, longitude, location are required")
		return
	}
	b, m, err := s.bookings.Create(c.Request.Context(), booking.CreateCommand{
		CustomerID: *req.CustomerID,
		ServiceID:  *req.ServiceID,
		Requester:  types.Point{Lat: *req.Latitude, Lng: *req.Longitude},
		Location:   req.Location,
	})
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created",
		"booking": gin.H{
			"id":       b.ID,
			"type":     b.Type,
			"location": b.Location,
			"status":   b.Status,
			"customer": gin.H{"id": b.CustomerID},
			"mechanic": mechanicJSON(m),
			"service":  gin.H{"id": b.ServiceID, "name": b.Type},
		},
	})
}

type bookingActionReq struct {
	Action string `json:"action"`
}

func (s *Server) handleBookingAction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req bookingActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := s.bookings.Act(c.Request.Context(), id, req.Action)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking " + req.Action,
		"booking": gin.H{
			"id":          b.ID,
			"type":        b.Type,
			"status":      b.Status,
			"customer_id": b.CustomerID,
			"mechanic_id": b.MechanicID,
			"service_id":  b.ServiceID,
			"updated_at":  b.UpdatedAt,
		},
	})
}

func (s *Server) handleListBookings(c *gin.Context) {
	details, err := s.bookingReads.ListAll(c.Request.Context())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, detailsJSON(details))
}

func (s *Server) handleMechanicBookings(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	exists, err := s.mechanics.Exists(c.Request.Context(), id)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	if !exists {
		writeError(c, http.StatusNotFound, "Mechanic not found")
		return
	}
	details, err := s.bookingReads.ListByMechanic(c.Request.Context(), id)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, detailsJSON(details))
}

func (s *Server) handleGetBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	d, err := s.bookingReads.GetDetail(c.Request.Context(), id)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, detailJSON(d))
}

func detailsJSON(details []booking.Detail) []gin.H {
	out := make([]gin.H, 0, len(details))
	for i := range details {
		out = append(out, detailJSON(&details[i]))
	}
	return out
}

func detailJSON(d *booking.Detail) gin.H {
	body := gin.H{
		"id":        d.ID,
		"type":      d.Type,
		"location":  d.Location,
		"latitude":  d.Latitude,
		"longitude": d.Longitude,
		"status":    d.Status,
		"customer": gin.H{
			"id":    d.Customer.ID,
			"name":  d.Customer.Name,
			"phone": d.Customer.Phone,
		},
	}
	if d.Mechanic != nil {
		body["mechanic"] = gin.H{"id": d.Mechanic.ID, "name": d.Mechanic.Name, "phone": d.Mechanic.Phone}
	}
	if d.ServiceID != nil && d.ServiceName != nil {
		body["service"] = gin.H{"id": *d.ServiceID, "name": *d.ServiceName}
	}
	return body
}
