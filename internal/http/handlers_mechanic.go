// README: Mechanic handlers: create, profile, nearby listing, availability, rating.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mechmatch/internal/modules/availability"
	"mechmatch/internal/modules/mechanic"
	"mechmatch/internal/types"
)

type createMechanicReq struct {
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone"`
	Password       string     `json:"password"`
	ProfilePicture *string    `json:"profile_picture"`
	GarageName     *string    `json:"garage_name"`
	GarageLocation *string    `json:"garage_location"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	DocumentPath   *string    `json:"document_path"`
	ServiceIDs     []types.ID `json:"service_ids"`
}

func (s *Server) handleCreateMechanic(c *gin.Context) {
	var req createMechanicReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	m, err := s.mechanics.Create(c.Request.Context(), mechanic.CreateCommand{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
		GarageName:     req.GarageName,
		GarageLocation: req.GarageLocation,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		DocumentPath:   req.DocumentPath,
		ServiceIDs:     req.ServiceIDs,
	})
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Mechanic created", "mechanic": mechanicJSON(m)})
}

func (s *Server) handleGetMechanic(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := s.mechanics.Get(c.Request.Context(), id)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	body := mechanicJSON(&p.Mechanic)
	body["status"] = p.Status
	body["jobsCompleted"] = p.JobsCompleted
	body["rating"] = p.Rating
	body["aboutShop"] = p.AboutShop
	c.JSON(http.StatusOK, gin.H{"mechanic": body})
}

func (s *Server) handleNearbyMechanics(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		writeError(c, http.StatusBadRequest, "lat and lng are required")
		return
	}
	radius := s.nearbyKm
	if v := c.Query("radius_km"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			radius = r
		}
	}
	mechanics, err := s.mechanics.Nearby(c.Request.Context(), types.Point{Lat: lat, Lng: lng}, radius)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	out := make([]gin.H, 0, len(mechanics))
	for i := range mechanics {
		out = append(out, mechanicJSON(&mechanics[i]))
	}
	c.JSON(http.StatusOK, out)
}

type availabilityReq struct {
	Availability []struct {
		Day       string `json:"day_of_week"`
		Available bool   `json:"is_available"`
	} `json:"availability"`
}

func (s *Server) handleSetAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	entries := make([]availability.Entry, 0, len(req.Availability))
	for _, e := range req.Availability {
		entries = append(entries, availability.Entry{Day: e.Day, Available: e.Available})
	}
	if err := s.availability.SetBatch(c.Request.Context(), id, entries); err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

func (s *Server) handleGetAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	week, err := s.availability.Week(c.Request.Context(), id)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	out := make([]gin.H, 0, len(week))
	for _, e := range week {
		out = append(out, gin.H{"day_of_week": e.Day, "is_available": e.Available})
	}
	c.JSON(http.StatusOK, gin.H{"availability": out})
}

func (s *Server) handleMechanicRating(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	avg, count, err := s.ratings.AverageForMechanic(c.Request.Context(), id)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mechanic_id": id, "rating": avg, "count": count})
}

func mechanicJSON(m *mechanic.Mechanic) gin.H {
	services := make([]gin.H, 0, len(m.Services))
	for _, svc := range m.Services {
		services = append(services, gin.H{"id": svc.ID, "name": svc.Name})
	}
	return gin.H{
		"id":               m.ID,
		"name":             m.Name,
		"email":            m.Email,
		"phone":            m.Phone,
		"profile_picture":  m.ProfilePicture,
		"garage_name":      m.GarageName,
		"garage_location":  m.GarageLocation,
		"latitude":         m.Latitude,
		"longitude":        m.Longitude,
		"services_offered": services,
	}
}
