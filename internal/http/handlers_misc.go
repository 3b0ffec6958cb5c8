// README: Catalog, rating, report, and upload handlers.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mechmatch/internal/modules/rating"
	"mechmatch/internal/modules/report"
	"mechmatch/internal/types"
)

func (s *Server) handleListServices(c *gin.Context) {
	services, err := s.catalog.List(c.Request.Context())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	out := make([]gin.H, 0, len(services))
	for _, svc := range services {
		mechanics := make([]gin.H, 0, len(svc.Mechanics))
		for _, m := range svc.Mechanics {
			mechanics = append(mechanics, gin.H{
				"id":              m.ID,
				"name":            m.Name,
				"phone":           m.Phone,
				"garage_location": m.GarageLocation,
				"latitude":        m.Latitude,
				"longitude":       m.Longitude,
			})
		}
		out = append(out, gin.H{
			"id":        svc.ID,
			"name":      svc.Name,
			"status":    svc.Status,
			"mechanics": mechanics,
		})
	}
	c.JSON(http.StatusOK, out)
}

type createRatingReq struct {
	BookingID *types.ID `json:"booking_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
}

func (s *Server) handleCreateRating(c *gin.Context) {
	var req createRatingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.BookingID == nil {
		writeError(c, http.StatusBadRequest, "booking_id is required")
		return
	}
	r, err := s.ratings.Create(c.Request.Context(), rating.CreateCommand{
		BookingID: *req.BookingID,
		Stars:     req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Rating created",
		"rating": gin.H{
			"id":          r.ID,
			"booking_id":  r.BookingID,
			"user_id":     r.UserID,
			"mechanic_id": r.MechanicID,
			"rating":      r.Stars,
			"comment":     r.Comment,
		},
	})
}

type createFraudReportReq struct {
	UserID         *types.ID `json:"user_id"`
	MechanicID     *types.ID `json:"mechanic_id"`
	BookingID      *types.ID `json:"booking_id"`
	Reason         string    `json:"reason"`
	Description    *string   `json:"description"`
	Severity       string    `json:"severity"`
	EvidenceImages *string   `json:"evidence_images"`
}

func (s *Server) handleCreateFraudReport(c *gin.Context) {
	var req createFraudReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == nil || req.MechanicID == nil || req.Reason == "" {
		writeError(c, http.StatusBadRequest, "user_id, mechanic_id and reason are required")
		return
	}
	r, err := s.reports.InsertFraudReport(c.Request.Context(), &report.FraudReport{
		UserID:         *req.UserID,
		MechanicID:     *req.MechanicID,
		BookingID:      req.BookingID,
		Reason:         req.Reason,
		Description:    req.Description,
		Severity:       req.Severity,
		EvidenceImages: req.EvidenceImages,
	})
	if err != nil {
		s.respondErr(c, err)
		return
	}

	targetType := "fraud_report"
	ip := c.ClientIP()
	ua := c.Request.UserAgent()
	if _, err := s.reports.InsertAudit(c.Request.Context(), &report.AuditEntry{
		Action:     "fraud_report_created",
		TargetType: &targetType,
		TargetID:   &r.ID,
		IPAddress:  &ip,
		UserAgent:  &ua,
	}); err != nil {
		// The report itself is committed; the audit trail is best-effort.
		s.log.Warn("audit write failed", "report_id", r.ID, "err", err)
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Report filed", "report": gin.H{
		"id":       r.ID,
		"status":   r.Status,
		"severity": r.Severity,
	}})
}

func (s *Server) handleListFraudReports(c *gin.Context) {
	reports, err := s.reports.ListFraudReports(c.Request.Context())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (s *Server) handleListAudits(c *gin.Context) {
	audits, err := s.reports.ListAudits(c.Request.Context())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, audits)
}

func (s *Server) handleUploadImage(c *gin.Context) {
	if s.upload == nil {
		writeError(c, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, "No file part in the request")
		return
	}
	defer file.Close()
	if header.Filename == "" {
		writeError(c, http.StatusBadRequest, "No selected file")
		return
	}
	url, err := s.upload.Image(c.Request.Context(), header.Filename, file)
	if err != nil {
		s.log.Error("image upload failed", "filename", header.Filename, "err", err)
		writeError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
