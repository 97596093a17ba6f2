package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/surajmeruva0786/DigiGov10/internal/i18n"
	"github.com/surajmeruva0786/DigiGov10/internal/middleware"
	"github.com/surajmeruva0786/DigiGov10/internal/model"
	"github.com/surajmeruva0786/DigiGov10/internal/service"
)

type ComplaintHandler struct {
	svc         *service.ComplaintService
	messages    *i18n.Localizer
	defaultLang string
}

func NewComplaintHandler(svc *service.ComplaintService, messages *i18n.Localizer, defaultLang string) *ComplaintHandler {
	return &ComplaintHandler{svc: svc, messages: messages, defaultLang: defaultLang}
}

type createComplaintRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Sector      string `json:"sector" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *ComplaintHandler) Create(c *gin.Context) {
	lang := requestLang(c, h.defaultLang)
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "fill_all_fields")})
		return
	}
	submitter := ""
	if session, ok := middleware.SessionFrom(c); ok {
		submitter = session.Subject
	}
	complaint, err := h.svc.Submit(c.Request.Context(), req.Subject, model.Sector(req.Sector), req.Description, submitter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.T(lang, "save_failed")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"complaint": complaint,
		"message":   h.messages.Tf(lang, "complaint_registered", complaint.ID),
	})
}

func (h *ComplaintHandler) List(c *gin.Context) {
	items := h.svc.ByStatus(c.Query("status"))
	c.JSON(http.StatusOK, gin.H{
		"complaints": items,
		"total":      len(items),
	})
}

// complaintID rebuilds the "#NNNNN" identifier from the path parameter: "#"
// is a fragment delimiter, so clients send the id without it.
func complaintID(c *gin.Context) string {
	id := c.Param("id")
	if !strings.HasPrefix(id, "#") {
		id = "#" + id
	}
	return id
}

func (h *ComplaintHandler) Get(c *gin.Context) {
	lang := requestLang(c, h.defaultLang)
	complaint, ok := h.svc.ByID(complaintID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": h.messages.T(lang, "complaint_not_found")})
		return
	}
	c.JSON(http.StatusOK, complaint)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	lang := requestLang(c, h.defaultLang)
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "fill_all_fields")})
		return
	}
	status := model.ComplaintStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.messages.T(lang, "invalid_status")})
		return
	}
	id := complaintID(c)
	found, err := h.svc.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.T(lang, "save_failed")})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": h.messages.T(lang, "complaint_not_found")})
		return
	}
	complaint, _ := h.svc.ByID(id)
	c.JSON(http.StatusOK, gin.H{
		"complaint": complaint,
		"message":   h.messages.T(lang, "status_updated"),
	})
}

// Stats serves the official-dashboard counters, recomputed per request.
func (h *ComplaintHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Counts())
}
