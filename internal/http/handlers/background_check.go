package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oficiolab/promarket-backend/internal/http/response"
	"github.com/oficiolab/promarket-backend/internal/pkg/ctxutil"
	"github.com/oficiolab/promarket-backend/internal/services"
)

type BackgroundCheckHandler struct {
	backgroundCheckService services.BackgroundCheckService
}

func NewBackgroundCheckHandler(backgroundCheckService services.BackgroundCheckService) *BackgroundCheckHandler {
	return &BackgroundCheckHandler{backgroundCheckService: backgroundCheckService}
}

// POST /me/background-checks
// body: { "type": "police", "document_url": "...", "issued_at": "..." }
func (bh *BackgroundCheckHandler) Add(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req struct {
		Type        string     `json:"type"`
		DocumentURL string     `json:"document_url"`
		IssuedAt    *time.Time `json:"issued_at,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	check, err := bh.backgroundCheckService.Add(c.Request.Context(), rd.ProfessionalID, services.BackgroundCheckInput{
		Type:        req.Type,
		DocumentURL: req.DocumentURL,
		IssuedAt:    req.IssuedAt,
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"background_check": check})
}

// PATCH /me/background-checks/:id
// body: { "document_url": "...", "issued_at": "..." }
func (bh *BackgroundCheckHandler) UpdateDocument(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var req struct {
		DocumentURL string     `json:"document_url"`
		IssuedAt    *time.Time `json:"issued_at,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	check, err := bh.backgroundCheckService.UpdateDocument(c.Request.Context(), rd.ProfessionalID, id, req.DocumentURL, req.IssuedAt)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"background_check": check})
}

// POST /admin/professionals/:id/background-checks/:check_id/verify
func (bh *BackgroundCheckHandler) Verify(c *gin.Context) {
	professionalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	checkID, err := uuid.Parse(c.Param("check_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	check, err := bh.backgroundCheckService.Verify(c.Request.Context(), professionalID, checkID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"background_check": check})
}

// DELETE /me/background-checks/:id
func (bh *BackgroundCheckHandler) Deactivate(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := bh.backgroundCheckService.Deactivate(c.Request.Context(), rd.ProfessionalID, id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /me/background-checks
func (bh *BackgroundCheckHandler) List(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	checks, err := bh.backgroundCheckService.List(c.Request.Context(), rd.ProfessionalID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"background_checks": checks})
}
