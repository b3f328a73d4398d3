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

type CertificationHandler struct {
	certificationService services.CertificationService
}

func NewCertificationHandler(certificationService services.CertificationService) *CertificationHandler {
	return &CertificationHandler{certificationService: certificationService}
}

type certificationRequest struct {
	Title    string     `json:"title"`
	Issuer   string     `json:"issuer"`
	IssuedAt *time.Time `json:"issued_at,omitempty"`
}

// POST /me/certifications
func (ch *CertificationHandler) Add(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req certificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	cert, err := ch.certificationService.Add(c.Request.Context(), rd.ProfessionalID, services.CertificationInput{
		Title:    req.Title,
		Issuer:   req.Issuer,
		IssuedAt: req.IssuedAt,
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"certification": cert})
}

// PATCH /me/certifications/:id
func (ch *CertificationHandler) Update(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var req certificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	cert, err := ch.certificationService.Update(c.Request.Context(), rd.ProfessionalID, id, services.CertificationInput{
		Title:    req.Title,
		Issuer:   req.Issuer,
		IssuedAt: req.IssuedAt,
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"certification": cert})
}

// PUT /me/certifications/order
// body: { "ordered_ids": ["...", "..."] }
func (ch *CertificationHandler) Reorder(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req struct {
		OrderedIDs []uuid.UUID `json:"ordered_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := ch.certificationService.Reorder(c.Request.Context(), rd.ProfessionalID, req.OrderedIDs); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /me/certifications/:id
func (ch *CertificationHandler) Deactivate(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := ch.certificationService.Deactivate(c.Request.Context(), rd.ProfessionalID, id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /me/certifications
func (ch *CertificationHandler) List(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	certs, err := ch.certificationService.List(c.Request.Context(), rd.ProfessionalID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"certifications": certs})
}
