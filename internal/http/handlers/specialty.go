package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oficiolab/promarket-backend/internal/http/response"
	"github.com/oficiolab/promarket-backend/internal/pkg/ctxutil"
	"github.com/oficiolab/promarket-backend/internal/services"
)

type SpecialtyHandler struct {
	specialtyService services.SpecialtyService
}

func NewSpecialtyHandler(specialtyService services.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{specialtyService: specialtyService}
}

// POST /me/specialties
// body: { "name": "..." }
func (sh *SpecialtyHandler) Add(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	specialty, err := sh.specialtyService.Add(c.Request.Context(), rd.ProfessionalID, req.Name)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"specialty": specialty})
}

// POST /me/specialties/:id/principal
func (sh *SpecialtyHandler) SetPrincipal(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := sh.specialtyService.SetPrincipal(c.Request.Context(), rd.ProfessionalID, id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /me/specialties/:id
func (sh *SpecialtyHandler) Deactivate(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := sh.specialtyService.Deactivate(c.Request.Context(), rd.ProfessionalID, id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /me/specialties
func (sh *SpecialtyHandler) List(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	specialties, err := sh.specialtyService.List(c.Request.Context(), rd.ProfessionalID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"specialties": specialties})
}
