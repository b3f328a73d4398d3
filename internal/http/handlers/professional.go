package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/oficiolab/promarket-backend/internal/http/response"
	"github.com/oficiolab/promarket-backend/internal/pkg/ctxutil"
	"github.com/oficiolab/promarket-backend/internal/services"
)

type ProfessionalHandler struct {
	professionalService services.ProfessionalService
}

func NewProfessionalHandler(professionalService services.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{professionalService: professionalService}
}

type professionalRequest struct {
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Profession      string         `json:"profession"`
	Bio             string         `json:"bio"`
	YearsExperience int            `json:"years_experience"`
	Metadata        datatypes.JSON `json:"metadata,omitempty"`
}

func (req professionalRequest) toInput() services.ProfessionalInput {
	return services.ProfessionalInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Profession:      req.Profession,
		Bio:             req.Bio,
		YearsExperience: req.YearsExperience,
		Metadata:        req.Metadata,
	}
}

// POST /professionals
func (ph *ProfessionalHandler) Create(c *gin.Context) {
	var req professionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	pro, err := ph.professionalService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"professional": pro})
}

// GET /professionals/:id
func (ph *ProfessionalHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	pro, err := ph.professionalService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"professional": pro})
}

// PATCH /me/profile
func (ph *ProfessionalHandler) UpdateMyProfile(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req professionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	pro, err := ph.professionalService.UpdateProfile(c.Request.Context(), rd.ProfessionalID, req.toInput())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"professional": pro})
}

// PATCH /me/availability
// body: { "available": true }
func (ph *ProfessionalHandler) SetMyAvailability(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req struct {
		Available *bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		response.RespondError(c, http.StatusBadRequest, "validation", errMissingField("available"))
		return
	}
	pro, err := ph.professionalService.SetAvailability(c.Request.Context(), rd.ProfessionalID, *req.Available)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"professional": pro})
}

// POST /admin/professionals/:id/verify
func (ph *ProfessionalHandler) Verify(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	pro, err := ph.professionalService.Verify(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"professional": pro})
}

// DELETE /me
func (ph *ProfessionalHandler) DeactivateMe(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if err := ph.professionalService.Deactivate(c.Request.Context(), rd.ProfessionalID); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
