package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/oficiolab/promarket-backend/internal/http/response"
	"github.com/oficiolab/promarket-backend/internal/pkg/ctxutil"
	"github.com/oficiolab/promarket-backend/internal/services"
)

type PortfolioHandler struct {
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

type projectRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"`
}

func (req projectRequest) toInput() services.ProjectInput {
	return services.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		CompletedAt: req.CompletedAt,
		Metadata:    req.Metadata,
	}
}

// POST /me/projects
func (ph *PortfolioHandler) AddProject(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	project, err := ph.portfolioService.AddProject(c.Request.Context(), rd.ProfessionalID, req.toInput())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"project": project})
}

// PATCH /me/projects/:id
func (ph *PortfolioHandler) UpdateProject(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	project, err := ph.portfolioService.UpdateProject(c.Request.Context(), rd.ProfessionalID, id, req.toInput())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"project": project})
}

// POST /professionals/:id/projects/:project_id/rating
// body: { "rating": 4.5, "comment": "..." }
func (ph *PortfolioHandler) RateProject(c *gin.Context) {
	professionalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var req struct {
		Rating  *float64 `json:"rating"`
		Comment string   `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating == nil {
		response.RespondError(c, http.StatusBadRequest, "validation", errMissingField("rating"))
		return
	}
	project, err := ph.portfolioService.RateProject(c.Request.Context(), professionalID, projectID, services.ProjectRating{
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"project": project})
}

// DELETE /me/projects/:id
func (ph *PortfolioHandler) DeactivateProject(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := ph.portfolioService.DeactivateProject(c.Request.Context(), rd.ProfessionalID, id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// POST /me/projects/:id/images
// body: { "stage": "before", "url": "...", "position": 0 }
func (ph *PortfolioHandler) AddImage(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var req struct {
		Stage    string `json:"stage"`
		URL      string `json:"url"`
		Position int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	image, err := ph.portfolioService.AddImage(c.Request.Context(), rd.ProfessionalID, projectID, services.ProjectImageInput{
		Stage:    req.Stage,
		URL:      req.URL,
		Position: req.Position,
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"image": image})
}

// DELETE /me/projects/:id/images/:image_id
func (ph *PortfolioHandler) DeleteImage(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	imageID, err := uuid.Parse(c.Param("image_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := ph.portfolioService.DeleteImage(c.Request.Context(), rd.ProfessionalID, projectID, imageID); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /me/projects
func (ph *PortfolioHandler) List(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	projects, err := ph.portfolioService.List(c.Request.Context(), rd.ProfessionalID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"projects": projects})
}
