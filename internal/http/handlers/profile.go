package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oficiolab/promarket-backend/internal/http/response"
	"github.com/oficiolab/promarket-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
	scoreService   services.ScoreService
}

func NewProfileHandler(profileService services.ProfileService, scoreService services.ScoreService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, scoreService: scoreService}
}

// GET /professionals/:id/profile
func (ph *ProfileHandler) GetFullProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	view, err := ph.profileService.BuildFullProfile(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": view})
}

// GET /professionals/:id/score
func (ph *ProfileHandler) GetScore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	score, err := ph.scoreService.ComputeScore(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"score": score})
}
