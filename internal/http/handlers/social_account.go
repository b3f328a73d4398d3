package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oficiolab/promarket-backend/internal/http/response"
	"github.com/oficiolab/promarket-backend/internal/pkg/ctxutil"
	"github.com/oficiolab/promarket-backend/internal/services"
)

type SocialAccountHandler struct {
	socialAccountService services.SocialAccountService
}

func NewSocialAccountHandler(socialAccountService services.SocialAccountService) *SocialAccountHandler {
	return &SocialAccountHandler{socialAccountService: socialAccountService}
}

// PUT /me/social-accounts
// body: { "accounts": [ { "id": "...", "platform": "...", "url": "...", "username": "..." } ] }
// The list is the complete desired state; omitted accounts are removed.
func (sh *SocialAccountHandler) Replace(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req struct {
		Accounts []struct {
			ID       *uuid.UUID `json:"id,omitempty"`
			Platform string     `json:"platform"`
			URL      string     `json:"url"`
			Username string     `json:"username"`
		} `json:"accounts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	desired := make([]services.SocialAccountInput, 0, len(req.Accounts))
	for _, account := range req.Accounts {
		desired = append(desired, services.SocialAccountInput{
			ID:       account.ID,
			Platform: account.Platform,
			URL:      account.URL,
			Username: account.Username,
		})
	}
	accounts, err := sh.socialAccountService.Replace(c.Request.Context(), rd.ProfessionalID, desired)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"social_accounts": accounts})
}

// GET /me/social-accounts
func (sh *SocialAccountHandler) List(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	accounts, err := sh.socialAccountService.List(c.Request.Context(), rd.ProfessionalID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"social_accounts": accounts})
}
