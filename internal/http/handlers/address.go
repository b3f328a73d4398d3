package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oficiolab/promarket-backend/internal/http/response"
	"github.com/oficiolab/promarket-backend/internal/pkg/ctxutil"
	"github.com/oficiolab/promarket-backend/internal/services"
)

type AddressHandler struct {
	addressService services.AddressService
}

func NewAddressHandler(addressService services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

type addressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
}

func (req addressRequest) toInput() services.AddressInput {
	return services.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Region:     req.Region,
		PostalCode: req.PostalCode,
	}
}

// POST /me/addresses
func (ah *AddressHandler) Add(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	address, err := ah.addressService.Add(c.Request.Context(), rd.ProfessionalID, req.toInput())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"address": address})
}

// PATCH /me/addresses/:id
func (ah *AddressHandler) Update(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	address, err := ah.addressService.Update(c.Request.Context(), rd.ProfessionalID, id, req.toInput())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"address": address})
}

// POST /me/addresses/:id/principal
func (ah *AddressHandler) SetPrincipal(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := ah.addressService.SetPrincipal(c.Request.Context(), rd.ProfessionalID, id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /me/addresses/:id
func (ah *AddressHandler) Deactivate(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := ah.addressService.Deactivate(c.Request.Context(), rd.ProfessionalID, id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /me/addresses
func (ah *AddressHandler) List(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	addresses, err := ah.addressService.List(c.Request.Context(), rd.ProfessionalID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"addresses": addresses})
}
