package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/servicehub/servicehub-api/internal/errors"
	"github.com/servicehub/servicehub-api/internal/services"
)

// OrganizationHandler coordinates organization HTTP handlers.
type OrganizationHandler struct {
	orgService *services.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
	}
}

// CreateOrganizationRequest is the request body for creating an organization.
type CreateOrganizationRequest struct {
	Name    string `json:"name" binding:"required"`
	OrgType string `json:"org_type" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
}

// CreateOrganization godoc
//
//	@Summary		Create an organization
//	@Description	Persists a new organization and seeds an admin membership for the creating user.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrganizationRequest	true	"Organization create request"
//	@Success		200		{object}	services.CreateOrganizationResult
//	@Failure		400		{object}	errors.APIError
//	@Failure		500		{object}	errors.APIError
//	@Router			/organization/create [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.orgService.CreateOrganization(services.CreateOrganizationInput{
		Name:    req.Name,
		OrgType: req.OrgType,
		UserID:  req.UserID,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}
