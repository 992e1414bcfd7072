package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/servicehub/servicehub-api/internal/errors"
	"github.com/servicehub/servicehub-api/internal/services"
)

// InviteHandler coordinates invitation HTTP handlers.
type InviteHandler struct {
	inviteService *services.InviteService
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(inviteService *services.InviteService) *InviteHandler {
	return &InviteHandler{
		inviteService: inviteService,
	}
}

// InviteRequest is the request body for inviting a user to an organization.
type InviteRequest struct {
	OrgID     string `json:"org_id" binding:"required"`
	InvitedBy string `json:"invited_by" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

// InviteUser godoc
//
//	@Summary		Invite a user to an organization
//	@Description	Records a pending invitation that expires 24 hours after creation.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InviteRequest	true	"Invite request"
//	@Success		200		{object}	services.InviteUserResult
//	@Failure		400		{object}	errors.APIError
//	@Failure		500		{object}	errors.APIError
//	@Router			/invite [post]
func (h *InviteHandler) InviteUser(c *gin.Context) {
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.inviteService.InviteUser(services.InviteUserInput{
		OrgID:     req.OrgID,
		InvitedBy: req.InvitedBy,
		Email:     req.Email,
		Role:      req.Role,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}
