package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/servicehub/servicehub-api/internal/errors"
	"github.com/servicehub/servicehub-api/internal/services"
)

// UserHandler coordinates user registration HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// SignupRequest is the request body for user registration.
type SignupRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
//
//	@Summary		Register a new user
//	@Description	Creates a user unless the email is already registered. A taken email still returns 200 with a message.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignupRequest	true	"Signup request"
//	@Success		200		{object}	services.SignupResult
//	@Failure		400		{object}	errors.APIError
//	@Failure		500		{object}	errors.APIError
//	@Router			/users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.userService.Signup(services.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}
