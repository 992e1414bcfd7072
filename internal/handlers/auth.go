package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/servicehub/servicehub-api/internal/errors"
	"github.com/servicehub/servicehub-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest is the request body for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
//
//	@Summary		Authenticate a user
//	@Description	Verifies email and password. Unknown emails and wrong passwords return 200 with a message; no session or token is issued.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	services.LoginResult
//	@Failure		400		{object}	errors.APIError
//	@Failure		500		{object}	errors.APIError
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ForgotPasswordRequest is the request body for a password reset.
type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ForgotPassword godoc
//
//	@Summary		Reset a password
//	@Description	Overwrites the stored password hash for the given email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ForgotPasswordRequest	true	"Password reset request"
//	@Success		200		{object}	services.ForgotPasswordResult
//	@Failure		400		{object}	errors.APIError
//	@Failure		500		{object}	errors.APIError
//	@Router			/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.ForgotPassword(services.ForgotPasswordInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}
