package services

import (
	"errors"
	"fmt"

	"github.com/servicehub/servicehub-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles credential checks and password resets.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is the outcome of a login attempt. Unknown emails and wrong
// passwords are normal outcomes carried in Message; no session or token is
// issued.
type LoginResult struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Login verifies credentials and returns identifying data on success.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &LoginResult{Message: "User not found"}, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return &LoginResult{Message: "Invalid password"}, nil
	}

	return &LoginResult{
		Message: "Login successful",
		UserID:  user.ID,
		Email:   user.Email,
	}, nil
}

// ForgotPasswordInput holds the email and replacement password.
type ForgotPasswordInput struct {
	Email       string
	NewPassword string
}

// ForgotPasswordResult is the outcome of a password reset.
type ForgotPasswordResult struct {
	Message string `json:"message"`
}

// ForgotPassword overwrites the stored hash for the given email. Knowing
// the email is the only proof of identity required.
func (s *AuthService) ForgotPassword(input ForgotPasswordInput) (*ForgotPasswordResult, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ForgotPasswordResult{Message: "User not found"}, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hashed)
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	return &ForgotPasswordResult{Message: "Password updated successfully"}, nil
}
