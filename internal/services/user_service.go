package services

import (
	"errors"
	"fmt"

	"github.com/servicehub/servicehub-api/internal/models"
	"github.com/servicehub/servicehub-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles user registration.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	FullName string
	Email    string
	Password string
}

// SignupResult is the outcome of a signup attempt. A taken email is a
// normal outcome, not an error.
type SignupResult struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

// Signup creates a new user unless the email is already registered.
func (s *UserService) Signup(input SignupInput) (*SignupResult, error) {
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return &SignupResult{Message: "Email already exists"}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: string(hashed),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &SignupResult{
		Message: "User created successfully",
		UserID:  user.ID,
	}, nil
}
