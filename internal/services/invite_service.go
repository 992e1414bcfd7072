package services

import (
	"fmt"
	"time"

	"github.com/servicehub/servicehub-api/internal/models"
	"github.com/servicehub/servicehub-api/internal/repository"
)

// InviteService records email invitations to organizations.
type InviteService struct {
	inviteRepo repository.InvitationRepository
}

// NewInviteService creates a new InviteService.
func NewInviteService(inviteRepo repository.InvitationRepository) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
	}
}

// InviteUserInput represents parameters to invite a user by email.
type InviteUserInput struct {
	OrgID     string
	InvitedBy string
	Email     string
	Role      string
}

// InviteUserResult is the outcome of creating an invitation.
type InviteUserResult struct {
	Message string `json:"message"`
}

// InviteUser persists a pending invitation that expires 24 hours after
// creation. Nothing consumes the record yet.
func (s *InviteService) InviteUser(input InviteUserInput) (*InviteUserResult, error) {
	invite := &models.Invitation{
		OrgID:     input.OrgID,
		InvitedBy: input.InvitedBy,
		Email:     input.Email,
		Role:      input.Role,
		Status:    models.InvitationStatusPending,
		ExpiresAt: time.Now().Add(models.InvitationTTL),
	}

	if err := s.inviteRepo.Create(invite); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return &InviteUserResult{Message: "Invitation sent"}, nil
}
