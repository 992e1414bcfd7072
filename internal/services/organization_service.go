package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/servicehub/servicehub-api/internal/models"
	"github.com/servicehub/servicehub-api/internal/repository"
)

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		orgRepo: orgRepo,
	}
}

// CreateOrganizationInput represents parameters to create a new organization.
type CreateOrganizationInput struct {
	Name    string
	OrgType string
	UserID  string
}

// CreateOrganizationResult is the outcome of creating an organization.
type CreateOrganizationResult struct {
	Message string `json:"message"`
	OrgID   string `json:"org_id,omitempty"`
}

// CreateOrganization persists a new organization and seeds an admin
// membership for the creating user.
func (s *OrganizationService) CreateOrganization(input CreateOrganizationInput) (*CreateOrganizationResult, error) {
	org := &models.Organization{
		Name:      input.Name,
		OrgCode:   uuid.NewString()[:6],
		OrgType:   input.OrgType,
		CreatedBy: input.UserID,
	}

	if err := s.orgRepo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	member := &models.Membership{
		UserID: input.UserID,
		OrgID:  org.ID,
		Role:   models.RoleAdmin,
		Status: models.MembershipStatusActive,
	}

	if err := s.orgRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add admin to organization: %w", err)
	}

	return &CreateOrganizationResult{
		Message: "Organization created",
		OrgID:   org.ID,
	}, nil
}
