package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"

	MembershipStatusActive = "active"
)

type Membership struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	UserID    string    `gorm:"type:uuid" json:"user_id"`
	OrgID     string    `gorm:"type:uuid" json:"org_id"`
	Role      string    `gorm:"type:varchar(50)" json:"role"`
	Status    string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User         User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Organization Organization `gorm:"foreignKey:OrgID" json:"organization,omitempty"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
