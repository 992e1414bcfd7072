package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const InvitationStatusPending = "pending"

// InvitationTTL is how long a newly created invitation stays valid.
// Expiry is recorded on the row; nothing enforces it yet.
const InvitationTTL = 24 * time.Hour

type Invitation struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	OrgID     string    `gorm:"type:uuid" json:"org_id"`
	InvitedBy string    `gorm:"type:uuid" json:"invited_by"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Role      string    `gorm:"type:varchar(50)" json:"role"`
	Status    string    `gorm:"type:varchar(20)" json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
