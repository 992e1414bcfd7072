package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	OrgCode   string    `gorm:"type:varchar(6)" json:"org_code"`
	OrgType   string    `gorm:"type:varchar(50)" json:"org_type"`
	CreatedBy string    `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Memberships []Membership `gorm:"foreignKey:OrgID" json:"members,omitempty"`
}

// TableName keeps the British spelling the original schema used.
func (Organization) TableName() string {
	return "organisations"
}

// BeforeCreate assigns a fresh UUID primary key.
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
