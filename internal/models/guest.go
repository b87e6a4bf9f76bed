package models

import (
	"time"

	"github.com/google/uuid"
)

// Guest is a guest profile: one per auth subject at most.
type Guest struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AuthUserID string    `gorm:"size:255;not null;uniqueIndex" json:"auth_user_id"`
	DOB        time.Time `gorm:"not null" json:"dob"`
	Region     string    `gorm:"size:255;not null;index" json:"region"`
	Gender     string    `gorm:"size:10;not null;index" json:"gender"`
	Sector     string    `gorm:"size:50;not null;index" json:"sector"`
	Ethnicity  string    `gorm:"size:50;not null;index" json:"ethnicity"`
	Notes      string    `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
