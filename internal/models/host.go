package models

import (
	"time"

	"github.com/google/uuid"
)

// Host is a host profile: one per auth subject at most. The sector,
// ethnicity and kashrut indexes only accelerate directory filtering.
type Host struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AuthUserID          string    `gorm:"size:255;not null;uniqueIndex" json:"auth_user_id"`
	DOB                 time.Time `gorm:"not null" json:"dob"`
	PhoneNumber         string    `gorm:"size:30;not null" json:"phone_number"`
	Address             string    `gorm:"size:500;not null" json:"address"`
	Entrance            string    `gorm:"size:20" json:"entrance"`
	Floor               string    `gorm:"size:20" json:"floor"`
	HasDisabilityAccess bool      `gorm:"default:false" json:"has_disability_access"`
	Kashrut             string    `gorm:"size:50;not null;index" json:"kashrut"`
	Sector              string    `gorm:"size:50;not null;index" json:"sector"`
	Ethnicity           string    `gorm:"size:50;not null;index" json:"ethnicity"`
	Notes               string    `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
