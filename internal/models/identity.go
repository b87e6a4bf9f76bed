package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity is an email/password credential record. It belongs to the auth
// layer only: the community User row references it by ID (as AuthUserID) and
// carries the public fields; nothing outside internal/services/auth touches
// the password hash.
type Identity struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"size:255" json:"name,omitempty"`
	Image        string    `gorm:"size:500" json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Identity) TableName() string {
	return "identities"
}
