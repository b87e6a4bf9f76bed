package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shulchan-app/shulchan-backend/internal/roles"
)

// User is the community member record. It is keyed by the auth subject
// (AuthUserID) from the identity layer; exactly one row per subject, and the
// pairing never changes after creation. The role field is stored for query
// efficiency but every mutation recomputes it through roles.Derive.
type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AuthUserID string     `gorm:"size:255;not null;uniqueIndex" json:"auth_user_id"`
	Role       roles.Role `gorm:"size:20;not null;default:'user'" json:"role"`
	IsVerified bool       `gorm:"default:false" json:"is_verified"`
	Email      string     `gorm:"size:255" json:"email,omitempty"`
	Name       string     `gorm:"size:255" json:"name,omitempty"`
	Image      string     `gorm:"size:500" json:"image,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
