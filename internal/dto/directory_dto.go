package dto

import (
	"time"

	"github.com/google/uuid"
)

// HostEntry is a host profile joined with the owning user's public fields.
// Served only to authenticated callers; the phone number stays in.
type HostEntry struct {
	ID                  uuid.UUID `json:"id"`
	AuthUserID          string    `json:"auth_user_id"`
	Name                string    `json:"name"`
	Email               string    `json:"email,omitempty"`
	Image               string    `json:"image,omitempty"`
	IsVerified          bool      `json:"is_verified"`
	DOB                 time.Time `json:"dob"`
	PhoneNumber         string    `json:"phone_number"`
	Address             string    `json:"address"`
	Entrance            string    `json:"entrance"`
	Floor               string    `json:"floor"`
	HasDisabilityAccess bool      `json:"has_disability_access"`
	Kashrut             string    `json:"kashrut"`
	Sector              string    `json:"sector"`
	Ethnicity           string    `json:"ethnicity"`
	Notes               string    `json:"notes,omitempty"`
}

// PublicHostEntry is the unauthenticated host listing. It is a separate type
// rather than a redacted HostEntry so the sensitive fields cannot leak by
// serialization accident.
type PublicHostEntry struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Image               string    `json:"image,omitempty"`
	Address             string    `json:"address"`
	Sector              string    `json:"sector"`
	Ethnicity           string    `json:"ethnicity"`
	Kashrut             string    `json:"kashrut"`
	HasDisabilityAccess bool      `json:"has_disability_access"`
}

// GuestEntry is a guest profile joined with the owning user's public fields.
// There is no public variant of this type on purpose.
type GuestEntry struct {
	ID         uuid.UUID `json:"id"`
	AuthUserID string    `json:"auth_user_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image,omitempty"`
	IsVerified bool      `json:"is_verified"`
	DOB        time.Time `json:"dob"`
	Region     string    `json:"region"`
	Gender     string    `json:"gender"`
	Sector     string    `json:"sector"`
	Ethnicity  string    `json:"ethnicity"`
	Notes      string    `json:"notes,omitempty"`
}

type PeopleResponse struct {
	Hosts       []HostEntry  `json:"hosts"`
	Guests      []GuestEntry `json:"guests"`
	Permissions RoleInfo     `json:"permissions"`
}
