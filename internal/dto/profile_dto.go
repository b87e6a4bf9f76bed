package dto

import (
	"time"

	"github.com/shulchan-app/shulchan-backend/internal/models"
	"github.com/shulchan-app/shulchan-backend/internal/roles"
)

type HostInput struct {
	DOB                 time.Time `json:"dob"`
	PhoneNumber         string    `json:"phone_number"`
	Address             string    `json:"address"`
	Entrance            string    `json:"entrance"`
	Floor               string    `json:"floor"`
	HasDisabilityAccess bool      `json:"has_disability_access"`
	Kashrut             string    `json:"kashrut"`
	Sector              string    `json:"sector"`
	Ethnicity           string    `json:"ethnicity"`
	Notes               string    `json:"notes"`
}

type GuestInput struct {
	DOB       time.Time `json:"dob"`
	Region    string    `json:"region"`
	Gender    string    `json:"gender"`
	Sector    string    `json:"sector"`
	Ethnicity string    `json:"ethnicity"`
	Notes     string    `json:"notes"`
}

// ProfileResponse wraps an optional profile; a missing profile is a normal
// state driving the profile-completion UI, not an error.
type HostProfileResponse struct {
	Host *models.Host `json:"host"`
}

type GuestProfileResponse struct {
	Guest *models.Guest `json:"guest"`
}

type FullProfileResponse struct {
	User  *models.User  `json:"user"`
	Host  *models.Host  `json:"host"`
	Guest *models.Guest `json:"guest"`
}

type DashboardResponse struct {
	User       *models.User `json:"user"`
	HasProfile bool         `json:"has_profile"`
	RoleInfo   RoleInfo     `json:"role_info"`
}

type RoleInfo struct {
	IsHost  bool `json:"is_host"`
	IsGuest bool `json:"is_guest"`
	IsAdmin bool `json:"is_admin"`
}

type AssignRoleRequest struct {
	Role string `json:"role"`
}

type VerifyRequest struct {
	IsVerified bool `json:"is_verified"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

func NewRoleInfo(r roles.Role) RoleInfo {
	return RoleInfo{
		IsHost:  roles.IsHost(r),
		IsGuest: roles.IsGuest(r),
		IsAdmin: r == roles.RoleAdmin,
	}
}
