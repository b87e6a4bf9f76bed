package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shulchan-app/shulchan-backend/internal/authctx"
	"github.com/shulchan-app/shulchan-backend/internal/dto"
	"github.com/shulchan-app/shulchan-backend/internal/models"
	"github.com/shulchan-app/shulchan-backend/internal/roles"
)

// UserService owns the community user records: one per auth subject,
// created on first sight, role managed through the central derivation.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ResolveOrCreate maps an authenticated principal to its user record,
// creating it on first sight. Idempotent: a subject already on file is
// returned unchanged, display hints are not re-applied. The initial role is
// derived from any profiles already on file for the subject, which can exist
// ahead of the user row after a self-delete.
func (s *UserService) ResolveOrCreate(p authctx.Principal) (*models.User, error) {
	if p.Subject == "" {
		return nil, ErrUnauthenticated
	}

	var user models.User
	err := s.db.Where("auth_user_id = ?", p.Subject).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	var hostCount, guestCount int64
	if err := s.db.Model(&models.Host{}).Where("auth_user_id = ?", p.Subject).Count(&hostCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Guest{}).Where("auth_user_id = ?", p.Subject).Count(&guestCount).Error; err != nil {
		return nil, err
	}

	user = models.User{
		ID:         uuid.New(),
		AuthUserID: p.Subject,
		Role:       roles.Derive(roles.RoleUser, hostCount > 0, guestCount > 0),
		IsVerified: false,
		Email:      p.Email,
		Name:       p.Name,
		Image:      p.Image,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// GetByAuthID returns the user for a subject, or nil when none exists yet.
func (s *UserService) GetByAuthID(subject string) (*models.User, error) {
	var user models.User
	err := s.db.Where("auth_user_id = ?", subject).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FullProfile returns the user joined with both of its optional profiles.
func (s *UserService) FullProfile(subject string) (*dto.FullProfileResponse, error) {
	user, err := s.GetByAuthID(subject)
	if err != nil || user == nil {
		return nil, err
	}

	var host models.Host
	var hostPtr *models.Host
	if err := s.db.Where("auth_user_id = ?", subject).First(&host).Error; err == nil {
		hostPtr = &host
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var guest models.Guest
	var guestPtr *models.Guest
	if err := s.db.Where("auth_user_id = ?", subject).First(&guest).Error; err == nil {
		guestPtr = &guest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &dto.FullProfileResponse{User: user, Host: hostPtr, Guest: guestPtr}, nil
}

// Dashboard returns the role flags plus whether the profile matching the
// user's role has been filled in yet.
func (s *UserService) Dashboard(subject string) (*dto.DashboardResponse, error) {
	full, err := s.FullProfile(subject)
	if err != nil || full == nil {
		return nil, err
	}

	info := dto.NewRoleInfo(full.User.Role)
	hasProfile := true
	switch {
	case info.IsHost:
		hasProfile = full.Host != nil
	case info.IsGuest:
		hasProfile = full.Guest != nil
	}

	return &dto.DashboardResponse{
		User:       full.User,
		HasProfile: hasProfile,
		RoleInfo:   info,
	}, nil
}

// AssignRole sets a target user's role on behalf of an actor. The actor must
// dominate both the role being replaced and the role being granted; this is
// the only path that can grant admin. Validation and authorization failures
// leave the stored role untouched.
func (s *UserService) AssignRole(actorSubject string, targetID uuid.UUID, rawRole string) (*models.User, error) {
	newRole, err := roles.Parse(rawRole)
	if err != nil {
		return nil, &ValidationError{Field: "role", Reason: "not a recognized role"}
	}

	actor, err := s.GetByAuthID(actorSubject)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	var target models.User
	if err := s.db.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !roles.CanAccess(actor.Role, target.Role) {
		return nil, &ForbiddenError{ActorRole: actor.Role, Required: target.Role}
	}
	if !roles.CanAccess(actor.Role, newRole) {
		return nil, &ForbiddenError{ActorRole: actor.Role, Required: newRole}
	}

	if err := s.db.Model(&target).Update("role", newRole).Error; err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	target.Role = newRole
	return &target, nil
}

// SetVerified flips the manual verification flag on a user (admin table action).
func (s *UserService) SetVerified(targetID uuid.UUID, verified bool) (*models.User, error) {
	var target models.User
	if err := s.db.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&target).Update("is_verified", verified).Error; err != nil {
		return nil, err
	}
	target.IsVerified = verified
	return &target, nil
}

// DeleteSelf removes the user record for a subject. Profiles are left in
// place: self-deletion only severs the community membership row.
func (s *UserService) DeleteSelf(subject string) (bool, error) {
	result := s.db.Where("auth_user_id = ?", subject).Delete(&models.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListAll returns every user for the admin table, newest first, each joined
// with its host profile when one exists.
func (s *UserService) ListAll() ([]dto.AdminUserEntry, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	hostBySubject := make(map[string]*models.Host, len(users))
	if len(users) > 0 {
		subjects := make([]string, 0, len(users))
		for _, u := range users {
			subjects = append(subjects, u.AuthUserID)
		}
		var hosts []models.Host
		if err := s.db.Where("auth_user_id IN ?", subjects).Find(&hosts).Error; err != nil {
			return nil, err
		}
		for i := range hosts {
			hostBySubject[hosts[i].AuthUserID] = &hosts[i]
		}
	}

	entries := make([]dto.AdminUserEntry, 0, len(users))
	for i := range users {
		entries = append(entries, dto.AdminUserEntry{
			User: &users[i],
			Host: hostBySubject[users[i].AuthUserID],
		})
	}
	return entries, nil
}
