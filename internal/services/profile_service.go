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

var ErrProfileExists = errors.New("profile already exists")

// ProfileService maintains host and guest profiles and keeps the owning
// user's role synchronized. Every write runs in a single transaction with
// the role recomputation, so a profile can never exist with a stale role.
type ProfileService struct {
	db     *gorm.DB
	screen *NotesScreener
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db, screen: NewNotesScreener()}
}

func (s *ProfileService) CreateHost(p authctx.Principal, in *dto.HostInput) (*models.Host, error) {
	if p.Subject == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.validateHost(in); err != nil {
		return nil, err
	}

	host := newHost(p.Subject, in)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Host
		if err := tx.Where("auth_user_id = ?", p.Subject).First(&existing).Error; err == nil {
			return ErrProfileExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(host).Error; err != nil {
			return fmt.Errorf("failed to create host profile: %w", err)
		}
		return s.syncRole(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return host, nil
}

func (s *ProfileService) UpsertHost(p authctx.Principal, in *dto.HostInput) (*models.Host, bool, error) {
	if p.Subject == "" {
		return nil, false, ErrUnauthenticated
	}
	if err := s.validateHost(in); err != nil {
		return nil, false, err
	}

	var out *models.Host
	created := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Host
		err := tx.Where("auth_user_id = ?", p.Subject).First(&existing).Error
		switch {
		case err == nil:
			applyHostInput(&existing, in)
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update host profile: %w", err)
			}
			out = &existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			out = newHost(p.Subject, in)
			created = true
			if err := tx.Create(out).Error; err != nil {
				return fmt.Errorf("failed to create host profile: %w", err)
			}
		default:
			return err
		}
		return s.syncRole(tx, p)
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

// DeleteHost removes the host profile if present and recomputes the owner's
// role from what remains. Absence is not an error: the bool reports whether
// a deletion happened.
func (s *ProfileService) DeleteHost(p authctx.Principal) (bool, error) {
	if p.Subject == "" {
		return false, ErrUnauthenticated
	}

	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("auth_user_id = ?", p.Subject).Delete(&models.Host{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return s.syncRole(tx, p)
	})
	return deleted, err
}

func (s *ProfileService) GetHost(subject string) (*models.Host, error) {
	var host models.Host
	err := s.db.Where("auth_user_id = ?", subject).First(&host).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &host, nil
}

func (s *ProfileService) CreateGuest(p authctx.Principal, in *dto.GuestInput) (*models.Guest, error) {
	if p.Subject == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.validateGuest(in); err != nil {
		return nil, err
	}

	guest := newGuest(p.Subject, in)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Guest
		if err := tx.Where("auth_user_id = ?", p.Subject).First(&existing).Error; err == nil {
			return ErrProfileExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(guest).Error; err != nil {
			return fmt.Errorf("failed to create guest profile: %w", err)
		}
		return s.syncRole(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *ProfileService) UpsertGuest(p authctx.Principal, in *dto.GuestInput) (*models.Guest, bool, error) {
	if p.Subject == "" {
		return nil, false, ErrUnauthenticated
	}
	if err := s.validateGuest(in); err != nil {
		return nil, false, err
	}

	var out *models.Guest
	created := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Guest
		err := tx.Where("auth_user_id = ?", p.Subject).First(&existing).Error
		switch {
		case err == nil:
			applyGuestInput(&existing, in)
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update guest profile: %w", err)
			}
			out = &existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			out = newGuest(p.Subject, in)
			created = true
			if err := tx.Create(out).Error; err != nil {
				return fmt.Errorf("failed to create guest profile: %w", err)
			}
		default:
			return err
		}
		return s.syncRole(tx, p)
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func (s *ProfileService) DeleteGuest(p authctx.Principal) (bool, error) {
	if p.Subject == "" {
		return false, ErrUnauthenticated
	}

	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("auth_user_id = ?", p.Subject).Delete(&models.Guest{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return s.syncRole(tx, p)
	})
	return deleted, err
}

func (s *ProfileService) GetGuest(subject string) (*models.Guest, error) {
	var guest models.Guest
	err := s.db.Where("auth_user_id = ?", subject).First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// syncRole recomputes the owner's stored role from which profiles exist,
// inside the caller's transaction. A missing user row is created on the spot
// so a first-time "become a host/guest" works before the user ever hit
// resolve-or-create.
func (s *ProfileService) syncRole(tx *gorm.DB, p authctx.Principal) error {
	var hostCount, guestCount int64
	if err := tx.Model(&models.Host{}).Where("auth_user_id = ?", p.Subject).Count(&hostCount).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Guest{}).Where("auth_user_id = ?", p.Subject).Count(&guestCount).Error; err != nil {
		return err
	}

	var user models.User
	err := tx.Where("auth_user_id = ?", p.Subject).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:         uuid.New(),
			AuthUserID: p.Subject,
			Role:       roles.Derive(roles.RoleUser, hostCount > 0, guestCount > 0),
			Email:      p.Email,
			Name:       p.Name,
			Image:      p.Image,
		}
		return tx.Create(&user).Error
	}
	if err != nil {
		return err
	}

	next := roles.Derive(user.Role, hostCount > 0, guestCount > 0)
	if next == user.Role {
		return nil
	}
	return tx.Model(&user).Update("role", next).Error
}

func newHost(subject string, in *dto.HostInput) *models.Host {
	h := &models.Host{ID: uuid.New(), AuthUserID: subject}
	applyHostInput(h, in)
	return h
}

func applyHostInput(h *models.Host, in *dto.HostInput) {
	h.DOB = in.DOB
	h.PhoneNumber = in.PhoneNumber
	h.Address = in.Address
	h.Entrance = in.Entrance
	h.Floor = in.Floor
	h.HasDisabilityAccess = in.HasDisabilityAccess
	h.Kashrut = in.Kashrut
	h.Sector = in.Sector
	h.Ethnicity = in.Ethnicity
	h.Notes = in.Notes
}

func newGuest(subject string, in *dto.GuestInput) *models.Guest {
	g := &models.Guest{ID: uuid.New(), AuthUserID: subject}
	applyGuestInput(g, in)
	return g
}

func applyGuestInput(g *models.Guest, in *dto.GuestInput) {
	g.DOB = in.DOB
	g.Region = in.Region
	g.Gender = in.Gender
	g.Sector = in.Sector
	g.Ethnicity = in.Ethnicity
	g.Notes = in.Notes
}
