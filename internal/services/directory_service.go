package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/shulchan-app/shulchan-backend/internal/dto"
	"github.com/shulchan-app/shulchan-backend/internal/models"
	"github.com/shulchan-app/shulchan-backend/internal/roles"
)

// DirectoryService builds the read-only, role-filtered listing views over
// host and guest profiles joined with user display data.
type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

// ListHosts returns the full authenticated host directory, filtered by q.
func (s *DirectoryService) ListHosts(q string) ([]dto.HostEntry, error) {
	var hosts []models.Host
	if err := s.db.Order("created_at DESC").Find(&hosts).Error; err != nil {
		return nil, err
	}

	users, err := s.usersBySubject(subjectsOfHosts(hosts))
	if err != nil {
		return nil, err
	}

	entries := make([]dto.HostEntry, 0, len(hosts))
	for _, h := range hosts {
		entries = append(entries, hostEntry(h, users[h.AuthUserID]))
	}
	return FilterHostEntries(entries, q), nil
}

// ListPublicHosts returns the unauthenticated host listing with sensitive
// fields stripped. Kept as its own operation so the full variant can never
// be reached without a token.
func (s *DirectoryService) ListPublicHosts() ([]dto.PublicHostEntry, error) {
	var hosts []models.Host
	if err := s.db.Order("created_at DESC").Find(&hosts).Error; err != nil {
		return nil, err
	}

	users, err := s.usersBySubject(subjectsOfHosts(hosts))
	if err != nil {
		return nil, err
	}

	entries := make([]dto.PublicHostEntry, 0, len(hosts))
	for _, h := range hosts {
		name := "Host"
		image := ""
		if u, ok := users[h.AuthUserID]; ok {
			if u.Name != "" {
				name = u.Name
			}
			image = u.Image
		}
		entries = append(entries, dto.PublicHostEntry{
			ID:                  h.ID,
			Name:                name,
			Image:               image,
			Address:             h.Address,
			Sector:              h.Sector,
			Ethnicity:           h.Ethnicity,
			Kashrut:             h.Kashrut,
			HasDisabilityAccess: h.HasDisabilityAccess,
		})
	}
	return entries, nil
}

// ListGuests returns the guest directory, filtered by q. Authenticated only;
// no public variant exists.
func (s *DirectoryService) ListGuests(q string) ([]dto.GuestEntry, error) {
	var guests []models.Guest
	if err := s.db.Order("created_at DESC").Find(&guests).Error; err != nil {
		return nil, err
	}

	subjects := make([]string, 0, len(guests))
	for _, g := range guests {
		subjects = append(subjects, g.AuthUserID)
	}
	users, err := s.usersBySubject(subjects)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.GuestEntry, 0, len(guests))
	for _, g := range guests {
		entries = append(entries, guestEntry(g, users[g.AuthUserID]))
	}
	return FilterGuestEntries(entries, q), nil
}

// People returns the combined directory gated by the viewer's role: hosts
// are visible to guests and admins, guests to hosts and admins.
func (s *DirectoryService) People(viewer roles.Role, q string) (*dto.PeopleResponse, error) {
	info := dto.NewRoleInfo(viewer)

	resp := &dto.PeopleResponse{
		Hosts:       []dto.HostEntry{},
		Guests:      []dto.GuestEntry{},
		Permissions: info,
	}

	if info.IsGuest || info.IsAdmin {
		hosts, err := s.ListHosts(q)
		if err != nil {
			return nil, err
		}
		resp.Hosts = hosts
	}
	if info.IsHost || info.IsAdmin {
		guests, err := s.ListGuests(q)
		if err != nil {
			return nil, err
		}
		resp.Guests = guests
	}
	return resp, nil
}

func (s *DirectoryService) usersBySubject(subjects []string) (map[string]models.User, error) {
	out := make(map[string]models.User, len(subjects))
	if len(subjects) == 0 {
		return out, nil
	}
	var users []models.User
	if err := s.db.Where("auth_user_id IN ?", subjects).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.AuthUserID] = u
	}
	return out, nil
}

func subjectsOfHosts(hosts []models.Host) []string {
	subjects := make([]string, 0, len(hosts))
	for _, h := range hosts {
		subjects = append(subjects, h.AuthUserID)
	}
	return subjects
}

func hostEntry(h models.Host, u models.User) dto.HostEntry {
	name := u.Name
	if name == "" {
		name = "Host"
	}
	return dto.HostEntry{
		ID:                  h.ID,
		AuthUserID:          h.AuthUserID,
		Name:                name,
		Email:               u.Email,
		Image:               u.Image,
		IsVerified:          u.IsVerified,
		DOB:                 h.DOB,
		PhoneNumber:         h.PhoneNumber,
		Address:             h.Address,
		Entrance:            h.Entrance,
		Floor:               h.Floor,
		HasDisabilityAccess: h.HasDisabilityAccess,
		Kashrut:             h.Kashrut,
		Sector:              h.Sector,
		Ethnicity:           h.Ethnicity,
		Notes:               h.Notes,
	}
}

func guestEntry(g models.Guest, u models.User) dto.GuestEntry {
	name := u.Name
	if name == "" {
		name = "Guest"
	}
	return dto.GuestEntry{
		ID:         g.ID,
		AuthUserID: g.AuthUserID,
		Name:       name,
		Image:      u.Image,
		IsVerified: u.IsVerified,
		DOB:        g.DOB,
		Region:     g.Region,
		Gender:     g.Gender,
		Sector:     g.Sector,
		Ethnicity:  g.Ethnicity,
		Notes:      g.Notes,
	}
}

// FilterHostEntries applies the directory search contract: case-insensitive
// substring match across name, address, sector, ethnicity and kashrut. An
// empty query matches everything.
func FilterHostEntries(entries []dto.HostEntry, q string) []dto.HostEntry {
	search := strings.ToLower(strings.TrimSpace(q))
	if search == "" {
		return entries
	}
	out := make([]dto.HostEntry, 0, len(entries))
	for _, e := range entries {
		if containsFold(search, e.Name, e.Address, e.Sector, e.Ethnicity, e.Kashrut) {
			out = append(out, e)
		}
	}
	return out
}

// FilterGuestEntries matches across name, region, sector and ethnicity.
func FilterGuestEntries(entries []dto.GuestEntry, q string) []dto.GuestEntry {
	search := strings.ToLower(strings.TrimSpace(q))
	if search == "" {
		return entries
	}
	out := make([]dto.GuestEntry, 0, len(entries))
	for _, e := range entries {
		if containsFold(search, e.Name, e.Region, e.Sector, e.Ethnicity) {
			out = append(out, e)
		}
	}
	return out
}

func containsFold(search string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
