package dto

import "github.com/shulchan-app/shulchan-backend/internal/models"

// AdminUserEntry backs the admin table: the user record flattened together
// with its host profile when one exists, so the table can show address,
// phone and kashrut next to the role and verification columns.
type AdminUserEntry struct {
	*models.User
	Host *models.Host `json:"host"`
}
