package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shulchan-app/shulchan-backend/internal/dto"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return gdb, mock
}

func userColumns() []string {
	return []string{"id", "auth_user_id", "role", "is_verified", "email", "name", "image", "created_at", "updated_at"}
}

func validHostInput() *dto.HostInput {
	return &dto.HostInput{
		DOB:         time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		PhoneNumber: "+972537081715",
		Address:     "12 Bayit Vagan, Jerusalem",
		Entrance:    "B",
		Floor:       "2",
		Kashrut:     "Mehadrin",
		Sector:      "Haredi",
		Ethnicity:   "Sefardi",
	}
}

func validGuestInput() *dto.GuestInput {
	return &dto.GuestInput{
		DOB:       time.Date(1996, 10, 1, 0, 0, 0, 0, time.UTC),
		Region:    "Jerusalem",
		Gender:    "F",
		Sector:    "Haredi",
		Ethnicity: "Sefardi",
	}
}
