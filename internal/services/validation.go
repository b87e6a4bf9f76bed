package services

import (
	"regexp"
	"time"

	"github.com/shulchan-app/shulchan-backend/internal/dto"
	"github.com/shulchan-app/shulchan-backend/internal/models"
)

const maxNotesLen = 1000

var phonePattern = regexp.MustCompile(`^[0-9\-+()\s]+$`)

func (s *ProfileService) validateHost(in *dto.HostInput) error {
	if in.DOB.IsZero() || in.DOB.After(time.Now()) {
		return &ValidationError{Field: "dob", Reason: "must be a past date"}
	}
	if len(in.PhoneNumber) < 9 || !phonePattern.MatchString(in.PhoneNumber) {
		return &ValidationError{Field: "phone_number", Reason: "must be a valid phone number"}
	}
	if len(in.Address) < 5 {
		return &ValidationError{Field: "address", Reason: "must be at least 5 characters"}
	}
	if !models.ValidKashrut(in.Kashrut) {
		return &ValidationError{Field: "kashrut", Reason: "not a recognized kashrut level"}
	}
	if !models.ValidSector(in.Sector) {
		return &ValidationError{Field: "sector", Reason: "not a recognized sector"}
	}
	if !models.ValidEthnicity(in.Ethnicity) {
		return &ValidationError{Field: "ethnicity", Reason: "not a recognized ethnicity"}
	}
	return s.validateNotes(in.Notes)
}

func (s *ProfileService) validateGuest(in *dto.GuestInput) error {
	if in.DOB.IsZero() || in.DOB.After(time.Now()) {
		return &ValidationError{Field: "dob", Reason: "must be a past date"}
	}
	if len(in.Region) < 3 {
		return &ValidationError{Field: "region", Reason: "must be at least 3 characters"}
	}
	if !models.ValidGender(in.Gender) {
		return &ValidationError{Field: "gender", Reason: "not a recognized gender"}
	}
	if !models.ValidSector(in.Sector) {
		return &ValidationError{Field: "sector", Reason: "not a recognized sector"}
	}
	if !models.ValidEthnicity(in.Ethnicity) {
		return &ValidationError{Field: "ethnicity", Reason: "not a recognized ethnicity"}
	}
	return s.validateNotes(in.Notes)
}

func (s *ProfileService) validateNotes(notes string) error {
	if len(notes) > maxNotesLen {
		return &ValidationError{Field: "notes", Reason: "can contain up to 1000 characters"}
	}
	if reason := s.screen.Check(notes); reason != "" {
		return &ValidationError{Field: "notes", Reason: reason}
	}
	return nil
}
