package services

import (
	"strings"
	"testing"
	"time"

	"github.com/shulchan-app/shulchan-backend/internal/dto"
)

func TestValidateHost(t *testing.T) {
	svc := NewProfileService(nil)

	if err := svc.validateHost(validHostInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(in *dto.HostInput)
		field  string
	}{
		{"zero dob", func(in *dto.HostInput) { in.DOB = time.Time{} }, "dob"},
		{"future dob", func(in *dto.HostInput) { in.DOB = time.Now().Add(24 * time.Hour) }, "dob"},
		{"short phone", func(in *dto.HostInput) { in.PhoneNumber = "12345" }, "phone_number"},
		{"letters in phone", func(in *dto.HostInput) { in.PhoneNumber = "05x-1234567" }, "phone_number"},
		{"short address", func(in *dto.HostInput) { in.Address = "abc" }, "address"},
		{"bad kashrut", func(in *dto.HostInput) { in.Kashrut = "mehadrin" }, "kashrut"},
		{"bad sector", func(in *dto.HostInput) { in.Sector = "Unknown" }, "sector"},
		{"bad ethnicity", func(in *dto.HostInput) { in.Ethnicity = "" }, "ethnicity"},
		{"long notes", func(in *dto.HostInput) { in.Notes = strings.Repeat("x", 1001) }, "notes"},
	}

	for _, tt := range tests {
		in := validHostInput()
		tt.mutate(in)
		err := svc.validateHost(in)
		if !IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %v", tt.name, err)
			continue
		}
		if ve, ok := err.(*ValidationError); ok && ve.Field != tt.field {
			t.Errorf("%s: expected field %q, got %q", tt.name, tt.field, ve.Field)
		}
	}
}

func TestValidateGuest(t *testing.T) {
	svc := NewProfileService(nil)

	if err := svc.validateGuest(validGuestInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(in *dto.GuestInput)
		field  string
	}{
		{"short region", func(in *dto.GuestInput) { in.Region = "TA" }, "region"},
		{"bad gender", func(in *dto.GuestInput) { in.Gender = "f" }, "gender"},
		{"bad sector", func(in *dto.GuestInput) { in.Sector = "haredi" }, "sector"},
		{"bad ethnicity", func(in *dto.GuestInput) { in.Ethnicity = "Sephardi" }, "ethnicity"},
		{"long notes", func(in *dto.GuestInput) { in.Notes = strings.Repeat("y", 1001) }, "notes"},
	}

	for _, tt := range tests {
		in := validGuestInput()
		tt.mutate(in)
		err := svc.validateGuest(in)
		if !IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %v", tt.name, err)
			continue
		}
		if ve, ok := err.(*ValidationError); ok && ve.Field != tt.field {
			t.Errorf("%s: expected field %q, got %q", tt.name, tt.field, ve.Field)
		}
	}
}

func TestNotesScreening(t *testing.T) {
	svc := NewProfileService(nil)

	in := validGuestInput()
	in.Notes = "Looking forward to meeting you, check www.my-site.com for pics"
	if err := svc.validateGuest(in); !IsValidation(err) {
		t.Errorf("notes with a link should be rejected, got %v", err)
	}

	in = validGuestInput()
	in.Notes = "Quiet family, two kids, we keep strictly kosher"
	if err := svc.validateGuest(in); err != nil {
		t.Errorf("ordinary notes rejected: %v", err)
	}
}

func TestNotesScreener_Check(t *testing.T) {
	ns := NewNotesScreener()

	if reason := ns.Check(""); reason != "" {
		t.Errorf("empty text should pass, got %q", reason)
	}
	if reason := ns.Check("this is bullshit"); reason == "" {
		t.Error("profanity should be flagged")
	}
	if reason := ns.Check("scammer alert"); reason == "" {
		t.Error("scam language should be flagged")
	}
	if reason := ns.Check("visit https://spam.example.io now"); reason == "" {
		t.Error("URL should be flagged")
	}
	// Substring inside a word must not trip the word-boundary match.
	if reason := ns.Check("we live near the Assuta hospital"); reason != "" {
		t.Errorf("word-boundary match misfired: %q", reason)
	}
}

