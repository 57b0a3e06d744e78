package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vkotelnikov/sympta/internal/models"
)

type stubProfileRepository struct {
	profile models.UserProfile
	saved   *models.UserProfile
	err     error
}

func (stub *stubProfileRepository) Get() (models.UserProfile, error) {
	if stub.err != nil {
		return models.UserProfile{}, stub.err
	}
	return stub.profile, nil
}

func (stub *stubProfileRepository) Save(profile *models.UserProfile) error {
	if stub.err != nil {
		return stub.err
	}
	stub.saved = profile
	return nil
}

func TestUpdateProfilePersistsFields(t *testing.T) {
	repo := &stubProfileRepository{profile: models.UserProfile{ID: models.ProfileID}}
	service := NewSettingsService(repo)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	profile, err := service.UpdateProfile(ProfileInput{
		Name:           "  Alex  ",
		WhatsAppNumber: "+1 555 123 4567",
	}, now)
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if profile.Name != "Alex" {
		t.Fatalf("expected trimmed name, got %q", profile.Name)
	}
	if !profile.SetupComplete {
		t.Fatalf("naming the profile must complete setup")
	}
	if !profile.UpdatedAt.Equal(now) {
		t.Fatalf("expected UpdatedAt %v, got %v", now, profile.UpdatedAt)
	}
	if repo.saved == nil {
		t.Fatalf("expected profile to be saved")
	}
}

func TestUpdateProfileAllowsClearingNumber(t *testing.T) {
	repo := &stubProfileRepository{profile: models.UserProfile{
		ID:             models.ProfileID,
		WhatsAppNumber: "15551234567",
		SetupComplete:  true,
	}}
	service := NewSettingsService(repo)

	profile, err := service.UpdateProfile(ProfileInput{Name: "Alex"}, time.Now())
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if profile.WhatsAppNumber != "" {
		t.Fatalf("expected number cleared, got %q", profile.WhatsAppNumber)
	}
}

func TestUpdateProfileRejectsLongName(t *testing.T) {
	service := NewSettingsService(&stubProfileRepository{})

	_, err := service.UpdateProfile(ProfileInput{Name: strings.Repeat("a", profileNameMaxLength+1)}, time.Now())
	if !errors.Is(err, ErrProfileNameTooLong) {
		t.Fatalf("expected ErrProfileNameTooLong, got %v", err)
	}
}

func TestUpdateProfileValidatesNumber(t *testing.T) {
	service := NewSettingsService(&stubProfileRepository{})

	cases := []string{"123", "12345678901234567890", "no digits here"}
	for _, number := range cases {
		_, err := service.UpdateProfile(ProfileInput{Name: "Alex", WhatsAppNumber: number}, time.Now())
		if !errors.Is(err, ErrInvalidWhatsAppNumber) {
			t.Fatalf("expected ErrInvalidWhatsAppNumber for %q, got %v", number, err)
		}
	}
}

func TestUpdateProfileWrapsRepositoryError(t *testing.T) {
	service := NewSettingsService(&stubProfileRepository{err: errors.New("db locked")})

	_, err := service.UpdateProfile(ProfileInput{Name: "Alex"}, time.Now())
	if !errors.Is(err, ErrSaveProfileFailed) {
		t.Fatalf("expected ErrSaveProfileFailed, got %v", err)
	}
}
