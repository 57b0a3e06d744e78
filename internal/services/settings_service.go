package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vkotelnikov/sympta/internal/models"
)

const profileNameMaxLength = 80

const (
	whatsAppNumberMinDigits = 7
	whatsAppNumberMaxDigits = 15
)

var (
	ErrProfileNameTooLong    = errors.New("profile name is too long")
	ErrInvalidWhatsAppNumber = errors.New("whatsapp number must contain 7 to 15 digits")
	ErrSaveProfileFailed     = errors.New("save profile failed")
)

type ProfileRepository interface {
	Get() (models.UserProfile, error)
	Save(profile *models.UserProfile) error
}

type SettingsService struct {
	profiles ProfileRepository
}

// ProfileInput carries the editable profile fields. An empty WhatsApp number
// clears the emergency contact; a non-empty one must validate.
type ProfileInput struct {
	Name           string `json:"name"`
	WhatsAppNumber string `json:"whatsapp_number"`
}

func NewSettingsService(profiles ProfileRepository) *SettingsService {
	return &SettingsService{profiles: profiles}
}

func (service *SettingsService) Profile() (models.UserProfile, error) {
	return service.profiles.Get()
}

// UpdateProfile validates and persists the profile. Setup is considered
// complete once a name has been provided at least once.
func (service *SettingsService) UpdateProfile(input ProfileInput, now time.Time) (models.UserProfile, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) > profileNameMaxLength {
		return models.UserProfile{}, ErrProfileNameTooLong
	}

	number := strings.TrimSpace(input.WhatsAppNumber)
	if number != "" {
		digits := normalizeWhatsAppDigits(number)
		if len(digits) < whatsAppNumberMinDigits || len(digits) > whatsAppNumberMaxDigits {
			return models.UserProfile{}, ErrInvalidWhatsAppNumber
		}
	}

	profile, err := service.profiles.Get()
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrSaveProfileFailed, err)
	}

	profile.Name = name
	profile.WhatsAppNumber = number
	profile.UpdatedAt = now
	if name != "" {
		profile.SetupComplete = true
	}

	if err := service.profiles.Save(&profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrSaveProfileFailed, err)
	}
	return profile, nil
}
