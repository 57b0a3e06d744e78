package models

import "time"

// ProfileID pins the profile table to a single row; the app serves one person.
const ProfileID uint = 1

type UserProfile struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null;default:''"`
	WhatsAppNumber string `gorm:"not null;default:''"`
	SetupComplete  bool   `gorm:"not null;default:false"`
	UpdatedAt      time.Time
}
