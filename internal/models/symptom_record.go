package models

import "time"

const (
	SeverityMin = 1
	SeverityMax = 10
)

const (
	DurationJustStarted = "just-started"
	DurationFewHours    = "few-hours"
	DurationOneDay      = "one-day"
	DurationFewDays     = "few-days"
	DurationOneWeek     = "one-week"
	DurationOngoing     = "ongoing"
)

// SymptomRecord is one logged symptom. Records are immutable once created;
// the list only grows by append and shrinks by explicit deletion or reset.
type SymptomRecord struct {
	ID          string    `gorm:"primaryKey"`
	Type        string    `gorm:"not null;index"`
	DisplayName string    `gorm:"not null"`
	Severity    int       `gorm:"not null"`
	Duration    string    `gorm:"not null;default:just-started"`
	Notes       string
	GroupID     *string   `gorm:"index"`
	LoggedAt    time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

func ValidDurations() []string {
	return []string{
		DurationJustStarted,
		DurationFewHours,
		DurationOneDay,
		DurationFewDays,
		DurationOneWeek,
		DurationOngoing,
	}
}

func IsValidDuration(duration string) bool {
	for _, valid := range ValidDurations() {
		if duration == valid {
			return true
		}
	}
	return false
}

func IsValidSeverity(severity int) bool {
	return severity >= SeverityMin && severity <= SeverityMax
}
