package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/models"
)

var (
	ErrEmptySymptomName   = errors.New("symptom name must not be empty")
	ErrInvalidSeverity    = errors.New("severity must be between 1 and 10")
	ErrInvalidDuration    = errors.New("unknown duration value")
	ErrNothingToLog       = errors.New("no symptoms to log")
	ErrRecordNotFound     = errors.New("symptom record not found")
	ErrCreateRecordFailed = errors.New("create symptom record failed")
	ErrDeleteRecordFailed = errors.New("delete symptom record failed")
)

type RecordRepository interface {
	Create(record *models.SymptomRecord) error
	CreateBatch(records []models.SymptomRecord) error
	ListAll() ([]models.SymptomRecord, error)
	ListSince(cutoff time.Time) ([]models.SymptomRecord, error)
	DeleteByID(recordID string) (bool, error)
	DeleteAll() error
	Count() (int64, error)
}

type RecordService struct {
	records RecordRepository
}

// RecordInput is one symptom as submitted from the logging form.
type RecordInput struct {
	Name     string `json:"name"`
	Severity int    `json:"severity"`
	Duration string `json:"duration"`
	Notes    string `json:"notes"`
}

func NewRecordService(records RecordRepository) *RecordService {
	return &RecordService{records: records}
}

// LogSymptoms validates and stores a batch of symptoms submitted together.
// Symptoms logged in one submission share a group ID. Records are immutable
// once created.
func (service *RecordService) LogSymptoms(inputs []RecordInput, now time.Time) ([]models.SymptomRecord, error) {
	if len(inputs) == 0 {
		return nil, ErrNothingToLog
	}

	var groupID *string
	if len(inputs) > 1 {
		id := uuid.NewString()
		groupID = &id
	}

	records := make([]models.SymptomRecord, 0, len(inputs))
	for _, input := range inputs {
		record, err := buildRecord(input, groupID, now)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := service.records.CreateBatch(records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateRecordFailed, err)
	}
	return records, nil
}

func buildRecord(input RecordInput, groupID *string, now time.Time) (models.SymptomRecord, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.SymptomRecord{}, ErrEmptySymptomName
	}
	if !models.IsValidSeverity(input.Severity) {
		return models.SymptomRecord{}, ErrInvalidSeverity
	}
	duration := strings.TrimSpace(input.Duration)
	if duration == "" {
		duration = models.DurationJustStarted
	}
	if !models.IsValidDuration(duration) {
		return models.SymptomRecord{}, ErrInvalidDuration
	}

	slug := knowledge.Slugify(name)
	return models.SymptomRecord{
		ID:          uuid.NewString(),
		Type:        slug,
		DisplayName: knowledge.DisplayName(slug),
		Severity:    input.Severity,
		Duration:    duration,
		Notes:       strings.TrimSpace(input.Notes),
		GroupID:     groupID,
		LoggedAt:    now,
	}, nil
}

func (service *RecordService) History() ([]models.SymptomRecord, error) {
	return service.records.ListAll()
}

func (service *RecordService) RecentHistory(now time.Time, days int) ([]models.SymptomRecord, error) {
	if days <= 0 {
		days = AnalysisWindowDays
	}
	return service.records.ListSince(now.AddDate(0, 0, -days))
}

func (service *RecordService) DeleteRecord(recordID string) error {
	deleted, err := service.records.DeleteByID(strings.TrimSpace(recordID))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteRecordFailed, err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

// Reset wipes the whole history.
func (service *RecordService) Reset() error {
	return service.records.DeleteAll()
}
