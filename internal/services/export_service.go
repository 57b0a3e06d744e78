package services

import (
	"strconv"
	"time"

	"github.com/vkotelnikov/sympta/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Logged at",
	"Symptom",
	"Severity",
	"Duration",
	"Notes",
	"Group",
}

type ExportRecordReader interface {
	ListRange(from *time.Time, to *time.Time) ([]models.SymptomRecord, error)
}

type ExportService struct {
	records ExportRecordReader
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportJSONEntry struct {
	LoggedAt string `json:"logged_at"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Severity int    `json:"severity"`
	Duration string `json:"duration"`
	Notes    string `json:"notes,omitempty"`
	GroupID  string `json:"group_id,omitempty"`
}

func NewExportService(records ExportRecordReader) *ExportService {
	return &ExportService{records: records}
}

func (service *ExportService) LoadRange(from *time.Time, to *time.Time) ([]models.SymptomRecord, error) {
	return service.records.ListRange(from, to)
}

// BuildSummary describes the range before the user commits to a download.
func (service *ExportService) BuildSummary(records []models.SymptomRecord) ExportSummary {
	summary := ExportSummary{
		TotalEntries: len(records),
		HasData:      len(records) > 0,
	}
	if !summary.HasData {
		return summary
	}

	earliest := records[0].LoggedAt
	latest := records[0].LoggedAt
	for _, record := range records[1:] {
		if record.LoggedAt.Before(earliest) {
			earliest = record.LoggedAt
		}
		if record.LoggedAt.After(latest) {
			latest = record.LoggedAt
		}
	}
	summary.DateFrom = earliest.Format(exportDateLayout)
	summary.DateTo = latest.Format(exportDateLayout)
	return summary
}

func (service *ExportService) BuildJSONEntries(records []models.SymptomRecord) []ExportJSONEntry {
	entries := make([]ExportJSONEntry, 0, len(records))
	for _, record := range records {
		entry := ExportJSONEntry{
			LoggedAt: record.LoggedAt.Format(time.RFC3339),
			Type:     record.Type,
			Name:     record.DisplayName,
			Severity: record.Severity,
			Duration: record.Duration,
			Notes:    record.Notes,
		}
		if record.GroupID != nil {
			entry.GroupID = *record.GroupID
		}
		entries = append(entries, entry)
	}
	return entries
}

func (service *ExportService) BuildCSVRows(records []models.SymptomRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		group := ""
		if record.GroupID != nil {
			group = *record.GroupID
		}
		rows = append(rows, []string{
			record.LoggedAt.Format(time.RFC3339),
			record.DisplayName,
			strconv.Itoa(record.Severity),
			record.Duration,
			record.Notes,
			group,
		})
	}
	return rows
}
