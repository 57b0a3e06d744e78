package services

import (
	"errors"
	"testing"
	"time"

	"github.com/vkotelnikov/sympta/internal/models"
)

type stubStatsReader struct {
	records []models.SymptomRecord
	err     error
}

func (stub *stubStatsReader) ListAll() ([]models.SymptomRecord, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.SymptomRecord, len(stub.records))
	copy(result, stub.records)
	return result, nil
}

func TestBuildOverviewEmptyHistory(t *testing.T) {
	service := NewStatsService(&stubStatsReader{})

	overview, err := service.BuildOverview(time.Now(), time.UTC)
	if err != nil {
		t.Fatalf("BuildOverview() unexpected error: %v", err)
	}
	if overview.TotalRecords != 0 || overview.DistinctTypes != 0 {
		t.Fatalf("expected empty overview, got %+v", overview)
	}
	if len(overview.LastWeek) != 7 {
		t.Fatalf("expected 7 daily buckets even with no data, got %d", len(overview.LastWeek))
	}
}

func TestBuildOverviewFrequenciesSortedByCount(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	service := NewStatsService(&stubStatsReader{records: []models.SymptomRecord{
		{Type: "headache", Severity: 4, LoggedAt: now},
		{Type: "headache", Severity: 8, LoggedAt: now.Add(-24 * time.Hour)},
		{Type: "fever", Severity: 9, LoggedAt: now},
	}})

	overview, err := service.BuildOverview(now, time.UTC)
	if err != nil {
		t.Fatalf("BuildOverview() unexpected error: %v", err)
	}
	if overview.TotalRecords != 3 {
		t.Fatalf("expected 3 records, got %d", overview.TotalRecords)
	}
	if overview.DistinctTypes != 2 {
		t.Fatalf("expected 2 distinct types, got %d", overview.DistinctTypes)
	}
	if overview.HighSeverityCount != 2 {
		t.Fatalf("expected 2 high-severity records, got %d", overview.HighSeverityCount)
	}

	if overview.Frequencies[0].Type != "headache" || overview.Frequencies[0].Count != 2 {
		t.Fatalf("expected headache first, got %+v", overview.Frequencies[0])
	}
	if overview.Frequencies[0].AverageSeverity != 6.0 {
		t.Fatalf("expected average severity 6.0, got %f", overview.Frequencies[0].AverageSeverity)
	}
	if overview.Frequencies[1].DisplayName != "Fever" {
		t.Fatalf("expected display name Fever, got %q", overview.Frequencies[1].DisplayName)
	}
}

func TestBuildOverviewDailyCountsCoverLastWeek(t *testing.T) {
	now := time.Date(2026, time.March, 10, 23, 0, 0, 0, time.UTC)
	service := NewStatsService(&stubStatsReader{records: []models.SymptomRecord{
		{Type: "fever", Severity: 5, LoggedAt: now.Add(-2 * time.Hour)},
		{Type: "cough", Severity: 3, LoggedAt: now.AddDate(0, 0, -6)},
		{Type: "cough", Severity: 3, LoggedAt: now.AddDate(0, 0, -30)},
	}})

	overview, err := service.BuildOverview(now, time.UTC)
	if err != nil {
		t.Fatalf("BuildOverview() unexpected error: %v", err)
	}
	if len(overview.LastWeek) != 7 {
		t.Fatalf("expected 7 daily buckets, got %d", len(overview.LastWeek))
	}
	if overview.LastWeek[0].Date != "2026-03-04" {
		t.Fatalf("expected window start 2026-03-04, got %q", overview.LastWeek[0].Date)
	}
	if overview.LastWeek[0].Count != 1 {
		t.Fatalf("expected 1 record six days back, got %d", overview.LastWeek[0].Count)
	}
	if overview.LastWeek[6].Date != "2026-03-10" || overview.LastWeek[6].Count != 1 {
		t.Fatalf("expected today's bucket with 1 record, got %+v", overview.LastWeek[6])
	}
}

func TestBuildOverviewPropagatesRepositoryError(t *testing.T) {
	service := NewStatsService(&stubStatsReader{err: errors.New("db closed")})

	if _, err := service.BuildOverview(time.Now(), time.UTC); err == nil {
		t.Fatalf("expected repository error to propagate")
	}
}
