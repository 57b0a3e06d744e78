package services

import (
	"sort"
	"time"

	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/models"
)

type StatsRecordReader interface {
	ListAll() ([]models.SymptomRecord, error)
}

type StatsService struct {
	records StatsRecordReader
}

type TypeFrequency struct {
	Type            string  `json:"type"`
	DisplayName     string  `json:"display_name"`
	Count           int     `json:"count"`
	AverageSeverity float64 `json:"average_severity"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatsOverview is the data behind the history/charts view.
type StatsOverview struct {
	TotalRecords      int             `json:"total_records"`
	DistinctTypes     int             `json:"distinct_types"`
	HighSeverityCount int             `json:"high_severity_count"`
	Frequencies       []TypeFrequency `json:"frequencies"`
	LastWeek          []DailyCount    `json:"last_week"`
}

func NewStatsService(records StatsRecordReader) *StatsService {
	return &StatsService{records: records}
}

func (service *StatsService) BuildOverview(now time.Time, location *time.Location) (StatsOverview, error) {
	records, err := service.records.ListAll()
	if err != nil {
		return StatsOverview{}, err
	}

	overview := StatsOverview{
		TotalRecords: len(records),
		Frequencies:  buildTypeFrequencies(records),
		LastWeek:     buildDailyCounts(records, now, location),
	}
	overview.DistinctTypes = len(overview.Frequencies)
	for _, record := range records {
		if record.Severity >= EmergencySeverityThreshold {
			overview.HighSeverityCount++
		}
	}
	return overview, nil
}

func buildTypeFrequencies(records []models.SymptomRecord) []TypeFrequency {
	counts := make(map[string]int)
	severitySums := make(map[string]int)
	for _, record := range records {
		slug := knowledge.Slugify(record.Type)
		counts[slug]++
		severitySums[slug] += record.Severity
	}

	frequencies := make([]TypeFrequency, 0, len(counts))
	for slug, count := range counts {
		average := float64(severitySums[slug]) / float64(count)
		frequencies = append(frequencies, TypeFrequency{
			Type:            slug,
			DisplayName:     knowledge.DisplayName(slug),
			Count:           count,
			AverageSeverity: roundToTenth(average),
		})
	}

	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count == frequencies[j].Count {
			return frequencies[i].Type < frequencies[j].Type
		}
		return frequencies[i].Count > frequencies[j].Count
	})
	return frequencies
}

func buildDailyCounts(records []models.SymptomRecord, now time.Time, location *time.Location) []DailyCount {
	const days = 7

	today := time.Date(now.In(location).Year(), now.In(location).Month(), now.In(location).Day(), 0, 0, 0, 0, location)
	counts := make(map[string]int, days)
	for _, record := range records {
		day := record.LoggedAt.In(location).Format("2006-01-02")
		counts[day]++
	}

	result := make([]DailyCount, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset).Format("2006-01-02")
		result = append(result, DailyCount{Date: day, Count: counts[day]})
	}
	return result
}

func roundToTenth(value float64) float64 {
	return float64(int(value*10+0.5)) / 10
}
