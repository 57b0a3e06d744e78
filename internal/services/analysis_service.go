package services

import (
	"time"

	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/models"
)

type AnalysisRecordReader interface {
	ListSince(cutoff time.Time) ([]models.SymptomRecord, error)
}

// AnalysisService ties the stored history to the pure analysis functions. The
// knowledge base is injected once at startup and treated as read-only.
type AnalysisService struct {
	records AnalysisRecordReader
	base    *knowledge.Base
}

func NewAnalysisService(records AnalysisRecordReader, base *knowledge.Base) *AnalysisService {
	return &AnalysisService{
		records: records,
		base:    base,
	}
}

func (service *AnalysisService) Suggestions(now time.Time) ([]Suggestion, error) {
	if service.base == nil {
		return []Suggestion{loadingSuggestion()}, nil
	}

	records, err := service.fetchWindow(now)
	if err != nil {
		return nil, err
	}
	return Analyze(service.base, records, now), nil
}

func (service *AnalysisService) Predictions(now time.Time) ([]Prediction, error) {
	if service.base == nil {
		return []Prediction{}, nil
	}

	records, err := service.fetchWindow(now)
	if err != nil {
		return nil, err
	}
	return ScorePatterns(service.base, distinctRecordSlugs(records)), nil
}

func (service *AnalysisService) Base() *knowledge.Base {
	return service.base
}

func (service *AnalysisService) fetchWindow(now time.Time) ([]models.SymptomRecord, error) {
	return service.records.ListSince(now.AddDate(0, 0, -AnalysisWindowDays))
}
