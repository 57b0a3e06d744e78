package services

import (
	"sort"

	"github.com/vkotelnikov/sympta/internal/knowledge"
)

const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

const (
	CategoryEmergency  = "emergency"
	CategoryDisease    = "disease"
	CategoryPattern    = "pattern"
	CategoryManagement = "management"
	CategoryPrevention = "prevention"
	CategoryMedication = "medication"
	CategorySystem     = "system"
)

// Suggestion is one rule firing. Suggestions are recomputed on every analysis
// pass and never persisted; the ID identifies the rule, not the pass, so
// deduplication across sub-analyses is stable.
type Suggestion struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Reasoning   string                    `json:"reasoning"`
	Priority    string                    `json:"priority"`
	Category    string                    `json:"category"`
	Actions     []string                  `json:"actions"`
	HealthInfo  *knowledge.SymptomInfo    `json:"health_info,omitempty"`
	DiseaseInfo *knowledge.DiseasePattern `json:"disease_info,omitempty"`
	Medications []MedicationAdvice        `json:"medications,omitempty"`
	Timeframe   string                    `json:"timeframe,omitempty"`
	Confidence  int                       `json:"confidence"`
}

type MedicationAdvice struct {
	Name              string   `json:"name"`
	GenericName       string   `json:"generic_name"`
	BrandNames        []string `json:"brand_names"`
	Dosage            string   `json:"dosage"`
	SideEffects       []string `json:"side_effects"`
	Contraindications []string `json:"contraindications"`
}

// PriorityRank orders priorities for sorting; unknown values sink to the end.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// DedupeSuggestions keeps the first occurrence of every ID, preserving order.
func DedupeSuggestions(suggestions []Suggestion) []Suggestion {
	seen := make(map[string]struct{}, len(suggestions))
	result := make([]Suggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		if _, duplicate := seen[suggestion.ID]; duplicate {
			continue
		}
		seen[suggestion.ID] = struct{}{}
		result = append(result, suggestion)
	}
	return result
}

// SortSuggestionsByPriority sorts critical first. The sort is stable so
// suggestions of equal priority keep their submission order.
func SortSuggestionsByPriority(suggestions []Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return PriorityRank(suggestions[i].Priority) < PriorityRank(suggestions[j].Priority)
	})
}
