package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/models"
)

// AnalysisWindowDays bounds how far back the aggregator looks. Older records
// stay in the history but no longer influence suggestions.
const AnalysisWindowDays = 7

const lowPriorityConfidenceFloor = 60

// Analyze runs every sub-analysis over the records inside the window and
// returns the deduplicated, priority-sorted suggestion list. Suggestions are a
// pure function of the records plus the knowledge base; nothing is persisted.
//
// A nil base means the knowledge data has not finished loading; the aggregator
// then returns a single placeholder instead of failing.
func Analyze(base *knowledge.Base, records []models.SymptomRecord, now time.Time) []Suggestion {
	if base == nil {
		return []Suggestion{loadingSuggestion()}
	}

	windowed := recordsInWindow(records, now)
	if len(windowed) == 0 {
		return []Suggestion{}
	}
	slugs := distinctRecordSlugs(windowed)

	suggestions := make([]Suggestion, 0)
	if emergency := AssessEmergency(base, windowed); emergency != nil {
		suggestions = append(suggestions, *emergency)
	}
	suggestions = append(suggestions, diseaseSuggestions(base, slugs)...)
	suggestions = append(suggestions, combinationSuggestions(base, slugs)...)
	suggestions = append(suggestions, managementSuggestions(base, windowed)...)
	if prevention := preventionSuggestion(base, slugs); prevention != nil {
		suggestions = append(suggestions, *prevention)
	}
	suggestions = append(suggestions, medicationSuggestions(base, slugs)...)

	suggestions = DedupeSuggestions(suggestions)
	SortSuggestionsByPriority(suggestions)
	return suggestions
}

func loadingSuggestion() Suggestion {
	return Suggestion{
		ID:          "loading",
		Title:       "Analyzing Your Symptoms",
		Description: "The health knowledge base is still loading. Suggestions will appear shortly.",
		Priority:    PriorityLow,
		Category:    CategorySystem,
		Confidence:  0,
	}
}

func recordsInWindow(records []models.SymptomRecord, now time.Time) []models.SymptomRecord {
	cutoff := now.AddDate(0, 0, -AnalysisWindowDays)
	windowed := make([]models.SymptomRecord, 0, len(records))
	for _, record := range records {
		if record.LoggedAt.Before(cutoff) {
			continue
		}
		windowed = append(windowed, record)
	}
	return windowed
}

func distinctRecordSlugs(records []models.SymptomRecord) []string {
	slugs := make([]string, 0, len(records))
	for _, record := range records {
		slugs = append(slugs, record.Type)
	}
	return distinctSlugs(slugs)
}

func diseaseSuggestions(base *knowledge.Base, slugs []string) []Suggestion {
	predictions := ScorePatterns(base, slugs)
	suggestions := make([]Suggestion, 0, len(predictions))
	for _, prediction := range predictions {
		pattern := prediction.Pattern
		suggestions = append(suggestions, Suggestion{
			ID:          "disease-" + prediction.Slug,
			Title:       "Possible " + prediction.DisplayName,
			Description: pattern.Causes,
			Reasoning: "Your symptoms match " + prediction.DisplayName + " (" + prediction.Stage + "): " +
				strings.Join(displayNames(prediction.MatchedSymptoms), ", ") + ".",
			Priority:    severityClassPriority(pattern.SeverityClass),
			Category:    CategoryDisease,
			Actions:     pattern.RecommendedActions,
			DiseaseInfo: &pattern,
			Timeframe:   pattern.Timeframe,
			Confidence:  prediction.Confidence,
		})
	}
	return suggestions
}

func severityClassPriority(severityClass string) string {
	switch severityClass {
	case "severe":
		return PriorityHigh
	case "moderate":
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func combinationSuggestions(base *knowledge.Base, slugs []string) []Suggestion {
	suggestions := make([]Suggestion, 0)
	for _, rule := range base.Combinations {
		if !combinationMatches(rule, slugs) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			ID:          rule.ID,
			Title:       rule.Title,
			Description: rule.Description,
			Reasoning:   rule.Reasoning,
			Priority:    rule.Priority,
			Category:    CategoryPattern,
			Actions:     rule.Actions,
			Timeframe:   rule.Timeframe,
			Confidence:  rule.Confidence,
		})
	}
	return suggestions
}

func combinationMatches(rule knowledge.CombinationRule, slugs []string) bool {
	for _, required := range rule.Slugs {
		found := false
		for _, slug := range slugs {
			if slugsOverlap(slug, required) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func managementSuggestions(base *knowledge.Base, records []models.SymptomRecord) []Suggestion {
	maxSeverity := make(map[string]int)
	order := make([]string, 0)
	for _, record := range records {
		slug := knowledge.Slugify(record.Type)
		if _, seen := maxSeverity[slug]; !seen {
			order = append(order, slug)
		}
		if record.Severity > maxSeverity[slug] {
			maxSeverity[slug] = record.Severity
		}
	}

	suggestions := make([]Suggestion, 0)
	for _, slug := range order {
		info, ok := base.InfoForSlug(slug)
		if !ok {
			continue
		}

		severity := maxSeverity[slug]
		priority := managementPriority(severity)
		confidence := managementConfidence(severity)
		// Low-priority, low-confidence entries are noise; drop them.
		if priority == PriorityLow && confidence < lowPriorityConfidenceFloor {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			ID:          "management-" + slug,
			Title:       "Managing Your " + knowledge.DisplayName(slug),
			Description: info.Description,
			Reasoning:   "You logged " + knowledge.DisplayName(slug) + " with severity " + strconv.Itoa(severity) + "/10.",
			Priority:    priority,
			Category:    CategoryManagement,
			Actions:     info.Treatments.Immediate,
			HealthInfo:  &info,
			Confidence:  confidence,
		})
	}
	return suggestions
}

func managementPriority(severity int) string {
	switch {
	case severity >= 7:
		return PriorityHigh
	case severity >= 4:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func managementConfidence(severity int) int {
	confidence := 40 + severity*5
	if confidence > 90 {
		confidence = 90
	}
	return confidence
}

// preventionSuggestion emits one aggregate suggestion per distinct symptom-type
// set. The ID is derived from the sorted set, so logging the same combination
// again keeps deduplicating to a single entry.
func preventionSuggestion(base *knowledge.Base, slugs []string) *Suggestion {
	sorted := append([]string(nil), slugs...)
	sort.Strings(sorted)

	actions := make([]string, 0)
	seen := make(map[string]struct{})
	for _, slug := range sorted {
		info, ok := base.InfoForSlug(slug)
		if !ok {
			continue
		}
		for _, tip := range info.Treatments.Prevention {
			if _, duplicate := seen[tip]; duplicate {
				continue
			}
			seen[tip] = struct{}{}
			actions = append(actions, tip)
		}
	}
	if len(actions) == 0 {
		return nil
	}

	return &Suggestion{
		ID:          "prevention-" + strings.Join(sorted, "-"),
		Title:       "Preventive Care",
		Description: "Habits that reduce the chance of these symptoms coming back.",
		Reasoning:   "Based on the combination of symptoms you logged this week.",
		Priority:    PriorityLow,
		Category:    CategoryPrevention,
		Actions:     actions,
		Confidence:  60,
	}
}

func medicationSuggestions(base *knowledge.Base, slugs []string) []Suggestion {
	suggestions := make([]Suggestion, 0)
	for _, slug := range slugs {
		names := base.MedicationNamesForSlug(slug)
		if len(names) == 0 {
			continue
		}

		advice := make([]MedicationAdvice, 0, len(names))
		for _, name := range names {
			medication, ok := base.Medications[name]
			if !ok {
				continue
			}
			advice = append(advice, MedicationAdvice{
				Name:              name,
				GenericName:       medication.GenericName,
				BrandNames:        medication.BrandNames,
				Dosage:            medication.Dosage,
				SideEffects:       medication.SideEffects,
				Contraindications: medication.Contraindications,
			})
		}
		if len(advice) == 0 {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			ID:          "medication-" + slug,
			Title:       "Over-the-Counter Options for " + knowledge.DisplayName(slug),
			Description: "Common non-prescription medication used for this symptom. Check contraindications before use.",
			Reasoning:   "Matched from the medication reference for " + knowledge.DisplayName(slug) + ".",
			Priority:    PriorityLow,
			Category:    CategoryMedication,
			Medications: advice,
			Confidence:  65,
		})
	}
	return suggestions
}

func displayNames(slugs []string) []string {
	names := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		names = append(names, knowledge.DisplayName(slug))
	}
	return names
}
