package services

import (
	"math"
	"strings"

	"github.com/vkotelnikov/sympta/internal/knowledge"
)

const (
	StageEarly      = "Early stage"
	StageDeveloping = "Developing stage"
	StageActive     = "Active stage"
)

const (
	maxPredictionConfidence = 95
	// A single matching symptom is never enough to emit a prediction.
	minMatchedSymptoms = 2
	activeStageRatio   = 0.7
)

type Prediction struct {
	Slug            string                   `json:"slug"`
	DisplayName     string                   `json:"display_name"`
	MatchScore      float64                  `json:"match_score"`
	MatchedSymptoms []string                 `json:"matched_symptoms"`
	Confidence      int                      `json:"confidence"`
	Stage           string                   `json:"stage"`
	Pattern         knowledge.DiseasePattern `json:"pattern"`
}

// ScorePatterns scores the distinct symptom slugs against every disease
// pattern. Slug comparison is a bidirectional substring match, a deliberate
// tolerance for near-synonyms such as "sore-throat" vs "throat". Output order
// is not significant; the aggregator sorts globally afterward.
func ScorePatterns(base *knowledge.Base, slugs []string) []Prediction {
	userSlugs := distinctSlugs(slugs)
	if len(userSlugs) == 0 {
		return []Prediction{}
	}

	predictions := make([]Prediction, 0)
	for _, pattern := range base.Patterns {
		if len(pattern.Symptoms) == 0 {
			continue
		}

		matchedUser := 0
		matchedPattern := make([]string, 0)
		matchedPatternSet := make(map[string]struct{})
		for _, userSlug := range userSlugs {
			for _, patternSlug := range pattern.Symptoms {
				if !slugsOverlap(userSlug, patternSlug) {
					continue
				}
				matchedUser++
				if _, seen := matchedPatternSet[patternSlug]; !seen {
					matchedPatternSet[patternSlug] = struct{}{}
					matchedPattern = append(matchedPattern, patternSlug)
				}
				break
			}
		}

		score := float64(matchedUser) / float64(len(pattern.Symptoms))
		if score < pattern.MatchThreshold || matchedUser < minMatchedSymptoms {
			continue
		}

		predictions = append(predictions, Prediction{
			Slug:            pattern.Slug,
			DisplayName:     pattern.DisplayName,
			MatchScore:      score,
			MatchedSymptoms: matchedPattern,
			Confidence:      predictionConfidence(score, pattern.ConfidenceMultiplier),
			Stage:           classifyStage(pattern, matchedPatternSet, matchedUser),
			Pattern:         pattern,
		})
	}
	return predictions
}

func predictionConfidence(score float64, multiplier float64) int {
	return int(math.Round(math.Min(maxPredictionConfidence, score*multiplier)))
}

func classifyStage(pattern knowledge.DiseasePattern, matchedPattern map[string]struct{}, matchedCount int) string {
	earlyMatched := false
	for _, early := range pattern.EarlySymptoms {
		if _, ok := matchedPattern[early]; ok {
			earlyMatched = true
			break
		}
	}

	switch {
	case earlyMatched && matchedCount <= 2:
		return StageEarly
	case float64(matchedCount) >= activeStageRatio*float64(len(pattern.Symptoms)):
		return StageActive
	default:
		return StageDeveloping
	}
}

// slugsOverlap reports whether one slug contains the other.
func slugsOverlap(left string, right string) bool {
	return strings.Contains(left, right) || strings.Contains(right, left)
}

func distinctSlugs(slugs []string) []string {
	seen := make(map[string]struct{}, len(slugs))
	result := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		normalized := knowledge.Slugify(slug)
		if normalized == "" {
			continue
		}
		if _, duplicate := seen[normalized]; duplicate {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}
