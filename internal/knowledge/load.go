package knowledge

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the knowledge base from a YAML file. The load is best-effort: any
// failure (missing file, bad YAML, empty document) falls back to the compiled-in
// default and is only logged. Loading never retries and never fails the caller.
func Load(path string) *Base {
	base, err := parseFile(path)
	if err != nil {
		log.Printf("knowledge base %s unavailable, using built-in default: %v", path, err)
		return Default()
	}
	base.sanitize()
	return base
}

func parseFile(path string) (*Base, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	base := &Base{}
	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}
	if len(base.Symptoms) == 0 && len(base.Patterns) == 0 {
		return nil, fmt.Errorf("knowledge file has no symptoms and no patterns")
	}
	return base, nil
}

// sanitize enforces the shape the engine relies on: malformed entries are
// dropped or defaulted deterministically at load time instead of being trusted
// at use time. Missing sections inherit the built-in default tables.
func (base *Base) sanitize() {
	fallback := Default()

	base.Symptoms = sanitizeSymptoms(base.Symptoms)
	if len(base.Symptoms) == 0 {
		base.Symptoms = fallback.Symptoms
	}

	base.Patterns = sanitizePatterns(base.Patterns)
	if len(base.Patterns) == 0 {
		base.Patterns = fallback.Patterns
	}

	base.Combinations = sanitizeCombinations(base.Combinations)

	if base.SymptomInfo == nil {
		base.SymptomInfo = fallback.SymptomInfo
	}
	if base.Medications == nil {
		base.Medications = fallback.Medications
	}
	if base.MedicationsBySymptom == nil {
		base.MedicationsBySymptom = fallback.MedicationsBySymptom
	}
	if len(base.CriticalSymptoms) == 0 {
		base.CriticalSymptoms = fallback.CriticalSymptoms
	} else {
		base.CriticalSymptoms = slugifyAll(base.CriticalSymptoms)
	}
	if len(base.StopWords) == 0 {
		base.StopWords = fallback.StopWords
	} else {
		base.StopWords = lowercaseAll(base.StopWords)
	}
}

func sanitizeSymptoms(definitions []SymptomDefinition) []SymptomDefinition {
	kept := make([]SymptomDefinition, 0, len(definitions))
	seen := make(map[string]struct{}, len(definitions))
	for _, definition := range definitions {
		name := strings.TrimSpace(definition.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		definition.Name = name
		kept = append(kept, definition)
	}
	return kept
}

func sanitizePatterns(patterns []DiseasePattern) []DiseasePattern {
	kept := make([]DiseasePattern, 0, len(patterns))
	for _, pattern := range patterns {
		pattern.Slug = Slugify(pattern.Slug)
		if pattern.Slug == "" || len(pattern.Symptoms) < 2 {
			continue
		}
		if strings.TrimSpace(pattern.DisplayName) == "" {
			pattern.DisplayName = DisplayName(pattern.Slug)
		}
		if pattern.MatchThreshold <= 0 || pattern.MatchThreshold > 1 {
			pattern.MatchThreshold = 0.5
		}
		if pattern.ConfidenceMultiplier <= 0 {
			pattern.ConfidenceMultiplier = 100
		}
		pattern.Symptoms = slugifyAll(pattern.Symptoms)
		pattern.EarlySymptoms = slugifyAll(pattern.EarlySymptoms)
		kept = append(kept, pattern)
	}
	return kept
}

func sanitizeCombinations(rules []CombinationRule) []CombinationRule {
	kept := make([]CombinationRule, 0, len(rules))
	for _, rule := range rules {
		if strings.TrimSpace(rule.Title) == "" || len(rule.Slugs) < 2 {
			continue
		}
		rule.Slugs = slugifyAll(rule.Slugs)
		if rule.ID == "" {
			rule.ID = "combo-" + strings.Join(rule.Slugs, "-")
		}
		switch rule.Priority {
		case "critical", "high", "medium", "low":
		default:
			rule.Priority = "medium"
		}
		if rule.Confidence <= 0 || rule.Confidence > 100 {
			rule.Confidence = 70
		}
		kept = append(kept, rule)
	}
	return kept
}

func slugifyAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		slug := Slugify(value)
		if slug != "" {
			result = append(result, slug)
		}
	}
	return result
}

func lowercaseAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.ToLower(strings.TrimSpace(value))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
