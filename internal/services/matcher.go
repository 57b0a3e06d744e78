package services

import (
	"regexp"
	"strings"

	"github.com/vkotelnikov/sympta/internal/knowledge"
)

const (
	customSymptomMinLength = 2
	customSymptomMaxLength = 50
)

// Letters, spaces, hyphens, and apostrophes only.
var customSymptomPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z '\-]*$`)

// MatcherOptions tunes the free-text matcher. Whether a bare "sick" counts as
// a valid custom symptom is deliberately configurable rather than hardcoded.
type MatcherOptions struct {
	AllowBareSick bool
}

func DefaultMatcherOptions() MatcherOptions {
	return MatcherOptions{AllowBareSick: true}
}

type ResolvedSymptom struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Custom bool   `json:"custom"`
}

// ResolveFreeText resolves free-text input against the symptom definitions.
// Input is split on commas and semicolons; per phrase the first hit wins:
// exact name match, then substring match either direction against names, then
// keyword match either direction. Unmatched phrases that pass the validity
// checks become custom symptoms. Anything else is silently dropped.
//
// The caller's selection list is never mutated; the updated list is returned
// with resolved names appended, skipping case-insensitive duplicates.
func ResolveFreeText(base *knowledge.Base, text string, selected []string, options MatcherOptions) ([]ResolvedSymptom, []string) {
	matches := make([]ResolvedSymptom, 0)
	updated := append([]string(nil), selected...)

	for _, phrase := range splitPhrases(text) {
		resolved, ok := resolvePhrase(base, phrase, options)
		if !ok {
			continue
		}
		matches = append(matches, resolved)
		updated = appendUniqueFold(updated, resolved.Name)
	}
	return matches, updated
}

func splitPhrases(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})

	phrases := make([]string, 0, len(parts))
	for _, part := range parts {
		phrase := strings.TrimSpace(part)
		if phrase != "" {
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}

func resolvePhrase(base *knowledge.Base, phrase string, options MatcherOptions) (ResolvedSymptom, bool) {
	lowered := strings.ToLower(phrase)

	for _, definition := range base.Symptoms {
		if strings.ToLower(definition.Name) == lowered {
			return canonicalMatch(definition), true
		}
	}

	for _, definition := range base.Symptoms {
		name := strings.ToLower(definition.Name)
		if strings.Contains(lowered, name) || strings.Contains(name, lowered) {
			return canonicalMatch(definition), true
		}
	}

	for _, definition := range base.Symptoms {
		for _, keyword := range definition.Keywords {
			lowKeyword := strings.ToLower(keyword)
			if strings.Contains(lowered, lowKeyword) || strings.Contains(lowKeyword, lowered) {
				return canonicalMatch(definition), true
			}
		}
	}

	return customSymptom(base, phrase, options)
}

func canonicalMatch(definition knowledge.SymptomDefinition) ResolvedSymptom {
	return ResolvedSymptom{
		Name: definition.Name,
		Slug: knowledge.Slugify(definition.Name),
	}
}

func customSymptom(base *knowledge.Base, phrase string, options MatcherOptions) (ResolvedSymptom, bool) {
	meaningful := make([]string, 0)
	for _, token := range strings.Fields(strings.ToLower(phrase)) {
		if base.IsStopWord(token) {
			continue
		}
		meaningful = append(meaningful, token)
	}
	if len(meaningful) == 0 {
		return ResolvedSymptom{}, false
	}
	if !options.AllowBareSick && len(meaningful) == 1 && meaningful[0] == "sick" {
		return ResolvedSymptom{}, false
	}

	candidate := strings.Join(meaningful, " ")
	if len(candidate) < customSymptomMinLength || len(candidate) > customSymptomMaxLength {
		return ResolvedSymptom{}, false
	}
	if !customSymptomPattern.MatchString(candidate) {
		return ResolvedSymptom{}, false
	}

	name := knowledge.TitleCasePhrase(candidate)
	return ResolvedSymptom{
		Name:   name,
		Slug:   knowledge.Slugify(name),
		Custom: true,
	}, true
}

func appendUniqueFold(list []string, value string) []string {
	for _, existing := range list {
		if strings.EqualFold(existing, value) {
			return list
		}
	}
	return append(list, value)
}
