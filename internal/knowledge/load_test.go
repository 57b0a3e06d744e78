package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func writeKnowledgeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write knowledge file: %v", err)
	}
	return path
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	base := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if base == nil {
		t.Fatalf("Load() must never return nil")
	}
	if len(base.Symptoms) == 0 || len(base.Patterns) == 0 {
		t.Fatalf("fallback base must carry compiled-in data")
	}
}

func TestLoadFallsBackOnInvalidYAML(t *testing.T) {
	path := writeKnowledgeFile(t, "symptoms: [unclosed")

	base := Load(path)
	if base == nil || len(base.Patterns) == 0 {
		t.Fatalf("invalid file must fall back to defaults")
	}
}

func TestLoadParsesCustomFile(t *testing.T) {
	path := writeKnowledgeFile(t, `
symptoms:
  - name: Fever
    category: general
    keywords: [temperature, hot]
patterns:
  - slug: Test Illness
    display_name: Test Illness
    symptoms: [Fever, Headache]
    match_threshold: 0.5
    confidence_multiplier: 100
    severity_class: mild
`)

	base := Load(path)
	if len(base.Symptoms) != 1 || base.Symptoms[0].Name != "Fever" {
		t.Fatalf("expected custom symptoms, got %+v", base.Symptoms)
	}
	if len(base.Patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(base.Patterns))
	}
	if base.Patterns[0].Slug != "test-illness" {
		t.Fatalf("pattern slug must be normalized, got %q", base.Patterns[0].Slug)
	}
	if base.Patterns[0].Symptoms[0] != "fever" {
		t.Fatalf("pattern symptoms must be slugified, got %v", base.Patterns[0].Symptoms)
	}
}

func TestSanitizeDropsMalformedEntries(t *testing.T) {
	path := writeKnowledgeFile(t, `
symptoms:
  - name: Fever
  - name: ""
patterns:
  - slug: valid-pattern
    symptoms: [fever, headache]
  - slug: ""
    symptoms: [fever, headache]
  - slug: too-few
    symptoms: [fever]
combinations:
  - id: good-combo
    slugs: [fever, headache]
    title: Something
  - id: no-title
    slugs: [fever, headache]
  - id: one-slug
    slugs: [fever]
    title: Something Else
`)

	base := Load(path)
	if len(base.Symptoms) != 1 {
		t.Fatalf("expected empty-name symptom dropped, got %d", len(base.Symptoms))
	}
	if len(base.Patterns) != 1 || base.Patterns[0].Slug != "valid-pattern" {
		t.Fatalf("expected only valid-pattern kept, got %+v", base.Patterns)
	}
	if len(base.Combinations) != 1 || base.Combinations[0].ID != "good-combo" {
		t.Fatalf("expected only good-combo kept, got %+v", base.Combinations)
	}
}

func TestSanitizeAppliesDefaults(t *testing.T) {
	path := writeKnowledgeFile(t, `
patterns:
  - slug: no-numbers
    symptoms: [fever, headache]
combinations:
  - id: sparse-combo
    slugs: [fever, headache]
    title: Sparse
`)

	base := Load(path)
	if len(base.Patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(base.Patterns))
	}
	if base.Patterns[0].MatchThreshold != 0.5 {
		t.Fatalf("expected default threshold 0.5, got %f", base.Patterns[0].MatchThreshold)
	}
	if base.Patterns[0].ConfidenceMultiplier != 100 {
		t.Fatalf("expected default multiplier 100, got %f", base.Patterns[0].ConfidenceMultiplier)
	}
	if base.Combinations[0].Priority != "medium" {
		t.Fatalf("expected default priority medium, got %q", base.Combinations[0].Priority)
	}
	if base.Combinations[0].Confidence != 70 {
		t.Fatalf("expected default confidence 70, got %d", base.Combinations[0].Confidence)
	}
}

func TestDefaultBaseIsCoherent(t *testing.T) {
	base := Default()

	if !base.IsCritical("chest-pain") {
		t.Fatalf("chest-pain must be critical")
	}
	if base.IsCritical("headache") {
		t.Fatalf("headache must not be critical")
	}
	if !base.IsStopWord("have") {
		t.Fatalf("expected stop word 'have'")
	}

	for _, pattern := range base.Patterns {
		if pattern.MatchThreshold <= 0 || pattern.MatchThreshold > 1 {
			t.Fatalf("pattern %q has threshold %f outside (0,1]", pattern.Slug, pattern.MatchThreshold)
		}
		if len(pattern.Symptoms) < 2 {
			t.Fatalf("pattern %q has fewer than 2 symptoms", pattern.Slug)
		}
	}
	for symptom, names := range base.MedicationsBySymptom {
		for _, name := range names {
			if _, ok := base.Medications[name]; !ok {
				t.Fatalf("medication %q referenced by %q is not defined", name, symptom)
			}
		}
	}
}
