package services

import (
	"strings"
	"testing"

	"github.com/vkotelnikov/sympta/internal/knowledge"
)

func TestResolveFreeTextExactNameMatch(t *testing.T) {
	base := knowledge.Default()

	matches, updated := ResolveFreeText(base, "Fever", nil, DefaultMatcherOptions())
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Name != "Fever" || matches[0].Slug != "fever" {
		t.Fatalf("unexpected match: %+v", matches[0])
	}
	if matches[0].Custom {
		t.Fatalf("exact name match must not be custom")
	}
	if len(updated) != 1 || updated[0] != "Fever" {
		t.Fatalf("unexpected updated selection: %v", updated)
	}
}

func TestResolveFreeTextSubstringAndKeywordMatch(t *testing.T) {
	base := knowledge.Default()

	matches, _ := ResolveFreeText(base, "I have a headache and feel sick", nil, DefaultMatcherOptions())
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Name != "Headache" {
		t.Fatalf("expected Headache, got %q", matches[0].Name)
	}

	matches, _ = ResolveFreeText(base, "my temperature is high", nil, DefaultMatcherOptions())
	if len(matches) != 1 || matches[0].Name != "Fever" {
		t.Fatalf("expected keyword match on Fever, got %+v", matches)
	}
}

func TestResolveFreeTextMultiplePhrases(t *testing.T) {
	base := knowledge.Default()

	matches, updated := ResolveFreeText(base, "headache, sore throat; coughing", nil, DefaultMatcherOptions())
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(matches), matches)
	}
	expected := []string{"Headache", "Sore Throat", "Cough"}
	for index, name := range expected {
		if matches[index].Name != name {
			t.Fatalf("expected match %d to be %q, got %q", index, name, matches[index].Name)
		}
	}
	if len(updated) != 3 {
		t.Fatalf("expected 3 names in updated selection, got %v", updated)
	}
}

func TestResolveFreeTextCustomSymptomDropsStopWords(t *testing.T) {
	base := knowledge.Default()

	matches, _ := ResolveFreeText(base, "I have a swollen ankle", nil, DefaultMatcherOptions())
	if len(matches) != 1 {
		t.Fatalf("expected 1 custom match, got %d", len(matches))
	}
	if !matches[0].Custom {
		t.Fatalf("expected custom symptom, got %+v", matches[0])
	}
	if matches[0].Name != "Swollen Ankle" {
		t.Fatalf("expected title-cased custom name, got %q", matches[0].Name)
	}
	if matches[0].Slug != "swollen-ankle" {
		t.Fatalf("expected slug swollen-ankle, got %q", matches[0].Slug)
	}
}

func TestResolveFreeTextBareSickPolicy(t *testing.T) {
	base := knowledge.Default()

	matches, _ := ResolveFreeText(base, "feel sick", nil, DefaultMatcherOptions())
	if len(matches) != 1 || matches[0].Name != "Sick" || !matches[0].Custom {
		t.Fatalf("expected bare sick accepted by default, got %+v", matches)
	}

	matches, _ = ResolveFreeText(base, "feel sick", nil, MatcherOptions{AllowBareSick: false})
	if len(matches) != 0 {
		t.Fatalf("expected bare sick rejected when disabled, got %+v", matches)
	}
}

func TestResolveFreeTextRejectsInvalidCustomInput(t *testing.T) {
	base := knowledge.Default()

	cases := []string{
		"",
		"   ",
		"I have a",
		"pain123 in arm",
		strings.Repeat("verylongsymptom", 5),
	}
	for _, input := range cases {
		matches, _ := ResolveFreeText(base, input, nil, DefaultMatcherOptions())
		if len(matches) != 0 {
			t.Fatalf("expected input %q dropped, got %+v", input, matches)
		}
	}
}

func TestResolveFreeTextSkipsDuplicateSelections(t *testing.T) {
	base := knowledge.Default()

	selected := []string{"Fever"}
	_, updated := ResolveFreeText(base, "fever, FEVER", selected, DefaultMatcherOptions())
	if len(updated) != 1 {
		t.Fatalf("expected deduplicated selection, got %v", updated)
	}
	if len(selected) != 1 {
		t.Fatalf("caller slice must not grow, got %v", selected)
	}
}
