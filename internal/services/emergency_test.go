package services

import (
	"strings"
	"testing"

	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/models"
)

func TestAssessEmergencyNoIndicators(t *testing.T) {
	base := knowledge.Default()

	records := []models.SymptomRecord{
		{Type: "headache", DisplayName: "Headache", Severity: 5},
		{Type: "fatigue", DisplayName: "Fatigue", Severity: 7},
	}
	if suggestion := AssessEmergency(base, records); suggestion != nil {
		t.Fatalf("expected no emergency, got %+v", suggestion)
	}
}

func TestAssessEmergencyHighSeverityFires(t *testing.T) {
	base := knowledge.Default()

	records := []models.SymptomRecord{
		{Type: "headache", DisplayName: "Headache", Severity: EmergencySeverityThreshold},
	}
	suggestion := AssessEmergency(base, records)
	if suggestion == nil {
		t.Fatalf("expected emergency at severity %d", EmergencySeverityThreshold)
	}
	if suggestion.Priority != PriorityCritical {
		t.Fatalf("expected critical priority, got %q", suggestion.Priority)
	}
	if suggestion.Category != CategoryEmergency {
		t.Fatalf("expected emergency category, got %q", suggestion.Category)
	}
	if !strings.Contains(suggestion.Reasoning, "8/10") {
		t.Fatalf("reasoning must name the severity, got %q", suggestion.Reasoning)
	}
}

func TestAssessEmergencyCriticalTypeFiresAtAnySeverity(t *testing.T) {
	base := knowledge.Default()

	records := []models.SymptomRecord{
		{Type: "chest-pain", DisplayName: "Chest Pain", Severity: 2},
	}
	suggestion := AssessEmergency(base, records)
	if suggestion == nil {
		t.Fatalf("expected emergency for critical symptom type")
	}
	if !strings.Contains(suggestion.Reasoning, "heart or lung") {
		t.Fatalf("expected chest pain explanation, got %q", suggestion.Reasoning)
	}
}

func TestAssessEmergencySingleSuggestionForMultipleIndicators(t *testing.T) {
	base := knowledge.Default()

	records := []models.SymptomRecord{
		{Type: "chest-pain", DisplayName: "Chest Pain", Severity: 9},
		{Type: "shortness-of-breath", DisplayName: "Shortness Of Breath", Severity: 6},
		{Type: "fever", DisplayName: "Fever", Severity: 9},
	}
	suggestion := AssessEmergency(base, records)
	if suggestion == nil {
		t.Fatalf("expected emergency")
	}
	if suggestion.ID != "emergency-alert" {
		t.Fatalf("expected stable id, got %q", suggestion.ID)
	}
	if suggestion.Confidence != 95 {
		t.Fatalf("expected confidence 95, got %d", suggestion.Confidence)
	}
	// Severe rating wins over the critical-type sentence for the same record.
	if !strings.Contains(suggestion.Reasoning, "Chest Pain rated 9/10") {
		t.Fatalf("expected severity sentence for chest pain, got %q", suggestion.Reasoning)
	}
	if !strings.Contains(suggestion.Reasoning, "immediate medical attention") {
		t.Fatalf("expected breathing sentence, got %q", suggestion.Reasoning)
	}
}
