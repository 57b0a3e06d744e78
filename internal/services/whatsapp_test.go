package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/models"
)

func TestBuildWhatsAppAlertRequiresNumber(t *testing.T) {
	base := knowledge.Default()

	_, err := BuildWhatsAppAlert(base, models.UserProfile{}, nil, time.Now())
	if !errors.Is(err, ErrMissingWhatsAppNumber) {
		t.Fatalf("expected ErrMissingWhatsAppNumber, got %v", err)
	}
}

func TestBuildWhatsAppAlertRequiresAlertableSymptoms(t *testing.T) {
	base := knowledge.Default()
	profile := models.UserProfile{WhatsAppNumber: "+15551234567"}

	records := []models.SymptomRecord{
		{Type: "headache", DisplayName: "Headache", Severity: 5},
	}
	_, err := BuildWhatsAppAlert(base, profile, records, time.Now())
	if !errors.Is(err, ErrNoAlertableSymptoms) {
		t.Fatalf("expected ErrNoAlertableSymptoms, got %v", err)
	}
}

func TestBuildWhatsAppAlertFormatsDeepLink(t *testing.T) {
	base := knowledge.Default()
	profile := models.UserProfile{
		Name:           "Alex",
		WhatsAppNumber: "+1 (555) 123-4567",
	}
	now := time.Date(2026, time.March, 10, 14, 5, 0, 0, time.UTC)

	records := []models.SymptomRecord{
		{Type: "chest-pain", DisplayName: "Chest Pain", Severity: 9, Notes: "worse when moving"},
		{Type: "headache", DisplayName: "Headache", Severity: 4},
	}
	link, err := BuildWhatsAppAlert(base, profile, records, now)
	if err != nil {
		t.Fatalf("BuildWhatsAppAlert() unexpected error: %v", err)
	}

	if !strings.HasPrefix(link.URL, "https://wa.me/15551234567?text=") {
		t.Fatalf("unexpected link prefix: %q", link.URL)
	}
	if !strings.HasPrefix(link.Reference, "SYM-") || len(link.Reference) != len("SYM-")+6 {
		t.Fatalf("unexpected reference: %q", link.Reference)
	}
	if !strings.Contains(link.Message, "Alex") {
		t.Fatalf("message must name the sender, got %q", link.Message)
	}
	if !strings.Contains(link.Message, "Chest Pain") || !strings.Contains(link.Message, "9/10") {
		t.Fatalf("message must list the alertable symptom, got %q", link.Message)
	}
	if !strings.Contains(link.Message, "worse when moving") {
		t.Fatalf("message must include record notes, got %q", link.Message)
	}
	// Headache at severity 4 is neither severe nor critical.
	if strings.Contains(link.Message, "Headache") {
		t.Fatalf("non-alertable symptoms must be excluded, got %q", link.Message)
	}
}

func TestBuildWhatsAppAlertIncludesCriticalTypesAtLowSeverity(t *testing.T) {
	base := knowledge.Default()
	profile := models.UserProfile{WhatsAppNumber: "49301234567"}

	records := []models.SymptomRecord{
		{Type: "shortness-of-breath", DisplayName: "Shortness Of Breath", Severity: 3},
	}
	link, err := BuildWhatsAppAlert(base, profile, records, time.Now())
	if err != nil {
		t.Fatalf("BuildWhatsAppAlert() unexpected error: %v", err)
	}
	if !strings.Contains(link.Message, "Shortness Of Breath") {
		t.Fatalf("critical type must be alertable regardless of severity, got %q", link.Message)
	}
}

func TestBuildWhatsAppAlertFallsBackToGenericName(t *testing.T) {
	base := knowledge.Default()
	profile := models.UserProfile{WhatsAppNumber: "15551234567"}

	records := []models.SymptomRecord{
		{Type: "fever", DisplayName: "Fever", Severity: 9},
	}
	link, err := BuildWhatsAppAlert(base, profile, records, time.Now())
	if err != nil {
		t.Fatalf("BuildWhatsAppAlert() unexpected error: %v", err)
	}
	if !strings.Contains(link.Message, "A Sympta user") {
		t.Fatalf("expected generic sender name, got %q", link.Message)
	}
}
