package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/models"
	"github.com/vkotelnikov/sympta/internal/security"
)

var (
	ErrMissingWhatsAppNumber = errors.New("profile has no whatsapp number")
	ErrNoAlertableSymptoms   = errors.New("no high-severity or critical symptoms to report")
)

const alertReferenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// AlertLink is a pre-addressed WhatsApp compose link. Opening it is the UI's
// job; the server never sends anything and there is no delivery confirmation.
type AlertLink struct {
	URL       string `json:"url"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

// BuildWhatsAppAlert formats an emergency message for the profile's contact
// number and wraps it in a wa.me deep link. Only records that qualify as
// emergency indicators (severity at threshold or critical type) are included.
func BuildWhatsAppAlert(base *knowledge.Base, profile models.UserProfile, records []models.SymptomRecord, now time.Time) (AlertLink, error) {
	number := normalizeWhatsAppDigits(profile.WhatsAppNumber)
	if number == "" {
		return AlertLink{}, ErrMissingWhatsAppNumber
	}

	alertable := make([]models.SymptomRecord, 0)
	for _, record := range records {
		if record.Severity >= EmergencySeverityThreshold || base.IsCritical(knowledge.Slugify(record.Type)) {
			alertable = append(alertable, record)
		}
	}
	if len(alertable) == 0 {
		return AlertLink{}, ErrNoAlertableSymptoms
	}

	reference, err := security.RandomString(6, alertReferenceAlphabet)
	if err != nil {
		return AlertLink{}, fmt.Errorf("generate alert reference: %w", err)
	}
	reference = "SYM-" + reference

	message := buildAlertMessage(profile, alertable, reference, now)
	return AlertLink{
		URL:       "https://wa.me/" + number + "?text=" + url.QueryEscape(message),
		Message:   message,
		Reference: reference,
	}, nil
}

func buildAlertMessage(profile models.UserProfile, records []models.SymptomRecord, reference string, now time.Time) string {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = "A Sympta user"
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "🚨 Health alert from %s\n", name)
	fmt.Fprintf(&builder, "Reference: %s\n", reference)
	fmt.Fprintf(&builder, "Time: %s\n\n", now.Format("2 Jan 2006 15:04"))
	builder.WriteString("Reported symptoms:\n")
	for _, record := range records {
		fmt.Fprintf(&builder, "• %s — severity %d/10", record.DisplayName, record.Severity)
		if record.Notes != "" {
			fmt.Fprintf(&builder, " (%s)", record.Notes)
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\nPlease check on them as soon as possible.")
	return builder.String()
}

func normalizeWhatsAppDigits(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}
