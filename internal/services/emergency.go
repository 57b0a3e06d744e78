package services

import (
	"fmt"
	"strings"

	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/models"
)

// EmergencySeverityThreshold marks the severity at which any symptom becomes
// an emergency indicator on its own.
const EmergencySeverityThreshold = 8

var criticalSymptomSentences = map[string]string{
	"chest-pain":          "Chest pain can indicate a serious heart or lung condition.",
	"shortness-of-breath": "Difficulty breathing requires immediate medical attention.",
	"severe-headache":     "A sudden severe headache can signal a neurological emergency.",
	"confusion":           "New confusion or disorientation is a medical emergency.",
	"fainting":            "Loss of consciousness must be evaluated urgently.",
	"severe-bleeding":     "Uncontrolled bleeding requires emergency care.",
	"coughing-blood":      "Coughing up blood requires emergency care.",
}

// AssessEmergency scans the records for emergency indicators: any severity at
// or above the threshold, or any type in the critical symptom set. It fires at
// most one critical suggestion and is read-only; notifying anyone is the
// caller's business.
func AssessEmergency(base *knowledge.Base, records []models.SymptomRecord) *Suggestion {
	sentences := make([]string, 0)
	for _, record := range records {
		slug := knowledge.Slugify(record.Type)
		severe := record.Severity >= EmergencySeverityThreshold
		critical := base.IsCritical(slug)
		if !severe && !critical {
			continue
		}
		sentences = append(sentences, emergencySentence(record, slug, severe))
	}
	if len(sentences) == 0 {
		return nil
	}

	return &Suggestion{
		ID:          "emergency-alert",
		Title:       "Seek Medical Attention",
		Description: "One or more of your logged symptoms indicates a potential emergency.",
		Reasoning:   strings.Join(sentences, " "),
		Priority:    PriorityCritical,
		Category:    CategoryEmergency,
		Actions: []string{
			"Contact a doctor or emergency services now",
			"Do not drive yourself if symptoms are severe",
			"Have someone stay with you until help arrives",
		},
		Timeframe:  "Immediately",
		Confidence: 95,
	}
}

func emergencySentence(record models.SymptomRecord, slug string, severe bool) string {
	display := record.DisplayName
	if display == "" {
		display = knowledge.DisplayName(slug)
	}
	if severe {
		return fmt.Sprintf("%s rated %d/10 is severely high.", display, record.Severity)
	}
	if sentence, ok := criticalSymptomSentences[slug]; ok {
		return sentence
	}
	return fmt.Sprintf("%s is on the critical symptom list.", display)
}
