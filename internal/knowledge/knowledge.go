package knowledge

import "strings"

// SymptomDefinition describes one canonical symptom the matcher can resolve to.
type SymptomDefinition struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Icon     string   `yaml:"icon"`
}

// DiseasePattern is a static rule describing which symptom slugs point at a condition.
type DiseasePattern struct {
	Slug                 string   `yaml:"slug"`
	DisplayName          string   `yaml:"display_name"`
	Symptoms             []string `yaml:"symptoms"`
	EarlySymptoms        []string `yaml:"early_symptoms"`
	MatchThreshold       float64  `yaml:"match_threshold"`
	ConfidenceMultiplier float64  `yaml:"confidence_multiplier"`
	SeverityClass        string   `yaml:"severity_class"`
	Causes               string   `yaml:"causes"`
	Progression          string   `yaml:"progression"`
	Prevention           []string `yaml:"prevention"`
	WarningSigns         []string `yaml:"warning_signs"`
	RiskFactors          []string `yaml:"risk_factors"`
	Complications        []string `yaml:"complications"`
	Prognosis            string   `yaml:"prognosis"`
	RecommendedActions   []string `yaml:"recommended_actions"`
	Timeframe            string   `yaml:"timeframe"`
}

type Treatments struct {
	Immediate  []string `yaml:"immediate"`
	Prevention []string `yaml:"prevention"`
}

// SymptomInfo carries the self-care reference text shown with management suggestions.
type SymptomInfo struct {
	Description  string     `yaml:"description"`
	CommonCauses []string   `yaml:"common_causes"`
	Treatments   Treatments `yaml:"treatments"`
}

type Medication struct {
	GenericName       string   `yaml:"generic_name"`
	BrandNames        []string `yaml:"brand_names"`
	Uses              []string `yaml:"uses"`
	Dosage            string   `yaml:"dosage"`
	SideEffects       []string `yaml:"side_effects"`
	Contraindications []string `yaml:"contraindications"`
}

// CombinationRule fires when every listed slug is present in the analyzed window.
type CombinationRule struct {
	ID          string   `yaml:"id"`
	Slugs       []string `yaml:"slugs"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Reasoning   string   `yaml:"reasoning"`
	Priority    string   `yaml:"priority"`
	Confidence  int      `yaml:"confidence"`
	Actions     []string `yaml:"actions"`
	Timeframe   string   `yaml:"timeframe"`
}

// Base is the full static knowledge set the engine works from. It is read-only
// after load; every analysis pass receives it explicitly.
type Base struct {
	Symptoms             []SymptomDefinition    `yaml:"symptoms"`
	Patterns             []DiseasePattern       `yaml:"patterns"`
	SymptomInfo          map[string]SymptomInfo `yaml:"symptom_info"`
	Medications          map[string]Medication  `yaml:"medications"`
	MedicationsBySymptom map[string][]string    `yaml:"medications_by_symptom"`
	Combinations         []CombinationRule      `yaml:"combinations"`
	CriticalSymptoms     []string               `yaml:"critical_symptoms"`
	StopWords            []string               `yaml:"stop_words"`
}

// IsCritical reports whether the slug belongs to the emergency indicator set.
func (base *Base) IsCritical(slug string) bool {
	normalized := strings.ToLower(strings.TrimSpace(slug))
	for _, critical := range base.CriticalSymptoms {
		if normalized == critical {
			return true
		}
	}
	return false
}

func (base *Base) IsStopWord(word string) bool {
	normalized := strings.ToLower(strings.TrimSpace(word))
	for _, stop := range base.StopWords {
		if normalized == stop {
			return true
		}
	}
	return false
}

func (base *Base) FindDefinitionByName(name string) (SymptomDefinition, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, definition := range base.Symptoms {
		if strings.ToLower(definition.Name) == normalized {
			return definition, true
		}
	}
	return SymptomDefinition{}, false
}

func (base *Base) InfoForSlug(slug string) (SymptomInfo, bool) {
	info, ok := base.SymptomInfo[strings.ToLower(strings.TrimSpace(slug))]
	return info, ok
}

func (base *Base) MedicationNamesForSlug(slug string) []string {
	return base.MedicationsBySymptom[strings.ToLower(strings.TrimSpace(slug))]
}
