package knowledge

// Default returns the compiled-in knowledge base. It is also the fallback when
// the external knowledge file is missing or malformed, so it has to be complete
// enough for the engine to produce useful suggestions on its own.
func Default() *Base {
	return &Base{
		Symptoms:             defaultSymptoms(),
		Patterns:             defaultPatterns(),
		SymptomInfo:          defaultSymptomInfo(),
		Medications:          defaultMedications(),
		MedicationsBySymptom: defaultMedicationsBySymptom(),
		Combinations:         defaultCombinations(),
		CriticalSymptoms:     defaultCriticalSymptoms(),
		StopWords:            defaultStopWords(),
	}
}

func defaultSymptoms() []SymptomDefinition {
	return []SymptomDefinition{
		{Name: "Headache", Category: "neurological", Keywords: []string{"head", "migraine", "head pain", "pressure"}, Icon: "🤕"},
		{Name: "Severe Headache", Category: "neurological", Keywords: []string{"worst headache", "thunderclap"}, Icon: "🤯"},
		{Name: "Fever", Category: "general", Keywords: []string{"temperature", "hot", "chills", "feverish"}, Icon: "🌡️"},
		{Name: "Cough", Category: "respiratory", Keywords: []string{"coughing", "dry cough", "wet cough"}, Icon: "😷"},
		{Name: "Sore Throat", Category: "respiratory", Keywords: []string{"throat", "throat pain", "swallowing"}, Icon: "😖"},
		{Name: "Runny Nose", Category: "respiratory", Keywords: []string{"nose", "congestion", "sneezing", "stuffy"}, Icon: "🤧"},
		{Name: "Shortness Of Breath", Category: "respiratory", Keywords: []string{"breath", "breathing", "breathless", "wheezing"}, Icon: "😮‍💨"},
		{Name: "Chest Pain", Category: "cardiovascular", Keywords: []string{"chest", "chest pressure", "chest tightness"}, Icon: "💔"},
		{Name: "Nausea", Category: "digestive", Keywords: []string{"queasy", "vomiting", "throwing up"}, Icon: "🤢"},
		{Name: "Diarrhea", Category: "digestive", Keywords: []string{"loose stool", "stomach upset"}, Icon: "🚽"},
		{Name: "Stomach Pain", Category: "digestive", Keywords: []string{"stomach", "abdominal", "belly", "cramping"}, Icon: "😣"},
		{Name: "Fatigue", Category: "general", Keywords: []string{"tired", "exhausted", "weakness", "no energy"}, Icon: "😴"},
		{Name: "Dizziness", Category: "neurological", Keywords: []string{"dizzy", "lightheaded", "vertigo", "spinning"}, Icon: "💫"},
		{Name: "Body Ache", Category: "general", Keywords: []string{"aches", "muscle pain", "sore muscles", "joint pain"}, Icon: "🦴"},
		{Name: "Rash", Category: "skin", Keywords: []string{"skin", "itchy", "hives", "red spots"}, Icon: "🔴"},
		{Name: "Back Pain", Category: "musculoskeletal", Keywords: []string{"back", "lower back", "spine"}, Icon: "🧍"},
		{Name: "Insomnia", Category: "general", Keywords: []string{"sleep", "sleepless", "cannot sleep"}, Icon: "🌙"},
		{Name: "Loss Of Appetite", Category: "digestive", Keywords: []string{"appetite", "not hungry"}, Icon: "🍽️"},
		{Name: "Loss Of Smell", Category: "respiratory", Keywords: []string{"smell", "taste", "anosmia"}, Icon: "👃"},
		{Name: "Itchy Eyes", Category: "allergy", Keywords: []string{"eyes", "watery eyes", "eye irritation"}, Icon: "👁️"},
	}
}

func defaultPatterns() []DiseasePattern {
	return []DiseasePattern{
		{
			Slug:                 "influenza",
			DisplayName:          "Influenza (Flu)",
			Symptoms:             []string{"fever", "cough", "body-ache", "fatigue", "headache"},
			EarlySymptoms:        []string{"fever", "fatigue"},
			MatchThreshold:       0.5,
			ConfidenceMultiplier: 110,
			SeverityClass:        "moderate",
			Causes:               "Influenza A or B viral infection spread by respiratory droplets.",
			Progression:          "Abrupt onset, peaks within two to three days, resolves in one to two weeks.",
			Prevention:           []string{"Annual flu vaccination", "Frequent hand washing", "Avoid close contact with sick people"},
			WarningSigns:         []string{"Difficulty breathing", "Chest pain", "Fever above 39.5C lasting more than three days"},
			RiskFactors:          []string{"Age over 65", "Pregnancy", "Chronic heart or lung disease"},
			Complications:        []string{"Pneumonia", "Dehydration", "Worsening of chronic conditions"},
			Prognosis:            "Full recovery expected within two weeks for otherwise healthy adults.",
			RecommendedActions:   []string{"Rest and stay hydrated", "Use fever reducers as directed", "Stay home to avoid spreading infection"},
			Timeframe:            "See a doctor if symptoms persist beyond 7 days",
		},
		{
			Slug:                 "common-cold",
			DisplayName:          "Common Cold",
			Symptoms:             []string{"runny-nose", "sore-throat", "cough", "headache"},
			EarlySymptoms:        []string{"sore-throat", "runny-nose"},
			MatchThreshold:       0.5,
			ConfidenceMultiplier: 100,
			SeverityClass:        "mild",
			Causes:               "Rhinovirus or other common respiratory viruses.",
			Progression:          "Gradual onset, worst around day three, clears within ten days.",
			Prevention:           []string{"Hand hygiene", "Avoid touching the face", "Adequate sleep"},
			WarningSigns:         []string{"High fever", "Symptoms beyond ten days", "Severe sinus pain"},
			RiskFactors:          []string{"Season change", "Close contact environments"},
			Complications:        []string{"Sinusitis", "Ear infection"},
			Prognosis:            "Self-limiting; resolves without treatment.",
			RecommendedActions:   []string{"Rest", "Warm fluids", "Saline nasal rinse"},
			Timeframe:            "See a doctor if not improving after 10 days",
		},
		{
			Slug:                 "covid-like-illness",
			DisplayName:          "COVID-like Illness",
			Symptoms:             []string{"fever", "cough", "fatigue", "loss-of-smell", "shortness-of-breath"},
			EarlySymptoms:        []string{"fever", "cough"},
			MatchThreshold:       0.4,
			ConfidenceMultiplier: 120,
			SeverityClass:        "moderate",
			Causes:               "SARS-CoV-2 or a similar respiratory viral infection.",
			Progression:          "Symptoms appear 2-14 days after exposure; breathing problems mark the severe course.",
			Prevention:           []string{"Vaccination", "Masking in crowded indoor spaces", "Ventilation"},
			WarningSigns:         []string{"Shortness of breath at rest", "Bluish lips", "Persistent chest pressure"},
			RiskFactors:          []string{"Immunosuppression", "Obesity", "Age over 60"},
			Complications:        []string{"Pneumonia", "Long-lasting fatigue", "Blood clots"},
			Prognosis:            "Most cases recover at home within two to three weeks.",
			RecommendedActions:   []string{"Take a test", "Isolate from household members", "Monitor oxygen if available"},
			Timeframe:            "Seek testing within 48 hours of symptom onset",
		},
		{
			Slug:                 "gastroenteritis",
			DisplayName:          "Gastroenteritis (Stomach Flu)",
			Symptoms:             []string{"nausea", "diarrhea", "stomach-pain", "fever"},
			EarlySymptoms:        []string{"nausea"},
			MatchThreshold:       0.5,
			ConfidenceMultiplier: 105,
			SeverityClass:        "moderate",
			Causes:               "Norovirus, rotavirus, or food-borne bacteria.",
			Progression:          "Sudden onset, most intense in the first 24-48 hours.",
			Prevention:           []string{"Food safety", "Hand washing before meals"},
			WarningSigns:         []string{"Blood in stool", "Signs of dehydration", "Fever above 39C"},
			RiskFactors:          []string{"Recent travel", "Contaminated food or water"},
			Complications:        []string{"Dehydration", "Electrolyte imbalance"},
			Prognosis:            "Usually resolves within three days.",
			RecommendedActions:   []string{"Small sips of oral rehydration solution", "Bland diet", "Rest"},
			Timeframe:            "See a doctor if unable to keep fluids down for 24 hours",
		},
		{
			Slug:                 "migraine",
			DisplayName:          "Migraine",
			Symptoms:             []string{"headache", "nausea", "dizziness"},
			EarlySymptoms:        []string{"headache"},
			MatchThreshold:       0.6,
			ConfidenceMultiplier: 100,
			SeverityClass:        "moderate",
			Causes:               "Neurovascular disorder; triggers include stress, sleep loss, and certain foods.",
			Progression:          "Attacks last 4-72 hours, often one-sided and pulsating.",
			Prevention:           []string{"Regular sleep schedule", "Identify and avoid triggers", "Stay hydrated"},
			WarningSigns:         []string{"Sudden worst-ever headache", "Headache with fever and stiff neck", "New neurological symptoms"},
			RiskFactors:          []string{"Family history", "Hormonal changes"},
			Complications:        []string{"Chronic migraine", "Medication overuse headache"},
			Prognosis:            "Manageable with trigger control and medication.",
			RecommendedActions:   []string{"Rest in a dark quiet room", "Apply a cold compress", "Take pain relief early in the attack"},
			Timeframe:            "Discuss preventive treatment if attacks exceed 4 per month",
		},
		{
			Slug:                 "allergic-rhinitis",
			DisplayName:          "Allergic Rhinitis",
			Symptoms:             []string{"runny-nose", "itchy-eyes", "cough", "headache"},
			EarlySymptoms:        []string{"runny-nose", "itchy-eyes"},
			MatchThreshold:       0.5,
			ConfidenceMultiplier: 95,
			SeverityClass:        "mild",
			Causes:               "Immune response to pollen, dust mites, or animal dander.",
			Progression:          "Symptoms track allergen exposure; seasonal or year-round.",
			Prevention:           []string{"Keep windows closed in pollen season", "Wash bedding hot weekly", "Shower after outdoor activity"},
			WarningSigns:         []string{"Wheezing", "Shortness of breath"},
			RiskFactors:          []string{"Family history of atopy", "Existing asthma"},
			Complications:        []string{"Sinusitis", "Poor sleep"},
			Prognosis:            "Controllable with avoidance and antihistamines.",
			RecommendedActions:   []string{"Try a non-drowsy antihistamine", "Saline nasal rinse", "Track exposure patterns"},
			Timeframe:            "See an allergist if symptoms persist across seasons",
		},
		{
			Slug:                 "tension-headache",
			DisplayName:          "Tension Headache",
			Symptoms:             []string{"headache", "fatigue", "insomnia"},
			EarlySymptoms:        []string{"headache"},
			MatchThreshold:       0.6,
			ConfidenceMultiplier: 90,
			SeverityClass:        "mild",
			Causes:               "Muscle tension from stress, posture, or eye strain.",
			Progression:          "Band-like pressure that builds over the day.",
			Prevention:           []string{"Regular screen breaks", "Stress management", "Neck and shoulder stretches"},
			WarningSigns:         []string{"Headache that wakes you at night", "Progressive worsening over weeks"},
			RiskFactors:          []string{"Desk work", "Poor sleep"},
			Complications:        []string{"Chronic daily headache"},
			Prognosis:            "Responds well to lifestyle adjustment.",
			RecommendedActions:   []string{"Short walk and stretching", "Check workstation ergonomics", "Limit caffeine late in the day"},
			Timeframe:            "See a doctor if headaches occur more than 15 days a month",
		},
		{
			Slug:                 "pneumonia",
			DisplayName:          "Pneumonia",
			Symptoms:             []string{"fever", "cough", "shortness-of-breath", "chest-pain", "fatigue"},
			EarlySymptoms:        []string{"cough", "fever"},
			MatchThreshold:       0.5,
			ConfidenceMultiplier: 130,
			SeverityClass:        "severe",
			Causes:               "Bacterial or viral infection of the lung tissue.",
			Progression:          "Worsening cough and breathlessness over days; can escalate quickly.",
			Prevention:           []string{"Pneumococcal and flu vaccination", "Not smoking"},
			WarningSigns:         []string{"Breathing difficulty at rest", "Confusion", "Coughing up blood"},
			RiskFactors:          []string{"Recent flu", "Smoking", "Chronic lung disease"},
			Complications:        []string{"Respiratory failure", "Sepsis", "Pleural effusion"},
			Prognosis:            "Good with prompt treatment; serious if untreated.",
			RecommendedActions:   []string{"Seek medical evaluation promptly", "Do not suppress a productive cough without advice", "Complete any prescribed antibiotics"},
			Timeframe:            "See a doctor within 24 hours",
		},
	}
}

func defaultSymptomInfo() map[string]SymptomInfo {
	return map[string]SymptomInfo{
		"headache": {
			Description:  "Pain or pressure anywhere in the head or upper neck.",
			CommonCauses: []string{"Dehydration", "Stress", "Eye strain", "Poor sleep"},
			Treatments: Treatments{
				Immediate:  []string{"Drink a glass of water", "Rest in a quiet, dim room", "Apply a cold or warm compress"},
				Prevention: []string{"Keep a regular sleep schedule", "Take screen breaks", "Stay hydrated through the day"},
			},
		},
		"fever": {
			Description:  "Body temperature above the normal range, usually a response to infection.",
			CommonCauses: []string{"Viral infection", "Bacterial infection", "Heat exhaustion"},
			Treatments: Treatments{
				Immediate:  []string{"Drink plenty of fluids", "Dress lightly", "Use a fever reducer as directed"},
				Prevention: []string{"Hand hygiene", "Keep vaccinations current"},
			},
		},
		"cough": {
			Description:  "Reflex that clears the airways of irritants and mucus.",
			CommonCauses: []string{"Cold or flu", "Allergies", "Dry air", "Acid reflux"},
			Treatments: Treatments{
				Immediate:  []string{"Warm fluids with honey", "Humidify the room air", "Lozenges to soothe the throat"},
				Prevention: []string{"Avoid smoke exposure", "Manage allergies"},
			},
		},
		"sore-throat": {
			Description:  "Pain, scratchiness, or irritation of the throat, often worse when swallowing.",
			CommonCauses: []string{"Viral infection", "Dry air", "Voice strain"},
			Treatments: Treatments{
				Immediate:  []string{"Gargle warm salt water", "Warm tea with honey", "Throat lozenges"},
				Prevention: []string{"Stay hydrated", "Use a humidifier in dry rooms"},
			},
		},
		"nausea": {
			Description:  "Queasy sensation with or without the urge to vomit.",
			CommonCauses: []string{"Stomach virus", "Food poisoning", "Motion sickness", "Medication side effect"},
			Treatments: Treatments{
				Immediate:  []string{"Sip clear fluids slowly", "Try ginger tea or crackers", "Avoid strong smells"},
				Prevention: []string{"Eat smaller meals", "Avoid known trigger foods"},
			},
		},
		"fatigue": {
			Description:  "Persistent tiredness that rest does not fully relieve.",
			CommonCauses: []string{"Poor sleep", "Stress", "Anemia", "Viral illness"},
			Treatments: Treatments{
				Immediate:  []string{"Prioritize a full night of sleep", "Light exercise such as a short walk", "Limit caffeine after midday"},
				Prevention: []string{"Consistent sleep and wake times", "Balanced meals"},
			},
		},
		"dizziness": {
			Description:  "Sensation of lightheadedness or spinning.",
			CommonCauses: []string{"Dehydration", "Low blood pressure", "Inner ear problems"},
			Treatments: Treatments{
				Immediate:  []string{"Sit or lie down immediately", "Drink water", "Rise slowly from sitting"},
				Prevention: []string{"Stay hydrated", "Avoid sudden position changes"},
			},
		},
		"stomach-pain": {
			Description:  "Discomfort anywhere between the chest and groin.",
			CommonCauses: []string{"Indigestion", "Gas", "Stomach virus", "Food intolerance"},
			Treatments: Treatments{
				Immediate:  []string{"Apply a warm compress", "Stick to bland foods", "Avoid lying flat right after eating"},
				Prevention: []string{"Eat slowly", "Identify trigger foods"},
			},
		},
		"diarrhea": {
			Description:  "Loose or watery stools occurring more often than normal.",
			CommonCauses: []string{"Viral infection", "Food poisoning", "Medication side effect"},
			Treatments: Treatments{
				Immediate:  []string{"Oral rehydration solution", "Bananas, rice, applesauce, toast", "Avoid dairy and caffeine"},
				Prevention: []string{"Food safety", "Hand washing before meals"},
			},
		},
		"back-pain": {
			Description:  "Muscle ache or shooting pain along the spine.",
			CommonCauses: []string{"Muscle strain", "Poor posture", "Prolonged sitting"},
			Treatments: Treatments{
				Immediate:  []string{"Gentle stretching", "Alternate heat and ice", "Keep moving lightly rather than bed rest"},
				Prevention: []string{"Strengthen core muscles", "Lift with the legs"},
			},
		},
		"insomnia": {
			Description:  "Difficulty falling asleep or staying asleep.",
			CommonCauses: []string{"Stress", "Caffeine", "Irregular schedule", "Screen use at night"},
			Treatments: Treatments{
				Immediate:  []string{"Keep the bedroom cool and dark", "No screens an hour before bed", "Get up if not asleep within 20 minutes"},
				Prevention: []string{"Fixed wake time", "Limit naps to 20 minutes"},
			},
		},
		"runny-nose": {
			Description:  "Excess nasal drainage from irritation or infection.",
			CommonCauses: []string{"Cold", "Allergies", "Temperature change"},
			Treatments: Treatments{
				Immediate:  []string{"Saline nasal rinse", "Stay hydrated", "Steam inhalation"},
				Prevention: []string{"Manage allergen exposure", "Hand hygiene"},
			},
		},
	}
}

func defaultMedications() map[string]Medication {
	return map[string]Medication{
		"paracetamol": {
			GenericName:       "Acetaminophen",
			BrandNames:        []string{"Tylenol", "Panadol"},
			Uses:              []string{"Fever reduction", "Mild to moderate pain"},
			Dosage:            "500-1000 mg every 4-6 hours, max 4 g per day",
			SideEffects:       []string{"Rare at normal doses", "Liver damage in overdose"},
			Contraindications: []string{"Liver disease", "Heavy alcohol use"},
		},
		"ibuprofen": {
			GenericName:       "Ibuprofen",
			BrandNames:        []string{"Advil", "Nurofen"},
			Uses:              []string{"Pain relief", "Inflammation", "Fever reduction"},
			Dosage:            "200-400 mg every 4-6 hours with food, max 1.2 g per day without advice",
			SideEffects:       []string{"Stomach upset", "Heartburn"},
			Contraindications: []string{"Stomach ulcers", "Kidney disease", "Aspirin allergy"},
		},
		"loratadine": {
			GenericName:       "Loratadine",
			BrandNames:        []string{"Claritin"},
			Uses:              []string{"Allergy symptoms", "Runny nose", "Itchy eyes"},
			Dosage:            "10 mg once daily",
			SideEffects:       []string{"Headache", "Dry mouth"},
			Contraindications: []string{"Severe liver impairment"},
		},
		"dextromethorphan": {
			GenericName:       "Dextromethorphan",
			BrandNames:        []string{"Robitussin DM", "Delsym"},
			Uses:              []string{"Dry cough suppression"},
			Dosage:            "10-20 mg every 4 hours",
			SideEffects:       []string{"Drowsiness", "Dizziness"},
			Contraindications: []string{"MAOI antidepressants", "Chronic productive cough"},
		},
		"loperamide": {
			GenericName:       "Loperamide",
			BrandNames:        []string{"Imodium"},
			Uses:              []string{"Acute diarrhea"},
			Dosage:            "4 mg initially, then 2 mg after each loose stool, max 8 mg per day",
			SideEffects:       []string{"Constipation", "Bloating"},
			Contraindications: []string{"Bloody diarrhea", "High fever"},
		},
		"dimenhydrinate": {
			GenericName:       "Dimenhydrinate",
			BrandNames:        []string{"Dramamine"},
			Uses:              []string{"Nausea", "Motion sickness", "Dizziness"},
			Dosage:            "50-100 mg every 4-6 hours",
			SideEffects:       []string{"Drowsiness", "Dry mouth"},
			Contraindications: []string{"Glaucoma", "Prostate enlargement"},
		},
	}
}

func defaultMedicationsBySymptom() map[string][]string {
	return map[string][]string{
		"headache":     {"paracetamol", "ibuprofen"},
		"fever":        {"paracetamol", "ibuprofen"},
		"body-ache":    {"ibuprofen", "paracetamol"},
		"back-pain":    {"ibuprofen"},
		"cough":        {"dextromethorphan"},
		"runny-nose":   {"loratadine"},
		"itchy-eyes":   {"loratadine"},
		"rash":         {"loratadine"},
		"diarrhea":     {"loperamide"},
		"nausea":       {"dimenhydrinate"},
		"dizziness":    {"dimenhydrinate"},
		"stomach-pain": {"paracetamol"},
	}
}

func defaultCombinations() []CombinationRule {
	return []CombinationRule{
		{
			ID:          "combo-infection",
			Slugs:       []string{"fever", "headache"},
			Title:       "Possible Infection",
			Description: "Fever together with headache often signals a developing infection.",
			Reasoning:   "You logged fever and headache in the same period, a combination commonly seen at the start of viral infections.",
			Priority:    "high",
			Confidence:  85,
			Actions:     []string{"Monitor your temperature every few hours", "Rest and increase fluid intake", "Watch for a stiff neck or light sensitivity"},
			Timeframe:   "See a doctor if fever persists beyond 48 hours",
		},
		{
			ID:          "combo-respiratory",
			Slugs:       []string{"cough", "shortness-of-breath"},
			Title:       "Respiratory Involvement",
			Description: "Cough with breathing difficulty suggests the lower airways are affected.",
			Reasoning:   "Cough combined with shortness of breath points beyond a simple cold toward bronchial or lung involvement.",
			Priority:    "high",
			Confidence:  80,
			Actions:     []string{"Avoid exertion", "Sit upright to ease breathing", "Seek care the same day if breathing worsens"},
			Timeframe:   "Seek medical evaluation within 24 hours",
		},
		{
			ID:          "combo-dehydration",
			Slugs:       []string{"diarrhea", "dizziness"},
			Title:       "Dehydration Risk",
			Description: "Fluid loss from diarrhea with dizziness indicates possible dehydration.",
			Reasoning:   "Dizziness alongside ongoing diarrhea is a common early sign of fluid and electrolyte loss.",
			Priority:    "medium",
			Confidence:  75,
			Actions:     []string{"Start oral rehydration solution", "Avoid caffeine and alcohol", "Track urine color as a hydration check"},
			Timeframe:   "Seek care if dizziness worsens or urination stops",
		},
		{
			ID:          "combo-gi-distress",
			Slugs:       []string{"nausea", "stomach-pain", "fever"},
			Title:       "Gastrointestinal Infection",
			Description: "Nausea, stomach pain, and fever together suggest a gastrointestinal infection.",
			Reasoning:   "The combination of digestive symptoms with fever usually points at an infectious cause rather than simple indigestion.",
			Priority:    "high",
			Confidence:  80,
			Actions:     []string{"Small frequent sips of fluid", "Bland diet until settled", "Note any blood in stool or vomit"},
			Timeframe:   "See a doctor if unable to keep fluids down for 24 hours",
		},
	}
}

// defaultCriticalSymptoms is the emergency indicator set. shortness-of-breath is
// the canonical spelling everywhere in this codebase.
func defaultCriticalSymptoms() []string {
	return []string{
		"chest-pain",
		"shortness-of-breath",
		"severe-headache",
		"confusion",
		"fainting",
		"severe-bleeding",
		"coughing-blood",
	}
}

func defaultStopWords() []string {
	return []string{
		"i", "a", "an", "the", "and", "or", "but",
		"have", "has", "had", "having",
		"feel", "feels", "feeling", "felt",
		"am", "is", "are", "was", "been", "being",
		"my", "me", "it", "its", "with", "of", "in", "on",
		"very", "really", "quite", "bit", "little", "some", "so",
		"today", "yesterday", "now", "again", "still",
		"get", "got", "getting",
	}
}
