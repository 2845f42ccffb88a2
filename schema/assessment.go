package schema

import "time"

const (
	AssessmentCollection = "assessments"

	// PublishedModelName identifies the Fernández et al. (2016) equation.
	PublishedModelName = "fernandez2016"
)

// DisplayRisk is the three-level tier shown to the user.
type DisplayRisk string

const (
	DisplayRiskLow      DisplayRisk = "low"
	DisplayRiskModerate DisplayRisk = "moderate"
	DisplayRiskHigh     DisplayRisk = "high"
)

// RiskLevel is the six-level tier of the enhanced weighted score.
type RiskLevel string

const (
	RiskLevelNone     RiskLevel = "none"
	RiskLevelMinimal  RiskLevel = "minimal"
	RiskLevelVeryLow  RiskLevel = "very_low"
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelVeryHigh RiskLevel = "very_high"
)

// ModelInputs are the five binary indicators of the published model.
type ModelInputs struct {
	Petechiae        int `json:"petechiae" bson:"petechiae"`
	RetroOcularPain  int `json:"retro_ocular_pain" bson:"retro_ocular_pain"`
	GingivalBleeding int `json:"gingival_bleeding" bson:"gingival_bleeding"`
	Epistaxis        int `json:"epistaxis" bson:"epistaxis"`
	SkinPaleness     int `json:"skin_paleness" bson:"skin_paleness"`
}

// ModelCoefficients is the intercept and slopes of a logistic model.
type ModelCoefficients struct {
	Intercept        float64 `json:"intercept" bson:"intercept"`
	Petechiae        float64 `json:"petechiae" bson:"petechiae"`
	RetroOcularPain  float64 `json:"retro_ocular_pain" bson:"retro_ocular_pain"`
	GingivalBleeding float64 `json:"gingival_bleeding" bson:"gingival_bleeding"`
	Epistaxis        float64 `json:"epistaxis" bson:"epistaxis"`
	SkinPaleness     float64 `json:"skin_paleness" bson:"skin_paleness"`
}

type PrevalenceInfo struct {
	DevelopmentPrevalence float64  `json:"development_prevalence" bson:"development_prevalence"`
	TargetPrevalence      *float64 `json:"target_prevalence" bson:"target_prevalence"`
	LogitOffsetApplied    float64  `json:"logit_offset_applied" bson:"logit_offset_applied"`
	TargetSourceURL       string   `json:"target_prevalence_source_url" bson:"target_prevalence_source_url"`
}

// ModelInfo is reported performance of the published model. Display only.
type ModelInfo struct {
	AUC                 float64        `json:"auc" bson:"auc"`
	AUCInterval         [2]float64     `json:"auc_ci" bson:"auc_ci"`
	ReportedSensitivity float64        `json:"reported_sensitivity" bson:"reported_sensitivity"`
	ReportedSpecificity float64        `json:"reported_specificity" bson:"reported_specificity"`
	ExploredThreshold   float64        `json:"explored_threshold" bson:"explored_threshold"`
	Notes               string         `json:"notes" bson:"notes"`
	SourceURL           string         `json:"source_url" bson:"source_url"`
	CDCFeaturesURL      string         `json:"cdc_features_url" bson:"cdc_features_url"`
	Prevalence          PrevalenceInfo `json:"prevalence" bson:"prevalence"`
}

// CalculationResult is one pass of the published model with recalibration.
type CalculationResult struct {
	YDev          float64           `json:"y_dev" bson:"y_dev"`
	Y             float64           `json:"y" bson:"y"`
	PDev          float64           `json:"p_dev" bson:"p_dev"`
	P             float64           `json:"p" bson:"p"`
	OffsetApplied float64           `json:"offset_applied" bson:"offset_applied"`
	Inputs        ModelInputs       `json:"inputs" bson:"inputs"`
	Coefficients  ModelCoefficients `json:"coefficients" bson:"coefficients"`
	ModelInfo     ModelInfo         `json:"model_info" bson:"model_info"`
}

type SelectedSymptom struct {
	ID       SymptomType     `json:"id" bson:"id"`
	Name     string          `json:"name" bson:"name"`
	Weight   float64         `json:"weight" bson:"weight"`
	Category SymptomCategory `json:"category" bson:"category"`
}

type ScoreBreakdown struct {
	CoreWeight       float64 `json:"core_weight" bson:"core_weight"`
	WarningWeight    float64 `json:"warning_weight" bson:"warning_weight"`
	AdditionalWeight float64 `json:"additional_weight" bson:"additional_weight"`
	TotalWeight      float64 `json:"total_weight" bson:"total_weight"`
	BasePercentage   float64 `json:"base_percentage" bson:"base_percentage"`
	Multiplier       float64 `json:"multiplier" bson:"multiplier"`
	CoreCount        int     `json:"core_count" bson:"core_count"`
	WarningCount     int     `json:"warning_count" bson:"warning_count"`
	RespiratoryCount int     `json:"respiratory_absence_count" bson:"respiratory_absence_count"`
	BiteBonus        float64 `json:"bite_bonus" bson:"bite_bonus"`
}

type EnhancedScoreResult struct {
	Percentage       float64           `json:"percentage" bson:"percentage"`
	RiskLevel        RiskLevel         `json:"risk_level" bson:"risk_level"`
	Breakdown        ScoreBreakdown    `json:"breakdown" bson:"breakdown"`
	SelectedSymptoms []SelectedSymptom `json:"selected_symptoms" bson:"selected_symptoms"`
}

type ClinicalCounts struct {
	Core               int `json:"core" bson:"core"`
	RespiratoryAbsence int `json:"resp_abs" bson:"resp_abs"`
	Warning            int `json:"warning" bson:"warning"`
}

// ClinicalProbability is the UI cross-check heuristic. It is never the
// authoritative score.
type ClinicalProbability struct {
	P      float64        `json:"p" bson:"p"`
	Y      float64        `json:"y" bson:"y"`
	Counts ClinicalCounts `json:"counts" bson:"counts"`
}

// Assessment bundles every symptom based output of one request.
type Assessment struct {
	Symptoms          []string            `json:"symptoms" bson:"symptoms"`
	TargetPrevalence  float64             `json:"target_prevalence" bson:"target_prevalence"`
	Calculation       CalculationResult   `json:"calculation" bson:"calculation"`
	Enhanced          EnhancedScoreResult `json:"enhanced" bson:"enhanced"`
	Clinical          ClinicalProbability `json:"clinical" bson:"clinical"`
	DisplayRisk       DisplayRisk         `json:"risk_level" bson:"risk_level"`
	BiteLabel         string              `json:"bite_label,omitempty" bson:"bite_label,omitempty"`
	ProbabilityPct    int                 `json:"prob_pct" bson:"-"`
	DevProbabilityPct int                 `json:"p_dev_pct" bson:"-"`
	ClinicalPct       int                 `json:"p_clinical_pct" bson:"-"`
}

// AssessmentReport is the stored form of an Assessment.
type AssessmentReport struct {
	ID         string     `json:"id" bson:"_id"`
	AccountID  string     `json:"account_id" bson:"account_id"`
	Model      string     `json:"model" bson:"model"`
	Assessment Assessment `json:"assessment" bson:"assessment"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
}
