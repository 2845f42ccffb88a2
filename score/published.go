package score

import (
	"github.com/denguetect/denguetect-api/schema"
)

// FernandezCoefficients are the coefficients of the logistic model published
// by Fernández et al. (2016), https://pmc.ncbi.nlm.nih.gov/articles/PMC5120437/
var FernandezCoefficients = schema.ModelCoefficients{
	Intercept:        0.694,
	Petechiae:        0.718,
	RetroOcularPain:  0.516,
	GingivalBleeding: 0.316,
	Epistaxis:        -0.474,
	SkinPaleness:     -0.535,
}

const (
	fernandezSourceURL  = "https://pmc.ncbi.nlm.nih.gov/articles/PMC5120437/"
	cdcFeaturesURL      = "https://www.cdc.gov/dengue/hcp/clinical-signs/index.html"
	prevalenceSourceURL = "https://pmc.ncbi.nlm.nih.gov/articles/PMC2861403/"
	fernandezModelNotes = "Equation and AUC from Fernández et al. (2016). The paper reports sensitivity 86.2% and specificity 27% for the model and discusses raising the cut-point from 0.5 to 0.6 to improve specificity while maintaining sensitivity >85%. These values are shown for transparency; they are not a diagnosis."
)

func indicator(b bool) int {
	if b {
		return 1
	}
	return 0
}

// PublishedModelInputs maps a symptom set to the five model indicators.
// bleeding-gums-nose sets both gingival bleeding and epistaxis.
func PublishedModelInputs(s schema.SymptomSet) schema.ModelInputs {
	compound := s.Has(schema.BleedingGumsNose)
	return schema.ModelInputs{
		Petechiae:        indicator(s.Has(schema.Petechiae)),
		RetroOcularPain:  indicator(s.Has(schema.RetroOrbitalPain)),
		GingivalBleeding: indicator(s.Has(schema.GingivalBleeding) || compound),
		Epistaxis:        indicator(s.Has(schema.Epistaxis) || compound),
		SkinPaleness:     indicator(s.Has(schema.SkinPaleness)),
	}
}

// LinearPredictor returns intercept + Σ coefficient × indicator.
func LinearPredictor(c schema.ModelCoefficients, x schema.ModelInputs) float64 {
	return c.Intercept +
		c.Petechiae*float64(x.Petechiae) +
		c.RetroOcularPain*float64(x.RetroOcularPain) +
		c.GingivalBleeding*float64(x.GingivalBleeding) +
		c.Epistaxis*float64(x.Epistaxis) +
		c.SkinPaleness*float64(x.SkinPaleness)
}

// PrevalenceOffset is the intercept shift moving the development
// prevalence to the target prevalence.
func PrevalenceOffset(target Prevalence) float64 {
	if !target.IsSet() {
		return 0
	}
	return Logit(target.modelValue()) - Logit(DevelopmentPrevalence)
}

// Recalibrate shifts a linear predictor to the target prevalence. Only the
// intercept moves, so the ordering of any two predictors is unchanged.
func Recalibrate(yDev float64, target Prevalence) (offset, y, p float64) {
	offset = PrevalenceOffset(target)
	y = yDev + offset
	return offset, y, Sigmoid(y)
}

func fernandezModelInfo(target Prevalence, offset float64) schema.ModelInfo {
	var pi0 *float64
	if target.IsSet() {
		v := target.modelValue()
		pi0 = &v
	}

	return schema.ModelInfo{
		AUC:                 0.663,
		AUCInterval:         [2]float64{0.616, 0.710},
		ReportedSensitivity: 0.862,
		ReportedSpecificity: 0.27,
		ExploredThreshold:   0.60,
		Notes:               fernandezModelNotes,
		SourceURL:           fernandezSourceURL,
		CDCFeaturesURL:      cdcFeaturesURL,
		Prevalence: schema.PrevalenceInfo{
			DevelopmentPrevalence: DevelopmentPrevalence,
			TargetPrevalence:      pi0,
			LogitOffsetApplied:    offset,
			TargetSourceURL:       prevalenceSourceURL,
		},
	}
}

// CalculateDengueProbability evaluates the published model and recalibrates
// it to the target prevalence. An unset target leaves the development
// prevalence in place.
func CalculateDengueProbability(s schema.SymptomSet, target Prevalence) schema.CalculationResult {
	x := PublishedModelInputs(s)
	yDev := LinearPredictor(FernandezCoefficients, x)
	offset, y, p := Recalibrate(yDev, target)

	return schema.CalculationResult{
		YDev:          yDev,
		Y:             y,
		PDev:          Sigmoid(yDev),
		P:             p,
		OffsetApplied: offset,
		Inputs:        x,
		Coefficients:  FernandezCoefficients,
		ModelInfo:     fernandezModelInfo(target, offset),
	}
}
