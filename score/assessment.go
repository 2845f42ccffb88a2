package score

import (
	log "github.com/sirupsen/logrus"

	"github.com/denguetect/denguetect-api/schema"
)

// Assess runs every symptom based scorer over one request. The target
// prevalence falls back to DefaultPretestPrevalence, so the published model
// is always recalibrated. biteLabel is the label class of a bite analysis,
// or empty when there is none.
func Assess(symptoms []string, prevalence Prevalence, biteLabel string) schema.Assessment {
	s := schema.NewSymptomSet(symptoms)
	target := PrevalenceOf(prevalence.OrDefault())

	calc := CalculateDengueProbability(s, target)
	enhanced := ApplyBiteBonus(EnhancedScore(s), biteLabel)
	clinical := ClinicalHeuristic(s, target)
	risk := DisplayRisk(calc.P, s)

	log.WithField("prefix", "score").Debugf("symptoms: %v, prevalence: %f, p: %f, enhanced: %.1f, risk: %s",
		s.IDs(), target.OrDefault(), calc.P, enhanced.Percentage, risk)

	a := schema.Assessment{
		Symptoms:         s.IDs(),
		TargetPrevalence: target.OrDefault(),
		Calculation:      calc,
		Enhanced:         enhanced,
		Clinical:         clinical,
		DisplayRisk:      risk,
		BiteLabel:        biteLabel,
	}
	SetPercentages(&a)
	return a
}

// SetPercentages fills the whole number percentages, which are not stored.
func SetPercentages(a *schema.Assessment) {
	a.ProbabilityPct = Percent(a.Calculation.P)
	a.DevProbabilityPct = Percent(a.Calculation.PDev)
	a.ClinicalPct = Percent(a.Clinical.P)
}
