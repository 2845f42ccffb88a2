package score

import "github.com/denguetect/denguetect-api/schema"

// log-odds added per matching symptom of each group
const (
	clinicalCoreWeight        = 0.35
	clinicalRespiratoryWeight = 0.40
	clinicalWarningWeight     = 0.90
)

// ClinicalHeuristic starts at the base prevalence and adds log-odds for
// every core feature, respiratory absence and warning sign present.
func ClinicalHeuristic(s schema.SymptomSet, base Prevalence) schema.ClinicalProbability {
	counts := schema.ClinicalCounts{
		Core:               s.Count(schema.CoreSymptoms),
		RespiratoryAbsence: s.Count(schema.RespiratoryAbsence),
		Warning:            s.Count(schema.WarningSigns),
	}

	y := Logit(base.modelValue()) +
		clinicalCoreWeight*float64(counts.Core) +
		clinicalRespiratoryWeight*float64(counts.RespiratoryAbsence) +
		clinicalWarningWeight*float64(counts.Warning)

	return schema.ClinicalProbability{
		P:      Sigmoid(y),
		Y:      y,
		Counts: counts,
	}
}
