package score

import "github.com/denguetect/denguetect-api/schema"

// probability cut points of the display tiers
const (
	highRiskProbability     = 0.60
	moderateRiskProbability = 0.30
)

func baseDisplayRisk(p float64) schema.DisplayRisk {
	if p >= highRiskProbability {
		return schema.DisplayRiskHigh
	} else if p >= moderateRiskProbability {
		return schema.DisplayRiskModerate
	}
	return schema.DisplayRiskLow
}

// DisplayRisk combines the recalibrated model probability with the count of
// warning signs and core features. The first matching rule wins:
//   - two or more warning signs: high
//   - one warning sign over a low base: moderate
//   - five or more core features over a non-high base: high
//   - three or more core features over a low base: moderate
//   - otherwise the base tier from the probability
func DisplayRisk(p float64, s schema.SymptomSet) schema.DisplayRisk {
	base := baseDisplayRisk(p)

	warnings := s.Count(schema.WarningSigns)
	if warnings >= 2 {
		return schema.DisplayRiskHigh
	}
	if warnings == 1 && base == schema.DisplayRiskLow {
		return schema.DisplayRiskModerate
	}

	core := s.Count(schema.CoreSymptoms)
	if core >= 5 && base != schema.DisplayRiskHigh {
		return schema.DisplayRiskHigh
	}
	if core >= 3 && base == schema.DisplayRiskLow {
		return schema.DisplayRiskModerate
	}

	return base
}
