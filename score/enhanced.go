package score

import (
	"math"

	"github.com/denguetect/denguetect-api/schema"
)

// bite colour bonuses added to the enhanced percentage
const (
	RedBiteBonus    = 12.0
	YellowBiteBonus = 5.0
)

// RiskLevelForPercentage maps an enhanced percentage to its tier.
func RiskLevelForPercentage(pct float64) schema.RiskLevel {
	switch {
	case pct >= 80:
		return schema.RiskLevelVeryHigh
	case pct >= 60:
		return schema.RiskLevelHigh
	case pct >= 40:
		return schema.RiskLevelModerate
	case pct >= 20:
		return schema.RiskLevelLow
	case pct >= 5:
		return schema.RiskLevelVeryLow
	default:
		return schema.RiskLevelMinimal
	}
}

// scoreMultiplier is 1 plus every booster that applies.
func scoreMultiplier(s schema.SymptomSet, coreCount, warningCount, respCount int) float64 {
	m := 1.0

	if s.Has(schema.FeverHigh) {
		m += 0.30
	}

	switch {
	case warningCount >= 3:
		m += 0.50
	case warningCount == 2:
		m += 0.30
	case warningCount == 1:
		m += 0.20
	}

	switch {
	case coreCount >= 6:
		m += 0.40
	case coreCount >= 4:
		m += 0.20
	case coreCount >= 2:
		m += 0.10
	}

	switch respCount {
	case 2:
		m += 0.20
	case 1:
		m += 0.10
	}

	return m
}

// EnhancedScore sums the category weights of the recognized symptoms,
// boosts the normalized total and maps it to a six level tier. Unknown ids
// contribute nothing.
func EnhancedScore(s schema.SymptomSet) schema.EnhancedScoreResult {
	result := schema.EnhancedScoreResult{
		RiskLevel:        schema.RiskLevelNone,
		SelectedSymptoms: []schema.SelectedSymptom{},
		Breakdown:        schema.ScoreBreakdown{Multiplier: 1.0},
	}

	known := s.Known()
	if len(known) == 0 {
		return result
	}

	b := &result.Breakdown
	for _, sym := range known {
		switch sym.Category {
		case schema.CoreSymptom:
			b.CoreWeight += sym.Weight
			b.CoreCount++
		case schema.WarningSymptom:
			b.WarningWeight += sym.Weight
			b.WarningCount++
		case schema.AdditionalSymptom:
			b.AdditionalWeight += sym.Weight
		}

		result.SelectedSymptoms = append(result.SelectedSymptoms, schema.SelectedSymptom{
			ID:       sym.ID,
			Name:     sym.Name,
			Weight:   sym.Weight,
			Category: sym.Category,
		})
	}
	b.RespiratoryCount = s.Count(schema.RespiratoryAbsence)
	b.TotalWeight = b.CoreWeight + b.WarningWeight + b.AdditionalWeight

	b.BasePercentage = math.Min(100, b.TotalWeight/schema.TotalSymptomWeight*100)
	b.Multiplier = scoreMultiplier(s, b.CoreCount, b.WarningCount, b.RespiratoryCount)

	result.Percentage = roundTo(math.Min(100, b.BasePercentage*b.Multiplier), 1)
	result.RiskLevel = RiskLevelForPercentage(result.Percentage)

	return result
}

// BiteBonus is the percentage added for a bite colour label.
func BiteBonus(label string) float64 {
	switch schema.BiteLabelClass(label) {
	case schema.BiteLabelRed:
		return RedBiteBonus
	case schema.BiteLabelYellow:
		return YellowBiteBonus
	default:
		return 0
	}
}

// ApplyBiteBonus adds the bite colour bonus to a score, then clamps to 100
// and re-maps the tier. Labels without a bonus leave the score unchanged.
func ApplyBiteBonus(result schema.EnhancedScoreResult, label string) schema.EnhancedScoreResult {
	bonus := BiteBonus(label)
	if bonus == 0 {
		return result
	}

	result.Breakdown.BiteBonus = bonus
	result.Percentage = roundTo(math.Min(100, result.Percentage+bonus), 1)
	result.RiskLevel = RiskLevelForPercentage(result.Percentage)
	return result
}
