package score

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPretestPrevalence is the dengue base rate among febrile
	// patients reported by Gregory et al. (2010).
	DefaultPretestPrevalence = 0.055

	// DevelopmentPrevalence is the dengue prevalence of the cohort the
	// published model was fitted on.
	DevelopmentPrevalence = 0.71

	minModelPrevalence = 1e-6
	maxModelPrevalence = 1 - 1e-6

	// Bounds accepted for a user supplied setting.
	MinSettingPrevalence = 0.0001
	MaxSettingPrevalence = 0.95
)

var ErrInvalidPrevalence = errors.New("invalid prevalence value")

// Prevalence is an optional pretest prevalence. The zero value means the
// caller supplied nothing usable and the default applies.
type Prevalence struct {
	value float64
	valid bool
}

// PrevalenceOf wraps a caller value. Non-finite values fall back to the
// default; finite out of range values are kept and clamped at use.
func PrevalenceOf(v float64) Prevalence {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Prevalence{}
	}
	return Prevalence{value: v, valid: true}
}

// PrevalenceFromSetting reads a stored, possibly absent, account setting.
func PrevalenceFromSetting(v *float64) Prevalence {
	if v == nil {
		return Prevalence{}
	}
	return PrevalenceOf(*v)
}

func (p Prevalence) IsSet() bool {
	return p.valid
}

// OrDefault returns the caller value, or DefaultPretestPrevalence when unset.
func (p Prevalence) OrDefault() float64 {
	if !p.valid {
		return DefaultPretestPrevalence
	}
	return p.value
}

// modelValue is the value clamped for use inside a log-odds transform.
func (p Prevalence) modelValue() float64 {
	return clamp(p.OrDefault(), minModelPrevalence, maxModelPrevalence)
}

// ParsePrevalenceSetting parses a prevalence typed into the settings form.
// Values above 1 are read as percentages. The result is clamped to
// [MinSettingPrevalence, MaxSettingPrevalence].
func ParsePrevalenceSetting(raw string) (float64, error) {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if raw == "" {
		return 0, ErrInvalidPrevalence
	}

	x, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrInvalidPrevalence
	}

	return NormalizePrevalenceSetting(x), nil
}

// NormalizePrevalenceSetting applies the percentage rule and settings clamp
// to an already numeric value.
func NormalizePrevalenceSetting(x float64) float64 {
	if x > 1.0 {
		x = x / 100.0
	}
	return clamp(x, MinSettingPrevalence, MaxSettingPrevalence)
}
