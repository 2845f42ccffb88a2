package score

import "math"

// Logit returns ln(p/(1-p)). p must lie strictly inside (0,1).
func Logit(p float64) float64 {
	return math.Log(p / (1.0 - p))
}

// Sigmoid is the inverse of Logit.
func Sigmoid(y float64) float64 {
	return 1.0 / (1.0 + math.Exp(-y))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// Percent converts a probability to a whole percentage.
func Percent(p float64) int {
	return int(math.Round(p * 100))
}
