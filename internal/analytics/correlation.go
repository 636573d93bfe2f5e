package analytics

import "math"

const (
	// minCorrelationSamples is the smallest aligned sample count a Pearson
	// coefficient is reported for.
	minCorrelationSamples = 3
	// nearZeroCoefficient is the |r| below which no direction is claimed.
	nearZeroCoefficient = 0.05
)

const (
	StrengthStrong   = "Strong"
	StrengthModerate = "Moderate"
	StrengthWeak     = "Weak"
)

const (
	DirectionPositive = "positive relationship"
	DirectionInverse  = "inverse relationship"
	DirectionNone     = "no clear relationship"
)

// CorrelationResult reports the Pearson correlation between two metrics over
// their shared dates. When Insufficient or NoVariation is set, Coefficient,
// Strength, and Direction are not meaningful.
type CorrelationResult struct {
	MetricA      Metric  `json:"metric_a"`
	MetricB      Metric  `json:"metric_b"`
	Coefficient  float64 `json:"coefficient"`
	SampleSize   int     `json:"sample_size"`
	Strength     string  `json:"strength,omitempty"`
	Direction    string  `json:"direction,omitempty"`
	Insufficient bool    `json:"insufficient,omitempty"`
	NoVariation  bool    `json:"no_variation,omitempty"`
}

// Correlate computes the Pearson coefficient between two series restricted to
// the intersection of their dates. Fewer than three shared dates yields an
// insufficient-data result; zero variance in either series yields a
// no-variation result. Correlate(a, b) and Correlate(b, a) produce identical
// coefficients.
func Correlate(a, b Series) CorrelationResult {
	out := CorrelationResult{MetricA: a.Metric, MetricB: b.Metric}

	pair := Align(a, b)
	out.SampleSize = pair.Len()
	if pair.Len() < minCorrelationSamples {
		out.Insufficient = true
		return out
	}

	meanA := mean(pair.A)
	meanB := mean(pair.B)
	var cov, varA, varB float64
	for i := range pair.A {
		da := pair.A[i] - meanA
		db := pair.B[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		out.NoVariation = true
		return out
	}

	r := cov / math.Sqrt(varA*varB)
	// Guard against float drift pushing |r| past 1.
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	out.Coefficient = r
	out.Strength = classifyStrength(r)
	out.Direction = classifyDirection(r)
	return out
}

func classifyStrength(r float64) string {
	abs := math.Abs(r)
	switch {
	case abs >= 0.7:
		return StrengthStrong
	case abs >= 0.4:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

func classifyDirection(r float64) string {
	if math.Abs(r) < nearZeroCoefficient {
		return DirectionNone
	}
	if r > 0 {
		return DirectionPositive
	}
	return DirectionInverse
}
