package analytics

import "time"

const (
	DefaultHorizonDays = 7
	// minPredictionSamples is the smallest series a regression line is fit to.
	minPredictionSamples = 3
)

// Prediction is a short-horizon linear extrapolation of a metric, clamped to
// the metric's valid domain.
type Prediction struct {
	Metric         Metric  `json:"metric"`
	HorizonDays    int     `json:"horizon_days"`
	PredictedValue float64 `json:"predicted_value"`
	SampleSize     int     `json:"sample_size"`
	Insufficient   bool    `json:"insufficient,omitempty"`
}

// Predict fits an ordinary least-squares line over day offsets from the
// series' first date and extrapolates horizonDays past the last sample.
// Fewer than three samples yields an insufficient-data result. A horizon of
// zero or less falls back to the default; arbitrarily large horizons are
// accepted as-is.
func Predict(s Series, horizonDays int) Prediction {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	out := Prediction{
		Metric:      s.Metric,
		HorizonDays: horizonDays,
		SampleSize:  s.Len(),
	}
	if s.Len() < minPredictionSamples {
		out.Insufficient = true
		return out
	}

	first := s.Samples[0].Date
	var sumX, sumY, sumXY, sumX2 float64
	for _, sample := range s.Samples {
		x := dayOffset(first, sample.Date)
		y := sample.Value
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	n := float64(s.Len())
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		// Unique dates make this unreachable past one sample, but a flat
		// extrapolation is still the right degenerate answer.
		out.PredictedValue = s.Metric.Domain().Clamp(sumY / n)
		return out
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	lastOffset := dayOffset(first, s.Samples[s.Len()-1].Date)
	predicted := intercept + slope*(lastOffset+float64(horizonDays))
	out.PredictedValue = s.Metric.Domain().Clamp(predicted)
	return out
}

func dayOffset(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}
