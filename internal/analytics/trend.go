package analytics

type TrendDirection string

const (
	TrendImproving    TrendDirection = "Improving"
	TrendDeclining    TrendDirection = "Declining"
	TrendStable       TrendDirection = "Stable"
	TrendInsufficient TrendDirection = "Insufficient data"
)

// percentScaleDelta is the stable band for percentage-like sequences on a
// 0-100 scale: half-mean deltas within ±3 points read as noise.
const percentScaleDelta = 3.0

// TrendResult classifies the directional movement of one metric over a
// trailing window. Magnitude is the second-half mean minus the first-half
// mean, in the metric's own units.
type TrendResult struct {
	Metric     Metric         `json:"metric"`
	WindowDays int            `json:"window_days"`
	Direction  TrendDirection `json:"direction"`
	Magnitude  float64        `json:"magnitude"`
}

// ClassifyTrend classifies an ordered sequence of percentage-like values
// (quiz scores, adherence rates) by comparing first-half and second-half
// means. Fewer than two values is insufficient data.
func ClassifyTrend(values []float64) TrendDirection {
	direction, _ := classifyTrend(values, percentScaleDelta)
	return direction
}

// TrendForSeries classifies a metric series with the stable band scaled to 5%
// of the metric's domain span.
func TrendForSeries(s Series, windowDays int) TrendResult {
	threshold := 0.05 * s.Metric.Domain().Span()
	direction, magnitude := classifyTrend(s.Values(), threshold)
	return TrendResult{
		Metric:     s.Metric,
		WindowDays: windowDays,
		Direction:  direction,
		Magnitude:  magnitude,
	}
}

// classifyTrend splits the sequence into halves, excluding the middle element
// of an odd-length sequence, and compares the half means against the stable
// threshold.
func classifyTrend(values []float64, threshold float64) (TrendDirection, float64) {
	if len(values) < 2 {
		return TrendInsufficient, 0
	}

	half := len(values) / 2
	first := values[:half]
	second := values[len(values)-half:]

	delta := mean(second) - mean(first)
	switch {
	case delta > threshold:
		return TrendImproving, delta
	case delta < -threshold:
		return TrendDeclining, delta
	default:
		return TrendStable, delta
	}
}
