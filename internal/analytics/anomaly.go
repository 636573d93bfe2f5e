package analytics

import (
	"math"
	"time"
)

const (
	DefaultZThreshold = 2.0
	// minAnomalySamples guards against flagging outliers in series too short
	// to have a meaningful spread.
	minAnomalySamples = 3
	// highSeverityZ is tuned so a lone spike against an otherwise flat week
	// (z exactly 2 under population stddev) reads as High. Moderate covers
	// samples flagged by a configured threshold below this.
	highSeverityZ = 2.0
)

const (
	SeverityHigh     = "High"
	SeverityModerate = "Moderate"
)

// Anomaly flags one sample that deviates from the windowed mean by at least
// the configured number of standard deviations. Deviation keeps its sign.
type Anomaly struct {
	Metric    Metric    `json:"metric"`
	Date      time.Time `json:"date"`
	Value     float64   `json:"value"`
	Deviation float64   `json:"deviation"`
	Severity  string    `json:"severity"`
}

// DetectAnomalies returns the samples whose z-score magnitude meets the
// threshold, in chronological order. A constant series, or one with fewer
// than three samples, yields no anomalies rather than false positives.
// A threshold of zero or less falls back to the default.
func DetectAnomalies(s Series, zThreshold float64) []Anomaly {
	if zThreshold <= 0 {
		zThreshold = DefaultZThreshold
	}
	if s.Len() < minAnomalySamples {
		return nil
	}

	values := s.Values()
	m := mean(values)
	stddev := populationStdDev(values)
	if stddev == 0 {
		return nil
	}

	out := make([]Anomaly, 0)
	for _, sample := range s.Samples {
		z := (sample.Value - m) / stddev
		if math.Abs(z) < zThreshold {
			continue
		}
		severity := SeverityModerate
		if math.Abs(z) >= highSeverityZ {
			severity = SeverityHigh
		}
		out = append(out, Anomaly{
			Metric:    s.Metric,
			Date:      sample.Date,
			Value:     sample.Value,
			Deviation: z,
			Severity:  severity,
		})
	}
	return out
}
