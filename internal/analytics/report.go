package analytics

import (
	"fmt"
	"strings"
)

// CorrelationPair names one fixed metric pairing exposed by the CLI.
type CorrelationPair struct {
	A     Metric
	B     Metric
	Label string
}

var (
	PairSleepExercise = CorrelationPair{MetricSleepQuality, MetricExerciseMinutes, "Sleep Quality & Exercise"}
	PairMoodSleep     = CorrelationPair{MetricMoodRating, MetricSleepQuality, "Mood & Sleep Quality"}
	PairMoodExercise  = CorrelationPair{MetricMoodRating, MetricExerciseMinutes, "Mood & Exercise"}
)

// CorrelationPairs lists the pairings rendered by the correlations section,
// in output order.
var CorrelationPairs = []CorrelationPair{PairSleepExercise, PairMoodSleep, PairMoodExercise}

// Composer turns already-aggregated series into the textual report sections.
// It holds no state beyond the snapshot it was built with; every method is a
// pure formatting pass over fresh computations.
type Composer struct {
	series      map[Metric]Series
	windowDays  int
	horizonDays int
	zThreshold  float64
}

func NewComposer(series map[Metric]Series, windowDays, horizonDays int, zThreshold float64) *Composer {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if zThreshold <= 0 {
		zThreshold = DefaultZThreshold
	}
	return &Composer{
		series:      series,
		windowDays:  NormalizeWindowDays(windowDays),
		horizonDays: horizonDays,
		zThreshold:  zThreshold,
	}
}

func (c *Composer) seriesFor(m Metric) Series {
	if s, ok := c.series[m]; ok {
		return s
	}
	return Series{Metric: m}
}

// ReportData is the machine-readable form of the comprehensive report.
type ReportData struct {
	WindowDays   int                 `json:"window_days"`
	HorizonDays  int                 `json:"horizon_days"`
	Correlations []CorrelationResult `json:"correlations"`
	Trends       []TrendResult       `json:"trends"`
	Predictions  []Prediction        `json:"predictions"`
	Anomalies    []Anomaly           `json:"anomalies"`
}

func (c *Composer) Data() ReportData {
	data := ReportData{
		WindowDays:  c.windowDays,
		HorizonDays: c.horizonDays,
	}
	for _, pair := range CorrelationPairs {
		data.Correlations = append(data.Correlations, Correlate(c.seriesFor(pair.A), c.seriesFor(pair.B)))
	}
	for _, m := range TrackedMetrics {
		s := c.seriesFor(m)
		data.Trends = append(data.Trends, TrendForSeries(s, c.windowDays))
		data.Predictions = append(data.Predictions, Predict(s, c.horizonDays))
		data.Anomalies = append(data.Anomalies, DetectAnomalies(s, c.zThreshold)...)
	}
	return data
}

// Correlations renders the fixed metric pairs under the Correlation Analysis
// header. Pairs without enough shared days degrade to a notice line.
func (c *Composer) Correlations() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Correlation Analysis")
	fmt.Fprintf(&b, "Window: last %d days\n\n", c.windowDays)
	c.writeCorrelationLines(&b)
	return b.String()
}

func (c *Composer) writeCorrelationLines(b *strings.Builder) {
	for _, pair := range CorrelationPairs {
		result := Correlate(c.seriesFor(pair.A), c.seriesFor(pair.B))
		fmt.Fprintf(b, "%s: %s\n", pair.Label, formatCorrelation(result))
	}
}

// PairReport renders a single pair shortcut (sleep-exercise, mood-sleep,
// mood-exercise) under the pair's own header.
func (c *Composer) PairReport(pair CorrelationPair) string {
	var b strings.Builder
	fmt.Fprintln(&b, pair.Label)
	fmt.Fprintf(&b, "Window: last %d days\n\n", c.windowDays)
	result := Correlate(c.seriesFor(pair.A), c.seriesFor(pair.B))
	fmt.Fprintln(&b, formatCorrelation(result))
	return b.String()
}

func (c *Composer) Trends() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Wellness Trends")
	fmt.Fprintf(&b, "Window: last %d days\n\n", c.windowDays)
	c.writeTrendLines(&b)
	return b.String()
}

func (c *Composer) writeTrendLines(b *strings.Builder) {
	for _, m := range TrackedMetrics {
		result := TrendForSeries(c.seriesFor(m), c.windowDays)
		if result.Direction == TrendInsufficient {
			fmt.Fprintf(b, "%s: %s\n", m.Label(), result.Direction)
			continue
		}
		fmt.Fprintf(b, "%s: %s (%+.2f)\n", m.Label(), result.Direction, result.Magnitude)
	}
}

func (c *Composer) Predictions() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Wellness Predictions")
	fmt.Fprintf(&b, "Window: last %d days, horizon: %d days\n\n", c.windowDays, c.horizonDays)
	c.writePredictionLines(&b)
	return b.String()
}

func (c *Composer) writePredictionLines(b *strings.Builder) {
	for _, m := range TrackedMetrics {
		p := Predict(c.seriesFor(m), c.horizonDays)
		if p.Insufficient {
			fmt.Fprintf(b, "%s: insufficient data (%d samples, need %d)\n", m.Label(), p.SampleSize, minPredictionSamples)
			continue
		}
		fmt.Fprintf(b, "%s: %.1f expected in %d days (based on %d samples)\n", m.Label(), p.PredictedValue, p.HorizonDays, p.SampleSize)
	}
}

func (c *Composer) Anomalies() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Anomaly Detection")
	fmt.Fprintf(&b, "Window: last %d days, threshold: %.1f std dev\n\n", c.windowDays, c.zThreshold)
	for _, m := range TrackedMetrics {
		s := c.seriesFor(m)
		if s.Len() < minAnomalySamples {
			fmt.Fprintf(&b, "%s: insufficient data (%d samples, need %d)\n", m.Label(), s.Len(), minAnomalySamples)
			continue
		}
		anomalies := DetectAnomalies(s, c.zThreshold)
		if len(anomalies) == 0 {
			fmt.Fprintf(&b, "%s: no anomalies\n", m.Label())
			continue
		}
		fmt.Fprintf(&b, "%s:\n", m.Label())
		for _, a := range anomalies {
			fmt.Fprintf(&b, "  %s value=%.1f (z=%+.2f, %s)\n", a.Date.Format("2006-01-02"), a.Value, a.Deviation, a.Severity)
		}
	}
	return b.String()
}

// Report combines the correlation, trend, and prediction sections into the
// comprehensive report. Each subsection degrades independently.
func (c *Composer) Report() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Comprehensive Analytics Report")
	fmt.Fprintf(&b, "Window: last %d days\n", c.windowDays)

	fmt.Fprintln(&b, "\nCorrelations:")
	c.writeCorrelationLines(&b)

	fmt.Fprintln(&b, "\nTrends:")
	c.writeTrendLines(&b)

	fmt.Fprintln(&b, "\nPredictions:")
	c.writePredictionLines(&b)

	return b.String()
}

// Dashboard is the aggregate summary view: per-metric sample counts, latest
// and average values, and trend direction.
func (c *Composer) Dashboard() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Wellness Dashboard")
	fmt.Fprintf(&b, "Window: last %d days\n\n", c.windowDays)
	fmt.Fprintln(&b, "METRIC\tSAMPLES\tLATEST\tAVG\tTREND")
	for _, m := range TrackedMetrics {
		s := c.seriesFor(m)
		if s.Len() == 0 {
			fmt.Fprintf(&b, "%s\t0\t-\t-\tInsufficient data\n", m.Label())
			continue
		}
		latest := s.Samples[s.Len()-1].Value
		trend := TrendForSeries(s, c.windowDays)
		fmt.Fprintf(&b, "%s\t%d\t%.1f\t%.1f\t%s\n", m.Label(), s.Len(), latest, mean(s.Values()), trend.Direction)
	}
	return b.String()
}

func formatCorrelation(r CorrelationResult) string {
	if r.Insufficient {
		return fmt.Sprintf("insufficient data (%d shared days, need %d)", r.SampleSize, minCorrelationSamples)
	}
	if r.NoVariation {
		return "undefined (no variation)"
	}
	return fmt.Sprintf("r=%+.2f (n=%d) %s %s", r.Coefficient, r.SampleSize, r.Strength, r.Direction)
}
