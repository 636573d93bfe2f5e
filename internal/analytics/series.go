// Package analytics computes correlations, trends, predictions, and anomaly
// flags over daily wellness metric series. Everything in this package is a
// pure transformation of in-memory samples; persistence and presentation live
// with the callers.
package analytics

import (
	"math"
	"sort"
	"time"
)

type Metric string

const (
	MetricSleepDuration       Metric = "sleepDuration"
	MetricSleepQuality        Metric = "sleepQuality"
	MetricMoodRating          Metric = "moodRating"
	MetricExerciseMinutes     Metric = "exerciseMinutes"
	MetricMedicationAdherence Metric = "medicationAdherence"
)

// TrackedMetrics lists every metric in report order.
var TrackedMetrics = []Metric{
	MetricSleepDuration,
	MetricSleepQuality,
	MetricMoodRating,
	MetricExerciseMinutes,
	MetricMedicationAdherence,
}

// Domain is the valid value range of a metric. Predictions are clamped to it
// and trend thresholds are scaled by its span.
type Domain struct {
	Min float64
	Max float64
}

func (d Domain) Span() float64 {
	return d.Max - d.Min
}

func (d Domain) Clamp(v float64) float64 {
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

func (m Metric) Domain() Domain {
	switch m {
	case MetricSleepDuration:
		return Domain{Min: 0, Max: 24}
	case MetricSleepQuality, MetricMoodRating:
		return Domain{Min: 1, Max: 10}
	case MetricExerciseMinutes:
		return Domain{Min: 0, Max: 1440}
	case MetricMedicationAdherence:
		return Domain{Min: 0, Max: 100}
	default:
		return Domain{Min: 0, Max: 100}
	}
}

func (m Metric) Label() string {
	switch m {
	case MetricSleepDuration:
		return "Sleep Duration"
	case MetricSleepQuality:
		return "Sleep Quality"
	case MetricMoodRating:
		return "Mood Rating"
	case MetricExerciseMinutes:
		return "Exercise Minutes"
	case MetricMedicationAdherence:
		return "Medication Adherence"
	default:
		return string(m)
	}
}

// Sample is one observation of a metric on a calendar day. Date is always
// midnight in the date's location.
type Sample struct {
	Date  time.Time
	Value float64
}

// Series is a date-ordered, gap-tolerant sequence of samples for one metric.
// Dates are unique and strictly ascending.
type Series struct {
	Metric  Metric
	Samples []Sample
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NewSeries normalizes raw samples into a Series: timestamps are truncated to
// calendar days, a later sample for the same day replaces the earlier one,
// and the result is sorted ascending by date.
func NewSeries(metric Metric, samples []Sample) Series {
	byDay := make(map[time.Time]float64, len(samples))
	for _, s := range samples {
		byDay[DateOf(s.Date)] = s.Value
	}
	out := make([]Sample, 0, len(byDay))
	for day, value := range byDay {
		out = append(out, Sample{Date: day, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return Series{Metric: metric, Samples: out}
}

func (s Series) Len() int {
	return len(s.Samples)
}

func (s Series) Values() []float64 {
	out := make([]float64, len(s.Samples))
	for i := range s.Samples {
		out[i] = s.Samples[i].Value
	}
	return out
}

// Window restricts the series to samples whose dates fall in [from, to],
// both truncated to calendar days.
func (s Series) Window(from, to time.Time) Series {
	from = DateOf(from)
	to = DateOf(to)
	out := make([]Sample, 0, len(s.Samples))
	for _, sample := range s.Samples {
		if sample.Date.Before(from) || sample.Date.After(to) {
			continue
		}
		out = append(out, sample)
	}
	return Series{Metric: s.Metric, Samples: out}
}

// AlignedPair holds two series restricted to the intersection of their dates.
// A and B have equal length with date-by-index correspondence.
type AlignedPair struct {
	Dates []time.Time
	A     []float64
	B     []float64
}

func (p AlignedPair) Len() int {
	return len(p.Dates)
}

// Align intersects the dates of two series. Both inputs hold unique ascending
// dates, so a single merge pass suffices.
func Align(a, b Series) AlignedPair {
	pair := AlignedPair{}
	i, j := 0, 0
	for i < len(a.Samples) && j < len(b.Samples) {
		da, db := a.Samples[i].Date, b.Samples[j].Date
		switch {
		case da.Before(db):
			i++
		case db.Before(da):
			j++
		default:
			pair.Dates = append(pair.Dates, da)
			pair.A = append(pair.A, a.Samples[i].Value)
			pair.B = append(pair.B, b.Samples[j].Value)
			i++
			j++
		}
	}
	return pair
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStdDev divides by n, not n-1; the windowed series is treated as
// the full population.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		diff := v - m
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(values)))
}
