package analytics

import "time"

const DefaultWindowDays = 30

// Source exposes one metric's raw samples for a date range. Load returning an
// error means the backing tracker could not be read; the aggregator treats
// that source as empty rather than failing the report.
type Source struct {
	Metric Metric
	Load   func(from, to time.Time) ([]Sample, error)
}

// NormalizeWindowDays coerces zero or negative window sizes to the default.
func NormalizeWindowDays(days int) int {
	if days <= 0 {
		return DefaultWindowDays
	}
	return days
}

// Aggregate pulls every source for the trailing window [today-days, today]
// and returns one normalized series per metric. A source that yields nothing,
// or fails to load, produces an empty series, never an error.
func Aggregate(sources []Source, today time.Time, windowDays int) map[Metric]Series {
	days := NormalizeWindowDays(windowDays)
	to := DateOf(today)
	from := to.AddDate(0, 0, -days)

	out := make(map[Metric]Series, len(sources))
	for _, src := range sources {
		samples, err := src.Load(from, to)
		if err != nil {
			samples = nil
		}
		out[src.Metric] = NewSeries(src.Metric, samples).Window(from, to)
	}
	return out
}
