package analytics_test

import (
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/analytics"
)

var testBase = time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)

func day(offset int) time.Time {
	return testBase.AddDate(0, 0, offset)
}

// seriesOf builds a series with one sample per consecutive day.
func seriesOf(metric analytics.Metric, values ...float64) analytics.Series {
	samples := make([]analytics.Sample, 0, len(values))
	for i, v := range values {
		samples = append(samples, analytics.Sample{Date: day(i), Value: v})
	}
	return analytics.NewSeries(metric, samples)
}
