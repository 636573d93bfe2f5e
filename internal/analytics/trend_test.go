package analytics_test

import (
	"testing"

	"github.com/Isaloum/StepSyncAI-sub005/internal/analytics"
)

func TestClassifyTrend(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		values []float64
		want   analytics.TrendDirection
	}{
		{"improving", []float64{60, 70, 75, 80, 85}, analytics.TrendImproving},
		{"declining", []float64{90, 85, 80, 75, 70}, analytics.TrendDeclining},
		{"stable", []float64{80, 81, 80, 79, 80}, analytics.TrendStable},
		{"single value", []float64{75}, analytics.TrendInsufficient},
		{"empty", nil, analytics.TrendInsufficient},
		{"two values improving", []float64{50, 60}, analytics.TrendImproving},
	}
	for _, tc := range cases {
		if got := analytics.ClassifyTrend(tc.values); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestTrendForSeriesScalesThresholdToDomain(t *testing.T) {
	t.Parallel()

	// Mood spans 1-10, so the stable band is ±0.45; a full-point shift in
	// half means is a real trend even though it would read stable on a
	// 0-100 scale.
	mood := seriesOf(analytics.MetricMoodRating, 5, 5, 6, 6)
	result := analytics.TrendForSeries(mood, 30)
	if result.Direction != analytics.TrendImproving {
		t.Fatalf("expected Improving for mood shift, got %q", result.Direction)
	}
	if result.Magnitude != 1 {
		t.Fatalf("expected magnitude 1, got %v", result.Magnitude)
	}

	flatish := seriesOf(analytics.MetricMoodRating, 6, 6.2, 6.1, 6.3)
	result = analytics.TrendForSeries(flatish, 30)
	if result.Direction != analytics.TrendStable {
		t.Fatalf("expected Stable within mood band, got %q", result.Direction)
	}

	empty := analytics.Series{Metric: analytics.MetricSleepDuration}
	result = analytics.TrendForSeries(empty, 30)
	if result.Direction != analytics.TrendInsufficient {
		t.Fatalf("expected Insufficient data for empty series, got %q", result.Direction)
	}
}

func TestTrendOddLengthExcludesMiddle(t *testing.T) {
	t.Parallel()

	// Halves are [10, 10] and [10, 10]; the extreme middle element must not
	// drag either mean.
	if got := analytics.ClassifyTrend([]float64{10, 10, 100, 10, 10}); got != analytics.TrendStable {
		t.Fatalf("expected Stable when middle element excluded, got %q", got)
	}
}
