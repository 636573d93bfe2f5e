package analytics_test

import (
	"strings"
	"testing"

	"github.com/Isaloum/StepSyncAI-sub005/internal/analytics"
)

func emptyComposer() *analytics.Composer {
	return analytics.NewComposer(map[analytics.Metric]analytics.Series{}, 30, 7, 2.0)
}

func richComposer() *analytics.Composer {
	series := map[analytics.Metric]analytics.Series{
		analytics.MetricSleepDuration:   seriesOf(analytics.MetricSleepDuration, 7, 7.5, 8, 6, 8.5),
		analytics.MetricSleepQuality:    seriesOf(analytics.MetricSleepQuality, 6, 7, 8, 5, 9),
		analytics.MetricMoodRating:      seriesOf(analytics.MetricMoodRating, 5, 6, 7, 5, 8),
		analytics.MetricExerciseMinutes: seriesOf(analytics.MetricExerciseMinutes, 30, 35, 40, 20, 45),
	}
	return analytics.NewComposer(series, 30, 7, 2.0)
}

func TestCorrelationsSection(t *testing.T) {
	t.Parallel()

	out := richComposer().Correlations()
	if !strings.HasPrefix(out, "Correlation Analysis\n") {
		t.Fatalf("expected Correlation Analysis header, got:\n%s", out)
	}
	for _, label := range []string{"Sleep Quality & Exercise", "Mood & Sleep Quality", "Mood & Exercise"} {
		if !strings.Contains(out, label+":") {
			t.Fatalf("expected %q line, got:\n%s", label, out)
		}
	}
	if !strings.Contains(out, "positive relationship") {
		t.Fatalf("expected a positive relationship in:\n%s", out)
	}
}

func TestPairReports(t *testing.T) {
	t.Parallel()

	c := richComposer()
	cases := []struct {
		pair   analytics.CorrelationPair
		header string
	}{
		{analytics.PairSleepExercise, "Sleep Quality & Exercise"},
		{analytics.PairMoodSleep, "Mood & Sleep Quality"},
		{analytics.PairMoodExercise, "Mood & Exercise"},
	}
	for _, tc := range cases {
		out := c.PairReport(tc.pair)
		if !strings.HasPrefix(out, tc.header+"\n") {
			t.Fatalf("expected %q header, got:\n%s", tc.header, out)
		}
		if !strings.Contains(out, "r=") {
			t.Fatalf("expected coefficient line in:\n%s", out)
		}
	}
}

func TestTrendsSection(t *testing.T) {
	t.Parallel()

	out := richComposer().Trends()
	if !strings.HasPrefix(out, "Wellness Trends\n") {
		t.Fatalf("expected Wellness Trends header, got:\n%s", out)
	}
	if !strings.Contains(out, "Medication Adherence: Insufficient data") {
		t.Fatalf("expected insufficient notice for untracked metric, got:\n%s", out)
	}
}

func TestPredictionsSection(t *testing.T) {
	t.Parallel()

	out := richComposer().Predictions()
	if !strings.HasPrefix(out, "Wellness Predictions\n") {
		t.Fatalf("expected Wellness Predictions header, got:\n%s", out)
	}
	if !strings.Contains(out, "horizon: 7 days") {
		t.Fatalf("expected horizon note, got:\n%s", out)
	}
	if !strings.Contains(out, "based on 5 samples") {
		t.Fatalf("expected basis sample size, got:\n%s", out)
	}
}

func TestAnomaliesSection(t *testing.T) {
	t.Parallel()

	series := map[analytics.Metric]analytics.Series{
		analytics.MetricExerciseMinutes: seriesOf(analytics.MetricExerciseMinutes, 10, 10, 10, 10, 50),
	}
	c := analytics.NewComposer(series, 30, 7, 2.0)
	out := c.Anomalies()
	if !strings.HasPrefix(out, "Anomaly Detection\n") {
		t.Fatalf("expected Anomaly Detection header, got:\n%s", out)
	}
	if !strings.Contains(out, "High") {
		t.Fatalf("expected High severity anomaly, got:\n%s", out)
	}
	if !strings.Contains(out, "Sleep Duration: insufficient data") {
		t.Fatalf("expected insufficient notice for missing metric, got:\n%s", out)
	}
}

func TestReportCombinesSections(t *testing.T) {
	t.Parallel()

	out := richComposer().Report()
	if !strings.HasPrefix(out, "Comprehensive Analytics Report\n") {
		t.Fatalf("expected Comprehensive Analytics Report header, got:\n%s", out)
	}
	for _, sub := range []string{"Correlations:", "Trends:", "Predictions:"} {
		if !strings.Contains(out, sub) {
			t.Fatalf("expected %q subsection, got:\n%s", sub, out)
		}
	}
}

func TestReportDegradesWithNoData(t *testing.T) {
	t.Parallel()

	c := emptyComposer()

	out := c.Report()
	if !strings.Contains(out, "Comprehensive Analytics Report") {
		t.Fatalf("expected report header with no data, got:\n%s", out)
	}
	if !strings.Contains(out, "insufficient data") {
		t.Fatalf("expected insufficient data notices, got:\n%s", out)
	}
	if !strings.Contains(out, "Insufficient data") {
		t.Fatalf("expected trend insufficiency, got:\n%s", out)
	}

	// Every standalone section still renders its header.
	sections := map[string]string{
		"Correlation Analysis":     c.Correlations(),
		"Wellness Trends":          c.Trends(),
		"Wellness Predictions":     c.Predictions(),
		"Anomaly Detection":        c.Anomalies(),
		"Wellness Dashboard":       c.Dashboard(),
		"Sleep Quality & Exercise": c.PairReport(analytics.PairSleepExercise),
	}
	for header, body := range sections {
		if !strings.Contains(body, header) {
			t.Fatalf("expected %q header with no data, got:\n%s", header, body)
		}
	}
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	out := richComposer().Dashboard()
	if !strings.HasPrefix(out, "Wellness Dashboard\n") {
		t.Fatalf("expected Wellness Dashboard header, got:\n%s", out)
	}
	if !strings.Contains(out, "METRIC\tSAMPLES\tLATEST\tAVG\tTREND") {
		t.Fatalf("expected table header, got:\n%s", out)
	}
	if !strings.Contains(out, "Medication Adherence\t0\t-\t-\tInsufficient data") {
		t.Fatalf("expected empty-metric row, got:\n%s", out)
	}
}

func TestComposerData(t *testing.T) {
	t.Parallel()

	data := richComposer().Data()
	if data.WindowDays != 30 || data.HorizonDays != 7 {
		t.Fatalf("unexpected window/horizon: %d/%d", data.WindowDays, data.HorizonDays)
	}
	if len(data.Correlations) != 3 {
		t.Fatalf("expected 3 correlation pairs, got %d", len(data.Correlations))
	}
	if len(data.Trends) != len(analytics.TrackedMetrics) {
		t.Fatalf("expected one trend per tracked metric, got %d", len(data.Trends))
	}
	if len(data.Predictions) != len(analytics.TrackedMetrics) {
		t.Fatalf("expected one prediction per tracked metric, got %d", len(data.Predictions))
	}
}
