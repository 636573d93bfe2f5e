package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/analytics"
	"github.com/Isaloum/StepSyncAI-sub005/internal/logging"
)

// AnalyticsSources wires the tracker tables into the analytics engine, one
// source per metric. A source that fails to load logs a warning and yields an
// empty series so a broken tracker never takes the whole report down.
func AnalyticsSources(db *sql.DB) []analytics.Source {
	return []analytics.Source{
		{Metric: analytics.MetricSleepDuration, Load: logged(analytics.MetricSleepDuration, loadSleepDurations(db))},
		{Metric: analytics.MetricSleepQuality, Load: logged(analytics.MetricSleepQuality, loadSleepQualities(db))},
		{Metric: analytics.MetricMoodRating, Load: logged(analytics.MetricMoodRating, loadMoodRatings(db))},
		{Metric: analytics.MetricExerciseMinutes, Load: logged(analytics.MetricExerciseMinutes, loadExerciseMinutes(db))},
		{Metric: analytics.MetricMedicationAdherence, Load: logged(analytics.MetricMedicationAdherence, loadMedicationAdherence(db))},
	}
}

type loadFunc func(from, to time.Time) ([]analytics.Sample, error)

func logged(metric analytics.Metric, load loadFunc) loadFunc {
	return func(from, to time.Time) ([]analytics.Sample, error) {
		samples, err := load(from, to)
		if err != nil {
			logger := logging.Global()
			logger.Warn().
				Err(err).
				Str("metric", string(metric)).
				Msg("metric source failed to load, treating as empty")
			return nil, nil
		}
		return samples, nil
	}
}

func loadSleepDurations(db *sql.DB) loadFunc {
	return func(from, to time.Time) ([]analytics.Sample, error) {
		return querySamples(db, `
SELECT slept_on, duration_hours
FROM sleep_entries
WHERE slept_on BETWEEN ? AND ?
ORDER BY slept_on ASC
`, from.Format(dayFormat), to.Format(dayFormat))
	}
}

func loadSleepQualities(db *sql.DB) loadFunc {
	return func(from, to time.Time) ([]analytics.Sample, error) {
		return querySamples(db, `
SELECT slept_on, CAST(quality AS REAL)
FROM sleep_entries
WHERE quality IS NOT NULL AND slept_on BETWEEN ? AND ?
ORDER BY slept_on ASC
`, from.Format(dayFormat), to.Format(dayFormat))
	}
}

// loadMoodRatings averages multiple mood check-ins on the same day into one
// daily sample.
func loadMoodRatings(db *sql.DB) loadFunc {
	return func(from, to time.Time) ([]analytics.Sample, error) {
		return querySamples(db, `
SELECT substr(logged_at, 1, 10) AS day, AVG(rating)
FROM mood_entries
WHERE substr(logged_at, 1, 10) BETWEEN ? AND ?
GROUP BY day
ORDER BY day ASC
`, from.Format(dayFormat), to.Format(dayFormat))
	}
}

func loadExerciseMinutes(db *sql.DB) loadFunc {
	return func(from, to time.Time) ([]analytics.Sample, error) {
		return querySamples(db, `
SELECT substr(performed_at, 1, 10) AS day, CAST(SUM(duration_min) AS REAL)
FROM exercise_logs
WHERE substr(performed_at, 1, 10) BETWEEN ? AND ?
GROUP BY day
ORDER BY day ASC
`, from.Format(dayFormat), to.Format(dayFormat))
	}
}

// loadMedicationAdherence computes a daily adherence percentage: doses taken
// over doses scheduled across every medication active that day, capped at 100.
// Days before any medication existed produce no sample at all, so an empty
// regimen never reads as zero adherence.
func loadMedicationAdherence(db *sql.DB) loadFunc {
	return func(from, to time.Time) ([]analytics.Sample, error) {
		meds, err := ListMedications(db, true)
		if err != nil {
			return nil, err
		}
		if len(meds) == 0 {
			return nil, nil
		}

		rows, err := db.Query(`
SELECT taken_on, medication_id, COUNT(*)
FROM medication_doses
WHERE taken_on BETWEEN ? AND ?
GROUP BY taken_on, medication_id
`, from.Format(dayFormat), to.Format(dayFormat))
		if err != nil {
			return nil, fmt.Errorf("load medication doses: %w", err)
		}
		defer rows.Close()

		taken := make(map[string]map[int64]int)
		for rows.Next() {
			var day string
			var medID int64
			var count int
			if err := rows.Scan(&day, &medID, &count); err != nil {
				return nil, fmt.Errorf("scan dose count: %w", err)
			}
			if taken[day] == nil {
				taken[day] = make(map[int64]int)
			}
			taken[day][medID] = count
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate dose counts: %w", err)
		}

		var samples []analytics.Sample
		for day := beginningOfDay(from); !day.After(to); day = day.AddDate(0, 0, 1) {
			scheduled := 0
			got := 0
			for _, med := range meds {
				if !activeOn(med.CreatedAt, med.ArchivedAt, day) {
					continue
				}
				scheduled += med.DailyDoses
				count := taken[day.Format(dayFormat)][med.ID]
				if count > med.DailyDoses {
					count = med.DailyDoses
				}
				got += count
			}
			if scheduled == 0 {
				continue
			}
			samples = append(samples, analytics.Sample{
				Date:  day,
				Value: float64(got) / float64(scheduled) * 100,
			})
		}
		return samples, nil
	}
}

// activeOn reports whether a medication was part of the regimen on the given
// day. A medication with an unknown creation time counts as always active.
func activeOn(created time.Time, archived *time.Time, day time.Time) bool {
	if !created.IsZero() && beginningOfDay(created).After(day) {
		return false
	}
	if archived != nil && !beginningOfDay(*archived).After(day) {
		return false
	}
	return true
}

func querySamples(db *sql.DB, query string, args ...any) ([]analytics.Sample, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("load samples: %w", err)
	}
	defer rows.Close()

	var samples []analytics.Sample
	for rows.Next() {
		var day string
		var value float64
		if err := rows.Scan(&day, &value); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		date, err := time.ParseInLocation(dayFormat, day, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse sample date %q: %w", day, err)
		}
		samples = append(samples, analytics.Sample{Date: date, Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return samples, nil
}
