package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/model"
)

type SleepLogInput struct {
	DurationHours float64
	Quality       *int
	SleptOn       time.Time
	Notes         string
}

type ListSleepFilter struct {
	FromDate string
	ToDate   string
	Limit    int
}

// LogSleep records one night of sleep. A second entry for the same calendar
// date replaces the earlier one: there is exactly one sleep sample per day.
func LogSleep(db *sql.DB, in SleepLogInput) (int64, error) {
	if in.DurationHours < 0 || in.DurationHours > 24 {
		return 0, fmt.Errorf("sleep duration must be between 0 and 24 hours")
	}
	if in.Quality != nil && (*in.Quality < 1 || *in.Quality > 10) {
		return 0, fmt.Errorf("sleep quality must be between 1 and 10")
	}
	if in.SleptOn.IsZero() {
		in.SleptOn = time.Now()
	}
	day := beginningOfDay(in.SleptOn).Format(dayFormat)

	var quality any
	if in.Quality != nil {
		quality = *in.Quality
	}
	res, err := db.Exec(`
INSERT INTO sleep_entries(slept_on, duration_hours, quality, notes)
VALUES(?, ?, ?, ?)
ON CONFLICT(slept_on) DO UPDATE SET
  duration_hours = excluded.duration_hours,
  quality = excluded.quality,
  notes = excluded.notes,
  updated_at = CURRENT_TIMESTAMP
`, day, in.DurationHours, quality, strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("log sleep entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve sleep entry id: %w", err)
	}
	return id, nil
}

func ListSleepEntries(db *sql.DB, f ListSleepFilter) ([]model.SleepEntry, error) {
	query := `SELECT id, slept_on, duration_hours, quality, IFNULL(notes, ''), created_at, updated_at FROM sleep_entries WHERE 1=1`
	args := make([]any, 0)
	if strings.TrimSpace(f.FromDate) != "" {
		if _, err := time.ParseInLocation(dayFormat, strings.TrimSpace(f.FromDate), time.Local); err != nil {
			return nil, fmt.Errorf("invalid from date %q (expected YYYY-MM-DD)", f.FromDate)
		}
		query += ` AND slept_on >= ?`
		args = append(args, strings.TrimSpace(f.FromDate))
	}
	if strings.TrimSpace(f.ToDate) != "" {
		if _, err := time.ParseInLocation(dayFormat, strings.TrimSpace(f.ToDate), time.Local); err != nil {
			return nil, fmt.Errorf("invalid to date %q (expected YYYY-MM-DD)", f.ToDate)
		}
		query += ` AND slept_on <= ?`
		args = append(args, strings.TrimSpace(f.ToDate))
	}
	query += ` ORDER BY slept_on DESC`
	if f.Limit <= 0 {
		f.Limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, f.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sleep entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.SleepEntry, 0)
	for rows.Next() {
		var item model.SleepEntry
		var quality sql.NullInt64
		var createdRaw, updatedRaw string
		if err := rows.Scan(&item.ID, &item.SleptOn, &item.DurationHours, &quality, &item.Notes, &createdRaw, &updatedRaw); err != nil {
			return nil, fmt.Errorf("scan sleep entry: %w", err)
		}
		if quality.Valid {
			v := int(quality.Int64)
			item.Quality = &v
		}
		if t, ok := parseDBTime(createdRaw); ok {
			item.CreatedAt = t
		}
		if t, ok := parseDBTime(updatedRaw); ok {
			item.UpdatedAt = t
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sleep entries: %w", err)
	}
	return items, nil
}

func DeleteSleepEntry(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("sleep entry id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM sleep_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete sleep entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sleep entry %d not found", id)
	}
	return nil
}
