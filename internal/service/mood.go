package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/model"
)

type MoodLogInput struct {
	Rating   int
	LoggedAt time.Time
	Notes    string
}

type ListMoodFilter struct {
	FromDate string
	ToDate   string
	Limit    int
}

// LogMood records a mood rating. Multiple ratings per day are kept; the
// analytics source averages them into one daily sample.
func LogMood(db *sql.DB, in MoodLogInput) (int64, error) {
	if in.Rating < 1 || in.Rating > 10 {
		return 0, fmt.Errorf("mood rating must be between 1 and 10")
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}
	res, err := db.Exec(`
INSERT INTO mood_entries(rating, logged_at, notes)
VALUES(?, ?, ?)
`, in.Rating, in.LoggedAt.Format(time.RFC3339), strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("log mood entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve mood entry id: %w", err)
	}
	return id, nil
}

func ListMoodEntries(db *sql.DB, f ListMoodFilter) ([]model.MoodEntry, error) {
	query := `SELECT id, rating, logged_at, IFNULL(notes, ''), created_at FROM mood_entries WHERE 1=1`
	args := make([]any, 0)
	if strings.TrimSpace(f.FromDate) != "" {
		from, err := parseDateStart(f.FromDate)
		if err != nil {
			return nil, err
		}
		query += ` AND logged_at >= ?`
		args = append(args, from)
	}
	if strings.TrimSpace(f.ToDate) != "" {
		to, err := parseDateEndExclusive(f.ToDate)
		if err != nil {
			return nil, err
		}
		query += ` AND logged_at < ?`
		args = append(args, to)
	}
	query += ` ORDER BY logged_at DESC`
	if f.Limit <= 0 {
		f.Limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, f.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.MoodEntry, 0)
	for rows.Next() {
		var item model.MoodEntry
		var loggedRaw, createdRaw string
		if err := rows.Scan(&item.ID, &item.Rating, &loggedRaw, &item.Notes, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan mood entry: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at: %w", err)
		}
		item.LoggedAt = loggedAt
		if t, ok := parseDBTime(createdRaw); ok {
			item.CreatedAt = t
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mood entries: %w", err)
	}
	return items, nil
}

func DeleteMoodEntry(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("mood entry id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM mood_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete mood entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("mood entry %d not found", id)
	}
	return nil
}
