package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/model"
)

type ExerciseLogInput struct {
	ExerciseType string
	DurationMin  int
	PerformedAt  time.Time
	Notes        string
}

type ListExerciseFilter struct {
	FromDate     string
	ToDate       string
	ExerciseType string
	Limit        int
}

func LogExercise(db *sql.DB, in ExerciseLogInput) (int64, error) {
	in.ExerciseType = normalizeName(in.ExerciseType)
	if in.ExerciseType == "" {
		return 0, fmt.Errorf("exercise type is required")
	}
	if in.DurationMin <= 0 {
		return 0, fmt.Errorf("exercise duration must be > 0 minutes")
	}
	if in.PerformedAt.IsZero() {
		in.PerformedAt = time.Now()
	}
	res, err := db.Exec(`
INSERT INTO exercise_logs(exercise_type, duration_min, performed_at, notes)
VALUES(?, ?, ?, ?)
`, in.ExerciseType, in.DurationMin, in.PerformedAt.Format(time.RFC3339), strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("log exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve exercise log id: %w", err)
	}
	return id, nil
}

func ListExerciseLogs(db *sql.DB, f ListExerciseFilter) ([]model.ExerciseLog, error) {
	query := `SELECT id, exercise_type, duration_min, performed_at, IFNULL(notes, ''), created_at, updated_at FROM exercise_logs WHERE 1=1`
	args := make([]any, 0)
	if strings.TrimSpace(f.FromDate) != "" {
		from, err := parseDateStart(f.FromDate)
		if err != nil {
			return nil, err
		}
		query += ` AND performed_at >= ?`
		args = append(args, from)
	}
	if strings.TrimSpace(f.ToDate) != "" {
		to, err := parseDateEndExclusive(f.ToDate)
		if err != nil {
			return nil, err
		}
		query += ` AND performed_at < ?`
		args = append(args, to)
	}
	if strings.TrimSpace(f.ExerciseType) != "" {
		query += ` AND exercise_type = ?`
		args = append(args, normalizeName(f.ExerciseType))
	}
	query += ` ORDER BY performed_at DESC`
	if f.Limit <= 0 {
		f.Limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, f.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercise logs: %w", err)
	}
	defer rows.Close()

	items := make([]model.ExerciseLog, 0)
	for rows.Next() {
		var item model.ExerciseLog
		var performedRaw, createdRaw, updatedRaw string
		if err := rows.Scan(&item.ID, &item.ExerciseType, &item.DurationMin, &performedRaw, &item.Notes, &createdRaw, &updatedRaw); err != nil {
			return nil, fmt.Errorf("scan exercise log: %w", err)
		}
		performedAt, err := time.Parse(time.RFC3339, performedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse performed_at: %w", err)
		}
		item.PerformedAt = performedAt
		if t, ok := parseDBTime(createdRaw); ok {
			item.CreatedAt = t
		}
		if t, ok := parseDBTime(updatedRaw); ok {
			item.UpdatedAt = t
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise logs: %w", err)
	}
	return items, nil
}

func DeleteExerciseLog(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("exercise id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM exercise_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete exercise log %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("exercise log %d not found", id)
	}
	return nil
}
