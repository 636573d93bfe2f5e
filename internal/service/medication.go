package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/model"
)

type AddMedicationInput struct {
	Name       string
	DailyDoses int
	Notes      string
}

func AddMedication(db *sql.DB, in AddMedicationInput) (int64, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return 0, fmt.Errorf("medication name is required")
	}
	if in.DailyDoses <= 0 {
		return 0, fmt.Errorf("daily doses must be > 0")
	}
	res, err := db.Exec(`
INSERT INTO medications(name, daily_doses, notes)
VALUES(?, ?, ?)
`, name, in.DailyDoses, strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("add medication %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve medication id: %w", err)
	}
	return id, nil
}

// TakeMedication records one dose of a medication for the given day.
func TakeMedication(db *sql.DB, medicationID int64, takenAt time.Time) (int64, error) {
	if medicationID <= 0 {
		return 0, fmt.Errorf("medication id must be > 0")
	}
	var archived sql.NullString
	err := db.QueryRow(`SELECT archived_at FROM medications WHERE id = ?`, medicationID).Scan(&archived)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("medication %d not found", medicationID)
	}
	if err != nil {
		return 0, fmt.Errorf("lookup medication %d: %w", medicationID, err)
	}
	if archived.Valid {
		return 0, fmt.Errorf("medication %d is archived", medicationID)
	}
	if takenAt.IsZero() {
		takenAt = time.Now()
	}
	res, err := db.Exec(`
INSERT INTO medication_doses(medication_id, taken_on, taken_at)
VALUES(?, ?, ?)
`, medicationID, beginningOfDay(takenAt).Format(dayFormat), takenAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("record medication dose: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve dose id: %w", err)
	}
	return id, nil
}

func ListMedications(db *sql.DB, includeArchived bool) ([]model.Medication, error) {
	query := `SELECT id, name, daily_doses, IFNULL(notes, ''), created_at, archived_at FROM medications`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	items := make([]model.Medication, 0)
	for rows.Next() {
		var item model.Medication
		var createdRaw string
		var archivedRaw sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &item.DailyDoses, &item.Notes, &createdRaw, &archivedRaw); err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		if t, ok := parseDBTime(createdRaw); ok {
			item.CreatedAt = t
		}
		if archivedRaw.Valid {
			if t, ok := parseDBTime(archivedRaw.String); ok {
				item.ArchivedAt = &t
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate medications: %w", err)
	}
	return items, nil
}

// RemoveMedication archives a medication so its history keeps contributing to
// past adherence while future days stop expecting doses.
func RemoveMedication(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("medication id must be > 0")
	}
	res, err := db.Exec(`UPDATE medications SET archived_at = CURRENT_TIMESTAMP WHERE id = ? AND archived_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("archive medication %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("medication %d not found or already archived", id)
	}
	return nil
}
