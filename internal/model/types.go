package model

import "time"

type SleepEntry struct {
	ID            int64
	SleptOn       string
	DurationHours float64
	Quality       *int
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MoodEntry struct {
	ID        int64
	Rating    int
	LoggedAt  time.Time
	Notes     string
	CreatedAt time.Time
}

type ExerciseLog struct {
	ID           int64
	ExerciseType string
	DurationMin  int
	PerformedAt  time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Medication struct {
	ID         int64
	Name       string
	DailyDoses int
	Notes      string
	CreatedAt  time.Time
	ArchivedAt *time.Time
}

type MedicationDose struct {
	ID           int64
	MedicationID int64
	TakenOn      string
	TakenAt      time.Time
}
