package service_test

import (
	"testing"
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/service"
)

func TestLogExerciseAndList(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.LogExercise(db, service.ExerciseLogInput{
		ExerciseType: "Running",
		DurationMin:  40,
		PerformedAt:  time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local),
		Notes:        "easy pace",
	})
	if err != nil {
		t.Fatalf("log exercise: %v", err)
	}
	if _, err := service.LogExercise(db, service.ExerciseLogInput{
		ExerciseType: "yoga",
		DurationMin:  25,
		PerformedAt:  time.Date(2026, 3, 11, 7, 0, 0, 0, time.Local),
	}); err != nil {
		t.Fatalf("log exercise: %v", err)
	}

	items, err := service.ListExerciseLogs(db, service.ListExerciseFilter{})
	if err != nil {
		t.Fatalf("list exercise logs: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 exercise logs, got %d", len(items))
	}
	// Type is normalized to lowercase on write.
	if items[1].ExerciseType != "running" || items[1].DurationMin != 40 {
		t.Fatalf("unexpected exercise row: %+v", items[1])
	}

	byType, err := service.ListExerciseLogs(db, service.ListExerciseFilter{ExerciseType: "RUNNING"})
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if len(byType) != 1 || byType[0].ID != id {
		t.Fatalf("expected only the running log, got %+v", byType)
	}
}

func TestLogExerciseValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.LogExercise(db, service.ExerciseLogInput{ExerciseType: "  ", DurationMin: 30}); err == nil {
		t.Fatal("expected error for missing exercise type")
	}
	if _, err := service.LogExercise(db, service.ExerciseLogInput{ExerciseType: "walk", DurationMin: 0}); err == nil {
		t.Fatal("expected error for non-positive duration")
	}
}

func TestListExerciseLogsDateFilter(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	for offset := 0; offset < 4; offset++ {
		at := time.Date(2026, 4, 1+offset, 17, 0, 0, 0, time.Local)
		if _, err := service.LogExercise(db, service.ExerciseLogInput{
			ExerciseType: "cycling",
			DurationMin:  30,
			PerformedAt:  at,
		}); err != nil {
			t.Fatalf("log exercise: %v", err)
		}
	}

	items, err := service.ListExerciseLogs(db, service.ListExerciseFilter{
		FromDate: "2026-04-03",
		ToDate:   "2026-04-04",
	})
	if err != nil {
		t.Fatalf("list exercise logs: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 logs in range, got %d", len(items))
	}
}

func TestDeleteExerciseLog(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.LogExercise(db, service.ExerciseLogInput{ExerciseType: "swim", DurationMin: 20})
	if err != nil {
		t.Fatalf("log exercise: %v", err)
	}
	if err := service.DeleteExerciseLog(db, id); err != nil {
		t.Fatalf("delete exercise log: %v", err)
	}
	if err := service.DeleteExerciseLog(db, id); err == nil {
		t.Fatal("expected error deleting missing log")
	}
}
