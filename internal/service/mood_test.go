package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/service"
)

func TestLogMoodAndList(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	_, err := service.LogMood(db, service.MoodLogInput{
		Rating:   7,
		LoggedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
		Notes:    "morning check-in",
	})
	if err != nil {
		t.Fatalf("log mood: %v", err)
	}
	if _, err := service.LogMood(db, service.MoodLogInput{
		Rating:   5,
		LoggedAt: time.Date(2026, 3, 10, 21, 0, 0, 0, time.Local),
	}); err != nil {
		t.Fatalf("log mood: %v", err)
	}

	items, err := service.ListMoodEntries(db, service.ListMoodFilter{})
	if err != nil {
		t.Fatalf("list mood entries: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 mood entries, got %d", len(items))
	}
	// Newest first.
	if items[0].Rating != 5 || items[1].Rating != 7 {
		t.Fatalf("unexpected ordering: %d, %d", items[0].Rating, items[1].Rating)
	}
	if items[1].Notes != "morning check-in" {
		t.Fatalf("unexpected notes: %q", items[1].Notes)
	}
}

func TestLogMoodValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.LogMood(db, service.MoodLogInput{Rating: 0}); err == nil {
		t.Fatal("expected error for rating below 1")
	}
	if _, err := service.LogMood(db, service.MoodLogInput{Rating: 11}); err == nil {
		t.Fatal("expected error for rating above 10")
	}
}

func TestListMoodEntriesDateFilter(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	for offset := 0; offset < 4; offset++ {
		at := time.Date(2026, 4, 1+offset, 12, 0, 0, 0, time.Local)
		if _, err := service.LogMood(db, service.MoodLogInput{Rating: 6, LoggedAt: at}); err != nil {
			t.Fatalf("log mood: %v", err)
		}
	}

	items, err := service.ListMoodEntries(db, service.ListMoodFilter{
		FromDate: "2026-04-02",
		ToDate:   "2026-04-03",
	})
	if err != nil {
		t.Fatalf("list mood entries: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 entries in range, got %d", len(items))
	}
}

func TestDeleteMoodEntry(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.LogMood(db, service.MoodLogInput{Rating: 8})
	if err != nil {
		t.Fatalf("log mood: %v", err)
	}
	if err := service.DeleteMoodEntry(db, id); err != nil {
		t.Fatalf("delete mood entry: %v", err)
	}
	if err := service.DeleteMoodEntry(db, id); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
