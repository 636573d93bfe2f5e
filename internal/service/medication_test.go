package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/service"
)

func TestAddMedicationAndList(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.AddMedication(db, service.AddMedicationInput{
		Name:       "Sertraline",
		DailyDoses: 1,
		Notes:      "morning",
	})
	if err != nil {
		t.Fatalf("add medication: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	meds, err := service.ListMedications(db, false)
	if err != nil {
		t.Fatalf("list medications: %v", err)
	}
	if len(meds) != 1 {
		t.Fatalf("expected 1 medication, got %d", len(meds))
	}
	if meds[0].Name != "sertraline" || meds[0].DailyDoses != 1 {
		t.Fatalf("unexpected medication row: %+v", meds[0])
	}
	if meds[0].ArchivedAt != nil {
		t.Fatal("new medication should not be archived")
	}
}

func TestAddMedicationValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.AddMedication(db, service.AddMedicationInput{Name: " ", DailyDoses: 1}); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := service.AddMedication(db, service.AddMedicationInput{Name: "x", DailyDoses: 0}); err == nil {
		t.Fatal("expected error for non-positive daily doses")
	}
}

func TestTakeMedication(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.AddMedication(db, service.AddMedicationInput{Name: "vitamin d", DailyDoses: 2})
	if err != nil {
		t.Fatalf("add medication: %v", err)
	}

	at := time.Date(2026, 3, 15, 8, 0, 0, 0, time.Local)
	if _, err := service.TakeMedication(db, id, at); err != nil {
		t.Fatalf("take medication: %v", err)
	}

	if _, err := service.TakeMedication(db, 999, at); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRemoveMedicationArchives(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.AddMedication(db, service.AddMedicationInput{Name: "magnesium", DailyDoses: 1})
	if err != nil {
		t.Fatalf("add medication: %v", err)
	}
	if err := service.RemoveMedication(db, id); err != nil {
		t.Fatalf("remove medication: %v", err)
	}

	active, err := service.ListMedications(db, false)
	if err != nil {
		t.Fatalf("list active medications: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active medications, got %d", len(active))
	}

	all, err := service.ListMedications(db, true)
	if err != nil {
		t.Fatalf("list all medications: %v", err)
	}
	if len(all) != 1 || all[0].ArchivedAt == nil {
		t.Fatalf("expected one archived medication, got %+v", all)
	}

	// Archived medications reject new doses and repeated removal.
	if _, err := service.TakeMedication(db, id, time.Now()); err == nil {
		t.Fatal("expected error taking dose of archived medication")
	}
	if err := service.RemoveMedication(db, id); err == nil {
		t.Fatal("expected error removing already archived medication")
	}
}
