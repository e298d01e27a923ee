package database

import (
	"testing"
	"time"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

func newTestActivity(name string, status models.ActivityStatus) *models.Activity {
	return &models.Activity{
		Name:        name,
		Description: "Actividad de prueba",
		StartDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Status:      status,
	}
}

func TestActivityCRUD(t *testing.T) {
	activity := newTestActivity("Redactar protocolo", "")
	if err := CreateActivity(testDB, activity); err != nil {
		t.Fatal(err)
	}
	if activity.Status != models.ActivityPending {
		t.Fatalf("expected default status pending, got %q", activity.Status)
	}

	got, err := GetActivityByID(testDB, activity.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Name != "Redactar protocolo" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	activity.Status = models.ActivityInProgress
	ok, err := UpdateActivity(testDB, activity)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected update to match")
	}

	inProgress, err := GetActivitiesByStatus(testDB, models.ActivityInProgress)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, a := range inProgress {
		if a.Status != models.ActivityInProgress {
			t.Fatalf("filter leaked status %q", a.Status)
		}
		if a.ID == activity.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected activity among in-progress ones")
	}

	ok, err = DeleteActivity(testDB, activity.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to match")
	}

	gone, err := GetActivityByID(testDB, activity.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gone != nil {
		t.Fatal("expected absent activity after delete")
	}
}

func TestCronogramHydratesActivities(t *testing.T) {
	cronogram := &models.ActivityCronogram{
		StartDate: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 26, 0, 0, 0, 0, time.UTC),
	}
	if err := CreateCronogram(testDB, cronogram); err != nil {
		t.Fatal(err)
	}
	if cronogram.ID == 0 {
		t.Fatal("expected generated id to be written back")
	}

	first := newTestActivity("Primera actividad", models.ActivityPending)
	second := newTestActivity("Segunda actividad", models.ActivityPending)
	second.StartDate = first.StartDate.AddDate(0, 0, 14)
	for _, a := range []*models.Activity{first, second} {
		if err := CreateActivity(testDB, a); err != nil {
			t.Fatal(err)
		}
		if err := AddActivityToCronogram(testDB, cronogram.ID, a.ID); err != nil {
			t.Fatal(err)
		}
	}
	// Scheduling twice is a no-op.
	if err := AddActivityToCronogram(testDB, cronogram.ID, first.ID); err != nil {
		t.Fatal(err)
	}

	got, err := GetCronogramByID(testDB, cronogram.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected cronogram, got absent")
	}
	if len(got.Activities) != 2 {
		t.Fatalf("expected 2 hydrated activities, got %d", len(got.Activities))
	}
	if got.Activities[0].ID != first.ID {
		t.Fatalf("expected activities ordered by start date, got %+v", got.Activities)
	}

	removed, err := RemoveActivityFromCronogram(testDB, cronogram.ID, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("expected removal to match")
	}

	got, err = GetCronogramByID(testDB, cronogram.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Activities) != 1 || got.Activities[0].ID != second.ID {
		t.Fatalf("expected only the second activity, got %+v", got.Activities)
	}
}

func TestCronogramUpdateAndDelete(t *testing.T) {
	cronogram := &models.ActivityCronogram{
		StartDate: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 4, 0, 0, 0, 0, time.UTC),
	}
	if err := CreateCronogram(testDB, cronogram); err != nil {
		t.Fatal(err)
	}

	cronogram.EndDate = time.Date(2026, 12, 11, 0, 0, 0, 0, time.UTC)
	ok, err := UpdateCronogram(testDB, cronogram)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected update to match")
	}

	got, err := GetCronogramByID(testDB, cronogram.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.EndDate.Format("2006-01-02") != "2026-12-11" {
		t.Fatalf("end date not persisted: %v", got.EndDate)
	}

	ok, err = DeleteCronogram(testDB, cronogram.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to match")
	}

	gone, err := GetCronogramByID(testDB, cronogram.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gone != nil {
		t.Fatal("expected absent cronogram after delete")
	}
}
