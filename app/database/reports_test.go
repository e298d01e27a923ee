package database

import (
	"errors"
	"testing"
	"time"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

func TestReportLifecycle(t *testing.T) {
	student := mustCreateStudent(t, "Reportera")

	report := &models.Report{
		Date:    time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Hours:   40,
		Type:    models.ReportMonthly,
		Student: student,
	}
	if err := CreateReport(testDB, report); err != nil {
		t.Fatal(err)
	}
	if report.ID == 0 {
		t.Fatal("expected generated id to be written back")
	}

	got, err := GetReportByID(testDB, report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected report, got absent")
	}
	if got.Hours != 40 || got.Type != models.ReportMonthly {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Student == nil || got.Student.FullName != "Reportera" {
		t.Fatalf("student not hydrated: %+v", got.Student)
	}

	report.Hours = 45
	ok, err := UpdateReport(testDB, report)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected update to match")
	}

	byStudent, err := GetReportsByStudent(testDB, student.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byStudent) != 1 || byStudent[0].Hours != 45 {
		t.Fatalf("expected the updated report, got %+v", byStudent)
	}

	monthly, err := GetReportsByType(testDB, models.ReportMonthly)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, r := range monthly {
		if r.Type != models.ReportMonthly {
			t.Fatalf("filter leaked type %q", r.Type)
		}
		if r.ID == report.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the report among monthly ones")
	}

	ok, err = DeleteReport(testDB, report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to match")
	}

	ok, err = DeleteReport(testDB, report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected second delete to match nothing")
	}
}

func TestCreateReportUnknownStudent(t *testing.T) {
	report := &models.Report{
		Date:    time.Now(),
		Hours:   10,
		Type:    models.ReportFinal,
		Student: &models.Student{User: models.User{ID: 999999}},
	}
	if err := CreateReport(testDB, report); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
