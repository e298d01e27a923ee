package database

import (
	"testing"
	"time"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

func TestEvaluationHydratesAcademicAndPresentation(t *testing.T) {
	student := mustCreateStudent(t, "Evaluada")
	academic := mustCreateAcademic(t, "Sinodal Uno", models.AcademicEvaluator)
	presentation := mustCreatePresentation(t, student, models.PresentationFinal)

	evaluation := &models.Evaluation{
		Calification: 9.5,
		Comments:     "Dominio del tema",
		Date:         time.Date(2026, 5, 18, 12, 0, 0, 0, time.UTC),
		Academic:     academic,
		Presentation: presentation,
	}
	if err := CreateEvaluation(testDB, evaluation); err != nil {
		t.Fatal(err)
	}
	if evaluation.ID == 0 {
		t.Fatal("expected generated id to be written back")
	}

	got, err := GetEvaluationByID(testDB, evaluation.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected evaluation, got absent")
	}
	if got.Calification != 9.5 || got.Comments != "Dominio del tema" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Academic == nil || got.Academic.ID != academic.ID {
		t.Fatalf("academic not hydrated: %+v", got.Academic)
	}
	if got.Presentation == nil || got.Presentation.ID != presentation.ID {
		t.Fatalf("presentation not hydrated: %+v", got.Presentation)
	}
	if got.Presentation.Student == nil || got.Presentation.Student.ID != student.ID {
		t.Fatalf("nested student not hydrated: %+v", got.Presentation.Student)
	}
}

func TestEvaluationFilters(t *testing.T) {
	student := mustCreateStudent(t, "Con Sinodales")
	academic := mustCreateAcademic(t, "Sinodal Dos", models.AcademicEvaluator)
	presentation := mustCreatePresentation(t, student, models.PresentationPartial)

	evaluation := &models.Evaluation{
		Calification: 8,
		Date:         time.Now().UTC().Truncate(time.Microsecond),
		Academic:     academic,
		Presentation: presentation,
	}
	if err := CreateEvaluation(testDB, evaluation); err != nil {
		t.Fatal(err)
	}

	byPresentation, err := GetEvaluationsByPresentation(testDB, presentation.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byPresentation) != 1 || byPresentation[0].ID != evaluation.ID {
		t.Fatalf("expected the one evaluation, got %+v", byPresentation)
	}

	byAcademic, err := GetEvaluationsByAcademic(testDB, academic.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byAcademic) != 1 || byAcademic[0].ID != evaluation.ID {
		t.Fatalf("expected the one evaluation, got %+v", byAcademic)
	}
}

func TestUpdateAndDeleteEvaluation(t *testing.T) {
	student := mustCreateStudent(t, "Recalificada")
	academic := mustCreateAcademic(t, "Sinodal Tres", models.AcademicEvaluator)
	presentation := mustCreatePresentation(t, student, models.PresentationPartial)

	evaluation := &models.Evaluation{
		Calification: 7,
		Date:         time.Now().UTC().Truncate(time.Microsecond),
		Academic:     academic,
		Presentation: presentation,
	}
	if err := CreateEvaluation(testDB, evaluation); err != nil {
		t.Fatal(err)
	}

	evaluation.Calification = 8.5
	evaluation.Comments = "Corrigió observaciones"
	ok, err := UpdateEvaluation(testDB, evaluation)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected update to match")
	}

	got, err := GetEvaluationByID(testDB, evaluation.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Calification != 8.5 || got.Comments != "Corrigió observaciones" {
		t.Fatalf("update not persisted: %+v", got)
	}

	ok, err = DeleteEvaluation(testDB, evaluation.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to match")
	}

	gone, err := GetEvaluationByID(testDB, evaluation.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gone != nil {
		t.Fatal("expected absent evaluation after delete")
	}
}

func TestSelfEvaluationLifecycle(t *testing.T) {
	student := mustCreateStudent(t, "Autoevaluada")

	selfEvaluation := &models.SelfEvaluation{
		Feedback:     "Aprendí a planear entregas",
		Calification: 9,
		Student:      student,
	}
	if err := CreateSelfEvaluation(testDB, selfEvaluation); err != nil {
		t.Fatal(err)
	}

	got, err := GetSelfEvaluationByID(testDB, selfEvaluation.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Student == nil || got.Student.ID != student.ID {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	byStudent, err := GetSelfEvaluationsByStudent(testDB, student.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byStudent) != 1 {
		t.Fatalf("expected 1 self evaluation, got %d", len(byStudent))
	}

	selfEvaluation.Calification = 9.5
	ok, err := UpdateSelfEvaluation(testDB, selfEvaluation)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected update to match")
	}

	ok, err = DeleteSelfEvaluation(testDB, selfEvaluation.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to match")
	}
}
