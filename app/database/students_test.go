package database

import (
	"errors"
	"testing"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

func TestCreateStudentAndGetByEnrollment(t *testing.T) {
	enrollment := "S" + uniqueKey()
	student := &models.Student{
		User:       newTestUser("Ana"),
		Enrollment: enrollment,
		Grade:      9.2,
	}
	if err := CreateStudent(testDB, student); err != nil {
		t.Fatal(err)
	}
	if student.ID == 0 {
		t.Fatal("expected generated user id to be written back")
	}

	got, err := GetStudentByEnrollment(testDB, enrollment)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected student, got absent")
	}
	if got.FullName != "Ana" || got.Grade != 9.2 || got.ID != student.ID {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCreateStudentDuplicateEnrollmentLeavesNoOrphan(t *testing.T) {
	enrollment := "S" + uniqueKey()
	first := &models.Student{User: newTestUser("First Student"), Enrollment: enrollment}
	if err := CreateStudent(testDB, first); err != nil {
		t.Fatal(err)
	}

	usersBefore, err := CountUsers(testDB)
	if err != nil {
		t.Fatal(err)
	}
	studentsBefore, err := CountStudents(testDB)
	if err != nil {
		t.Fatal(err)
	}

	second := &models.Student{User: newTestUser("Second Student"), Enrollment: enrollment}
	if err := CreateStudent(testDB, second); !errors.Is(err, ErrDuplicateEnrollment) {
		t.Fatalf("expected ErrDuplicateEnrollment, got %v", err)
	}

	usersAfter, err := CountUsers(testDB)
	if err != nil {
		t.Fatal(err)
	}
	studentsAfter, err := CountStudents(testDB)
	if err != nil {
		t.Fatal(err)
	}
	if usersAfter != usersBefore {
		t.Fatalf("failed role insert left an orphan user: %d -> %d", usersBefore, usersAfter)
	}
	if studentsAfter != studentsBefore {
		t.Fatalf("student count changed: %d -> %d", studentsBefore, studentsAfter)
	}
}

func TestDeleteStudentRemovesBackingUser(t *testing.T) {
	student := mustCreateStudent(t, "Ana Borrable")
	userID := student.ID

	ok, err := DeleteStudent(testDB, userID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to match")
	}

	gotStudent, err := GetStudentByUserID(testDB, userID)
	if err != nil {
		t.Fatal(err)
	}
	if gotStudent != nil {
		t.Fatal("student row must be gone")
	}

	gotUser, err := GetUserByID(testDB, userID)
	if err != nil {
		t.Fatal(err)
	}
	if gotUser != nil {
		t.Fatal("backing user row must be gone too")
	}

	ok, err = DeleteStudent(testDB, userID)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected second delete to match nothing")
	}
}

func TestUpdateStudent(t *testing.T) {
	student := mustCreateStudent(t, "Grade Pending")

	student.FullName = "Grade Assigned"
	student.Grade = 10
	ok, err := UpdateStudent(testDB, student)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected update to match")
	}

	got, err := GetStudentByUserID(testDB, student.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.FullName != "Grade Assigned" || got.Grade != 10 {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestUpdateStudentMissing(t *testing.T) {
	student := &models.Student{
		User:       models.User{ID: 999999, FullName: "Ghost", CellPhone: uniquePhone(), Status: models.UserActive},
		Enrollment: "S" + uniqueKey(),
	}
	ok, err := UpdateStudent(testDB, student)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected no row to match")
	}
}

func TestGetStudentsByStatus(t *testing.T) {
	student := mustCreateStudent(t, "Estado Activo")

	active, err := GetStudentsByStatus(testDB, models.UserActive)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, s := range active {
		if s.ID == student.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected newly created student among active ones")
	}
}

func TestStudentExists(t *testing.T) {
	student := mustCreateStudent(t, "Existente")

	exists, err := StudentExists(testDB, student.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected student to exist")
	}

	exists, err = StudentExists(testDB, 999999)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected missing id to not exist")
	}
}
