package database

import (
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// testDB is shared by every test in the package. Tests run only when
// TEST_DATABASE_URL points at a disposable Postgres database.
var testDB *sql.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		log.Println("TEST_DATABASE_URL not set; skipping database tests")
		os.Exit(0)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	if err := EnsureSchema(db); err != nil {
		log.Fatal(err)
	}
	if _, err := db.Exec(`TRUNCATE users, accounts, students, academics, coordinators,
		work_groups, group_students, projects, activities, cronograms,
		cronogram_activities, presentations, evaluations, self_evaluations,
		reports, linked_organizations, representatives
		RESTART IDENTITY CASCADE`); err != nil {
		log.Fatal(err)
	}

	testDB = db
	code := m.Run()
	db.Close()
	os.Exit(code)
}

// uniquePhone returns a random ten-digit phone so natural-key collisions
// cannot leak between tests.
func uniquePhone() string {
	u := uuid.New()
	digits := make([]byte, 10)
	for i := range digits {
		digits[i] = '0' + u[i]%10
	}
	return string(digits)
}

func uniqueEmail() string {
	return "test-" + uuid.NewString()[:8] + "@example.com"
}

func uniqueKey() string {
	return uuid.NewString()[:8]
}

func newTestUser(name string) models.User {
	return models.User{
		FullName:  name,
		CellPhone: uniquePhone(),
		Status:    models.UserActive,
	}
}

func mustCreateStudent(t *testing.T, name string) *models.Student {
	t.Helper()
	student := &models.Student{
		User:       newTestUser(name),
		Enrollment: "S" + uniqueKey(),
		Grade:      8.5,
	}
	if err := CreateStudent(testDB, student); err != nil {
		t.Fatal(err)
	}
	return student
}

func mustCreateAcademic(t *testing.T, name string, academicType models.AcademicType) *models.Academic {
	t.Helper()
	academic := &models.Academic{
		User:        newTestUser(name),
		StaffNumber: "A" + uniqueKey(),
		Type:        academicType,
	}
	if err := CreateAcademic(testDB, academic); err != nil {
		t.Fatal(err)
	}
	return academic
}
