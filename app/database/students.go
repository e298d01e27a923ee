package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateStudent creates the backing user and the student row in one
// transaction, so a duplicate enrollment leaves no orphan user behind.
func CreateStudent(db *sql.DB, student *models.Student) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	defer tx.Rollback()

	if err := insertUser(tx, &student.User); err != nil {
		return err
	}

	var taken bool
	err = tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE enrollment = $1)`, student.Enrollment).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check enrollment: %w", err)
	}
	if taken {
		return ErrDuplicateEnrollment
	}

	_, err = tx.Exec(`INSERT INTO students (user_id, enrollment, grade) VALUES ($1, $2, $3)`,
		student.ID, student.Enrollment, student.Grade)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEnrollment
		}
		return fmt.Errorf("insert student: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

const studentColumns = `u.id, u.full_name, u.cell_phone, u.phone_extension, u.status,
			  s.enrollment, s.grade`

func scanStudent(row interface{ Scan(...any) error }, s *models.Student) error {
	return row.Scan(&s.ID, &s.FullName, &s.CellPhone, &s.PhoneExtension, &s.Status,
		&s.Enrollment, &s.Grade)
}

// GetStudentByUserID retrieves a student with its backing user; a
// missing row yields (nil, nil).
func GetStudentByUserID(db *sql.DB, userID int) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  JOIN users u ON u.id = s.user_id
			  WHERE s.user_id = $1`

	err := scanStudent(db.QueryRow(query, userID), student)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	return student, nil
}

// GetStudentByEnrollment retrieves a student by its enrollment number;
// a missing row yields (nil, nil).
func GetStudentByEnrollment(db *sql.DB, enrollment string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  JOIN users u ON u.id = s.user_id
			  WHERE s.enrollment = $1`

	err := scanStudent(db.QueryRow(query, enrollment), student)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	return student, nil
}

// GetAllStudents retrieves every student ordered by full name.
func GetAllStudents(db *sql.DB) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  JOIN users u ON u.id = s.user_id
			  ORDER BY u.full_name ASC`
	return queryStudents(db, query)
}

// GetStudentsByStatus retrieves the students whose backing user has the
// given status.
func GetStudentsByStatus(db *sql.DB, status models.UserStatus) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  JOIN users u ON u.id = s.user_id
			  WHERE u.status = $1
			  ORDER BY u.full_name ASC`
	return queryStudents(db, query, status)
}

func queryStudents(db *sql.DB, query string, args ...any) ([]models.Student, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, fmt.Errorf("query students: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// UpdateStudent rewrites the shared user columns and the student-only
// columns in one transaction. It reports whether the student matched.
func UpdateStudent(db *sql.DB, student *models.Student) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("update student: %w", err)
	}
	defer tx.Rollback()

	matched, err := updateUserRow(tx, &student.User)
	if err != nil {
		return false, err
	}
	if !matched {
		return false, nil
	}

	res, err := tx.Exec(`UPDATE students SET enrollment = $1, grade = $2 WHERE user_id = $3`,
		student.Enrollment, student.Grade, student.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateEnrollment
		}
		return false, fmt.Errorf("update student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update student: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("update student: %w", err)
	}
	return true, nil
}

// DeleteStudent removes the student row and its backing user in one
// transaction. It reports whether a student matched the id.
func DeleteStudent(db *sql.DB, userID int) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM students WHERE user_id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := deleteUserRow(tx, userID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	return true, nil
}

// StudentExists reports whether a student row exists for the user id.
func StudentExists(db *sql.DB, userID int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("student exists: %w", err)
	}
	return exists, nil
}

// CountStudents returns the total number of student rows.
func CountStudents(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return count, nil
}
