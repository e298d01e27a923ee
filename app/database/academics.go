package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateAcademic creates the backing user and the academic row in one
// transaction, so a duplicate staff number leaves no orphan user behind.
func CreateAcademic(db *sql.DB, academic *models.Academic) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("create academic: %w", err)
	}
	defer tx.Rollback()

	if err := insertUser(tx, &academic.User); err != nil {
		return err
	}

	var taken bool
	err = tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM academics WHERE staff_number = $1)`, academic.StaffNumber).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check staff number: %w", err)
	}
	if taken {
		return ErrDuplicateStaffNumber
	}

	if academic.Type == "" {
		academic.Type = models.AcademicNone
	}

	_, err = tx.Exec(`INSERT INTO academics (user_id, staff_number, academic_type) VALUES ($1, $2, $3)`,
		academic.ID, academic.StaffNumber, academic.Type)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateStaffNumber
		}
		return fmt.Errorf("insert academic: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create academic: %w", err)
	}
	return nil
}

const academicColumns = `u.id, u.full_name, u.cell_phone, u.phone_extension, u.status,
			  a.staff_number, a.academic_type`

func scanAcademic(row interface{ Scan(...any) error }, a *models.Academic) error {
	return row.Scan(&a.ID, &a.FullName, &a.CellPhone, &a.PhoneExtension, &a.Status,
		&a.StaffNumber, &a.Type)
}

// GetAcademicByUserID retrieves an academic with its backing user; a
// missing row yields (nil, nil).
func GetAcademicByUserID(db *sql.DB, userID int) (*models.Academic, error) {
	academic := &models.Academic{}
	query := `SELECT ` + academicColumns + `
			  FROM academics a
			  JOIN users u ON u.id = a.user_id
			  WHERE a.user_id = $1`

	err := scanAcademic(db.QueryRow(query, userID), academic)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get academic: %w", err)
	}
	return academic, nil
}

// GetAcademicByStaffNumber retrieves an academic by staff number; a
// missing row yields (nil, nil).
func GetAcademicByStaffNumber(db *sql.DB, staffNumber string) (*models.Academic, error) {
	academic := &models.Academic{}
	query := `SELECT ` + academicColumns + `
			  FROM academics a
			  JOIN users u ON u.id = a.user_id
			  WHERE a.staff_number = $1`

	err := scanAcademic(db.QueryRow(query, staffNumber), academic)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get academic: %w", err)
	}
	return academic, nil
}

// GetAllAcademics retrieves every academic ordered by full name.
func GetAllAcademics(db *sql.DB) ([]models.Academic, error) {
	query := `SELECT ` + academicColumns + `
			  FROM academics a
			  JOIN users u ON u.id = a.user_id
			  ORDER BY u.full_name ASC`
	return queryAcademics(db, query)
}

// GetAcademicsByType retrieves the academics playing the given
// evaluation role.
func GetAcademicsByType(db *sql.DB, academicType models.AcademicType) ([]models.Academic, error) {
	query := `SELECT ` + academicColumns + `
			  FROM academics a
			  JOIN users u ON u.id = a.user_id
			  WHERE a.academic_type = $1
			  ORDER BY u.full_name ASC`
	return queryAcademics(db, query, academicType)
}

func queryAcademics(db *sql.DB, query string, args ...any) ([]models.Academic, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query academics: %w", err)
	}
	defer rows.Close()

	academics := []models.Academic{}
	for rows.Next() {
		var a models.Academic
		if err := scanAcademic(rows, &a); err != nil {
			return nil, fmt.Errorf("query academics: %w", err)
		}
		academics = append(academics, a)
	}
	return academics, rows.Err()
}

// UpdateAcademic rewrites the shared user columns and the academic-only
// columns in one transaction. It reports whether the academic matched.
func UpdateAcademic(db *sql.DB, academic *models.Academic) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("update academic: %w", err)
	}
	defer tx.Rollback()

	matched, err := updateUserRow(tx, &academic.User)
	if err != nil {
		return false, err
	}
	if !matched {
		return false, nil
	}

	res, err := tx.Exec(`UPDATE academics SET staff_number = $1, academic_type = $2 WHERE user_id = $3`,
		academic.StaffNumber, academic.Type, academic.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateStaffNumber
		}
		return false, fmt.Errorf("update academic: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update academic: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("update academic: %w", err)
	}
	return true, nil
}

// DeleteAcademic removes the academic row and its backing user in one
// transaction. It reports whether an academic matched the id.
func DeleteAcademic(db *sql.DB, userID int) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("delete academic: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM academics WHERE user_id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("delete academic: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete academic: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := deleteUserRow(tx, userID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("delete academic: %w", err)
	}
	return true, nil
}

// AcademicExists reports whether an academic row exists for the user id.
func AcademicExists(db *sql.DB, userID int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM academics WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("academic exists: %w", err)
	}
	return exists, nil
}

// CountAcademics returns the total number of academic rows.
func CountAcademics(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM academics`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count academics: %w", err)
	}
	return count, nil
}
