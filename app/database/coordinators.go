package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateCoordinator creates the backing user and the coordinator row in
// one transaction, so a duplicate staff number leaves no orphan user.
func CreateCoordinator(db *sql.DB, coordinator *models.Coordinator) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("create coordinator: %w", err)
	}
	defer tx.Rollback()

	if err := insertUser(tx, &coordinator.User); err != nil {
		return err
	}

	var taken bool
	err = tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM coordinators WHERE staff_number = $1)`, coordinator.StaffNumber).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check staff number: %w", err)
	}
	if taken {
		return ErrDuplicateStaffNumber
	}

	_, err = tx.Exec(`INSERT INTO coordinators (user_id, staff_number) VALUES ($1, $2)`,
		coordinator.ID, coordinator.StaffNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateStaffNumber
		}
		return fmt.Errorf("insert coordinator: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create coordinator: %w", err)
	}
	return nil
}

const coordinatorColumns = `u.id, u.full_name, u.cell_phone, u.phone_extension, u.status,
			  c.staff_number`

func scanCoordinator(row interface{ Scan(...any) error }, c *models.Coordinator) error {
	return row.Scan(&c.ID, &c.FullName, &c.CellPhone, &c.PhoneExtension, &c.Status,
		&c.StaffNumber)
}

// GetCoordinatorByUserID retrieves a coordinator with its backing user;
// a missing row yields (nil, nil).
func GetCoordinatorByUserID(db *sql.DB, userID int) (*models.Coordinator, error) {
	coordinator := &models.Coordinator{}
	query := `SELECT ` + coordinatorColumns + `
			  FROM coordinators c
			  JOIN users u ON u.id = c.user_id
			  WHERE c.user_id = $1`

	err := scanCoordinator(db.QueryRow(query, userID), coordinator)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get coordinator: %w", err)
	}
	return coordinator, nil
}

// GetCoordinatorByStaffNumber retrieves a coordinator by staff number;
// a missing row yields (nil, nil).
func GetCoordinatorByStaffNumber(db *sql.DB, staffNumber string) (*models.Coordinator, error) {
	coordinator := &models.Coordinator{}
	query := `SELECT ` + coordinatorColumns + `
			  FROM coordinators c
			  JOIN users u ON u.id = c.user_id
			  WHERE c.staff_number = $1`

	err := scanCoordinator(db.QueryRow(query, staffNumber), coordinator)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get coordinator: %w", err)
	}
	return coordinator, nil
}

// GetAllCoordinators retrieves every coordinator ordered by full name.
func GetAllCoordinators(db *sql.DB) ([]models.Coordinator, error) {
	query := `SELECT ` + coordinatorColumns + `
			  FROM coordinators c
			  JOIN users u ON u.id = c.user_id
			  ORDER BY u.full_name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query coordinators: %w", err)
	}
	defer rows.Close()

	coordinators := []models.Coordinator{}
	for rows.Next() {
		var c models.Coordinator
		if err := scanCoordinator(rows, &c); err != nil {
			return nil, fmt.Errorf("query coordinators: %w", err)
		}
		coordinators = append(coordinators, c)
	}
	return coordinators, rows.Err()
}

// UpdateCoordinator rewrites the shared user columns and the staff
// number in one transaction. It reports whether the coordinator matched.
func UpdateCoordinator(db *sql.DB, coordinator *models.Coordinator) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("update coordinator: %w", err)
	}
	defer tx.Rollback()

	matched, err := updateUserRow(tx, &coordinator.User)
	if err != nil {
		return false, err
	}
	if !matched {
		return false, nil
	}

	res, err := tx.Exec(`UPDATE coordinators SET staff_number = $1 WHERE user_id = $2`,
		coordinator.StaffNumber, coordinator.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateStaffNumber
		}
		return false, fmt.Errorf("update coordinator: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update coordinator: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("update coordinator: %w", err)
	}
	return true, nil
}

// DeleteCoordinator removes the coordinator row and its backing user in
// one transaction. It reports whether a coordinator matched the id.
func DeleteCoordinator(db *sql.DB, userID int) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("delete coordinator: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM coordinators WHERE user_id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("delete coordinator: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete coordinator: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := deleteUserRow(tx, userID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("delete coordinator: %w", err)
	}
	return true, nil
}

// CoordinatorExists reports whether a coordinator row exists for the
// user id.
func CoordinatorExists(db *sql.DB, userID int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM coordinators WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("coordinator exists: %w", err)
	}
	return exists, nil
}

// CountCoordinators returns the total number of coordinator rows.
func CountCoordinators(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM coordinators`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count coordinators: %w", err)
	}
	return count, nil
}
