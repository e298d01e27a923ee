package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// dbtx is the slice of *sql.DB and *sql.Tx the stores issue queries
// through, so composite writes can run inside a transaction.
type dbtx interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// CreateUser inserts a new user and writes the generated id back.
// The phone number must be ten digits and not yet registered.
func CreateUser(db *sql.DB, user *models.User) error {
	return insertUser(db, user)
}

func insertUser(q dbtx, user *models.User) error {
	if !validPhone(user.CellPhone) {
		return ErrInvalidPhone
	}

	var taken bool
	err := q.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE cell_phone = $1)`, user.CellPhone).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check phone: %w", err)
	}
	if taken {
		return ErrDuplicatePhone
	}

	if user.Status == "" {
		user.Status = models.UserActive
	}

	query := `INSERT INTO users (full_name, cell_phone, phone_extension, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	err = q.QueryRow(query, user.FullName, user.CellPhone, user.PhoneExtension, user.Status).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by id; a missing row yields (nil, nil).
func GetUserByID(db *sql.DB, id int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, full_name, cell_phone, phone_extension, status
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&user.ID, &user.FullName, &user.CellPhone, &user.PhoneExtension, &user.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateUser rewrites the user's editable columns. It reports whether a
// row matched the id.
func UpdateUser(db *sql.DB, user *models.User) (bool, error) {
	return updateUserRow(db, user)
}

func updateUserRow(q dbtx, user *models.User) (bool, error) {
	if !validPhone(user.CellPhone) {
		return false, ErrInvalidPhone
	}

	query := `UPDATE users
			  SET full_name = $1, cell_phone = $2, phone_extension = $3, status = $4
			  WHERE id = $5`
	res, err := q.Exec(query, user.FullName, user.CellPhone, user.PhoneExtension, user.Status, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicatePhone
		}
		return false, fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}
	return affected > 0, nil
}

// DeleteUser removes a user by id and reports whether a row matched.
func DeleteUser(db *sql.DB, id int) (bool, error) {
	return deleteUserRow(db, id)
}

func deleteUserRow(q dbtx, id int) (bool, error) {
	res, err := q.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return affected > 0, nil
}

// SearchUsersByName finds users whose full name contains the term,
// case-insensitively. A blank term yields no results.
func SearchUsersByName(db *sql.DB, name string) ([]models.User, error) {
	if name == "" {
		return []models.User{}, nil
	}

	pattern := "%" + name + "%"
	query := `SELECT id, full_name, cell_phone, phone_extension, status
			  FROM users
			  WHERE LOWER(full_name) LIKE LOWER($1)
			  ORDER BY full_name ASC`
	rows, err := db.Query(query, pattern)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.CellPhone, &u.PhoneExtension, &u.Status); err != nil {
			return nil, fmt.Errorf("search users: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UserExists reports whether a user row exists for the id.
func UserExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return exists, nil
}

// CountUsers returns the total number of user rows.
func CountUsers(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
