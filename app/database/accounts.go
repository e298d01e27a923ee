package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/auth"
	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateAccount registers login credentials for an existing user. The
// plain secret is hashed before it touches the store.
func CreateAccount(db *sql.DB, account *models.Account, secret string) error {
	if !validEmail(account.Email) {
		return ErrInvalidEmail
	}

	exists, err := UserExists(db, account.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	taken, err := AccountExists(db, account.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(secret, auth.DefaultCost)
	if err != nil {
		return err
	}
	account.PasswordHash = hash

	query := `INSERT INTO accounts (user_id, email, password) VALUES ($1, $2, $3)`
	if _, err := db.Exec(query, account.UserID, account.Email, account.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// VerifyAccount checks a login attempt. Unknown emails, inactive users
// and wrong secrets all read as not authenticated, never as an error.
func VerifyAccount(db *sql.DB, email, secret string) (bool, error) {
	var hash string
	var status models.UserStatus
	query := `SELECT a.password, u.status
			  FROM accounts a
			  JOIN users u ON u.id = a.user_id
			  WHERE a.email = $1`

	err := db.QueryRow(query, email).Scan(&hash, &status)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("verify account: %w", err)
	}
	if status != models.UserActive {
		return false, nil
	}
	return auth.CheckPasswordHash(secret, hash), nil
}

// UpdateAccount applies only the fields the caller supplied. It reports
// false when nothing was supplied or no row matched the user id.
func UpdateAccount(db *sql.DB, userID int, update models.AccountUpdate) (bool, error) {
	sets := []string{}
	args := []any{}

	if update.Email != nil {
		if !validEmail(*update.Email) {
			return false, ErrInvalidEmail
		}
		args = append(args, *update.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if update.Password != nil {
		hash, err := auth.HashPassword(*update.Password, auth.DefaultCost)
		if err != nil {
			return false, err
		}
		args = append(args, hash)
		sets = append(sets, fmt.Sprintf("password = $%d", len(args)))
	}
	if len(sets) == 0 {
		return false, nil
	}

	args = append(args, userID)
	query := fmt.Sprintf(`UPDATE accounts SET %s WHERE user_id = $%d`,
		strings.Join(sets, ", "), len(args))

	res, err := db.Exec(query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateEmail
		}
		return false, fmt.Errorf("update account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update account: %w", err)
	}
	return affected > 0, nil
}

// DeleteAccount removes the credentials of a user and reports whether a
// row matched.
func DeleteAccount(db *sql.DB, userID int) (bool, error) {
	res, err := db.Exec(`DELETE FROM accounts WHERE user_id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	return affected > 0, nil
}

// AccountExists reports whether the email is already registered.
func AccountExists(db *sql.DB, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("account exists: %w", err)
	}
	return exists, nil
}

// GetAccountByUserID retrieves the credentials row of a user; a missing
// row yields (nil, nil).
func GetAccountByUserID(db *sql.DB, userID int) (*models.Account, error) {
	account := &models.Account{}
	query := `SELECT user_id, email, password FROM accounts WHERE user_id = $1`

	err := db.QueryRow(query, userID).Scan(&account.UserID, &account.Email, &account.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// GetAccountByEmail retrieves the credentials row registered under the
// email; a missing row yields (nil, nil).
func GetAccountByEmail(db *sql.DB, email string) (*models.Account, error) {
	account := &models.Account{}
	query := `SELECT user_id, email, password FROM accounts WHERE email = $1`

	err := db.QueryRow(query, email).Scan(&account.UserID, &account.Email, &account.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}
