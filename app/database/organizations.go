package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateOrganization inserts a new linked organization and writes the
// generated id back. Names are unique across the store.
func CreateOrganization(db *sql.DB, organization *models.LinkedOrganization) error {
	if !validPhone(organization.CellPhone) {
		return ErrInvalidPhone
	}
	if !validEmail(organization.Email) {
		return ErrInvalidEmail
	}

	var taken bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM linked_organizations WHERE name = $1)`, organization.Name).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check organization name: %w", err)
	}
	if taken {
		return ErrDuplicateOrganizationName
	}

	if organization.Status == "" {
		organization.Status = models.OrganizationActive
	}

	query := `INSERT INTO linked_organizations (name, cell_phone, phone_extension, department, email, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	err = db.QueryRow(query,
		organization.Name, organization.CellPhone, organization.PhoneExtension,
		organization.Department, organization.Email, organization.Status,
	).Scan(&organization.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateOrganizationName
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

const organizationColumns = `id, name, cell_phone, phone_extension, department, email, status`

func scanOrganization(row interface{ Scan(...any) error }, o *models.LinkedOrganization) error {
	return row.Scan(&o.ID, &o.Name, &o.CellPhone, &o.PhoneExtension,
		&o.Department, &o.Email, &o.Status)
}

// GetOrganizationByID retrieves a linked organization by id; a missing
// row yields (nil, nil).
func GetOrganizationByID(db *sql.DB, id int) (*models.LinkedOrganization, error) {
	organization := &models.LinkedOrganization{}
	query := `SELECT ` + organizationColumns + ` FROM linked_organizations WHERE id = $1`

	err := scanOrganization(db.QueryRow(query, id), organization)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return organization, nil
}

// GetAllOrganizations retrieves every linked organization ordered by
// name.
func GetAllOrganizations(db *sql.DB) ([]models.LinkedOrganization, error) {
	query := `SELECT ` + organizationColumns + ` FROM linked_organizations ORDER BY name ASC`
	return queryOrganizations(db, query)
}

// SearchOrganizationsByName finds organizations whose name contains the
// term, case-insensitively. A blank term yields no results.
func SearchOrganizationsByName(db *sql.DB, name string) ([]models.LinkedOrganization, error) {
	if name == "" {
		return []models.LinkedOrganization{}, nil
	}

	pattern := "%" + name + "%"
	query := `SELECT ` + organizationColumns + `
			  FROM linked_organizations
			  WHERE LOWER(name) LIKE LOWER($1)
			  ORDER BY name ASC`
	return queryOrganizations(db, query, pattern)
}

// GetOrganizationsByStatus retrieves the organizations with the given
// status.
func GetOrganizationsByStatus(db *sql.DB, status models.OrganizationStatus) ([]models.LinkedOrganization, error) {
	query := `SELECT ` + organizationColumns + `
			  FROM linked_organizations WHERE status = $1
			  ORDER BY name ASC`
	return queryOrganizations(db, query, status)
}

func queryOrganizations(db *sql.DB, query string, args ...any) ([]models.LinkedOrganization, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query organizations: %w", err)
	}
	defer rows.Close()

	organizations := []models.LinkedOrganization{}
	for rows.Next() {
		var o models.LinkedOrganization
		if err := scanOrganization(rows, &o); err != nil {
			return nil, fmt.Errorf("query organizations: %w", err)
		}
		organizations = append(organizations, o)
	}
	return organizations, rows.Err()
}

// UpdateOrganization rewrites an organization's columns by id. It
// reports whether a row matched.
func UpdateOrganization(db *sql.DB, organization *models.LinkedOrganization) (bool, error) {
	if !validPhone(organization.CellPhone) {
		return false, ErrInvalidPhone
	}
	if !validEmail(organization.Email) {
		return false, ErrInvalidEmail
	}

	query := `UPDATE linked_organizations
			  SET name = $1, cell_phone = $2, phone_extension = $3,
				  department = $4, email = $5, status = $6
			  WHERE id = $7`
	res, err := db.Exec(query,
		organization.Name, organization.CellPhone, organization.PhoneExtension,
		organization.Department, organization.Email, organization.Status, organization.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateOrganizationName
		}
		return false, fmt.Errorf("update organization: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update organization: %w", err)
	}
	return affected > 0, nil
}

// DeleteOrganization removes an organization by id and reports whether
// a row matched. Its representatives stay, unassigned.
func DeleteOrganization(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`DELETE FROM linked_organizations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete organization: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete organization: %w", err)
	}
	return affected > 0, nil
}

// OrganizationExists reports whether an organization row exists for the
// id.
func OrganizationExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM linked_organizations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("organization exists: %w", err)
	}
	return exists, nil
}

// CountOrganizations returns the total number of organization rows.
func CountOrganizations(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM linked_organizations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count organizations: %w", err)
	}
	return count, nil
}
