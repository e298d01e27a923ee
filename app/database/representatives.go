package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateRepresentative inserts an organization contact and writes the
// generated id back. The organization link may be nil until assigned.
func CreateRepresentative(db *sql.DB, representative *models.Representative) error {
	if !validPhone(representative.CellPhone) {
		return ErrInvalidPhone
	}
	if !validEmail(representative.Email) {
		return ErrInvalidEmail
	}

	query := `INSERT INTO representatives (full_name, email, cell_phone, organization_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	err := db.QueryRow(query,
		representative.FullName, representative.Email, representative.CellPhone,
		representative.OrganizationID,
	).Scan(&representative.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("insert representative: %w", err)
	}
	return nil
}

// GetRepresentativeByID retrieves a representative with its organization
// hydrated when assigned; a missing row yields (nil, nil).
func GetRepresentativeByID(db *sql.DB, id int) (*models.Representative, error) {
	representative := &models.Representative{}
	query := `SELECT id, full_name, email, cell_phone, organization_id
			  FROM representatives WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&representative.ID, &representative.FullName, &representative.Email,
		&representative.CellPhone, &representative.OrganizationID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get representative: %w", err)
	}

	if representative.OrganizationID != nil {
		representative.Organization, err = GetOrganizationByID(db, *representative.OrganizationID)
		if err != nil {
			return nil, err
		}
	}
	return representative, nil
}

// GetAllRepresentatives retrieves every representative ordered by full
// name, without hydrating organizations.
func GetAllRepresentatives(db *sql.DB) ([]models.Representative, error) {
	query := `SELECT id, full_name, email, cell_phone, organization_id
			  FROM representatives ORDER BY full_name ASC`
	return queryRepresentatives(db, query)
}

// GetRepresentativesByOrganization retrieves the contacts assigned to
// an organization.
func GetRepresentativesByOrganization(db *sql.DB, organizationID int) ([]models.Representative, error) {
	query := `SELECT id, full_name, email, cell_phone, organization_id
			  FROM representatives WHERE organization_id = $1
			  ORDER BY full_name ASC`
	return queryRepresentatives(db, query, organizationID)
}

func queryRepresentatives(db *sql.DB, query string, args ...any) ([]models.Representative, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query representatives: %w", err)
	}
	defer rows.Close()

	representatives := []models.Representative{}
	for rows.Next() {
		var r models.Representative
		if err := rows.Scan(&r.ID, &r.FullName, &r.Email, &r.CellPhone, &r.OrganizationID); err != nil {
			return nil, fmt.Errorf("query representatives: %w", err)
		}
		representatives = append(representatives, r)
	}
	return representatives, rows.Err()
}

// UpdateRepresentative rewrites a representative's columns by id. It
// reports whether a row matched.
func UpdateRepresentative(db *sql.DB, representative *models.Representative) (bool, error) {
	if !validPhone(representative.CellPhone) {
		return false, ErrInvalidPhone
	}
	if !validEmail(representative.Email) {
		return false, ErrInvalidEmail
	}

	query := `UPDATE representatives
			  SET full_name = $1, email = $2, cell_phone = $3, organization_id = $4
			  WHERE id = $5`
	res, err := db.Exec(query,
		representative.FullName, representative.Email, representative.CellPhone,
		representative.OrganizationID, representative.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("update representative: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update representative: %w", err)
	}
	return affected > 0, nil
}

// AssignRepresentativeToOrganization links a representative to an
// organization. It reports whether the representative matched.
func AssignRepresentativeToOrganization(db *sql.DB, representativeID, organizationID int) (bool, error) {
	res, err := db.Exec(`UPDATE representatives SET organization_id = $1 WHERE id = $2`,
		organizationID, representativeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("assign representative: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("assign representative: %w", err)
	}
	return affected > 0, nil
}

// DeleteRepresentative removes a representative by id and reports
// whether a row matched.
func DeleteRepresentative(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`DELETE FROM representatives WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete representative: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete representative: %w", err)
	}
	return affected > 0, nil
}

// RepresentativeExists reports whether a representative row exists for
// the id.
func RepresentativeExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM representatives WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("representative exists: %w", err)
	}
	return exists, nil
}

// CountRepresentatives returns the total number of representative rows.
func CountRepresentatives(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM representatives`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count representatives: %w", err)
	}
	return count, nil
}
