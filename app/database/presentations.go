package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreatePresentation inserts a new presentation for its owning student
// and writes the generated id back.
func CreatePresentation(db *sql.DB, presentation *models.Presentation) error {
	if presentation.Student == nil {
		return ErrUserNotFound
	}

	query := `INSERT INTO presentations (presented_at, presentation_type, student_id)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	err := db.QueryRow(query,
		presentation.Date, presentation.Type, presentation.Student.ID,
	).Scan(&presentation.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("insert presentation: %w", err)
	}
	return nil
}

// GetPresentationByID retrieves a presentation with its owning student
// hydrated through a follow-up lookup; a missing row yields (nil, nil).
func GetPresentationByID(db *sql.DB, id int) (*models.Presentation, error) {
	presentation := &models.Presentation{}
	var studentID int

	query := `SELECT id, presented_at, presentation_type, student_id FROM presentations WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&presentation.ID, &presentation.Date, &presentation.Type, &studentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}

	presentation.Student, err = GetStudentByUserID(db, studentID)
	if err != nil {
		return nil, err
	}
	return presentation, nil
}

// GetAllPresentations retrieves every presentation ordered by date,
// hydrating each owning student.
func GetAllPresentations(db *sql.DB) ([]models.Presentation, error) {
	query := `SELECT id, presented_at, presentation_type, student_id
			  FROM presentations ORDER BY presented_at ASC, id ASC`
	return queryPresentations(db, query)
}

// GetPresentationsByStudent retrieves a student's presentations ordered
// by date.
func GetPresentationsByStudent(db *sql.DB, studentID int) ([]models.Presentation, error) {
	query := `SELECT id, presented_at, presentation_type, student_id
			  FROM presentations WHERE student_id = $1
			  ORDER BY presented_at ASC, id ASC`
	return queryPresentations(db, query, studentID)
}

// GetPresentationsByType retrieves the presentations of the given kind
// ordered by date.
func GetPresentationsByType(db *sql.DB, presentationType models.PresentationType) ([]models.Presentation, error) {
	query := `SELECT id, presented_at, presentation_type, student_id
			  FROM presentations WHERE presentation_type = $1
			  ORDER BY presented_at ASC, id ASC`
	return queryPresentations(db, query, presentationType)
}

func queryPresentations(db *sql.DB, query string, args ...any) ([]models.Presentation, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query presentations: %w", err)
	}
	defer rows.Close()

	type row struct {
		presentation models.Presentation
		studentID    int
	}
	scanned := []row{}
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.presentation.ID, &r.presentation.Date, &r.presentation.Type, &r.studentID); err != nil {
			return nil, fmt.Errorf("query presentations: %w", err)
		}
		scanned = append(scanned, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	presentations := []models.Presentation{}
	for _, r := range scanned {
		student, err := GetStudentByUserID(db, r.studentID)
		if err != nil {
			return nil, err
		}
		r.presentation.Student = student
		presentations = append(presentations, r.presentation)
	}
	return presentations, nil
}

// UpdatePresentation rewrites a presentation's date, type and owning
// student by id. It reports whether a row matched.
func UpdatePresentation(db *sql.DB, presentation *models.Presentation) (bool, error) {
	if presentation.Student == nil {
		return false, ErrUserNotFound
	}

	query := `UPDATE presentations
			  SET presented_at = $1, presentation_type = $2, student_id = $3
			  WHERE id = $4`
	res, err := db.Exec(query,
		presentation.Date, presentation.Type, presentation.Student.ID, presentation.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("update presentation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update presentation: %w", err)
	}
	return affected > 0, nil
}

// DeletePresentation removes a presentation by id and reports whether a
// row matched.
func DeletePresentation(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`DELETE FROM presentations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete presentation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete presentation: %w", err)
	}
	return affected > 0, nil
}

// PresentationExists reports whether a presentation row exists for the
// id.
func PresentationExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM presentations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("presentation exists: %w", err)
	}
	return exists, nil
}

// CountPresentations returns the total number of presentation rows.
func CountPresentations(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM presentations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count presentations: %w", err)
	}
	return count, nil
}
