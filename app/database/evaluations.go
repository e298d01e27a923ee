package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateEvaluation inserts an academic's grading of a presentation and
// writes the generated id back.
func CreateEvaluation(db *sql.DB, evaluation *models.Evaluation) error {
	if evaluation.Academic == nil || evaluation.Presentation == nil {
		return ErrUserNotFound
	}

	query := `INSERT INTO evaluations (calification, comments, evaluated_at, academic_id, presentation_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	err := db.QueryRow(query,
		evaluation.Calification, evaluation.Comments, evaluation.Date,
		evaluation.Academic.ID, evaluation.Presentation.ID,
	).Scan(&evaluation.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// GetEvaluationByID retrieves an evaluation with its academic and
// presentation hydrated through follow-up lookups; a missing row yields
// (nil, nil).
func GetEvaluationByID(db *sql.DB, id int) (*models.Evaluation, error) {
	evaluation := &models.Evaluation{}
	var academicID, presentationID int

	query := `SELECT id, calification, comments, evaluated_at, academic_id, presentation_id
			  FROM evaluations WHERE id = $1`
	err := db.QueryRow(query, id).Scan(
		&evaluation.ID, &evaluation.Calification, &evaluation.Comments, &evaluation.Date,
		&academicID, &presentationID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get evaluation: %w", err)
	}

	if evaluation.Academic, err = GetAcademicByUserID(db, academicID); err != nil {
		return nil, err
	}
	if evaluation.Presentation, err = GetPresentationByID(db, presentationID); err != nil {
		return nil, err
	}
	return evaluation, nil
}

// GetAllEvaluations retrieves every evaluation ordered by date.
func GetAllEvaluations(db *sql.DB) ([]models.Evaluation, error) {
	query := `SELECT id, calification, comments, evaluated_at, academic_id, presentation_id
			  FROM evaluations ORDER BY evaluated_at ASC, id ASC`
	return queryEvaluations(db, query)
}

// GetEvaluationsByPresentation retrieves the evaluations recorded for a
// presentation.
func GetEvaluationsByPresentation(db *sql.DB, presentationID int) ([]models.Evaluation, error) {
	query := `SELECT id, calification, comments, evaluated_at, academic_id, presentation_id
			  FROM evaluations WHERE presentation_id = $1
			  ORDER BY evaluated_at ASC, id ASC`
	return queryEvaluations(db, query, presentationID)
}

// GetEvaluationsByAcademic retrieves the evaluations an academic has
// recorded.
func GetEvaluationsByAcademic(db *sql.DB, academicID int) ([]models.Evaluation, error) {
	query := `SELECT id, calification, comments, evaluated_at, academic_id, presentation_id
			  FROM evaluations WHERE academic_id = $1
			  ORDER BY evaluated_at ASC, id ASC`
	return queryEvaluations(db, query, academicID)
}

func queryEvaluations(db *sql.DB, query string, args ...any) ([]models.Evaluation, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	type row struct {
		evaluation     models.Evaluation
		academicID     int
		presentationID int
	}
	scanned := []row{}
	for rows.Next() {
		var r row
		if err := rows.Scan(
			&r.evaluation.ID, &r.evaluation.Calification, &r.evaluation.Comments,
			&r.evaluation.Date, &r.academicID, &r.presentationID,
		); err != nil {
			return nil, fmt.Errorf("query evaluations: %w", err)
		}
		scanned = append(scanned, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	evaluations := []models.Evaluation{}
	for _, r := range scanned {
		if r.evaluation.Academic, err = GetAcademicByUserID(db, r.academicID); err != nil {
			return nil, err
		}
		if r.evaluation.Presentation, err = GetPresentationByID(db, r.presentationID); err != nil {
			return nil, err
		}
		evaluations = append(evaluations, r.evaluation)
	}
	return evaluations, nil
}

// UpdateEvaluation rewrites an evaluation's columns by id. It reports
// whether a row matched.
func UpdateEvaluation(db *sql.DB, evaluation *models.Evaluation) (bool, error) {
	if evaluation.Academic == nil || evaluation.Presentation == nil {
		return false, ErrUserNotFound
	}

	query := `UPDATE evaluations
			  SET calification = $1, comments = $2, evaluated_at = $3,
				  academic_id = $4, presentation_id = $5
			  WHERE id = $6`
	res, err := db.Exec(query,
		evaluation.Calification, evaluation.Comments, evaluation.Date,
		evaluation.Academic.ID, evaluation.Presentation.ID, evaluation.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("update evaluation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update evaluation: %w", err)
	}
	return affected > 0, nil
}

// DeleteEvaluation removes an evaluation by id and reports whether a
// row matched.
func DeleteEvaluation(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`DELETE FROM evaluations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete evaluation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete evaluation: %w", err)
	}
	return affected > 0, nil
}

// EvaluationExists reports whether an evaluation row exists for the id.
func EvaluationExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM evaluations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("evaluation exists: %w", err)
	}
	return exists, nil
}

// CountEvaluations returns the total number of evaluation rows.
func CountEvaluations(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM evaluations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count evaluations: %w", err)
	}
	return count, nil
}
