package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateSelfEvaluation inserts a student's self-assessment and writes
// the generated id back.
func CreateSelfEvaluation(db *sql.DB, selfEvaluation *models.SelfEvaluation) error {
	if selfEvaluation.Student == nil {
		return ErrUserNotFound
	}

	query := `INSERT INTO self_evaluations (feedback, calification, student_id)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	err := db.QueryRow(query,
		selfEvaluation.Feedback, selfEvaluation.Calification, selfEvaluation.Student.ID,
	).Scan(&selfEvaluation.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("insert self evaluation: %w", err)
	}
	return nil
}

// GetSelfEvaluationByID retrieves a self-evaluation with its owning
// student hydrated; a missing row yields (nil, nil).
func GetSelfEvaluationByID(db *sql.DB, id int) (*models.SelfEvaluation, error) {
	selfEvaluation := &models.SelfEvaluation{}
	var studentID int

	query := `SELECT id, feedback, calification, student_id FROM self_evaluations WHERE id = $1`
	err := db.QueryRow(query, id).Scan(
		&selfEvaluation.ID, &selfEvaluation.Feedback, &selfEvaluation.Calification, &studentID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get self evaluation: %w", err)
	}

	selfEvaluation.Student, err = GetStudentByUserID(db, studentID)
	if err != nil {
		return nil, err
	}
	return selfEvaluation, nil
}

// GetAllSelfEvaluations retrieves every self-evaluation.
func GetAllSelfEvaluations(db *sql.DB) ([]models.SelfEvaluation, error) {
	query := `SELECT id, feedback, calification, student_id FROM self_evaluations ORDER BY id ASC`
	return querySelfEvaluations(db, query)
}

// GetSelfEvaluationsByStudent retrieves a student's self-evaluations.
func GetSelfEvaluationsByStudent(db *sql.DB, studentID int) ([]models.SelfEvaluation, error) {
	query := `SELECT id, feedback, calification, student_id
			  FROM self_evaluations WHERE student_id = $1
			  ORDER BY id ASC`
	return querySelfEvaluations(db, query, studentID)
}

func querySelfEvaluations(db *sql.DB, query string, args ...any) ([]models.SelfEvaluation, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query self evaluations: %w", err)
	}
	defer rows.Close()

	type row struct {
		selfEvaluation models.SelfEvaluation
		studentID      int
	}
	scanned := []row{}
	for rows.Next() {
		var r row
		if err := rows.Scan(
			&r.selfEvaluation.ID, &r.selfEvaluation.Feedback,
			&r.selfEvaluation.Calification, &r.studentID,
		); err != nil {
			return nil, fmt.Errorf("query self evaluations: %w", err)
		}
		scanned = append(scanned, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	selfEvaluations := []models.SelfEvaluation{}
	for _, r := range scanned {
		student, err := GetStudentByUserID(db, r.studentID)
		if err != nil {
			return nil, err
		}
		r.selfEvaluation.Student = student
		selfEvaluations = append(selfEvaluations, r.selfEvaluation)
	}
	return selfEvaluations, nil
}

// UpdateSelfEvaluation rewrites a self-evaluation's columns by id. It
// reports whether a row matched.
func UpdateSelfEvaluation(db *sql.DB, selfEvaluation *models.SelfEvaluation) (bool, error) {
	if selfEvaluation.Student == nil {
		return false, ErrUserNotFound
	}

	query := `UPDATE self_evaluations
			  SET feedback = $1, calification = $2, student_id = $3
			  WHERE id = $4`
	res, err := db.Exec(query,
		selfEvaluation.Feedback, selfEvaluation.Calification,
		selfEvaluation.Student.ID, selfEvaluation.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("update self evaluation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update self evaluation: %w", err)
	}
	return affected > 0, nil
}

// DeleteSelfEvaluation removes a self-evaluation by id and reports
// whether a row matched.
func DeleteSelfEvaluation(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`DELETE FROM self_evaluations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete self evaluation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete self evaluation: %w", err)
	}
	return affected > 0, nil
}

// SelfEvaluationExists reports whether a self-evaluation row exists for
// the id.
func SelfEvaluationExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM self_evaluations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("self evaluation exists: %w", err)
	}
	return exists, nil
}

// CountSelfEvaluations returns the total number of self-evaluation
// rows.
func CountSelfEvaluations(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM self_evaluations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count self evaluations: %w", err)
	}
	return count, nil
}
