package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateActivity inserts a new activity and writes the generated id
// back.
func CreateActivity(db *sql.DB, activity *models.Activity) error {
	if activity.Status == "" {
		activity.Status = models.ActivityPending
	}

	query := `INSERT INTO activities (name, description, start_date, end_date, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	err := db.QueryRow(query,
		activity.Name, activity.Description, activity.StartDate, activity.EndDate, activity.Status,
	).Scan(&activity.ID)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

const activityColumns = `id, name, description, start_date, end_date, status`

func scanActivity(row interface{ Scan(...any) error }, a *models.Activity) error {
	return row.Scan(&a.ID, &a.Name, &a.Description, &a.StartDate, &a.EndDate, &a.Status)
}

// GetActivityByID retrieves an activity by id; a missing row yields
// (nil, nil).
func GetActivityByID(db *sql.DB, id int) (*models.Activity, error) {
	activity := &models.Activity{}
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	err := scanActivity(db.QueryRow(query, id), activity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return activity, nil
}

// GetAllActivities retrieves every activity ordered by start date.
func GetAllActivities(db *sql.DB) ([]models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY start_date ASC, id ASC`
	return queryActivities(db, query)
}

// GetActivitiesByStatus retrieves the activities in the given lifecycle
// state.
func GetActivitiesByStatus(db *sql.DB, status models.ActivityStatus) ([]models.Activity, error) {
	query := `SELECT ` + activityColumns + `
			  FROM activities WHERE status = $1
			  ORDER BY start_date ASC, id ASC`
	return queryActivities(db, query, status)
}

func queryActivities(q dbtx, query string, args ...any) ([]models.Activity, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := scanActivity(rows, &a); err != nil {
			return nil, fmt.Errorf("query activities: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// UpdateActivity rewrites an activity's columns by id. It reports
// whether a row matched.
func UpdateActivity(db *sql.DB, activity *models.Activity) (bool, error) {
	query := `UPDATE activities
			  SET name = $1, description = $2, start_date = $3, end_date = $4, status = $5
			  WHERE id = $6`
	res, err := db.Exec(query,
		activity.Name, activity.Description, activity.StartDate, activity.EndDate,
		activity.Status, activity.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update activity: %w", err)
	}
	return affected > 0, nil
}

// DeleteActivity removes an activity by id and reports whether a row
// matched.
func DeleteActivity(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete activity: %w", err)
	}
	return affected > 0, nil
}

// ActivityExists reports whether an activity row exists for the id.
func ActivityExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM activities WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("activity exists: %w", err)
	}
	return exists, nil
}

// CountActivities returns the total number of activity rows.
func CountActivities(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return count, nil
}
