package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateCronogram inserts a new cronogram and writes the generated id
// back.
func CreateCronogram(db *sql.DB, cronogram *models.ActivityCronogram) error {
	query := `INSERT INTO cronograms (start_date, end_date) VALUES ($1, $2) RETURNING id`
	err := db.QueryRow(query, cronogram.StartDate, cronogram.EndDate).Scan(&cronogram.ID)
	if err != nil {
		return fmt.Errorf("insert cronogram: %w", err)
	}
	return nil
}

// GetCronogramByID retrieves a cronogram with its activities hydrated
// through a follow-up query; a missing row yields (nil, nil).
func GetCronogramByID(db *sql.DB, id int) (*models.ActivityCronogram, error) {
	cronogram := &models.ActivityCronogram{}
	query := `SELECT id, start_date, end_date FROM cronograms WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&cronogram.ID, &cronogram.StartDate, &cronogram.EndDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cronogram: %w", err)
	}

	cronogram.Activities, err = GetCronogramActivities(db, id)
	if err != nil {
		return nil, err
	}
	return cronogram, nil
}

// GetAllCronograms retrieves every cronogram ordered by start date,
// without hydrating activities.
func GetAllCronograms(db *sql.DB) ([]models.ActivityCronogram, error) {
	rows, err := db.Query(`SELECT id, start_date, end_date FROM cronograms ORDER BY start_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query cronograms: %w", err)
	}
	defer rows.Close()

	cronograms := []models.ActivityCronogram{}
	for rows.Next() {
		var c models.ActivityCronogram
		if err := rows.Scan(&c.ID, &c.StartDate, &c.EndDate); err != nil {
			return nil, fmt.Errorf("query cronograms: %w", err)
		}
		cronograms = append(cronograms, c)
	}
	return cronograms, rows.Err()
}

// UpdateCronogram rewrites a cronogram's date range by id. It reports
// whether a row matched.
func UpdateCronogram(db *sql.DB, cronogram *models.ActivityCronogram) (bool, error) {
	res, err := db.Exec(`UPDATE cronograms SET start_date = $1, end_date = $2 WHERE id = $3`,
		cronogram.StartDate, cronogram.EndDate, cronogram.ID)
	if err != nil {
		return false, fmt.Errorf("update cronogram: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update cronogram: %w", err)
	}
	return affected > 0, nil
}

// DeleteCronogram removes a cronogram by id and reports whether a row
// matched. Association rows go with it.
func DeleteCronogram(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`DELETE FROM cronograms WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete cronogram: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete cronogram: %w", err)
	}
	return affected > 0, nil
}

// AddActivityToCronogram schedules an activity in a cronogram.
// Re-adding an already scheduled activity is a no-op.
func AddActivityToCronogram(db *sql.DB, cronogramID, activityID int) error {
	query := `INSERT INTO cronogram_activities (cronogram_id, activity_id) VALUES ($1, $2)
			  ON CONFLICT DO NOTHING`
	if _, err := db.Exec(query, cronogramID, activityID); err != nil {
		return fmt.Errorf("add activity to cronogram: %w", err)
	}
	return nil
}

// RemoveActivityFromCronogram unschedules an activity and reports
// whether a row matched.
func RemoveActivityFromCronogram(db *sql.DB, cronogramID, activityID int) (bool, error) {
	res, err := db.Exec(`DELETE FROM cronogram_activities WHERE cronogram_id = $1 AND activity_id = $2`,
		cronogramID, activityID)
	if err != nil {
		return false, fmt.Errorf("remove activity from cronogram: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove activity from cronogram: %w", err)
	}
	return affected > 0, nil
}

// GetCronogramActivities retrieves the activities scheduled in a
// cronogram ordered by start date.
func GetCronogramActivities(db *sql.DB, cronogramID int) ([]models.Activity, error) {
	query := `SELECT a.id, a.name, a.description, a.start_date, a.end_date, a.status
			  FROM cronogram_activities ca
			  JOIN activities a ON a.id = ca.activity_id
			  WHERE ca.cronogram_id = $1
			  ORDER BY a.start_date ASC, a.id ASC`
	return queryActivities(db, query, cronogramID)
}

// CronogramExists reports whether a cronogram row exists for the id.
func CronogramExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM cronograms WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("cronogram exists: %w", err)
	}
	return exists, nil
}

// CountCronograms returns the total number of cronogram rows.
func CountCronograms(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM cronograms`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cronograms: %w", err)
	}
	return count, nil
}
