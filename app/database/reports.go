package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateReport inserts a student's work report and writes the generated
// id back.
func CreateReport(db *sql.DB, report *models.Report) error {
	if report.Student == nil {
		return ErrUserNotFound
	}

	query := `INSERT INTO reports (report_date, hours, report_type, student_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	err := db.QueryRow(query,
		report.Date, report.Hours, report.Type, report.Student.ID,
	).Scan(&report.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetReportByID retrieves a report with its owning student hydrated; a
// missing row yields (nil, nil).
func GetReportByID(db *sql.DB, id int) (*models.Report, error) {
	report := &models.Report{}
	var studentID int

	query := `SELECT id, report_date, hours, report_type, student_id FROM reports WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&report.ID, &report.Date, &report.Hours, &report.Type, &studentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	report.Student, err = GetStudentByUserID(db, studentID)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// GetAllReports retrieves every report ordered by date.
func GetAllReports(db *sql.DB) ([]models.Report, error) {
	query := `SELECT id, report_date, hours, report_type, student_id
			  FROM reports ORDER BY report_date ASC, id ASC`
	return queryReports(db, query)
}

// GetReportsByStudent retrieves a student's reports ordered by date.
func GetReportsByStudent(db *sql.DB, studentID int) ([]models.Report, error) {
	query := `SELECT id, report_date, hours, report_type, student_id
			  FROM reports WHERE student_id = $1
			  ORDER BY report_date ASC, id ASC`
	return queryReports(db, query, studentID)
}

// GetReportsByType retrieves the reports of the given kind ordered by
// date.
func GetReportsByType(db *sql.DB, reportType models.ReportType) ([]models.Report, error) {
	query := `SELECT id, report_date, hours, report_type, student_id
			  FROM reports WHERE report_type = $1
			  ORDER BY report_date ASC, id ASC`
	return queryReports(db, query, reportType)
}

func queryReports(db *sql.DB, query string, args ...any) ([]models.Report, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	type row struct {
		report    models.Report
		studentID int
	}
	scanned := []row{}
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.report.ID, &r.report.Date, &r.report.Hours, &r.report.Type, &r.studentID); err != nil {
			return nil, fmt.Errorf("query reports: %w", err)
		}
		scanned = append(scanned, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reports := []models.Report{}
	for _, r := range scanned {
		student, err := GetStudentByUserID(db, r.studentID)
		if err != nil {
			return nil, err
		}
		r.report.Student = student
		reports = append(reports, r.report)
	}
	return reports, nil
}

// UpdateReport rewrites a report's columns by id. It reports whether a
// row matched.
func UpdateReport(db *sql.DB, report *models.Report) (bool, error) {
	if report.Student == nil {
		return false, ErrUserNotFound
	}

	query := `UPDATE reports
			  SET report_date = $1, hours = $2, report_type = $3, student_id = $4
			  WHERE id = $5`
	res, err := db.Exec(query,
		report.Date, report.Hours, report.Type, report.Student.ID, report.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("update report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update report: %w", err)
	}
	return affected > 0, nil
}

// DeleteReport removes a report by id and reports whether a row
// matched.
func DeleteReport(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}
	return affected > 0, nil
}

// ReportExists reports whether a report row exists for the id.
func ReportExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM reports WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("report exists: %w", err)
	}
	return exists, nil
}

// CountReports returns the total number of report rows.
func CountReports(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM reports`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return count, nil
}
