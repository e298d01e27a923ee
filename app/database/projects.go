package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateProject inserts a new project and writes the generated id back.
// Titles are unique across the store.
func CreateProject(db *sql.DB, project *models.Project) error {
	var taken bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM projects WHERE title = $1)`, project.Title).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check title: %w", err)
	}
	if taken {
		return ErrDuplicateTitle
	}

	if project.Status == "" {
		project.Status = models.ProjectActive
	}

	query := `INSERT INTO projects (title, description, start_date, end_date, status, capacity, enrolled)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	err = db.QueryRow(query,
		project.Title, project.Description, project.StartDate, project.EndDate,
		project.Status, project.Capacity, project.Enrolled,
	).Scan(&project.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

const projectColumns = `id, title, description, start_date, end_date, status, capacity, enrolled`

func scanProject(row interface{ Scan(...any) error }, p *models.Project) error {
	return row.Scan(&p.ID, &p.Title, &p.Description, &p.StartDate, &p.EndDate,
		&p.Status, &p.Capacity, &p.Enrolled)
}

// GetProjectByID retrieves a project by id; a missing row yields
// (nil, nil).
func GetProjectByID(db *sql.DB, id int) (*models.Project, error) {
	project := &models.Project{}
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	err := scanProject(db.QueryRow(query, id), project)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

// GetProjectByTitle retrieves a project by its unique title; a missing
// row yields (nil, nil).
func GetProjectByTitle(db *sql.DB, title string) (*models.Project, error) {
	project := &models.Project{}
	query := `SELECT ` + projectColumns + ` FROM projects WHERE title = $1`

	err := scanProject(db.QueryRow(query, title), project)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

// GetAllProjects retrieves every project ordered by title.
func GetAllProjects(db *sql.DB) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY title ASC`
	return queryProjects(db, query)
}

// GetProjectsByStatus retrieves the projects with the given status.
func GetProjectsByStatus(db *sql.DB, status models.ProjectStatus) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE status = $1 ORDER BY title ASC`
	return queryProjects(db, query, status)
}

func queryProjects(db *sql.DB, query string, args ...any) ([]models.Project, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, fmt.Errorf("query projects: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProject rewrites a project's columns by id. It reports whether
// a row matched.
func UpdateProject(db *sql.DB, project *models.Project) (bool, error) {
	query := `UPDATE projects
			  SET title = $1, description = $2, start_date = $3, end_date = $4,
				  status = $5, capacity = $6, enrolled = $7
			  WHERE id = $8`
	res, err := db.Exec(query,
		project.Title, project.Description, project.StartDate, project.EndDate,
		project.Status, project.Capacity, project.Enrolled, project.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateTitle
		}
		return false, fmt.Errorf("update project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update project: %w", err)
	}
	return affected > 0, nil
}

// DeleteProject removes a project by id and reports whether a row
// matched.
func DeleteProject(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return affected > 0, nil
}

// IncrementProjectEnrollment takes one place on the project. It fails
// with ErrProjectFull when no free place is left and reports whether
// the project existed at all.
func IncrementProjectEnrollment(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`UPDATE projects SET enrolled = enrolled + 1
						 WHERE id = $1 AND enrolled < capacity`, id)
	if err != nil {
		return false, fmt.Errorf("increment enrollment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("increment enrollment: %w", err)
	}
	if affected > 0 {
		return true, nil
	}

	exists, err := ProjectExists(db, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	return false, ErrProjectFull
}

// DecrementProjectEnrollment frees one place on the project, never
// dropping the counter below zero. It reports whether a row matched.
func DecrementProjectEnrollment(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec(`UPDATE projects SET enrolled = enrolled - 1
						 WHERE id = $1 AND enrolled > 0`, id)
	if err != nil {
		return false, fmt.Errorf("decrement enrollment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("decrement enrollment: %w", err)
	}
	return affected > 0, nil
}

// ProjectExists reports whether a project row exists for the id.
func ProjectExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("project exists: %w", err)
	}
	return exists, nil
}

// CountProjects returns the total number of project rows.
func CountProjects(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}
