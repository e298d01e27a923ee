package database

import (
	"database/sql"
	"fmt"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

// CreateGroup inserts a new group keyed on its NRC.
func CreateGroup(db *sql.DB, group *models.Group) error {
	var taken bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM work_groups WHERE nrc = $1)`, group.NRC).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check nrc: %w", err)
	}
	if taken {
		return ErrDuplicateNRC
	}

	var academicID *int
	if group.Academic != nil {
		academicID = &group.Academic.ID
	}

	_, err = db.Exec(`INSERT INTO work_groups (nrc, name, academic_id) VALUES ($1, $2, $3)`,
		group.NRC, group.Name, academicID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateNRC
		}
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// GetGroupByNRC retrieves a group with its assigned academic and member
// students hydrated; a missing row yields (nil, nil).
func GetGroupByNRC(db *sql.DB, nrc int) (*models.Group, error) {
	group := &models.Group{}
	var academicID *int

	query := `SELECT nrc, name, academic_id FROM work_groups WHERE nrc = $1`
	err := db.QueryRow(query, nrc).Scan(&group.NRC, &group.Name, &academicID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}

	if academicID != nil {
		group.Academic, err = GetAcademicByUserID(db, *academicID)
		if err != nil {
			return nil, err
		}
	}

	group.Students, err = GetGroupStudents(db, nrc)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// GetAllGroups retrieves every group ordered by NRC, with assigned
// academics hydrated. Member students are loaded on demand through
// GetGroupStudents.
func GetAllGroups(db *sql.DB) ([]models.Group, error) {
	rows, err := db.Query(`SELECT nrc, name, academic_id FROM work_groups ORDER BY nrc ASC`)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	type row struct {
		group      models.Group
		academicID *int
	}
	scanned := []row{}
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.group.NRC, &r.group.Name, &r.academicID); err != nil {
			return nil, fmt.Errorf("query groups: %w", err)
		}
		scanned = append(scanned, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	groups := []models.Group{}
	for _, r := range scanned {
		if r.academicID != nil {
			r.group.Academic, err = GetAcademicByUserID(db, *r.academicID)
			if err != nil {
				return nil, err
			}
		}
		groups = append(groups, r.group)
	}
	return groups, nil
}

// UpdateGroup rewrites a group's name and assigned academic. It reports
// whether a row matched the NRC.
func UpdateGroup(db *sql.DB, group *models.Group) (bool, error) {
	var academicID *int
	if group.Academic != nil {
		academicID = &group.Academic.ID
	}

	res, err := db.Exec(`UPDATE work_groups SET name = $1, academic_id = $2 WHERE nrc = $3`,
		group.Name, academicID, group.NRC)
	if err != nil {
		return false, fmt.Errorf("update group: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update group: %w", err)
	}
	return affected > 0, nil
}

// DeleteGroup removes a group by NRC. A group that still has member
// students fails with ErrGroupNotEmpty and nothing is mutated.
func DeleteGroup(db *sql.DB, nrc int) (bool, error) {
	var members int
	err := db.QueryRow(`SELECT COUNT(*) FROM group_students WHERE nrc = $1`, nrc).Scan(&members)
	if err != nil {
		return false, fmt.Errorf("count group members: %w", err)
	}
	if members > 0 {
		return false, ErrGroupNotEmpty
	}

	res, err := db.Exec(`DELETE FROM work_groups WHERE nrc = $1`, nrc)
	if err != nil {
		return false, fmt.Errorf("delete group: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete group: %w", err)
	}
	return affected > 0, nil
}

// AddStudentToGroup enrolls a student in a group. Re-adding an existing
// member is a no-op.
func AddStudentToGroup(db *sql.DB, nrc, studentID int) error {
	query := `INSERT INTO group_students (nrc, student_id) VALUES ($1, $2)
			  ON CONFLICT DO NOTHING`
	if _, err := db.Exec(query, nrc, studentID); err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("add student to group: %w", err)
	}
	return nil
}

// RemoveStudentFromGroup drops a student's membership and reports
// whether a row matched.
func RemoveStudentFromGroup(db *sql.DB, nrc, studentID int) (bool, error) {
	res, err := db.Exec(`DELETE FROM group_students WHERE nrc = $1 AND student_id = $2`, nrc, studentID)
	if err != nil {
		return false, fmt.Errorf("remove student from group: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove student from group: %w", err)
	}
	return affected > 0, nil
}

// GetGroupStudents retrieves the member students of a group ordered by
// full name.
func GetGroupStudents(db *sql.DB, nrc int) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + `
			  FROM group_students gs
			  JOIN students s ON s.user_id = gs.student_id
			  JOIN users u ON u.id = s.user_id
			  WHERE gs.nrc = $1
			  ORDER BY u.full_name ASC`
	return queryStudents(db, query, nrc)
}

// GroupExists reports whether a group row exists for the NRC.
func GroupExists(db *sql.DB, nrc int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM work_groups WHERE nrc = $1)`, nrc).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("group exists: %w", err)
	}
	return exists, nil
}

// CountGroups returns the total number of group rows.
func CountGroups(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM work_groups`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return count, nil
}
