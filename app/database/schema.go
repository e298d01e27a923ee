package database

import (
	"database/sql"
	"fmt"
	"log"
)

// schemaStatements is applied in order; every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		cell_phone VARCHAR(10) NOT NULL UNIQUE,
		phone_extension VARCHAR(10),
		status VARCHAR(10) NOT NULL DEFAULT 'active'
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		enrollment VARCHAR(20) NOT NULL UNIQUE,
		grade NUMERIC(4,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS academics (
		user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		staff_number VARCHAR(20) NOT NULL UNIQUE,
		academic_type VARCHAR(20) NOT NULL DEFAULT 'none'
	)`,
	`CREATE TABLE IF NOT EXISTS coordinators (
		user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		staff_number VARCHAR(20) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS work_groups (
		nrc INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		academic_id INTEGER REFERENCES academics(user_id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS group_students (
		nrc INTEGER NOT NULL REFERENCES work_groups(nrc),
		student_id INTEGER NOT NULL REFERENCES students(user_id) ON DELETE CASCADE,
		PRIMARY KEY (nrc, student_id)
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status VARCHAR(10) NOT NULL DEFAULT 'active',
		capacity INTEGER NOT NULL DEFAULT 0,
		enrolled INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending'
	)`,
	`CREATE TABLE IF NOT EXISTS cronograms (
		id SERIAL PRIMARY KEY,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cronogram_activities (
		cronogram_id INTEGER NOT NULL REFERENCES cronograms(id) ON DELETE CASCADE,
		activity_id INTEGER NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		PRIMARY KEY (cronogram_id, activity_id)
	)`,
	`CREATE TABLE IF NOT EXISTS presentations (
		id SERIAL PRIMARY KEY,
		presented_at TIMESTAMPTZ NOT NULL,
		presentation_type VARCHAR(10) NOT NULL,
		student_id INTEGER NOT NULL REFERENCES students(user_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS evaluations (
		id SERIAL PRIMARY KEY,
		calification NUMERIC(4,2) NOT NULL DEFAULT 0,
		comments TEXT NOT NULL DEFAULT '',
		evaluated_at TIMESTAMPTZ NOT NULL,
		academic_id INTEGER NOT NULL REFERENCES academics(user_id) ON DELETE CASCADE,
		presentation_id INTEGER NOT NULL REFERENCES presentations(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS self_evaluations (
		id SERIAL PRIMARY KEY,
		feedback TEXT NOT NULL DEFAULT '',
		calification NUMERIC(4,2) NOT NULL DEFAULT 0,
		student_id INTEGER NOT NULL REFERENCES students(user_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id SERIAL PRIMARY KEY,
		report_date TIMESTAMPTZ NOT NULL,
		hours INTEGER NOT NULL DEFAULT 0,
		report_type VARCHAR(10) NOT NULL,
		student_id INTEGER NOT NULL REFERENCES students(user_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS linked_organizations (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		cell_phone VARCHAR(10) NOT NULL,
		phone_extension VARCHAR(10),
		department TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		status VARCHAR(10) NOT NULL DEFAULT 'active'
	)`,
	`CREATE TABLE IF NOT EXISTS representatives (
		id SERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		cell_phone VARCHAR(10) NOT NULL,
		organization_id INTEGER REFERENCES linked_organizations(id) ON DELETE SET NULL
	)`,
}

// EnsureSchema creates every table the stores rely on.
func EnsureSchema(db *sql.DB) error {
	log.Println("Ensuring database schema...")
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	log.Println("Database schema is up to date")
	return nil
}
