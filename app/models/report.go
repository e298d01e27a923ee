package models

import "time"

// Report is a student's periodic account of hours worked on the project.
type Report struct {
	ID      int        `json:"id"`
	Date    time.Time  `json:"date"`
	Hours   int        `json:"hours" validate:"gte=0"`
	Type    ReportType `json:"type"`
	Student *Student   `json:"student,omitempty"`
}
