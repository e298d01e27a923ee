package models

import "time"

// Presentation is a project defense given by a student.
// Student is hydrated with a follow-up lookup against the student store.
type Presentation struct {
	ID      int              `json:"id"`
	Date    time.Time        `json:"date"`
	Type    PresentationType `json:"type"`
	Student *Student         `json:"student,omitempty"`
}
