package models

import "time"

// Evaluation is an academic's grading of a presentation. Academic and
// Presentation are hydrated with follow-up lookups against their stores.
type Evaluation struct {
	ID           int           `json:"id"`
	Calification float64       `json:"calification" validate:"gte=0,lte=10"`
	Comments     string        `json:"comments"`
	Date         time.Time     `json:"date"`
	Academic     *Academic     `json:"academic,omitempty"`
	Presentation *Presentation `json:"presentation,omitempty"`
}
