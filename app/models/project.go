package models

import "time"

// Project is a capstone project offered by the program, with a bounded
// capacity of student places.
type Project struct {
	ID          int           `json:"id"`
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Status      ProjectStatus `json:"status"`
	Capacity    int           `json:"capacity" validate:"gte=0"`
	Enrolled    int           `json:"enrolled" validate:"gte=0"`
}
