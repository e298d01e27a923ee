package models

import "time"

// Activity is a unit of scheduled project work.
type Activity struct {
	ID          int            `json:"id"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Status      ActivityStatus `json:"status"`
}
