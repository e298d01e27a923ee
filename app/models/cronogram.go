package models

import "time"

// ActivityCronogram is a date-bounded schedule grouping activities.
// Activities is hydrated on read from the association table.
type ActivityCronogram struct {
	ID         int        `json:"id"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	Activities []Activity `json:"activities,omitempty"`
}
