package models

// Student is a User enrolled in the capstone program. The role row is
// keyed 1:1 on the user table's primary key.
type Student struct {
	User
	Enrollment string  `json:"enrollment" validate:"required"`
	Grade      float64 `json:"grade" validate:"gte=0,lte=10"`
}
