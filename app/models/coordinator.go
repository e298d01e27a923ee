package models

// Coordinator is the User who administers the capstone program.
type Coordinator struct {
	User
	StaffNumber string `json:"staff_number" validate:"required"`
}
