package models

// Academic is a User on the academic staff, optionally acting as an
// evaluator or experiencia educativa (EE) teacher.
type Academic struct {
	User
	StaffNumber string       `json:"staff_number" validate:"required"`
	Type        AcademicType `json:"type"`
}
