package models

// Group is a class section identified by its NRC, holding the students
// enrolled in it and optionally the academic teaching it.
type Group struct {
	NRC      int       `json:"nrc" validate:"required"`
	Name     string    `json:"name" validate:"required"`
	Students []Student `json:"students,omitempty"`
	Academic *Academic `json:"academic,omitempty"`
}
