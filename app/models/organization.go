package models

// LinkedOrganization is an external organization offering project places.
type LinkedOrganization struct {
	ID             int                `json:"id"`
	Name           string             `json:"name" validate:"required"`
	CellPhone      string             `json:"cell_phone" validate:"required,number,len=10"`
	PhoneExtension *string            `json:"phone_extension,omitempty"`
	Department     string             `json:"department"`
	Email          string             `json:"email" validate:"required,email"`
	Status         OrganizationStatus `json:"status"`
}
