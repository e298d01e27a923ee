package models

// Representative is an organization's contact person. OrganizationID is
// nil until the representative is assigned to an organization.
type Representative struct {
	ID             int                 `json:"id"`
	FullName       string              `json:"full_name" validate:"required"`
	Email          string              `json:"email" validate:"required,email"`
	CellPhone      string              `json:"cell_phone" validate:"required,number,len=10"`
	OrganizationID *int                `json:"organization_id,omitempty"`
	Organization   *LinkedOrganization `json:"organization,omitempty"`
}
