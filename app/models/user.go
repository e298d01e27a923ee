package models

// User is the base person record every role entity extends.
type User struct {
	ID             int        `json:"id"`
	FullName       string     `json:"full_name" validate:"required"`
	CellPhone      string     `json:"cell_phone" validate:"required,number,len=10"`
	PhoneExtension *string    `json:"phone_extension,omitempty"`
	Status         UserStatus `json:"status"`
}

// Account maps a user to its login credentials. PasswordHash is
// only ever the bcrypt digest, never the plain secret.
type Account struct {
	UserID       int    `json:"user_id" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"-"`
}

// AccountUpdate describes a partial account update. A nil field
// means "leave the column untouched".
type AccountUpdate struct {
	Email    *string
	Password *string
}
