package database

import (
	"errors"

	"github.com/lib/pq"
)

// Business-rule failures surfaced to callers. Anything else coming out
// of this package is a store fault wrapped with %w.
var (
	ErrInvalidPhone              = errors.New("phone number must be ten digits")
	ErrInvalidEmail              = errors.New("email address is malformed")
	ErrDuplicatePhone            = errors.New("phone number already registered")
	ErrDuplicateEmail            = errors.New("email already registered")
	ErrDuplicateEnrollment       = errors.New("enrollment number already registered")
	ErrDuplicateStaffNumber      = errors.New("staff number already registered")
	ErrDuplicateNRC              = errors.New("group NRC already registered")
	ErrDuplicateTitle            = errors.New("project title already registered")
	ErrDuplicateOrganizationName = errors.New("organization name already registered")
	ErrUserNotFound              = errors.New("backing user does not exist")
	ErrGroupNotEmpty             = errors.New("group still has member students")
	ErrProjectFull               = errors.New("project has no free places")
)

// isUniqueViolation reports whether err is the driver's unique_violation.
// The stores pre-check uniqueness before writing; this catches the race
// the pre-check cannot.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
