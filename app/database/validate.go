package database

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// validEmail checks basic email shape before a query is ever issued.
func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// validPhone accepts exactly ten digits, the national cell format.
func validPhone(phone string) bool {
	return validate.Var(phone, "required,number,len=10") == nil
}
