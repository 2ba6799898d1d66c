package signup

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const minPasswordLength = 6

//User is the account record handed to Storage once a Draft passes validation.
// Password is kept exactly as typed.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

//Draft holds the form input that has not been persisted yet
type Draft struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

var (
	ErrMissingFields    = errors.New("missing fields")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrPasswordTooShort = errors.New("password too short")
	ErrDuplicateAccount = errors.New("duplicate account")
	ErrStorage          = errors.New("storage failure")
	ErrSubmitInProgress = errors.New("submit in progress")
)

//Validate runs the field checks in order and returns the first failure.
func (d Draft) Validate() error {
	if isBlank(d.Name) || isBlank(d.Email) || isBlank(d.Password) || isBlank(d.ConfirmPassword) {
		return ErrMissingFields
	}

	if d.Password != d.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if utf8.RuneCountInString(d.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

//User builds the record to persist: name and email trimmed, password untouched
func (d Draft) User() User {
	return User{
		Name:     strings.TrimSpace(d.Name),
		Email:    strings.TrimSpace(d.Email),
		Password: d.Password,
	}
}

//PasswordStrength labels a password by length only.
func PasswordStrength(password string) string {
	n := utf8.RuneCountInString(password)
	switch {
	case n == 0:
		return ""
	case n < minPasswordLength:
		return "Weak"
	case n < 10:
		return "Medium"
	default:
		return "Strong"
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
