package userform

import (
	"regexp"
	"strings"
)

// Validation messages surfaced next to their controls.
const (
	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Email is invalid"
	MsgPasswordTooShort  = "Password must be at least 6 characters"
	MsgPasswordMismatch  = "Passwords do not match"
)

const minPasswordLength = 6

// A permissive structural check, deliberately far from full RFC validation.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate runs every applicable rule independently (no short-circuiting
// between fields) and returns the field→message map, or nil when the record
// is clean. Callers rely on nil to mean "proceed". The password rules only
// run when a password was entered, so "leave blank to keep the current
// password" stays valid on update.
func Validate(form FormUser) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(form.FirstName) == "" {
		errs[FieldFirstName] = MsgFirstNameRequired
	}
	if strings.TrimSpace(form.LastName) == "" {
		errs[FieldLastName] = MsgLastNameRequired
	}
	switch {
	case strings.TrimSpace(form.Email) == "":
		errs[FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(form.Email):
		errs[FieldEmail] = MsgEmailInvalid
	}
	if form.Password != "" {
		if len(form.Password) < minPasswordLength {
			errs[FieldPassword] = MsgPasswordTooShort
		}
		if form.PasswordConfirm != form.Password {
			errs[FieldPasswordConfirm] = MsgPasswordMismatch
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
