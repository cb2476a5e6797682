// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the session, the view and every storage backend can all import types
// without depending on each other.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Delimiter separates the fields of one record in the roster file.
// It lives here, next to the model, because the validation rules below
// must guarantee that no field can ever contain it.
const Delimiter = "::"

// Student represents one entry of the class roster.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (used by the SQLite backend's debug logging and by tests).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "required" means the field must be non-empty;
//     "rosterfield" is our own rule registered in NewValidator.
type Student struct {
	StudentID string `json:"student_id" validate:"required,rosterfield"`
	FirstName string `json:"first_name" validate:"rosterfield"`
	LastName  string `json:"last_name"  validate:"rosterfield"`
	Cohort    string `json:"cohort"     validate:"rosterfield"`
}

// Fields returns the record in its persisted column order:
// studentId, firstName, lastName, cohort.
func (s Student) Fields() []string {
	return []string{s.StudentID, s.FirstName, s.LastName, s.Cohort}
}

// ValidField reports whether v can be stored as one field of a roster
// line without ambiguity. A field must not contain the delimiter or a
// line break, and must not end with ':' (it would fuse with the
// delimiter that follows it).
func ValidField(v string) bool {
	if strings.Contains(v, Delimiter) || strings.ContainsAny(v, "\r\n") {
		return false
	}
	return !strings.HasSuffix(v, ":")
}

// Valid reports whether every field of s passes ValidField and the id
// is non-empty. Backends use it as a last guard; user input is checked
// earlier with NewValidator so the user gets field-level messages.
func (s Student) Valid() bool {
	if s.StudentID == "" {
		return false
	}
	for _, f := range s.Fields() {
		if !ValidField(f) {
			return false
		}
	}
	return true
}

// NewValidator returns a validator with the "rosterfield" rule registered.
//
// validator.New() on its own only knows the built-in tags (required,
// email, min, ...). RegisterValidation adds a custom tag whose function
// receives the field being checked and returns true when it is valid.
func NewValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for an empty tag name or a nil
	// function, neither of which can happen here.
	_ = v.RegisterValidation("rosterfield", func(fl validator.FieldLevel) bool {
		return ValidField(fl.Field().String())
	})
	return v
}
