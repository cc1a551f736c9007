// Package registration implements the student registration form as a
// renderer-independent state machine: a six-field record, a per-field
// validation schema, and a two-step cursor gating the second step behind
// the first step's validity.
package registration

import "fmt"

// Field names one slot of the registration record.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldStudentID       Field = "studentId"
	FieldYear            Field = "year"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields returns all fields in form order.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldEmail,
		FieldStudentID,
		FieldYear,
		FieldPassword,
		FieldConfirmPassword,
	}
}

// Known reports whether f is one of the six record fields.
func (f Field) Known() bool {
	switch f {
	case FieldName, FieldEmail, FieldStudentID, FieldYear, FieldPassword, FieldConfirmPassword:
		return true
	}
	return false
}

// Sensitive reports whether the field's value must never be logged or echoed.
func (f Field) Sensitive() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

// Step is the two-state cursor selecting which subset of fields is visible.
type Step int

const (
	StepFirst Step = iota
	StepSecond
)

func (s Step) String() string {
	switch s {
	case StepFirst:
		return "first"
	case StepSecond:
		return "second"
	default:
		return "unknown"
	}
}

// MarshalText encodes the step by name so snapshots stay readable.
func (s Step) MarshalText() ([]byte, error) {
	if s != StepFirst && s != StepSecond {
		return nil, fmt.Errorf("invalid step %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a step name produced by MarshalText.
func (s *Step) UnmarshalText(text []byte) error {
	switch string(text) {
	case "first":
		*s = StepFirst
	case "second":
		*s = StepSecond
	default:
		return fmt.Errorf("invalid step %q", string(text))
	}
	return nil
}

// Fields returns the fields that are visible and editable on this step.
func (s Step) Fields() []Field {
	switch s {
	case StepFirst:
		return []Field{FieldName, FieldEmail, FieldStudentID, FieldYear}
	case StepSecond:
		return []Field{FieldPassword, FieldConfirmPassword}
	default:
		return nil
	}
}

// StepOf returns the step a field belongs to.
func StepOf(f Field) Step {
	if f == FieldPassword || f == FieldConfirmPassword {
		return StepSecond
	}
	return StepFirst
}

// YearOptions are the accepted values for FieldYear, in display order.
var YearOptions = []string{"10", "11", "12"}

// Record is the registration payload under edit.
type Record struct {
	Name            string `json:"name" yaml:"name"`
	Email           string `json:"email" yaml:"email"`
	StudentID       string `json:"studentId" yaml:"studentId"`
	Year            string `json:"year" yaml:"year"`
	Password        string `json:"password" yaml:"password"`
	ConfirmPassword string `json:"confirmPassword" yaml:"confirmPassword"`
}

// Get returns the value stored for f, or "" for an unknown field.
func (r Record) Get(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldStudentID:
		return r.StudentID
	case FieldYear:
		return r.Year
	case FieldPassword:
		return r.Password
	case FieldConfirmPassword:
		return r.ConfirmPassword
	}
	return ""
}

// Set stores v for f. Unknown fields are ignored.
func (r *Record) Set(f Field, v string) {
	switch f {
	case FieldName:
		r.Name = v
	case FieldEmail:
		r.Email = v
	case FieldStudentID:
		r.StudentID = v
	case FieldYear:
		r.Year = v
	case FieldPassword:
		r.Password = v
	case FieldConfirmPassword:
		r.ConfirmPassword = v
	}
}
