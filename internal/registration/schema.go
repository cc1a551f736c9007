package registration

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Result is the tagged outcome of applying a rule: Valid, or Invalid with a
// reason suitable for display beneath the field.
type Result struct {
	invalid bool
	reason  string
}

// Valid returns a passing result.
func Valid() Result { return Result{} }

// Invalid returns a failing result carrying reason.
func Invalid(reason string) Result { return Result{invalid: true, reason: reason} }

// OK reports whether the value passed its rule.
func (r Result) OK() bool { return !r.invalid }

// Reason returns the failure message, or "" for a valid result.
func (r Result) Reason() string { return r.reason }

// Rule validates a single field value.
type Rule func(value string) Result

// rule declares a field's constraints as a validator tag plus the message
// shown for each tag that can fail. "*" is the fallback message.
type rule struct {
	tag      string
	messages map[string]string
}

var rules = map[Field]rule{
	FieldName: {
		tag:      "required",
		messages: map[string]string{"*": "Name is required"},
	},
	FieldEmail: {
		tag: "required,email",
		messages: map[string]string{
			"required": "Email is required",
			"*":        "Invalid email address",
		},
	},
	FieldStudentID: {
		tag:      "required",
		messages: map[string]string{"*": "Student ID is required"},
	},
	FieldYear: {
		tag:      "required,oneof=10 11 12",
		messages: map[string]string{"*": "Please select a valid year"},
	},
	FieldPassword: {
		tag:      "required",
		messages: map[string]string{"*": "Password is required"},
	},
	FieldConfirmPassword: {
		tag:      "required",
		messages: map[string]string{"*": "Please confirm your password"},
	},
}

// Schema maps every field to its structural rule. It holds no state beyond
// the compiled rules; cross-field consistency is not its concern.
type Schema struct {
	rules map[Field]Rule
}

// NewSchema builds the registration schema on top of a validator instance.
func NewSchema() *Schema {
	v := validator.New()
	s := &Schema{rules: make(map[Field]Rule, len(rules))}
	for f, r := range rules {
		s.rules[f] = tagRule(v, r)
	}
	return s
}

func tagRule(v *validator.Validate, r rule) Rule {
	return func(value string) Result {
		err := v.Var(value, r.tag)
		if err == nil {
			return Valid()
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			if msg, ok := r.messages[verrs[0].Tag()]; ok {
				return Invalid(msg)
			}
		}
		return Invalid(r.messages["*"])
	}
}

// Rule returns the rule for f.
func (s *Schema) Rule(f Field) (Rule, bool) {
	r, ok := s.rules[f]
	return r, ok
}

// Check applies f's rule to value.
func (s *Schema) Check(f Field, value string) Result {
	r, ok := s.rules[f]
	if !ok {
		return Invalid("Unknown field")
	}
	return r(value)
}

// CheckRecord validates all six fields of rec.
func (s *Schema) CheckRecord(rec Record) map[Field]Result {
	out := make(map[Field]Result, len(s.rules))
	for _, f := range Fields() {
		out[f] = s.Check(f, rec.Get(f))
	}
	return out
}
