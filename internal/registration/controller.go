package registration

import (
	"errors"
	"strings"

	"github.com/zjrosen/enroll/internal/log"
)

// FieldStatus is the derived validation state of one field.
type FieldStatus struct {
	// Dirty is set once the user has edited the field.
	Dirty bool `json:"dirty" yaml:"dirty"`
	// Touched is set once validation has been triggered for the field, by
	// an edit, Advance, or Submit. Only touched fields show their message.
	Touched bool   `json:"touched" yaml:"touched"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Message returns the inline message to display, if any.
func (s FieldStatus) Message() string {
	if !s.Touched || s.Valid {
		return ""
	}
	return s.Error
}

// SubmitOutcome is the result of a submit attempt.
type SubmitOutcome int

const (
	// SubmitAccepted means the record was handed to the submitter.
	SubmitAccepted SubmitOutcome = iota
	// SubmitInvalid means at least one field failed its schema rule.
	SubmitInvalid
	// SubmitPasswordMismatch means every field was valid but the
	// confirmation differs from the password.
	SubmitPasswordMismatch
)

func (o SubmitOutcome) String() string {
	switch o {
	case SubmitAccepted:
		return "accepted"
	case SubmitInvalid:
		return "invalid"
	case SubmitPasswordMismatch:
		return "password_mismatch"
	default:
		return "unknown"
	}
}

// Submitter receives the finalized record of an accepted submission.
type Submitter interface {
	Submit(Record)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(Record)

// Submit calls f(rec).
func (f SubmitterFunc) Submit(rec Record) { f(rec) }

// State is a serializable snapshot of the controller.
type State struct {
	Step   Step                  `json:"step" yaml:"step"`
	Record Record                `json:"record" yaml:"record"`
	Status map[Field]FieldStatus `json:"status" yaml:"status"`
}

// Option configures a Controller.
type Option func(*Controller)

// WithSchema replaces the default schema.
func WithSchema(s *Schema) Option {
	return func(c *Controller) { c.schema = s }
}

// WithSubmitter sets the receiver of accepted submissions.
func WithSubmitter(s Submitter) Option {
	return func(c *Controller) { c.submitter = s }
}

// Controller owns the record, its field statuses, and the step cursor. All
// mutations go through SetField, Advance, Retreat and Submit.
//
// Controller is not safe for concurrent use; it is driven from a single
// event loop.
type Controller struct {
	schema    *Schema
	submitter Submitter

	record   Record
	status   map[Field]FieldStatus
	step     Step
	mismatch bool
}

// NewController returns a controller with an empty record on StepFirst.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		status: make(map[Field]FieldStatus, len(Fields())),
		step:   StepFirst,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.schema == nil {
		c.schema = NewSchema()
	}
	for _, f := range Fields() {
		res := c.schema.Check(f, "")
		c.status[f] = FieldStatus{Valid: res.OK(), Error: res.Reason()}
	}
	return c
}

// Step returns the current cursor.
func (c *Controller) Step() Step { return c.step }

// Record returns a copy of the record.
func (c *Controller) Record() Record { return c.record }

// Value returns the current value of f.
func (c *Controller) Value(f Field) string { return c.record.Get(f) }

// Status returns the status of f.
func (c *Controller) Status(f Field) FieldStatus { return c.status[f] }

// Visible reports whether f is editable on the current step.
func (c *Controller) Visible(f Field) bool {
	return f.Known() && StepOf(f) == c.step
}

// PasswordMismatch reports whether the last submit attempt failed the
// cross-field check and neither password field has changed since.
func (c *Controller) PasswordMismatch() bool { return c.mismatch }

// SetField stores value for f, marks it dirty and re-validates it. Edits to
// fields that are not on the current step are rejected.
func (c *Controller) SetField(f Field, value string) bool {
	if !c.Visible(f) {
		log.Debug(log.CatForm, "Rejected edit to hidden field", "field", f, "step", c.step)
		return false
	}
	c.record.Set(f, value)
	st := c.revalidate(f)
	st.Dirty = true
	c.status[f] = st
	if f == FieldPassword || f == FieldConfirmPassword {
		c.mismatch = false
	}
	return true
}

// revalidate applies f's rule to its current value and marks it touched.
func (c *Controller) revalidate(f Field) FieldStatus {
	res := c.schema.Check(f, c.record.Get(f))
	st := c.status[f]
	st.Touched = true
	st.Valid = res.OK()
	st.Error = res.Reason()
	c.status[f] = st
	return st
}

// Advance validates the step-one fields and moves to StepSecond when all of
// them are dirty and valid. It reports whether the cursor moved; from
// StepSecond it does nothing.
func (c *Controller) Advance() bool {
	if c.step != StepFirst {
		return false
	}
	ready := true
	for _, f := range StepFirst.Fields() {
		st := c.revalidate(f)
		if !st.Dirty || !st.Valid {
			ready = false
		}
	}
	if !ready {
		log.Debug(log.CatForm, "Advance blocked", "invalid", c.invalidFields(StepFirst))
		return false
	}
	c.step = StepSecond
	log.Debug(log.CatForm, "Advanced", "step", c.step)
	return true
}

// Retreat moves from StepSecond back to StepFirst. Values are kept.
func (c *Controller) Retreat() bool {
	if c.step != StepSecond {
		return false
	}
	c.step = StepFirst
	log.Debug(log.CatForm, "Retreated", "step", c.step)
	return true
}

// Submit validates all six fields, then checks that the confirmation matches
// the password. Only an accepted submission reaches the submitter, with a
// copy of the record.
//
// When a step-one field fails while the cursor is on StepSecond, the cursor
// rewinds to StepFirst so the failing field's message is on screen.
func (c *Controller) Submit() SubmitOutcome {
	c.mismatch = false

	invalid, rewind := false, false
	for _, f := range Fields() {
		if st := c.revalidate(f); !st.Valid {
			invalid = true
			rewind = rewind || StepOf(f) == StepFirst
		}
	}
	if invalid {
		if rewind {
			c.step = StepFirst
		}
		log.Debug(log.CatForm, "Submit rejected", "outcome", SubmitInvalid,
			"invalid", c.invalidFields(StepFirst, StepSecond))
		return SubmitInvalid
	}

	if c.record.Password != c.record.ConfirmPassword {
		c.mismatch = true
		log.Debug(log.CatForm, "Submit rejected", "outcome", SubmitPasswordMismatch)
		return SubmitPasswordMismatch
	}

	log.Info(log.CatForm, "Submit accepted", "studentId", c.record.StudentID)
	if c.submitter != nil {
		c.submitter.Submit(c.record)
	}
	return SubmitAccepted
}

// Err reports the current failures as an error: one *FieldError per touched
// invalid field, plus ErrPasswordMismatch after a mismatched submit. It
// returns nil when nothing is wrong.
func (c *Controller) Err() error {
	var errs []error
	for _, f := range Fields() {
		if msg := c.status[f].Message(); msg != "" {
			errs = append(errs, &FieldError{Field: f, Message: msg})
		}
	}
	if c.mismatch {
		errs = append(errs, ErrPasswordMismatch)
	}
	return errors.Join(errs...)
}

// State returns a snapshot safe to serialize or retain.
func (c *Controller) State() State {
	status := make(map[Field]FieldStatus, len(c.status))
	for f, st := range c.status {
		status[f] = st
	}
	return State{Step: c.step, Record: c.record, Status: status}
}

// invalidFields lists the invalid fields of steps for log output.
func (c *Controller) invalidFields(steps ...Step) string {
	var names []string
	for _, step := range steps {
		for _, f := range step.Fields() {
			if !c.status[f].Valid {
				names = append(names, string(f))
			}
		}
	}
	return strings.Join(names, ",")
}
