package wizard

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/zjrosen/enroll/internal/registration"
)

// fieldKind determines how a field is edited and rendered.
type fieldKind int

const (
	kindText fieldKind = iota
	kindSelect
)

// option is one choice of a select field.
type option struct {
	label string
	value string
}

// fieldConfig is the static description of one form field.
type fieldConfig struct {
	field       registration.Field
	kind        fieldKind
	label       string
	description string // Muted line under the input
	placeholder string
	masked      bool
	options     []option
}

func yearOptions() []option {
	opts := make([]option, len(registration.YearOptions))
	for i, y := range registration.YearOptions {
		opts[i] = option{label: "Year " + y, value: y}
	}
	return opts
}

// formFields lists every field in registration.Fields order.
func formFields() []fieldConfig {
	return []fieldConfig{
		{
			field:       registration.FieldName,
			label:       "Full name",
			description: "This is your public display name.",
			placeholder: "Enter your name...",
		},
		{
			field:       registration.FieldEmail,
			label:       "Email",
			placeholder: "Enter your email...",
		},
		{
			field:       registration.FieldStudentID,
			label:       "Student ID",
			placeholder: "Enter your student id...",
		},
		{
			field:       registration.FieldYear,
			kind:        kindSelect,
			label:       "Year of study",
			placeholder: "Select your year of study",
			options:     yearOptions(),
		},
		{
			field:       registration.FieldPassword,
			label:       "Password",
			placeholder: "Enter your password...",
			masked:      true,
		},
		{
			field:       registration.FieldConfirmPassword,
			label:       "Confirm password",
			placeholder: "Please confirm your password...",
			masked:      true,
		},
	}
}

// fieldState holds runtime state for a field. Values live in the
// controller; the text input only mirrors them for editing.
type fieldState struct {
	config fieldConfig
	input  textinput.Model
	cursor int // Highlighted option of a select field
}

func newFieldState(cfg fieldConfig, width int) fieldState {
	fs := fieldState{config: cfg}
	if cfg.kind == kindText {
		ti := textinput.New()
		ti.Placeholder = cfg.placeholder
		ti.Prompt = ""
		ti.CharLimit = 128
		ti.Width = width
		if cfg.masked {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		fs.input = ti
	}
	return fs
}

func (fs *fieldState) focus() {
	if fs.config.kind == kindText {
		fs.input.Focus()
	}
}

func (fs *fieldState) blur() {
	if fs.config.kind == kindText {
		fs.input.Blur()
	}
}

// optionLabel returns the label of the option with value v.
func (fs *fieldState) optionLabel(v string) (string, bool) {
	for _, o := range fs.config.options {
		if o.value == v {
			return o.label, true
		}
	}
	return "", false
}

// syncCursor moves the select cursor onto the chosen value, if any.
func (fs *fieldState) syncCursor(v string) {
	for i, o := range fs.config.options {
		if o.value == v {
			fs.cursor = i
			return
		}
	}
}
