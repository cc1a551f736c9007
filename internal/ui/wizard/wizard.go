// Package wizard is the two-step registration card. It renders the fields
// of the current step, forwards edits to a registration.Controller and
// slides between steps when the controller's cursor moves.
package wizard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/enroll/internal/keys"
	"github.com/zjrosen/enroll/internal/log"
	"github.com/zjrosen/enroll/internal/registration"
	"github.com/zjrosen/enroll/internal/ui/slider"
)

// DefaultCardWidth is used when Config.CardWidth is unset.
const DefaultCardWidth = 54

// AcceptedMsg is sent once the controller accepts a submission.
type AcceptedMsg struct {
	Record       registration.Record
	SubmissionID string
}

// MismatchMsg is sent when a submit fails only because the passwords differ.
type MismatchMsg struct{}

// Config configures the wizard.
type Config struct {
	CardWidth       int
	AnimationFrames int
	Animate         bool
	// Submitter receives the record of an accepted submission.
	Submitter registration.Submitter
}

// button identifies one of the card's action buttons.
type button int

const (
	buttonBack button = iota
	buttonNext
	buttonSubmit
)

func (b button) label() string {
	switch b {
	case buttonBack:
		return "← Go Back"
	case buttonNext:
		return "Next step →"
	default:
		return "Submit"
	}
}

// Model is the registration card state.
type Model struct {
	ctrl   *registration.Controller
	fields []fieldState // registration.Fields order

	// focus indexes the current step's focus ring: its fields, then its
	// buttons.
	focus int

	slider    slider.Model
	help      help.Model
	cardWidth int
	done      bool
}

// New creates the card on step one with focus on the first field.
func New(cfg Config) Model {
	width := cfg.CardWidth
	if width <= 0 {
		width = DefaultCardWidth
	}

	var opts []registration.Option
	if cfg.Submitter != nil {
		opts = append(opts, registration.WithSubmitter(cfg.Submitter))
	}

	m := Model{
		ctrl:      registration.NewController(opts...),
		slider:    slider.New(cfg.AnimationFrames, cfg.Animate).SetWidth(paneWidth(width)),
		help:      help.New(),
		cardWidth: width,
	}
	for _, fc := range formFields() {
		m.fields = append(m.fields, newFieldState(fc, paneWidth(width)-5))
	}
	m.fields[0].focus()
	return m
}

// Init returns the cursor blink command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Controller exposes the underlying state machine.
func (m Model) Controller() *registration.Controller { return m.ctrl }

// Width returns the rendered card width.
func (m Model) Width() int { return m.cardWidth }

// Sliding reports whether a step transition animation is running.
func (m Model) Sliding() bool { return m.slider.Animating() }

// Update handles messages for the card.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case slider.FrameMsg:
		var cmd tea.Cmd
		m.slider, cmd = m.slider.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.done {
			return m, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			return m.handleClick(msg)
		}
		return m, nil
	}

	// Cursor blink and other input messages
	if fs := m.focusedField(); fs != nil && fs.config.kind == kindText {
		var cmd tea.Cmd
		fs.input, cmd = fs.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	step := m.ctrl.Step()
	fs := m.focusedField()

	switch {
	case key.Matches(msg, keys.Form.NextField):
		return m.moveFocus(1)

	case key.Matches(msg, keys.Form.PrevField):
		return m.moveFocus(-1)

	case key.Matches(msg, keys.Form.NextStep):
		if step == registration.StepFirst {
			return m.advance()
		}
		return m, nil

	case key.Matches(msg, keys.Form.GoBack):
		if step == registration.StepSecond {
			return m.retreat()
		}
		return m, nil

	case key.Matches(msg, keys.Form.Submit):
		if step == registration.StepSecond {
			return m.submit()
		}
		return m, nil

	case key.Matches(msg, keys.Form.Down):
		if fs != nil && fs.config.kind == kindSelect && fs.cursor < len(fs.config.options)-1 {
			fs.cursor++
			return m, nil
		}
		return m.moveFocus(1)

	case key.Matches(msg, keys.Form.Up):
		if fs != nil && fs.config.kind == kindSelect && fs.cursor > 0 {
			fs.cursor--
			return m, nil
		}
		return m.moveFocus(-1)

	case key.Matches(msg, keys.Form.Left), key.Matches(msg, keys.Form.Right):
		delta := 1
		if key.Matches(msg, keys.Form.Left) {
			delta = -1
		}
		if fs == nil {
			// Between buttons only; never wrap into the fields.
			if b := m.focus + delta; b >= m.buttonStart() && b < m.ringLen() {
				return m.setFocus(b), nil
			}
			return m, nil
		}
		if fs.config.kind == kindSelect {
			fs.cursor = min(max(fs.cursor+delta, 0), len(fs.config.options)-1)
			return m, nil
		}

	case key.Matches(msg, keys.Common.Enter):
		if b, ok := m.focusedButton(); ok {
			return m.activate(b)
		}
		if fs != nil && fs.config.kind == kindSelect {
			m.choose(fs)
		}
		return m.moveFocus(1)

	case msg.Type == tea.KeySpace && fs != nil && fs.config.kind == kindSelect:
		m.choose(fs)
		return m, nil
	}

	if fs != nil && fs.config.kind == kindText {
		before := fs.input.Value()
		var cmd tea.Cmd
		fs.input, cmd = fs.input.Update(msg)
		if after := fs.input.Value(); after != before {
			m.ctrl.SetField(fs.config.field, after)
		}
		return m, cmd
	}
	return m, nil
}

// choose selects the highlighted option of a select field.
func (m Model) choose(fs *fieldState) {
	if fs.cursor < 0 || fs.cursor >= len(fs.config.options) {
		return
	}
	m.ctrl.SetField(fs.config.field, fs.config.options[fs.cursor].value)
}

func (m Model) activate(b button) (Model, tea.Cmd) {
	switch b {
	case buttonBack:
		return m.retreat()
	case buttonNext:
		return m.advance()
	default:
		return m.submit()
	}
}

func (m Model) advance() (Model, tea.Cmd) {
	if !m.ctrl.Advance() {
		m = m.focusFirstInvalid()
		return m, nil
	}
	m = m.setFocus(0)
	return m.followStep(textinput.Blink)
}

func (m Model) retreat() (Model, tea.Cmd) {
	if !m.ctrl.Retreat() {
		return m, nil
	}
	m = m.setFocus(0)
	return m.followStep(textinput.Blink)
}

func (m Model) submit() (Model, tea.Cmd) {
	switch m.ctrl.Submit() {
	case registration.SubmitInvalid:
		m = m.focusFirstInvalid()
		return m.followStep(nil)

	case registration.SubmitPasswordMismatch:
		return m, func() tea.Msg { return MismatchMsg{} }

	default:
		m.done = true
		accepted := AcceptedMsg{Record: m.ctrl.Record(), SubmissionID: uuid.NewString()}
		log.Info(log.CatUI, "Registration accepted", "submissionId", accepted.SubmissionID)
		return m, func() tea.Msg { return accepted }
	}
}

// followStep slides to the pane of the controller's current step.
func (m Model) followStep(extra tea.Cmd) (Model, tea.Cmd) {
	target := slider.Left
	if m.ctrl.Step() == registration.StepSecond {
		target = slider.Right
	}
	var cmd tea.Cmd
	m.slider, cmd = m.slider.SlideTo(target)
	return m, tea.Batch(cmd, extra)
}

// focusItem is one stop of the focus ring: a field index or a button.
type focusItem struct {
	field  int // index into m.fields, -1 for buttons
	button button
}

// ring returns the focus ring of the current step.
func (m Model) ring() []focusItem {
	var items []focusItem
	for i, fs := range m.fields {
		if registration.StepOf(fs.config.field) == m.ctrl.Step() {
			items = append(items, focusItem{field: i})
		}
	}
	for _, b := range m.buttons() {
		items = append(items, focusItem{field: -1, button: b})
	}
	return items
}

func (m Model) ringLen() int { return len(m.ring()) }

// buttonStart is the ring index of the first button.
func (m Model) buttonStart() int {
	return m.ringLen() - len(m.buttons())
}

// buttons returns the actions shown on the current step.
func (m Model) buttons() []button {
	if m.ctrl.Step() == registration.StepSecond {
		return []button{buttonBack, buttonSubmit}
	}
	return []button{buttonNext}
}

// focusedField returns the focused field, or nil when a button has focus.
func (m Model) focusedField() *fieldState {
	ring := m.ring()
	if m.focus < 0 || m.focus >= len(ring) || ring[m.focus].field < 0 {
		return nil
	}
	return &m.fields[ring[m.focus].field]
}

// focusedButton returns the focused button, if a button has focus.
func (m Model) focusedButton() (button, bool) {
	ring := m.ring()
	if m.focus < 0 || m.focus >= len(ring) || ring[m.focus].field >= 0 {
		return 0, false
	}
	return ring[m.focus].button, true
}

// setFocus moves focus to ring index i, wrapping around.
func (m Model) setFocus(i int) Model {
	for idx := range m.fields {
		m.fields[idx].blur()
	}
	n := m.ringLen()
	m.focus = ((i % n) + n) % n
	if fs := m.focusedField(); fs != nil {
		fs.focus()
		if fs.config.kind == kindSelect {
			fs.syncCursor(m.ctrl.Value(fs.config.field))
		}
	}
	return m
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	m = m.setFocus(m.focus + delta)
	return m, textinput.Blink
}

// focusFirstInvalid focuses the first invalid field of the current step.
func (m Model) focusFirstInvalid() Model {
	for i, item := range m.ring() {
		if item.field < 0 {
			break
		}
		if !m.ctrl.Status(m.fields[item.field].config.field).Valid {
			return m.setFocus(i)
		}
	}
	return m.setFocus(0)
}

func (m Model) handleClick(msg tea.MouseMsg) (Model, tea.Cmd) {
	for i, item := range m.ring() {
		if item.field < 0 {
			if z := zone.Get(buttonZoneID(item.button)); z != nil && z.InBounds(msg) {
				m = m.setFocus(i)
				return m.activate(item.button)
			}
			continue
		}
		fs := &m.fields[item.field]
		for oi, o := range fs.config.options {
			if z := zone.Get(optionZoneID(fs.config.field, o.value)); z != nil && z.InBounds(msg) {
				m = m.setFocus(i)
				fs.cursor = oi
				m.choose(fs)
				return m, nil
			}
		}
		if z := zone.Get(fieldZoneID(fs.config.field)); z != nil && z.InBounds(msg) {
			m = m.setFocus(i)
			return m, textinput.Blink
		}
	}
	return m, nil
}
