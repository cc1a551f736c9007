package wizard

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/enroll/internal/registration"
	"github.com/zjrosen/enroll/internal/ui/slider"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

type recorder struct{ got []registration.Record }

func (r *recorder) Submit(rec registration.Record) { r.got = append(r.got, rec) }

func newTestModel(sub registration.Submitter) Model {
	return New(Config{CardWidth: 54, Submitter: sub})
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func plainView(m Model) string {
	return ansi.Strip(zone.Scan(m.View()))
}

// fillStepOne types valid values into every step-one field and selects
// "Year 11", leaving focus on the Next step button.
func fillStepOne(m Model) Model {
	m = typeText(m, "Ada Lovelace")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "ada@example.com")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "S100")
	m, _ = press(m, tea.KeyTab)
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyEnter) // selects and moves on
	return m
}

func toStepTwo(t *testing.T, m Model) Model {
	t.Helper()
	m = fillStepOne(m)
	m, _ = press(m, tea.KeyCtrlRight)
	require.Equal(t, registration.StepSecond, m.Controller().Step())
	return m
}

func TestNew_FocusesName(t *testing.T) {
	m := newTestModel(nil)

	fs := m.focusedField()
	require.NotNil(t, fs)
	require.Equal(t, registration.FieldName, fs.config.field)
	require.Equal(t, registration.StepFirst, m.Controller().Step())
}

func TestTyping_UpdatesController(t *testing.T) {
	m := typeText(newTestModel(nil), "Ada")

	require.Equal(t, "Ada", m.Controller().Value(registration.FieldName))
	require.True(t, m.Controller().Status(registration.FieldName).Dirty)
}

func TestSelect_YearWithKeys(t *testing.T) {
	m := newTestModel(nil)
	for range 3 {
		m, _ = press(m, tea.KeyTab)
	}
	require.Equal(t, registration.FieldYear, m.focusedField().config.field)

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeySpace)

	require.Equal(t, "12", m.Controller().Value(registration.FieldYear))
	require.Equal(t, registration.FieldYear, m.focusedField().config.field)
}

func TestAdvance_BlockedShowsMessages(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(m, tea.KeyCtrlRight)

	require.Equal(t, registration.StepFirst, m.Controller().Step())
	view := plainView(m)
	require.Contains(t, view, "Name is required")
	require.Contains(t, view, "Email is required")
	require.Contains(t, view, "Student ID is required")
	require.Contains(t, view, "Please select a valid year")
}

func TestAdvance_FocusesFirstInvalidField(t *testing.T) {
	m := typeText(newTestModel(nil), "Ada")
	m, _ = press(m, tea.KeyCtrlRight)

	require.Equal(t, registration.FieldEmail, m.focusedField().config.field)
}

func TestAdvance_ViaNextStepButton(t *testing.T) {
	m := fillStepOne(newTestModel(nil))
	b, ok := m.focusedButton()
	require.True(t, ok)
	require.Equal(t, buttonNext, b)

	m, _ = press(m, tea.KeyEnter)

	require.Equal(t, registration.StepSecond, m.Controller().Step())
	require.Equal(t, registration.FieldPassword, m.focusedField().config.field)
}

func TestStepPanes_OnlyCurrentStepVisible(t *testing.T) {
	m := newTestModel(nil)

	view := plainView(m)
	require.Contains(t, view, "Register")
	require.Contains(t, view, "Start the journey with us today.")
	require.Contains(t, view, "Full name")
	require.Contains(t, view, "This is your public display name.")
	require.Contains(t, view, "Next step")
	require.NotContains(t, view, "Confirm password")
	require.NotContains(t, view, "Submit")

	m = toStepTwo(t, m)
	view = plainView(m)
	require.Contains(t, view, "Confirm password")
	require.Contains(t, view, "Go Back")
	require.Contains(t, view, "Submit")
	require.NotContains(t, view, "Full name")
	require.NotContains(t, view, "Next step")
}

func TestPasswords_AreMasked(t *testing.T) {
	m := toStepTwo(t, newTestModel(nil))
	m = typeText(m, "Secret123")

	require.Equal(t, "Secret123", m.Controller().Value(registration.FieldPassword))
	require.NotContains(t, plainView(m), "Secret123")
}

func TestRetreat_KeepsValues(t *testing.T) {
	m := toStepTwo(t, newTestModel(nil))
	m = typeText(m, "Secret123")

	m, _ = press(m, tea.KeyCtrlLeft)

	require.Equal(t, registration.StepFirst, m.Controller().Step())
	require.Equal(t, "Ada Lovelace", m.Controller().Value(registration.FieldName))
	require.Equal(t, "Secret123", m.Controller().Value(registration.FieldPassword))
	require.Contains(t, plainView(m), "Ada Lovelace")
}

func TestSubmit_NotOnStepOne(t *testing.T) {
	rec := &recorder{}
	m := fillStepOne(newTestModel(rec))

	m, cmd := press(m, tea.KeyCtrlS)

	require.Nil(t, cmd)
	require.Empty(t, rec.got)
	require.Equal(t, registration.StepFirst, m.Controller().Step())
}

func TestSubmit_Mismatch(t *testing.T) {
	rec := &recorder{}
	m := toStepTwo(t, newTestModel(rec))
	m = typeText(m, "Secret123")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "Secret1234")

	m, cmd := press(m, tea.KeyCtrlS)

	require.NotNil(t, cmd)
	require.Equal(t, MismatchMsg{}, cmd())
	require.Empty(t, rec.got)
	require.Equal(t, registration.StepSecond, m.Controller().Step())
	require.Equal(t, "Secret1234", m.Controller().Value(registration.FieldConfirmPassword))
}

func TestSubmit_EmptyPasswordsStayOnStepTwo(t *testing.T) {
	m := toStepTwo(t, newTestModel(nil))

	m, _ = press(m, tea.KeyCtrlS)

	require.Equal(t, registration.StepSecond, m.Controller().Step())
	require.Contains(t, plainView(m), "Password is required")
	require.Equal(t, registration.FieldPassword, m.focusedField().config.field)
}

func TestSubmit_AcceptedOnce(t *testing.T) {
	rec := &recorder{}
	m := toStepTwo(t, newTestModel(rec))
	m = typeText(m, "Secret123")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "Secret123")

	m, cmd := press(m, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	accepted, ok := cmd().(AcceptedMsg)
	require.True(t, ok)
	require.NotEmpty(t, accepted.SubmissionID)
	require.Equal(t, registration.Record{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		StudentID:       "S100",
		Year:            "11",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
	}, accepted.Record)

	// Further input is ignored once accepted.
	_, cmd = press(m, tea.KeyCtrlS)
	require.Nil(t, cmd)
	require.Len(t, rec.got, 1)
	require.Equal(t, accepted.Record, rec.got[0])
}

func TestFocusRing_Wraps(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(m, tea.KeyShiftTab)
	b, ok := m.focusedButton()
	require.True(t, ok)
	require.Equal(t, buttonNext, b)

	m, _ = press(m, tea.KeyTab)
	require.Equal(t, registration.FieldName, m.focusedField().config.field)
}

func TestButtons_LeftRight(t *testing.T) {
	m := toStepTwo(t, newTestModel(nil))
	m, _ = press(m, tea.KeyShiftTab) // Submit

	b, _ := m.focusedButton()
	require.Equal(t, buttonSubmit, b)

	m, _ = press(m, tea.KeyLeft)
	b, _ = m.focusedButton()
	require.Equal(t, buttonBack, b)

	// Left on the first button stays put.
	m, _ = press(m, tea.KeyLeft)
	b, ok := m.focusedButton()
	require.True(t, ok)
	require.Equal(t, buttonBack, b)

	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, registration.StepFirst, m.Controller().Step())
}

func TestClick_NextStepButton(t *testing.T) {
	m := fillStepOne(newTestModel(nil))
	m, _ = press(m, tea.KeyShiftTab) // back onto a field

	z := waitForZone(t, m, buttonZoneID(buttonNext))
	m, _ = m.Update(tea.MouseMsg{
		X:      z.StartX + (z.EndX-z.StartX)/2,
		Y:      z.StartY,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})

	require.Equal(t, registration.StepSecond, m.Controller().Step())
}

func TestClick_YearOption(t *testing.T) {
	m := newTestModel(nil)

	z := waitForZone(t, m, optionZoneID(registration.FieldYear, "10"))
	m, _ = m.Update(tea.MouseMsg{
		X:      z.StartX + 1,
		Y:      z.StartY,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})

	require.Equal(t, "10", m.Controller().Value(registration.FieldYear))
	require.Equal(t, registration.FieldYear, m.focusedField().config.field)
}

// waitForZone renders until the zone manager has registered id.
func waitForZone(t *testing.T, m Model, id string) *zone.ZoneInfo {
	t.Helper()
	var z *zone.ZoneInfo
	for range 10 {
		_ = zone.Scan(m.View())
		z = zone.Get(id)
		if z != nil && !z.IsZero() {
			break
		}
		// Zone registration is asynchronous via a channel worker in bubblezone.
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, z)
	require.False(t, z.IsZero())
	return z
}

// settle runs slide frames until the animation finishes.
func settle(m Model, cmd tea.Cmd) Model {
	for i := 0; cmd != nil && i < 100; i++ {
		var next []tea.Cmd
		switch msg := cmd().(type) {
		case tea.BatchMsg:
			for _, c := range msg {
				if c == nil {
					continue
				}
				if f, ok := c().(slider.FrameMsg); ok {
					var n tea.Cmd
					m, n = m.Update(f)
					next = append(next, n)
				}
			}
		case slider.FrameMsg:
			var n tea.Cmd
			m, n = m.Update(msg)
			next = append(next, n)
		}
		cmd = tea.Batch(next...)
	}
	return m
}

func TestAdvance_AnimatesSlide(t *testing.T) {
	m := New(Config{CardWidth: 54, Animate: true, AnimationFrames: 4})
	m = fillStepOne(m)

	m, cmd := press(m, tea.KeyCtrlRight)
	require.True(t, m.Sliding())

	m = settle(m, cmd)

	require.False(t, m.Sliding())
	require.Contains(t, plainView(m), "Confirm password")
}
