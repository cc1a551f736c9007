// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// CommonKeys are bindings shared by every screen.
type CommonKeys struct {
	Enter       key.Binding
	Escape      key.Binding
	Quit        key.Binding
	ToggleTheme key.Binding
}

// FormKeys are the registration form bindings.
type FormKeys struct {
	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextStep  key.Binding
	GoBack    key.Binding
	Submit    key.Binding
}

// Common holds the shared bindings.
var Common = CommonKeys{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	ToggleTheme: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "theme"),
	),
}

// Form holds the registration form bindings. j/k are deliberately absent
// from Up/Down so they can be typed into text fields.
var Form = FormKeys{
	NextField: key.NewBinding(
		key.WithKeys("tab", "ctrl+n"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "ctrl+p"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "right"),
	),
	NextStep: key.NewBinding(
		key.WithKeys("ctrl+right"),
		key.WithHelp("ctrl+→", "next step"),
	),
	GoBack: key.NewBinding(
		key.WithKeys("ctrl+left"),
		key.WithHelp("ctrl+←", "go back"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit"),
	),
}

// FormHelp adapts the form bindings to help.KeyMap for the card footer.
// Step one shows "next step"; step two shows "go back" and "submit".
type FormHelp struct {
	SecondStep bool
}

// ShortHelp implements help.KeyMap.
func (h FormHelp) ShortHelp() []key.Binding {
	if h.SecondStep {
		return []key.Binding{Form.NextField, Form.GoBack, Form.Submit}
	}
	return []key.Binding{Form.NextField, Form.NextStep, Common.Quit}
}

// FullHelp implements help.KeyMap.
func (h FormHelp) FullHelp() [][]key.Binding {
	more := []key.Binding{Form.PrevField, Form.Up, Form.Down, Common.Enter, Common.ToggleTheme}
	if h.SecondStep {
		more = append(more, Common.Quit)
	}
	return [][]key.Binding{h.ShortHelp(), more}
}
