package widgets

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openflow/surface/internal/ui"
	"github.com/openflow/surface/internal/ui/focus"
)

// Input is a single-line text field backed by a bubbles textinput model.
type Input struct {
	id       string
	label    string
	Model    textinput.Model
	disabled bool
	hidden   bool
	tabIndex int
}

var _ focus.Focusable = (*Input)(nil)

// NewInput creates a labelled text input.
func NewInput(id, label, placeholder string) *Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = ui.InputCharLimit
	ti.SetWidth(ui.InputWidth)

	return &Input{id: id, label: label, Model: ti}
}

func (i *Input) ID() string     { return i.id }
func (i *Input) Focus()         { i.Model.Focus() }
func (i *Input) Blur()          { i.Model.Blur() }
func (i *Input) Focused() bool  { return i.Model.Focused() }
func (i *Input) Disabled() bool { return i.disabled }
func (i *Input) Hidden() bool   { return i.hidden }
func (i *Input) TabIndex() int  { return i.tabIndex }

// Text returns the current value for accessible-name resolution.
func (i *Input) Text() string { return i.Model.Value() }

// Value returns the current value.
func (i *Input) Value() string { return i.Model.Value() }

// SetValue replaces the current value.
func (i *Input) SetValue(v string) { i.Model.SetValue(v) }

// SetDisabled toggles the disabled state.
func (i *Input) SetDisabled(disabled bool) { i.disabled = disabled }

// SetHidden toggles visibility.
func (i *Input) SetHidden(hidden bool) { i.hidden = hidden }

// SetTabIndex sets the tab priority.
func (i *Input) SetTabIndex(idx int) { i.tabIndex = idx }

// Update delegates to the underlying textinput while focused.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	if !i.Model.Focused() || i.disabled {
		return nil
	}
	var cmd tea.Cmd
	i.Model, cmd = i.Model.Update(msg)
	return cmd
}

// View renders the label and the field, with a left border marking focus.
func (i *Input) View() string {
	if i.hidden {
		return ""
	}

	fieldStyle := ui.FieldBlurredStyle
	if i.Model.Focused() {
		fieldStyle = ui.FieldFocusedStyle
	}
	field := fieldStyle.Render(i.Model.View())

	if i.label == "" {
		return field
	}
	label := ui.LabelStyle.Render(i.label + ":")
	return lipgloss.JoinVertical(lipgloss.Left, label, field)
}
