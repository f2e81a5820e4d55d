package widgets

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openflow/surface/internal/ui"
	"github.com/openflow/surface/internal/ui/focus"
)

// TextArea is a multi-line text field backed by a bubbles textarea model.
type TextArea struct {
	id       string
	label    string
	Model    textarea.Model
	disabled bool
	hidden   bool
	tabIndex int
}

var _ focus.Focusable = (*TextArea)(nil)

// NewTextArea creates a labelled multi-line input.
func NewTextArea(id, label, placeholder string) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.SetHeight(5)
	ta.SetWidth(ui.InputWidth)
	ta.ShowLineNumbers = false
	ta.Prompt = ""

	return &TextArea{id: id, label: label, Model: ta}
}

func (t *TextArea) ID() string     { return t.id }
func (t *TextArea) Focus()         { t.Model.Focus() }
func (t *TextArea) Blur()          { t.Model.Blur() }
func (t *TextArea) Focused() bool  { return t.Model.Focused() }
func (t *TextArea) Disabled() bool { return t.disabled }
func (t *TextArea) Hidden() bool   { return t.hidden }
func (t *TextArea) TabIndex() int  { return t.tabIndex }

// Text returns the current value for accessible-name resolution.
func (t *TextArea) Text() string { return t.Model.Value() }

// Value returns the current value.
func (t *TextArea) Value() string { return t.Model.Value() }

// SetValue replaces the current value.
func (t *TextArea) SetValue(v string) { t.Model.SetValue(v) }

// SetDisabled toggles the disabled state.
func (t *TextArea) SetDisabled(disabled bool) { t.disabled = disabled }

// SetHidden toggles visibility.
func (t *TextArea) SetHidden(hidden bool) { t.hidden = hidden }

// SetTabIndex sets the tab priority.
func (t *TextArea) SetTabIndex(i int) { t.tabIndex = i }

// Update delegates to the underlying textarea while focused.
func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	if !t.Model.Focused() || t.disabled {
		return nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return cmd
}

// View renders the label and the text area.
func (t *TextArea) View() string {
	if t.hidden {
		return ""
	}
	if t.label == "" {
		return t.Model.View()
	}
	label := ui.LabelStyle.Render(t.label + ":")
	return lipgloss.JoinVertical(lipgloss.Left, label, t.Model.View())
}
