package widgets

import (
	tea "charm.land/bubbletea/v2"

	"github.com/openflow/surface/internal/keys"
	"github.com/openflow/surface/internal/ui"
	"github.com/openflow/surface/internal/ui/focus"
)

// Checkbox is a toggleable widget. Space flips it while focused.
type Checkbox struct {
	id       string
	label    string
	checked  bool
	focused  bool
	disabled bool
	hidden   bool
	tabIndex int
	onToggle func(checked bool)
}

var _ focus.Focusable = (*Checkbox)(nil)

// NewCheckbox creates a checkbox. onToggle may be nil.
func NewCheckbox(id, label string, checked bool, onToggle func(bool)) *Checkbox {
	return &Checkbox{id: id, label: label, checked: checked, onToggle: onToggle}
}

func (c *Checkbox) ID() string     { return c.id }
func (c *Checkbox) Focus()         { c.focused = true }
func (c *Checkbox) Blur()          { c.focused = false }
func (c *Checkbox) Focused() bool  { return c.focused }
func (c *Checkbox) Disabled() bool { return c.disabled }
func (c *Checkbox) Hidden() bool   { return c.hidden }
func (c *Checkbox) TabIndex() int  { return c.tabIndex }

// Text returns the checkbox label for accessible-name resolution.
func (c *Checkbox) Text() string { return c.label }

// Checked returns the current state.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the state without invoking the toggle callback.
func (c *Checkbox) SetChecked(checked bool) { c.checked = checked }

// SetDisabled toggles the disabled state.
func (c *Checkbox) SetDisabled(disabled bool) { c.disabled = disabled }

// SetHidden toggles visibility.
func (c *Checkbox) SetHidden(hidden bool) { c.hidden = hidden }

// SetTabIndex sets the tab priority.
func (c *Checkbox) SetTabIndex(i int) { c.tabIndex = i }

// Toggle flips the checkbox state.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	if c.onToggle != nil {
		c.onToggle(c.checked)
	}
}

// Update toggles the checkbox on space while focused.
func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	if !c.focused || c.disabled {
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.Space {
		c.Toggle()
	}
	return nil
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	if c.hidden {
		return ""
	}
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}
	style := ui.ItemStyle
	if c.focused {
		style = ui.SelectedStyle
	}
	return style.Render(box + " " + c.label)
}
