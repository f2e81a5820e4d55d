// Package widgets provides the presentational atoms of the Surface kit:
// buttons, inputs, checkboxes, text areas, labels, and containers. Every
// interactive widget implements focus.Focusable so it participates in tab
// navigation and focus trapping.
package widgets

import (
	tea "charm.land/bubbletea/v2"

	"github.com/openflow/surface/internal/keys"
	"github.com/openflow/surface/internal/ui"
	"github.com/openflow/surface/internal/ui/focus"
)

// Button is a pressable widget. Enter or space activates it while focused.
type Button struct {
	id       string
	label    string
	focused  bool
	disabled bool
	hidden   bool
	tabIndex int
	onPress  func()
}

var _ focus.Focusable = (*Button)(nil)

// NewButton creates a button. onPress may be nil for display-only demos.
func NewButton(id, label string, onPress func()) *Button {
	return &Button{id: id, label: label, onPress: onPress}
}

func (b *Button) ID() string     { return b.id }
func (b *Button) Focus()         { b.focused = true }
func (b *Button) Blur()          { b.focused = false }
func (b *Button) Focused() bool  { return b.focused }
func (b *Button) Disabled() bool { return b.disabled }
func (b *Button) Hidden() bool   { return b.hidden }
func (b *Button) TabIndex() int  { return b.tabIndex }

// Text returns the button label for accessible-name resolution.
func (b *Button) Text() string { return b.label }

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button label.
func (b *Button) SetLabel(label string) { b.label = label }

// SetDisabled toggles the disabled state.
func (b *Button) SetDisabled(disabled bool) { b.disabled = disabled }

// SetHidden toggles visibility.
func (b *Button) SetHidden(hidden bool) { b.hidden = hidden }

// SetTabIndex sets the tab priority.
func (b *Button) SetTabIndex(i int) { b.tabIndex = i }

// Press invokes the button's action.
func (b *Button) Press() {
	if b.onPress != nil {
		b.onPress()
	}
}

// Update activates the button on enter or space while focused.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if !b.focused || b.disabled {
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Space:
			b.Press()
		}
	}
	return nil
}

// View renders the button.
func (b *Button) View() string {
	if b.hidden {
		return ""
	}
	style := ui.ButtonStyle
	if b.disabled {
		style = ui.ButtonDisabledStyle
	} else if b.focused {
		style = ui.ButtonFocusedStyle
	}
	return style.Render(b.label)
}
