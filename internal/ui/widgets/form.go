package widgets

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/openflow/surface/internal/keys"
	"github.com/openflow/surface/internal/ui"
	"github.com/openflow/surface/internal/ui/focus"
)

// Form wraps a huh form as a focusable node. The form manages its own
// internal field traversal, so the wrapper occupies a single slot in the
// tab ring and forwards key input to huh while focused.
type Form struct {
	id       string
	form     *huh.Form
	focused  bool
	disabled bool
	hidden   bool
	tabIndex int
}

var _ focus.Focusable = (*Form)(nil)

// NewForm wraps a huh form. The form is initialized eagerly so it renders
// correctly before the first Update.
func NewForm(id string, form *huh.Form) *Form {
	form.Init()
	return &Form{id: id, form: form}
}

func (f *Form) ID() string     { return f.id }
func (f *Form) Focus()         { f.focused = true }
func (f *Form) Blur()          { f.focused = false }
func (f *Form) Focused() bool  { return f.focused }
func (f *Form) Disabled() bool { return f.disabled }
func (f *Form) Hidden() bool   { return f.hidden }
func (f *Form) TabIndex() int  { return f.tabIndex }

// SetDisabled toggles whether the form accepts input.
func (f *Form) SetDisabled(disabled bool) { f.disabled = disabled }

// SetHidden toggles visibility.
func (f *Form) SetHidden(hidden bool) { f.hidden = hidden }

// SetTabIndex sets the tab priority.
func (f *Form) SetTabIndex(i int) { f.tabIndex = i }

// Form returns the wrapped huh form for reading field values.
func (f *Form) Form() *huh.Form { return f.form }

// Completed reports whether the form reached its completed state.
func (f *Form) Completed() bool { return f.form.State == huh.StateCompleted }

// Update forwards input to the huh form while focused. Escape is left for
// the enclosing dialog to handle.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if !f.focused || f.disabled {
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if keyMsg.String() == keys.Escape {
			return nil
		}
	}
	m, cmd := f.form.Update(msg)
	f.form = m.(*huh.Form)
	return cmd
}

// View renders the wrapped form.
func (f *Form) View() string {
	if f.hidden {
		return ""
	}
	return f.form.View()
}

// FormTheme returns a huh theme matching the current palette. Call it each
// time a form is created so it picks up theme changes.
func FormTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ui.ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ui.ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ui.ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ui.ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ui.ColorWarning)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ui.ColorPrimary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(ui.ColorPrimary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(ui.ColorPrimary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ui.ColorText)

		t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(ui.ColorPrimary).SetString("> ")
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ui.ColorSecondary)
		t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(ui.ColorSecondary).SetString("[x] ")
		t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ui.ColorText)
		t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(ui.ColorTextMuted).SetString("[ ] ")

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ui.ColorTextInverse).
			Background(ui.ColorPrimary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ui.ColorTextMuted)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ui.ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ui.ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().
			PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = lipgloss.NewStyle().Foreground(ui.ColorSecondary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(ui.ColorTextMuted)

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")

		t.Help = help.New().Styles

		return t
	})
}
