package app

import (
	huh "charm.land/huh/v2"

	"github.com/openflow/surface/internal/logger"
	"github.com/openflow/surface/internal/notification"
	"github.com/openflow/surface/internal/ui"
	"github.com/openflow/surface/internal/ui/announce"
	"github.com/openflow/surface/internal/ui/dialog"
	"github.com/openflow/surface/internal/ui/widgets"
)

func (m *Model) deps() dialog.Deps {
	return dialog.Deps{
		Manager:   m.mgr,
		Trap:      m.trap,
		Lock:      m.lock,
		Announcer: m.announcer,
	}
}

func (m *Model) buildDialogs() {
	m.buildWelcome()
	m.buildConfirm()
	m.buildProject()
	m.buildFeedback()
	m.buildSettings()
	m.buildReset()
}

// mountAndOpen adds the dialog content to the document and opens the dialog.
func (m *Model) mountAndOpen(c *dialog.Controller, content *widgets.Region) {
	m.document.Append(content)
	c.SetOpen(true)
}

// closeAndUnmount closes the dialog and removes its content from the document.
// Close runs first so focus restoration happens while the tree is intact.
func (m *Model) closeAndUnmount(c *dialog.Controller, content *widgets.Region) {
	c.SetOpen(false)
	m.document.Remove(content)
}

// ---------------------------------------------------------------------------
// Welcome
// ---------------------------------------------------------------------------

func (m *Model) buildWelcome() {
	content := widgets.NewRegion("welcome",
		widgets.NewLabel("welcome-intro", "A gallery of dialog, focus, and announcement components."),
		widgets.NewLabel("welcome-hint", "Tab moves between controls. Enter activates them."),
		widgets.NewButton("welcome-start", "Get started", func() { m.closeWelcome() }),
	)
	m.welcome = dialog.New(content, func() { m.closeWelcome() }, dialog.DefaultOpts("Welcome to Surface"), m.deps())
	m.welcome.SetHelp("Enter: start  Esc: close")
}

func (m *Model) openWelcome() {
	m.welcomeOpen = true
	m.mountAndOpen(m.welcome, m.welcome.Content().(*widgets.Region))
}

func (m *Model) closeWelcome() {
	m.welcomeOpen = false
	m.closeAndUnmount(m.welcome, m.welcome.Content().(*widgets.Region))
	m.cfg.MarkWelcomeShown()
	if err := m.cfg.Save(); err != nil {
		logger.Error("app: saving config: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Confirm delete
// ---------------------------------------------------------------------------

func (m *Model) buildConfirm() {
	content := widgets.NewRegion("confirm",
		widgets.NewLabel("confirm-title", "Delete item?"),
		widgets.NewLabel("confirm-desc", "The item is removed from the project. This cannot be undone."),
		widgets.NewButton("confirm-delete", "Delete", func() {
			m.announcer.Announce("Item deleted", announce.Assertive)
			m.closeConfirm()
		}),
		widgets.NewButton("confirm-cancel", "Cancel", func() { m.closeConfirm() }),
	)

	opts := dialog.DefaultOpts("Confirm")
	opts.LabelID = "confirm-title"
	opts.DescriptionID = "confirm-desc"
	m.confirm = dialog.New(content, func() { m.closeConfirm() }, opts, m.deps())
	m.confirm.SetHelp("Tab: next  Enter: choose  Esc: cancel")
}

func (m *Model) openConfirm() {
	m.confirmOpen = true
	m.mountAndOpen(m.confirm, m.confirm.Content().(*widgets.Region))
}

func (m *Model) closeConfirm() {
	m.confirmOpen = false
	m.closeAndUnmount(m.confirm, m.confirm.Content().(*widgets.Region))
}

// ---------------------------------------------------------------------------
// New project (huh form)
// ---------------------------------------------------------------------------

func (m *Model) buildProject() {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Project name").
				Placeholder("my-project").
				CharLimit(ui.InputCharLimit).
				Value(&m.projectName),
			huh.NewSelect[string]().
				Key("kind").
				Title("Kind").
				Options(
					huh.NewOption("Application", "application"),
					huh.NewOption("Library", "library"),
					huh.NewOption("Service", "service"),
				).
				Value(&m.projectKind),
		),
	).WithTheme(widgets.FormTheme()).
		WithShowHelp(false).
		WithWidth(ui.InputWidth)

	m.projectForm = widgets.NewForm("project-form", form)
	content := widgets.NewRegion("project", m.projectForm)

	m.project = dialog.New(content, func() { m.closeProject() }, dialog.DefaultOpts("New Project"), m.deps())
	m.project.SetHelp("Enter: next field  Esc: cancel")
}

func (m *Model) openProject() {
	m.projectOpen = true
	m.mountAndOpen(m.project, m.project.Content().(*widgets.Region))
}

func (m *Model) closeProject() {
	m.projectOpen = false
	m.closeAndUnmount(m.project, m.project.Content().(*widgets.Region))
}

// finishProject runs once the form completes: announce and close.
func (m *Model) finishProject() {
	name := m.projectForm.Form().GetString("name")
	if name == "" {
		name = m.projectName
	}
	m.announcer.Announce("Project created: "+name, announce.Polite)
	m.closeProject()
}

// ---------------------------------------------------------------------------
// Feedback (input + textarea)
// ---------------------------------------------------------------------------

func (m *Model) buildFeedback() {
	m.feedbackName = widgets.NewInput("feedback-name", "Your name", "optional")
	m.feedbackBody = widgets.NewTextArea("feedback-body", "What happened?", "Tell us what went wrong or what you liked…")

	content := widgets.NewRegion("feedback",
		m.feedbackName,
		m.feedbackBody,
		widgets.NewButton("feedback-send", "Send", func() {
			m.announcer.Announce("Feedback sent", announce.Polite)
			m.closeFeedback()
		}),
		widgets.NewButton("feedback-cancel", "Cancel", func() { m.closeFeedback() }),
	)

	m.feedback = dialog.New(content, func() { m.closeFeedback() }, dialog.DefaultOpts("Send Feedback"), m.deps())
	m.feedback.SetHelp("Tab: next field  Esc: cancel")
}

func (m *Model) openFeedback() {
	m.feedbackOpen = true
	m.mountAndOpen(m.feedback, m.feedback.Content().(*widgets.Region))
}

func (m *Model) closeFeedback() {
	m.feedbackOpen = false
	m.closeAndUnmount(m.feedback, m.feedback.Content().(*widgets.Region))
}

// ---------------------------------------------------------------------------
// Settings, with a nested reset confirmation
// ---------------------------------------------------------------------------

func (m *Model) buildSettings() {
	m.notifyCheck = widgets.NewCheckbox("settings-notify", "Desktop notifications", m.cfg.GetNotificationsEnabled(), func(enabled bool) {
		m.setNotifications(enabled)
	})
	m.themeBtn = widgets.NewButton("settings-theme", themeLabel(), func() { m.cycleTheme() })

	content := widgets.NewRegion("settings",
		m.notifyCheck,
		m.themeBtn,
		widgets.NewButton("settings-reset", "Reset to defaults…", func() { m.openReset() }),
		widgets.NewButton("settings-done", "Done", func() { m.closeSettings() }),
	)

	m.settings = dialog.New(content, func() { m.closeSettings() }, dialog.DefaultOpts("Settings"), m.deps())
	m.settings.SetHelp("Space: toggle  Enter: choose  Esc: close")
}

func (m *Model) openSettings() {
	m.settingsOpen = true
	m.mountAndOpen(m.settings, m.settings.Content().(*widgets.Region))
}

func (m *Model) closeSettings() {
	m.settingsOpen = false
	m.closeAndUnmount(m.settings, m.settings.Content().(*widgets.Region))
}

func (m *Model) buildReset() {
	content := widgets.NewRegion("reset",
		widgets.NewLabel("reset-title", "Reset settings?"),
		widgets.NewLabel("reset-desc", "Theme and notification preferences return to their defaults."),
		widgets.NewButton("reset-ok", "Reset", func() {
			m.applyDefaults()
			m.closeReset()
		}),
		widgets.NewButton("reset-cancel", "Cancel", func() { m.closeReset() }),
	)

	opts := dialog.DefaultOpts("Reset")
	opts.LabelID = "reset-title"
	opts.DescriptionID = "reset-desc"
	m.reset = dialog.New(content, func() { m.closeReset() }, opts, m.deps())
	m.reset.SetHelp("Enter: choose  Esc: cancel")
}

func (m *Model) openReset() {
	m.resetOpen = true
	m.mountAndOpen(m.reset, m.reset.Content().(*widgets.Region))
}

func (m *Model) closeReset() {
	m.resetOpen = false
	m.closeAndUnmount(m.reset, m.reset.Content().(*widgets.Region))
}

// ---------------------------------------------------------------------------
// Settings actions
// ---------------------------------------------------------------------------

func (m *Model) setNotifications(enabled bool) {
	m.cfg.SetNotificationsEnabled(enabled)
	if enabled {
		m.announcer.SetNotifier(notification.Desktop{})
	} else {
		m.announcer.SetNotifier(nil)
	}
	if err := m.cfg.Save(); err != nil {
		logger.Error("app: saving config: %v", err)
	}
}

func (m *Model) cycleTheme() {
	names := ui.ThemeNames()
	current := ui.CurrentTheme()
	next := names[0]
	for i, n := range names {
		if ui.GetTheme(n).Name == current.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	ui.SetTheme(next)
	m.cfg.SetTheme(string(next))
	m.themeBtn.SetLabel(themeLabel())
	m.announcer.Announce("Theme changed: "+ui.CurrentTheme().Name, announce.Polite)
	if err := m.cfg.Save(); err != nil {
		logger.Error("app: saving config: %v", err)
	}
}

func (m *Model) applyDefaults() {
	ui.SetTheme(ui.DefaultTheme)
	m.cfg.SetTheme(string(ui.DefaultTheme))
	m.setNotifications(true)
	m.notifyCheck.SetChecked(true)
	m.themeBtn.SetLabel(themeLabel())
	m.announcer.Announce("Settings reset to defaults", announce.Polite)
}

func themeLabel() string {
	return "Theme: " + ui.CurrentTheme().Name
}
