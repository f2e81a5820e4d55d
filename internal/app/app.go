// Package app is the component gallery: a Bubble Tea program that mounts a
// scrollable background document and a set of dialog scenarios, wiring every
// dialog through the shared focus manager, focus trap, scroll lock, and
// announcement region.
package app

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/openflow/surface/internal/config"
	"github.com/openflow/surface/internal/notification"
	"github.com/openflow/surface/internal/ui"
	"github.com/openflow/surface/internal/ui/announce"
	"github.com/openflow/surface/internal/ui/dialog"
	"github.com/openflow/surface/internal/ui/focus"
	"github.com/openflow/surface/internal/ui/scrolllock"
	"github.com/openflow/surface/internal/ui/widgets"
)

// announceTickMsg advances the live region after a message has been shown.
type announceTickMsg time.Time

const announceDisplayTime = 3 * time.Second

func announceTick() tea.Cmd {
	return tea.Tick(announceDisplayTime, func(t time.Time) tea.Msg {
		return announceTickMsg(t)
	})
}

// viewportSurface adapts the background viewport to the scroll lock.
type viewportSurface struct {
	vp *viewport.Model
}

func (s *viewportSurface) ScrollOffset() int     { return s.vp.YOffset() }
func (s *viewportSurface) SetScrollOffset(o int) { s.vp.SetYOffset(o) }

// Model is the gallery application.
type Model struct {
	cfg     *config.Config
	version string

	width  int
	height int

	document  *widgets.Region
	mgr       *focus.Manager
	trap      *focus.Trap
	lock      *scrolllock.Lock
	announcer *announce.Region

	background viewport.Model

	confirmBtn  *widgets.Button
	projectBtn  *widgets.Button
	feedbackBtn *widgets.Button
	settingsBtn *widgets.Button

	welcomeOpen  bool
	confirmOpen  bool
	projectOpen  bool
	feedbackOpen bool
	settingsOpen bool
	resetOpen    bool

	welcome  *dialog.Controller
	confirm  *dialog.Controller
	project  *dialog.Controller
	feedback *dialog.Controller
	settings *dialog.Controller
	reset    *dialog.Controller

	projectForm  *widgets.Form
	feedbackName *widgets.Input
	feedbackBody *widgets.TextArea
	notifyCheck  *widgets.Checkbox
	themeBtn     *widgets.Button

	projectName string
	projectKind string

	ticking bool
}

// New creates the gallery model.
func New(cfg *config.Config, version string) *Model {
	m := &Model{
		cfg:     cfg,
		version: version,
	}

	ui.SetThemeByName(cfg.GetTheme())

	m.confirmBtn = widgets.NewButton("open-confirm", "Delete item…", func() { m.openConfirm() })
	m.projectBtn = widgets.NewButton("open-project", "New project…", func() { m.openProject() })
	m.feedbackBtn = widgets.NewButton("open-feedback", "Send feedback…", func() { m.openFeedback() })
	m.settingsBtn = widgets.NewButton("open-settings", "Settings…", func() { m.openSettings() })

	m.document = widgets.NewRegion("document",
		m.confirmBtn, m.projectBtn, m.feedbackBtn, m.settingsBtn,
	)

	m.mgr = focus.NewManager(m.document)
	m.trap = focus.NewTrap(m.mgr)
	m.announcer = announce.New()
	if cfg.GetNotificationsEnabled() {
		m.announcer.SetNotifier(notification.Desktop{})
	}

	m.background = viewport.New()
	m.background.SetContent(backgroundContent())
	m.lock = scrolllock.New(&viewportSurface{vp: &m.background})

	m.mgr.SetFocus(m.confirmBtn)

	m.buildDialogs()

	return m
}

// Init opens the welcome dialog on first run.
func (m *Model) Init() tea.Cmd {
	if !m.cfg.HasSeenWelcome() {
		m.openWelcome()
		return m.scheduleAnnounce()
	}
	return nil
}

// Announcer exposes the live region, for the footer and for tests.
func (m *Model) Announcer() *announce.Region { return m.announcer }

// AnyDialogOpen reports whether a dialog currently holds the screen.
func (m *Model) AnyDialogOpen() bool {
	return m.topController() != nil
}

// topController returns the open dialog that owns input, innermost first.
func (m *Model) topController() *dialog.Controller {
	for _, c := range []*dialog.Controller{m.reset, m.settings, m.confirm, m.project, m.feedback, m.welcome} {
		if c != nil && c.Open() {
			return c
		}
	}
	return nil
}

// focusNeighbor moves document focus to the next or previous launcher button.
func (m *Model) focusNeighbor(forward bool) {
	ring := focus.Descendants(m.document)
	if len(ring) == 0 {
		m.mgr.FocusRoot()
		return
	}
	cur := m.mgr.Current()
	idx := -1
	for i, f := range ring {
		if f == cur {
			idx = i
			break
		}
	}
	switch {
	case idx == -1:
		m.mgr.SetFocus(ring[0])
	case forward:
		m.mgr.SetFocus(ring[(idx+1)%len(ring)])
	default:
		m.mgr.SetFocus(ring[(idx-1+len(ring))%len(ring)])
	}
}

func backgroundContent() string {
	var sb strings.Builder
	sb.WriteString("Surface component gallery\n\n")
	sb.WriteString("This document scrolls behind the dialogs. Open a dialog and the\n")
	sb.WriteString("scroll position is locked; close it and the position is restored.\n\n")
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&sb, "%3d  Background line for scroll testing.\n", i)
	}
	return sb.String()
}
