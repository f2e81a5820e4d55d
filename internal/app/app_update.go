package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/openflow/surface/internal/keys"
	"github.com/openflow/surface/internal/ui"
)

// updater is implemented by widgets that consume key input.
type updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// Update routes messages to the topmost open dialog, or to the document and
// background when no dialog is up.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.background.SetWidth(msg.Width - sidebarWidth - 1)
		m.background.SetHeight(msg.Height - ui.HeaderHeight - ui.FooterHeight)
		return m, nil

	case announceTickMsg:
		m.announcer.Advance()
		if m.announcer.Len() > 0 {
			return m, announceTick()
		}
		m.ticking = false
		return m, nil
	}

	if top := m.topController(); top != nil {
		cmd, _ := top.Update(m.adjustOverlayMouse(msg))

		// The project form closes itself by completing rather than through
		// a button, so completion is checked after every routed message.
		if m.projectOpen && m.projectForm.Completed() {
			m.finishProject()
		}

		return m, tea.Batch(cmd, m.scheduleAnnounce())
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.updateDocumentKeys(msg)

	case tea.MouseWheelMsg:
		if !m.lock.Locked() {
			var cmd tea.Cmd
			m.background, cmd = m.background.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateDocumentKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", keys.CtrlC:
		return m, tea.Quit

	case keys.Tab:
		m.focusNeighbor(true)
		return m, nil

	case keys.ShiftTab:
		m.focusNeighbor(false)
		return m, nil

	case keys.Up, keys.Down, keys.PgUp, keys.PgDown, keys.Home, keys.End, keys.CtrlU, keys.CtrlD:
		if !m.lock.Locked() {
			var cmd tea.Cmd
			m.background, cmd = m.background.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	if cur := m.mgr.Current(); cur != nil {
		if u, ok := cur.(updater); ok {
			cmd = u.Update(msg)
		}
	}
	return m, tea.Batch(cmd, m.scheduleAnnounce())
}

// adjustOverlayMouse shifts mouse coordinates from screen space into the
// dialog overlay, which is rendered below the header.
func (m *Model) adjustOverlayMouse(msg tea.Msg) tea.Msg {
	switch mouse := msg.(type) {
	case tea.MouseClickMsg:
		mouse.Y -= ui.HeaderHeight
		return mouse
	case tea.MouseMotionMsg:
		mouse.Y -= ui.HeaderHeight
		return mouse
	case tea.MouseReleaseMsg:
		mouse.Y -= ui.HeaderHeight
		return mouse
	}
	return msg
}

// scheduleAnnounce starts the live region timer when messages are queued.
func (m *Model) scheduleAnnounce() tea.Cmd {
	if m.ticking || m.announcer.Len() == 0 {
		return nil
	}
	m.ticking = true
	return announceTick()
}
