package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openflow/surface/internal/ui"
)

const sidebarWidth = 28

// View composes header, body, and footer. While a dialog is open the body is
// replaced by the dialog overlay; the topmost dialog of a nested stack is the
// only one rendered.
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("")
	}

	header := ui.HeaderStyle.Width(m.width).Render(" Surface Gallery " + m.version)
	bodyHeight := m.height - ui.HeaderHeight - ui.FooterHeight

	var body string
	if top := m.topController(); top != nil {
		body = top.View(m.width, bodyHeight)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(bodyHeight), m.background.View())
	}

	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, header, body, m.footerView()))
}

func (m *Model) sidebarView(height int) string {
	style := lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(height).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(ui.ColorBorder)
	return style.Render(m.document.View())
}

// footerView shows the live region on the left and key hints on the right.
func (m *Model) footerView() string {
	hints := ui.FooterKeyStyle.Render("tab: move  enter: open  q: quit")
	live := ui.LiveRegionStyle.Render(
		ui.TruncateString(m.announcer.View(), m.width-lipgloss.Width(hints)-4),
	)

	gap := m.width - lipgloss.Width(live) - lipgloss.Width(hints)
	if gap < 1 {
		gap = 1
	}
	return ui.FooterStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, live, lipgloss.NewStyle().Width(gap).Render(""), hints),
	)
}
