package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/openflow/surface/internal/config"
	"github.com/openflow/surface/internal/ui/focus"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	cfg.MarkWelcomeShown()

	m := New(cfg, "test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func pressKey(m *Model, code rune, mods ...tea.KeyMod) {
	msg := tea.KeyPressMsg{Code: code}
	if len(mods) > 0 {
		msg.Mod = mods[0]
	}
	m.Update(msg)
}

func TestLauncherOpensConfirmDialog(t *testing.T) {
	m := newTestModel(t)

	if m.AnyDialogOpen() {
		t.Fatal("dialog open before any interaction")
	}

	// The first launcher button opens the confirm dialog.
	pressKey(m, tea.KeyEnter)

	if !m.confirm.Open() {
		t.Fatal("confirm dialog did not open")
	}
	if m.trap.Depth() != 1 {
		t.Errorf("trap depth = %d, want 1", m.trap.Depth())
	}
	if !m.lock.Locked() {
		t.Error("scroll lock not held while dialog open")
	}

	msg, ok := m.announcer.Current()
	if !ok || msg.Text != "Dialog opened: Delete item?" {
		t.Errorf("announcement = %q, ok=%v", msg.Text, ok)
	}
}

func TestEscapeClosesAndRestoresFocus(t *testing.T) {
	m := newTestModel(t)

	pressKey(m, tea.KeyEnter)
	if !m.confirm.Open() {
		t.Fatal("confirm dialog did not open")
	}

	pressKey(m, tea.KeyEscape)

	if m.confirm.Open() {
		t.Fatal("escape did not close the dialog")
	}
	if m.trap.Depth() != 0 || m.lock.Locked() {
		t.Errorf("cleanup incomplete: trap=%d locked=%v", m.trap.Depth(), m.lock.Locked())
	}
	if m.mgr.Current() != focus.Focusable(m.confirmBtn) {
		t.Error("focus not restored to the launcher button")
	}
}

func TestScrollSuppressedWhileDialogOpen(t *testing.T) {
	m := newTestModel(t)

	// Scroll the background, then open a dialog.
	m.background.SetYOffset(5)
	pressKey(m, tea.KeyEnter)

	pressKey(m, tea.KeyDown)
	if got := m.background.YOffset(); got != 5 {
		t.Errorf("offset = %d while locked, want 5", got)
	}

	pressKey(m, tea.KeyEscape)
	if got := m.background.YOffset(); got != 5 {
		t.Errorf("offset = %d after close, want 5 restored", got)
	}
}

func TestNestedSettingsResetDialog(t *testing.T) {
	m := newTestModel(t)

	m.openSettings()
	if !m.settings.Open() {
		t.Fatal("settings did not open")
	}

	// Tab past the checkbox and theme button to "Reset to defaults…".
	pressKey(m, tea.KeyTab)
	pressKey(m, tea.KeyTab)
	pressKey(m, tea.KeyEnter)

	if !m.reset.Open() {
		t.Fatal("nested reset dialog did not open")
	}
	if m.trap.Depth() != 2 || m.lock.Depth() != 2 {
		t.Fatalf("nested depth: trap=%d lock=%d, want 2/2", m.trap.Depth(), m.lock.Depth())
	}

	pressKey(m, tea.KeyEscape)
	if m.reset.Open() {
		t.Fatal("escape did not close nested dialog")
	}
	if !m.settings.Open() {
		t.Fatal("outer settings closed with the nested dialog")
	}
	if m.trap.Depth() != 1 || m.lock.Depth() != 1 {
		t.Errorf("after nested close: trap=%d lock=%d, want 1/1", m.trap.Depth(), m.lock.Depth())
	}

	pressKey(m, tea.KeyEscape)
	if m.settings.Open() || m.trap.Depth() != 0 || m.lock.Depth() != 0 {
		t.Error("settings close incomplete")
	}
}

func TestWelcomeShownOnFirstRun(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	m := New(cfg, "test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Init()

	if !m.welcome.Open() {
		t.Fatal("welcome dialog not open on first run")
	}

	pressKey(m, tea.KeyEscape)
	if m.welcome.Open() {
		t.Fatal("welcome did not close")
	}
	if !cfg.HasSeenWelcome() {
		t.Error("welcome not marked as shown")
	}
}

func TestSettingsToggleNotifications(t *testing.T) {
	m := newTestModel(t)

	m.openSettings()

	// The checkbox has focus first; space toggles it.
	pressKey(m, tea.KeySpace)
	if !m.cfg.GetNotificationsEnabled() {
		t.Error("notifications not enabled after toggle")
	}
	pressKey(m, tea.KeySpace)
	if m.cfg.GetNotificationsEnabled() {
		t.Error("notifications not disabled after second toggle")
	}
}

func TestViewShowsDialogOverlay(t *testing.T) {
	m := newTestModel(t)

	base := fmt.Sprint(m.View().Content)
	if !strings.Contains(base, "Delete item…") {
		t.Error("launcher view missing buttons")
	}

	pressKey(m, tea.KeyEnter)
	overlay := fmt.Sprint(m.View().Content)
	if !strings.Contains(overlay, "Delete item?") {
		t.Error("overlay missing dialog title")
	}

	if !strings.Contains(overlay, "Dialog opened: Delete item?") {
		t.Error("footer missing live region announcement")
	}
}

func TestTabMovesBetweenLaunchers(t *testing.T) {
	m := newTestModel(t)

	if m.mgr.Current() != focus.Focusable(m.confirmBtn) {
		t.Fatal("initial focus not on first launcher")
	}

	pressKey(m, tea.KeyTab)
	if m.mgr.Current() != focus.Focusable(m.projectBtn) {
		t.Error("tab did not advance to second launcher")
	}

	pressKey(m, tea.KeyTab, tea.ModShift)
	if m.mgr.Current() != focus.Focusable(m.confirmBtn) {
		t.Error("shift+tab did not return to first launcher")
	}
}
