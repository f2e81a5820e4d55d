package dialog

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/openflow/surface/internal/ui/announce"
	"github.com/openflow/surface/internal/ui/focus"
	"github.com/openflow/surface/internal/ui/scrolllock"
	"github.com/openflow/surface/internal/ui/widgets"
)

type fakeSurface struct {
	offset int
}

func (s *fakeSurface) ScrollOffset() int     { return s.offset }
func (s *fakeSurface) SetScrollOffset(o int) { s.offset = o }

// fixture is a minimal application shell: a document with one focusable
// button, shared services, and a dialog content region mounted in the
// document the way an app mounts dialogs.
type fixture struct {
	document *widgets.Region
	opener   *widgets.Button
	surface  *fakeSurface
	deps     Deps
}

func newFixture() *fixture {
	opener := widgets.NewButton("opener", "Open", nil)
	document := widgets.NewRegion("document", opener)
	surface := &fakeSurface{offset: 7}

	mgr := focus.NewManager(document)
	deps := Deps{
		Manager:   mgr,
		Trap:      focus.NewTrap(mgr),
		Lock:      scrolllock.New(surface),
		Announcer: announce.New(),
	}
	mgr.SetFocus(opener)

	return &fixture{document: document, opener: opener, surface: surface, deps: deps}
}

// mount adds dialog content to the document so focus restoration can see it.
func (f *fixture) mount(content *widgets.Region) {
	f.document.Append(content)
}

func escMsg() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEscape}
}

func tabMsg() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab}
}

func shiftTabMsg() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
}

func TestOpenMovesFocusIntoDialog(t *testing.T) {
	f := newFixture()
	ok := widgets.NewButton("ok", "OK", nil)
	cancel := widgets.NewButton("cancel", "Cancel", nil)
	content := widgets.NewRegion("confirm", ok, cancel)
	f.mount(content)

	c := New(content, func() {}, DefaultOpts("Confirm"), f.deps)
	c.SetOpen(true)

	if c.State() != StateOpen {
		t.Fatalf("State = %v, want open", c.State())
	}
	if f.deps.Manager.Current() != focus.Focusable(ok) {
		t.Errorf("focus did not move to first focusable in dialog")
	}
	if !f.deps.Trap.Active() {
		t.Error("trap not active after open")
	}
	if !f.deps.Lock.Locked() {
		t.Error("scroll lock not held after open")
	}
}

func TestTabCyclesWithinDialog(t *testing.T) {
	f := newFixture()
	ok := widgets.NewButton("ok", "OK", nil)
	cancel := widgets.NewButton("cancel", "Cancel", nil)
	content := widgets.NewRegion("confirm", ok, cancel)
	f.mount(content)

	c := New(content, func() {}, DefaultOpts("Confirm"), f.deps)
	c.SetOpen(true)

	c.Update(tabMsg())
	if f.deps.Manager.Current() != focus.Focusable(cancel) {
		t.Fatalf("tab did not advance to cancel")
	}
	c.Update(tabMsg())
	if f.deps.Manager.Current() != focus.Focusable(ok) {
		t.Fatalf("tab did not wrap back to ok")
	}
	c.Update(shiftTabMsg())
	if f.deps.Manager.Current() != focus.Focusable(cancel) {
		t.Fatalf("shift+tab did not wrap back to cancel")
	}
}

func TestCloseRestoresFocusAndScrollOffset(t *testing.T) {
	f := newFixture()
	ok := widgets.NewButton("ok", "OK", nil)
	content := widgets.NewRegion("confirm", ok)
	f.mount(content)

	c := New(content, func() {}, DefaultOpts("Confirm"), f.deps)
	c.SetOpen(true)

	// Background offset mutated while locked would be a bug elsewhere, but
	// the lock must restore whatever it captured at acquire time.
	f.surface.offset = 0

	c.SetOpen(false)

	if c.State() != StateClosed {
		t.Fatalf("State = %v, want closed", c.State())
	}
	if f.deps.Manager.Current() != focus.Focusable(f.opener) {
		t.Errorf("focus not restored to opener")
	}
	if f.surface.offset != 7 {
		t.Errorf("scroll offset = %d, want 7 restored", f.surface.offset)
	}
	if f.deps.Trap.Active() {
		t.Error("trap still active after close")
	}
	if f.deps.Lock.Locked() {
		t.Error("scroll lock still held after close")
	}
}

func TestCloseFallsBackToRootWhenOpenerGone(t *testing.T) {
	f := newFixture()
	ok := widgets.NewButton("ok", "OK", nil)
	content := widgets.NewRegion("confirm", ok)
	f.mount(content)

	c := New(content, func() {}, DefaultOpts("Confirm"), f.deps)
	c.SetOpen(true)

	// The opener is unmounted while the dialog is up.
	f.document.Remove(f.opener)

	c.SetOpen(false)

	if f.deps.Manager.Current() != focus.Focusable(f.document) {
		t.Errorf("focus did not fall back to document root")
	}
}

func TestCloseFallsBackToRootWhenOpenerDisabled(t *testing.T) {
	f := newFixture()
	ok := widgets.NewButton("ok", "OK", nil)
	content := widgets.NewRegion("confirm", ok)
	f.mount(content)

	c := New(content, func() {}, DefaultOpts("Confirm"), f.deps)
	c.SetOpen(true)

	f.opener.SetDisabled(true)

	c.SetOpen(false)

	if f.deps.Manager.Current() != focus.Focusable(f.document) {
		t.Errorf("focus did not fall back to document root")
	}
}

func TestOpenAnnouncesPolitely(t *testing.T) {
	f := newFixture()
	content := widgets.NewRegion("confirm", widgets.NewButton("ok", "OK", nil))
	f.mount(content)

	c := New(content, func() {}, DefaultOpts("Delete Item"), f.deps)
	c.SetOpen(true)

	msg, ok := f.deps.Announcer.Current()
	if !ok {
		t.Fatal("no announcement after open")
	}
	if msg.Text != "Dialog opened: Delete Item" {
		t.Errorf("announcement = %q", msg.Text)
	}
	if msg.Priority != announce.Polite {
		t.Errorf("priority = %v, want polite", msg.Priority)
	}
	if f.deps.Announcer.Len() != 1 {
		t.Errorf("announcements = %d, want exactly 1", f.deps.Announcer.Len())
	}
}

func TestEscapeRequestsCloseExactlyOnce(t *testing.T) {
	f := newFixture()
	content := widgets.NewRegion("confirm", widgets.NewButton("ok", "OK", nil))
	f.mount(content)

	closeRequests := 0
	isOpen := true
	c := New(content, func() { closeRequests++; isOpen = false }, DefaultOpts("Confirm"), f.deps)
	c.SetOpen(isOpen)

	_, handled := c.Update(escMsg())
	if !handled {
		t.Fatal("escape not consumed")
	}
	if closeRequests != 1 {
		t.Fatalf("closeRequests = %d, want 1", closeRequests)
	}

	// The callback is advisory: the dialog stays open until the caller
	// flips its flag through SetOpen.
	if !c.Open() {
		t.Fatal("dialog closed itself instead of waiting for the caller")
	}

	c.SetOpen(isOpen)
	if c.Open() {
		t.Fatal("dialog still open after SetOpen(false)")
	}

	// Escape after close is not consumed and cannot re-request.
	_, handled = c.Update(escMsg())
	if handled || closeRequests != 1 {
		t.Errorf("closed dialog consumed input: handled=%v requests=%d", handled, closeRequests)
	}
}

func TestEscapeGatedByOption(t *testing.T) {
	f := newFixture()
	content := widgets.NewRegion("confirm", widgets.NewButton("ok", "OK", nil))
	f.mount(content)

	closeRequests := 0
	opts := DefaultOpts("Confirm")
	opts.CloseOnEscape = false
	c := New(content, func() { closeRequests++ }, opts, f.deps)
	c.SetOpen(true)

	_, handled := c.Update(escMsg())
	if !handled {
		t.Error("open dialog must still consume escape")
	}
	if closeRequests != 0 {
		t.Errorf("closeRequests = %d, want 0 with escape disabled", closeRequests)
	}
}

func TestBackdropClickRequestsClose(t *testing.T) {
	f := newFixture()
	content := widgets.NewRegion("confirm", widgets.NewButton("ok", "OK", nil))
	f.mount(content)

	closeRequests := 0
	c := New(content, func() { closeRequests++ }, DefaultOpts("Confirm"), f.deps)
	c.SetOpen(true)
	c.View(120, 40)

	// Top-left corner is well outside the centered frame.
	c.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	if closeRequests != 1 {
		t.Fatalf("closeRequests = %d after backdrop click, want 1", closeRequests)
	}

	// A click inside the frame is not a dismissal.
	c.Update(tea.MouseClickMsg{X: 60, Y: 20, Button: tea.MouseLeft})
	if closeRequests != 1 {
		t.Errorf("closeRequests = %d after interior click, want still 1", closeRequests)
	}
}

func TestBackdropClickGatedByOption(t *testing.T) {
	f := newFixture()
	content := widgets.NewRegion("confirm", widgets.NewButton("ok", "OK", nil))
	f.mount(content)

	closeRequests := 0
	opts := DefaultOpts("Confirm")
	opts.CloseOnBackdropClick = false
	c := New(content, func() { closeRequests++ }, opts, f.deps)
	c.SetOpen(true)
	c.View(120, 40)

	_, handled := c.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	if !handled {
		t.Error("open dialog must still consume backdrop clicks")
	}
	if closeRequests != 0 {
		t.Errorf("closeRequests = %d, want 0 with backdrop dismissal disabled", closeRequests)
	}
}

func TestNestedDialogsShareTrapAndLock(t *testing.T) {
	f := newFixture()
	outerBtn := widgets.NewButton("outer-ok", "OK", nil)
	outer := widgets.NewRegion("outer", outerBtn)
	innerBtn := widgets.NewButton("inner-ok", "OK", nil)
	inner := widgets.NewRegion("inner", innerBtn)
	f.mount(outer)
	f.mount(inner)

	outerCtrl := New(outer, func() {}, DefaultOpts("Outer"), f.deps)
	innerCtrl := New(inner, func() {}, DefaultOpts("Inner"), f.deps)

	outerCtrl.SetOpen(true)
	innerCtrl.SetOpen(true)

	if f.deps.Trap.Depth() != 2 {
		t.Fatalf("trap depth = %d, want 2", f.deps.Trap.Depth())
	}
	if f.deps.Lock.Depth() != 2 {
		t.Fatalf("lock depth = %d, want 2", f.deps.Lock.Depth())
	}
	if f.deps.Manager.Current() != focus.Focusable(innerBtn) {
		t.Fatal("focus not in inner dialog")
	}

	// Tab is intercepted by the top of the stack only.
	innerCtrl.Update(tabMsg())
	if f.deps.Manager.Current() != focus.Focusable(innerBtn) {
		t.Fatal("tab escaped the inner dialog's ring")
	}

	f.surface.offset = 0
	innerCtrl.SetOpen(false)

	// Closing the inner dialog restores focus to the outer one and keeps
	// the scroll lock held.
	if f.deps.Manager.Current() != focus.Focusable(outerBtn) {
		t.Error("focus not restored to outer dialog")
	}
	if !f.deps.Lock.Locked() {
		t.Error("scroll lock released while outer dialog still open")
	}
	if f.surface.offset != 0 {
		t.Errorf("offset = %d, restored before the last release", f.surface.offset)
	}

	outerCtrl.SetOpen(false)
	if f.deps.Manager.Current() != focus.Focusable(f.opener) {
		t.Error("focus not restored to the original opener")
	}
	if f.surface.offset != 7 {
		t.Errorf("offset = %d, want 7 restored on last release", f.surface.offset)
	}
}

func TestSetOpenIsIdempotent(t *testing.T) {
	f := newFixture()
	content := widgets.NewRegion("confirm", widgets.NewButton("ok", "OK", nil))
	f.mount(content)

	c := New(content, func() {}, DefaultOpts("Confirm"), f.deps)

	c.SetOpen(false) // already closed
	if f.deps.Lock.Depth() != 0 {
		t.Fatal("close of a closed dialog touched the lock")
	}

	c.SetOpen(true)
	c.SetOpen(true) // already open
	if f.deps.Lock.Depth() != 1 || f.deps.Trap.Depth() != 1 {
		t.Fatalf("reopen leaked: lock=%d trap=%d", f.deps.Lock.Depth(), f.deps.Trap.Depth())
	}

	c.SetOpen(false)
	c.SetOpen(false)
	if f.deps.Lock.Depth() != 0 || f.deps.Trap.Depth() != 0 {
		t.Fatalf("double close leaked: lock=%d trap=%d", f.deps.Lock.Depth(), f.deps.Trap.Depth())
	}
}

func TestAccessibleNameFromLabelNode(t *testing.T) {
	f := newFixture()
	title := widgets.NewLabel("dialog-title", "Really delete?")
	content := widgets.NewRegion("confirm", title, widgets.NewButton("ok", "OK", nil))
	f.mount(content)

	opts := DefaultOpts("Fallback Title")
	opts.LabelID = "dialog-title"
	c := New(content, func() {}, opts, f.deps)

	if got := c.AccessibleName(); got != "Really delete?" {
		t.Errorf("AccessibleName = %q", got)
	}

	// Missing label node falls back to the title.
	opts.LabelID = "no-such-node"
	c2 := New(content, func() {}, opts, f.deps)
	if got := c2.AccessibleName(); got != "Fallback Title" {
		t.Errorf("AccessibleName fallback = %q", got)
	}
}

func TestAccessibleDescription(t *testing.T) {
	f := newFixture()
	desc := widgets.NewLabel("dialog-desc", "This cannot be undone.")
	content := widgets.NewRegion("confirm", desc, widgets.NewButton("ok", "OK", nil))
	f.mount(content)

	opts := DefaultOpts("Confirm")
	opts.DescriptionID = "dialog-desc"
	c := New(content, func() {}, opts, f.deps)

	if got := c.AccessibleDescription(); got != "This cannot be undone." {
		t.Errorf("AccessibleDescription = %q", got)
	}
}

func TestViewRendersTitleAndCloseControl(t *testing.T) {
	f := newFixture()
	content := widgets.NewRegion("confirm", widgets.NewButton("ok", "OK", nil))
	f.mount(content)

	c := New(content, func() {}, DefaultOpts("Settings"), f.deps)
	c.SetOpen(true)
	c.SetHelp("Esc to close")

	view := c.View(120, 40)
	if !strings.Contains(view, "Settings") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "✕") {
		t.Error("view missing close control")
	}
	if !strings.Contains(view, "Esc to close") {
		t.Error("view missing help line")
	}

	if closed := New(content, func() {}, DefaultOpts("X"), f.deps).View(120, 40); closed != "" {
		t.Errorf("closed dialog rendered %q", closed)
	}
}

func TestKeyInputRoutedToFocusedWidget(t *testing.T) {
	f := newFixture()
	pressed := 0
	ok := widgets.NewButton("ok", "OK", func() { pressed++ })
	content := widgets.NewRegion("confirm", ok)
	f.mount(content)

	c := New(content, func() {}, DefaultOpts("Confirm"), f.deps)
	c.SetOpen(true)

	c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != 1 {
		t.Errorf("pressed = %d, want the focused button activated", pressed)
	}
}
