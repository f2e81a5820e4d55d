package widgets

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/openflow/surface/internal/ui/focus"
)

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestButtonPressOnEnter(t *testing.T) {
	pressed := 0
	btn := NewButton("ok", "OK", func() { pressed++ })
	btn.Focus()

	btn.Update(keyPress(tea.KeyEnter))
	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}

	btn.Update(keyPress(tea.KeySpace))
	if pressed != 2 {
		t.Errorf("pressed = %d after space, want 2", pressed)
	}
}

func TestButtonIgnoresInputWhenBlurred(t *testing.T) {
	pressed := 0
	btn := NewButton("ok", "OK", func() { pressed++ })

	btn.Update(keyPress(tea.KeyEnter))
	if pressed != 0 {
		t.Errorf("blurred button activated: pressed = %d", pressed)
	}
}

func TestButtonIgnoresInputWhenDisabled(t *testing.T) {
	pressed := 0
	btn := NewButton("ok", "OK", func() { pressed++ })
	btn.Focus()
	btn.SetDisabled(true)

	btn.Update(keyPress(tea.KeyEnter))
	if pressed != 0 {
		t.Errorf("disabled button activated: pressed = %d", pressed)
	}
}

func TestCheckboxToggle(t *testing.T) {
	var last bool
	cb := NewCheckbox("opt", "Enable", false, func(v bool) { last = v })
	cb.Focus()

	cb.Update(keyPress(tea.KeySpace))
	if !cb.Checked() || !last {
		t.Errorf("Checked() = %v, callback = %v, want both true", cb.Checked(), last)
	}

	cb.Update(keyPress(tea.KeySpace))
	if cb.Checked() || last {
		t.Errorf("Checked() = %v, callback = %v, want both false", cb.Checked(), last)
	}
}

func TestCheckboxViewReflectsState(t *testing.T) {
	cb := NewCheckbox("opt", "Enable", false, nil)
	if !strings.Contains(cb.View(), "[ ]") {
		t.Errorf("unchecked view = %q, want [ ]", cb.View())
	}
	cb.Toggle()
	if !strings.Contains(cb.View(), "[x]") {
		t.Errorf("checked view = %q, want [x]", cb.View())
	}
}

func TestInputFocusDelegation(t *testing.T) {
	in := NewInput("name", "Name", "enter a name")
	if in.Focused() {
		t.Fatal("input focused before Focus()")
	}
	in.Focus()
	if !in.Focused() {
		t.Fatal("input not focused after Focus()")
	}
	in.Blur()
	if in.Focused() {
		t.Fatal("input focused after Blur()")
	}
}

func TestInputIgnoresInputWhenBlurred(t *testing.T) {
	in := NewInput("name", "Name", "")
	in.Update(keyPress('a'))
	if in.Value() != "" {
		t.Errorf("blurred input accepted text: %q", in.Value())
	}
}

func TestRegionDefaultsOutOfTabRing(t *testing.T) {
	btn := NewButton("ok", "OK", nil)
	region := NewRegion("body", btn)

	order := focus.Descendants(region)
	if len(order) != 1 || order[0] != focus.Focusable(btn) {
		t.Fatalf("Descendants = %d nodes, want just the button", len(order))
	}
	if region.TabIndex() != -1 {
		t.Errorf("TabIndex = %d, want -1", region.TabIndex())
	}
}

func TestRegionAppendRemove(t *testing.T) {
	a := NewButton("a", "A", nil)
	b := NewButton("b", "B", nil)
	region := NewRegion("body")

	region.Append(a, b)
	if len(region.Children()) != 2 {
		t.Fatalf("Children = %d, want 2", len(region.Children()))
	}

	if !region.Remove(a) {
		t.Fatal("Remove(a) returned false")
	}
	if len(region.Children()) != 1 || region.Children()[0] != focus.Node(b) {
		t.Fatalf("expected only b to remain")
	}

	// Removing again is a no-op.
	if region.Remove(a) {
		t.Fatal("Remove(a) succeeded twice")
	}
}

func TestRegionHiddenSubtreeSkipped(t *testing.T) {
	btn := NewButton("ok", "OK", nil)
	region := NewRegion("body", btn)
	region.SetHidden(true)

	if got := focus.Descendants(region); len(got) != 0 {
		t.Errorf("hidden region yielded %d focusables, want 0", len(got))
	}
	if region.View() != "" {
		t.Errorf("hidden region rendered %q", region.View())
	}
}

func TestLabelText(t *testing.T) {
	l := NewLabel("title", "Confirm Delete")
	if l.Text() != "Confirm Delete" {
		t.Errorf("Text() = %q", l.Text())
	}
	l.SetText("Updated")
	if l.Text() != "Updated" {
		t.Errorf("Text() = %q after SetText", l.Text())
	}
}

func TestGroupStacksChildren(t *testing.T) {
	g := NewGroup("g", NewLabel("a", "first"), NewLabel("b", "second"))
	view := g.View()
	if !strings.Contains(view, "first") || !strings.Contains(view, "second") {
		t.Errorf("group view missing children: %q", view)
	}
}
