package focus

import (
	surferrors "github.com/openflow/surface/internal/errors"
	"github.com/openflow/surface/internal/logger"
)

// Sentinel is an invisible focus stop bracketing trapped content. Focus
// landing on a sentinel means it was about to leave the container; the trap
// bounces it to the opposite edge of the tab ring.
type Sentinel struct {
	id      string
	focused bool
}

func newSentinel(id string) *Sentinel {
	return &Sentinel{id: id}
}

func (s *Sentinel) ID() string     { return s.id }
func (s *Sentinel) View() string   { return "" }
func (s *Sentinel) Focus()         { s.focused = true }
func (s *Sentinel) Blur()          { s.focused = false }
func (s *Sentinel) Focused() bool  { return s.focused }
func (s *Sentinel) Disabled() bool { return false }
func (s *Sentinel) Hidden() bool   { return true }
func (s *Sentinel) TabIndex() int  { return 0 }

// Activation is one entry in the trap stack: a container whose descendants
// must keep focus while the activation is the top of the stack.
type Activation struct {
	root   Container
	start  *Sentinel
	end    *Sentinel
	active bool
}

// Root returns the trapped container.
func (a *Activation) Root() Container { return a.root }

// Active reports whether the activation is still on the stack.
func (a *Activation) Active() bool { return a.active }

// StartSentinel returns the focus stop logically placed before the
// container's content.
func (a *Activation) StartSentinel() *Sentinel { return a.start }

// EndSentinel returns the focus stop logically placed after the container's
// content.
func (a *Activation) EndSentinel() *Sentinel { return a.end }

// Trap owns the activation stack for one document. Only the top activation
// intercepts tab navigation; lower activations stay inert until the ones
// above them deactivate, which is what makes nested dialogs behave.
//
// Only dialog controllers may push and pop activations, and the stack is
// passed by injection: one Trap per document, shared by every dialog in it.
type Trap struct {
	mgr   *Manager
	scope *Scope
	stack []*Activation
}

// NewTrap creates a trap over the given manager.
func NewTrap(mgr *Manager) *Trap {
	return &Trap{mgr: mgr, scope: NewScope(mgr)}
}

// Activate pushes a new activation for root and returns it. Activating a
// root that is already on the stack is a misuse: it is logged and the
// existing activation is returned unchanged rather than corrupting order.
func (t *Trap) Activate(root Container) *Activation {
	for _, a := range t.stack {
		if a.root == root {
			logger.Warn("focus: %v", surferrors.TrapAlreadyActive(root.ID()))
			return a
		}
	}
	a := &Activation{
		root:   root,
		start:  newSentinel(root.ID() + "-sentinel-start"),
		end:    newSentinel(root.ID() + "-sentinel-end"),
		active: true,
	}
	t.stack = append(t.stack, a)
	logger.Debug("focus: trap activated for %q (depth %d)", root.ID(), len(t.stack))
	return a
}

// Deactivate pops the activation for root if it is the top of the stack.
// Out-of-order deactivation is logged and ignored so one caller's teardown
// bug cannot break dialogs that are still open.
func (t *Trap) Deactivate(root Container) {
	top := t.Top()
	if top == nil || top.root != root {
		logger.Warn("focus: %v", surferrors.TrapNotTop(root.ID()))
		return
	}
	top.active = false
	top.start.Blur()
	top.end.Blur()
	t.stack = t.stack[:len(t.stack)-1]
	logger.Debug("focus: trap deactivated for %q (depth %d)", root.ID(), len(t.stack))
}

// Top returns the activation currently receiving tab interception, or nil.
func (t *Trap) Top() *Activation {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

// Depth returns the number of activations on the stack.
func (t *Trap) Depth() int { return len(t.stack) }

// Active reports whether any activation is on the stack.
func (t *Trap) Active() bool { return len(t.stack) > 0 }

// HandleTab advances focus within the top activation's tab ring; forward is
// false for shift+tab. Forward from the last focusable descendant (or the
// end sentinel) wraps to the first; backward from the first (or the start
// sentinel) wraps to the last. A container with no focusable descendants
// suppresses tabbing entirely: focus stays pinned to the container root.
//
// Returns true when the event was consumed. While any activation is on the
// stack every tab event is consumed, so the caller must not run its own
// navigation.
func (t *Trap) HandleTab(forward bool) bool {
	top := t.Top()
	if top == nil {
		return false
	}

	ring := Descendants(top.root)
	if len(ring) == 0 {
		if f, ok := top.root.(Focusable); ok && t.mgr.Current() != f {
			t.mgr.SetFocus(f)
		}
		return true
	}

	cur := t.mgr.Current()
	idx := -1
	for i, f := range ring {
		if f == cur {
			idx = i
			break
		}
	}

	var next Focusable
	switch {
	case cur == top.start || cur == top.end:
		// Focus was about to escape; bounce to the edge the motion re-enters.
		if forward {
			next = ring[0]
		} else {
			next = ring[len(ring)-1]
		}
	case idx == -1:
		// Focus is on the container root or a non-ring node; enter the ring.
		if forward {
			next = ring[0]
		} else {
			next = ring[len(ring)-1]
		}
	case forward && idx == len(ring)-1:
		next = ring[0]
	case !forward && idx == 0:
		next = ring[len(ring)-1]
	case forward:
		next = ring[idx+1]
	default:
		next = ring[idx-1]
	}

	t.mgr.SetFocus(next)
	return true
}
