package focus

import (
	"github.com/openflow/surface/internal/logger"
)

// Manager tracks the platform's currently focused node for one document.
// It is passed by injection rather than held as a package global so tests
// can run isolated trees side by side.
type Manager struct {
	root    Focusable // document body analog, the restoration fallback
	current Focusable
}

// NewManager creates a manager whose fallback target is root. Focus starts
// on root, so there is never a moment with no focused node.
func NewManager(root Focusable) *Manager {
	m := &Manager{root: root}
	if root != nil {
		root.Focus()
		m.current = root
	}
	return m
}

// Root returns the document fallback target.
func (m *Manager) Root() Focusable {
	return m.root
}

// Current returns the currently focused node.
func (m *Manager) Current() Focusable {
	return m.current
}

// SetFocus moves focus to f, blurring the previous holder. A nil f falls
// back to the document root.
func (m *Manager) SetFocus(f Focusable) {
	if f == nil {
		m.FocusRoot()
		return
	}
	if m.current == f {
		return
	}
	if m.current != nil {
		m.current.Blur()
	}
	f.Focus()
	m.current = f
	logger.Debug("focus: now on %q", f.ID())
}

// FocusRoot moves focus to the document fallback target.
func (m *Manager) FocusRoot() {
	if m.root == nil {
		logger.Warn("focus: no document root to fall back to")
		return
	}
	m.SetFocus(m.root)
}
