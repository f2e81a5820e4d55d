package focus

import (
	"sort"

	"github.com/openflow/surface/internal/logger"
)

// Descendants returns root's currently focusable descendants in tab order:
// positive tab priorities first in ascending order, then zero priorities in
// tree order. The sequence is recomputed on every call — dialog content can
// change while open, so results are never cached.
func Descendants(root Container) []Focusable {
	if root == nil {
		return nil
	}
	if f, ok := root.(Focusable); ok && f.Hidden() {
		return nil
	}
	var found []Focusable
	collect(root, &found)

	// Stable sort keeps tree order within equal priorities.
	sort.SliceStable(found, func(i, j int) bool {
		a, b := found[i].TabIndex(), found[j].TabIndex()
		if a > 0 && b > 0 {
			return a < b
		}
		return a > 0 && b <= 0
	})
	return found
}

func collect(c Container, out *[]Focusable) {
	for _, child := range c.Children() {
		f, isFocusable := child.(Focusable)
		if isFocusable && f.Hidden() {
			// A hidden node hides its whole subtree.
			continue
		}
		if isFocusable && focusable(f) {
			*out = append(*out, f)
		}
		if sub, ok := child.(Container); ok {
			collect(sub, out)
		}
	}
}

func focusable(f Focusable) bool {
	return !f.Disabled() && !f.Hidden() && f.TabIndex() >= 0
}

// First returns the first focusable descendant of root, or nil.
func First(root Container) Focusable {
	ring := Descendants(root)
	if len(ring) == 0 {
		return nil
	}
	return ring[0]
}

// Last returns the last focusable descendant of root, or nil.
func Last(root Container) Focusable {
	ring := Descendants(root)
	if len(ring) == 0 {
		return nil
	}
	return ring[len(ring)-1]
}

// Scope moves platform focus to the edges of a container's tab ring.
type Scope struct {
	mgr *Manager
}

// NewScope creates a scope over the given manager.
func NewScope(mgr *Manager) *Scope {
	return &Scope{mgr: mgr}
}

// FocusFirst focuses the first focusable descendant of root. When root has
// none, focus lands on root itself so an empty container is still not a
// keyboard dead end. Returns the node that received focus.
func (s *Scope) FocusFirst(root Container) Focusable {
	return s.focusEdge(root, First(root))
}

// FocusLast is the symmetric operation for the last focusable descendant.
func (s *Scope) FocusLast(root Container) Focusable {
	return s.focusEdge(root, Last(root))
}

func (s *Scope) focusEdge(root Container, target Focusable) Focusable {
	if target == nil {
		f, ok := root.(Focusable)
		if !ok {
			logger.Warn("focus: container %q is empty and not itself focusable, falling back to document root", root.ID())
			s.mgr.FocusRoot()
			return s.mgr.Current()
		}
		target = f
	}
	s.mgr.SetFocus(target)
	return target
}
