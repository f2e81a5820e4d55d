package widgets

import (
	"charm.land/lipgloss/v2"

	"github.com/openflow/surface/internal/ui"
	"github.com/openflow/surface/internal/ui/focus"
)

// Label is a static, non-focusable text node.
type Label struct {
	id   string
	text string
}

var _ focus.Node = (*Label)(nil)
var _ focus.Texter = (*Label)(nil)

// NewLabel creates a static text node.
func NewLabel(id, text string) *Label {
	return &Label{id: id, text: text}
}

func (l *Label) ID() string { return l.id }

// Text returns the label text for accessible-name resolution.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(text string) { l.text = text }

// View renders the label.
func (l *Label) View() string { return ui.LabelStyle.Render(l.text) }

// Group is a non-focusable container that stacks its children vertically.
type Group struct {
	id       string
	children []focus.Node
}

var _ focus.Container = (*Group)(nil)

// NewGroup creates a container of nodes.
func NewGroup(id string, children ...focus.Node) *Group {
	return &Group{id: id, children: children}
}

func (g *Group) ID() string                 { return g.id }
func (g *Group) Children() []focus.Node     { return g.children }
func (g *Group) Append(nodes ...focus.Node) { g.children = append(g.children, nodes...) }

// View renders the children top to bottom, skipping empty views.
func (g *Group) View() string { return stackViews(g.children) }

// Region is a focusable container: it groups child nodes and can itself hold
// focus without joining the tab ring. Dialog content roots and the document
// body are Regions.
type Region struct {
	id       string
	children []focus.Node
	focused  bool
	hidden   bool
	tabIndex int
}

var _ focus.FocusableContainer = (*Region)(nil)

// NewRegion creates a focusable container with tab priority -1, so it can
// receive focus programmatically but never joins the tab ring.
func NewRegion(id string, children ...focus.Node) *Region {
	return &Region{id: id, children: children, tabIndex: -1}
}

func (r *Region) ID() string             { return r.id }
func (r *Region) Children() []focus.Node { return r.children }
func (r *Region) Focus()                 { r.focused = true }
func (r *Region) Blur()                  { r.focused = false }
func (r *Region) Focused() bool          { return r.focused }
func (r *Region) Disabled() bool         { return false }
func (r *Region) Hidden() bool           { return r.hidden }
func (r *Region) TabIndex() int          { return r.tabIndex }

// SetHidden toggles visibility of the whole subtree.
func (r *Region) SetHidden(hidden bool) { r.hidden = hidden }

// SetTabIndex sets the tab priority.
func (r *Region) SetTabIndex(i int) { r.tabIndex = i }

// SetChildren replaces the region's children.
func (r *Region) SetChildren(nodes ...focus.Node) { r.children = nodes }

// Append mounts nodes at the end of the region.
func (r *Region) Append(nodes ...focus.Node) { r.children = append(r.children, nodes...) }

// Remove unmounts a node by identity. Returns false when the node was not a
// direct child.
func (r *Region) Remove(node focus.Node) bool {
	for i, child := range r.children {
		if child == node {
			r.children = append(r.children[:i], r.children[i+1:]...)
			return true
		}
	}
	return false
}

// View renders the children top to bottom, skipping empty views.
func (r *Region) View() string {
	if r.hidden {
		return ""
	}
	return stackViews(r.children)
}

func stackViews(nodes []focus.Node) string {
	var views []string
	for _, n := range nodes {
		if v := n.View(); v != "" {
			views = append(views, v)
		}
	}
	if len(views) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
