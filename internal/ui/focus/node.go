// Package focus implements keyboard focus management for Surface widget
// trees: a per-document focus manager, tab-order scope enumeration, and a
// stack of focus trap activations used by modal dialogs.
package focus

// Node is an element in a widget tree. Every node has a stable ID, used for
// label/description references and for focus restoration checks.
type Node interface {
	ID() string
	View() string
}

// Container groups child nodes in presentation order.
type Container interface {
	Node
	Children() []Node
}

// Focusable is implemented by nodes that can hold keyboard focus.
type Focusable interface {
	Node
	Focus()
	Blur()
	Focused() bool
	Disabled() bool
	Hidden() bool

	// TabIndex reports the node's tab priority. Zero places the node in the
	// tab ring in tree order; positive values sort ahead of zero in ascending
	// order; negative values make the node focusable only programmatically
	// (the convention dialog content roots use).
	TabIndex() int
}

// FocusableContainer is a container that can itself hold focus, such as a
// dialog content root or the document body.
type FocusableContainer interface {
	Container
	Focusable
}

// Texter is an optional interface for nodes that can report their content as
// plain text, used when resolving accessible names.
type Texter interface {
	Text() string
}

// InTree reports whether target is root or one of root's descendants.
// Comparison is by identity, so a node removed from the tree is not found
// even if an equal-looking node took its place.
func InTree(root Node, target Node) bool {
	if root == nil || target == nil {
		return false
	}
	if root == target {
		return true
	}
	c, ok := root.(Container)
	if !ok {
		return false
	}
	for _, child := range c.Children() {
		if InTree(child, target) {
			return true
		}
	}
	return false
}

// FindByID returns the first node under root (inclusive) with the given ID,
// or nil when no such node exists.
func FindByID(root Node, id string) Node {
	if root == nil || id == "" {
		return nil
	}
	if root.ID() == id {
		return root
	}
	c, ok := root.(Container)
	if !ok {
		return nil
	}
	for _, child := range c.Children() {
		if n := FindByID(child, id); n != nil {
			return n
		}
	}
	return nil
}
