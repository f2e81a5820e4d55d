// Package dialog implements the modal dialog controller: a state machine
// that coordinates focus capture, focus trapping, background scroll locking,
// and screen-reader announcements around an open dialog.
//
// The controller never owns the open flag. Callers hold it and drive
// transitions through SetOpen; dismissal gestures (escape, backdrop click,
// the close control) only request closing via the OnClose callback.
package dialog

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	tea "charm.land/bubbletea/v2"

	surferrors "github.com/openflow/surface/internal/errors"
	"github.com/openflow/surface/internal/keys"
	"github.com/openflow/surface/internal/logger"
	"github.com/openflow/surface/internal/ui"
	"github.com/openflow/surface/internal/ui/announce"
	"github.com/openflow/surface/internal/ui/focus"
	"github.com/openflow/surface/internal/ui/scrolllock"
)

// State tracks where a controller is in its lifecycle. Opening and Closing
// are transient: they exist only inside a SetOpen call, so observers outside
// the transition see Closed or Open.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	}
	return "unknown"
}

// Opts configures dismissal gates and labelling for a dialog.
type Opts struct {
	// Title is the fallback accessible name when LabelID is empty.
	Title string

	// LabelID names a node inside the dialog content whose text labels the
	// dialog. DescriptionID works the same way for the description.
	LabelID       string
	DescriptionID string

	CloseOnEscape        bool
	CloseOnBackdropClick bool
	ShowCloseControl     bool
}

// DefaultOpts enables every dismissal affordance.
func DefaultOpts(title string) Opts {
	return Opts{
		Title:                title,
		CloseOnEscape:        true,
		CloseOnBackdropClick: true,
		ShowCloseControl:     true,
	}
}

// Deps are the shared services a controller coordinates. Nested dialogs must
// share the same Trap and Lock so stacking and refcounting work.
type Deps struct {
	Manager   *focus.Manager
	Trap      *focus.Trap
	Lock      *scrolllock.Lock
	Announcer *announce.Region
}

// session holds per-open state. A fresh session is minted on each open so a
// stale close can never restore focus captured by an earlier open.
type session struct {
	id                uuid.UUID
	previouslyFocused focus.Focusable
}

// updater is implemented by widgets that consume key input.
type updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// frameRect is the dialog frame's placement on screen, used for backdrop and
// close-control hit testing.
type frameRect struct {
	x, y, w, h int
}

func (r frameRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Controller drives one dialog. Create one per dialog instance and share the
// Deps across all controllers in the application.
type Controller struct {
	opts    Opts
	deps    Deps
	scope   *focus.Scope
	content focus.FocusableContainer
	onClose func()

	state State
	sess  session

	frame     frameRect
	closeCell frameRect
	helpText  string
}

// New builds a controller over a content subtree. onClose is advisory: the
// controller invokes it when the user requests dismissal, and the caller is
// expected to flip its own open flag and call SetOpen(false). A nil onClose
// with any dismissal gate enabled leaves those gestures inert, which is
// almost always a bug, so it is logged.
func New(content focus.FocusableContainer, onClose func(), opts Opts, deps Deps) *Controller {
	if onClose == nil && (opts.CloseOnEscape || opts.CloseOnBackdropClick || opts.ShowCloseControl) {
		logger.Warn("dialog: %v", surferrors.DialogMissingOnClose())
	}
	return &Controller{
		opts:    opts,
		deps:    deps,
		scope:   focus.NewScope(deps.Manager),
		content: content,
		onClose: onClose,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Open reports whether the dialog is open.
func (c *Controller) Open() bool { return c.state == StateOpen }

// Content returns the dialog's content subtree.
func (c *Controller) Content() focus.FocusableContainer { return c.content }

// SetHelp sets the help line rendered under the dialog body.
func (c *Controller) SetHelp(text string) { c.helpText = text }

// SetOpen synchronizes the controller with the caller-owned open flag.
// Calls that match the current state are no-ops, so callers can invoke it
// unconditionally on every render pass.
func (c *Controller) SetOpen(open bool) {
	switch {
	case open && c.state == StateClosed:
		c.open()
	case !open && c.state == StateOpen:
		c.close()
	}
}

func (c *Controller) open() {
	c.state = StateOpening
	c.sess = session{
		id:                uuid.New(),
		previouslyFocused: c.deps.Manager.Current(),
	}

	c.deps.Lock.Acquire()
	c.deps.Trap.Activate(c.content)
	c.scope.FocusFirst(c.content)

	name := c.AccessibleName()
	c.deps.Announcer.Announce("Dialog opened: "+name, announce.Polite)
	logger.Debug("dialog: opened %q (session %s)", name, c.sess.id)

	c.state = StateOpen
}

// close tears down in strict reverse order of open: trap deactivation, then
// scroll lock release, then focus restoration. The deferred steps run even
// if an earlier one panics, so a dialog can never leave the trap or lock
// engaged after closing.
func (c *Controller) close() {
	c.state = StateClosing
	sess := c.sess

	defer func() {
		c.sess = session{}
		c.state = StateClosed
		logger.Debug("dialog: closed (session %s)", sess.id)
	}()
	defer c.restoreFocus(sess.previouslyFocused)
	defer c.deps.Lock.Release()

	c.deps.Trap.Deactivate(c.content)
}

// restoreFocus returns focus to the node focused before open, falling back
// to the document root when the node is gone, disabled, or hidden.
func (c *Controller) restoreFocus(prev focus.Focusable) {
	if prev != nil && focus.InTree(c.deps.Manager.Root(), prev) && !prev.Disabled() && !prev.Hidden() {
		c.deps.Manager.SetFocus(prev)
		return
	}
	if prev != nil {
		logger.Debug("dialog: %v", surferrors.FocusTargetGone(prev.ID()))
	}
	c.deps.Manager.FocusRoot()
}

// requestClose invokes the advisory close callback. The dialog stays open
// until the caller flips its flag and calls SetOpen(false).
func (c *Controller) requestClose(reason string) {
	if c.onClose == nil {
		logger.Warn("dialog: dismissal (%s) ignored, no close callback", reason)
		return
	}
	logger.Debug("dialog: dismissal requested (%s, session %s)", reason, c.sess.id)
	c.onClose()
}

// RequestClose asks the caller to close the dialog, as if the user pressed
// the close control.
func (c *Controller) RequestClose() {
	if c.state == StateOpen {
		c.requestClose("programmatic")
	}
}

// Update handles input while the dialog is open. It returns the command from
// the focused widget, plus a handled flag: while open the dialog consumes
// all input, so handled is true for every message except when closed.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	if c.state != StateOpen {
		return nil, false
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Escape:
			if c.opts.CloseOnEscape {
				c.requestClose("escape")
			}
			return nil, true
		case keys.Tab:
			c.deps.Trap.HandleTab(true)
			return nil, true
		case keys.ShiftTab:
			c.deps.Trap.HandleTab(false)
			return nil, true
		}
		if cur := c.deps.Manager.Current(); cur != nil {
			if u, ok := cur.(updater); ok {
				return u.Update(msg), true
			}
		}
		return nil, true

	case tea.MouseClickMsg:
		if c.opts.ShowCloseControl && c.closeCell.contains(msg.X, msg.Y) {
			c.requestClose("close-control")
			return nil, true
		}
		if !c.frame.contains(msg.X, msg.Y) {
			if c.opts.CloseOnBackdropClick {
				c.requestClose("backdrop")
			}
			return nil, true
		}
		return nil, true

	case tea.MouseWheelMsg:
		// Background scrolling is suppressed while the lock is held.
		return nil, true
	}

	return nil, true
}

// View renders the dialog centered on a screen of the given size and records
// the frame geometry for mouse hit testing.
func (c *Controller) View(screenWidth, screenHeight int) string {
	if c.state != StateOpen {
		return ""
	}

	// Interior width of the frame, inside DialogStyle's horizontal padding.
	innerWidth := ui.DialogWidth - ui.DialogStyle.GetHorizontalPadding()

	title := ui.DialogTitleStyle.Render(ui.TruncateString(c.AccessibleName(), innerWidth-4))
	titleRow := title
	if c.opts.ShowCloseControl {
		closeControl := ui.DialogCloseStyle.Render("✕")
		gap := innerWidth - lipgloss.Width(title) - lipgloss.Width(closeControl)
		if gap < 1 {
			gap = 1
		}
		titleRow = lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), closeControl)
	}

	sections := []string{titleRow}
	if desc := c.AccessibleDescription(); desc != "" {
		sections = append(sections, ui.LabelStyle.Render(desc))
	}
	if body := c.content.View(); body != "" {
		sections = append(sections, body)
	}
	if c.helpText != "" {
		sections = append(sections, ui.DialogHelpStyle.Render(c.helpText))
	}

	frame := ui.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	fw, fh := lipgloss.Width(frame), lipgloss.Height(frame)
	c.frame = frameRect{
		x: (screenWidth - fw) / 2,
		y: (screenHeight - fh) / 2,
		w: fw,
		h: fh,
	}
	if c.opts.ShowCloseControl {
		// Top-right corner of the frame interior, past the border and padding.
		c.closeCell = frameRect{x: c.frame.x + fw - 4, y: c.frame.y + 1, w: 3, h: 1}
	} else {
		c.closeCell = frameRect{}
	}

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		frame,
	)
}

// AccessibleName resolves the dialog's name: the text of the LabelID node
// when set and present, otherwise the configured title.
func (c *Controller) AccessibleName() string {
	if c.opts.LabelID != "" {
		if name := nodeText(c.content, c.opts.LabelID); name != "" {
			return name
		}
		logger.Debug("dialog: label node %q missing, using title", c.opts.LabelID)
	}
	return c.opts.Title
}

// AccessibleDescription resolves the DescriptionID node's text, or "".
func (c *Controller) AccessibleDescription() string {
	if c.opts.DescriptionID == "" {
		return ""
	}
	return nodeText(c.content, c.opts.DescriptionID)
}

func nodeText(root focus.Node, id string) string {
	node := focus.FindByID(root, id)
	if node == nil {
		return ""
	}
	if t, ok := node.(focus.Texter); ok {
		return t.Text()
	}
	return ansi.Strip(node.View())
}
