// Package announce implements an assistive live region: a queue of short
// text notifications surfaced to non-visual users when the UI changes under
// them, rendered by the host as a status line.
package announce

import (
	"time"

	"github.com/google/uuid"

	"github.com/openflow/surface/internal/logger"
)

// Priority controls how a message enters the region.
type Priority int

const (
	// Polite messages wait their turn and never interrupt the message
	// currently being surfaced.
	Polite Priority = iota
	// Assertive messages replace the current message immediately.
	Assertive
)

func (p Priority) String() string {
	if p == Assertive {
		return "assertive"
	}
	return "polite"
}

// Message is one announcement.
type Message struct {
	ID       string
	Text     string
	Priority Priority
	At       time.Time
}

// Notifier mirrors announcements to an out-of-band channel, such as desktop
// notifications. Optional.
type Notifier interface {
	Notify(title, message string) error
}

// Region is a live region. The head of the queue is the message currently
// surfaced; the host advances the queue after each message has been shown.
type Region struct {
	queue    []Message
	notifier Notifier
}

// New creates an empty region.
func New() *Region {
	return &Region{}
}

// SetNotifier attaches an out-of-band mirror for announcements. Pass nil to
// detach.
func (r *Region) SetNotifier(n Notifier) {
	r.notifier = n
}

// Announce adds a message to the region and returns it. Polite messages are
// appended behind whatever is already queued; assertive messages preempt the
// queue head.
func (r *Region) Announce(text string, p Priority) Message {
	msg := Message{
		ID:       uuid.NewString(),
		Text:     text,
		Priority: p,
		At:       time.Now(),
	}

	if p == Assertive {
		r.queue = append([]Message{msg}, r.queue...)
	} else {
		r.queue = append(r.queue, msg)
	}
	logger.Debug("announce: %s %q (queue %d)", p, text, len(r.queue))

	if r.notifier != nil {
		if err := r.notifier.Notify("Surface", text); err != nil {
			logger.Warn("announce: notifier failed: %v", err)
		}
	}
	return msg
}

// Current returns the message being surfaced, if any.
func (r *Region) Current() (Message, bool) {
	if len(r.queue) == 0 {
		return Message{}, false
	}
	return r.queue[0], true
}

// Advance drops the current message, surfacing the next queued one. The host
// calls this once a message has been displayed long enough.
func (r *Region) Advance() {
	if len(r.queue) == 0 {
		return
	}
	r.queue = r.queue[1:]
}

// Len returns the number of queued messages, including the current one.
func (r *Region) Len() int { return len(r.queue) }

// View renders the current message as a single status line, or an empty
// string when the region is quiet.
func (r *Region) View() string {
	msg, ok := r.Current()
	if !ok {
		return ""
	}
	return msg.Text
}
