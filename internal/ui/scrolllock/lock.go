// Package scrolllock suspends background document scrolling for the
// lifetime of active overlays. A reference count handles overlapping
// dialogs: scrolling stays suspended until every acquirer has released.
package scrolllock

import (
	surferrors "github.com/openflow/surface/internal/errors"
	"github.com/openflow/surface/internal/logger"
)

// Surface is the scrollable background document the lock suspends.
type Surface interface {
	ScrollOffset() int
	SetScrollOffset(int)
}

// Lock is the per-document scroll lock. Only dialog controllers acquire and
// release it, always in 1:1 pairs per dialog session. While Locked() the
// host must drop scroll input.
type Lock struct {
	surface     Surface
	count       int
	savedOffset int
}

// New creates a lock over the given surface.
func New(surface Surface) *Lock {
	return &Lock{surface: surface}
}

// Acquire increments the lock count. On the 0→1 transition the current
// scroll offset is captured so it can be restored exactly on the final
// release.
func (l *Lock) Acquire() {
	l.count++
	if l.count == 1 && l.surface != nil {
		l.savedOffset = l.surface.ScrollOffset()
		logger.Debug("scrolllock: suspended at offset %d", l.savedOffset)
	}
}

// Release decrements the lock count. On the 1→0 transition the captured
// scroll offset is restored. An unmatched release is logged and ignored
// rather than letting the count go negative.
func (l *Lock) Release() {
	if l.count == 0 {
		logger.Warn("scrolllock: %v", surferrors.LockUnderflow())
		return
	}
	l.count--
	if l.count == 0 && l.surface != nil {
		l.surface.SetScrollOffset(l.savedOffset)
		logger.Debug("scrolllock: restored offset %d", l.savedOffset)
	}
}

// Locked reports whether scrolling is currently suspended.
func (l *Lock) Locked() bool { return l.count > 0 }

// Depth returns the current lock count.
func (l *Lock) Depth() int { return l.count }
