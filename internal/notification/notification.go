// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/openflow/surface/internal/logger"
)

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("notification: sending title=%q message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := beeep.Notify(title, message, "")
	if err != nil {
		logger.Warn("notification: failed to send: %v", err)
	}
	return err
}

// Desktop adapts Send to the announce.Notifier interface so assistive
// announcements can be mirrored to the desktop when the user opts in.
type Desktop struct{}

// Notify implements the announce.Notifier interface.
func (Desktop) Notify(title, message string) error {
	return Send(title, message)
}
