// Package notify sends desktop notifications for launch failures.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Dispatcher sends notifications to configured channels.
type Dispatcher struct {
	desktop bool
}

// NewDispatcher creates a Dispatcher. With desktop false every call is a
// no-op.
func NewDispatcher(desktop bool) *Dispatcher {
	return &Dispatcher{desktop: desktop}
}

// LaunchFailed reports that the action behind a button could not be
// spawned. The dialog is about to die with the same error, so this is the
// trace that survives it. Delivery is best-effort.
func (d *Dispatcher) LaunchFailed(label string, err error) {
	if !d.desktop {
		return
	}
	message := fmt.Sprintf("Failed to launch %q: %v", label, err)
	if len(message) > 800 {
		message = message[:800] + "..."
	}
	_ = beeep.Alert("nagbox", message, "")
}
