package typeguard

import "sync/atomic"

// enabled gates whether call-interception layers consult the engine at all.
// The flag is atomic because interceptors read it from request goroutines.
var enabled atomic.Bool

func init() {
	enabled.Store(true)
}

// Enable turns checking on. Checking is on by default.
func Enable() { enabled.Store(true) }

// Disable turns checking off process-wide. Interception layers read the
// flag per call and skip the engine entirely while it is off.
func Disable() { enabled.Store(false) }

// Enabled reports whether checking is on.
func Enabled() bool { return enabled.Load() }
