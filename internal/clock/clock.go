// Package clock is the time source for session timestamps.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = func() time.Time { return time.Now().UTC() }

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }
