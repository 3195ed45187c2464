// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time operations the picker needs: reading the
// current time and scheduling a deferred call. Production code
// injects Real(); tests inject Fake() with deterministic time
// control.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for duration d, then calls f. Returns a Timer
	// that can cancel the pending call with Stop. If d <= 0, f is
	// called immediately in a new goroutine (real) or synchronously
	// (fake).
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a scheduled AfterFunc call.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the Timer from firing. Returns true if the call
// stops the timer, false if the timer has already fired or been
// stopped.
func (t *Timer) Stop() bool { return t.stopFunc() }
