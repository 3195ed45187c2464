// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// Package gesture turns a raw stream of per-option clicks into
// resolved selection actions.
//
// A click does not resolve immediately: the engine waits out a
// debounce window (300ms by default) in case a second click arrives
// that changes the gesture's meaning — a double-click on the same
// option is the periodicity shortcut, and clicks on two different
// options within the window coalesce into one combined toggle. Each
// click restarts the window, so only the timer attached to the last
// click in a gesture resolves it; earlier timers go stale and do
// nothing.
//
// Exactly one action is committed per resolved gesture. Resetting the
// engine (selection cleared externally, control disabled) discards
// the pending clicks without committing anything.
//
// Timers come from an injected clock.Clock, so tests drive the window
// deterministically with a fake clock.
package gesture
