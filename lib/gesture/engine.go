// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package gesture

import (
	"sync"
	"time"

	"github.com/tickpick/tickpick/lib/clock"
	"github.com/tickpick/tickpick/lib/field"
)

// DefaultWindow is the default debounce window. 300ms is long enough
// to catch a deliberate double-click and short enough that a single
// click still feels immediate.
const DefaultWindow = 300 * time.Millisecond

// pendingClick is one raw click held inside the debounce window. The
// timestamp is the host's event time; Click compares it against the
// previous click's to detect a gesture whose window already closed
// before its timer was delivered.
type pendingClick struct {
	token string
	at    time.Time
}

// Engine coalesces timestamped option clicks into selection actions.
// Create one per control with New; it is safe for concurrent use
// (the debounce timer fires on a separate goroutine under the real
// clock).
type Engine struct {
	mu      sync.Mutex
	clock   clock.Clock
	window  time.Duration
	commit  func(field.Action)
	enabled bool

	// doublePeriodic enables the double-click periodicity shortcut.
	doublePeriodic bool

	// pending holds the clicks of the gesture in flight. At most two
	// live entries: a third click within the window supersedes the
	// oldest.
	pending []pendingClick

	// timer is the deferred resolution for the latest click.
	timer *clock.Timer

	// generation guards against a stale timer firing after a newer
	// click restarted the window. Each click increments it; the fire
	// handler checks that the generation hasn't moved.
	generation uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used for debounce timers. The default is
// clock.Real(). Tests inject clock.Fake() for deterministic control.
func WithClock(c clock.Clock) Option {
	return func(engine *Engine) { engine.clock = c }
}

// WithWindow sets the debounce window. The default is DefaultWindow.
func WithWindow(window time.Duration) Option {
	return func(engine *Engine) { engine.window = window }
}

// WithDoubleClickPeriodic enables the double-click periodicity
// shortcut: two clicks on the same option within the window resolve
// to a PeriodicReplace instead of a toggle pair.
func WithDoubleClickPeriodic(enabled bool) Option {
	return func(engine *Engine) { engine.doublePeriodic = enabled }
}

// New creates an engine that calls commit exactly once per resolved
// gesture. The commit callback runs on the timer's goroutine under
// the real clock, and synchronously inside FakeClock.Advance in
// tests.
func New(commit func(field.Action), options ...Option) *Engine {
	engine := &Engine{
		clock:   clock.Real(),
		window:  DefaultWindow,
		commit:  commit,
		enabled: true,
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

// SetEnabled enables or disables the engine. Disabling discards any
// gesture in flight; a disabled engine ignores clicks entirely, so a
// read-only control never commits an action.
func (engine *Engine) SetEnabled(enabled bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.enabled = enabled
	if !enabled {
		engine.resetLocked()
	}
}

// Reset discards the pending clicks and cancels the debounce timer
// without committing anything. Call when the selection is replaced
// from outside mid-gesture.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.resetLocked()
}

// resetLocked must be called with engine.mu held.
func (engine *Engine) resetLocked() {
	engine.pending = nil
	engine.generation++
	if engine.timer != nil {
		engine.timer.Stop()
		engine.timer = nil
	}
}

// Click records a click on the option named by token and restarts the
// debounce window. The gesture resolves when the window elapses with
// no further clicks.
//
// The window is measured between click timestamps, not timer
// deliveries. When now is already more than a window past the
// previous click, that gesture is over regardless of whether its
// timer has fired yet; it resolves here so a late timer cannot merge
// two gestures into one.
func (engine *Engine) Click(token string, now time.Time) {
	engine.mu.Lock()

	if !engine.enabled {
		engine.mu.Unlock()
		return
	}

	var flushed []pendingClick
	if len(engine.pending) > 0 && now.Sub(engine.pending[len(engine.pending)-1].at) > engine.window {
		flushed = engine.pending
		engine.pending = nil
	}

	engine.pending = append(engine.pending, pendingClick{token: token, at: now})
	if len(engine.pending) > 2 {
		engine.pending = engine.pending[len(engine.pending)-2:]
	}

	engine.generation++
	current := engine.generation

	// The previous timer becomes a no-op either way; stopping it just
	// releases the waiter early.
	if engine.timer != nil {
		engine.timer.Stop()
	}
	engine.timer = engine.clock.AfterFunc(engine.window, func() {
		engine.resolve(current)
	})
	engine.mu.Unlock()

	// Commit outside the lock: the callback may call back into the
	// engine.
	if flushed != nil {
		if action, ok := disambiguate(flushed, engine.doublePeriodic); ok {
			engine.commit(action)
		}
	}
}

// resolve fires when a debounce timer elapses. Only the timer from
// the gesture's last click may resolve it; stale generations return
// without effect.
func (engine *Engine) resolve(generation uint64) {
	engine.mu.Lock()
	if generation != engine.generation {
		engine.mu.Unlock()
		return
	}

	pending := engine.pending
	engine.pending = nil
	engine.timer = nil
	engine.mu.Unlock()

	action, ok := disambiguate(pending, engine.doublePeriodic)
	if ok {
		engine.commit(action)
	}
}

// disambiguate maps the final pending contents of a window to the one
// action the gesture means.
func disambiguate(pending []pendingClick, doublePeriodic bool) (field.Action, bool) {
	switch len(pending) {
	case 1:
		return field.Toggle{Token: pending[0].token}, true

	case 2:
		first, second := pending[0], pending[1]
		if first.token == second.token && doublePeriodic {
			step, _, err := field.ParseToken(first.token)
			if err != nil || step == 0 || step == 1 {
				// Periodicity of 0 or 1 is meaningless; the
				// double-click degrades to a plain toggle.
				return field.Toggle{Token: first.token}, true
			}
			return field.PeriodicReplace{Step: step}, true
		}
		return field.RangeToggle{TokenA: first.token, TokenB: second.token}, true

	default:
		return nil, false
	}
}
