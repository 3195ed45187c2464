// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction so the click
// debounce window can be tested deterministically.
//
// The gesture engine accepts a Clock instead of calling time.Now or
// time.AfterFunc directly. In production, Real() provides standard
// library behavior. In tests, Fake() provides a clock that advances
// only when Advance is called, so a test can place two clicks 100ms
// apart and then fire the debounce timer without sleeping.
//
// # Wiring pattern
//
// Production:
//
//	engine := gesture.New(commit)
//
// Tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	engine := gesture.New(commit, gesture.WithClock(c))
//	engine.Click("5", c.Now())
//	c.Advance(300 * time.Millisecond) // fires the debounce timer
//
// AfterFunc callbacks on the fake clock run synchronously inside
// Advance, in deadline order, so a test observes the resolved gesture
// as soon as Advance returns.
package clock
