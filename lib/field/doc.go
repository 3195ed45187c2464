// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// Package field models a single cron-style field: its numeric domain,
// the set of ticks currently selected in it, and the mutations a user
// gesture can apply to that set.
//
// A [Unit] describes the domain of one field kind (minutes 0-59,
// hours 0-23, month days 1-31, months 1-12, week days 0-6). A
// [Selection] is either a discrete set of integers within the domain
// or a periodic step ("every N units starting at the domain minimum").
// The two representations are mutually exclusive; an empty Selection
// means "no constraint" and a discrete set covering the whole domain
// normalizes to empty on every write.
//
// [Apply] is the single mutation entry point. It takes the previous
// Selection and a resolved gesture action ([Toggle], [RangeToggle],
// [PeriodicReplace]) and returns the next Selection. Selections are
// immutable values; Apply never modifies its input. Malformed option
// tokens degrade to a no-op rather than an error — a UI control
// prefers robustness over strict validation.
//
// This package depends on no other tickpick packages.
package field
