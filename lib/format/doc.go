// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// Package format converts selections to display text and back.
//
// [Format] produces the canonical human-readable notation for a
// selection: the unit's empty placeholder, "every N" for periodic
// selections, "first-last/step" for arithmetic progressions, and
// comma-joined values and ranges otherwise. [Parse] inverts every
// form Format emits, so a formatted selection survives a round trip
// through its own display string.
//
// [ParseField] and [Expression] speak raw cron field syntax instead
// (*, */N, comma lists of values and stepped ranges), letting a
// picker be seeded from an existing crontab field and emit one back.
// Single fields only — composing full five-field expressions is out
// of scope.
package format
