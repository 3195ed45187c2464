// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package field

import "math/bits"

// bitset64 uses a uint64 as a compact set of integers 0-63. Every
// cron field domain fits: the largest is minutes (0-59).
type bitset64 uint64

func (b bitset64) has(value int) bool  { return b&(1<<uint(value)) != 0 }
func (b *bitset64) set(value int)      { *b |= 1 << uint(value) }
func (b *bitset64) clear(value int)    { *b &^= 1 << uint(value) }
func (b bitset64) count() int          { return bits.OnesCount64(uint64(b)) }

// Selection is the state of one field: either a discrete set of
// values within the unit's domain, or a periodic step meaning "every
// step units starting at the domain minimum". The zero value is the
// empty selection, which means "no constraint".
//
// Selections are immutable values. All operations return a new
// Selection and leave the receiver untouched.
type Selection struct {
	values bitset64
	step   int
}

// Empty returns the empty selection ("match everything").
func Empty() Selection { return Selection{} }

// Discrete returns a selection holding exactly the given values.
// Duplicates collapse; values outside 0-63 are ignored (no cron
// domain reaches them).
func Discrete(values ...int) Selection {
	var s Selection
	for _, v := range values {
		if v >= 0 && v < 64 {
			s.values.set(v)
		}
	}
	return s
}

// Periodic returns a periodic selection with the given step. Steps
// below 2 are meaningless ("every 1" is no constraint) and collapse
// to the empty selection.
func Periodic(step int) Selection {
	if step < 2 {
		return Selection{}
	}
	return Selection{step: step}
}

// IsEmpty reports whether the selection constrains nothing.
func (s Selection) IsEmpty() bool { return s.values == 0 && s.step == 0 }

// IsPeriodic reports whether the selection is a periodic step rather
// than a discrete set.
func (s Selection) IsPeriodic() bool { return s.step != 0 }

// Step returns the periodic step, or 0 for discrete selections.
func (s Selection) Step() int { return s.step }

// Contains reports discrete membership. Always false for periodic
// selections; use Materialize first to test against the derived set.
func (s Selection) Contains(v int) bool {
	if s.step != 0 || v < 0 || v >= 64 {
		return false
	}
	return s.values.has(v)
}

// Count returns the number of discretely selected values. Zero for
// periodic selections.
func (s Selection) Count() int {
	if s.step != 0 {
		return 0
	}
	return s.values.count()
}

// Values returns the discretely selected values in ascending order.
// Nil for empty or periodic selections.
func (s Selection) Values() []int {
	if s.step != 0 || s.values == 0 {
		return nil
	}
	values := make([]int, 0, s.values.count())
	for v := 0; v < 64; v++ {
		if s.values.has(v) {
			values = append(values, v)
		}
	}
	return values
}

// Equal reports whether two selections are the same representation:
// identical discrete sets, or identical periodic steps. A periodic
// selection is never Equal to its materialized set; compare through
// Materialize when derived-set equality is wanted.
func (s Selection) Equal(other Selection) bool {
	return s.values == other.values && s.step == other.step
}

// Materialize resolves a periodic selection into the discrete set it
// stands for: {min, min+step, min+2·step, …} ∩ [min, max], anchored
// at the unit's minimum. Discrete selections are returned unchanged.
func (s Selection) Materialize(unit Unit) Selection {
	if s.step == 0 {
		return s
	}
	var out Selection
	for v := unit.Min; v <= unit.Max; v += s.step {
		out.values.set(v)
	}
	return out
}

// Normalize collapses a discrete selection covering the entire domain
// to the empty selection ("every value individually" and "no
// constraint" are the same state). Periodic and partial selections
// are returned unchanged.
func (s Selection) Normalize(unit Unit) Selection {
	if s.step != 0 {
		return s
	}
	if s.values.count() == unit.Count() {
		return Selection{}
	}
	return s
}
