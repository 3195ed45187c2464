// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package field

// Mode controls how Toggle actions combine with the existing
// selection.
type Mode int

const (
	// ModeMultiple lets the user accumulate any number of values;
	// toggling flips individual membership.
	ModeMultiple Mode = iota
	// ModeSingle keeps at most one value selected; toggling a new
	// value replaces the old one, and re-toggling the active value
	// is a no-op rather than a clear.
	ModeSingle
)

// Action is a resolved user gesture, produced by the gesture engine
// and consumed by Apply. Exactly one of the concrete types below.
type Action interface {
	isAction()
}

// Toggle flips (or, in single mode, selects) the value named by an
// option token. Periodic tokens toggle their step value like a plain
// integer.
type Toggle struct {
	Token string
}

// RangeToggle flips two values independently against the same base
// selection. Produced when two different options are clicked within
// one debounce window. Despite the name it is a toggle pair, not a
// contiguous range fill.
type RangeToggle struct {
	TokenA string
	TokenB string
}

// PeriodicReplace replaces the selection with the discrete set
// derived from a periodic step, or clears it when that set is already
// selected. Produced by double-clicking an option when the
// double-click periodicity shortcut is enabled.
type PeriodicReplace struct {
	Step int
}

func (Toggle) isAction()          {}
func (RangeToggle) isAction()     {}
func (PeriodicReplace) isAction() {}

// Apply computes the next selection from the previous one and a
// resolved gesture action. The input selection is never modified.
//
// Error handling follows the control's robustness rule: a token that
// fails to parse makes its part of the action a silent no-op. Apply
// never inserts values outside the unit's domain; callers feeding it
// catalog tokens get in-range values by construction.
//
// Post-condition for every action: a resulting discrete set that
// covers the whole domain normalizes to the empty selection.
func Apply(selection Selection, action Action, mode Mode, unit Unit) Selection {
	switch action := action.(type) {
	case Toggle:
		return toggle(selection, action.Token, mode, unit).Normalize(unit)

	case RangeToggle:
		// Both toggles land before the single full-domain collapse, so
		// a pair that swings through the complete set keeps its result
		// instead of restarting from empty mid-pair.
		next := toggle(selection, action.TokenA, mode, unit)
		next = toggle(next, action.TokenB, mode, unit)
		return next.Normalize(unit)

	case PeriodicReplace:
		return applyPeriodic(selection, action.Step, unit)

	default:
		return selection
	}
}

// toggle flips one token's value without the final full-domain
// normalization. Callers normalize once per action, so a toggle pair
// shares a single collapse at the end.
func toggle(selection Selection, token string, mode Mode, unit Unit) Selection {
	v, _, err := ParseToken(token)
	if err != nil || !unit.Contains(v) {
		return selection
	}

	if mode == ModeSingle {
		if !selection.IsPeriodic() && selection.Count() == 1 && selection.Contains(v) {
			// Re-clicking the active single value: no-op, not a clear.
			return selection
		}
		return Discrete(v)
	}

	// Multiple mode: flip membership in the discrete set. A periodic
	// selection materializes first so the toggle lands on the set the
	// user sees highlighted.
	next := selection.Materialize(unit)
	if next.values.has(v) {
		next.values.clear(v)
	} else {
		next.values.set(v)
	}
	return next
}

// applyPeriodic implements the PeriodicReplace action.
func applyPeriodic(selection Selection, step int, unit Unit) Selection {
	if step < 2 {
		return selection
	}
	computed := Periodic(step).Materialize(unit)

	// Toggling periodicity off: the derived set is already the
	// current selection. Full-domain sets normalize to empty anyway.
	if computed.Equal(selection.Materialize(unit)) {
		return Selection{}
	}
	return computed.Normalize(unit)
}
