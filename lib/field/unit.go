// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package field

import "fmt"

// Kind identifies which cron field a Unit describes.
type Kind int

const (
	// Minutes is the minute-of-hour field, domain 0-59.
	Minutes Kind = iota
	// Hours is the hour-of-day field, domain 0-23.
	Hours
	// MonthDays is the day-of-month field, domain 1-31.
	MonthDays
	// Months is the month-of-year field, domain 1-12.
	Months
	// WeekDays is the day-of-week field, domain 0-6 (0 = Sunday).
	WeekDays
)

// String returns the lowercase field name used in flags and config.
func (k Kind) String() string {
	switch k {
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case MonthDays:
		return "monthdays"
	case Months:
		return "months"
	case WeekDays:
		return "weekdays"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a field name to its Kind. Accepts the String form
// plus common aliases used on the command line.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "minutes", "minute":
		return Minutes, nil
	case "hours", "hour":
		return Hours, nil
	case "monthdays", "days", "day":
		return MonthDays, nil
	case "months", "month":
		return Months, nil
	case "weekdays", "weekday":
		return WeekDays, nil
	default:
		return 0, fmt.Errorf("field: unknown kind %q", name)
	}
}

// SupportsPeriodic reports whether the kind offers "every N" periodic
// pseudo-options in its catalog. Only minutes and hours do.
func (k Kind) SupportsPeriodic() bool {
	return k == Minutes || k == Hours
}

// Unit describes the numeric domain of one cron field. Min ≤ Max
// always holds for units built by UnitOf; hosts constructing custom
// units are expected to maintain the same invariant. Units are
// immutable and constructed once per field.
type Unit struct {
	Kind Kind
	Min  int
	Max  int
}

// UnitOf returns the canonical unit for a field kind.
func UnitOf(kind Kind) Unit {
	switch kind {
	case Minutes:
		return Unit{Kind: Minutes, Min: 0, Max: 59}
	case Hours:
		return Unit{Kind: Hours, Min: 0, Max: 23}
	case MonthDays:
		return Unit{Kind: MonthDays, Min: 1, Max: 31}
	case Months:
		return Unit{Kind: Months, Min: 1, Max: 12}
	case WeekDays:
		return Unit{Kind: WeekDays, Min: 0, Max: 6}
	default:
		return Unit{Kind: kind}
	}
}

// Count returns the number of values in the unit's domain.
func (u Unit) Count() int { return u.Max - u.Min + 1 }

// Contains reports whether v falls within the unit's domain.
func (u Unit) Contains(v int) bool { return v >= u.Min && v <= u.Max }
