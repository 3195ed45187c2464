// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package label

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/tickpick/tickpick/lib/field"
)

// Clock format values accepted by Options.ClockFormat.
const (
	Clock12 = "12"
	Clock24 = "24"
)

// Options controls how values render. The zero value renders plain
// decimal digits with a 24-hour clock and no padding.
type Options struct {
	// Humanize enables named weekdays/months, the 12-hour clock, and
	// leading-zero padding. Off, every value renders as its decimal
	// token.
	Humanize bool

	// LeadingZero pads monthdays, hours, and minutes to two digits
	// for every kind at once.
	LeadingZero bool

	// LeadingZeroKinds pads only the listed kinds. Ignored when
	// LeadingZero is already true.
	LeadingZeroKinds []field.Kind

	// ClockFormat is Clock12 or Clock24. Empty means Clock24.
	ClockFormat string

	// Locale supplies the name tables. Nil means Default().
	Locale *Locale
}

func (o Options) locale() *Locale {
	if o.Locale != nil {
		return o.Locale
	}
	return Default()
}

// TwelveHourClock reports whether hours render on the 12-hour clock.
func (o Options) TwelveHourClock() bool { return o.ClockFormat == Clock12 }

// leadingZero reports whether values of the given kind get two-digit
// padding. Only monthdays, hours, and minutes ever pad. The 24-hour
// clock pads hours and minutes implicitly, matching how clock times
// are written.
func (o Options) leadingZero(kind field.Kind) bool {
	switch kind {
	case field.MonthDays, field.Hours, field.Minutes:
	default:
		return false
	}
	if o.LeadingZero || slices.Contains(o.LeadingZeroKinds, kind) {
		return true
	}
	return !o.TwelveHourClock() && (kind == field.Hours || kind == field.Minutes)
}

// Render returns the display label for value v of the given kind.
// With Humanize off this is the decimal token. With Humanize on:
//
//   - weekdays map through the locale table, with 7 remapped to 0
//     (both denote Sunday)
//   - months map through the locale table (1-indexed domain, 0-indexed
//     table)
//   - hours on the 12-hour clock render 0 as 12 with an AM/PM suffix
//   - monthdays, hours, and minutes pad to two digits per the
//     leading-zero rules
//
// Values outside the tables (for example an out-of-range weekday from
// an externally supplied selection) fall back to digits — rendering
// is best-effort, never an error.
func Render(kind field.Kind, v int, opts Options) string {
	if !opts.Humanize {
		return strconv.Itoa(v)
	}

	locale := opts.locale()

	switch kind {
	case field.WeekDays:
		day := v
		if day == 7 {
			day = 0
		}
		if day >= 0 && day < len(locale.WeekDays) {
			return locale.WeekDays[day]
		}

	case field.Months:
		if v >= 1 && v <= len(locale.Months) {
			return locale.Months[v-1]
		}

	case field.Hours:
		if opts.TwelveHourClock() {
			hour := v
			switch {
			case hour == 0:
				hour = 12
			case hour > 12:
				hour -= 12
			}
			suffix := locale.PM
			if v < 12 {
				suffix = locale.AM
			}
			return digits(hour, opts.leadingZero(kind)) + suffix
		}
	}

	return digits(v, opts.leadingZero(kind))
}

// RenderStep returns the label for a periodic step. Steps are counts,
// not calendar values, so they never humanize into names or clock
// times — only their digits render.
func RenderStep(step int) string { return strconv.Itoa(step) }

func digits(v int, pad bool) string {
	if pad {
		return fmt.Sprintf("%02d", v)
	}
	return strconv.Itoa(v)
}
