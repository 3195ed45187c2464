// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tickpick/tickpick/lib/field"
	"github.com/tickpick/tickpick/lib/label"
)

// Parse inverts Format: it reads a display string produced under the
// same unit and options and returns the selection it denotes. The
// empty string and the unit's placeholder parse to the empty
// selection; "every N" parses to a periodic selection (a singleton
// "every N" and a periodic step are the same intent, so the round
// trip is exact up to materialization); "A-B/D", comma lists, and
// ranges parse to discrete sets. Humanized labels (weekday and month
// names, 12-hour clock times) are accepted wherever Format emits
// them.
func Parse(text string, unit field.Unit, opts Options) (field.Selection, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == opts.placeholder(unit.Kind) {
		return field.Empty(), nil
	}

	if rest, ok := strings.CutPrefix(text, "every "); ok {
		step, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return field.Selection{}, fmt.Errorf("format: invalid step in %q: %w", text, err)
		}
		if step < 0 {
			return field.Selection{}, fmt.Errorf("format: negative step in %q", text)
		}
		// Periodic(1) and Periodic(0) collapse to empty, matching
		// "every 1 unit" meaning no constraint.
		return field.Periodic(step), nil
	}

	if rangePart, stepPart, ok := strings.Cut(text, "/"); ok {
		return parseSteppedRange(rangePart, stepPart, unit, opts)
	}

	var values []int
	for _, term := range strings.Split(text, ",") {
		first, last, err := parseRange(strings.TrimSpace(term), unit, opts)
		if err != nil {
			return field.Selection{}, err
		}
		for v := first; v <= last; v++ {
			values = append(values, v)
		}
	}
	return field.Discrete(values...).Normalize(unit), nil
}

// parseSteppedRange handles the "A-B/D" form.
func parseSteppedRange(rangePart, stepPart string, unit field.Unit, opts Options) (field.Selection, error) {
	step, err := strconv.Atoi(strings.TrimSpace(stepPart))
	if err != nil {
		return field.Selection{}, fmt.Errorf("format: invalid step %q: %w", stepPart, err)
	}
	if step <= 0 {
		return field.Selection{}, fmt.Errorf("format: step must be positive, got %d", step)
	}
	first, last, err := parseRange(strings.TrimSpace(rangePart), unit, opts)
	if err != nil {
		return field.Selection{}, err
	}
	values := make([]int, 0, (last-first)/step+1)
	for v := first; v <= last; v += step {
		values = append(values, v)
	}
	return field.Discrete(values...).Normalize(unit), nil
}

// parseRange parses "A-B" or a single value, returning an inclusive
// bound pair. Single values return first == last.
func parseRange(term string, unit field.Unit, opts Options) (first, last int, err error) {
	if start, end, ok := splitRange(term); ok {
		first, err = parseValue(start, unit, opts)
		if err != nil {
			return 0, 0, err
		}
		last, err = parseValue(end, unit, opts)
		if err != nil {
			return 0, 0, err
		}
		if first > last {
			return 0, 0, fmt.Errorf("format: range start %d > end %d in %q", first, last, term)
		}
		return first, last, nil
	}
	v, err := parseValue(term, unit, opts)
	if err != nil {
		return 0, 0, err
	}
	return v, v, nil
}

// splitRange splits "A-B" on the dash separating two labels. Humanized
// labels never contain dashes, so the first dash wins.
func splitRange(term string) (start, end string, ok bool) {
	index := strings.IndexByte(term, '-')
	if index <= 0 || index == len(term)-1 {
		return "", "", false
	}
	return term[:index], term[index+1:], true
}

// parseValue maps one label back to its integer value: plain digits
// first, then the humanized forms Render can emit for the unit's kind
// (locale names, 12-hour clock times).
func parseValue(text string, unit field.Unit, opts Options) (int, error) {
	text = strings.TrimSpace(text)
	if v, err := strconv.Atoi(text); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("format: negative value %q", text)
		}
		return v, nil
	}

	locale := opts.Label.Locale
	if locale == nil {
		locale = label.Default()
	}

	switch unit.Kind {
	case field.WeekDays:
		for day, name := range locale.WeekDays {
			if strings.EqualFold(text, name) {
				return day, nil
			}
		}

	case field.Months:
		for index, name := range locale.Months {
			if strings.EqualFold(text, name) {
				return index + 1, nil
			}
		}

	case field.Hours:
		if v, ok := parseClockHour(text, locale); ok {
			return v, nil
		}
	}

	return 0, fmt.Errorf("format: cannot parse value %q for %s", text, unit.Kind)
}

// parseClockHour parses "5AM" / "12PM" style 12-hour clock labels
// back to 0-23.
func parseClockHour(text string, locale *label.Locale) (int, bool) {
	var meridiem string
	var pm bool
	switch {
	case strings.HasSuffix(strings.ToUpper(text), strings.ToUpper(locale.PM)):
		meridiem = locale.PM
		pm = true
	case strings.HasSuffix(strings.ToUpper(text), strings.ToUpper(locale.AM)):
		meridiem = locale.AM
	default:
		return 0, false
	}

	digits := strings.TrimSpace(text[:len(text)-len(meridiem)])
	hour, err := strconv.Atoi(digits)
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	if pm {
		if hour == 12 {
			return 12, true
		}
		return hour + 12, true
	}
	if hour == 12 {
		return 0, true
	}
	return hour, true
}
