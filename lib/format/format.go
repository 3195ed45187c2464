// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"strconv"
	"strings"

	"github.com/tickpick/tickpick/lib/field"
	"github.com/tickpick/tickpick/lib/label"
)

// Options configures formatting and parsing.
type Options struct {
	// Label controls value humanization (names, clock, padding).
	Label label.Options

	// Empty is the placeholder shown for the empty selection. An
	// empty string means DefaultPlaceholder for the unit's kind.
	Empty string
}

// DefaultPlaceholder returns the built-in empty-selection text for a
// field kind. Hosts usually supply their own through Options.Empty.
func DefaultPlaceholder(kind field.Kind) string {
	switch kind {
	case field.Minutes:
		return "every minute"
	case field.Hours:
		return "every hour"
	case field.MonthDays:
		return "every day"
	case field.Months:
		return "every month"
	case field.WeekDays:
		return "every day of the week"
	default:
		return "every value"
	}
}

func (o Options) placeholder(kind field.Kind) string {
	if o.Empty != "" {
		return o.Empty
	}
	return DefaultPlaceholder(kind)
}

// Format renders a selection as its canonical display string. Rules
// apply in order, first match wins:
//
//  1. Empty selection → the unit's empty placeholder.
//  2. Periodic selection → "every N". Steps render as digits only,
//     never as calendar names.
//  3. A single value above 1 on a periodicity-capable unit (minutes,
//     hours) → "every N", mirroring rule 2: a singleton "every N"
//     and a periodic step express the same intent.
//  4. Any other single value → its label.
//  5. Three or more values forming an arithmetic progression with
//     common difference above 1 → "first-last/d". On hours and week
//     days a difference of exactly 2 degenerates to "every 2".
//  6. Otherwise, maximal runs of consecutive values render as
//     "first-last" (or a lone label), joined with commas.
//
// Out-of-range values in an externally supplied selection render
// best-effort; Format never fails.
func Format(selection field.Selection, unit field.Unit, opts Options) string {
	if selection.IsEmpty() {
		return opts.placeholder(unit.Kind)
	}

	if selection.IsPeriodic() {
		return "every " + label.RenderStep(selection.Step())
	}

	values := selection.Values()

	if len(values) == 1 {
		v := values[0]
		if v > 1 && unit.Kind.SupportsPeriodic() {
			return "every " + label.RenderStep(v)
		}
		return label.Render(unit.Kind, v, opts.Label)
	}

	if first, last, step, ok := progression(values); ok {
		if step == 2 && (unit.Kind == field.Hours || unit.Kind == field.WeekDays) {
			return "every 2"
		}
		return label.Render(unit.Kind, first, opts.Label) +
			"-" + label.Render(unit.Kind, last, opts.Label) +
			"/" + strconv.Itoa(step)
	}

	var parts []string
	for _, run := range runs(values) {
		if run.first == run.last {
			parts = append(parts, label.Render(unit.Kind, run.first, opts.Label))
		} else {
			parts = append(parts, label.Render(unit.Kind, run.first, opts.Label)+
				"-"+label.Render(unit.Kind, run.last, opts.Label))
		}
	}
	return strings.Join(parts, ",")
}

// progression reports whether values (sorted ascending, distinct) form
// an arithmetic progression of at least 3 elements with a common
// difference above 1. The explicit set then equals
// {first, first+d, …, last} by construction.
func progression(values []int) (first, last, step int, ok bool) {
	if len(values) < 3 {
		return 0, 0, 0, false
	}
	step = values[1] - values[0]
	if step <= 1 {
		return 0, 0, 0, false
	}
	for i := 2; i < len(values); i++ {
		if values[i]-values[i-1] != step {
			return 0, 0, 0, false
		}
	}
	return values[0], values[len(values)-1], step, true
}

// valueRun is a maximal run of consecutive integers.
type valueRun struct {
	first, last int
}

// runs partitions sorted distinct values into maximal consecutive
// runs.
func runs(values []int) []valueRun {
	var result []valueRun
	for _, v := range values {
		if n := len(result); n > 0 && result[n-1].last == v-1 {
			result[n-1].last = v
			continue
		}
		result = append(result, valueRun{first: v, last: v})
	}
	return result
}
