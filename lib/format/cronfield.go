// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tickpick/tickpick/lib/field"
)

// ParseField parses raw cron field syntax into a selection. The field
// may contain comma-separated terms, each of which is a wildcard,
// value, range, or stepped range/wildcard: *, */N, V, V-V, V-V/N.
//
// A bare "*" parses to the empty selection (no constraint), and a
// lone "*/N" stays periodic rather than materializing, so the picker
// seeds into the same state the user would reach by hand. Returns an
// error if the field is malformed or contains out-of-range values.
func ParseField(text string, unit field.Unit) (field.Selection, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return field.Selection{}, fmt.Errorf("format: empty cron field")
	}
	if text == "*" {
		return field.Empty(), nil
	}
	if rest, ok := strings.CutPrefix(text, "*/"); ok && !strings.ContainsAny(rest, ",-/") {
		step, err := strconv.Atoi(rest)
		if err != nil {
			return field.Selection{}, fmt.Errorf("format: invalid step %q: %w", rest, err)
		}
		if step <= 0 {
			return field.Selection{}, fmt.Errorf("format: step must be positive, got %d", step)
		}
		return field.Periodic(step), nil
	}

	var values []int
	for _, term := range strings.Split(text, ",") {
		termValues, err := parseFieldTerm(term, unit)
		if err != nil {
			return field.Selection{}, err
		}
		values = append(values, termValues...)
	}
	return field.Discrete(values...).Normalize(unit), nil
}

// parseFieldTerm parses a single cron term: *, */N, V, V-V, V-V/N.
func parseFieldTerm(term string, unit field.Unit) ([]int, error) {
	rangeExpression, stepPart, hasStep := strings.Cut(term, "/")
	step := 1
	if hasStep {
		parsed, err := strconv.Atoi(stepPart)
		if err != nil {
			return nil, fmt.Errorf("format: invalid step %q: %w", stepPart, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("format: step must be positive, got %d", parsed)
		}
		step = parsed
	}

	var rangeStart, rangeEnd int

	if rangeExpression == "*" {
		rangeStart = unit.Min
		rangeEnd = unit.Max
	} else if dashIndex := strings.IndexByte(rangeExpression, '-'); dashIndex >= 0 {
		startText := rangeExpression[:dashIndex]
		endText := rangeExpression[dashIndex+1:]
		var err error
		rangeStart, err = strconv.Atoi(startText)
		if err != nil {
			return nil, fmt.Errorf("format: invalid range start %q: %w", startText, err)
		}
		rangeEnd, err = strconv.Atoi(endText)
		if err != nil {
			return nil, fmt.Errorf("format: invalid range end %q: %w", endText, err)
		}
		if rangeStart > rangeEnd {
			return nil, fmt.Errorf("format: range start %d > end %d", rangeStart, rangeEnd)
		}
	} else {
		value, err := strconv.Atoi(rangeExpression)
		if err != nil {
			return nil, fmt.Errorf("format: invalid value %q: %w", rangeExpression, err)
		}
		rangeStart = value
		rangeEnd = value
	}

	if rangeStart < unit.Min || rangeEnd > unit.Max {
		return nil, fmt.Errorf("format: value out of range [%d-%d]: got %d-%d", unit.Min, unit.Max, rangeStart, rangeEnd)
	}

	values := make([]int, 0, (rangeEnd-rangeStart)/step+1)
	for v := rangeStart; v <= rangeEnd; v += step {
		values = append(values, v)
	}
	return values, nil
}

// Expression renders a selection as raw cron field text, the inverse
// of ParseField: "*" for the empty selection, "*/N" for periodic
// selections, "first-last/d" for arithmetic progressions, and a
// comma list of values and consecutive ranges otherwise.
func Expression(selection field.Selection, unit field.Unit) string {
	if selection.IsEmpty() {
		return "*"
	}
	if selection.IsPeriodic() {
		return field.PeriodicToken(selection.Step())
	}

	values := selection.Values()
	if first, last, step, ok := progression(values); ok {
		return fmt.Sprintf("%d-%d/%d", first, last, step)
	}

	var parts []string
	for _, run := range runs(values) {
		if run.first == run.last {
			parts = append(parts, strconv.Itoa(run.first))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", run.first, run.last))
		}
	}
	return strings.Join(parts, ",")
}
