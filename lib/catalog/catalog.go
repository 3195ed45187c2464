// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog derives the ordered option list for one field's
// dropdown: a plain option per domain value plus "every N" periodic
// pseudo-options for the kinds that support them. The catalog is a
// pure function of the unit, the label options, and the filter — it
// is rebuilt whenever any of those change, never cached.
package catalog

import (
	"github.com/tickpick/tickpick/lib/field"
	"github.com/tickpick/tickpick/lib/label"
)

// Option is a single selectable item. Identity is the Token: the
// decimal digits of a concrete value, or "*/N" for a periodic
// pseudo-option.
type Option struct {
	Token    string
	Label    string
	Periodic bool
}

// maxPeriodicStep caps the "every N" pseudo-options. Steps above 30
// select a single value on every cron domain, which the plain option
// already covers.
const maxPeriodicStep = 30

// Filter decides whether an option appears in the catalog. A nil
// Filter accepts everything.
type Filter func(Option) bool

// Build returns the ordered option catalog for a unit: one discrete
// option per integer in the domain (labelled through the same
// humanization rules as the formatter), then periodic pseudo-options
// for minutes and hours with steps 2 through min(30, max). The filter
// is applied last and may drop arbitrary options; it never reorders.
func Build(unit field.Unit, opts label.Options, filter Filter) []Option {
	options := make([]Option, 0, unit.Count())

	for v := unit.Min; v <= unit.Max; v++ {
		options = append(options, Option{
			Token: field.ValueToken(v),
			Label: label.Render(unit.Kind, v, opts),
		})
	}

	if unit.Kind.SupportsPeriodic() {
		limit := min(maxPeriodicStep, unit.Max)
		for step := 2; step <= limit; step++ {
			options = append(options, Option{
				Token:    field.PeriodicToken(step),
				Label:    "every " + label.RenderStep(step),
				Periodic: true,
			})
		}
	}

	if filter == nil {
		return options
	}
	filtered := options[:0]
	for _, option := range options {
		if filter(option) {
			filtered = append(filtered, option)
		}
	}
	return filtered
}
