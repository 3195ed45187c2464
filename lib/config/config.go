// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the picker.
//
// Configuration is authored as a single JSONC file (JSON extended
// with // line comments, /* block comments */, and trailing commas)
// and loaded from an explicit path — no fallbacks, no ~/.config
// discovery, no automatic file search. This ensures deterministic,
// auditable configuration with no hidden overrides.
//
// [Default] returns the built-in configuration; [LoadFile] reads and
// validates a file on top of it. Fields left out of the file keep
// their defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/tickpick/tickpick/lib/field"
	"github.com/tickpick/tickpick/lib/label"
)

// Config holds every knob the picker exposes to its host.
type Config struct {
	// Mode is "multiple" (accumulate toggled values) or "single"
	// (at most one value selected).
	Mode string `json:"mode"`

	// HumanizeLabels renders named weekdays/months, clock times, and
	// padded digits instead of raw tokens.
	HumanizeLabels bool `json:"humanizeLabels"`

	// LeadingZero pads monthdays, hours, and minutes for every kind
	// at once. LeadingZeroKinds pads only the listed kinds
	// ("monthdays", "hours", "minutes").
	LeadingZero      bool     `json:"leadingZero"`
	LeadingZeroKinds []string `json:"leadingZeroKinds"`

	// ClockFormat is "12" or "24".
	ClockFormat string `json:"clockFormat"`

	// PeriodicityOnDoubleClick makes a fast double-click on a value
	// replace the selection with "every N".
	PeriodicityOnDoubleClick bool `json:"periodicityOnDoubleClick"`

	// AllowClear exposes a clear action that empties the selection.
	AllowClear bool `json:"allowClear"`

	// DebounceWindowMs is the click disambiguation window in
	// milliseconds.
	DebounceWindowMs int `json:"debounceWindowMs"`

	// LocalePath points at a YAML locale table. Empty means the
	// built-in English locale.
	LocalePath string `json:"localePath"`

	// EmptyText overrides the placeholder shown for the empty
	// selection, keyed by field kind name. Missing kinds use the
	// built-in placeholder.
	EmptyText map[string]string `json:"emptyText"`
}

// Default returns the built-in configuration: multiple selection
// mode, raw labels, 24-hour clock, 300ms window, double-click
// periodicity off.
func Default() Config {
	return Config{
		Mode:             "multiple",
		ClockFormat:      label.Clock24,
		DebounceWindowMs: 300,
	}
}

// LoadFile reads a JSONC configuration file over the defaults and
// validates the result.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	config := Default()
	stripped := jsonc.ToJSON(data)
	if err := json.Unmarshal(stripped, &config); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate checks field values and names. Zero values that Default
// fills are also accepted so a hand-built Config{} works.
func (c Config) Validate() error {
	switch c.Mode {
	case "", "single", "multiple":
	default:
		return fmt.Errorf("config: invalid mode %q (want \"single\" or \"multiple\")", c.Mode)
	}
	switch c.ClockFormat {
	case "", label.Clock12, label.Clock24:
	default:
		return fmt.Errorf("config: invalid clockFormat %q (want \"12\" or \"24\")", c.ClockFormat)
	}
	if c.DebounceWindowMs < 0 {
		return fmt.Errorf("config: negative debounceWindowMs %d", c.DebounceWindowMs)
	}
	for _, name := range c.LeadingZeroKinds {
		if _, err := field.ParseKind(name); err != nil {
			return fmt.Errorf("config: leadingZeroKinds: %w", err)
		}
	}
	for name := range c.EmptyText {
		if _, err := field.ParseKind(name); err != nil {
			return fmt.Errorf("config: emptyText: %w", err)
		}
	}
	return nil
}

// SelectionMode returns the parsed Mode.
func (c Config) SelectionMode() field.Mode {
	if c.Mode == "single" {
		return field.ModeSingle
	}
	return field.ModeMultiple
}

// Window returns the debounce window as a duration. Zero falls back
// to the default 300ms.
func (c Config) Window() time.Duration {
	if c.DebounceWindowMs == 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.DebounceWindowMs) * time.Millisecond
}

// LabelOptions builds the label options this configuration implies.
// The locale is loaded separately (it may come from LocalePath or be
// injected by the host).
func (c Config) LabelOptions(locale *label.Locale) label.Options {
	opts := label.Options{
		Humanize:    c.HumanizeLabels,
		LeadingZero: c.LeadingZero,
		ClockFormat: c.ClockFormat,
		Locale:      locale,
	}
	for _, name := range c.LeadingZeroKinds {
		kind, err := field.ParseKind(name)
		if err != nil {
			continue // Validate already rejected unknown names.
		}
		opts.LeadingZeroKinds = append(opts.LeadingZeroKinds, kind)
	}
	return opts
}

// Placeholder returns the configured empty-selection text for a
// kind, or "" when the built-in placeholder should apply.
func (c Config) Placeholder(kind field.Kind) string {
	return c.EmptyText[kind.String()]
}
