// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package label

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Locale holds the display-name tables consumed by Render. Lookups
// are by index: weekdays 0-6 (0 = Sunday), months 0-11 (January
// first). The tables are opaque to the rest of the system — any
// language works as long as the lengths match.
type Locale struct {
	// WeekDays has exactly 7 entries, Sunday first.
	WeekDays []string `yaml:"weekdays"`

	// Months has exactly 12 entries, January first.
	Months []string `yaml:"months"`

	// AM and PM are the 12-hour clock suffixes.
	AM string `yaml:"am"`
	PM string `yaml:"pm"`
}

// Default returns the built-in English locale.
func Default() *Locale {
	return &Locale{
		WeekDays: []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},
		Months:   []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"},
		AM:       "AM",
		PM:       "PM",
	}
}

// LoadFile reads a locale table from a single explicit YAML file.
// Missing AM/PM suffixes fall back to the English ones; weekday and
// month tables must be complete or the file is rejected.
func LoadFile(path string) (*Locale, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading locale file: %w", err)
	}

	var locale Locale
	if err := yaml.Unmarshal(data, &locale); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(locale.WeekDays) != 7 {
		return nil, fmt.Errorf("%s: weekdays has %d entries, want 7", path, len(locale.WeekDays))
	}
	if len(locale.Months) != 12 {
		return nil, fmt.Errorf("%s: months has %d entries, want 12", path, len(locale.Months))
	}
	if locale.AM == "" {
		locale.AM = "AM"
	}
	if locale.PM == "" {
		locale.PM = "PM"
	}
	return &locale, nil
}
