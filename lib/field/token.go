// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseToken parses an option token. Tokens are either the decimal
// digits of a concrete value ("5", "30") or a periodic marker
// ("*/15"). The periodic flag distinguishes the two; the returned
// value is the concrete value or the periodic step respectively.
func ParseToken(token string) (value int, periodic bool, err error) {
	if rest, ok := strings.CutPrefix(token, "*/"); ok {
		step, err := strconv.Atoi(rest)
		if err != nil {
			return 0, false, fmt.Errorf("field: invalid periodic token %q: %w", token, err)
		}
		if step < 0 {
			return 0, false, fmt.Errorf("field: negative step in token %q", token)
		}
		return step, true, nil
	}
	value, err = strconv.Atoi(token)
	if err != nil {
		return 0, false, fmt.Errorf("field: invalid token %q: %w", token, err)
	}
	if value < 0 {
		return 0, false, fmt.Errorf("field: negative value in token %q", token)
	}
	return value, false, nil
}

// PeriodicToken returns the token string for a periodic step.
func PeriodicToken(step int) string { return "*/" + strconv.Itoa(step) }

// ValueToken returns the token string for a concrete value.
func ValueToken(v int) string { return strconv.Itoa(v) }
