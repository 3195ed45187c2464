// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// Package pickerui is the interactive terminal control for one cron
// field. It wires the option catalog, the click disambiguation engine,
// and the selection formatter into a bubbletea model: a header line
// showing the current selection in canonical notation, and a dropdown
// of options the user navigates with the keyboard or clicks with the
// mouse.
//
// Clicks do not mutate the selection directly. Every click (mouse on
// an option row, or enter/space on the cursor row) goes through the
// gesture engine, which waits out the debounce window and commits a
// single action — toggle, range toggle, or periodic replace — back
// into the model's message loop. The model applies the action to its
// selection and refreshes the header and the option highlights.
package pickerui
