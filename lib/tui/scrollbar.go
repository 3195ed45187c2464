// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces the single-column scrollbar for a windowed
// option list: track glyphs with an accent thumb marking the visible
// slice of the rows. When everything fits, the thumb spans the full
// height. Returns height lines joined with newlines.
func RenderScrollbar(theme Theme, height, totalRows, visibleRows, offset int) string {
	if height <= 0 {
		return ""
	}

	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	thumbStyle := lipgloss.NewStyle().Foreground(theme.AccentColor)

	lines := make([]string, height)

	if totalRows <= visibleRows || totalRows <= 0 {
		for index := range lines {
			lines[index] = thumbStyle.Render("┃")
		}
		return strings.Join(lines, "\n")
	}

	// Thumb size tracks the visible fraction, minimum one row; its
	// position tracks the offset within the scrollable range.
	thumbSize := max(1, height*visibleRows/totalRows)
	thumbTop := 0
	if trackRange := height - thumbSize; trackRange > 0 {
		thumbTop = offset * trackRange / (totalRows - visibleRows)
		if thumbTop > trackRange {
			thumbTop = trackRange
		}
	}

	for index := range lines {
		if index >= thumbTop && index < thumbTop+thumbSize {
			lines[index] = thumbStyle.Render("┃")
		} else {
			lines[index] = trackStyle.Render("│")
		}
	}

	return strings.Join(lines, "\n")
}
