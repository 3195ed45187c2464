// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OptionRow is a single selectable item in the option list overlay.
type OptionRow struct {
	Token    string // Identity fed to the gesture engine on click.
	Label    string // Display text.
	Periodic bool   // "every N" pseudo-option, rendered in accent color.
}

// OptionList renders a floating, windowed option menu anchored at a
// screen position. The widget model owns the instance, moves Cursor
// and Offset, and routes clicks through hit-testing. Long catalogs
// (minutes has 89 options) scroll within MaxVisible rows.
type OptionList struct {
	Rows    []OptionRow
	Cursor  int
	Offset  int // First visible row index.
	AnchorX int // Screen X coordinate of the top-left corner.
	AnchorY int // Screen Y coordinate of the top-left corner.

	// MaxVisible bounds the rendered window. Zero means every row.
	MaxVisible int

	// Selected marks the tokens in the current selection; those rows
	// get a check marker.
	Selected map[string]bool
}

// visible returns the number of rows actually rendered.
func (list *OptionList) visible() int {
	if list.MaxVisible <= 0 || list.MaxVisible > len(list.Rows) {
		return len(list.Rows)
	}
	return list.MaxVisible
}

// MoveUp moves the cursor up by one, wrapping to the bottom, and
// keeps it visible.
func (list *OptionList) MoveUp() {
	list.Cursor--
	if list.Cursor < 0 {
		list.Cursor = len(list.Rows) - 1
	}
	list.EnsureVisible()
}

// MoveDown moves the cursor down by one, wrapping to the top, and
// keeps it visible.
func (list *OptionList) MoveDown() {
	list.Cursor++
	if list.Cursor >= len(list.Rows) {
		list.Cursor = 0
	}
	list.EnsureVisible()
}

// EnsureVisible scrolls the window so the cursor row is rendered.
func (list *OptionList) EnsureVisible() {
	visible := list.visible()
	if visible == 0 {
		return
	}
	if list.Cursor < list.Offset {
		list.Offset = list.Cursor
	}
	if list.Cursor >= list.Offset+visible {
		list.Offset = list.Cursor - visible + 1
	}
}

// Under returns the row under the cursor.
func (list *OptionList) Under() OptionRow {
	return list.Rows[list.Cursor]
}

// Width returns the total visible width of the rendered list in
// columns, including the scrollbar column when the list scrolls.
// This matches the width used by Render and is needed for mouse
// hit-testing.
func (list *OptionList) Width() int {
	maxLabelWidth := 0
	for _, row := range list.Rows {
		labelWidth := ansi.StringWidth(row.Label)
		if labelWidth > maxLabelWidth {
			maxLabelWidth = labelWidth
		}
	}
	// Layout: " > ✓ LABEL  " — marker, check column, label, padding.
	width := 5 + maxLabelWidth + 2
	if list.scrolls() {
		width++
	}
	return width
}

// Height returns the rendered height in rows.
func (list *OptionList) Height() int { return list.visible() }

// scrolls reports whether the list is windowed.
func (list *OptionList) scrolls() bool {
	return list.MaxVisible > 0 && len(list.Rows) > list.MaxVisible
}

// Contains returns true if the screen coordinate (x, y) falls within
// the list's bounding rectangle.
func (list *OptionList) Contains(x, y int) bool {
	if y < list.AnchorY || y >= list.AnchorY+list.visible() {
		return false
	}
	return x >= list.AnchorX && x < list.AnchorX+list.Width()
}

// RowAt returns the row index corresponding to the given screen Y
// coordinate, accounting for the scroll window, or -1 if the Y
// coordinate is outside the list's vertical range.
func (list *OptionList) RowAt(y int) int {
	index := y - list.AnchorY
	if index < 0 || index >= list.visible() {
		return -1
	}
	index += list.Offset
	if index >= len(list.Rows) {
		return -1
	}
	return index
}

// Render produces the list lines for overlay splicing. Each line has
// the same visible width and a solid background for separation from
// the underlying content. The cursor row uses a contrasting
// background; selected rows carry a check marker; periodic rows use
// the accent foreground.
func (list *OptionList) Render(theme Theme) []string {
	totalWidth := list.Width()
	contentWidth := totalWidth
	if list.scrolls() {
		contentWidth--
	}
	innerWidth := contentWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.OverlayBackground)
	periodicStyle := lipgloss.NewStyle().
		Background(theme.OverlayBackground).
		Foreground(theme.PeriodicForeground)
	checkStyle := lipgloss.NewStyle().
		Background(theme.OverlayBackground).
		Foreground(theme.CheckForeground)
	cursorStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var scrollbarLines []string
	if list.scrolls() {
		scrollbarLines = strings.Split(
			RenderScrollbar(theme, list.visible(), len(list.Rows), list.visible(), list.Offset),
			"\n")
	}

	var lines []string
	end := list.Offset + list.visible()
	if end > len(list.Rows) {
		end = len(list.Rows)
	}
	for index := list.Offset; index < end; index++ {
		row := list.Rows[index]

		marker := " "
		if index == list.Cursor {
			marker = ">"
		}
		check := " "
		if list.Selected[row.Token] {
			check = "✓"
		}

		content := marker + " " + check + " " + row.Label
		rightPad := innerWidth - ansi.StringWidth(content)
		if rightPad < 0 {
			rightPad = 0
		}
		padded := content + strings.Repeat(" ", rightPad)

		var styledLine string
		switch {
		case index == list.Cursor:
			styledLine = cursorStyle.Render(" " + padded + " ")
		case row.Periodic:
			styledLine = periodicStyle.Render(" " + padded + " ")
		case list.Selected[row.Token]:
			styledLine = checkStyle.Render(" " + padded + " ")
		default:
			styledLine = backgroundStyle.Render(" " + padded + " ")
		}

		// Ensure consistent visible width across all lines.
		if lineWidth := ansi.StringWidth(styledLine); lineWidth < contentWidth {
			styledLine += backgroundStyle.Render(strings.Repeat(" ", contentWidth-lineWidth))
		}

		if scrollbarLines != nil {
			styledLine += scrollbarLines[index-list.Offset]
		}

		lines = append(lines, styledLine)
	}

	return lines
}
