// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the picker. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Cursor row inside the option list.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Check marker on options that are in the current selection.
	CheckForeground lipgloss.Color

	// Periodic "every N" pseudo-options.
	PeriodicForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	AccentColor      lipgloss.Color

	// Overlay background (the dropdown floats over the view).
	OverlayBackground lipgloss.Color
}

// DarkTheme returns the palette for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		NormalText:         lipgloss.Color("252"),
		FaintText:          lipgloss.Color("243"),
		SelectedBackground: lipgloss.Color("24"),
		SelectedForeground: lipgloss.Color("231"),
		CheckForeground:    lipgloss.Color("42"),
		PeriodicForeground: lipgloss.Color("141"),
		HeaderForeground:   lipgloss.Color("81"),
		BorderColor:        lipgloss.Color("240"),
		HelpText:           lipgloss.Color("243"),
		AccentColor:        lipgloss.Color("81"),
		OverlayBackground:  lipgloss.Color("236"),
	}
}

// LightTheme returns the palette for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		NormalText:         lipgloss.Color("235"),
		FaintText:          lipgloss.Color("245"),
		SelectedBackground: lipgloss.Color("153"),
		SelectedForeground: lipgloss.Color("17"),
		CheckForeground:    lipgloss.Color("28"),
		PeriodicForeground: lipgloss.Color("91"),
		HeaderForeground:   lipgloss.Color("25"),
		BorderColor:        lipgloss.Color("250"),
		HelpText:           lipgloss.Color("245"),
		AccentColor:        lipgloss.Color("25"),
		OverlayBackground:  lipgloss.Color("254"),
	}
}
