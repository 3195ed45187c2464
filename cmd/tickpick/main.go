// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// tickpick is an interactive terminal picker for a single cron field.
// It opens a dropdown of the field's values, lets the user click (or
// keyboard-toggle) values, ranges, and periodic steps, and prints the
// resulting cron field expression to stdout on exit.
//
// The display value and the dropdown labels follow the configuration:
// raw digits by default, or humanized weekday/month names and clock
// times with --humanize. Configuration beyond the flags comes from a
// JSONC file given with --config.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/tickpick/tickpick/lib/config"
	"github.com/tickpick/tickpick/lib/field"
	"github.com/tickpick/tickpick/lib/format"
	"github.com/tickpick/tickpick/lib/label"
	"github.com/tickpick/tickpick/lib/pickerui"
	"github.com/tickpick/tickpick/lib/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var fieldName string
	var configPath string
	var exprSeed string
	var localePath string
	var humanize bool
	var clockFormat string
	var mode string

	flagSet := pflag.NewFlagSet("tickpick", pflag.ContinueOnError)
	flagSet.StringVar(&fieldName, "field", "minutes", "cron field to pick: minutes, hours, monthdays, months, weekdays")
	flagSet.StringVar(&configPath, "config", "", "path to a JSONC configuration file")
	flagSet.StringVar(&exprSeed, "expr", "", "seed the selection from a cron field expression (e.g. \"1-5,10\" or \"*/15\")")
	flagSet.StringVar(&localePath, "locale", "", "path to a YAML locale table for weekday/month names")
	flagSet.BoolVar(&humanize, "humanize", false, "render weekday/month names and clock times instead of raw digits")
	flagSet.StringVar(&clockFormat, "clock", "", "hour label format: 12 or 24")
	flagSet.StringVar(&mode, "mode", "", "selection mode: single or multiple")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override the file.
	if humanize {
		cfg.HumanizeLabels = true
	}
	if clockFormat != "" {
		cfg.ClockFormat = clockFormat
	}
	if mode != "" {
		cfg.Mode = mode
	}
	if localePath != "" {
		cfg.LocalePath = localePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	kind, err := field.ParseKind(fieldName)
	if err != nil {
		return err
	}
	unit := field.UnitOf(kind)

	locale := label.Default()
	if cfg.LocalePath != "" {
		locale, err = label.LoadFile(cfg.LocalePath)
		if err != nil {
			return err
		}
	}

	selection := field.Empty()
	if exprSeed != "" {
		selection, err = format.ParseField(exprSeed, unit)
		if err != nil {
			return fmt.Errorf("--expr: %w", err)
		}
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal; tickpick is interactive")
	}

	theme := tui.DarkTheme()
	if !termenv.HasDarkBackground() {
		theme = tui.LightTheme()
	}

	model := pickerui.NewModel(unit, cfg, locale,
		pickerui.WithSelection(selection),
		pickerui.WithTheme(theme),
	)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := program.Run()
	if err != nil {
		logger.Error("program failed", "error", err)
		return err
	}

	// Print the resulting field expression for shell consumption.
	result, ok := final.(pickerui.Model)
	if !ok {
		return fmt.Errorf("unexpected final model type %T", final)
	}
	fmt.Println(result.Expression())
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `tickpick — interactive terminal picker for one cron field.

Opens a dropdown of the field's values. Click a value to toggle it,
click two values to toggle the pair, or (with the double-click
shortcut enabled in the configuration) double-click a value N to
select "every N". On exit the chosen cron field expression is printed
to stdout.

Usage:
  tickpick [flags]

Examples:
  # Pick minutes, starting empty
  tickpick --field minutes

  # Pick weekdays with humanized names, seeded from an expression
  tickpick --field weekdays --humanize --expr 1-5

  # Pick hours on a 12-hour clock in single-selection mode
  tickpick --field hours --humanize --clock 12 --mode single

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
