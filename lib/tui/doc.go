// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the terminal rendering primitives for the
// picker: the color [Theme], the [OptionList] overlay with mouse
// hit-testing and windowed scrolling, overlay splicing onto a
// rendered view, and a proportional scrollbar.
//
// Everything here is pure rendering — no selection logic. The option
// list is told which tokens are currently selected and where the
// cursor sits; deciding those is the widget model's job.
package tui
