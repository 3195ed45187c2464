// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

// Package label renders field values as display text. It is the
// single humanization point shared by the formatter and the option
// catalog, so the dropdown labels and the formatted header can never
// drift apart.
//
// [Render] maps one integer to its label under an [Options] set:
// named weekdays and months from a [Locale] table, 12-hour clock
// rendering with meridiem suffixes, and leading-zero padding for the
// numeric kinds. With humanization off, Render returns plain decimal
// digits — the token form.
//
// Locale tables are loaded from a single explicit YAML file with
// [LoadFile]; there is no discovery and no fallback chain. [Default]
// returns the built-in English table.
package label
