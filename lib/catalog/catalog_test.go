// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"strings"
	"testing"

	"github.com/tickpick/tickpick/lib/field"
	"github.com/tickpick/tickpick/lib/label"
)

func TestBuildMinutes(t *testing.T) {
	options := Build(field.UnitOf(field.Minutes), label.Options{}, nil)

	// 60 discrete values plus periodic steps 2-30.
	if got, want := len(options), 60+29; got != want {
		t.Fatalf("len(options) = %d, want %d", got, want)
	}
	if options[0].Token != "0" || options[0].Periodic {
		t.Errorf("first option = %+v, want discrete token \"0\"", options[0])
	}
	if options[59].Token != "59" {
		t.Errorf("last discrete option = %+v, want token \"59\"", options[59])
	}
	first := options[60]
	if first.Token != "*/2" || !first.Periodic || first.Label != "every 2" {
		t.Errorf("first periodic option = %+v, want */2 \"every 2\"", first)
	}
	last := options[len(options)-1]
	if last.Token != "*/30" || last.Label != "every 30" {
		t.Errorf("last periodic option = %+v, want */30 \"every 30\"", last)
	}
}

func TestBuildHoursCapsStepsAtDomainMax(t *testing.T) {
	options := Build(field.UnitOf(field.Hours), label.Options{}, nil)

	// 24 discrete values plus periodic steps 2-23.
	if got, want := len(options), 24+22; got != want {
		t.Fatalf("len(options) = %d, want %d", got, want)
	}
	last := options[len(options)-1]
	if last.Token != "*/23" {
		t.Errorf("last option = %+v, want */23", last)
	}
}

func TestBuildNonPeriodicKinds(t *testing.T) {
	for _, kind := range []field.Kind{field.MonthDays, field.Months, field.WeekDays} {
		options := Build(field.UnitOf(kind), label.Options{}, nil)
		unit := field.UnitOf(kind)
		if got := len(options); got != unit.Count() {
			t.Errorf("%s: len(options) = %d, want %d (no periodic options)", kind, got, unit.Count())
		}
		for _, option := range options {
			if option.Periodic {
				t.Errorf("%s: unexpected periodic option %+v", kind, option)
			}
		}
	}
}

func TestBuildLabelsMatchFormatter(t *testing.T) {
	opts := label.Options{Humanize: true}
	options := Build(field.UnitOf(field.WeekDays), opts, nil)

	want := []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
	for index, option := range options {
		if option.Label != want[index] {
			t.Errorf("option %d label = %q, want %q", index, option.Label, want[index])
		}
	}
}

func TestBuildFilterDropsWithoutReordering(t *testing.T) {
	evenOnly := func(option Option) bool {
		return !strings.HasSuffix(option.Token, "1") &&
			!strings.HasSuffix(option.Token, "3") &&
			!strings.HasSuffix(option.Token, "5")
	}
	options := Build(field.UnitOf(field.WeekDays), label.Options{}, evenOnly)

	want := []string{"0", "2", "4", "6"}
	if len(options) != len(want) {
		t.Fatalf("len(options) = %d, want %d", len(options), len(want))
	}
	for index, option := range options {
		if option.Token != want[index] {
			t.Errorf("option %d = %q, want %q (order must be preserved)", index, option.Token, want[index])
		}
	}
}
