// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"reflect"
	"testing"
)

func TestMaterializePeriodic(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		step int
		want []int
	}{
		{"minutes_every_15", UnitOf(Minutes), 15, []int{0, 15, 30, 45}},
		{"hours_every_6", UnitOf(Hours), 6, []int{0, 6, 12, 18}},
		{"monthdays_anchor_at_one", UnitOf(MonthDays), 5, []int{1, 6, 11, 16, 21, 26, 31}},
		{"months_every_3", UnitOf(Months), 3, []int{1, 4, 7, 10}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Periodic(test.step).Materialize(test.unit).Values()
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("Materialize = %v, want %v", got, test.want)
			}
		})
	}
}

func TestMaterializeDiscreteUnchanged(t *testing.T) {
	s := Discrete(3, 1, 4, 1, 5)
	if got := s.Materialize(UnitOf(Minutes)); !got.Equal(s) {
		t.Errorf("Materialize changed a discrete selection: %v", got.Values())
	}
	if got, want := s.Values(), []int{1, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v, want sorted distinct %v", got, want)
	}
}

func TestNormalizeFullDomain(t *testing.T) {
	unit := UnitOf(Months)
	full := Discrete(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	if got := full.Normalize(unit); !got.IsEmpty() {
		t.Errorf("full domain did not normalize: %v", got.Values())
	}

	partial := Discrete(1, 2, 3)
	if got := partial.Normalize(unit); !got.Equal(partial) {
		t.Errorf("partial set changed under Normalize: %v", got.Values())
	}

	// Periodic selections never normalize away, even when their
	// derived set would cover the domain.
	if got := Periodic(2).Normalize(unit); !got.IsPeriodic() {
		t.Error("periodic selection lost its step under Normalize")
	}
}

func TestPeriodicBelowTwoCollapses(t *testing.T) {
	if !Periodic(1).IsEmpty() || !Periodic(0).IsEmpty() {
		t.Error("steps below 2 must collapse to the empty selection")
	}
}
