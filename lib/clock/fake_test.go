// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func start() time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestFakeNowAdvances(t *testing.T) {
	c := Fake(start())
	c.Advance(90 * time.Second)
	if got, want := c.Now(), start().Add(90*time.Second); !got.Equal(want) {
		t.Errorf("Now = %v, want %v", got, want)
	}
}

func TestFakeAfterFuncFiresOnAdvance(t *testing.T) {
	c := Fake(start())
	fired := 0
	c.AfterFunc(300*time.Millisecond, func() { fired++ })

	c.Advance(200 * time.Millisecond)
	if fired != 0 {
		t.Fatal("timer fired before its deadline")
	}
	c.Advance(100 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	c.Advance(time.Second)
	if fired != 1 {
		t.Errorf("one-shot timer fired again: %d", fired)
	}
}

func TestFakeAfterFuncStop(t *testing.T) {
	c := Fake(start())
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("Stop on a pending timer returned false")
	}
	if timer.Stop() {
		t.Error("second Stop returned true")
	}
	c.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if c.PendingCount() != 0 {
		t.Errorf("PendingCount = %d, want 0", c.PendingCount())
	}
}

func TestFakeAfterFuncFiresInDeadlineOrder(t *testing.T) {
	c := Fake(start())
	var order []int
	c.AfterFunc(300*time.Millisecond, func() { order = append(order, 2) })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, 1) })

	c.Advance(time.Second)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("fire order = %v, want [1 2]", order)
	}
}

func TestFakeAfterFuncImmediate(t *testing.T) {
	c := Fake(start())
	fired := false
	c.AfterFunc(0, func() { fired = true })
	if !fired {
		t.Error("AfterFunc(0) did not run synchronously")
	}
	if c.PendingCount() != 0 {
		t.Errorf("PendingCount = %d, want 0", c.PendingCount())
	}
}
