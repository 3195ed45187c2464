// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package pickerui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/tickpick/tickpick/lib/clock"
	"github.com/tickpick/tickpick/lib/config"
	"github.com/tickpick/tickpick/lib/field"
)

// testModel builds a minutes picker on a fake clock with the dropdown
// already open. Returns the model, the clock, and the pending action
// listener from Init.
func testModel(t *testing.T, cfg config.Config, options ...ModelOption) (Model, *clock.FakeClock, tea.Cmd) {
	t.Helper()

	fake := clock.Fake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	options = append([]ModelOption{WithClock(fake)}, options...)
	model := NewModel(field.UnitOf(field.Minutes), cfg, nil, options...)
	listener := model.Init()

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if !model.Open() {
		t.Fatal("enter did not open the dropdown")
	}
	return model, fake, listener
}

// deliver advances the fake clock past the debounce window and feeds
// the resolved action back through Update, the way the bubbletea
// program loop would.
func deliver(t *testing.T, model Model, fake *clock.FakeClock, listener tea.Cmd, window time.Duration) (Model, tea.Cmd) {
	t.Helper()

	fake.Advance(window)
	message := listener()
	if message == nil {
		t.Fatal("listener returned nil, want actionMsg")
	}
	updated, next := model.Update(message)
	return updated.(Model), next
}

// clickRow sends a left mouse press on the dropdown row showing the
// given value. Minutes rows are value-indexed from the list anchor.
func clickRow(t *testing.T, model Model, value int) Model {
	t.Helper()

	updated, _ := model.Update(tea.MouseMsg{
		X:      1,
		Y:      headerHeight + value - model.list.Offset,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return updated.(Model)
}

func TestSelectTogglesCursorOption(t *testing.T) {
	model, fake, listener := testModel(t, config.Default())

	// Move the cursor to minute 2 and click it with enter.
	for range 2 {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		model = updated.(Model)
	}
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	model, _ = deliver(t, model, fake, listener, config.Default().Window())

	if !model.Selection().Contains(2) || model.Selection().Count() != 1 {
		t.Errorf("selection = %v, want {2}", model.Selection().Values())
	}
	if got := model.Value(); got != "2" {
		t.Errorf("Value() = %q, want \"2\"", got)
	}
}

func TestMouseClickTogglesOption(t *testing.T) {
	model, fake, listener := testModel(t, config.Default())

	model = clickRow(t, model, 5)
	model, _ = deliver(t, model, fake, listener, config.Default().Window())

	if !model.Selection().Contains(5) {
		t.Errorf("selection = %v, want {5}", model.Selection().Values())
	}
	if got := model.Expression(); got != "5" {
		t.Errorf("Expression() = %q, want \"5\"", got)
	}
}

func TestTwoClicksResolveAsRange(t *testing.T) {
	model, fake, listener := testModel(t, config.Default())

	model = clickRow(t, model, 2)
	fake.Advance(100 * time.Millisecond)
	model = clickRow(t, model, 5)
	model, _ = deliver(t, model, fake, listener, config.Default().Window())

	values := model.Selection().Values()
	if len(values) != 2 || !model.Selection().Contains(2) || !model.Selection().Contains(5) {
		t.Errorf("selection = %v, want {2, 5}", values)
	}
}

func TestDoubleClickPeriodicShortcut(t *testing.T) {
	cfg := config.Default()
	cfg.PeriodicityOnDoubleClick = true
	model, fake, listener := testModel(t, cfg)

	model = clickRow(t, model, 5)
	fake.Advance(100 * time.Millisecond)
	model = clickRow(t, model, 5)
	model, _ = deliver(t, model, fake, listener, cfg.Window())

	if !model.Selection().IsPeriodic() || model.Selection().Step() != 5 {
		t.Errorf("selection = %+v, want periodic step 5", model.Selection())
	}
	if got := model.Expression(); got != "*/5" {
		t.Errorf("Expression() = %q, want \"*/5\"", got)
	}
}

func TestEscapeDiscardsPendingGesture(t *testing.T) {
	model, fake, _ := testModel(t, config.Default())

	model = clickRow(t, model, 5)
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model = updated.(Model)

	if model.Open() {
		t.Error("escape did not close the dropdown")
	}
	// The discarded gesture must not resolve after the window.
	fake.Advance(config.Default().Window())
	if !model.Selection().IsEmpty() {
		t.Errorf("selection = %v after discarded gesture, want empty", model.Selection().Values())
	}
}

func TestDisabledDropsInput(t *testing.T) {
	model, fake, _ := testModel(t, config.Default())
	model.SetEnabled(false)

	model = clickRow(t, model, 5)
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	fake.Advance(config.Default().Window())
	if got := fake.PendingCount(); got != 0 {
		t.Errorf("PendingCount() = %d after disabled clicks, want 0", got)
	}
	if !model.Selection().IsEmpty() {
		t.Errorf("selection = %v, want empty", model.Selection().Values())
	}
}

func TestClearKeyEmptiesSelection(t *testing.T) {
	cfg := config.Default()
	cfg.AllowClear = true
	model, _, _ := testModel(t, cfg, WithSelection(field.Discrete(3, 7)))

	if model.Selection().IsEmpty() {
		t.Fatal("seed selection missing")
	}
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	model = updated.(Model)

	if !model.Selection().IsEmpty() {
		t.Errorf("selection = %v after clear, want empty", model.Selection().Values())
	}
	if got := model.Value(); got != "every minute" {
		t.Errorf("Value() = %q, want placeholder \"every minute\"", got)
	}
}

func TestClearKeyIgnoredWithoutAllowClear(t *testing.T) {
	model, _, _ := testModel(t, config.Default(), WithSelection(field.Discrete(3)))

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	model = updated.(Model)

	if model.Selection().IsEmpty() {
		t.Error("clear key emptied the selection despite allowClear being off")
	}
}

func TestOutsideClickClosesDropdown(t *testing.T) {
	model, _, _ := testModel(t, config.Default())

	updated, _ := model.Update(tea.MouseMsg{
		X:      60,
		Y:      20,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	model = updated.(Model)

	if model.Open() {
		t.Error("click outside the dropdown left it open")
	}
}

func TestHighlightsFollowSelection(t *testing.T) {
	model, fake, listener := testModel(t, config.Default())

	model = clickRow(t, model, 5)
	model, _ = deliver(t, model, fake, listener, config.Default().Window())

	if !model.list.Selected["5"] {
		t.Error("option 5 not highlighted after toggle")
	}
	if model.list.Selected["6"] {
		t.Error("option 6 highlighted without being selected")
	}
}

func TestPeriodicHighlightsMaterializedValues(t *testing.T) {
	model, _, _ := testModel(t, config.Default(), WithSelection(field.Periodic(20)))

	for _, token := range []string{"0", "20", "40", "*/20"} {
		if !model.list.Selected[token] {
			t.Errorf("token %q not highlighted under periodic 20", token)
		}
	}
	if model.list.Selected["10"] {
		t.Error("token \"10\" highlighted under periodic 20")
	}
}

func TestViewShowsHeaderAndOptions(t *testing.T) {
	model, _, _ := testModel(t, config.Default(), WithSelection(field.Discrete(1, 2, 3)))

	view := model.View()
	if !strings.Contains(view, "minutes") {
		t.Error("view missing the field kind header")
	}
	if !strings.Contains(view, "1-3") {
		t.Errorf("view missing the formatted value, got:\n%s", view)
	}
}

func TestViewOverlaysDropdownOverBaseContent(t *testing.T) {
	model, _, _ := testModel(t, config.Default(), WithSelection(field.Periodic(20)))

	lines := strings.Split(model.View(), "\n")
	// The dropdown's first row floats over the expression line at
	// row 1; the help line stays visible below the overlay.
	covered := ansi.Strip(lines[1])
	if strings.Contains(covered, "cron:") {
		t.Errorf("dropdown did not cover the expression line: %q", covered)
	}
	if !strings.Contains(covered, "0") {
		t.Errorf("row 1 = %q, want the first option row", covered)
	}
	if !strings.Contains(ansi.Strip(lines[len(lines)-1]), "esc close") {
		t.Error("help line missing below the open dropdown")
	}

	// Closing the dropdown restores the underlying content.
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model = updated.(Model)
	lines = strings.Split(model.View(), "\n")
	if got := ansi.Strip(lines[1]); !strings.Contains(got, "cron: */20") {
		t.Errorf("row 1 after close = %q, want the expression line", got)
	}
}

func TestQuitKey(t *testing.T) {
	model, _, _ := testModel(t, config.Default())

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if command == nil {
		t.Fatal("q produced no command")
	}
	if message := command(); message != tea.Quit() {
		t.Errorf("q produced %v, want tea.Quit", message)
	}
}
