// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package pickerui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tickpick/tickpick/lib/catalog"
	"github.com/tickpick/tickpick/lib/clock"
	"github.com/tickpick/tickpick/lib/config"
	"github.com/tickpick/tickpick/lib/field"
	"github.com/tickpick/tickpick/lib/format"
	"github.com/tickpick/tickpick/lib/gesture"
	"github.com/tickpick/tickpick/lib/label"
	"github.com/tickpick/tickpick/lib/tui"
)

// maxVisibleRows caps the dropdown height. Longer catalogs (minutes
// has 89 rows with the periodic pseudo-options) scroll inside the
// window.
const maxVisibleRows = 12

// headerHeight is the number of rows above the dropdown: the value
// line. The dropdown anchors directly below it.
const headerHeight = 1

// actionMsg wraps a resolved gesture action for delivery through the
// bubbletea message loop. The engine's commit callback runs on the
// debounce timer's goroutine; the channel hop keeps all model
// mutation on the program loop.
type actionMsg struct {
	action field.Action
}

// Model is the bubbletea model for a single-field picker control.
type Model struct {
	unit       field.Unit
	mode       field.Mode
	allowClear bool
	formatOpts format.Options

	keys  KeyMap
	theme tui.Theme

	clk     clock.Clock
	engine  *gesture.Engine
	actions chan field.Action

	selection field.Selection
	filter    catalog.Filter
	options   []catalog.Option
	list      tui.OptionList
	open      bool
	enabled   bool

	width  int
	height int
	ready  bool
}

// ModelOption configures a Model at construction time.
type ModelOption func(*Model)

// WithTheme sets the color theme. The default is tui.DarkTheme().
func WithTheme(theme tui.Theme) ModelOption {
	return func(model *Model) { model.theme = theme }
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(keys KeyMap) ModelOption {
	return func(model *Model) { model.keys = keys }
}

// WithClock sets the clock driving the gesture debounce window. The
// default is clock.Real(). Tests inject clock.Fake() so the window
// can be advanced deterministically.
func WithClock(c clock.Clock) ModelOption {
	return func(model *Model) { model.clk = c }
}

// WithSelection seeds the initial selection.
func WithSelection(selection field.Selection) ModelOption {
	return func(model *Model) { model.selection = selection }
}

// WithFilter restricts which catalog options appear in the dropdown.
func WithFilter(filter catalog.Filter) ModelOption {
	return func(model *Model) { model.filter = filter }
}

// NewModel creates a picker for one field unit under the given
// configuration. The locale may be nil for the built-in English
// names.
func NewModel(unit field.Unit, cfg config.Config, locale *label.Locale, options ...ModelOption) Model {
	labelOpts := cfg.LabelOptions(locale)

	model := Model{
		unit:       unit,
		mode:       cfg.SelectionMode(),
		allowClear: cfg.AllowClear,
		formatOpts: format.Options{
			Label: labelOpts,
			Empty: cfg.Placeholder(unit.Kind),
		},
		keys:    DefaultKeyMap,
		theme:   tui.DarkTheme(),
		clk:     clock.Real(),
		actions: make(chan field.Action, 8),
		enabled: true,
	}
	for _, option := range options {
		option(&model)
	}

	model.selection = model.selection.Normalize(unit)
	model.options = catalog.Build(unit, labelOpts, model.filter)

	rows := make([]tui.OptionRow, len(model.options))
	for index, opt := range model.options {
		rows[index] = tui.OptionRow{
			Token:    opt.Token,
			Label:    opt.Label,
			Periodic: opt.Periodic,
		}
	}
	model.list = tui.OptionList{
		Rows:       rows,
		AnchorY:    headerHeight,
		MaxVisible: maxVisibleRows,
		Selected:   make(map[string]bool),
	}
	model.refreshHighlights()

	// The commit callback runs off the program loop; the buffered
	// channel hands the action to the listen command.
	actions := model.actions
	model.engine = gesture.New(
		func(action field.Action) { actions <- action },
		gesture.WithClock(model.clk),
		gesture.WithWindow(cfg.Window()),
		gesture.WithDoubleClickPeriodic(cfg.PeriodicityOnDoubleClick),
	)

	return model
}

// Selection returns the current selection.
func (model Model) Selection() field.Selection {
	return model.selection
}

// Value returns the current selection formatted in canonical
// notation.
func (model Model) Value() string {
	return format.Format(model.selection, model.unit, model.formatOpts)
}

// Expression returns the current selection as a raw cron field term.
func (model Model) Expression() string {
	return format.Expression(model.selection, model.unit)
}

// SetSelection replaces the selection from outside. Any gesture in
// flight is discarded so a stale debounce timer cannot clobber the
// new value.
func (model *Model) SetSelection(selection field.Selection) {
	model.engine.Reset()
	model.selection = selection.Normalize(model.unit)
	model.refreshHighlights()
}

// SetEnabled enables or disables the control. A disabled control
// renders faint, ignores input, and discards any gesture in flight.
func (model *Model) SetEnabled(enabled bool) {
	model.enabled = enabled
	model.engine.SetEnabled(enabled)
	if !enabled {
		model.open = false
	}
}

// Open reports whether the dropdown is visible.
func (model Model) Open() bool { return model.open }

// Init implements tea.Model. Starts the listener that delivers
// resolved gesture actions into Update.
func (model Model) Init() tea.Cmd {
	return listenForAction(model.actions)
}

// listenForAction returns a tea.Cmd that blocks until the gesture
// engine commits an action, then delivers it as an actionMsg.
func listenForAction(channel <-chan field.Action) tea.Cmd {
	return func() tea.Msg {
		action, ok := <-channel
		if !ok {
			return nil
		}
		return actionMsg{action: action}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case actionMsg:
		model.selection = field.Apply(model.selection, message.action, model.mode, model.unit)
		model.refreshHighlights()
		return model, listenForAction(model.actions)

	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		model.handleMouse(message)
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(message, model.keys.Quit) {
		return model, tea.Quit
	}
	if !model.enabled {
		return model, nil
	}

	if !model.open {
		if key.Matches(message, model.keys.Open) {
			model.open = true
		}
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Close):
		model.open = false
		model.engine.Reset()

	case key.Matches(message, model.keys.Up):
		model.list.MoveUp()

	case key.Matches(message, model.keys.Down):
		model.list.MoveDown()

	case key.Matches(message, model.keys.Clear):
		if model.allowClear {
			model.engine.Reset()
			model.selection = field.Empty()
			model.refreshHighlights()
		}

	case key.Matches(message, model.keys.Select):
		model.click(model.list.Under().Token)
	}
	return model, nil
}

// handleMouse routes mouse events. Wheel scrolling moves the cursor
// through the dropdown; a left press on an option row is a click into
// the gesture engine; a press anywhere else closes the dropdown (or
// opens it, on the header line).
func (model *Model) handleMouse(message tea.MouseMsg) {
	if !model.enabled {
		return
	}

	switch message.Button {
	case tea.MouseButtonWheelUp:
		if model.open && model.list.Contains(message.X, message.Y) {
			model.list.MoveUp()
		}
		return
	case tea.MouseButtonWheelDown:
		if model.open && model.list.Contains(message.X, message.Y) {
			model.list.MoveDown()
		}
		return
	}

	if message.Action != tea.MouseActionPress || message.Button != tea.MouseButtonLeft {
		return
	}

	if !model.open {
		if message.Y < headerHeight {
			model.open = true
		}
		return
	}

	if model.list.Contains(message.X, message.Y) {
		if row := model.list.RowAt(message.Y); row >= 0 {
			model.list.Cursor = row
			model.list.EnsureVisible()
			model.click(model.list.Rows[row].Token)
		}
		return
	}

	// Any press outside the dropdown (the header included) closes it
	// and discards the gesture in flight.
	model.open = false
	model.engine.Reset()
}

// click feeds one option activation into the gesture engine. The
// selection does not change here; it changes when the engine resolves
// the gesture and the action arrives back as an actionMsg.
func (model *Model) click(token string) {
	model.engine.Click(token, model.clk.Now())
}

// refreshHighlights recomputes the per-option selection markers from
// the current selection. A periodic selection checks its own "every
// N" pseudo-option plus the concrete values it generates; the empty
// selection checks nothing (the header placeholder carries the
// "matches everything" meaning).
func (model *Model) refreshHighlights() {
	if model.list.Selected == nil {
		model.list.Selected = make(map[string]bool)
	}
	clear(model.list.Selected)
	if model.selection.IsEmpty() {
		return
	}

	materialized := model.selection.Materialize(model.unit)
	for _, opt := range model.options {
		if opt.Periodic {
			model.list.Selected[opt.Token] = model.selection.IsPeriodic() &&
				opt.Token == field.PeriodicToken(model.selection.Step())
			continue
		}
		value, _, err := field.ParseToken(opt.Token)
		if err != nil {
			continue
		}
		model.list.Selected[opt.Token] = materialized.Contains(value)
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground)
	valueStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	if !model.enabled {
		valueStyle = lipgloss.NewStyle().Foreground(model.theme.FaintText)
	}

	indicator := "▸"
	if model.open {
		indicator = "▾"
	}
	header := headerStyle.Render(indicator+" "+model.unit.Kind.String()+": ") +
		valueStyle.Render(model.Value())

	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	lines := []string{header, faintStyle.Render("cron: " + model.Expression())}
	if model.open {
		// Pad the base so the dropdown has rows to float over; the
		// help line stays visible below it.
		for len(lines) < headerHeight+model.list.Height() {
			lines = append(lines, "")
		}
	}

	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	help := "enter toggle · j/k move · esc close · q quit"
	if model.allowClear {
		help += " · x clear"
	}
	lines = append(lines, helpStyle.Render(help))

	view := strings.Join(lines, "\n")
	if model.open {
		view = tui.SpliceOverlay(view, model.list.Render(model.theme),
			model.list.AnchorX, model.list.AnchorY)
	}
	return view
}
