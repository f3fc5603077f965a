// Package ui renders the panel in a terminal and maps keys onto the three
// hardware buttons, so the whole device can be driven without the display
// attached.
package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"grindpad.dev/grindpad/internal/device"
	"grindpad.dev/grindpad/internal/theme"
)

// tickInterval paces the poll loop that drives the save-debounce and sleep
// timers.
const tickInterval = 100 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type tickMsg time.Time

// Model implements the Bubble Tea model for the panel simulator.
type Model struct {
	dev         *device.Device
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	form        *addForm

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the simulator over a device. Width and height of 0
// track the terminal size.
func NewModel(dev *device.Device, width, height int) *Model {
	m := &Model{dev: dev}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		if handled, cmd := m.handleAddForm(msg); handled {
			return m, cmd
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if m.handlers == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}

// handleTickMsg advances the device timers and consumes the pending redraw
// hint. A full-quality refresh clears the screen so the repaint is not
// layered over stale cells, matching the panel's flashing full update.
func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	m.dev.Tick()
	if m.dev.ConsumeRedraw() == device.RedrawFull {
		return tea.Batch(tea.ClearScreen, tick())
	}
	return tick()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// handleKeyMsg maps terminal keys onto button edges. The d key stands in
// for the physical long press and w for the external wake line.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)
	switch key.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "up", "k":
		m.dev.PressUp()
	case "down", "j":
		m.dev.PressDown()
	case "enter", " ":
		m.dev.PressSelect()
	case "d":
		m.dev.LongPressDelete()
	case "a":
		if !m.dev.Snapshot().Asleep {
			m.form = newAddForm(m.dev.DefaultName())
		}
	case "w":
		m.dev.Wake()
	}
	return nil
}
