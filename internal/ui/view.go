package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"grindpad.dev/grindpad/internal/device"
	"grindpad.dev/grindpad/internal/store"
)

// defaultWidth approximates the panel when the terminal size is unknown.
const defaultWidth = 40

const lowBatteryThreshold = 20

// View renders the panel from a device snapshot.
func (m *Model) View() string {
	snap := m.dev.Snapshot()
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	if snap.Asleep {
		return m.viewAsleep(width)
	}

	var b strings.Builder
	b.WriteString(renderHeader(width, snap.Battery))
	b.WriteString("\n\n")
	for i, entry := range snap.Entries {
		selected := store.Cursor(i) == snap.Cursor
		b.WriteString(renderRow(entry, width, selected, selected && snap.Mode == device.ModeEdit))
		b.WriteString("\n")
	}
	if len(snap.Entries) == 0 {
		b.WriteString(styles.Item.Render("(no entries)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter(width, snap.Status))
	return b.String()
}

func (m *Model) viewAsleep(width int) string {
	label := "sleeping · press any key to wake"
	line := styles.Asleep.Render(label)
	pad := (width - lipgloss.Width(line)) / 2
	if pad < 0 {
		pad = 0
	}
	return "\n\n" + strings.Repeat(" ", pad) + line + "\n"
}

func renderHeader(width int, battery int) string {
	title := styles.Header.Render("grindpad")
	level := fmt.Sprintf("%d%%", battery)
	if battery <= lowBatteryThreshold {
		level = styles.BatteryLow.Render(level)
	} else {
		level = styles.Battery.Render(level)
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(level)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + level
}

// renderRow lays out one entry: marker, name padded left, value pinned to
// the right edge. An edited value shows in brackets.
func renderRow(entry store.Entry, width int, selected, editing bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	value := fmt.Sprintf("%2d", entry.Value)
	if editing {
		value = "[" + value + "]"
	}
	nameW := width - len(marker) - lipgloss.Width(value) - 1
	if nameW < 1 {
		nameW = 1
	}
	name := entry.Name
	if lipgloss.Width(name) > nameW {
		name = truncate.StringWithTail(name, uint(nameW), "…")
	} else {
		name = name + strings.Repeat(" ", nameW-lipgloss.Width(name))
	}
	row := marker + name + " "
	if editing {
		row += styles.EditValue.Render(value)
	} else {
		row += value
	}
	if selected {
		return styles.SelectedItem.Render(row)
	}
	return styles.Item.Render(row)
}

func (m *Model) renderFooter(width int, status string) string {
	if m.form != nil {
		return m.form.View()
	}
	if status != "" {
		style := styles.Status
		if strings.HasPrefix(status, "save failed") {
			style = styles.StatusError
		}
		return style.Render(truncate.StringWithTail(status, uint(width), "…"))
	}
	return styles.Footer.Render("↑/↓ move · enter edit · d delete · a add · q quit")
}
