package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// addForm collects a name for a new entry. The value always starts at 0 and
// is dialed in afterwards with the buttons, matching how the device itself
// creates entries.
type addForm struct {
	input textinput.Model
}

func newAddForm(initial string) *addForm {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.CharLimit = 64
	if initial != "" {
		ti.SetValue(initial)
		ti.CursorEnd()
	}
	ti.Focus()
	return &addForm{input: ti}
}

func (f *addForm) Value() string { return strings.TrimSpace(f.input.Value()) }

func (f *addForm) View() string {
	prompt := "new entry: "
	if styles.FormPrompt != nil {
		prompt = styles.FormPrompt.Render("new entry:") + " "
	}
	return prompt + f.input.View()
}

// handleAddForm consumes messages while the form is open. Enter submits,
// Esc cancels, anything else feeds the text input.
func (m *Model) handleAddForm(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	// The device may have slept with the form open. Any press is then a
	// wake edge, not form input; the stale form is discarded.
	if m.dev.Snapshot().Asleep {
		m.form = nil
		m.dev.Wake()
		return true, nil
	}
	switch key.Type {
	case tea.KeyEsc:
		m.form = nil
		return true, nil
	case tea.KeyEnter:
		name := m.form.Value()
		m.form = nil
		if name == "" {
			return true, nil
		}
		m.dev.AddEntry(name, 0)
		return true, nil
	}
	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	return true, cmd
}
