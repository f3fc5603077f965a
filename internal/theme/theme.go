package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI. The
// palette stays close to monochrome so the simulator reads like the panel.
type Styles struct {
	Header       *lipgloss.Style
	Battery      *lipgloss.Style
	BatteryLow   *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	EditValue    *lipgloss.Style
	Status       *lipgloss.Style
	StatusError  *lipgloss.Style
	Footer       *lipgloss.Style
	Asleep       *lipgloss.Style
	FormPrompt   *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Battery: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	BatteryLow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	EditValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("255")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	StatusError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Asleep: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true),
	),
	FormPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
