package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Layout styles
	Container lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Footer    lipgloss.Style

	// Counter styles
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Count          lipgloss.Style
	LimitMessage   lipgloss.Style

	// Advisor styles
	Section         lipgloss.Style
	Example         lipgloss.Style
	ExampleSelected lipgloss.Style
	Error           lipgloss.Style
	Card            lipgloss.Style
	CardSkill       lipgloss.Style
	CardMonths      lipgloss.Style
	CardNote        lipgloss.Style

	// Focus indicators
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style
}{
	// Layout styles
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	// Counter styles
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Count: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("252")).
		Padding(0, 2),

	LimitMessage: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")),

	// Advisor styles
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("250")),

	Example: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	ExampleSelected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1),

	CardSkill: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("114")),

	CardMonths: lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")),

	CardNote: lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")),

	// Focus indicators
	FocusedBorder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")), // Bright blue for focused

	UnfocusedBorder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")), // Dimmed gray for unfocused
}
