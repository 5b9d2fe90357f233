package tui

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/npratt/gadgets/internal/counter"
)

const counterTitle = "Simple Counter App"

// counterModel is the bubbletea model for the counter program.
type counterModel struct {
	state counter.State
	keys  counterKeyMap
	help  help.Model

	width  int
	height int
}

// newCounterModel creates a counter model starting at zero.
func newCounterModel(limit int) counterModel {
	return counterModel{
		state: counter.New(limit),
		keys:  newCounterKeyMap(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m counterModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input and returns the updated model and command.
func (m counterModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Increase):
		m.state.Increment()
		slog.Debug("counter changed", "value", m.state.Value, "at_limit", m.state.AtLimit())

	case key.Matches(msg, m.keys.Decrease):
		// Control is disabled at the floor
		if !m.state.CanDecrement() {
			return m, nil
		}
		m.state.Decrement()
		slog.Debug("counter changed", "value", m.state.Value, "at_limit", m.state.AtLimit())
	}
	return m, nil
}

// View implements tea.Model.
func (m counterModel) View() string {
	var sections []string
	sections = append(sections, styles.Title.Render(counterTitle))
	sections = append(sections, "")
	sections = append(sections, m.renderControls())

	if m.state.AtLimit() {
		sections = append(sections, "")
		sections = append(sections, styles.LimitMessage.Render(counter.LimitMessage))
	}

	sections = append(sections, "")
	sections = append(sections, m.help.View(m.keys))

	return styles.Container.Render(strings.Join(sections, "\n"))
}

// renderControls renders "[ Decrease ]  N  [ Increase ]".
func (m counterModel) renderControls() string {
	decStyle := styles.Button
	if !m.state.CanDecrement() {
		decStyle = styles.ButtonDisabled
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		decStyle.Render("[ Decrease ]"),
		styles.Count.Render(strconv.Itoa(m.state.Value)),
		styles.Button.Render("[ Increase ]"),
	)
}
