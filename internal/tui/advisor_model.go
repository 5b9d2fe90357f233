package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/npratt/gadgets/internal/advisor"
)

const (
	advisorTitle    = "Tech Skill Advisor"
	advisorSubtitle = "Tell us what you know or enjoy and get learning-path suggestions."

	// advisorInputHeight is the height of the description textarea.
	advisorInputHeight = 4
	// maxContentWidth caps the rendered width on wide terminals.
	maxContentWidth = 80
	// defaultContentWidth is used before the first WindowSizeMsg.
	defaultContentWidth = 60
)

// advisorFocus represents which part of the advisor has keyboard focus.
type advisorFocus int

const (
	// focusInput means the description textarea has focus (default).
	focusInput advisorFocus = iota
	// focusExamples means the example list has focus.
	focusExamples
)

// advisorModel is the bubbletea model for the keyword advisor program.
type advisorModel struct {
	session  advisor.Session
	catalog  *advisor.Catalog
	examples []string

	input         textarea.Model
	focus         advisorFocus
	exampleCursor int

	keys advisorKeyMap
	help help.Model

	width  int
	height int
}

// newAdvisorModel creates an advisor model with focus on the input.
func newAdvisorModel(catalog *advisor.Catalog, examples []string) advisorModel {
	ta := textarea.New()
	ta.Placeholder = "e.g. I know a little Python and I like data..."
	ta.SetHeight(advisorInputHeight)
	ta.SetWidth(defaultContentWidth)
	ta.CharLimit = 0 // unlimited
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false) // Enter submits, alt+enter for newline
	ta.Focus()

	return advisorModel{
		catalog:  catalog,
		examples: examples,
		input:    ta,
		keys:     newAdvisorKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m advisorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m advisorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.SetWidth(m.contentWidth())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		// Cursor blink and other textarea housekeeping
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// handleKey processes keyboard input and returns the updated model and command.
func (m advisorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys: always work regardless of focus
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
		m.input.Reset()
		cmd := m.setFocus(focusInput)
		return m, cmd

	case key.Matches(msg, m.keys.SwitchFocus):
		next := focusInput
		if m.focus == focusInput && len(m.examples) > 0 {
			next = focusExamples
		}
		cmd := m.setFocus(next)
		return m, cmd
	}

	if m.focus == focusExamples {
		return m.handleExampleKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		m.session.Analyze(m.catalog)
		slog.Debug("advisor analyzed",
			"input_len", len(m.session.Input),
			"results", len(m.session.Results),
			"error", m.session.ErrorMessage(),
		)
		return m, nil

	case key.Matches(msg, m.keys.Newline):
		m.input.InsertString("\n")
		m.syncInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.syncInput()
	return m, cmd
}

// handleExampleKey processes keys while the example list has focus.
func (m advisorModel) handleExampleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.exampleCursor > 0 {
			m.exampleCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.exampleCursor < len(m.examples)-1 {
			m.exampleCursor++
		}
	case key.Matches(msg, m.keys.Submit):
		example := m.examples[m.exampleCursor]
		m.session.UseExample(example)
		m.input.SetValue(example)
		cmd := m.setFocus(focusInput)
		return m, cmd
	}
	return m, nil
}

// syncInput copies the textarea contents into the session when they differ.
func (m *advisorModel) syncInput() {
	if v := m.input.Value(); v != m.session.Input {
		m.session.UpdateInput(v)
	}
}

// setFocus moves keyboard focus and returns the textarea focus command, if any.
func (m *advisorModel) setFocus(f advisorFocus) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// contentWidth returns the inner width available for input and cards.
func (m advisorModel) contentWidth() int {
	if m.width == 0 {
		return defaultContentWidth
	}
	// Container border (2) and padding (2)
	return safeWidth(min(m.width-4, maxContentWidth))
}

// View implements tea.Model.
func (m advisorModel) View() string {
	var sections []string
	sections = append(sections, styles.Title.Render(advisorTitle))
	sections = append(sections, styles.Subtitle.Render(advisorSubtitle))
	sections = append(sections, "")
	sections = append(sections, m.renderInput())

	if len(m.examples) > 0 {
		sections = append(sections, "")
		sections = append(sections, m.renderExamples())
	}

	if errMsg := m.session.ErrorMessage(); errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, styles.Error.Render(errMsg))
	}

	if len(m.session.Results) > 0 {
		sections = append(sections, "")
		sections = append(sections, m.renderResults())
	}

	sections = append(sections, "")
	sections = append(sections, m.help.View(m.keys))

	return styles.Container.Render(strings.Join(sections, "\n"))
}

// renderInput renders the textarea inside a focus-aware border.
func (m advisorModel) renderInput() string {
	border := styles.UnfocusedBorder
	if m.focus == focusInput {
		border = styles.FocusedBorder
	}
	return border.Render(m.input.View())
}

// renderExamples renders the clickable example prompts.
func (m advisorModel) renderExamples() string {
	lines := []string{styles.Section.Render("Try an example:")}
	for i, ex := range m.examples {
		if m.focus == focusExamples && i == m.exampleCursor {
			lines = append(lines, styles.ExampleSelected.Render("> "+ex))
			continue
		}
		lines = append(lines, styles.Example.Render("  "+ex))
	}
	return strings.Join(lines, "\n")
}

// renderResults renders one card per suggestion followed by the reset hint.
func (m advisorModel) renderResults() string {
	cards := []string{styles.Section.Render("Suggested learning paths:")}
	for _, s := range m.session.Results {
		cards = append(cards, renderCard(s, m.contentWidth()))
	}
	cards = append(cards, styles.Button.Render("[ Try Again ]")+styles.Footer.Render("  ctrl+r"))
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard renders a single suggestion as a bordered card.
func renderCard(s advisor.Suggestion, width int) string {
	// Card border (2) and padding (2)
	inner := safeWidth(width - 4)
	body := strings.Join([]string{
		styles.CardSkill.Render(s.Skill),
		styles.CardMonths.Render(formatMonths(s.Months)),
		styles.CardNote.Width(inner).Render(s.Note),
	}, "\n")
	return styles.Card.Width(safeWidth(width - 2)).Render(body)
}

// formatMonths renders an estimated duration like "~6 months".
func formatMonths(n int) string {
	if n == 1 {
		return "~1 month"
	}
	return fmt.Sprintf("~%d months", n)
}

// safeWidth returns a width that is at least 1.
func safeWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}
