// Package tui provides the terminal programs for the gadgets widgets using bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/npratt/gadgets/internal/advisor"
	"github.com/npratt/gadgets/internal/counter"
)

// Widget selects which program to run.
type Widget string

const (
	// WidgetCounter is the bounded counter.
	WidgetCounter Widget = "counter"
	// WidgetAdvisor is the keyword advisor.
	WidgetAdvisor Widget = "advisor"
)

// TUI runs one widget either as a full-screen program or in line mode.
type TUI struct {
	widget   Widget
	limit    int
	catalog  *advisor.Catalog
	examples []string

	in        io.Reader
	out       io.Writer
	lineMode  bool
	forceMode bool // lineMode was set explicitly; skip TTY detection
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a new TUI for the given widget with the given options.
func New(widget Widget, opts ...Option) *TUI {
	t := &TUI{
		widget:   widget,
		limit:    counter.DefaultLimit,
		examples: advisor.DefaultExamples(),
		in:       os.Stdin,
		out:      os.Stdout,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.catalog == nil {
		t.catalog = advisor.DefaultCatalog()
	}

	return t
}

// WithLimit sets the counter limit.
func WithLimit(limit int) Option {
	return func(t *TUI) {
		t.limit = limit
	}
}

// WithCatalog sets the suggestion catalog used by the advisor.
func WithCatalog(c *advisor.Catalog) Option {
	return func(t *TUI) {
		t.catalog = c
	}
}

// WithExamples replaces the advisor example prompts. An empty list keeps the defaults.
func WithExamples(examples []string) Option {
	return func(t *TUI) {
		if len(examples) > 0 {
			t.examples = append([]string(nil), examples...)
		}
	}
}

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(t *TUI) {
		t.in = in
		t.out = out
	}
}

// WithLineMode forces line mode on or off instead of detecting a terminal.
func WithLineMode(enabled bool) Option {
	return func(t *TUI) {
		t.lineMode = enabled
		t.forceMode = true
	}
}

// Run starts the selected widget and blocks until it exits.
func (t *TUI) Run(ctx context.Context) error {
	lineMode := t.lineMode
	if !t.forceMode {
		lineMode = !isTerminal()
	}

	if lineMode {
		slog.Debug("running in line mode", "widget", t.widget)
		return t.runSimple(ctx)
	}

	m, err := t.model()
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Cancelled from outside (signal); not a failure
		return nil
	}
	return err
}

// model builds the bubbletea model for the selected widget.
func (t *TUI) model() (tea.Model, error) {
	switch t.widget {
	case WidgetCounter:
		return newCounterModel(t.limit), nil
	case WidgetAdvisor:
		return newAdvisorModel(t.catalog, t.examples), nil
	default:
		return nil, fmt.Errorf("unknown widget %q", t.widget)
	}
}
