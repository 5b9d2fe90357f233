package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/npratt/gadgets/internal/advisor"
	"github.com/npratt/gadgets/internal/counter"
	"golang.org/x/term"
)

// maxLineSize caps a single line of line-mode input.
const maxLineSize = 1 << 20

// isTerminal returns true if both stdout and stdin are TTYs.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// runSimple provides line-by-line interaction for non-interactive environments.
// Exits at end of input, on a quit command, or on interrupt signal.
func (t *TUI) runSimple(ctx context.Context) error {
	// Set up interrupt handling
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	lines, readErr := readLines(ctx, t.in)

	var handle func(line string) bool
	switch t.widget {
	case WidgetCounter:
		handle = newCounterLines(t.out, t.limit).handle
	case WidgetAdvisor:
		handle = newAdvisorLines(t.out, t.catalog, t.examples).handle
		printExamples(t.out, t.examples)
	default:
		return fmt.Errorf("unknown widget %q", t.widget)
	}

	for {
		select {
		case <-ctx.Done():
			// Clean exit on interrupt
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return fmt.Errorf("read input: %w", err)
				default:
					return nil
				}
			}
			if !handle(line) {
				return nil
			}
		}
	}
}

// readLines scans r in the background and delivers each line on the returned
// channel, which is closed at EOF or once ctx is done. A scan failure, such as
// a line longer than maxLineSize, is sent on the error channel before the line
// channel closes.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	ch := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case ch <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- err
		}
	}()
	return ch, errc
}

// counterLines drives a counter from text commands.
type counterLines struct {
	out   io.Writer
	state counter.State
}

func newCounterLines(out io.Writer, limit int) *counterLines {
	return &counterLines{out: out, state: counter.New(limit)}
}

// handle applies one command and reports whether to keep reading.
func (c *counterLines) handle(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "+", "inc", "increase":
		c.state.Increment()
	case "-", "dec", "decrease":
		c.state.Decrement()
	case "q", "quit", "exit":
		return false
	case "":
		return true
	default:
		fmt.Fprintf(c.out, "unknown command %q (use +, - or q)\n", strings.TrimSpace(line))
		return true
	}

	fmt.Fprintf(c.out, "count: %d\n", c.state.Value)
	if c.state.AtLimit() {
		fmt.Fprintln(c.out, counter.LimitMessage)
	}
	return true
}

// advisorLines drives an advisor session from text input.
type advisorLines struct {
	out      io.Writer
	catalog  *advisor.Catalog
	examples []string
	session  advisor.Session
}

func newAdvisorLines(out io.Writer, catalog *advisor.Catalog, examples []string) *advisorLines {
	return &advisorLines{out: out, catalog: catalog, examples: examples}
}

// handle analyzes one line of input, or runs a ":" command.
// It reports whether to keep reading.
func (a *advisorLines) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ":") {
		return a.command(strings.Fields(trimmed[1:]))
	}

	a.session.UpdateInput(line)
	a.analyze()
	return true
}

func (a *advisorLines) command(args []string) bool {
	if len(args) == 0 {
		a.printUsage()
		return true
	}

	switch args[0] {
	case "quit", "q":
		return false
	case "reset":
		a.session.Reset()
		fmt.Fprintln(a.out, "cleared")
	case "examples":
		printExamples(a.out, a.examples)
	case "example":
		n, err := strconv.Atoi(strings.Join(args[1:], ""))
		if err != nil || n < 1 || n > len(a.examples) {
			fmt.Fprintf(a.out, "example number must be between 1 and %d\n", len(a.examples))
			return true
		}
		a.session.UseExample(a.examples[n-1])
		fmt.Fprintf(a.out, "> %s\n", a.session.Input)
		a.analyze()
	default:
		a.printUsage()
	}
	return true
}

func (a *advisorLines) analyze() {
	a.session.Analyze(a.catalog)
	if msg := a.session.ErrorMessage(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return
	}
	if err := WriteSuggestions(a.out, a.session.Results); err != nil {
		slog.Debug("write suggestions failed", "error", err)
	}
}

func (a *advisorLines) printUsage() {
	fmt.Fprintln(a.out, "commands: :examples, :example N, :reset, :quit")
}

// printExamples lists the example prompts with 1-based numbers.
func printExamples(w io.Writer, examples []string) {
	if len(examples) == 0 {
		return
	}
	fmt.Fprintln(w, "examples:")
	for i, ex := range examples {
		fmt.Fprintf(w, "  %d. %s\n", i+1, ex)
	}
}
