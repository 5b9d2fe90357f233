package tui

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/npratt/gadgets/internal/advisor"
	"github.com/npratt/gadgets/internal/counter"
)

func runLines(t *testing.T, widget Widget, input string, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	opts = append(opts, WithIO(strings.NewReader(input), &out), WithLineMode(true))
	app := New(widget, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestRunSimple_Counter(t *testing.T) {
	out := runLines(t, WidgetCounter, "-\n+\n+\ninc\n-\n", WithLimit(3))

	want := []string{"count: 0", "count: 1", "count: 2", "count: 3", "count: 2"}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
	if strings.Count(out, counter.LimitMessage) != 1 {
		t.Errorf("limit message should appear exactly once (at 3):\n%s", out)
	}
}

func TestRunSimple_CounterQuitStopsReading(t *testing.T) {
	out := runLines(t, WidgetCounter, "+\nq\n+\n+\n")

	if !strings.Contains(out, "count: 1") {
		t.Errorf("output missing count: 1:\n%s", out)
	}
	if strings.Contains(out, "count: 2") {
		t.Errorf("input after q should be ignored:\n%s", out)
	}
}

func TestRunSimple_CounterUnknownCommand(t *testing.T) {
	out := runLines(t, WidgetCounter, "jump\n\n+\n")

	if !strings.Contains(out, `unknown command "jump"`) {
		t.Errorf("output missing unknown command hint:\n%s", out)
	}
	if !strings.Contains(out, "count: 1") {
		t.Errorf("counter should keep working after a bad command:\n%s", out)
	}
}

func TestRunSimple_Advisor(t *testing.T) {
	input := strings.Join([]string{
		"",
		"I like making mobile apps for Android.",
		"xyz unrelated qwerty",
		":quit",
		"html",
	}, "\n")
	out := runLines(t, WidgetAdvisor, input)

	if !strings.Contains(out, "examples:") {
		t.Errorf("examples should be listed up front:\n%s", out)
	}
	if !strings.Contains(out, advisor.EmptyInputMessage) {
		t.Errorf("blank line should print the error message:\n%s", out)
	}
	if !strings.Contains(out, "Mobile App Development (Android)") {
		t.Errorf("output missing Android suggestion:\n%s", out)
	}
	if !strings.Contains(out, advisor.FallbackSkill) {
		t.Errorf("output missing fallback:\n%s", out)
	}
	if strings.Contains(out, "Front-End Web Development") {
		t.Errorf("input after :quit should be ignored:\n%s", out)
	}
}

func TestRunSimple_AdvisorCommands(t *testing.T) {
	input := strings.Join([]string{
		":examples",
		":example 2",
		":example 99",
		":reset",
		":bogus",
	}, "\n")
	out := runLines(t, WidgetAdvisor, input, WithExamples([]string{"I like games", "I build an API server"}))

	if !strings.Contains(out, "  2. I build an API server") {
		t.Errorf("examples list missing custom example:\n%s", out)
	}
	if !strings.Contains(out, "> I build an API server") {
		t.Errorf(":example 2 should echo the example:\n%s", out)
	}
	if !strings.Contains(out, "Back-End Development") {
		t.Errorf(":example 2 should analyze the example:\n%s", out)
	}
	if !strings.Contains(out, "example number must be between 1 and 2") {
		t.Errorf("out of range example should print a hint:\n%s", out)
	}
	if !strings.Contains(out, "cleared") {
		t.Errorf(":reset should confirm:\n%s", out)
	}
	if !strings.Contains(out, "commands:") {
		t.Errorf("unknown command should print usage:\n%s", out)
	}
}

func TestRunSimple_AdvisorLongLine(t *testing.T) {
	long := "I know html " + strings.Repeat("a ", 40*1024) + "\n"
	out := runLines(t, WidgetAdvisor, long+"I like android\n")

	for _, want := range []string{"Front-End Web Development", "Mobile App Development (Android)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q after an 80 KB line", want)
		}
	}
}

func TestRunSimple_LineTooLong(t *testing.T) {
	input := strings.Repeat("a", maxLineSize+1) + "\n+\n"
	var out bytes.Buffer
	app := New(WidgetCounter, WithIO(strings.NewReader(input), &out), WithLineMode(true))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := app.Run(ctx)
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("Run error = %v, want bufio.ErrTooLong", err)
	}
	if strings.Contains(out.String(), "count:") {
		t.Errorf("no command should run after the failed read, got %q", out.String())
	}
}

func TestRunSimple_ContextCancel(t *testing.T) {
	// A reader that never returns data keeps the loop waiting.
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	app := New(WidgetCounter, WithIO(pr, &bytes.Buffer{}), WithLineMode(true))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil on cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
