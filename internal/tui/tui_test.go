package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/npratt/gadgets/internal/advisor"
	"github.com/npratt/gadgets/internal/counter"
)

func TestNew_Defaults(t *testing.T) {
	app := New(WidgetCounter)

	if app.limit != counter.DefaultLimit {
		t.Errorf("limit = %d, want %d", app.limit, counter.DefaultLimit)
	}
	if app.catalog != advisor.DefaultCatalog() {
		t.Error("catalog should default to the built-in catalog")
	}
	if len(app.examples) != len(advisor.DefaultExamples()) {
		t.Errorf("examples = %v, want defaults", app.examples)
	}
	if app.forceMode {
		t.Error("forceMode should be false without WithLineMode")
	}
}

func TestNew_AppliesOptions(t *testing.T) {
	catalog, err := advisor.NewCatalog([]advisor.Suggestion{
		{Skill: "Go", Months: 2, Keywords: []string{"golang"}},
	})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	in := strings.NewReader("")
	var out bytes.Buffer

	app := New(WidgetAdvisor,
		WithLimit(4),
		WithCatalog(catalog),
		WithExamples([]string{"I write golang"}),
		WithIO(in, &out),
		WithLineMode(false),
	)

	if app.limit != 4 {
		t.Errorf("limit = %d, want 4", app.limit)
	}
	if app.catalog != catalog {
		t.Error("catalog not set")
	}
	if len(app.examples) != 1 || app.examples[0] != "I write golang" {
		t.Errorf("examples = %v", app.examples)
	}
	if app.in != in || app.out != &out {
		t.Error("IO not set")
	}
	if !app.forceMode || app.lineMode {
		t.Error("WithLineMode(false) should force full-screen mode")
	}
}

func TestWithExamples_EmptyKeepsDefaults(t *testing.T) {
	app := New(WidgetAdvisor, WithExamples(nil))
	if len(app.examples) != len(advisor.DefaultExamples()) {
		t.Errorf("examples = %v, want defaults", app.examples)
	}
}

func TestWithExamples_Copies(t *testing.T) {
	examples := []string{"one"}
	app := New(WidgetAdvisor, WithExamples(examples))
	examples[0] = "changed"
	if app.examples[0] != "one" {
		t.Error("WithExamples should copy its input")
	}
}

func TestModel_PerWidget(t *testing.T) {
	m, err := New(WidgetCounter, WithLimit(3)).model()
	if err != nil {
		t.Fatalf("model() failed: %v", err)
	}
	cm, ok := m.(counterModel)
	if !ok {
		t.Fatalf("model() = %T, want counterModel", m)
	}
	if cm.state.Limit != 3 {
		t.Errorf("Limit = %d, want 3", cm.state.Limit)
	}

	m, err = New(WidgetAdvisor).model()
	if err != nil {
		t.Fatalf("model() failed: %v", err)
	}
	if _, ok := m.(advisorModel); !ok {
		t.Fatalf("model() = %T, want advisorModel", m)
	}
}

func TestRun_UnknownWidget(t *testing.T) {
	app := New(Widget("clock"), WithIO(strings.NewReader(""), &bytes.Buffer{}), WithLineMode(true))
	err := app.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unknown widget") {
		t.Errorf("Run() error = %v, want unknown widget", err)
	}

	if _, err := New(Widget("clock")).model(); err == nil {
		t.Error("model() should fail for unknown widget")
	}
}
