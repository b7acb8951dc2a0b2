package batch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/binexp/expr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var lines = []string{
	"+ 1 2",
	"+ 1",
	"+ * x 1 0",
	"",
	"* y 0",
	"- 1 2",
	"+ x 2",
}

var outputs = []string{"3", "", "x", "", "0", "", "+ x 2"}

func TestProcess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.batch")
	defer teardown()
	//
	results := New(Workers(3)).Process(context.Background(), lines)
	if len(results) != len(lines) {
		t.Fatalf("expected %d results, got %d", len(lines), len(results))
	}
	for i, r := range results {
		if r.Line != i+1 || r.Input != lines[i] {
			t.Errorf("result #%d out of order: %+v", i, r)
		}
		if r.Output != outputs[i] {
			t.Errorf("line %d: expected %q, got %q", r.Line, outputs[i], r.Output)
		}
	}
	if !errors.Is(results[1].Err, expr.ErrMalformedExpression) {
		t.Errorf("line 2 should be malformed, error is %v", results[1].Err)
	}
	if !errors.Is(results[5].Err, expr.ErrUnknownOperator) {
		t.Errorf("line 6 should have an unknown operator, error is %v", results[5].Err)
	}
	for _, i := range []int{0, 2, 3, 4, 6} {
		if results[i].Err != nil {
			t.Errorf("line %d should not fail: %v", i+1, results[i].Err)
		}
	}
}

func TestProcessCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.batch")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := New().Process(ctx, lines)
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("line %d should carry the context error, has %v", r.Line, r.Err)
		}
	}
}

func TestRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.batch")
	defer teardown()
	//
	input := strings.NewReader(strings.Join(lines, "\n"))
	var out bytes.Buffer
	failed, err := New(Notation(expr.InfixNotation)).Run(context.Background(), input, &out)
	if err != nil {
		t.Fatal(err)
	}
	if failed != 2 {
		t.Errorf("expected 2 failed lines, got %d", failed)
	}
	expected := "3\n\nx\n\n0\n\n(x + 2)\n"
	if out.String() != expected {
		t.Errorf("expected output %q, got %q", expected, out.String())
	}
}

func TestLine(t *testing.T) {
	p := New(ParseOptions(expr.Lenient()))
	r := p.Line("* 2 3 4")
	if r.Err != nil || r.Output != "6" {
		t.Errorf("lenient line should yield 6, got %q (%v)", r.Output, r.Err)
	}
	r = New().Line("* 2 3 4")
	if !errors.Is(r.Err, expr.ErrTrailingTokens) {
		t.Errorf("expected trailing tokens error, got %v", r.Err)
	}
}
