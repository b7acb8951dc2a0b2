package rewrite

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/binexp/expr"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parse(t *testing.T, input string) expr.Node {
	tree, err := expr.ParseString(input)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", input, err)
	}
	return tree
}

func simplified(t *testing.T, input string) string {
	tree, err := Simplify(parse(t, input))
	if err != nil {
		t.Fatalf("cannot simplify %q: %v", input, err)
	}
	return expr.Prefix(tree)
}

// subexpressions to substitute for x in the identity tests
var operands = []string{
	"7",
	"y",
	"+ y 2",
	"* + a b * c + d 3",
}

func TestAdditiveIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	//
	for _, x := range operands {
		expected := simplified(t, x)
		if s := simplified(t, "+ "+x+" 0"); s != expected {
			t.Errorf("+ %s 0 should simplify to %s, is %s", x, expected, s)
		}
		if s := simplified(t, "+ 0 "+x); s != expected {
			t.Errorf("+ 0 %s should simplify to %s, is %s", x, expected, s)
		}
	}
}

func TestMultiplicativeIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	//
	for _, x := range operands {
		expected := simplified(t, x)
		if s := simplified(t, "* "+x+" 1"); s != expected {
			t.Errorf("* %s 1 should simplify to %s, is %s", x, expected, s)
		}
		if s := simplified(t, "* 1 "+x); s != expected {
			t.Errorf("* 1 %s should simplify to %s, is %s", x, expected, s)
		}
	}
}

func TestMultByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	//
	for _, x := range operands {
		if s := simplified(t, "* "+x+" 0"); s != "0" {
			t.Errorf("* %s 0 should simplify to 0, is %s", x, s)
		}
		if s := simplified(t, "* 0 "+x); s != "0" {
			t.Errorf("* 0 %s should simplify to 0, is %s", x, s)
		}
	}
}

var simplifications = []struct {
	input, output string
}{
	{"+ 1 2", "3"},
	{"* 2 3", "6"},
	{"+ x 2", "+ x 2"},
	{"+ * x 1 0", "x"},
	{"* + 1 2 + 3 4", "21"},
	{"+ * 0 x y", "y"},
	{"* x * 0 y", "0"},
	{"+ x * 2 0", "x"},
	{"+ 0 0", "0"},
	{"* 1 1", "1"},
	{"+ + x 1 2", "+ + x 1 2"},
	{"* y + 0 + 1 0", "y"},
	{"42", "42"},
	{"z", "z"},
}

func TestSimplify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	//
	for _, test := range simplifications {
		if s := simplified(t, test.input); s != test.output {
			t.Errorf("%s should simplify to %s, is %s", test.input, test.output, s)
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	//
	for _, test := range simplifications {
		once, err := Simplify(parse(t, test.input))
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Simplify(once)
		if err != nil {
			t.Fatal(err)
		}
		if !expr.Equal(once, twice) {
			t.Errorf("simplify of %s is not idempotent: %s vs %s", test.input,
				expr.Prefix(once), expr.Prefix(twice))
		}
		again, err := DefaultPipeline(nil).Run(once)
		if err != nil || !expr.Equal(once, again) {
			t.Errorf("pipeline run on simplified %s changed it to %s", expr.Prefix(once), expr.Prefix(again))
		}
	}
}

func TestSinglePass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	//
	tree, err := Simplify(parse(t, "+ * 0 x y"), SinglePass())
	if err != nil {
		t.Fatal(err)
	}
	if s := expr.Prefix(tree); s != "+ 0 y" {
		t.Errorf("one run should yield '+ 0 y', is %s", s)
	}
}

func TestPassesInIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	//
	tracing.Select("binexp.rewrite").SetTraceLevel(tracing.LevelDebug)
	tree := parse(t, "+ * x 1 0")
	for _, test := range []struct {
		pass     Pass
		expected string
	}{
		{AdditiveIdentity(), "* x 1"},
		{MultiplicativeIdentity(), "+ x 0"},
		{MultByZero(), "+ * x 1 0"},
		{ConstantFold(nil), "+ * x 1 0"},
	} {
		result, err := test.pass.Apply(tree)
		if err != nil {
			t.Fatal(err)
		}
		if s := expr.Prefix(result); s != test.expected {
			t.Errorf("pass %s should yield %s, is %s", test.pass.Name, test.expected, s)
		}
	}
	if s := expr.Prefix(tree); s != "+ * x 1 0" {
		t.Errorf("input tree has been modified: %s", s)
	}
}

func TestFoldOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	//
	for _, input := range []string{
		"* 9223372036854775807 2",
		"+ 99999999999999999999 1",
	} {
		_, err := Simplify(parse(t, input))
		if !errors.Is(err, expr.ErrInvalidLiteral) {
			t.Errorf("expected invalid literal for %s, got %v", input, err)
		}
	}
}

func TestCustomOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	//
	ops := expr.DefaultOperators()
	if err := ops.Define("-", func(x, y int64) (int64, error) { return x - y, nil }); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		input, output string
	}{
		{"- 5 3", "2"},
		{"- 3 5", "- 3 5"}, // no negative literals
		{"- x + 1 0", "- x 1"},
	} {
		tree, err := expr.ParseString(test.input, expr.WithOperators(ops))
		if err != nil {
			t.Fatal(err)
		}
		tree, err = Simplify(tree, WithOperators(ops))
		if err != nil {
			t.Fatal(err)
		}
		if s := expr.Prefix(tree); s != test.output {
			t.Errorf("%s should simplify to %s, is %s", test.input, test.output, s)
		}
	}
}

func TestSimplifyLargeTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "binexp.rewrite")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	if traced(tracing.LevelDebug) {
		t.Fatal("expected debug tracing to be off")
	}
	//
	// + 0 + 0 … + 0 + x + x … + x y
	const n = 20000
	var tokens []string
	for i := 0; i < n; i++ {
		tokens = append(tokens, "+", "0")
	}
	for i := 0; i < n; i++ {
		tokens = append(tokens, "+", "x")
	}
	tokens = append(tokens, "y")
	tree, err := expr.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	tree, err = Simplify(tree)
	if err != nil {
		t.Fatal(err)
	}
	if d := time.Since(start); d > 5*time.Second {
		t.Errorf("simplifying %d nodes took %v", 4*n+1, d)
	}
	if size := expr.Size(tree); size != 2*n+1 {
		t.Errorf("expected %d nodes after simplification, have %d", 2*n+1, size)
	}
	want := strings.Join(tokens[2*n:], " ")
	if s := expr.Prefix(tree); s != want {
		t.Errorf("expected identities to be removed, have %.40s…", s)
	}
}
