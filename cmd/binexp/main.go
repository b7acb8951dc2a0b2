package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/npillmayer/binexp/batch"
	"github.com/npillmayer/binexp/expr"
	"github.com/npillmayer/binexp/rewrite"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// traceKeys are the tracing keys of all packages of this module.
var traceKeys = []string{
	"binexp.cli",
	"binexp.scanner",
	"binexp.expr",
	"binexp.rewrite",
	"binexp.batch",
}

// main() either processes files of expressions line by line, or starts an
// interactive CLI, where users may enter expressions and see them simplified.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	notation := flag.String("notation", "prefix", "Output notation [prefix|infix|postfix]")
	lenient := flag.Bool("lenient", false, "Ignore tokens after a complete expression")
	lex := flag.Bool("lex", false, "Split tokens at operator symbols")
	workers := flag.Int("workers", 0, "Number of lines processed in parallel (default: #CPUs)")
	failFast := flag.Bool("fail-fast", false, "Stop at the first line which cannot be processed")
	interactive := flag.Bool("repl", false, "Start an interactive session")
	showTree := flag.Bool("tree", false, "Display simplified expressions as trees (interactive only)")
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	outNotation, err := expr.ParseNotation(*notation)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	var parseOpts []expr.Option
	if *lenient {
		parseOpts = append(parseOpts, expr.Lenient())
	}
	if *lex {
		parseOpts = append(parseOpts, expr.WithLexer())
	}
	if *interactive {
		intp, err := NewIntp(parseOpts, nil, *showTree)
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(3)
		}
		defer intp.Close()
		pterm.Info.Println("Welcome to binexp") // colored welcome message
		tracer().Infof("Quit with <ctrl>D")
		intp.REPL()
		return
	}
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	proc := batch.New(
		batch.Workers(*workers),
		batch.Notation(outNotation),
		batch.ParseOptions(parseOpts...),
		batch.SimplifyOptions(rewrite.WithOperators(expr.DefaultOperators())),
	)
	status := 0
	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		failed, err := processInput(ctx, proc, name, os.Stdout, os.Stderr, *failFast)
		if err != nil {
			tracer().Errorf("%s: %v", name, err)
			os.Exit(2)
		}
		if failed > 0 {
			tracer().Infof("%s: %d line(s) failed", name, failed)
			status = 1
		}
	}
	os.Exit(status)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	gtrace.SyntaxTracer.SetTraceLevel(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// processInput processes a single input file; name "-" denotes stdin.
// Simplified expressions are written to w, one line per input line, failing lines
// are reported to errw. With failFast set, processing ends at the first line
// which fails.
func processInput(ctx context.Context, proc *batch.Processor, name string,
	w io.Writer, errw io.Writer, failFast bool) (int, error) {
	//
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}
	lines, err := batch.ReadLines(r)
	if err != nil {
		return 0, err
	}
	failed := 0
	for _, res := range proc.Process(ctx, lines) {
		if res.Err != nil {
			if failFast {
				return failed + 1, fmt.Errorf("line %d: %w", res.Line, res.Err)
			}
			fmt.Fprintf(errw, "%s:%d: %v\n", name, res.Line, res.Err)
			failed++
		}
		if _, err := fmt.Fprintln(w, res.Output); err != nil {
			return failed, err
		}
	}
	return failed, nil
}
