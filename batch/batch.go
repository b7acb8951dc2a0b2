/*
Package batch processes expressions line by line.

Each line holds one expression in prefix notation. Lines are parsed, simplified
and rendered independently of each other, in parallel. A malformed line yields
an error for this line only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package batch

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/npillmayer/binexp/expr"
	"github.com/npillmayer/binexp/rewrite"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
)

// tracer traces with key 'binexp.batch'.
func tracer() tracing.Trace {
	return tracing.Select("binexp.batch")
}

// Result is the outcome of processing a single input line.
type Result struct {
	Line   int       // line number, starting at 1
	Input  string    // input line
	Tree   expr.Node // simplified tree, nil for blank lines and errors
	Output string    // rendered simplified expression
	Err    error     // parse or simplification error
}

// Processor processes batches of expressions.
type Processor struct {
	workers      int
	notation     expr.Notation
	parseOpts    []expr.Option
	simplifyOpts []rewrite.Option
}

// Option configures a processor.
type Option func(p *Processor)

// Workers sets the maximum number of lines processed concurrently.
func Workers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// Notation sets the output notation. Default is prefix notation.
func Notation(n expr.Notation) Option {
	return func(p *Processor) {
		p.notation = n
	}
}

// ParseOptions sets options for parsing each line.
func ParseOptions(opts ...expr.Option) Option {
	return func(p *Processor) {
		p.parseOpts = append(p.parseOpts, opts...)
	}
}

// SimplifyOptions sets options for simplifying each expression.
func SimplifyOptions(opts ...rewrite.Option) Option {
	return func(p *Processor) {
		p.simplifyOpts = append(p.simplifyOpts, opts...)
	}
}

// New creates a processor. Without options, it uses one worker per CPU, default
// operators and prefix output.
func New(opts ...Option) *Processor {
	p := &Processor{
		workers:  runtime.GOMAXPROCS(0),
		notation: expr.PrefixNotation,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process processes a slice of input lines and returns a result for every line,
// in input order. Processing stops scheduling new lines when ctx is cancelled;
// lines not processed carry the context error.
func (p *Processor) Process(ctx context.Context, lines []string) []Result {
	results := make([]Result, len(lines))
	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, line := range lines {
		results[i] = Result{Line: i + 1, Input: line}
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		i := i
		g.Go(func() error {
			p.process(&results[i]) // every task owns exactly one slot
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors
	return results
}

// Line processes a single input line.
func (p *Processor) Line(line string) Result {
	r := Result{Line: 1, Input: line}
	p.process(&r)
	return r
}

func (p *Processor) process(r *Result) {
	if strings.TrimSpace(r.Input) == "" {
		return
	}
	tree, err := expr.ParseString(r.Input, p.parseOpts...)
	if err != nil {
		r.Err = err
		tracer().Infof("line %d: %v", r.Line, err)
		return
	}
	if tree, err = rewrite.Simplify(tree, p.simplifyOpts...); err != nil {
		r.Err = err
		tracer().Infof("line %d: %v", r.Line, err)
		return
	}
	r.Tree = tree
	r.Output = expr.Render(tree, p.notation)
	tracer().Debugf("line %d: %s ⇒ %s", r.Line, r.Input, r.Output)
}

// Run reads expressions from r, one per line, and writes the simplified expressions
// to w, one line per input line. Lines which fail are written as empty lines.
// Run returns the number of failed lines and an I/O error, if any.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return 0, err
	}
	results := p.Process(ctx, lines)
	failed := 0
	out := bufio.NewWriter(w)
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		if _, err := out.WriteString(res.Output + "\n"); err != nil {
			return failed, err
		}
	}
	return failed, out.Flush()
}

// ReadLines reads all lines from r, without line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
