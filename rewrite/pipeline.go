package rewrite

import (
	"fmt"

	"github.com/npillmayer/binexp/expr"
	"github.com/npillmayer/schuko/tracing"
)

// Pipeline is a sequence of passes, applied in order.
type Pipeline []Pass

// DefaultPipeline returns the standard simplification passes:
//
//  1) Additive identity, e.g. x + 0 = x
//  2) Multiplicative identity, e.g. x * 1 = x
//  3) Multiplication by 0, e.g. x * 0 = 0
//  4) Constant folding, e.g. 1 + 1 = 2, but x + 1 stays x + 1
//
// ops is the operator table for constant folding and may be nil.
func DefaultPipeline(ops *expr.OperatorTable) Pipeline {
	return Pipeline{
		AdditiveIdentity(),
		MultiplicativeIdentity(),
		MultByZero(),
		ConstantFold(ops),
	}
}

// Run applies every pass of the pipeline once, in order.
func (pl Pipeline) Run(n expr.Node) (expr.Node, error) {
	var err error
	for _, pass := range pl {
		if n, err = pass.Apply(n); err != nil {
			return n, fmt.Errorf("%s: %w", pass.Name, err)
		}
		if traced(tracing.LevelDebug) {
			tracer().Debugf("after %s: %s", pass.Name, expr.Prefix(n))
		}
	}
	return n, nil
}

// Option configures simplification.
type Option func(s *simplifier)

type simplifier struct {
	pipeline   Pipeline
	ops        *expr.OperatorTable
	singlePass bool
}

// WithPipeline replaces the default pipeline. Passes of a custom pipeline must not
// grow the tree, otherwise Simplify may not terminate.
func WithPipeline(pl Pipeline) Option {
	return func(s *simplifier) {
		s.pipeline = pl
	}
}

// WithOperators sets the operator table for constant folding of the default pipeline.
func WithOperators(ops *expr.OperatorTable) Option {
	return func(s *simplifier) {
		s.ops = ops
	}
}

// SinglePass restricts simplification to one run of the pipeline. The result may
// then be simplified further by another run, e.g.
//
//     + * 0 x y  ⇒  + 0 y  ⇒  y
//
func SinglePass() Option {
	return func(s *simplifier) {
		s.singlePass = true
	}
}

// Simplify runs the simplification pipeline on a tree until the tree does not
// change any more. Folding constants may fail with an error matching
// expr.ErrInvalidLiteral; otherwise simplification is total.
func Simplify(n expr.Node, opts ...Option) (expr.Node, error) {
	s := &simplifier{}
	for _, opt := range opts {
		opt(s)
	}
	if s.pipeline == nil {
		s.pipeline = DefaultPipeline(s.ops)
	}
	for round := 1; ; round++ {
		result, err := s.pipeline.Run(n)
		if err != nil {
			return n, err
		}
		if s.singlePass || expr.Equal(result, n) {
			if traced(tracing.LevelInfo) {
				tracer().Infof("simplified in %d round(s): %s", round, expr.Prefix(result))
			}
			return result, nil
		}
		n = result
	}
}
