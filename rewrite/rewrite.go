package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/binexp/expr"
	"github.com/npillmayer/schuko/tracing"
)

// Rewriter is a function
//
//     node ↦ node
//
// i.e., a term rewriting function for a single tree node. A rewriter returns its
// input unchanged if its pattern does not match.
type Rewriter func(n expr.Node) (expr.Node, error)

// Pass is a named rewriting pass over a whole tree.
type Pass struct {
	Name string
	Rule Rewriter
}

// Apply rewrites a tree bottom-up with the rule of the pass.
func (p Pass) Apply(n expr.Node) (expr.Node, error) {
	return BottomUp(p.Rule)(n)
}

// BottomUp lifts a rewriter for single nodes to a rewriter for trees. Operands of
// an operator are rewritten first, then the rule is tested on the operator node
// rebuilt from the rewritten operands.
func BottomUp(rule Rewriter) Rewriter {
	var rewrite Rewriter
	rewrite = func(n expr.Node) (expr.Node, error) {
		op, ok := n.(expr.Operator)
		if !ok {
			return rule(n)
		}
		left, err := rewrite(op.Left)
		if err != nil {
			return n, err
		}
		right, err := rewrite(op.Right)
		if err != nil {
			return n, err
		}
		return rule(expr.Op(op.Symbol, left, right))
	}
	return rewrite
}

// --- Rules -----------------------------------------------------------------

// AdditiveIdentity reduces additive identities:
//
//     x + 0 = 0 + x = x
//
func AdditiveIdentity() Pass {
	return Pass{Name: "additive-identity", Rule: identity("+", "0")}
}

// MultiplicativeIdentity reduces multiplicative identities:
//
//     x * 1 = 1 * x = x
//
func MultiplicativeIdentity() Pass {
	return Pass{Name: "multiplicative-identity", Rule: identity("*", "1")}
}

// identity creates a rule for operator op with neutral element lit.
func identity(op string, lit string) Rewriter {
	return func(n expr.Node) (expr.Node, error) {
		o, ok := n.(expr.Operator)
		if !ok || o.Symbol != op {
			return n, nil
		}
		if expr.IsLiteral(o.Left, lit) {
			traceReduction(n, o.Right)
			return o.Right, nil
		}
		if expr.IsLiteral(o.Right, lit) {
			traceReduction(n, o.Left)
			return o.Left, nil
		}
		return n, nil
	}
}

// MultByZero reduces multiplication by zero:
//
//     x * 0 = 0 * x = 0
//
// The other operand is discarded, however complex it is.
func MultByZero() Pass {
	return Pass{Name: "mult-by-zero", Rule: func(n expr.Node) (expr.Node, error) {
		o, ok := n.(expr.Operator)
		if !ok || o.Symbol != "*" {
			return n, nil
		}
		if expr.IsLiteral(o.Left, "0") || expr.IsLiteral(o.Right, "0") {
			zero := expr.Num("0")
			traceReduction(n, zero)
			return zero, nil
		}
		return n, nil
	}}
}

// ConstantFold replaces an operator applied to two numbers by the result, e.g.
//
//     1 + 2 = 3
//     x + 2 = x + 2
//
// Operators are evaluated with the fold functions of ops (DefaultOperators() if
// ops is nil). Operators without a fold function and results not representable as
// an unsigned literal are left untouched. Literals or results exceeding the integer
// range produce an error matching expr.ErrInvalidLiteral.
func ConstantFold(ops *expr.OperatorTable) Pass {
	if ops == nil {
		ops = expr.DefaultOperators()
	}
	return Pass{Name: "constant-fold", Rule: func(n expr.Node) (expr.Node, error) {
		o, ok := n.(expr.Operator)
		if !ok {
			return n, nil
		}
		x, xok := o.Left.(expr.Number)
		y, yok := o.Right.(expr.Number)
		if !xok || !yok {
			return n, nil
		}
		def, ok := ops.Lookup(o.Symbol)
		if !ok || def.Fold == nil {
			return n, nil
		}
		a, err := x.Value()
		if err != nil {
			return n, err
		}
		b, err := y.Value()
		if err != nil {
			return n, err
		}
		v, err := def.Fold(a, b)
		if err != nil {
			return n, err
		}
		if v < 0 {
			tracer().Infof("%s: result %d has no literal, not folded", o.Symbol, v)
			return n, nil
		}
		folded := expr.Int(v)
		traceReduction(n, folded)
		return folded, nil
	}}
}

// traced is a predicate: does the rewrite tracer output messages of level l?
// Trace messages rendering subtrees are guarded by it.
func traced(l tracing.TraceLevel) bool {
	return tracer().GetTraceLevel() >= l
}

func traceReduction(from, to expr.Node) {
	if traced(tracing.LevelDebug) {
		tracer().Debugf("%s ⇒ %s", expr.Prefix(from), expr.Prefix(to))
	}
}
