/*
Package rewrite implements simplification of expression trees by term rewriting.

A rewriting pass consists of a rule tested at a single node. The pass applies
its rule bottom-up: children are rewritten first, then the rule is tested
against the rebuilt parent. Thus

	+ * x 1 0

is simplified to 'x': the multiplicative identity turns (* x 1) into x, then the
additive identity sees (+ x 0).

Passes are collected in a Pipeline. The default pipeline runs
additive identity, multiplicative identity, multiplication by zero and constant
folding, in this order. Simplify repeats the pipeline until the tree is stable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'binexp.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("binexp.rewrite")
}
