/*
Package expr implements binary expression trees.

Expressions are read in prefix notation, with each operator preceding its two
operands:

	+ * x 1 0

Trees are made of three kinds of nodes: numbers and variables are leaves,
operators always have exactly two children. Node is a sealed interface; clients
use type switches over Number, Variable and Operator to walk a tree.

	tree, err := expr.ParseString("+ * x 1 0")
	if err != nil {
		// do error handling
	}
	fmt.Println(expr.Infix(tree))   // ((x * 1) + 0)

Trees are treated as immutable values. Package rewrite creates new trees from
existing ones.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'binexp.expr'.
func tracer() tracing.Trace {
	return tracing.Select("binexp.expr")
}
