package expr

import (
	"strconv"
)

// Node is a node of an expression tree. The set of implementations is closed:
// Number, Variable and Operator.
type Node interface {
	isNode()
}

// Number is a leaf holding a numeric literal, i.e. a non-empty sequence of digits.
type Number struct {
	Literal string
}

// Variable is a leaf holding an identifier. Variables are never constant.
type Variable struct {
	Name string
}

// Operator is an inner node for a binary operator.
type Operator struct {
	Symbol string
	Left   Node
	Right  Node
}

func (Number) isNode()   {}
func (Variable) isNode() {}
func (Operator) isNode() {}

// Num creates a number leaf.
func Num(literal string) Number {
	return Number{Literal: literal}
}

// Int creates a number leaf from a non-negative integer.
func Int(n int64) Number {
	if n < 0 {
		panic("negative value for number literal")
	}
	return Number{Literal: strconv.FormatInt(n, 10)}
}

// Var creates a variable leaf.
func Var(name string) Variable {
	return Variable{Name: name}
}

// Op creates an operator node.
func Op(symbol string, left, right Node) Operator {
	return Operator{Symbol: symbol, Left: left, Right: right}
}

// Value converts the literal of a number to int64. Literals not fitting into
// int64 result in an error matching ErrInvalidLiteral.
func (n Number) Value() (int64, error) {
	v, err := strconv.ParseInt(n.Literal, 10, 64)
	if err != nil {
		return 0, &LiteralError{Literal: n.Literal, Err: err}
	}
	return v, nil
}

// IsLiteral is a predicate checking if n is a number with literal lit.
func IsLiteral(n Node, lit string) bool {
	num, ok := n.(Number)
	return ok && num.Literal == lit
}

// IsLeaf is a predicate checking if n has no children.
func IsLeaf(n Node) bool {
	_, ok := n.(Operator)
	return !ok
}

// --- Structural operations -------------------------------------------------

// Equal compares two trees structurally.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x.Literal == y.Literal
	case Variable:
		y, ok := b.(Variable)
		return ok && x.Name == y.Name
	case Operator:
		y, ok := b.(Operator)
		return ok && x.Symbol == y.Symbol && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return a == nil && b == nil
}

// Size returns the number of nodes of a tree.
func Size(n Node) int {
	count := 0
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}

// Depth returns the height of a tree. A single leaf has depth 1.
func Depth(n Node) int {
	switch x := n.(type) {
	case Operator:
		l, r := Depth(x.Left), Depth(x.Right)
		if l > r {
			return l + 1
		}
		return r + 1
	case nil:
		return 0
	}
	return 1
}
