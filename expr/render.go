package expr

import (
	"fmt"
	"strings"
)

// Notation selects the output format for expressions.
type Notation int

// Notations for rendering expressions.
const (
	PrefixNotation Notation = iota
	InfixNotation
	PostfixNotation
)

func (n Notation) String() string {
	switch n {
	case PrefixNotation:
		return "prefix"
	case InfixNotation:
		return "infix"
	case PostfixNotation:
		return "postfix"
	}
	return fmt.Sprintf("notation(%d)", int(n))
}

// ParseNotation converts a notation name ("prefix", "infix", "postfix") to a Notation.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefix", "pre":
		return PrefixNotation, nil
	case "infix", "in":
		return InfixNotation, nil
	case "postfix", "post":
		return PostfixNotation, nil
	}
	return PrefixNotation, fmt.Errorf("unknown notation: %q", s)
}

// Render renders an expression in a given notation.
func Render(n Node, notation Notation) string {
	switch notation {
	case InfixNotation:
		return Infix(n)
	case PostfixNotation:
		return Postfix(n)
	}
	return Prefix(n)
}

// Prefix renders an expression in prefix notation, e.g. "+ 1 2".
func Prefix(n Node) string {
	var b strings.Builder
	writePrefix(&b, n)
	return b.String()
}

// Infix renders an expression in fully parenthesized infix notation, e.g. "(1 + 2)".
func Infix(n Node) string {
	var b strings.Builder
	writeInfix(&b, n)
	return b.String()
}

// Postfix renders an expression in postfix notation, e.g. "1 2 +".
func Postfix(n Node) string {
	var b strings.Builder
	writePostfix(&b, n)
	return b.String()
}

func writePrefix(b *strings.Builder, n Node) {
	if op, ok := n.(Operator); ok {
		b.WriteString(op.Symbol)
		b.WriteByte(' ')
		writePrefix(b, op.Left)
		b.WriteByte(' ')
		writePrefix(b, op.Right)
		return
	}
	b.WriteString(leafText(n))
}

func writeInfix(b *strings.Builder, n Node) {
	if op, ok := n.(Operator); ok {
		b.WriteByte('(')
		writeInfix(b, op.Left)
		b.WriteByte(' ')
		b.WriteString(op.Symbol)
		b.WriteByte(' ')
		writeInfix(b, op.Right)
		b.WriteByte(')')
		return
	}
	b.WriteString(leafText(n))
}

func writePostfix(b *strings.Builder, n Node) {
	if op, ok := n.(Operator); ok {
		writePostfix(b, op.Left)
		b.WriteByte(' ')
		writePostfix(b, op.Right)
		b.WriteByte(' ')
		b.WriteString(op.Symbol)
		return
	}
	b.WriteString(leafText(n))
}

// leafText returns the text of a leaf node.
func leafText(n Node) string {
	switch x := n.(type) {
	case Number:
		return x.Literal
	case Variable:
		return x.Name
	case nil:
		return "<nil>"
	}
	panic(fmt.Sprintf("not a leaf node: %T", n))
}

// Indented renders a tree with one node per line. Children are indented
// by four spaces relative to their parent:
//
//     +
//         *
//             x
//             1
//         0
//
func Indented(n Node) string {
	var b strings.Builder
	writeIndented(&b, n, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeIndented(b *strings.Builder, n Node, level int) {
	b.WriteString(strings.Repeat("    ", level))
	if op, ok := n.(Operator); ok {
		b.WriteString(op.Symbol)
		b.WriteByte('\n')
		writeIndented(b, op.Left, level+1)
		writeIndented(b, op.Right, level+1)
		return
	}
	b.WriteString(leafText(n))
	b.WriteByte('\n')
}
