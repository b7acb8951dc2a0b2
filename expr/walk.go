package expr

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Walk traverses a tree in pre-order, i.e. an operator is visited before its left
// and right operands. If visit returns false, the walk stops.
//
// Walk uses an explicit stack, not recursion.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	stack := arraystack.New()
	stack.Push(n)
	for !stack.Empty() {
		top, _ := stack.Pop()
		node, ok := top.(Node)
		if !ok {
			continue
		}
		if !visit(node) {
			return
		}
		if op, ok := node.(Operator); ok {
			stack.Push(op.Right) // right is popped after the complete left subtree
			stack.Push(op.Left)
		}
	}
}

// PrefixTokens returns the tokens of an expression in prefix order. Parsing the
// result reconstructs the expression.
func PrefixTokens(n Node) []string {
	var tokens []string
	Walk(n, func(node Node) bool {
		if op, ok := node.(Operator); ok {
			tokens = append(tokens, op.Symbol)
		} else {
			tokens = append(tokens, leafText(node))
		}
		return true
	})
	return tokens
}

// Leaves returns the leaves of a tree from left to right.
func Leaves(n Node) []Node {
	var leaves []Node
	Walk(n, func(node Node) bool {
		if IsLeaf(node) {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}
