package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/binexp/expr"
	"github.com/npillmayer/binexp/rewrite"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl         *readline.Instance
	parseOpts    []expr.Option
	simplifyOpts []rewrite.Option
	showTree     bool
}

// NewIntp creates an interactive interpreter reading from the terminal.
func NewIntp(parseOpts []expr.Option, simplifyOpts []rewrite.Option, showTree bool) (*Intp, error) {
	repl, err := readline.New("binexp> ")
	if err != nil {
		return nil, err
	}
	return &Intp{
		repl:         repl,
		parseOpts:    parseOpts,
		simplifyOpts: simplifyOpts,
		showTree:     showTree,
	}, nil
}

// Close releases the terminal.
func (intp *Intp) Close() error {
	return intp.repl.Close()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval simplifies an expression, given on a line by itself, and prints the result.
// The result is reported as quit=true for input "quit".
func (intp *Intp) Eval(line string) (bool, error) {
	if line == "quit" || line == "exit" {
		return true, nil
	}
	tree, err := expr.ParseString(line, intp.parseOpts...)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	tracer().Debugf("input tree:\n%s", expr.Indented(tree))
	simple, err := rewrite.Simplify(tree, intp.simplifyOpts...)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	pterm.Info.Println("input    " + expr.Infix(tree))
	pterm.Info.Println("prefix   " + expr.Prefix(simple))
	pterm.Info.Println("infix    " + expr.Infix(simple))
	pterm.Info.Println("postfix  " + expr.Postfix(simple))
	if intp.showTree {
		pterm.DefaultTree.WithRoot(treeFrom(simple)).Render()
	}
	return false, nil
}

// treeFrom converts an expression tree to a pterm tree for display.
func treeFrom(n expr.Node) pterm.TreeNode {
	ll := leveledNode(n, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledNode(n expr.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	if op, ok := n.(expr.Operator); ok {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: op.Symbol})
		ll = leveledNode(op.Left, ll, level+1)
		return leveledNode(op.Right, ll, level+1)
	}
	return append(ll, pterm.LeveledListItem{Level: level, Text: expr.Prefix(n)})
}
