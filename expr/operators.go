package expr

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/binexp/scanner"
)

// FoldFunc computes the value of a binary operator applied to two constants.
type FoldFunc func(x, y int64) (int64, error)

// OperatorDef defines a binary operator.
type OperatorDef struct {
	Symbol string
	Fold   FoldFunc // may be nil for operators which should never be folded
}

// OperatorTable holds the operators known to parsing and constant folding.
// Tables must not be altered while they are in use by parsers or rewriters.
type OperatorTable struct {
	defs    map[string]OperatorDef
	symbols *treeset.Set
}

// NewOperatorTable creates an empty operator table.
func NewOperatorTable() *OperatorTable {
	return &OperatorTable{
		defs:    make(map[string]OperatorDef),
		symbols: treeset.NewWith(utils.StringComparator),
	}
}

// DefaultOperators returns a new table containing addition and multiplication.
func DefaultOperators() *OperatorTable {
	t := NewOperatorTable()
	t.mustDefine("+", Add)
	t.mustDefine("*", Multiply)
	return t
}

// Define adds an operator to the table, replacing a previous definition of symbol.
// Symbols which would be scanned as numbers or identifiers are rejected.
func (t *OperatorTable) Define(symbol string, fold FoldFunc) error {
	if scanner.Classify(symbol) != scanner.Operator {
		return fmt.Errorf("not a valid operator symbol: %q", symbol)
	}
	t.defs[symbol] = OperatorDef{Symbol: symbol, Fold: fold}
	t.symbols.Add(symbol)
	tracer().Debugf("defined operator %s", symbol)
	return nil
}

func (t *OperatorTable) mustDefine(symbol string, fold FoldFunc) {
	if err := t.Define(symbol, fold); err != nil {
		panic(err)
	}
}

// Lookup finds the definition of an operator symbol.
func (t *OperatorTable) Lookup(symbol string) (OperatorDef, bool) {
	def, ok := t.defs[symbol]
	return def, ok
}

// Symbols returns the operator symbols of the table in sorted order.
func (t *OperatorTable) Symbols() []string {
	symbols := make([]string, 0, t.symbols.Size())
	for _, s := range t.symbols.Values() {
		symbols = append(symbols, s.(string))
	}
	return symbols
}

// --- Arithmetic ------------------------------------------------------------

var errOverflow = errors.New("integer overflow")

// Add is the fold function for '+', reporting integer overflow as an error matching
// ErrInvalidLiteral.
func Add(x, y int64) (int64, error) {
	if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
		return 0, overflow(x, "+", y)
	}
	return x + y, nil
}

// Multiply is the fold function for '*', reporting integer overflow as an error
// matching ErrInvalidLiteral.
func Multiply(x, y int64) (int64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	p := x * y
	if p/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, overflow(x, "*", y)
	}
	return p, nil
}

func overflow(x int64, op string, y int64) error {
	return &LiteralError{
		Literal: fmt.Sprintf("%d %s %d", x, op, y),
		Err:     errOverflow,
	}
}
