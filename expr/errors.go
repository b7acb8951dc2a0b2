package expr

import (
	"errors"
	"fmt"
)

// Error categories for expressions. Clients check for them with errors.Is.
var (
	// ErrMalformedExpression signals input ending before an expression is complete.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrTrailingTokens signals input remaining after a complete expression.
	ErrTrailingTokens = errors.New("trailing tokens after expression")
	// ErrUnknownOperator signals a token which is neither a literal, nor an
	// identifier, nor a known operator.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrInvalidLiteral signals a literal which is not representable as an integer,
	// either from input or as the result of folding constants.
	ErrInvalidLiteral = errors.New("invalid literal")
)

// ParseError is the error type returned by the parser. It records the position of
// the offending token within the token sequence.
type ParseError struct {
	Pos   int    // index of the token in the input sequence
	Token string // offending token, empty at end of input
	Err   error  // error category
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v: unexpected end of input at token #%d", e.Err, e.Pos)
	}
	return fmt.Sprintf("%v: token #%d %q", e.Err, e.Pos, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LiteralError reports a numeric literal not fitting into the integer type.
type LiteralError struct {
	Literal string
	Err     error // underlying conversion or overflow error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrInvalidLiteral, e.Literal, e.Err)
}

// Is makes a LiteralError match ErrInvalidLiteral.
func (e *LiteralError) Is(target error) bool {
	return target == ErrInvalidLiteral
}

func (e *LiteralError) Unwrap() error {
	return e.Err
}
