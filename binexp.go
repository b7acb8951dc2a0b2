package binexp

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Package scanner defines the categories
// in use for arithmetic expressions.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals of the expression language.
//
// An example would be a token for a numeric literal:
//
//    TokType = Number      // identifier for this kind of tokens (see package scanner)
//    Lexeme  = "42"        // lexeme how it appeared in the input stream
//    Span    = 4…6         // occured from position 4 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input. A span denotes a start position
// and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
