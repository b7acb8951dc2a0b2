/*
Package scanner defines an interface for scanners delivering tokens of arithmetic
expressions.

Two default scanner implementations are provided: (1) a whitespace splitter, which is
all the expression language strictly requires, and (2) an adapter for lexmachine,
which will additionally split tokens at operator symbols.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/binexp"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'binexp.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("binexp.scanner")
}

// Token categories of the expression language.
const (
	EOF binexp.TokType = iota - 1
	Unknown
	Number
	Ident
	Operator
)

// TokTypeString returns a readable name for a token category.
func TokTypeString(t binexp.TokType) string {
	switch t {
	case EOF:
		return "EOF"
	case Unknown:
		return "UNKNOWN"
	case Number:
		return "NUM"
	case Ident:
		return "ID"
	case Operator:
		return "OP"
	}
	return fmt.Sprintf("TokType(%d)", t)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() binexp.Token
	SetErrorHandler(func(error))
}

// ErrIllegalInput is reported for input the scanner is unable to tokenize.
var ErrIllegalInput = errors.New("illegal input")

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Predicates ------------------------------------------------------------

// IsNumeric is the predicate for numeric literals: a non-empty run of ASCII digits.
// Signs, decimal points and digits of other scripts are not accepted.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsIdent is the predicate for identifiers: an ASCII letter or underscore, followed
// by ASCII letters, digits or underscores. It accepts exactly the identifiers of
// the lexmachine scanner.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || isLetter(c) {
			continue
		}
		if i > 0 && c >= '0' && c <= '9' {
			continue
		}
		return false
	}
	return true
}

// IsSymbol is the predicate for operator symbols: a non-empty run of printable
// ASCII characters which are neither letters, digits nor underscores.
func IsSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c > '~' || c == '_' || isLetter(c) || (c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Classify returns the token category for a lexeme. Lexemes which are neither
// numbers, identifiers nor operator symbols are of category Unknown.
func Classify(lexeme string) binexp.TokType {
	switch {
	case lexeme == "":
		return EOF
	case IsNumeric(lexeme):
		return Number
	case IsIdent(lexeme):
		return Ident
	case IsSymbol(lexeme):
		return Operator
	}
	return Unknown
}

// --- Whitespace tokenizer --------------------------------------------------

// DefaultTokenizer is a default implementation, splitting its input at whitespace.
// Create one with SplitTokenizer.
type DefaultTokenizer struct {
	input string
	pos   int
	Error func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// SplitTokenizer creates a tokenizer which delivers whitespace-delimited tokens.
func SplitTokenizer(input string) *DefaultTokenizer {
	return &DefaultTokenizer{
		input: input,
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() binexp.Token {
	start := strings.IndexFunc(t.input[t.pos:], isNotSpace)
	if start < 0 {
		t.pos = len(t.input)
		tracer().Debugf("DefaultTokenizer reached end of input")
		return MakeDefaultToken(EOF, "", binexp.Span{uint64(t.pos), uint64(t.pos)})
	}
	start += t.pos
	end := strings.IndexFunc(t.input[start:], unicode.IsSpace)
	if end < 0 {
		end = len(t.input)
	} else {
		end += start
	}
	t.pos = end
	lexeme := t.input[start:end]
	return MakeDefaultToken(Classify(lexeme), lexeme, binexp.Span{uint64(start), uint64(end)})
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the split
// tokenizer as well as the lexmachine scanner.
type DefaultToken struct {
	kind   binexp.TokType
	lexeme string
	span   binexp.Span
}

func MakeDefaultToken(typ binexp.TokType, lexeme string, span binexp.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() binexp.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() binexp.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s:%q", TokTypeString(t.kind), t.lexeme)
}

// --- Collecting tokens -----------------------------------------------------

// Tokens reads tokens from a tokenizer until EOF. If the tokenizer reports an error,
// the first one is returned, wrapped as ErrIllegalInput.
func Tokens(t Tokenizer) ([]binexp.Token, error) {
	var first error
	t.SetErrorHandler(func(e error) {
		tracer().Debugf("scanner error: %v", e)
		if first == nil {
			first = e
		}
	})
	var toks []binexp.Token
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		toks = append(toks, token)
	}
	if first != nil {
		return toks, fmt.Errorf("%w: %v", ErrIllegalInput, first)
	}
	return toks, nil
}

// Lexemes extracts the lexemes of a slice of tokens.
func Lexemes(toks []binexp.Token) []string {
	lexemes := make([]string, len(toks))
	for i, t := range toks {
		lexemes[i] = t.Lexeme()
	}
	return lexemes
}
