package expr

import (
	"fmt"

	"github.com/npillmayer/binexp/scanner"
	"github.com/npillmayer/schuko/gconf"
)

// Grammar for expressions in prefix notation:
//
//     Expr ➞ number  |  ident  |  op Expr Expr
//
// 'op' is any symbol of the operator table in use.

// Option configures parsing.
type Option func(p *parser)

// LenientParsingKey is the key of the global configuration flag which sets the
// default for trailing tokens. If it is unset, parsing is strict.
const LenientParsingKey = "lenient-parsing"

// Lenient makes the parser ignore tokens following a complete expression.
// Without it, trailing tokens result in an error matching ErrTrailingTokens,
// unless configuration flag LenientParsingKey is set.
func Lenient() Option {
	return func(p *parser) {
		p.lenient = true
	}
}

// Strict makes trailing tokens an error, regardless of configuration flag
// LenientParsingKey.
func Strict() Option {
	return func(p *parser) {
		p.lenient = false
	}
}

// WithOperators sets the operator table for parsing. The default is DefaultOperators().
func WithOperators(ops *OperatorTable) Option {
	return func(p *parser) {
		if ops != nil {
			p.ops = ops
		}
	}
}

// WithLexer makes ParseString use a lexmachine scanner instead of splitting at
// whitespace. The scanner separates operator symbols from adjacent tokens, so
// input like "+1 2" is accepted.
func WithLexer() Option {
	return func(p *parser) {
		p.useLexer = true
	}
}

type parser struct {
	ops      *OperatorTable
	lenient  bool
	useLexer bool
}

func newParser(opts []Option) *parser {
	p := &parser{lenient: gconf.GetBool(LenientParsingKey)}
	for _, opt := range opts {
		opt(p)
	}
	if p.ops == nil {
		p.ops = DefaultOperators()
	}
	return p
}

// Parse builds an expression tree from a sequence of tokens in prefix notation.
// Empty tokens are skipped.
//
// If the tokens are exhausted before the expression is complete, Parse returns
// an error matching ErrMalformedExpression. Errors are of type *ParseError.
func Parse(tokens []string, opts ...Option) (Node, error) {
	return newParser(opts).parseAll(tokens)
}

// ParseString tokenizes an input string and builds an expression tree from it.
func ParseString(input string, opts ...Option) (Node, error) {
	p := newParser(opts)
	var tokenizer scanner.Tokenizer = scanner.SplitTokenizer(input)
	if p.useLexer {
		lm, err := scanner.Lexer(p.ops.Symbols())
		if err != nil {
			return nil, err
		}
		if tokenizer, err = lm.Scanner(input); err != nil {
			return nil, err
		}
	}
	toks, err := scanner.Tokens(tokenizer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOperator, err)
	}
	return p.parseAll(scanner.Lexemes(toks))
}

func (p *parser) parseAll(tokens []string) (Node, error) {
	tokens = nonEmpty(tokens)
	node, rest, err := p.parse(tokens, 0)
	if err != nil {
		tracer().Debugf("parse error: %v", err)
		return nil, err
	}
	if len(rest) > 0 {
		if !p.lenient {
			return nil, &ParseError{Pos: len(tokens) - len(rest), Token: rest[0], Err: ErrTrailingTokens}
		}
		tracer().Infof("ignoring %d trailing token(s) %v", len(rest), rest)
	}
	return node, nil
}

// parse reads one expression from the front of tokens and returns it together
// with the tokens remaining. pos is the index of tokens[0] within the whole input.
// The remainder of the left operand is the input of the right operand.
func (p *parser) parse(tokens []string, pos int) (Node, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, &ParseError{Pos: pos, Err: ErrMalformedExpression}
	}
	tok, rest := tokens[0], tokens[1:]
	switch scanner.Classify(tok) {
	case scanner.Number:
		return Num(tok), rest, nil
	case scanner.Ident:
		return Var(tok), rest, nil
	case scanner.Unknown:
		return nil, nil, &ParseError{Pos: pos, Token: tok, Err: ErrUnknownOperator}
	}
	if _, ok := p.ops.Lookup(tok); !ok {
		return nil, nil, &ParseError{Pos: pos, Token: tok, Err: ErrUnknownOperator}
	}
	left, rest, err := p.parse(rest, pos+1)
	if err != nil {
		return nil, nil, err
	}
	right, rest, err := p.parse(rest, pos+len(tokens)-len(rest))
	if err != nil {
		return nil, nil, err
	}
	return Op(tok, left, right), rest, nil
}

func nonEmpty(tokens []string) []string {
	for _, t := range tokens {
		if t == "" {
			filtered := make([]string, 0, len(tokens))
			for _, t := range tokens {
				if t != "" {
					filtered = append(filtered, t)
				}
			}
			return filtered
		}
	}
	return tokens
}
