package scanner

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/binexp"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an initializer for the
// regular expressions of the lexer and a list of operator symbols ("+", "*", …).
// Operator symbols are matched literally.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), operators []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, op := range operators {
		if op == "" {
			continue
		}
		r := "\\" + strings.Join(strings.Split(op, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(op, int(Operator)))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

var lexers sync.Map // compiled adapters, keyed by operator set

// Lexer returns a lexmachine adapter for the expression language, recognizing
// numbers, identifiers and the given operator symbols. Adapters are compiled once
// per set of operators and may be used concurrently.
func Lexer(operators []string) (*LMAdapter, error) {
	key := strings.Join(operators, " ")
	if lm, ok := lexers.Load(key); ok {
		return lm.(*LMAdapter), nil
	}
	tracer().Infof("Creating lexer for operators [%s]", key)
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", int(Number)))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", int(Ident)))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	adapter, err := NewLMAdapter(init, operators)
	if err != nil {
		return nil, err
	}
	lm, _ := lexers.LoadOrStore(key, adapter)
	return lm.(*LMAdapter), nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Input the lexer cannot match is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() binexp.Token {
	if lms.scanner == nil {
		return MakeDefaultToken(EOF, "", binexp.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.Error(fmt.Errorf("unconsumed input %q at %d", unmatched(ui), ui.StartTC))
			lms.scanner.TC = ui.FailTC
		} else {
			lms.Error(err)
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(len(lms.scanner.Text))
		return MakeDefaultToken(EOF, "", binexp.Span{end, end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return MakeDefaultToken(
		binexp.TokType(token.Type),
		string(token.Lexeme),
		binexp.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// unmatched returns the part of the input the lexer failed on. At least one byte
// is unmatched.
func unmatched(ui *machines.UnconsumedInput) string {
	from, to := ui.StartTC, ui.FailTC
	if to <= from {
		to = from + 1
	}
	if to > len(ui.Text) {
		to = len(ui.Text)
	}
	if from > to {
		from = to
	}
	return string(ui.Text[from:to])
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
