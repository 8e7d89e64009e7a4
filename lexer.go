package fppc

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token type constants - negative values as per participle convention.
const (
	tEOF        lexer.TokenType = lexer.EOF
	tKeyword    lexer.TokenType = -(iota + 2) //nolint:mnd // participle convention
	tIdent                                    // identifiers
	tInt                                      // unsigned decimal integers
	tString                                   // quoted strings
	tOp                                       // operators
	tDot                                      // .
	tColon                                    // :
	tComma                                    // ,
	tLParen                                   // (
	tRParen                                   // )
	tLBrace                                   // {
	tRBrace                                   // }
	tLRecord                                  // {{
	tRRecord                                  // }}
	tWhitespace                               // spaces, tabs, newlines
)

// keywords are reserved words, matched case-insensitively.
var keywords = map[string]bool{
	"true":  true,
	"false": true,
	"and":   true,
	"or":    true,
	"not":   true,
	"is":    true,
	"as":    true,
	"int":   true,
	"bool":  true,
	"str":   true,
	"where": true,
}

// Lexer errors.
var (
	ErrUnterminatedString  = &LexerError{msg: "unterminated string"}
	ErrUnexpectedCharacter = &LexerError{msg: "unexpected character"}
)

// LexerError represents a lexer error with position.
type LexerError struct {
	msg string
	pos lexer.Position
	ch  rune
}

func (e *LexerError) Error() string {
	return e.pos.String() + ": " + e.Message()
}

// Message implements participle.Error.
func (e *LexerError) Message() string {
	if e.ch != 0 {
		return e.msg + ": " + string(e.ch)
	}

	return e.msg
}

// Position implements participle.Error.
func (e *LexerError) Position() lexer.Position { return e.pos }

func (e *LexerError) withPos(pos lexer.Position) *LexerError {
	return &LexerError{msg: e.msg, pos: pos, ch: e.ch}
}

func (e *LexerError) withChar(ch rune) *LexerError {
	return &LexerError{msg: e.msg, pos: e.pos, ch: ch}
}

// fragmentDefinition implements lexer.Definition for pattern fragments.
type fragmentDefinition struct {
	symbols map[string]lexer.TokenType
}

func newFragmentLexer() *fragmentDefinition {
	return &fragmentDefinition{
		symbols: map[string]lexer.TokenType{
			"EOF":        tEOF,
			"Keyword":    tKeyword,
			"Ident":      tIdent,
			"Int":        tInt,
			"String":     tString,
			"Op":         tOp,
			"Dot":        tDot,
			"Colon":      tColon,
			"Comma":      tComma,
			"Whitespace": tWhitespace,
			"(":          tLParen,
			")":          tRParen,
			"{":          tLBrace,
			"}":          tRBrace,
			"{{":         tLRecord,
			"}}":         tRRecord,
		},
	}
}

// Symbols returns the mapping of symbol names to token types.
func (d *fragmentDefinition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

// Lex creates a new Lexer for the given reader.
//
//nolint:ireturn // Required by participle's lexer.Definition interface.
func (d *fragmentDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return newLexerState(filename, string(data)), nil
}

// LexString implements lexer.StringDefinition.
//
//nolint:ireturn // Required by participle's lexer.StringDefinition interface.
func (d *fragmentDefinition) LexString(filename string, input string) (lexer.Lexer, error) {
	return newLexerState(filename, input), nil
}

type lexerState struct {
	filename string
	input    string
	offset   int
	line     int
	col      int
}

func newLexerState(filename, input string) *lexerState {
	return &lexerState{
		filename: filename,
		input:    input,
		line:     1,
		col:      1,
	}
}

// Next returns the next token.
func (l *lexerState) Next() (lexer.Token, error) {
	if l.eof() {
		return lexer.EOFToken(l.pos()), nil
	}

	start := l.pos()
	r := l.peek()

	if isSpace(r) {
		for !l.eof() && isSpace(l.peek()) {
			l.advance()
		}

		return l.token(tWhitespace, start), nil
	}

	if r == '"' || r == '\'' {
		return l.scanString(start, r)
	}

	if isDigit(r) {
		for !l.eof() && isDigit(l.peek()) {
			l.advance()
		}

		return l.token(tInt, start), nil
	}

	if isIdentStart(r) {
		l.advance()

		for !l.eof() && isIdentContinue(l.peek()) {
			l.advance()
		}

		tok := l.token(tIdent, start)
		if lower := strings.ToLower(tok.Value); keywords[lower] {
			tok.Type = tKeyword
			tok.Value = lower
		}

		return tok, nil
	}

	// Greedy two-character tokens. Record fields only hold simple types, so
	// "{{" and "}}" never stand for two nested braces.
	for _, m := range []struct {
		s   string
		typ lexer.TokenType
	}{
		{"{{", tLRecord},
		{"}}", tRRecord},
		{"<=", tOp},
		{">=", tOp},
		{"<>", tOp},
	} {
		if strings.HasPrefix(l.input[l.offset:], m.s) {
			l.advance()
			l.advance()

			return l.token(m.typ, start), nil
		}
	}

	l.advance()

	switch r {
	case '.':
		return l.token(tDot, start), nil
	case ':':
		return l.token(tColon, start), nil
	case ',':
		return l.token(tComma, start), nil
	case '(':
		return l.token(tLParen, start), nil
	case ')':
		return l.token(tRParen, start), nil
	case '{':
		return l.token(tLBrace, start), nil
	case '}':
		return l.token(tRBrace, start), nil
	}

	if strings.ContainsRune("&|+-*/<>=", r) {
		return l.token(tOp, start), nil
	}

	return lexer.Token{}, ErrUnexpectedCharacter.withPos(start).withChar(r)
}

func (l *lexerState) pos() lexer.Position {
	return lexer.Position{
		Filename: l.filename,
		Offset:   l.offset,
		Line:     l.line,
		Column:   l.col,
	}
}

func (l *lexerState) eof() bool {
	return l.offset >= len(l.input)
}

func (l *lexerState) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])

	return r
}

func (l *lexerState) advance() {
	if l.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.offset:])
	l.offset += size

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *lexerState) token(typ lexer.TokenType, start lexer.Position) lexer.Token {
	return lexer.Token{
		Type:  typ,
		Value: l.input[start.Offset:l.offset],
		Pos:   start,
	}
}

// scanString reads a quoted string. Content between the delimiters is taken
// verbatim; there are no escape sequences.
func (l *lexerState) scanString(start lexer.Position, quote rune) (lexer.Token, error) {
	l.advance() // opening quote

	for !l.eof() {
		ch := l.peek()
		if ch == quote {
			l.advance()

			return l.token(tString, start), nil
		}

		if ch == '\n' {
			return lexer.Token{}, ErrUnterminatedString.withPos(start)
		}

		l.advance()
	}

	return lexer.Token{}, ErrUnterminatedString.withPos(start)
}

// Character helpers.

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
