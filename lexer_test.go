package fppc

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tok struct {
	typ   lexer.TokenType
	value string
}

func lexAll(t *testing.T, input string) []tok {
	t.Helper()

	lex, err := fragmentLexer.LexString("", input)
	require.NoError(t, err)

	tokens, err := lexer.ConsumeAll(lex)
	require.NoError(t, err)

	var out []tok

	for _, tk := range tokens {
		if tk.Type == tWhitespace || tk.EOF() {
			continue
		}

		out = append(out, tok{tk.Type, tk.Value})
	}

	return out
}

func TestLexer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "node pattern",
			input: "(x:Person)",
			want: []tok{
				{tLParen, "("}, {tIdent, "x"}, {tColon, ":"}, {tIdent, "Person"}, {tRParen, ")"},
			},
		},
		{
			name:  "closed record delimiters",
			input: "{{a:int}}",
			want: []tok{
				{tLRecord, "{{"}, {tIdent, "a"}, {tColon, ":"}, {tKeyword, "int"}, {tRRecord, "}}"},
			},
		},
		{
			name:  "separated braces stay single",
			input: "{ {",
			want:  []tok{{tLBrace, "{"}, {tLBrace, "{"}},
		},
		{
			name:  "keywords fold to lower case",
			input: "TRUE And nOt WHERE Str",
			want: []tok{
				{tKeyword, "true"}, {tKeyword, "and"}, {tKeyword, "not"}, {tKeyword, "where"}, {tKeyword, "str"},
			},
		},
		{
			name:  "identifiers keep case",
			input: "Andy is_x x1",
			want:  []tok{{tIdent, "Andy"}, {tIdent, "is_x"}, {tIdent, "x1"}},
		},
		{
			name:  "comparison operators",
			input: "<= >= <> < > =",
			want: []tok{
				{tOp, "<="}, {tOp, ">="}, {tOp, "<>"}, {tOp, "<"}, {tOp, ">"}, {tOp, "="},
			},
		},
		{
			name:  "arithmetic and label operators",
			input: "+-*/&|",
			want: []tok{
				{tOp, "+"}, {tOp, "-"}, {tOp, "*"}, {tOp, "/"}, {tOp, "&"}, {tOp, "|"},
			},
		},
		{
			name:  "literals",
			input: `12 'a b' "c'd" x.y`,
			want: []tok{
				{tInt, "12"}, {tString, "'a b'"}, {tString, `"c'd"`}, {tIdent, "x"}, {tDot, "."}, {tIdent, "y"},
			},
		},
		{
			name:  "digits then letters",
			input: "12ab",
			want:  []tok{{tInt, "12"}, {tIdent, "ab"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, lexAll(t, tt.input))
		})
	}
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		msg   string
		col   int
	}{
		{"a ! b", "unexpected character: !", 3},
		{"'open", "unterminated string", 1},
		{"x = \"line\nbreak\"", "unterminated string", 5},
		{"_x", "unexpected character: _", 1},
	}

	for _, tt := range tests {
		lex, err := fragmentLexer.LexString("", tt.input)
		require.NoError(t, err)

		_, err = lexer.ConsumeAll(lex)
		require.Error(t, err, tt.input)

		var le *LexerError
		require.ErrorAs(t, err, &le, tt.input)
		assert.Equal(t, tt.msg, le.Message(), tt.input)
		assert.Equal(t, tt.col, le.Position().Column, tt.input)
	}
}

func TestLexerPositions(t *testing.T) {
	t.Parallel()

	lex, err := fragmentLexer.LexString("", "(x)\n  WHERE y")
	require.NoError(t, err)

	tokens, err := lexer.ConsumeAll(lex)
	require.NoError(t, err)

	var where lexer.Token

	for _, tk := range tokens {
		if tk.Type == tKeyword {
			where = tk
		}
	}

	assert.Equal(t, "where", where.Value)
	assert.Equal(t, 2, where.Pos.Line)
	assert.Equal(t, 3, where.Pos.Column)
}
