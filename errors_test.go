package fppc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrammarTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{`unexpected token ">" (expected TypeRelNode)`, `unexpected token ">" (expected expression)`},
		{`unexpected token "}" (expected typeRelNode)`, `unexpected token "}" (expected expression)`},
		{`expected PropFieldNode or "}"`, `expected property or "}"`},
		{`unexpected token "+" (expected TypeOperandNode)`, `unexpected token "+" (expected type or variable)`},
		{`unexpected token "x" (expected ")")`, `unexpected token "x" (expected ")")`},
		{`expected SomethingNode`, `expected SomethingNode`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, grammarTerms(tt.input), tt.input)
	}
}
