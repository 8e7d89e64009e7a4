package fppc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no .fppc.yaml is found.
	ErrConfigNotFound = errors.New("fppc: no .fppc.yaml found")

	// ErrUnknownKind is returned when an entry point name is not recognised.
	ErrUnknownKind = errors.New("fppc: unknown kind")
)

// ParseError is the single error kind returned by every entry point.
type ParseError struct {
	Pos lexer.Position
	// Found is the offending token text, empty at end of input.
	Found string
	// Expected is the best-effort description of acceptable tokens.
	Expected string
	Msg      string

	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Unwrap returns the underlying participle or lexer error, if any.
func (e *ParseError) Unwrap() error { return e.cause }

// AtEOF reports whether the error was raised at end of input.
func (e *ParseError) AtEOF() bool { return e.Found == "" }

// Token returns the offending token for display.
func (e *ParseError) Token() string {
	if e.AtEOF() {
		return "<EOF>"
	}

	return e.Found
}

// newParseError converts a participle or lexer failure into a ParseError.
func newParseError(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}

	out := &ParseError{Msg: err.Error(), cause: err}

	var perr participle.Error
	if errors.As(err, &perr) {
		out.Pos = perr.Position()
		out.Msg = grammarTerms(perr.Message())
	}

	var lerr *LexerError
	if errors.As(err, &lerr) && lerr.ch != 0 {
		out.Found = string(lerr.ch)
	}

	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		if !unexpected.Unexpected.EOF() {
			out.Found = unexpected.Unexpected.Value
		}

		out.Expected = grammarTerms(unexpected.Expect)
	}

	return out
}

// grammarNames maps parse-tree struct names, lower-cased, to the grammar
// terms shown in messages.
var grammarNames = map[string]string{
	"labelornode":        "label",
	"labelandnode":       "label",
	"labelatomnode":      "label",
	"simpletypenode":     "type",
	"propertynode":       "record",
	"closedrecordnode":   "closed record",
	"openrecordnode":     "record",
	"propfieldnode":      "property",
	"wildcardnode":       "*",
	"descriptortypenode": "descriptor type",
	"descriptornode":     "descriptor",
	"nodepatternnode":    "node pattern",
	"pathpatternnode":    "path pattern",
	"orexprnode":         "expression",
	"andexprnode":        "expression",
	"notexprnode":        "expression",
	"comparenode":        "expression",
	"comparetail":        "comparison operator",
	"typerelnode":        "expression",
	"typereltail":        "is or as",
	"typeoperandnode":    "type or variable",
	"additivenode":       "expression",
	"additivetail":       "operator",
	"multiplicativenode": "expression",
	"multiplicativetail": "operator",
	"unarynode":          "expression",
	"atomnode":           "expression",
	"lookupnode":         "attribute lookup",
}

var grammarNameRe = regexp.MustCompile(`\b[A-Za-z]+(?:Node|Tail)\b`)

// grammarTerms replaces parse-tree struct names in participle messages.
func grammarTerms(msg string) string {
	return grammarNameRe.ReplaceAllStringFunc(msg, func(name string) string {
		if term, ok := grammarNames[strings.ToLower(name)]; ok {
			return term
		}

		return name
	})
}
