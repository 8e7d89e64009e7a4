package fppc

import (
	"github.com/alecthomas/participle/v2"
)

// fragmentLexer is shared by every entry-point parser.
var fragmentLexer = newFragmentLexer()

var options = []participle.Option{
	participle.Lexer(fragmentLexer),
	participle.Elide("Whitespace"),
	// Two tokens separate `e.a` from a bare variable.
	participle.UseLookahead(2),
}

var (
	labelParser          = participle.MustBuild[labelOrNode](options...)
	simpleTypeParser     = participle.MustBuild[simpleTypeNode](options...)
	propertyParser       = participle.MustBuild[propertyNode](options...)
	descriptorTypeParser = participle.MustBuild[descriptorTypeNode](options...)
	descriptorParser     = participle.MustBuild[descriptorNode](options...)
	nodePatternParser    = participle.MustBuild[nodePatternNode](options...)
	pathPatternParser    = participle.MustBuild[pathPatternNode](options...)
	exprParser           = participle.MustBuild[orExprNode](options...)
)

// parse runs p over the whole of text and lowers the result.
func parse[G, T any](p *participle.Parser[G], text string, lower func(*G) (T, error)) (T, error) {
	var zero T

	tree, err := p.ParseString("", text)
	if err != nil {
		return zero, newParseError(err)
	}

	out, err := lower(tree)
	if err != nil {
		return zero, newParseError(err)
	}

	return out, nil
}

// ParseLabelType parses a label expression such as `A & B | C`.
func ParseLabelType(text string) (LabelType, error) {
	return parse(labelParser, text, func(n *labelOrNode) (LabelType, error) {
		return n.lower(), nil
	})
}

// ParseSimpleType parses `int`, `bool`, `str` or `*`.
func ParseSimpleType(text string) (SimpleType, error) {
	return parse(simpleTypeParser, text, func(n *simpleTypeNode) (SimpleType, error) {
		return n.lower(), nil
	})
}

// ParsePropertyType parses an open `{...}` or closed `{{...}}` record type.
func ParsePropertyType(text string) (PropertyType, error) {
	return parse(propertyParser, text, (*propertyNode).lower)
}

// ParseDescriptorType parses an optional label followed by an optional record.
func ParseDescriptorType(text string) (DescriptorType, error) {
	return parse(descriptorTypeParser, text, (*descriptorTypeNode).lower)
}

// ParseDescriptor parses the body of a node pattern, e.g. `x : Person {a: int}`.
func ParseDescriptor(text string) (Descriptor, error) {
	return parse(descriptorParser, text, (*descriptorNode).lower)
}

// ParseNodePattern parses a parenthesized node pattern.
func ParseNodePattern(text string) (*NodePattern, error) {
	return parse(nodePatternParser, text, (*nodePatternNode).lower)
}

// ParsePathPattern parses a node pattern with an optional WHERE filter.
func ParsePathPattern(text string) (PathPattern, error) {
	return parse(pathPatternParser, text, (*pathPatternNode).lower)
}

// ParseExpr parses a filter expression.
func ParseExpr(text string) (Expr, error) {
	return parse(exprParser, text, (*orExprNode).lower)
}
