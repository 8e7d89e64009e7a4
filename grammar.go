package fppc

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Parse-tree structs. Each binary precedence level is a head operand followed
// by (operator, operand) tails; lower.go folds the tails to the left.

// =============================================================================
// Labels
// =============================================================================

type labelOrNode struct {
	Left  *labelAndNode   `parser:"@@"`
	Right []*labelAndNode `parser:"('|' @@)*"`
}

type labelAndNode struct {
	Left  *labelAtomNode   `parser:"@@"`
	Right []*labelAtomNode `parser:"('&' @@)*"`
}

type labelAtomNode struct {
	Name  *string      `parser:"  @Ident"`
	Star  bool         `parser:"| @'*'"`
	Group *labelOrNode `parser:"| '(' @@ ')'"`
}

// =============================================================================
// Types
// =============================================================================

type simpleTypeNode struct {
	Base *string `parser:"  @('int' | 'bool' | 'str')"`
	Star bool    `parser:"| @'*'"`
}

type propertyNode struct {
	Closed *closedRecordNode `parser:"  @@"`
	Open   *openRecordNode   `parser:"| @@"`
}

// closedRecordNode is {{f: t, ...}}. A wildcard is captured only so that
// lowering can reject it at its own position.
type closedRecordNode struct {
	Fields   []*propFieldNode `parser:"'{{' ( @@ (',' @@)*"`
	Wildcard *wildcardNode    `parser:"       (',' @@)? | @@ )? '}}'"`
}

type wildcardNode struct {
	Pos  lexer.Position
	Star bool `parser:"@'*'"`
}

// openRecordNode is {}, {*}, {f: t, ...} or {f: t, ..., *}.
type openRecordNode struct {
	Fields   []*propFieldNode `parser:"'{' ( @@ (',' @@)*"`
	Wildcard bool             `parser:"      (',' @'*')? | @'*' )? '}'"`
}

type propFieldNode struct {
	Pos  lexer.Position
	Name string          `parser:"@Ident ':'"`
	Type *simpleTypeNode `parser:"@@"`
}

// =============================================================================
// Descriptors and patterns
// =============================================================================

type descriptorTypeNode struct {
	Label      *labelOrNode  `parser:"@@?"`
	Properties *propertyNode `parser:"@@?"`
}

type descriptorNode struct {
	Variable *string             `parser:"@Ident?"`
	Type     *descriptorTypeNode `parser:"(':' @@)?"`
}

type nodePatternNode struct {
	Descriptor *descriptorNode `parser:"'(' @@ ')'"`
}

type pathPatternNode struct {
	Node  *nodePatternNode `parser:"@@"`
	Where *orExprNode      `parser:"('where' @@)?"`
}

// =============================================================================
// Expressions, lowest precedence first
// =============================================================================

type orExprNode struct {
	Left  *andExprNode   `parser:"@@"`
	Right []*andExprNode `parser:"('or' @@)*"`
}

type andExprNode struct {
	Left  *notExprNode   `parser:"@@"`
	Right []*notExprNode `parser:"('and' @@)*"`
}

type notExprNode struct {
	Not     *notExprNode `parser:"  'not' @@"`
	Compare *compareNode `parser:"| @@"`
}

// compareNode chains: a > b > c is ((a > b) > c).
type compareNode struct {
	Left *typeRelNode   `parser:"@@"`
	Rest []*compareTail `parser:"@@*"`
}

type compareTail struct {
	Op    string       `parser:"@('<=' | '>=' | '<>' | '<' | '>' | '=')"`
	Right *typeRelNode `parser:"@@"`
}

type typeRelNode struct {
	Left *additiveNode  `parser:"@@"`
	Rest []*typeRelTail `parser:"@@*"`
}

type typeRelTail struct {
	Op    string           `parser:"@('is' | 'as')"`
	Right *typeOperandNode `parser:"@@"`
}

type typeOperandNode struct {
	Type *simpleTypeNode `parser:"  @@"`
	Var  *string         `parser:"| @Ident"`
}

type additiveNode struct {
	Left *multiplicativeNode `parser:"@@"`
	Rest []*additiveTail     `parser:"@@*"`
}

type additiveTail struct {
	Op    string              `parser:"@('+' | '-')"`
	Right *multiplicativeNode `parser:"@@"`
}

type multiplicativeNode struct {
	Left *unaryNode            `parser:"@@"`
	Rest []*multiplicativeTail `parser:"@@*"`
}

type multiplicativeTail struct {
	Op    string     `parser:"@('*' | '/')"`
	Right *unaryNode `parser:"@@"`
}

type unaryNode struct {
	Op      string     `parser:"( @('-' | 'not')"`
	Operand *unaryNode `parser:"  @@"`
	Atom    *atomNode  `parser:"| @@ )"`
}

type atomNode struct {
	Pos    lexer.Position
	Bool   *string         `parser:"  @('true' | 'false')"`
	Int    *string         `parser:"| @Int"`
	Str    *string         `parser:"| @String"`
	Type   *simpleTypeNode `parser:"| @@"`
	Lookup *lookupNode     `parser:"| @@"`
	Var    *string         `parser:"| @Ident"`
	Group  *orExprNode     `parser:"| '(' @@ ')'"`
}

type lookupNode struct {
	Entity    string `parser:"@Ident Dot"`
	Attribute string `parser:"@Ident"`
}
