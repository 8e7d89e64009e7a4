// Package fppc parses graph-pattern query fragments: node descriptors, label
// algebra, property-record types and filter expressions.
//
// Every syntactic category has its own entry point (ParseLabelType,
// ParseExpr, ...) and every AST value has a canonical rendering produced by
// Render. Parsing is stateless; entry points may be called concurrently.
package fppc

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Node is implemented by every AST value.
type Node interface {
	node()
}

// Equal reports whether two AST values are structurally equal.
// A nil property map and an empty one compare equal.
func Equal(a, b Node) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// Var names a pattern variable or an attribute. As an expression it is a
// variable reference.
type Var string

// =============================================================================
// Labels
// =============================================================================

// LabelType is a boolean combination of label names.
// And(And(a,b),c) and And(a,And(b,c)) are distinct values.
type LabelType interface {
	Node
	labelType()
}

// Label matches a single label name.
type Label struct {
	Name string
}

// StarLabel matches any label.
type StarLabel struct{}

// AndLabel requires both operands to match (`&`).
type AndLabel struct {
	Left, Right LabelType
}

// OrLabel requires either operand to match (`|`).
type OrLabel struct {
	Left, Right LabelType
}

// =============================================================================
// Types
// =============================================================================

// SimpleType is the type of a single property: a BaseType or StarType.
type SimpleType interface {
	Node
	simpleType()
}

// BaseType is one of the built-in scalar types.
type BaseType int

// Base types.
const (
	IntType BaseType = iota
	BoolType
	StrType
)

// String returns the keyword spelling of the type.
func (t BaseType) String() string {
	switch t {
	case IntType:
		return "int"
	case BoolType:
		return "bool"
	case StrType:
		return "str"
	default:
		return "BaseType(?)"
	}
}

// StarType matches any base type.
type StarType struct{}

// Openness says whether a record admits properties beyond those listed.
type Openness int

const (
	// Open records may carry additional unlisted properties.
	Open Openness = iota
	// Closed records carry exactly the listed properties.
	Closed
)

func (o Openness) String() string {
	if o == Closed {
		return "closed"
	}

	return "open"
}

// PropertyType maps property names to their types. Map order carries no
// meaning; Render sorts keys.
type PropertyType struct {
	Kind   Openness
	Fields map[string]SimpleType
}

// OpenProperties returns an open record type over fields.
func OpenProperties(fields map[string]SimpleType) PropertyType {
	return PropertyType{Kind: Open, Fields: copyFields(fields)}
}

// ClosedProperties returns a closed record type over fields.
func ClosedProperties(fields map[string]SimpleType) PropertyType {
	return PropertyType{Kind: Closed, Fields: copyFields(fields)}
}

func copyFields(fields map[string]SimpleType) map[string]SimpleType {
	out := make(map[string]SimpleType, len(fields))
	for k, v := range fields {
		out[k] = v
	}

	return out
}

// =============================================================================
// Descriptors and patterns
// =============================================================================

// DescriptorType pairs a label constraint with a property constraint.
// Grammar rules fill absent parts with StarLabel and an empty open record.
type DescriptorType struct {
	Label      LabelType
	Properties PropertyType
}

// AnyDescriptorType matches any element: `* {*}`.
func AnyDescriptorType() DescriptorType {
	return DescriptorType{Label: StarLabel{}, Properties: OpenProperties(nil)}
}

// Descriptor is an optional variable binding plus a type constraint.
type Descriptor struct {
	// Variable is nil when the element is unbound.
	Variable *Var
	Type     DescriptorType
}

// PathPattern is a node pattern, optionally refined by filters.
type PathPattern interface {
	Node
	pathPattern()
}

// NodePattern is a single node element: (var? : label? {props?}).
type NodePattern struct {
	Descriptor Descriptor
}

// Filter narrows a pattern with a boolean WHERE expression.
type Filter struct {
	Pattern PathPattern
	Where   Expr
}

// =============================================================================
// Expressions
// =============================================================================

// Expr is a filter expression. Every node owns its sub-expressions.
type Expr interface {
	Node
	expr()
}

// StringConst is a string literal.
type StringConst string

// IntConst is an integer literal.
type IntConst int64

// BoolConst is a boolean literal.
type BoolConst bool

// TypeLiteral is a simple type used as a value, e.g. the right side of `is`.
type TypeLiteral struct {
	Type SimpleType
}

// AttributeLookup is `e.a`: attribute a of entity e.
type AttributeLookup struct {
	Entity    Var
	Attribute Var
}

// Binop is a binary operation.
type Binop struct {
	Op    BinOpKind
	Left  Expr
	Right Expr
}

// Unop is a prefix operation.
type Unop struct {
	Op      UnOpKind
	Operand Expr
}

// BinOpKind identifies a binary operator.
type BinOpKind int

// Binary operators.
const (
	// Arithmetic
	Add BinOpKind = iota
	Sub
	Mul
	Div
	// Comparison
	Lt
	Gt
	Le
	Ge
	Eq
	Ne
	// Logical
	And
	Or
	// Type relations
	Is
	As
)

var binOpNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Lt:  "<",
	Gt:  ">",
	Le:  "<=",
	Ge:  ">=",
	Eq:  "=",
	Ne:  "<>",
	And: "AND",
	Or:  "OR",
	Is:  "IS",
	As:  "AS",
}

// String returns the operator as written in canonical output.
func (k BinOpKind) String() string {
	if k < 0 || int(k) >= len(binOpNames) {
		return "BinOpKind(?)"
	}

	return binOpNames[k]
}

// UnOpKind identifies a prefix operator.
type UnOpKind int

// Prefix operators.
const (
	Neg UnOpKind = iota
	Not
)

func (k UnOpKind) String() string {
	switch k {
	case Neg:
		return "-"
	case Not:
		return "NOT"
	default:
		return "UnOpKind(?)"
	}
}

// Sealed-interface markers.

func (*Label) node()           {}
func (StarLabel) node()        {}
func (*AndLabel) node()        {}
func (*OrLabel) node()         {}
func (BaseType) node()         {}
func (StarType) node()         {}
func (PropertyType) node()     {}
func (DescriptorType) node()   {}
func (Descriptor) node()       {}
func (*NodePattern) node()     {}
func (*Filter) node()          {}
func (StringConst) node()      {}
func (IntConst) node()         {}
func (BoolConst) node()        {}
func (Var) node()              {}
func (TypeLiteral) node()      {}
func (*AttributeLookup) node() {}
func (*Binop) node()           {}
func (*Unop) node()            {}

func (*Label) labelType()    {}
func (StarLabel) labelType() {}
func (*AndLabel) labelType() {}
func (*OrLabel) labelType()  {}

func (BaseType) simpleType() {}
func (StarType) simpleType() {}

func (*NodePattern) pathPattern() {}
func (*Filter) pathPattern()      {}

func (StringConst) expr()      {}
func (IntConst) expr()         {}
func (BoolConst) expr()        {}
func (Var) expr()              {}
func (TypeLiteral) expr()      {}
func (*AttributeLookup) expr() {}
func (*Binop) expr()           {}
func (*Unop) expr()            {}
