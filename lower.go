package fppc

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

var compareOps = map[string]BinOpKind{
	"<":  Lt,
	">":  Gt,
	"<=": Le,
	">=": Ge,
	"=":  Eq,
	"<>": Ne,
}

var arithOps = map[string]BinOpKind{
	"+": Add,
	"-": Sub,
	"*": Mul,
	"/": Div,
}

// =============================================================================
// Labels
// =============================================================================

func (n *labelOrNode) lower() LabelType {
	out := n.Left.lower()
	for _, r := range n.Right {
		out = &OrLabel{Left: out, Right: r.lower()}
	}

	return out
}

func (n *labelAndNode) lower() LabelType {
	out := n.Left.lower()
	for _, r := range n.Right {
		out = &AndLabel{Left: out, Right: r.lower()}
	}

	return out
}

func (n *labelAtomNode) lower() LabelType {
	switch {
	case n.Name != nil:
		return &Label{Name: *n.Name}
	case n.Group != nil:
		return n.Group.lower()
	default:
		return StarLabel{}
	}
}

// =============================================================================
// Types
// =============================================================================

func (n *simpleTypeNode) lower() SimpleType {
	if n.Base == nil {
		return StarType{}
	}

	switch *n.Base {
	case "bool":
		return BoolType
	case "str":
		return StrType
	default:
		return IntType
	}
}

func (n *propertyNode) lower() (PropertyType, error) {
	if n.Closed != nil {
		if w := n.Closed.Wildcard; w != nil {
			return PropertyType{}, semanticError(w.Pos, "*", "closed record cannot contain *")
		}

		fields, err := lowerFields(n.Closed.Fields)

		return PropertyType{Kind: Closed, Fields: fields}, err
	}

	fields, err := lowerFields(n.Open.Fields)

	return PropertyType{Kind: Open, Fields: fields}, err
}

// lowerFields rejects a property named twice in one record.
func lowerFields(nodes []*propFieldNode) (map[string]SimpleType, error) {
	fields := make(map[string]SimpleType, len(nodes))
	for _, f := range nodes {
		if _, dup := fields[f.Name]; dup {
			return nil, semanticError(f.Pos, f.Name, "duplicate property "+strconv.Quote(f.Name))
		}

		fields[f.Name] = f.Type.lower()
	}

	return fields, nil
}

// =============================================================================
// Descriptors and patterns
// =============================================================================

func (n *descriptorTypeNode) lower() (DescriptorType, error) {
	out := AnyDescriptorType()
	if n == nil {
		return out, nil
	}

	if n.Label != nil {
		out.Label = n.Label.lower()
	}

	if n.Properties != nil {
		props, err := n.Properties.lower()
		if err != nil {
			return DescriptorType{}, err
		}

		out.Properties = props
	}

	return out, nil
}

func (n *descriptorNode) lower() (Descriptor, error) {
	if n == nil {
		return Descriptor{Type: AnyDescriptorType()}, nil
	}

	typ, err := n.Type.lower()
	if err != nil {
		return Descriptor{}, err
	}

	out := Descriptor{Type: typ}
	if n.Variable != nil {
		v := Var(*n.Variable)
		out.Variable = &v
	}

	return out, nil
}

func (n *nodePatternNode) lower() (*NodePattern, error) {
	d, err := n.Descriptor.lower()
	if err != nil {
		return nil, err
	}

	return &NodePattern{Descriptor: d}, nil
}

func (n *pathPatternNode) lower() (PathPattern, error) {
	node, err := n.Node.lower()
	if err != nil {
		return nil, err
	}

	if n.Where == nil {
		return node, nil
	}

	where, err := n.Where.lower()
	if err != nil {
		return nil, err
	}

	return &Filter{Pattern: node, Where: where}, nil
}

// =============================================================================
// Expressions
// =============================================================================

func (n *orExprNode) lower() (Expr, error) {
	out, err := n.Left.lower()
	if err != nil {
		return nil, err
	}

	for _, r := range n.Right {
		right, err := r.lower()
		if err != nil {
			return nil, err
		}

		out = &Binop{Op: Or, Left: out, Right: right}
	}

	return out, nil
}

func (n *andExprNode) lower() (Expr, error) {
	out, err := n.Left.lower()
	if err != nil {
		return nil, err
	}

	for _, r := range n.Right {
		right, err := r.lower()
		if err != nil {
			return nil, err
		}

		out = &Binop{Op: And, Left: out, Right: right}
	}

	return out, nil
}

func (n *notExprNode) lower() (Expr, error) {
	if n.Not == nil {
		return n.Compare.lower()
	}

	operand, err := n.Not.lower()
	if err != nil {
		return nil, err
	}

	return &Unop{Op: Not, Operand: operand}, nil
}

func (n *compareNode) lower() (Expr, error) {
	out, err := n.Left.lower()
	if err != nil {
		return nil, err
	}

	for _, t := range n.Rest {
		right, err := t.Right.lower()
		if err != nil {
			return nil, err
		}

		out = &Binop{Op: compareOps[t.Op], Left: out, Right: right}
	}

	return out, nil
}

func (n *typeRelNode) lower() (Expr, error) {
	out, err := n.Left.lower()
	if err != nil {
		return nil, err
	}

	for _, t := range n.Rest {
		op := Is
		if t.Op == "as" {
			op = As
		}

		out = &Binop{Op: op, Left: out, Right: t.Right.lower()}
	}

	return out, nil
}

func (n *typeOperandNode) lower() Expr {
	if n.Var != nil {
		return Var(*n.Var)
	}

	return TypeLiteral{Type: n.Type.lower()}
}

func (n *additiveNode) lower() (Expr, error) {
	out, err := n.Left.lower()
	if err != nil {
		return nil, err
	}

	for _, t := range n.Rest {
		right, err := t.Right.lower()
		if err != nil {
			return nil, err
		}

		out = &Binop{Op: arithOps[t.Op], Left: out, Right: right}
	}

	return out, nil
}

func (n *multiplicativeNode) lower() (Expr, error) {
	out, err := n.Left.lower()
	if err != nil {
		return nil, err
	}

	for _, t := range n.Rest {
		right, err := t.Right.lower()
		if err != nil {
			return nil, err
		}

		out = &Binop{Op: arithOps[t.Op], Left: out, Right: right}
	}

	return out, nil
}

func (n *unaryNode) lower() (Expr, error) {
	if n.Atom != nil {
		return n.Atom.lower()
	}

	operand, err := n.Operand.lower()
	if err != nil {
		return nil, err
	}

	op := Neg
	if n.Op == "not" {
		op = Not
	}

	return &Unop{Op: op, Operand: operand}, nil
}

func (n *atomNode) lower() (Expr, error) {
	switch {
	case n.Bool != nil:
		return BoolConst(*n.Bool == "true"), nil
	case n.Int != nil:
		v, err := strconv.ParseInt(*n.Int, 10, 64)
		if err != nil {
			return nil, semanticError(n.Pos, *n.Int, "integer literal out of range")
		}

		return IntConst(v), nil
	case n.Str != nil:
		s := *n.Str

		return StringConst(s[1 : len(s)-1]), nil
	case n.Type != nil:
		return TypeLiteral{Type: n.Type.lower()}, nil
	case n.Lookup != nil:
		return &AttributeLookup{Entity: Var(n.Lookup.Entity), Attribute: Var(n.Lookup.Attribute)}, nil
	case n.Var != nil:
		return Var(*n.Var), nil
	default:
		return n.Group.lower()
	}
}

func semanticError(pos lexer.Position, found, msg string) *ParseError {
	return &ParseError{Pos: pos, Found: found, Msg: msg}
}
