package fppc

import (
	"slices"
	"strconv"
	"strings"
)

// Render returns the canonical text of an AST value. Two values that are
// equal up to property-map order render identically, and for labels,
// types and expressions the output parses back to an equal value.
func Render(n Node) string {
	var b strings.Builder

	f := &renderer{b: &b}
	f.node(n)

	return b.String()
}

type renderer struct {
	b *strings.Builder
}

func (f *renderer) write(s string) {
	f.b.WriteString(s)
}

func (f *renderer) node(n Node) {
	switch n := n.(type) {
	case LabelType:
		f.label(n)
	case SimpleType:
		f.simpleType(n)
	case PropertyType:
		f.properties(n)
	case DescriptorType:
		f.descriptorType(n)
	case Descriptor:
		f.descriptor(n)
	case PathPattern:
		f.path(n)
	case Expr:
		f.expr(n)
	case nil:
		f.write("<nil>")
	}
}

func (f *renderer) label(l LabelType) {
	switch l := l.(type) {
	case *Label:
		f.write(l.Name)
	case StarLabel:
		f.write("*")
	case *AndLabel:
		f.write("(")
		f.label(l.Left)
		f.write(" & ")
		f.label(l.Right)
		f.write(")")
	case *OrLabel:
		f.write("(")
		f.label(l.Left)
		f.write(" | ")
		f.label(l.Right)
		f.write(")")
	}
}

func (f *renderer) simpleType(t SimpleType) {
	switch t := t.(type) {
	case BaseType:
		f.write(t.String())
	case StarType:
		f.write("*")
	}
}

// properties writes fields in key order. An empty record is `{*}` whether
// open or closed.
func (f *renderer) properties(p PropertyType) {
	if len(p.Fields) == 0 {
		f.write("{*}")

		return
	}

	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	f.write("{")

	for i, k := range keys {
		if i > 0 {
			f.write(", ")
		}

		f.write(k + ": ")
		f.simpleType(p.Fields[k])
	}

	if p.Kind == Open {
		f.write(", *")
	}

	f.write("}")
}

func (f *renderer) descriptorType(d DescriptorType) {
	if d.Label == nil {
		f.write("*")
	} else {
		f.label(d.Label)
	}

	f.write(" ")
	f.properties(d.Properties)
}

func (f *renderer) descriptor(d Descriptor) {
	f.write("Descriptor(")

	if d.Variable == nil {
		f.write("None")
	} else {
		f.write(string(*d.Variable))
	}

	f.write(", ")
	f.descriptorType(d.Type)
	f.write(")")
}

func (f *renderer) path(p PathPattern) {
	switch p := p.(type) {
	case *NodePattern:
		f.write("(")
		f.descriptor(p.Descriptor)
		f.write(")")
	case *Filter:
		f.write("(")
		f.path(p.Pattern)
		f.write(" WHERE ")
		f.expr(p.Where)
		f.write(")")
	}
}

func (f *renderer) expr(e Expr) {
	switch e := e.(type) {
	case StringConst:
		f.write(quote(string(e)))
	case IntConst:
		f.write(strconv.FormatInt(int64(e), 10))
	case BoolConst:
		f.write(strconv.FormatBool(bool(e)))
	case Var:
		f.write(string(e))
	case TypeLiteral:
		f.simpleType(e.Type)
	case *AttributeLookup:
		f.write(string(e.Entity) + "." + string(e.Attribute))
	case *Binop:
		f.write("(")

		// A leading NOT would otherwise capture the whole comparison or
		// arithmetic when reparsed.
		if u, ok := e.Left.(*Unop); ok && u.Op == Not && e.Op != And && e.Op != Or {
			f.write("(")
			f.expr(e.Left)
			f.write(")")
		} else {
			f.expr(e.Left)
		}

		f.write(" " + e.Op.String() + " ")
		f.expr(e.Right)
		f.write(")")
	case *Unop:
		f.write(e.Op.String() + " ")
		f.expr(e.Operand)
	}
}

// quote delimits s with single quotes, or double quotes when s contains one.
// Literals have no escapes, so s never holds both.
func quote(s string) string {
	if strings.ContainsRune(s, '\'') {
		return `"` + s + `"`
	}

	return "'" + s + "'"
}
