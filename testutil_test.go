package fppc_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rlch/fppc"
)

// cmpAST compares AST values structurally, treating nil and empty property
// maps alike.
var cmpAST = cmp.Options{
	cmpopts.EquateEmpty(),
}

// ptr returns a pointer to the given value.
func ptr[T any](v T) *T {
	return &v
}

func lbl(name string) fppc.LabelType { return &fppc.Label{Name: name} }

func and(l, r fppc.LabelType) fppc.LabelType { return &fppc.AndLabel{Left: l, Right: r} }

func or(l, r fppc.LabelType) fppc.LabelType { return &fppc.OrLabel{Left: l, Right: r} }

func bin(op fppc.BinOpKind, l, r fppc.Expr) fppc.Expr {
	return &fppc.Binop{Op: op, Left: l, Right: r}
}

func un(op fppc.UnOpKind, e fppc.Expr) fppc.Expr {
	return &fppc.Unop{Op: op, Operand: e}
}

func open(fields map[string]fppc.SimpleType) fppc.PropertyType {
	return fppc.OpenProperties(fields)
}

func closed(fields map[string]fppc.SimpleType) fppc.PropertyType {
	return fppc.ClosedProperties(fields)
}

// node builds the NodePattern for (variable : label props). An empty variable
// means unbound.
func node(variable string, label fppc.LabelType, props fppc.PropertyType) *fppc.NodePattern {
	d := fppc.Descriptor{Type: fppc.DescriptorType{Label: label, Properties: props}}
	if variable != "" {
		d.Variable = ptr(fppc.Var(variable))
	}

	return &fppc.NodePattern{Descriptor: d}
}
