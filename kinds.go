package fppc

import "fmt"

// Kind names a parser entry point.
type Kind string

// Entry point names, as used by the console and golden case files.
const (
	KindLabel          Kind = "label"
	KindSimpleType     Kind = "simple"
	KindPropertyType   Kind = "property"
	KindDescriptorType Kind = "descriptor_type"
	KindDescriptor     Kind = "descriptor"
	KindNodePattern    Kind = "node"
	KindPathPattern    Kind = "path"
	KindExpr           Kind = "expr"
)

// KindInfo describes an entry point.
type KindInfo struct {
	Kind  Kind
	Usage string
	// Reparsable is true when Render output parses back to the same
	// rendering. Records are excluded: a closed record renders without the
	// `{{ }}` delimiters, so it reparses as open.
	Reparsable bool
	parse      func(string) (Node, error)
}

var kinds = []KindInfo{
	{KindLabel, "Parse as LabelType", true, wrap(ParseLabelType)},
	{KindSimpleType, "Parse as SimpleType", true, wrap(ParseSimpleType)},
	{KindPropertyType, "Parse as PropertyType", false, wrap(ParsePropertyType)},
	{KindDescriptorType, "Parse as DescriptorType", false, wrap(ParseDescriptorType)},
	{KindDescriptor, "Parse as Descriptor", false, wrap(ParseDescriptor)},
	{KindNodePattern, "Parse as NodePattern", false, wrap(ParseNodePattern)},
	{KindPathPattern, "Parse as PathPattern", false, wrap(ParsePathPattern)},
	{KindExpr, "Parse as Expr", true, wrap(ParseExpr)},
}

func wrap[T Node](fn func(string) (T, error)) func(string) (Node, error) {
	return func(text string) (Node, error) {
		out, err := fn(text)
		if err != nil {
			return nil, err
		}

		return out, nil
	}
}

// Kinds returns every entry point in a stable order.
func Kinds() []KindInfo {
	out := make([]KindInfo, len(kinds))
	copy(out, kinds)

	return out
}

// LookupKind returns the entry point registered under name.
func LookupKind(name string) (KindInfo, bool) {
	for _, k := range kinds {
		if string(k.Kind) == name {
			return k, true
		}
	}

	return KindInfo{}, false
}

// Parse runs the entry point on text.
func (k KindInfo) Parse(text string) (Node, error) {
	return k.parse(text)
}

// ParseKind parses text with the entry point named kind.
func ParseKind(kind Kind, text string) (Node, error) {
	info, ok := LookupKind(string(kind))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	return info.Parse(text)
}
