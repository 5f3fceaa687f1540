package lang

//go:generate go tool stringer --linecomment --type Type --output type_string.go

import "iter"

// Type tags a [Variable] with the form of value it holds. Scalar types carry
// literal text; aggregate types carry an ordered child sequence. TypeNone is
// reported for lookups that resolve to nothing.
type Type int

const (
	TypeNone   Type = iota // none
	TypeInt                // int
	TypeDouble             // double
	TypeBool               // bool
	TypeString             // string
	TypeArray              // array
	TypeList               // list
	TypeStruct             // struct
)

// IsScalar reports whether the type carries literal text.
func (t Type) IsScalar() bool {
	switch t {
	case TypeInt, TypeDouble, TypeBool, TypeString:
		return true
	}

	return false
}

// IsAggregate reports whether the type carries child variables.
func (t Type) IsAggregate() bool {
	switch t {
	case TypeArray, TypeList, TypeStruct:
		return true
	}

	return false
}

// Variable is one node of the parsed tree: either a scalar holding the
// literal text of its value, or an aggregate holding an ordered sequence of
// children. Struct members have names; array and list elements do not. The
// root returned by [Document.Root] is an unnamed struct holding the
// top-level declarations.
type Variable struct {
	name  string
	raw   string
	items []*Variable
	kind  Type
}

// Type returns the node's type tag.
func (v *Variable) Type() Type { return v.kind }

// Name returns the node's name, or "" for array/list elements and the root.
func (v *Variable) Name() string { return v.name }

// Raw returns the literal text of a scalar value, with string escapes
// already decoded. It is "" for aggregates.
func (v *Variable) Raw() string { return v.raw }

// Len returns the number of immediate children.
func (v *Variable) Len() int { return len(v.items) }

// NameAt returns the name of the idx-th child, or "" if the child is unnamed
// (array/list elements) or idx is out of range.
func (v *Variable) NameAt(idx int) string {
	if idx < 0 || idx >= len(v.items) {
		return ""
	}

	return v.items[idx].name
}

// TypeOf returns the type of the named child, or TypeNone if no child has
// that name. Callers can branch on the type before committing to a typed
// getter.
func (v *Variable) TypeOf(name string) Type {
	child := v.find(name)
	if child == nil {
		return TypeNone
	}

	return child.kind
}

// TypeAt returns the type of the idx-th child, or TypeNone if idx is out of
// range.
func (v *Variable) TypeAt(idx int) Type {
	if idx < 0 || idx >= len(v.items) {
		return TypeNone
	}

	return v.items[idx].kind
}

// All returns an iterator over the node's immediate children in declaration
// order.
func (v *Variable) All() iter.Seq[*Variable] {
	return func(yield func(*Variable) bool) {
		for _, child := range v.items {
			if !yield(child) {
				return
			}
		}
	}
}

// find returns the first immediate child with the given name, or nil.
func (v *Variable) find(name string) *Variable {
	for _, child := range v.items {
		if child.name == name {
			return child
		}
	}

	return nil
}

// add is the only mutation path into the tree. It appends a new child of the
// given type, rejecting a named child whose name already exists in this
// context; on that error the tree is left unmodified. The token locates the
// offending identifier for the redefinition diagnostic.
func (v *Variable) add(
	kind Type,
	name, raw string,
	at Token,
) (*Variable, *Error) {
	if name != "" && v.find(name) != nil {
		if v.name != "" {
			return nil, newError(ErrorRedefinition, at.Line, at.Column,
				"redefined variable `%s` inside `%s`", name, v.name)
		}

		return nil, newError(ErrorRedefinition, at.Line, at.Column,
			"redefined variable `%s`", name)
	}

	child := &Variable{
		kind: kind,
		name: name,
		raw:  raw,
	}

	v.items = append(v.items, child)

	return child, nil
}

// elemType returns the established element type of an array context, or
// TypeNone while the array is empty. The first element fixes the type.
func (v *Variable) elemType() Type {
	if len(v.items) == 0 {
		return TypeNone
	}

	return v.items[0].kind
}
