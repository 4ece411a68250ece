package ir

import "github.com/andyyu2004/gqls/pkg/syntax"

// TyKind tags a Type's variant: Named(Name, Resolution), NonNull(Type),
// List(Type), or Err(Name). Representing type references this way
// (names + resolutions, never direct child-type pointers) is what keeps
// IR ownership acyclic even though GraphQL schemas routinely reference
// types cyclically — see spec.md §9.
type TyKind int

const (
	TyKindNamed TyKind = iota
	TyKindNonNull
	TyKindList
	TyKindErr
)

// Ty is a type reference. It is always heap-allocated and shared: once
// constructed during lowering it is never mutated, so cached values and
// the snapshots that reference them can share one *Type safely.
type Ty = *Type

// Type is one (possibly wrapped) type reference: a named type, or a
// NonNull/List wrapper around an inner Type.
type Type struct {
	Range syntax.Range
	Kind  TyKind

	Name  Name        // TyKindNamed, TyKindErr
	Res   Resolutions // TyKindNamed: the name's resolution; empty iff unresolved
	Inner Ty          // TyKindNonNull, TyKindList
}

// ItemResolutions returns the ItemRes values this type (or, through
// NonNull/List wrapping, its innermost named type) resolves to. Err
// types resolve to nothing.
func (t *Type) ItemResolutions() []ItemRes {
	switch t.Kind {
	case TyKindNamed:
		return t.Res
	case TyKindNonNull, TyKindList:
		return t.Inner.ItemResolutions()
	default:
		return nil
	}
}

// NamedName returns the Name this type (or its innermost wrapped type)
// ultimately names.
func (t *Type) NamedName() Name {
	switch t.Kind {
	case TyKindNamed, TyKindErr:
		return t.Name
	default:
		return t.Inner.NamedName()
	}
}

// String renders the type in SDL syntax, e.g. "[User!]!".
func (t *Type) String() string {
	switch t.Kind {
	case TyKindNamed, TyKindErr:
		return t.Name.Text
	case TyKindNonNull:
		return t.Inner.String() + "!"
	case TyKindList:
		return "[" + t.Inner.String() + "]"
	default:
		return "<invalid type>"
	}
}

// Field is one field of an object/interface type, or one field of an
// input object (in which case Args is always empty).
type Field struct {
	Range        syntax.Range
	Name         Name
	Ty           Ty
	Args         []Arg
	Directives   []DirectiveApplication
	DefaultValue *Value // input fields only
}

// Arg is one argument of a field or directive definition.
type Arg struct {
	Range        syntax.Range
	Name         Name
	Ty           Ty
	DefaultValue *Value
	Directives   []DirectiveApplication
}

// Variant is one member of an enum definition's body.
type Variant struct {
	Name       Name
	Directives []DirectiveApplication
}
