package ir

import (
	"github.com/andyyu2004/gqls/pkg/arena"
	"github.com/andyyu2004/gqls/pkg/source"
	"github.com/andyyu2004/gqls/pkg/syntax"
)

// TypeDefinitionKind is the syntactic kind of a type definition or
// extension.
type TypeDefinitionKind int

const (
	TypeDefinitionObject TypeDefinitionKind = iota
	TypeDefinitionInterface
	TypeDefinitionScalar
	TypeDefinitionEnum
	TypeDefinitionUnion
	TypeDefinitionInputObject
)

func (k TypeDefinitionKind) String() string {
	switch k {
	case TypeDefinitionObject:
		return "Object"
	case TypeDefinitionInterface:
		return "Interface"
	case TypeDefinitionScalar:
		return "Scalar"
	case TypeDefinitionEnum:
		return "Enum"
	case TypeDefinitionUnion:
		return "Union"
	case TypeDefinitionInputObject:
		return "InputObject"
	default:
		return "Unknown"
	}
}

// TypeDefinition is the skeleton-phase record for a type definition or
// type extension. Kind is syntactic; IsExtension marks an `extend`
// item. Extensions and their base definition are visible to `resolve`
// as distinct ItemRes values, and TyDB's queries work per item, so an
// extension's fields are not merged into its base definition's.
type TypeDefinition struct {
	Kind            TypeDefinitionKind
	IsExtension     bool
	Directives      []DirectiveApplication
	Implementations []Name // nil when the definition doesn't use `implements`
}

// DirectiveDefinition is the skeleton-phase record for a `directive`
// declaration: just its location bitset. Its arguments are part of the
// lazy body, like any other item.
type DirectiveDefinition struct {
	Locations DirectiveLocations
}

// ItemKind tags which of an Item's two side-arenas its payload lives in.
type ItemKind int

const (
	ItemKindTypeDefinition ItemKind = iota
	ItemKindDirectiveDefinition
)

// Item is one root-level SDL definition: a type definition, type
// extension, or directive definition. Item arena indices are dense and
// assigned in source order.
type Item struct {
	Range        syntax.Range
	Name         Name
	Kind         ItemKind
	TypeDef      arena.Pointer[TypeDefinition]      // valid iff Kind == ItemKindTypeDefinition
	DirectiveDef arena.Pointer[DirectiveDefinition] // valid iff Kind == ItemKindDirectiveDefinition
}

// ItemRes is a stable reference to one item: its file and its index in
// that file's Items arena. It survives edits that don't renumber the
// file's items.
type ItemRes struct {
	File source.FileID
	Idx  arena.Pointer[Item]
}

// Resolutions is the result of resolving a name: the (deterministically
// ordered) set of items it refers to. An empty Resolutions is the Err
// case — spec.md §3's "distinguished Err" — rather than a separate type,
// since "no items" and "erroneous reference" are the same observable
// state at every call site.
type Resolutions []ItemRes

// IsErr reports whether this is the empty/unresolved case.
func (r Resolutions) IsErr() bool {
	return len(r) == 0
}

// Items is one file's lowered item skeleton: the dense Item arena plus
// the two side-arenas Items' TypeDef/DirectiveDef pointers index into.
// An Items value is frozen once published to the items() query's cache
// entry; nothing mutates it afterwards.
type Items struct {
	Items       arena.Arena[Item]
	TypeDefs    arena.Arena[TypeDefinition]
	Directives  arena.Arena[DirectiveDefinition]
	Diagnostics []Diagnostic
}

// TypeDefinitionOf returns the TypeDefinition payload for an item that's
// known to be a type definition or extension.
func (it *Items) TypeDefinitionOf(item Item) TypeDefinition {
	return it.TypeDefs.Get(item.TypeDef)
}

// DirectiveDefinitionOf returns the DirectiveDefinition payload for an
// item that's known to be a directive definition.
func (it *Items) DirectiveDefinitionOf(item Item) DirectiveDefinition {
	return it.Directives.Get(item.DirectiveDef)
}
