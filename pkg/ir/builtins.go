package ir

import "github.com/andyyu2004/gqls/pkg/arena"

// Builtin directive names, predefined so that `resolve(file, "@skip")`
// succeeds even in a project with no local directive definitions
// (SPEC_FULL.md §C.3).
const (
	BuiltinDeprecated = "@deprecated"
	BuiltinSkip       = "@skip"
	BuiltinInclude    = "@include"
)

// builtinItems lowers the three builtin directive definitions once, into
// an Items value with no source file behind it (every Name.HasRange is
// false). DefDB's resolve query falls back to it when a directive name
// resolves to nothing in the file's neighborhood, so a local definition
// of the same directive takes precedence over the builtin one.
func builtinItems() (*Items, ItemMap) {
	var items Items

	push := func(name string, locations DirectiveLocations) arena.Pointer[Item] {
		dirPtr := items.Directives.Push(DirectiveDefinition{Locations: locations})
		return items.Items.Push(Item{
			Name:         NewBuiltinName(name),
			Kind:         ItemKindDirectiveDefinition,
			DirectiveDef: dirPtr,
		})
	}

	push(BuiltinDeprecated, LocationFieldDefinition|LocationArgumentDefinition|LocationEnumValue|LocationInputFieldDefinition)
	// @skip/@include are executable-location-only directives (FIELD,
	// FRAGMENT_SPREAD, INLINE_FRAGMENT) and this module's location bitset
	// is SDL-only (spec.md §9), so neither has a representable location
	// here. They're still predefined so `resolve` succeeds on them.
	push(BuiltinSkip, 0)
	push(BuiltinInclude, 0)

	return &items, BuildItemMap(&items)
}

// builtinBody returns the hand-authored ItemBody for a builtin directive
// item, since builtin items have no syntax tree to lazily lower a body
// from.
func builtinBody(name string) *ItemBody {
	stringArg := func(argName string, def *Value) Arg {
		return Arg{
			Name:         NewBuiltinName(argName),
			Ty:           &Type{Kind: TyKindNonNull, Inner: &Type{Kind: TyKindNamed, Name: NewBuiltinName("String")}},
			DefaultValue: def,
		}
	}
	boolArg := func(argName string) Arg {
		return Arg{
			Name: NewBuiltinName(argName),
			Ty:   &Type{Kind: TyKindNonNull, Inner: &Type{Kind: TyKindNamed, Name: NewBuiltinName("Boolean")}},
		}
	}

	switch name {
	case BuiltinDeprecated:
		return &ItemBody{Kind: ItemBodyDirective, DirectiveOf: []Arg{
			stringArg("reason", &Value{Kind: ValueString, Str: "No longer supported"}),
		}}
	case BuiltinSkip, BuiltinInclude:
		return &ItemBody{Kind: ItemBodyDirective, DirectiveOf: []Arg{boolArg("if")}}
	default:
		return &ItemBody{Kind: ItemBodyTodo}
	}
}
