package ir

import (
	"strings"

	"github.com/andyyu2004/gqls/pkg/syntax"
)

// DirectiveLocations is a bitset over the 11 standard SDL directive
// locations. EXECUTABLE locations (QUERY, MUTATION, FIELD, FRAGMENT_*,
// VARIABLE_DEFINITION, ...) are deliberately absent: this is an SDL-only
// tool, consistent with spec.md §9's design note.
type DirectiveLocations uint16

const (
	LocationArgumentDefinition DirectiveLocations = 1 << iota
	LocationEnum
	LocationEnumValue
	LocationFieldDefinition
	LocationInputFieldDefinition
	LocationInputObject
	LocationInterface
	LocationObject
	LocationScalar
	LocationSchema
	LocationUnion
)

// directiveLocationNames maps the grammar's DIRECTIVE_LOCATION token text
// to its bit. Unknown tokens are fatal for the one directive definition
// being lowered, not the whole file (spec.md §4.3).
var directiveLocationNames = map[string]DirectiveLocations{
	"ARGUMENT_DEFINITION":   LocationArgumentDefinition,
	"ENUM":                  LocationEnum,
	"ENUM_VALUE":            LocationEnumValue,
	"FIELD_DEFINITION":      LocationFieldDefinition,
	"INPUT_FIELD_DEFINITION": LocationInputFieldDefinition,
	"INPUT_OBJECT":          LocationInputObject,
	"INTERFACE":             LocationInterface,
	"OBJECT":                LocationObject,
	"SCALAR":                LocationScalar,
	"SCHEMA":                LocationSchema,
	"UNION":                 LocationUnion,
}

// ParseDirectiveLocation looks up the bit for a location token, reporting
// false for anything outside the standard 11.
func ParseDirectiveLocation(token string) (DirectiveLocations, bool) {
	loc, ok := directiveLocationNames[token]
	return loc, ok
}

// directiveLocationOrder lists every standard location name in the same
// order as the DirectiveLocations bit constants above. String() and
// export.go's directive-definition export both range over this instead
// of directiveLocationNames, a map, so that rendering a location set
// doesn't depend on Go's randomized map iteration order.
var directiveLocationOrder = []struct {
	Name string
	Bit  DirectiveLocations
}{
	{"ARGUMENT_DEFINITION", LocationArgumentDefinition},
	{"ENUM", LocationEnum},
	{"ENUM_VALUE", LocationEnumValue},
	{"FIELD_DEFINITION", LocationFieldDefinition},
	{"INPUT_FIELD_DEFINITION", LocationInputFieldDefinition},
	{"INPUT_OBJECT", LocationInputObject},
	{"INTERFACE", LocationInterface},
	{"OBJECT", LocationObject},
	{"SCALAR", LocationScalar},
	{"SCHEMA", LocationSchema},
	{"UNION", LocationUnion},
}

// Has reports whether every location in other is also set in l.
func (l DirectiveLocations) Has(other DirectiveLocations) bool {
	return l&other == other
}

// String renders the set locations pipe-separated, in the grammar's own
// declaration order, mostly useful for diagnostics and tests.
func (l DirectiveLocations) String() string {
	if l == 0 {
		return ""
	}
	var names []string
	for _, loc := range directiveLocationOrder {
		if l&loc.Bit != 0 {
			names = append(names, loc.Name)
		}
	}
	return strings.Join(names, " | ")
}

// DirectiveApplication is a `@name(arg: value, ...)` attached to a type
// definition, field, argument, input field, or enum value. Unlike
// DirectiveDefinition (which only records where a directive may be used),
// this records one concrete use of it. See SPEC_FULL.md §C.1.
type DirectiveApplication struct {
	Range     syntax.Range
	Name      Name
	Arguments []ObjectField
}
