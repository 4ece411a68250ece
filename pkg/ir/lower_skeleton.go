package ir

import (
	"context"

	"github.com/andyyu2004/gqls/pkg/arena"
	"github.com/andyyu2004/gqls/pkg/incremental"
	"github.com/andyyu2004/gqls/pkg/syntax"
)

// itemCtxt accumulates the two side-arenas while lowering one file's item
// skeleton.
type itemCtxt struct {
	text        string
	typedefs    arena.Arena[TypeDefinition]
	directives  arena.Arena[DirectiveDefinition]
	diagnostics []Diagnostic
}

// LowerItems lowers tree's root-level items into an Items skeleton.
// Lowering is tolerant: a malformed item node is skipped rather than
// aborting the whole file (spec.md §4.3), and sole-named-child lookups
// already ignore ERROR nodes (pkg/syntax.SoleNamedChild).
func LowerItems(ctx context.Context, text string, tree *syntax.Tree) *Items {
	c := &itemCtxt{text: text}
	root := tree.RootNode()

	var items arena.Arena[Item]
	for _, node := range syntax.RelevantChildren(root) {
		if incremental.Cancelled(ctx) {
			break
		}
		if node.Type() != syntax.KindItem {
			continue
		}
		if item, ok := c.lowerItem(node); ok {
			items.Push(item)
		}
	}

	return &Items{Items: items, TypeDefs: c.typedefs, Directives: c.directives, Diagnostics: c.diagnostics}
}

func (c *itemCtxt) lowerItem(node *syntax.Node) (Item, bool) {
	def := syntax.SoleNamedChild(node)
	if def == nil {
		return Item{}, false
	}

	switch def.Type() {
	case syntax.KindTypeDefinition:
		return c.lowerTypeDefinitionItem(def, false)
	case syntax.KindTypeExtension:
		return c.lowerTypeDefinitionItem(def, true)
	case syntax.KindDirectiveDefinition:
		return c.lowerDirectiveDefinitionItem(def)
	default:
		return Item{}, false
	}
}

func (c *itemCtxt) lowerTypeDefinitionItem(def *syntax.Node, isExt bool) (Item, bool) {
	typedef := syntax.SoleNamedChild(def)
	if typedef == nil {
		return Item{}, false
	}

	var kind TypeDefinitionKind
	switch typedef.Type() {
	case syntax.KindObjectTypeDefinition, syntax.KindObjectTypeExtension:
		kind = TypeDefinitionObject
	case syntax.KindInterfaceTypeDefinition:
		kind = TypeDefinitionInterface
	case syntax.KindScalarTypeDefinition:
		kind = TypeDefinitionScalar
	case syntax.KindEnumTypeDefinition:
		kind = TypeDefinitionEnum
	case syntax.KindUnionTypeDefinition:
		kind = TypeDefinitionUnion
	case syntax.KindInputObjectTypeDefinition:
		kind = TypeDefinitionInputObject
	default:
		// Extensions of kinds this module doesn't lower yet (interface,
		// enum, etc. extensions): tolerated as a skipped item, matching
		// the original's "TODO extensions etc" stance.
		return Item{}, false
	}

	nameNode := syntax.NameNode(typedef)
	if nameNode == nil {
		return Item{}, false
	}
	name := NewName(nameNode, c.text)

	ptr := c.typedefs.Push(TypeDefinition{
		Kind:            kind,
		IsExtension:     isExt,
		Directives:      lowerDirectivesOf(typedef, c.text),
		Implementations: c.lowerImplementationsOf(typedef),
	})

	return Item{
		Range:   syntax.NodeRange(def),
		Name:    name,
		Kind:    ItemKindTypeDefinition,
		TypeDef: ptr,
	}, true
}

func (c *itemCtxt) lowerDirectiveDefinitionItem(def *syntax.Node) (Item, bool) {
	nameNode := syntax.NameNode(def)
	if nameNode == nil {
		return Item{}, false
	}
	name := NewDirectiveName(nameNode, c.text)

	var locations DirectiveLocations
	invalid := false
	if locsNode := syntax.ChildOfKind(def, syntax.KindDirectiveLocations); locsNode != nil {
		for _, locNode := range syntax.ChildrenOfKind(locsNode, syntax.KindDirectiveLocation) {
			token := locationToken(locNode)
			if token == "" {
				continue
			}
			if bit, ok := ParseDirectiveLocation(token); ok {
				locations |= bit
			} else {
				// Unknown tokens are fatal to this directive definition, not
				// the file: each one is recorded with a best-effort range
				// (this module never panics the way the original's
				// unreachable!() does), and the definition is then skipped.
				c.diagnostics = append(c.diagnostics, NewInvalidDirectiveLocationDiagnostic(syntax.NodeRange(locNode), token))
				invalid = true
			}
		}
	}
	if invalid {
		return Item{}, false
	}

	ptr := c.directives.Push(DirectiveDefinition{Locations: locations})

	return Item{
		Range:        syntax.NodeRange(def),
		Name:         name,
		Kind:         ItemKindDirectiveDefinition,
		DirectiveDef: ptr,
	}, true
}

// locationToken extracts the uppercase location keyword from a
// directive_location node. The grammar exposes it through a "location"
// field; if a future grammar revision drops the field, fall back to the
// node's own sole child text.
func locationToken(node *syntax.Node) string {
	if field := node.ChildByFieldName("location"); field != nil {
		return field.Type()
	}
	if child := syntax.SoleNamedChild(node); child != nil {
		return child.Type()
	}
	return ""
}

func (c *itemCtxt) lowerImplementationsOf(node *syntax.Node) []Name {
	implNode := syntax.ChildOfKind(node, syntax.KindImplementsInterfaces)
	if implNode == nil {
		return nil
	}
	var names []Name
	for _, named := range syntax.ChildrenOfKind(implNode, syntax.KindNamedType) {
		if nameNode := syntax.NameNode(named); nameNode != nil {
			names = append(names, NewName(nameNode, c.text))
		}
	}
	return names
}

