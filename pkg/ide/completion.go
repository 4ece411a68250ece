package ide

import (
	"context"

	"github.com/andyyu2004/gqls/pkg/arena"
	"github.com/andyyu2004/gqls/pkg/ir"
	"github.com/andyyu2004/gqls/pkg/source"
	"github.com/andyyu2004/gqls/pkg/syntax"
)

// CompletionItemKind tags what a CompletionItem completes to.
type CompletionItemKind int

const (
	CompletionObject CompletionItemKind = iota
	CompletionInputObject
	CompletionInterface
	CompletionEnum
	CompletionScalar
	CompletionUnion
	CompletionKeyword
	CompletionDirective
)

// CompletionItem is one candidate. Locations is only meaningful when
// Kind == CompletionDirective: the directive's declared location bitset,
// so callers can show why it was (or wasn't) offered.
type CompletionItem struct {
	Label     string
	Kind      CompletionItemKind
	Locations ir.DirectiveLocations
}

// completionContext mirrors gqls-ide's Context enum: which syntactic
// category the cursor sits in, inferred once per completion request.
type completionContext int

const (
	contextDocument completionContext = iota
	contextField
	contextInputField
	contextUnionMembers
	contextDirective
)

// documentKeywords are GraphQL SDL's top-level keywords. The original's
// keyword list includes the non-standard "struct"; this module offers
// "type" instead, since the goal is a correct SDL assistant, not a
// bug-compatible port (see DESIGN.md's Open Question decisions).
var documentKeywords = []string{"scalar", "enum", "type", "union", "interface", "directive", "input"}

// Completions returns the completion candidates for the cursor position
// at in file.
func (s *Snapshot) Completions(ctx context.Context, file source.FileID, at syntax.Point) []CompletionItem {
	context, location := s.inferCompletionContext(ctx, file, at)

	switch context {
	case contextField:
		return s.completeFields(ctx, file)
	case contextInputField:
		return s.completeInputFields(ctx, file)
	case contextUnionMembers:
		return s.completeUnionMembers(ctx, file)
	case contextDirective:
		return s.completeDirectives(ctx, file, location)
	default:
		return completeDocument()
	}
}

// inferCompletionContext walks up to 10 columns left of at, looking for
// a named node in an enclosing syntactic category and mapping it to a
// Context, per spec.md §4.6's state machine.
func (s *Snapshot) inferCompletionContext(ctx context.Context, file source.FileID, at syntax.Point) (completionContext, ir.DirectiveLocations) {
	data := s.Source.FileData(ctx, file)
	if data.Tree == nil {
		return contextDocument, 0
	}
	root := data.Tree.RootNode()

	for i := 0; i < 10; i++ {
		node := syntax.NamedNodeAt(root, at)
		if node == nil {
			return contextDocument, 0
		}
		switch node.Type() {
		case syntax.KindObjectTypeDefinition, syntax.KindObjectTypeExtension:
			return contextDirective, ir.LocationObject
		case syntax.KindEnumTypeDefinition:
			return contextDirective, ir.LocationEnum
		case syntax.KindUnionTypeDefinition:
			return contextDirective, ir.LocationUnion
		case syntax.KindInterfaceTypeDefinition:
			return contextDirective, ir.LocationInterface
		case syntax.KindScalarTypeDefinition:
			return contextDirective, ir.LocationScalar
		case syntax.KindInputObjectTypeDefinition:
			return contextDirective, ir.LocationInputObject
		case syntax.KindEnumValuesDefinition, syntax.KindEnumValueDefinition, syntax.KindEnumValue:
			return contextDirective, ir.LocationEnumValue
		case syntax.KindInputFieldsDefinition:
			return contextInputField, 0
		case syntax.KindFieldsDefinition, syntax.KindFieldDefinition:
			return contextField, 0
		case syntax.KindUnionMemberTypes:
			return contextUnionMembers, 0
		}
		if at.Column == 0 {
			break
		}
		at.Column--
	}
	return contextDocument, 0
}

func completeDocument() []CompletionItem {
	out := make([]CompletionItem, 0, len(documentKeywords))
	for _, kw := range documentKeywords {
		out = append(out, CompletionItem{Label: kw, Kind: CompletionKeyword})
	}
	return out
}

// projectCompletionItems lists every item visible from file's
// neighborhood as a CompletionItem, the candidate pool every non-keyword
// completion filters down from.
func (s *Snapshot) projectCompletionItems(ctx context.Context, file source.FileID) []CompletionItem {
	var out []CompletionItem
	for _, f := range s.Source.ProjectOf(ctx, file) {
		items := s.Def.Items(ctx, f)
		items.Items.All(func(idx arena.Pointer[ir.Item], item ir.Item) bool {
			switch item.Kind {
			case ir.ItemKindTypeDefinition:
				td := items.TypeDefinitionOf(item)
				out = append(out, CompletionItem{Label: item.Name.Text, Kind: typeDefinitionCompletionKind(td.Kind)})
			case ir.ItemKindDirectiveDefinition:
				dd := items.DirectiveDefinitionOf(item)
				out = append(out, CompletionItem{Label: item.Name.Text, Kind: CompletionDirective, Locations: dd.Locations})
			}
			return true
		})
	}
	return out
}

func typeDefinitionCompletionKind(k ir.TypeDefinitionKind) CompletionItemKind {
	switch k {
	case ir.TypeDefinitionObject:
		return CompletionObject
	case ir.TypeDefinitionInputObject:
		return CompletionInputObject
	case ir.TypeDefinitionInterface:
		return CompletionInterface
	case ir.TypeDefinitionScalar:
		return CompletionScalar
	case ir.TypeDefinitionEnum:
		return CompletionEnum
	case ir.TypeDefinitionUnion:
		return CompletionUnion
	default:
		return CompletionObject
	}
}

func (s *Snapshot) completeInputFields(ctx context.Context, file source.FileID) []CompletionItem {
	var out []CompletionItem
	for _, item := range s.projectCompletionItems(ctx, file) {
		switch item.Kind {
		case CompletionDirective:
			if item.Locations.Has(ir.LocationInputFieldDefinition) {
				out = append(out, item)
			}
		case CompletionInputObject, CompletionEnum, CompletionScalar:
			out = append(out, item)
		}
	}
	return out
}

func (s *Snapshot) completeFields(ctx context.Context, file source.FileID) []CompletionItem {
	var out []CompletionItem
	for _, item := range s.projectCompletionItems(ctx, file) {
		switch item.Kind {
		case CompletionDirective:
			if item.Locations.Has(ir.LocationFieldDefinition) {
				out = append(out, item)
			}
		case CompletionObject, CompletionInterface, CompletionEnum, CompletionScalar, CompletionUnion:
			out = append(out, item)
		}
	}
	return out
}

func (s *Snapshot) completeUnionMembers(ctx context.Context, file source.FileID) []CompletionItem {
	var out []CompletionItem
	for _, item := range s.projectCompletionItems(ctx, file) {
		if item.Kind == CompletionObject {
			out = append(out, item)
		}
	}
	return out
}

func (s *Snapshot) completeDirectives(ctx context.Context, file source.FileID, location ir.DirectiveLocations) []CompletionItem {
	var out []CompletionItem
	for _, item := range s.projectCompletionItems(ctx, file) {
		if item.Kind == CompletionDirective && item.Locations.Has(location) {
			out = append(out, item)
		}
	}
	return out
}
