package ide

import (
	"context"

	"github.com/andyyu2004/gqls/pkg/arena"
	"github.com/andyyu2004/gqls/pkg/ir"
	"github.com/andyyu2004/gqls/pkg/source"
	"github.com/andyyu2004/gqls/pkg/syntax"
)

// NameAtPoint returns the smallest named syntax node spanning at, the
// shared first step of goto-definition and references (spec.md §4.6).
// Grounded on _examples/vito-dang/pkg/lsp/ast_query.go's FindNodeAt: walk
// to the most specific node containing the cursor, skipping subtrees
// that don't — the same algorithm, here over a *syntax.Tree instead of
// Dang's own typed AST.
func (s *Snapshot) NameAtPoint(ctx context.Context, file source.FileID, at syntax.Point) *syntax.Node {
	data := s.Source.FileData(ctx, file)
	if data.Tree == nil {
		return nil
	}
	return syntax.NamedNodeAt(data.Tree.RootNode(), at)
}

// GotoDefinition resolves the name at the cursor and maps each
// resolution to a Location. Multiple locations are returned for
// duplicate definitions (spec.md §8 S2) — callers that want a single
// jump target take the first.
func (s *Snapshot) GotoDefinition(ctx context.Context, file source.FileID, at syntax.Point) []Location {
	node := s.NameAtPoint(ctx, file, at)
	if node == nil {
		return nil
	}
	name := nameTextFor(node, s.Source.FileText(ctx, file))
	if name == "" {
		return nil
	}

	res := s.Def.Resolve(ctx, file, ir.Name{Text: name})
	var out []Location
	for _, r := range res {
		item := s.Def.Item(ctx, r)
		out = append(out, Location{File: r.File, Range: item.Name.Range})
	}
	return out
}

// References scans every file in the neighborhood for occurrences of the
// name at the cursor: every item definition with a matching name, plus
// every type reference (field types, arg types, union members,
// implements clauses) that resolves to one of those definitions.
func (s *Snapshot) References(ctx context.Context, file source.FileID, at syntax.Point) []Location {
	node := s.NameAtPoint(ctx, file, at)
	if node == nil {
		return nil
	}
	name := nameTextFor(node, s.Source.FileText(ctx, file))
	if name == "" {
		return nil
	}

	targets := s.Def.Resolve(ctx, file, ir.Name{Text: name})
	if targets.IsErr() {
		return nil
	}
	targetSet := make(map[ir.ItemRes]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	var out []Location
	for _, f := range s.Source.ProjectOf(ctx, file) {
		items := s.Def.Items(ctx, f)
		items.Items.All(func(idx arena.Pointer[ir.Item], item ir.Item) bool {
			res := ir.ItemRes{File: f, Idx: idx}
			if targetSet[res] {
				out = append(out, Location{File: f, Range: item.Name.Range})
			}
			out = append(out, s.referenceUsagesIn(ctx, f, res, item, targetSet)...)
			return true
		})
	}
	return out
}

// referenceUsagesIn finds every type reference inside item (implements
// clauses, field/arg types, union members) whose resolution lands in
// targets, and returns the usage's own name range rather than the
// enclosing item's.
func (s *Snapshot) referenceUsagesIn(ctx context.Context, file source.FileID, res ir.ItemRes, item ir.Item, targets map[ir.ItemRes]bool) []Location {
	var out []Location

	if item.Kind == ir.ItemKindTypeDefinition {
		items := s.Def.Items(ctx, file)
		td := items.TypeDefinitionOf(item)
		for _, impl := range td.Implementations {
			for _, r := range s.Def.Resolve(ctx, file, impl) {
				if targets[r] {
					out = append(out, Location{File: file, Range: impl.Range})
				}
			}
		}
	}

	body := s.Def.Body(ctx, res)
	for _, field := range body.Fields {
		out = append(out, tyUsageLocations(file, field.Ty, targets)...)
		for _, arg := range field.Args {
			out = append(out, tyUsageLocations(file, arg.Ty, targets)...)
		}
	}
	for _, ty := range body.UnionTypes {
		out = append(out, tyUsageLocations(file, ty, targets)...)
	}
	return out
}

// tyUsageLocations reports ty's own usage location if it (through any
// NonNull/List wrapping) resolves to a member of targets.
func tyUsageLocations(file source.FileID, ty ir.Ty, targets map[ir.ItemRes]bool) []Location {
	if ty == nil {
		return nil
	}
	var out []Location
	for _, r := range ty.ItemResolutions() {
		if targets[r] {
			out = append(out, Location{File: file, Range: ty.NamedName().Range})
			break
		}
	}
	return out
}

// nameTextFor extracts a lookup-able name from node: its own text if
// it's already a name/directive_name node, or its "name"/"directive_name"
// child's text otherwise (the cursor commonly lands on the wrapping
// named_type or type_definition rather than the identifier leaf itself).
func nameTextFor(node *syntax.Node, source string) string {
	switch node.Type() {
	case syntax.KindName:
		return syntax.Text(node, source)
	case syntax.KindDirectiveName:
		return syntax.Text(node, source)
	default:
		if nameNode := syntax.NameNode(node); nameNode != nil {
			return syntax.Text(nameNode, source)
		}
		return ""
	}
}
