package ide

import (
	"context"
	"sort"

	"github.com/andyyu2004/gqls/pkg/arena"
	"github.com/andyyu2004/gqls/pkg/ir"
	"github.com/andyyu2004/gqls/pkg/source"
	"github.com/andyyu2004/gqls/pkg/syntax"
)

// Diagnostics returns file's merged diagnostic list (spec.md §4.6): parse
// errors from the syntax tree, skeleton-phase diagnostics (e.g. an
// invalid directive location), plus every item's lowered-body
// diagnostics (unresolved-type references). Sorted by start position
// then code, the deterministic order spec.md:190 requires — callers
// (editors, the batch CLI) can render the list as-is without re-sorting.
func (s *Snapshot) Diagnostics(ctx context.Context, file source.FileID) []ir.Diagnostic {
	var out []ir.Diagnostic

	data := s.Source.FileData(ctx, file)
	if data.Tree != nil {
		out = append(out, parseErrorDiagnostics(data.Tree.RootNode())...)
	}

	items := s.Def.Items(ctx, file)
	out = append(out, items.Diagnostics...)
	items.Items.All(func(idx arena.Pointer[ir.Item], item ir.Item) bool {
		body := s.Def.Body(ctx, ir.ItemRes{File: file, Idx: idx})
		out = append(out, body.Diagnostics...)
		return true
	})

	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Range, out[j].Range
		if ri.StartPoint.Row != rj.StartPoint.Row {
			return ri.StartPoint.Row < rj.StartPoint.Row
		}
		if ri.StartPoint.Column != rj.StartPoint.Column {
			return ri.StartPoint.Column < rj.StartPoint.Column
		}
		return out[i].Code < out[j].Code
	})

	return out
}

// parseErrorDiagnostics walks root for ERROR and MISSING nodes, the
// tree-sitter-native signal for malformed syntax, and turns each into a
// DiagnosticMalformedItem.
func parseErrorDiagnostics(root *syntax.Node) []ir.Diagnostic {
	var out []ir.Diagnostic
	for _, node := range syntax.TraversePreorder(root) {
		if !node.IsError() && !node.IsMissing() {
			continue
		}
		msg := "syntax error"
		if node.IsMissing() {
			msg = "missing " + node.Type()
		}
		out = append(out, ir.Diagnostic{
			Code:     ir.DiagnosticMalformedItem.Code(),
			Kind:     ir.DiagnosticMalformedItem,
			Range:    syntax.NodeRange(node),
			Severity: ir.SeverityError,
			Message:  msg,
		})
	}
	return out
}
