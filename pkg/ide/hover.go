package ide

import (
	"context"

	"github.com/andyyu2004/gqls/pkg/ir"
	"github.com/andyyu2004/gqls/pkg/source"
	"github.com/andyyu2004/gqls/pkg/syntax"
)

// HoverInfo is a symbol summary for the name under the cursor.
// Supplemented beyond spec.md's analysis list (SPEC_FULL.md §C.4): not
// named in spec.md, but implied by the original's gqls-ide crate
// structure (name resolution + item bodies are already there; surfacing
// them as hover text is a thin read over existing IR, not new analysis).
type HoverInfo struct {
	Name    string
	Kind    string
	Summary string
}

// Hover returns the symbol summary for the name at the cursor. It
// returns nil if the cursor isn't over a name, and a HoverInfo with Kind
// "unresolved" if the name resolves to nothing in the project.
func (s *Snapshot) Hover(ctx context.Context, file source.FileID, at syntax.Point) *HoverInfo {
	node := s.NameAtPoint(ctx, file, at)
	if node == nil {
		return nil
	}
	name := nameTextFor(node, s.Source.FileText(ctx, file))
	if name == "" {
		return nil
	}

	res := s.Def.Resolve(ctx, file, ir.Name{Text: name})
	if res.IsErr() {
		return &HoverInfo{Name: name, Kind: "unresolved", Summary: "cannot find `" + name + "` in this project"}
	}

	item := s.Def.Item(ctx, res[0])
	switch item.Kind {
	case ir.ItemKindTypeDefinition:
		items := s.Def.Items(ctx, res[0].File)
		td := items.TypeDefinitionOf(item)
		return &HoverInfo{Name: name, Kind: td.Kind.String(), Summary: typeDefinitionSummary(s, ctx, res[0], td)}
	case ir.ItemKindDirectiveDefinition:
		return &HoverInfo{Name: name, Kind: "Directive", Summary: "directive " + name}
	default:
		return &HoverInfo{Name: name}
	}
}

func typeDefinitionSummary(s *Snapshot, ctx context.Context, res ir.ItemRes, td ir.TypeDefinition) string {
	body := s.Def.Body(ctx, res)
	switch body.Kind {
	case ir.ItemBodyObject, ir.ItemBodyInterface, ir.ItemBodyInputObject:
		summary := ""
		for i, f := range body.Fields {
			if i > 0 {
				summary += ", "
			}
			summary += f.Name.Text + ": " + f.Ty.String()
		}
		return summary
	case ir.ItemBodyEnum:
		summary := ""
		for i, v := range body.Variants {
			if i > 0 {
				summary += " | "
			}
			summary += v.Name.Text
		}
		return summary
	case ir.ItemBodyUnion:
		summary := ""
		for i, t := range body.UnionTypes {
			if i > 0 {
				summary += " | "
			}
			summary += t.String()
		}
		return summary
	default:
		return ""
	}
}
