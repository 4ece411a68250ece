package ir

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andyyu2004/gqls/pkg/arena"
	"github.com/andyyu2004/gqls/pkg/source"
)

// typeDefinitionKindToAST maps this module's syntactic TypeDefinitionKind
// onto gqlparser's validated-schema DefinitionKind, the same mapping
// _examples/vito-dang/pkg/dang/project.go keeps in the other direction
// (astTypeKindMap) for its introspection export.
var typeDefinitionKindToAST = map[TypeDefinitionKind]ast.DefinitionKind{
	TypeDefinitionObject:      ast.Object,
	TypeDefinitionInterface:   ast.Interface,
	TypeDefinitionScalar:      ast.Scalar,
	TypeDefinitionEnum:        ast.Enum,
	TypeDefinitionUnion:       ast.Union,
	TypeDefinitionInputObject: ast.InputObject,
}

// Export converts every item reachable from file's project neighborhood
// into a gqlparser ast.SchemaDocument (SPEC_FULL.md §B): an interop
// surface for tools that want this module's resolved IR through the
// ecosystem's own AST instead of gqls' arena-indexed one. Export-only —
// nothing here feeds back into analysis.
func (db *DB) Export(ctx context.Context, file source.FileID) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	for _, f := range db.source.ProjectOf(ctx, file) {
		items := db.Items(ctx, f)
		items.Items.All(func(idx arena.Pointer[Item], item Item) bool {
			res := ItemRes{File: f, Idx: idx}
			switch item.Kind {
			case ItemKindTypeDefinition:
				td := items.TypeDefinitionOf(item)
				def := db.exportTypeDefinition(ctx, item, td, res)
				if td.IsExtension {
					doc.Extensions = append(doc.Extensions, def)
				} else {
					doc.Definitions = append(doc.Definitions, def)
				}
			case ItemKindDirectiveDefinition:
				dd := items.DirectiveDefinitionOf(item)
				doc.Directives = append(doc.Directives, db.exportDirectiveDefinition(ctx, item, dd, res))
			}
			return true
		})
	}
	return doc
}

func (db *DB) exportTypeDefinition(ctx context.Context, item Item, td TypeDefinition, res ItemRes) *ast.Definition {
	def := &ast.Definition{
		Kind:       typeDefinitionKindToAST[td.Kind],
		Name:       item.Name.Text,
		Directives: exportDirectives(td.Directives),
	}
	for _, impl := range td.Implementations {
		def.Interfaces = append(def.Interfaces, impl.Text)
	}

	body := db.Body(ctx, res)
	switch body.Kind {
	case ItemBodyObject, ItemBodyInterface:
		for _, f := range body.Fields {
			def.Fields = append(def.Fields, exportField(f))
		}
	case ItemBodyInputObject:
		for _, f := range body.Fields {
			def.Fields = append(def.Fields, exportField(f))
		}
	case ItemBodyUnion:
		for _, t := range body.UnionTypes {
			def.Types = append(def.Types, t.NamedName().Text)
		}
	case ItemBodyEnum:
		for _, v := range body.Variants {
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
				Name:       v.Name.Text,
				Directives: exportDirectives(v.Directives),
			})
		}
	}
	return def
}

func (db *DB) exportDirectiveDefinition(ctx context.Context, item Item, dd DirectiveDefinition, res ItemRes) *ast.DirectiveDefinition {
	def := &ast.DirectiveDefinition{
		Name: item.Name.Text[len(directiveSigil):],
	}
	for _, loc := range directiveLocationOrder {
		if dd.Locations.Has(loc.Bit) {
			def.Locations = append(def.Locations, ast.DirectiveLocation(loc.Name))
		}
	}
	body := db.Body(ctx, res)
	for _, arg := range body.DirectiveOf {
		def.Arguments = append(def.Arguments, exportArg(arg))
	}
	return def
}

func exportField(f Field) *ast.FieldDefinition {
	fd := &ast.FieldDefinition{
		Name:       f.Name.Text,
		Type:       exportType(f.Ty),
		Directives: exportDirectives(f.Directives),
	}
	for _, arg := range f.Args {
		fd.Arguments = append(fd.Arguments, exportArg(arg))
	}
	return fd
}

func exportArg(a Arg) *ast.ArgumentDefinition {
	return &ast.ArgumentDefinition{
		Name:       a.Name.Text,
		Type:       exportType(a.Ty),
		Directives: exportDirectives(a.Directives),
	}
}

func exportType(t Ty) *ast.Type {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case TyKindNonNull:
		inner := exportType(t.Inner)
		if inner == nil {
			return nil
		}
		nonNull := *inner
		nonNull.NonNull = true
		return &nonNull
	case TyKindList:
		return &ast.Type{Elem: exportType(t.Inner)}
	case TyKindNamed, TyKindErr:
		return &ast.Type{NamedType: t.Name.Text}
	default:
		return nil
	}
}

func exportDirectives(apps []DirectiveApplication) ast.DirectiveList {
	var out ast.DirectiveList
	for _, app := range apps {
		d := &ast.Directive{Name: app.Name.Text[len(directiveSigil):]}
		for _, arg := range app.Arguments {
			d.Arguments = append(d.Arguments, &ast.Argument{Name: arg.Name.Text})
		}
		out = append(out, d)
	}
	return out
}
