package ir

import (
	"context"

	"github.com/andyyu2004/gqls/pkg/source"
	"github.com/andyyu2004/gqls/pkg/syntax"
)

// Resolver resolves a name against a file's project neighborhood. It's
// supplied by DefDB (db.go) so that body lowering's type-reference
// resolution goes through the same memoized `resolve` query everything
// else uses, rather than recomputing resolution ad hoc. It takes a
// context so the underlying query call still participates in dependency
// tracking and cancellation.
type Resolver func(ctx context.Context, file source.FileID, name Name) Resolutions

// bodyCtxt lowers one item's body: its fields, variants, union members,
// or directive arguments, resolving every named type reference along the
// way.
type bodyCtxt struct {
	ctx         context.Context
	text        string
	file        source.FileID
	resolve     Resolver
	diagnostics []Diagnostic
}

// LowerBody lowers item's body, given the file's full tree and text and
// a Resolver for named type references. It relocates the item's own
// syntax node by range rather than re-walking the root's children list,
// since the skeleton phase doesn't retain node handles (only extracted
// IR) once it returns.
func LowerBody(ctx context.Context, text string, tree *syntax.Tree, file source.FileID, item Item, resolve Resolver) *ItemBody {
	node := syntax.NamedDescendantForRange(tree.RootNode(), item.Range)
	if node == nil {
		return &ItemBody{Kind: ItemBodyTodo}
	}
	b := &bodyCtxt{ctx: ctx, text: text, file: file, resolve: resolve}
	return b.lower(node)
}

func (b *bodyCtxt) lower(node *syntax.Node) *ItemBody {
	switch node.Type() {
	case syntax.KindObjectTypeDefinition, syntax.KindObjectTypeExtension:
		return &ItemBody{Kind: ItemBodyObject, Fields: b.lowerFieldsOf(node), Diagnostics: b.diagnostics}
	case syntax.KindInterfaceTypeDefinition:
		return &ItemBody{Kind: ItemBodyInterface, Fields: b.lowerFieldsOf(node), Diagnostics: b.diagnostics}
	case syntax.KindInputObjectTypeDefinition:
		var fields []Field
		if fieldsNode := syntax.ChildOfKind(node, syntax.KindInputFieldsDefinition); fieldsNode != nil {
			fields = b.lowerInputFields(fieldsNode)
		}
		return &ItemBody{Kind: ItemBodyInputObject, Fields: fields, Diagnostics: b.diagnostics}
	case syntax.KindUnionTypeDefinition:
		var types []Ty
		if membersNode := syntax.ChildOfKind(node, syntax.KindUnionMemberTypes); membersNode != nil {
			types = b.lowerUnionMemberTypes(membersNode)
		}
		return &ItemBody{Kind: ItemBodyUnion, UnionTypes: types, Diagnostics: b.diagnostics}
	case syntax.KindEnumTypeDefinition:
		var variants []Variant
		if variantsNode := syntax.ChildOfKind(node, syntax.KindEnumValuesDefinition); variantsNode != nil {
			variants = b.lowerEnumVariants(variantsNode)
		}
		return &ItemBody{Kind: ItemBodyEnum, Variants: variants, Diagnostics: b.diagnostics}
	case syntax.KindScalarTypeDefinition:
		return &ItemBody{Kind: ItemBodyScalar, Diagnostics: b.diagnostics}
	case syntax.KindDirectiveDefinition:
		return &ItemBody{Kind: ItemBodyDirective, DirectiveOf: b.lowerArgsOf(node), Diagnostics: b.diagnostics}
	default:
		return &ItemBody{Kind: ItemBodyTodo}
	}
}

func (b *bodyCtxt) lowerFieldsOf(node *syntax.Node) []Field {
	fieldsNode := syntax.ChildOfKind(node, syntax.KindFieldsDefinition)
	if fieldsNode == nil {
		return nil
	}
	var fields []Field
	for _, f := range syntax.ChildrenOfKind(fieldsNode, syntax.KindFieldDefinition) {
		if field, ok := b.lowerField(f); ok {
			fields = append(fields, field)
		}
	}
	return fields
}

func (b *bodyCtxt) lowerField(node *syntax.Node) (Field, bool) {
	typeNode := syntax.ChildOfKind(node, syntax.KindType)
	if typeNode == nil {
		return Field{}, false
	}
	ty := b.lowerType(typeNode)
	if ty == nil {
		return Field{}, false
	}
	nameNode := syntax.NameNode(node)
	if nameNode == nil {
		return Field{}, false
	}
	return Field{
		Range:      syntax.NodeRange(node),
		Name:       NewName(nameNode, b.text),
		Ty:         ty,
		Args:       b.lowerArgsOf(node),
		Directives: lowerDirectivesOf(node, b.text),
	}, true
}

func (b *bodyCtxt) lowerInputFields(node *syntax.Node) []Field {
	var fields []Field
	for _, f := range syntax.ChildrenOfKind(node, syntax.KindInputValueDefinition) {
		if field, ok := b.lowerInputField(f); ok {
			fields = append(fields, field)
		}
	}
	return fields
}

func (b *bodyCtxt) lowerInputField(node *syntax.Node) (Field, bool) {
	nameNode := syntax.NameNode(node)
	typeNode := syntax.ChildOfKind(node, syntax.KindType)
	if nameNode == nil || typeNode == nil {
		return Field{}, false
	}
	ty := b.lowerType(typeNode)
	if ty == nil {
		return Field{}, false
	}
	return Field{
		Range:        syntax.NodeRange(node),
		Name:         NewName(nameNode, b.text),
		Ty:           ty,
		DefaultValue: b.lowerDefaultValueOf(node),
		Directives:   lowerDirectivesOf(node, b.text),
	}, true
}

func (b *bodyCtxt) lowerArgsOf(node *syntax.Node) []Arg {
	argsNode := syntax.ChildOfKind(node, syntax.KindArgumentsDefinition)
	if argsNode == nil {
		return nil
	}
	var args []Arg
	for _, a := range syntax.ChildrenOfKind(argsNode, syntax.KindInputValueDefinition) {
		if arg, ok := b.lowerArg(a); ok {
			args = append(args, arg)
		}
	}
	return args
}

func (b *bodyCtxt) lowerArg(node *syntax.Node) (Arg, bool) {
	nameNode := syntax.NameNode(node)
	typeNode := syntax.ChildOfKind(node, syntax.KindType)
	if nameNode == nil || typeNode == nil {
		return Arg{}, false
	}
	ty := b.lowerType(typeNode)
	if ty == nil {
		return Arg{}, false
	}
	return Arg{
		Range:        syntax.NodeRange(node),
		Name:         NewName(nameNode, b.text),
		Ty:           ty,
		DefaultValue: b.lowerDefaultValueOf(node),
		Directives:   lowerDirectivesOf(node, b.text),
	}, true
}

func (b *bodyCtxt) lowerDefaultValueOf(node *syntax.Node) *Value {
	defaultNode := syntax.ChildOfKind(node, syntax.KindDefaultValue)
	if defaultNode == nil {
		return nil
	}
	valueNode := syntax.SoleNamedChild(defaultNode)
	if valueNode == nil {
		return nil
	}
	v, ok := lowerValue(valueNode, b.text)
	if !ok {
		return nil
	}
	return &v
}

func (b *bodyCtxt) lowerEnumVariants(node *syntax.Node) []Variant {
	var variants []Variant
	for _, v := range syntax.ChildrenOfKind(node, syntax.KindEnumValueDefinition) {
		if variant, ok := b.lowerEnumVariant(v); ok {
			variants = append(variants, variant)
		}
	}
	return variants
}

func (b *bodyCtxt) lowerEnumVariant(node *syntax.Node) (Variant, bool) {
	valueNode := syntax.ChildOfKind(node, syntax.KindEnumValue)
	if valueNode == nil {
		return Variant{}, false
	}
	nameNode := syntax.NameNode(valueNode)
	if nameNode == nil {
		nameNode = valueNode
	}
	return Variant{
		Name:       NewName(nameNode, b.text),
		Directives: lowerDirectivesOf(node, b.text),
	}, true
}

func (b *bodyCtxt) lowerUnionMemberTypes(node *syntax.Node) []Ty {
	var types []Ty
	for _, n := range syntax.ChildrenOfKind(node, syntax.KindNamedType) {
		types = append(types, b.lowerNamedType(n))
	}
	return types
}

// lowerType lowers a `type` wrapper node (or, recursively, the concrete
// named/list/non_null node inside it) into a Ty.
func (b *bodyCtxt) lowerType(node *syntax.Node) Ty {
	target := node
	if node.Type() == syntax.KindType {
		target = syntax.SoleNamedChild(node)
		if target == nil {
			return nil
		}
	}

	switch target.Type() {
	case syntax.KindNamedType:
		return b.lowerNamedType(target)
	case syntax.KindListType:
		inner := syntax.SoleNamedChild(target)
		if inner == nil {
			return nil
		}
		innerTy := b.lowerType(inner)
		if innerTy == nil {
			return nil
		}
		return &Type{Range: syntax.NodeRange(target), Kind: TyKindList, Inner: innerTy}
	case syntax.KindNonNullType:
		inner := syntax.SoleNamedChild(target)
		if inner == nil {
			return nil
		}
		innerTy := b.lowerType(inner)
		if innerTy == nil {
			return nil
		}
		return &Type{Range: syntax.NodeRange(target), Kind: TyKindNonNull, Inner: innerTy}
	default:
		return nil
	}
}

func (b *bodyCtxt) lowerNamedType(node *syntax.Node) Ty {
	nameNode := syntax.NameNode(node)
	if nameNode == nil {
		nameNode = node
	}
	name := NewName(nameNode, b.text)
	res := b.resolve(b.ctx, b.file, name)
	if res.IsErr() {
		b.diagnostics = append(b.diagnostics, NewUnresolvedTypeDiagnostic(name))
		return &Type{Range: name.Range, Kind: TyKindErr, Name: name}
	}
	return &Type{Range: name.Range, Kind: TyKindNamed, Name: name, Res: res}
}
