package ir

// ItemBodyKind tags which payload an ItemBody carries.
type ItemBodyKind int

const (
	ItemBodyObject ItemBodyKind = iota
	ItemBodyInterface
	ItemBodyInputObject
	ItemBodyUnion
	ItemBodyEnum
	ItemBodyScalar
	ItemBodyDirective
	// ItemBodyTodo covers item shapes not yet lowered (other extension
	// kinds): the spec calls for tolerant lowering, not a hard failure.
	ItemBodyTodo
)

// ItemBody is the lazily-computed, expensive half of an item's lowering:
// its fields, variants, or union members, with every named type
// reference inside resolved against the file's neighborhood.
type ItemBody struct {
	Diagnostics []Diagnostic
	Kind        ItemBodyKind

	Fields      []Field   // ItemBodyObject, ItemBodyInterface, ItemBodyInputObject
	Variants    []Variant // ItemBodyEnum
	UnionTypes  []Ty      // ItemBodyUnion
	DirectiveOf []Arg     // ItemBodyDirective: the directive definition's own arguments
}
