package ir

// ValueKind tags a constant Value's variant, mirroring the GraphQL
// constant-value grammar (spec.md §3): String, Int, Float, Boolean,
// Null, Enum, List, Object.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueInt
	ValueFloat
	ValueBoolean
	ValueNull
	ValueEnum
	ValueList
	ValueObject
)

// Value is a constant GraphQL value: a directive argument, a field's
// default value, or a member of a List/Object value. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind

	Str       string // ValueString, ValueEnum (the enum identifier's text)
	Int       int64
	Float     float64
	Bool      bool
	List      []Value
	ObjectVal []ObjectField
}

// ObjectField is one `name: value` pair inside a Value of kind
// ValueObject, or a directive application's `name: value` argument.
type ObjectField struct {
	Name  Name
	Value Value
}
