package ir

import (
	"strconv"

	"github.com/andyyu2004/gqls/pkg/syntax"
)

// lowerArguments lowers a directive application's `(name: value, ...)`
// argument list. It is purely syntactic (no resolver access needed,
// unlike type references), so both the skeleton phase (type-level
// directives) and the body phase (field/arg/enum-value-level directives)
// share it.
func lowerArguments(node *syntax.Node, text string) []ObjectField {
	argsNode := syntax.ChildOfKind(node, syntax.KindArguments)
	if argsNode == nil {
		return nil
	}
	var out []ObjectField
	for _, arg := range syntax.ChildrenOfKind(argsNode, syntax.KindArgument) {
		nameNode := syntax.NameNode(arg)
		valueNode := syntax.ChildOfKind(arg, syntax.KindValue)
		if nameNode == nil || valueNode == nil {
			continue
		}
		v, ok := lowerValue(valueNode, text)
		if !ok {
			continue
		}
		out = append(out, ObjectField{Name: NewName(nameNode, text), Value: v})
	}
	return out
}

// lowerValue lowers a `value` node (a wrapper around exactly one concrete
// value kind) into a Value.
func lowerValue(node *syntax.Node, text string) (Value, bool) {
	inner := syntax.SoleNamedChild(node)
	if inner == nil {
		return Value{}, false
	}
	t := syntax.Text(inner, text)

	switch inner.Type() {
	case syntax.KindStringValue:
		return Value{Kind: ValueString, Str: trimQuotes(t)}, true
	case syntax.KindIntValue:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValueInt, Int: n}, true
	case syntax.KindFloatValue:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValueFloat, Float: f}, true
	case syntax.KindBooleanValue:
		return Value{Kind: ValueBoolean, Bool: t == "true"}, true
	case syntax.KindNullValue:
		return Value{Kind: ValueNull}, true
	case syntax.KindEnumValue:
		return Value{Kind: ValueEnum, Str: t}, true
	case syntax.KindListValue:
		var items []Value
		for _, v := range syntax.ChildrenOfKind(inner, syntax.KindValue) {
			if item, ok := lowerValue(v, text); ok {
				items = append(items, item)
			}
		}
		return Value{Kind: ValueList, List: items}, true
	case syntax.KindObjectValue:
		var fields []ObjectField
		for _, f := range syntax.ChildrenOfKind(inner, syntax.KindObjectField) {
			nameNode := syntax.NameNode(f)
			valueNode := syntax.ChildOfKind(f, syntax.KindValue)
			if nameNode == nil || valueNode == nil {
				continue
			}
			v, ok := lowerValue(valueNode, text)
			if !ok {
				continue
			}
			fields = append(fields, ObjectField{Name: NewName(nameNode, text), Value: v})
		}
		return Value{Kind: ValueObject, ObjectVal: fields}, true
	default:
		return Value{}, false
	}
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
