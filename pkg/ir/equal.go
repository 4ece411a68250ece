package ir

import "reflect"

// EqualItems, EqualItemMap, EqualResolutions, and EqualItemBody back the
// early-cutoff comparisons for this package's memoized queries
// (pkg/ir/db.go). IR values are plain trees of comparable/slice fields
// with no cycles (cross-item references always go through ItemRes, never
// a pointer into another item — spec.md §9), so structural equality via
// reflect.DeepEqual is both correct and, for schemas of the size this
// tool targets, cheap enough; there's no third-party structural-equality
// library in the example corpus to reach for instead.

// EqualItems compares two *Items values field-by-field.
func EqualItems(a, b *Items) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return reflect.DeepEqual(a.Items, b.Items) &&
		reflect.DeepEqual(a.TypeDefs, b.TypeDefs) &&
		reflect.DeepEqual(a.Directives, b.Directives) &&
		reflect.DeepEqual(a.Diagnostics, b.Diagnostics)
}

// EqualItemMap compares two ItemMap values.
func EqualItemMap(a, b ItemMap) bool {
	return reflect.DeepEqual(a, b)
}

// EqualResolutions compares two Resolutions values, order-sensitive
// since resolve() defines a deterministic ordering (spec.md §4.4).
func EqualResolutions(a, b Resolutions) bool {
	return reflect.DeepEqual(a, b)
}

// EqualItemBody compares two *ItemBody values.
func EqualItemBody(a, b *ItemBody) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return reflect.DeepEqual(*a, *b)
}
