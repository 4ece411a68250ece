package ir

import (
	"github.com/andyyu2004/gqls/pkg/arena"
	"github.com/andyyu2004/gqls/pkg/source"
)

// ItemMap is a file's name → item-indices index, built by iterating
// items in arena order. Duplicate definitions are preserved in source
// order (spec.md §4.4's scenario S2).
type ItemMap map[string][]arena.Pointer[Item]

// BuildItemMap constructs the ItemMap for one file's Items.
func BuildItemMap(items *Items) ItemMap {
	m := make(ItemMap, items.Items.Len())
	items.Items.All(func(idx arena.Pointer[Item], item Item) bool {
		m[item.Name.Text] = append(m[item.Name.Text], idx)
		return true
	})
	return m
}

// ResolveInNeighborhood implements spec.md §4.4's Resolve(F, N): iterate
// the neighborhood (already in deterministic FileID order, per
// source.Projects.Neighborhood) concatenating each file's item_map[N]
// lifted into ItemRes, preserving each file's own insertion order.
// itemMapOf is a callback so the caller (DefDB) routes through its own
// memoized item_map query rather than this function reaching into the
// cache directly — that's what makes `resolve` depend on item_map (not
// file bodies) for early cutoff, per §4.4's caching property.
func ResolveInNeighborhood(neighborhood []source.FileID, name Name, itemMapOf func(source.FileID) ItemMap) Resolutions {
	var out Resolutions
	for _, file := range neighborhood {
		for _, idx := range itemMapOf(file)[name.Text] {
			out = append(out, ItemRes{File: file, Idx: idx})
		}
	}
	return out
}
