// Package syntax wraps github.com/smacker/go-tree-sitter with the node and
// range helpers the rest of gqls builds on: finding a node's sole named
// child, walking to children of a particular kind, and locating the node
// under a cursor position. It is the Go counterpart of gqls-syntax's
// NodeExt/RangeExt traits, expressed as plain functions since Go has no
// extension-trait mechanism.
package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/andyyu2004/gqls/pkg/syntax/grammar"
)

// Point and Range are re-exported so callers never need to import
// go-tree-sitter directly.
type (
	Point = sitter.Point
	Range = sitter.Range
	Node  = sitter.Node
	Tree  = sitter.Tree
)

// Parse parses text from scratch. A future edit-aware incremental reparse
// (passing the previous Tree) is left for when the editor transport lands;
// every caller today only ever has fresh text.
func Parse(ctx context.Context, text string) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(grammar.Language())
	tree, err := parser.ParseCtx(ctx, nil, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("parse graphql source: %w", err)
	}
	return tree, nil
}

// RangeContains reports whether pt falls within [start, end) of r.
func RangeContains(r Range, pt Point) bool {
	return !pointLess(pt, r.StartPoint) && pointLess(pt, r.EndPoint)
}

// RangeIsEmpty reports whether r spans zero bytes.
func RangeIsEmpty(r Range) bool {
	return r.StartByte == r.EndByte
}

// RangeIntersects reports whether r and other overlap by at least one byte.
func RangeIntersects(r, other Range) bool {
	endMin := r.EndByte
	if other.EndByte < endMin {
		endMin = other.EndByte
	}
	startMax := r.StartByte
	if other.StartByte > startMax {
		startMax = other.StartByte
	}
	return endMin > startMax
}

func pointLess(a, b Point) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Column < b.Column
}

// NodeRange builds n's Range from its start/end points and bytes. Node
// itself exposes StartPoint/EndPoint but not a combined Range, so every
// caller that needs one (storing an Item's span, resolving a name's
// location) goes through here instead of assembling the struct by hand.
func NodeRange(n *Node) Range {
	return Range{
		StartPoint: n.StartPoint(),
		EndPoint:   n.EndPoint(),
		StartByte:  n.StartByte(),
		EndByte:    n.EndByte(),
	}
}

// Text returns the node's source text, given the full file text it was
// parsed from.
func Text(n *Node, source string) string {
	return n.Content([]byte(source))
}

// IsRelevant reports whether n should be considered by NodeExt-style
// traversal: a named node that isn't a comment or other "extra" grammar
// rule.
func IsRelevant(n *Node) bool {
	return n.IsNamed() && !n.IsExtra()
}

// RelevantChildren returns n's named, non-extra children in order.
func RelevantChildren(n *Node) []*Node {
	var out []*Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if IsRelevant(child) {
			out = append(out, child)
		}
	}
	return out
}

// ChildrenOfKind returns n's relevant children whose Type() equals kind.
func ChildrenOfKind(n *Node, kind string) []*Node {
	var out []*Node
	for _, child := range RelevantChildren(n) {
		if child.Type() == kind {
			out = append(out, child)
		}
	}
	return out
}

// ChildOfKind returns the first relevant child whose Type() equals kind,
// or nil.
func ChildOfKind(n *Node, kind string) *Node {
	for _, child := range RelevantChildren(n) {
		if child.Type() == kind {
			return child
		}
	}
	return nil
}

// SoleNamedChild returns n's one non-error named child. Tree-sitter counts
// ERROR nodes towards NamedChildCount, so a node that's meant to have
// exactly one named child can still report more than one when the source
// around it is malformed; this filters those out before asserting there's
// a single survivor. It panics if more than one non-error named child
// remains, mirroring the upstream grammar's invariant that a sole_named_child
// call site always targets a genuinely single-child rule.
func SoleNamedChild(n *Node) *Node {
	var found *Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.IsError() {
			continue
		}
		if found != nil {
			panic(fmt.Sprintf("node %q had more than one named child", n.Type()))
		}
		found = child
	}
	return found
}

// NameNode returns n's "name" or "directive_name" child, whichever is
// present: the two node kinds that carry an identifier in this grammar.
func NameNode(n *Node) *Node {
	if name := ChildOfKind(n, KindName); name != nil {
		return name
	}
	return ChildOfKind(n, KindDirectiveName)
}

// NamedNodeAt returns the smallest named node spanning pt, or nil.
func NamedNodeAt(n *Node, pt Point) *Node {
	return n.NamedDescendantForPointRange(pt, pt)
}

// NamedDescendantForRange returns the smallest named node spanning r.
func NamedDescendantForRange(n *Node, r Range) *Node {
	return n.NamedDescendantForPointRange(r.StartPoint, r.EndPoint)
}

// Parents walks n's ancestor chain, root-most last excluded (n.Parent(),
// n.Parent().Parent(), ... until nil).
func Parents(n *Node) []*Node {
	var out []*Node
	for p := n.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// ParentOfKind returns the nearest ancestor of n whose Type() equals kind.
func ParentOfKind(n *Node, kind string) *Node {
	for _, p := range Parents(n) {
		if p.Type() == kind {
			return p
		}
	}
	return nil
}

// HasParentOfKind reports whether n has an ancestor of the given kind.
func HasParentOfKind(n *Node, kind string) bool {
	return ParentOfKind(n, kind) != nil
}

// FindDescendant runs a preorder search from n (n included) for the first
// node satisfying pred.
func FindDescendant(n *Node, pred func(*Node) bool) *Node {
	for _, node := range TraversePreorder(n) {
		if pred(node) {
			return node
		}
	}
	return nil
}

// TraversePreorder returns every node in n's subtree (n included) in
// preorder, counting every child (not just named ones) since callers like
// semantic tokens need punctuation and keyword tokens too.
func TraversePreorder(n *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		out = append(out, cur)
		for i := 0; i < int(cur.ChildCount()); i++ {
			walk(cur.Child(i))
		}
	}
	walk(n)
	return out
}
