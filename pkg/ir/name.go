package ir

import (
	"strings"

	"github.com/andyyu2004/gqls/pkg/syntax"
)

// directiveSigil prefixes a directive's Name.Text so that directive names
// and type names can share one namespace (an ItemMap / Resolutions slot)
// without colliding: "Foo" (a type) and "@Foo" (a directive called Foo)
// are distinct Names even though nothing in the grammar itself requires
// the distinction syntactically.
const directiveSigil = "@"

// Name is (text, optional source range). Two Names compare equal by text
// only — Range is metadata for diagnostics and goto-definition and must
// never participate in equality, hashing, or map keys.
type Name struct {
	Text  string
	Range syntax.Range
	// HasRange is false for built-in names (the predefined @deprecated /
	// @skip / @include directives) that don't originate from any file's
	// source text.
	HasRange bool
}

// NewName builds a Name from a syntax node's text and range.
func NewName(node *syntax.Node, source string) Name {
	return Name{Text: syntax.Text(node, source), Range: syntax.NodeRange(node), HasRange: true}
}

// NewBuiltinName builds a Name with no source range, for predefined
// schema-level constructs.
func NewBuiltinName(text string) Name {
	return Name{Text: text}
}

// NewDirectiveName builds the Name for a directive definition or
// application from its "directive_name" node, which the grammar already
// includes the leading "@" in.
func NewDirectiveName(node *syntax.Node, source string) Name {
	text := syntax.Text(node, source)
	if !strings.HasPrefix(text, directiveSigil) {
		text = directiveSigil + text
	}
	return Name{Text: text, Range: syntax.NodeRange(node), HasRange: true}
}

// Equal compares by Text only, per spec.md §3.
func (n Name) Equal(other Name) bool {
	return n.Text == other.Text
}

// IsDirective reports whether n names a directive rather than a type or
// field.
func (n Name) IsDirective() bool {
	return strings.HasPrefix(n.Text, directiveSigil)
}

// String returns the Name's text, satisfying fmt.Stringer for logging.
func (n Name) String() string {
	return n.Text
}
