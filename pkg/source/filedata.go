package source

import (
	"context"
	"fmt"

	"github.com/andyyu2004/gqls/pkg/syntax"
)

// FileData is one file's text and the syntax tree parsed from it. A new
// FileData atomically replaces any prior value for the same FileID;
// nothing in this module ever mutates a FileData's Tree in place.
type FileData struct {
	Text string
	Tree *syntax.Tree
}

// Equal compares FileData by Text only. The Tree is wholly determined by
// Text (parsing is a pure function of it, modulo the grammar), so two
// FileData values with identical text are interchangeable for every
// downstream query's early-cutoff purposes even though they hold
// distinct *syntax.Tree pointers from separate parses.
func (d FileData) Equal(other FileData) bool {
	return d.Text == other.Text
}

// Parse produces the FileData for text by parsing it with the shared
// grammar.
func Parse(ctx context.Context, text string) (FileData, error) {
	tree, err := syntax.Parse(ctx, text)
	if err != nil {
		return FileData{}, fmt.Errorf("source: parse: %w", err)
	}
	return FileData{Text: text, Tree: tree}, nil
}
