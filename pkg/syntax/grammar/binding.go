// Package grammar binds the tree-sitter-graphql C grammar, generated
// separately from its grammar.js and built alongside this package's cgo
// sources. The grammar itself is out of scope for this module; this file
// is the thin cgo shim connecting it to go-tree-sitter's Language type.
package grammar

//#include "tree_sitter/parser.h"
//TSLanguage *tree_sitter_graphql();
import "C"
import (
	"unsafe"

	sitter "github.com/smacker/go-tree-sitter"
)

// Language returns the compiled tree-sitter-graphql grammar.
func Language() *sitter.Language {
	ptr := unsafe.Pointer(C.tree_sitter_graphql())
	return sitter.NewLanguage(ptr)
}
