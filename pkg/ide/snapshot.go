// Package ide implements spec.md §4.6's consumer analyses — diagnostics,
// completions, goto-definition, references, name-at-point, and semantic
// tokens — each built purely by reading Source/Def/Ty DB snapshots, never
// mutating them. Grounded on _examples/original_source/src/gqls-ide,
// which layers the same analyses over the same three-database stack.
package ide

import (
	"github.com/andyyu2004/gqls/pkg/ir"
	"github.com/andyyu2004/gqls/pkg/source"
	"github.com/andyyu2004/gqls/pkg/syntax"
	"github.com/andyyu2004/gqls/pkg/ty"
)

// Snapshot aggregates the three query layers an IDE-facing analysis
// needs. It holds no state of its own beyond the DB handles: every
// method call reads through to the shared incremental.Engine at its
// current revision. It takes no read lock and pins no revision, so a
// write made between two calls on the same Snapshot is visible to the
// later call.
type Snapshot struct {
	Source *source.DB
	Def    *ir.DB
	Ty     *ty.DB
}

// NewSnapshot wires the full DB stack on top of an already-populated
// SourceDB.
func NewSnapshot(sdb *source.DB) *Snapshot {
	defdb := ir.NewDB(sdb)
	return &Snapshot{Source: sdb, Def: defdb, Ty: ty.NewDB(defdb)}
}

// Location is a (file, range) pair: the shape every goto-definition,
// references, and diagnostic result ultimately reduces to for rendering.
type Location struct {
	File  source.FileID
	Range syntax.Range
}
