package ir

import (
	"context"
	"strings"

	"github.com/andyyu2004/gqls/pkg/incremental"
	"github.com/andyyu2004/gqls/pkg/source"
)

// builtinFileID is the sentinel FileID under which the three predefined
// directives live. It's never issued by a source.Interner (those start
// at 0 and only go up), so an ItemRes carrying it can never collide with
// a real file.
const builtinFileID source.FileID = -1

// resolveKey is resolve's memoization key. It carries the name as plain
// text, not an ir.Name, since Name.Range would otherwise fracture the
// cache across occurrences of the same identifier (spec.md §3: equality
// is text-only).
type resolveKey struct {
	File source.FileID
	Name string
}

// DB is DefDB (spec.md §4.3): item skeletons, the name→item map, cross-
// file resolution, and lazy item bodies, layered on top of SourceDB's
// files and project neighborhoods.
type DB struct {
	engine *incremental.Engine
	source *source.DB

	builtinItems *Items
	builtinMap   ItemMap

	itemsQ   *incremental.Query[source.FileID, *Items]
	itemMapQ *incremental.Query[source.FileID, ItemMap]
	resolveQ *incremental.Query[resolveKey, Resolutions]
	bodyQ    *incremental.Query[ItemRes, *ItemBody]
}

// NewDB wires a DefDB on top of src, sharing src's engine.
func NewDB(src *source.DB) *DB {
	db := &DB{engine: src.Engine(), source: src}
	db.builtinItems, db.builtinMap = builtinItems()

	db.itemsQ = incremental.NewQuery("ir.items", EqualItems, func(ctx context.Context, e *incremental.Engine, file source.FileID) *Items {
		if file == builtinFileID {
			return db.builtinItems
		}
		data := db.source.FileData(ctx, file)
		if data.Tree == nil {
			return &Items{}
		}
		return LowerItems(ctx, data.Text, data.Tree)
	})

	db.itemMapQ = incremental.NewQuery("ir.item_map", EqualItemMap, func(ctx context.Context, e *incremental.Engine, file source.FileID) ItemMap {
		if file == builtinFileID {
			return db.builtinMap
		}
		return BuildItemMap(db.itemsQ.Get(ctx, e, file))
	})

	db.resolveQ = incremental.NewQuery("ir.resolve", EqualResolutions, func(ctx context.Context, e *incremental.Engine, key resolveKey) Resolutions {
		neighborhood := db.source.ProjectOf(ctx, key.File)
		res := ResolveInNeighborhood(neighborhood, Name{Text: key.Name}, func(f source.FileID) ItemMap {
			return db.itemMapQ.Get(ctx, e, f)
		})
		if res.IsErr() && strings.HasPrefix(key.Name, directiveSigil) {
			for _, idx := range db.builtinMap[key.Name] {
				res = append(res, ItemRes{File: builtinFileID, Idx: idx})
			}
		}
		return res
	})

	db.bodyQ = incremental.NewQuery("ir.body", EqualItemBody, func(ctx context.Context, e *incremental.Engine, res ItemRes) *ItemBody {
		if res.File == builtinFileID {
			item := db.builtinItems.Items.Get(res.Idx)
			return builtinBody(item.Name.Text)
		}
		items := db.itemsQ.Get(ctx, e, res.File)
		item := items.Items.Get(res.Idx)
		data := db.source.FileData(ctx, res.File)
		if data.Tree == nil {
			return &ItemBody{Kind: ItemBodyTodo}
		}
		return LowerBody(ctx, data.Text, data.Tree, res.File, item, db.resolveForBody)
	})

	return db
}

// resolveForBody adapts Resolve to the Resolver signature lower_body.go
// expects, so body lowering's type-reference resolution goes through
// this same memoized query rather than recomputing it.
func (db *DB) resolveForBody(ctx context.Context, file source.FileID, name Name) Resolutions {
	return db.Resolve(ctx, file, name)
}

// Items returns file's lowered item skeleton.
func (db *DB) Items(ctx context.Context, file source.FileID) *Items {
	return db.itemsQ.Get(ctx, db.engine, file)
}

// ItemMap returns file's name→item-indices map.
func (db *DB) ItemMap(ctx context.Context, file source.FileID) ItemMap {
	return db.itemMapQ.Get(ctx, db.engine, file)
}

// Resolve resolves name against file's project neighborhood, falling
// back to the builtin directives for an otherwise-unresolved directive
// name (SPEC_FULL.md §C.3).
func (db *DB) Resolve(ctx context.Context, file source.FileID, name Name) Resolutions {
	return db.resolveQ.Get(ctx, db.engine, resolveKey{File: file, Name: name.Text})
}

// Body returns the lazily-lowered body for one resolved item.
func (db *DB) Body(ctx context.Context, res ItemRes) *ItemBody {
	return db.bodyQ.Get(ctx, db.engine, res)
}

// Item looks up one item's skeleton record by its ItemRes.
func (db *DB) Item(ctx context.Context, res ItemRes) Item {
	if res.File == builtinFileID {
		return db.builtinItems.Items.Get(res.Idx)
	}
	return db.Items(ctx, res.File).Items.Get(res.Idx)
}

// Source exposes the underlying SourceDB, for layers built on top of
// DefDB (TyDB, ide.Snapshot) that need file text/trees directly.
func (db *DB) Source() *source.DB {
	return db.source
}
