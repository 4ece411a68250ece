// Package ty is TyDB (spec.md §4.5): queries over the IR's already-lowered
// Type graph — field/arg types, union members, and the interface
// implementor reverse index — each independently memoized so that
// editing one item's body doesn't invalidate another item's type-graph
// queries.
package ty

import (
	"context"
	"reflect"

	"github.com/andyyu2004/gqls/pkg/arena"
	"github.com/andyyu2004/gqls/pkg/incremental"
	"github.com/andyyu2004/gqls/pkg/ir"
	"github.com/andyyu2004/gqls/pkg/source"
)

// argTypesKey is the memoization key for arg_types(item, field).
type argTypesKey struct {
	Item  ir.ItemRes
	Field string
}

// DB is TyDB, layered on top of DefDB and sharing its engine.
type DB struct {
	engine *incremental.Engine
	ir     *ir.DB

	fieldTypesQ   *incremental.Query[ir.ItemRes, map[string]ir.Ty]
	argTypesQ     *incremental.Query[argTypesKey, map[string]ir.Ty]
	unionMembersQ *incremental.Query[ir.ItemRes, []ir.ItemRes]
	implementsQ   *incremental.Query[ir.ItemRes, []ir.ItemRes]
	implementorsQ *incremental.Query[ir.ItemRes, []ir.ItemRes]
}

// NewDB wires a TyDB on top of defdb, sharing defdb's engine.
func NewDB(defdb *ir.DB) *DB {
	db := &DB{engine: defdb.Source().Engine(), ir: defdb}

	db.fieldTypesQ = incremental.NewQuery("ty.field_types", equalTyMap, func(ctx context.Context, e *incremental.Engine, res ir.ItemRes) map[string]ir.Ty {
		body := defdb.Body(ctx, res)
		out := make(map[string]ir.Ty, len(body.Fields))
		for _, f := range body.Fields {
			out[f.Name.Text] = f.Ty
		}
		return out
	})

	db.argTypesQ = incremental.NewQuery("ty.arg_types", equalTyMap, func(ctx context.Context, e *incremental.Engine, key argTypesKey) map[string]ir.Ty {
		body := defdb.Body(ctx, key.Item)
		for _, f := range body.Fields {
			if f.Name.Text != key.Field {
				continue
			}
			out := make(map[string]ir.Ty, len(f.Args))
			for _, a := range f.Args {
				out[a.Name.Text] = a.Ty
			}
			return out
		}
		return nil
	})

	db.unionMembersQ = incremental.NewQuery("ty.union_members", equalItemResSlice, func(ctx context.Context, e *incremental.Engine, res ir.ItemRes) []ir.ItemRes {
		body := defdb.Body(ctx, res)
		var out []ir.ItemRes
		for _, t := range body.UnionTypes {
			out = append(out, t.ItemResolutions()...)
		}
		return out
	})

	db.implementsQ = incremental.NewQuery("ty.implements", equalItemResSlice, func(ctx context.Context, e *incremental.Engine, res ir.ItemRes) []ir.ItemRes {
		items := defdb.Items(ctx, res.File)
		item := items.Items.Get(res.Idx)
		if item.Kind != ir.ItemKindTypeDefinition {
			return nil
		}
		td := items.TypeDefinitionOf(item)
		var out []ir.ItemRes
		for _, name := range td.Implementations {
			out = append(out, defdb.Resolve(ctx, res.File, name)...)
		}
		return out
	})

	db.implementorsQ = incremental.NewQuery("ty.implementors", equalItemResSlice, func(ctx context.Context, e *incremental.Engine, iface ir.ItemRes) []ir.ItemRes {
		var out []ir.ItemRes
		for _, file := range defdb.Source().ProjectOf(ctx, iface.File) {
			items := defdb.Items(ctx, file)
			items.Items.All(func(idx arena.Pointer[ir.Item], item ir.Item) bool {
				if item.Kind != ir.ItemKindTypeDefinition {
					return true
				}
				candidate := ir.ItemRes{File: file, Idx: idx}
				for _, impl := range db.Implements(ctx, candidate) {
					if impl == iface {
						out = append(out, candidate)
						break
					}
				}
				return true
			})
		}
		return out
	})

	return db
}

func equalTyMap(a, b map[string]ir.Ty) bool {
	return reflect.DeepEqual(a, b)
}

func equalItemResSlice(a, b []ir.ItemRes) bool {
	return reflect.DeepEqual(a, b)
}

// FieldTypes returns item's fields' resolved types by name.
func (db *DB) FieldTypes(ctx context.Context, item ir.ItemRes) map[string]ir.Ty {
	return db.fieldTypesQ.Get(ctx, db.engine, item)
}

// ArgTypes returns one field's arguments' resolved types by name.
func (db *DB) ArgTypes(ctx context.Context, item ir.ItemRes, field string) map[string]ir.Ty {
	return db.argTypesQ.Get(ctx, db.engine, argTypesKey{Item: item, Field: field})
}

// UnionMembers returns a union item's resolved member types.
func (db *DB) UnionMembers(ctx context.Context, item ir.ItemRes) []ir.ItemRes {
	return db.unionMembersQ.Get(ctx, db.engine, item)
}

// Implements returns the interfaces item declares via `implements`,
// resolved against item's file's neighborhood.
func (db *DB) Implements(ctx context.Context, item ir.ItemRes) []ir.ItemRes {
	return db.implementsQ.Get(ctx, db.engine, item)
}

// Implementors returns every object/interface in iface's neighborhood
// whose `implements` clause resolves to iface (SPEC_FULL.md §C.2's
// reverse index).
func (db *DB) Implementors(ctx context.Context, iface ir.ItemRes) []ir.ItemRes {
	return db.implementorsQ.Get(ctx, db.engine, iface)
}

// Source exposes the underlying SourceDB for callers building further
// layers (ide.Snapshot).
func (db *DB) Source() *source.DB {
	return db.ir.Source()
}

// Def exposes the underlying DefDB.
func (db *DB) Def() *ir.DB {
	return db.ir
}
