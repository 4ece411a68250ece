package ir_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyyu2004/gqls/pkg/incremental"
	"github.com/andyyu2004/gqls/pkg/ir"
	"github.com/andyyu2004/gqls/pkg/source"
)

func setFile(t *testing.T, sdb *source.DB, file source.FileID, text string) {
	t.Helper()
	data, err := source.Parse(context.Background(), text)
	require.NoError(t, err)
	sdb.SetFileData(file, data)
}

// S1: cross-file resolution.
func TestResolveCrossFile(t *testing.T) {
	e := incremental.New()
	sdb := source.NewDB(e)
	db := ir.NewDB(sdb)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	bar := in.Intern("bar.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo, bar}})
	setFile(t, sdb, foo, "type Foo { bar: Bar }")
	setFile(t, sdb, bar, "type Bar { foo: Foo }")

	ctx := context.Background()
	res := db.Resolve(ctx, foo, ir.Name{Text: "Bar"})
	require.Len(t, res, 1)
	assert.Equal(t, bar, res[0].File)
}

// S2: duplicate definitions.
func TestItemMapAndResolvePreserveDuplicates(t *testing.T) {
	e := incremental.New()
	sdb := source.NewDB(e)
	db := ir.NewDB(sdb)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo}})
	setFile(t, sdb, foo, "type Foo { a: Int } type Foo { b: Int }")

	ctx := context.Background()
	m := db.ItemMap(ctx, foo)
	assert.Len(t, m["Foo"], 2)

	res := db.Resolve(ctx, foo, ir.Name{Text: "Foo"})
	assert.Len(t, res, 2)
}

// S3: extensions.
func TestExtensionIsLoweredAsSeparateItem(t *testing.T) {
	e := incremental.New()
	sdb := source.NewDB(e)
	db := ir.NewDB(sdb)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo}})
	setFile(t, sdb, foo, "type Bar { a: Int } extend type Bar { i: Int! }")

	ctx := context.Background()
	res := db.Resolve(ctx, foo, ir.Name{Text: "Bar"})
	require.Len(t, res, 2)

	items := db.Items(ctx, foo)
	var sawExtension bool
	for _, r := range res {
		item := items.Items.Get(r.Idx)
		td := items.TypeDefinitionOf(item)
		if td.IsExtension {
			sawExtension = true
		}
	}
	assert.True(t, sawExtension, "expected one of Bar's resolutions to be the extension")
}

// S4: unresolved type diagnostic.
func TestUnresolvedTypeDiagnostic(t *testing.T) {
	e := incremental.New()
	sdb := source.NewDB(e)
	db := ir.NewDB(sdb)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo}})
	setFile(t, sdb, foo, "type Foo { bar: Baz }")

	ctx := context.Background()
	items := db.Items(ctx, foo)
	require.Equal(t, 1, items.Items.Len())

	// Items.Items.Len() == 1, arena index 0 is the only item.
	fooRes := ir.ItemRes{File: foo, Idx: 0}
	fooItem := items.Items.Get(0)
	require.Equal(t, "Foo", fooItem.Name.Text)

	body := db.Body(ctx, fooRes)
	require.Len(t, body.Diagnostics, 1)
	assert.Equal(t, ir.DiagnosticUnresolvedType, body.Diagnostics[0].Kind)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, ir.TyKindErr, body.Fields[0].Ty.Kind)
	assert.Equal(t, "Baz", body.Fields[0].Ty.NamedName().Text)
}

func TestBuiltinDirectivesResolveWithoutLocalDefinition(t *testing.T) {
	e := incremental.New()
	sdb := source.NewDB(e)
	db := ir.NewDB(sdb)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo}})
	setFile(t, sdb, foo, "type Foo { bar: Int @deprecated(reason: \"x\") }")

	ctx := context.Background()
	res := db.Resolve(ctx, foo, ir.Name{Text: ir.BuiltinDeprecated})
	require.Len(t, res, 1)

	body := db.Body(ctx, res[0])
	assert.Equal(t, ir.ItemBodyDirective, body.Kind)
}
