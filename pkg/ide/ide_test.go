package ide_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyyu2004/gqls/pkg/ide"
	"github.com/andyyu2004/gqls/pkg/incremental"
	"github.com/andyyu2004/gqls/pkg/source"
	"github.com/andyyu2004/gqls/pkg/syntax"
)

func newSnapshot(t *testing.T, text string) (*ide.Snapshot, *source.Interner, source.FileID) {
	t.Helper()
	e := incremental.New()
	sdb := source.NewDB(e)
	in := source.NewInterner()
	foo := in.Intern("foo.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo}})
	data, err := source.Parse(context.Background(), text)
	require.NoError(t, err)
	sdb.SetFileData(foo, data)
	return ide.NewSnapshot(sdb), in, foo
}

func TestGotoDefinitionAcrossFiles(t *testing.T) {
	e := incremental.New()
	sdb := source.NewDB(e)
	in := source.NewInterner()
	foo := in.Intern("foo.graphqls")
	bar := in.Intern("bar.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo, bar}})

	ctx := context.Background()
	fooData, err := source.Parse(ctx, "type Foo { bar: Bar }")
	require.NoError(t, err)
	sdb.SetFileData(foo, fooData)
	barData, err := source.Parse(ctx, "type Bar { foo: Foo }")
	require.NoError(t, err)
	sdb.SetFileData(bar, barData)

	snap := ide.NewSnapshot(sdb)
	locs := snap.GotoDefinition(ctx, foo, syntax.Point{Row: 0, Column: 17})
	require.Len(t, locs, 1)
	assert.Equal(t, bar, locs[0].File)
	// "type Bar { foo: Foo }": the "Bar" identifier spans columns 5..8 on
	// row 0 — the defined name's own span, not the whole item's range.
	assert.Equal(t, syntax.Point{Row: 0, Column: 5}, locs[0].Range.StartPoint)
	assert.Equal(t, syntax.Point{Row: 0, Column: 8}, locs[0].Range.EndPoint)
}

func TestDiagnosticsReportsUnresolvedType(t *testing.T) {
	snap, _, foo := newSnapshot(t, "type Foo { bar: Baz }")
	diags := snap.Diagnostics(context.Background(), foo)
	require.Len(t, diags, 1)
	assert.Equal(t, "E0001", diags[0].Code)
}

func TestCompletionsInDocumentContextIncludeKeywords(t *testing.T) {
	snap, _, foo := newSnapshot(t, "")
	items := snap.Completions(context.Background(), foo, syntax.Point{Row: 0, Column: 0})
	var sawType bool
	for _, item := range items {
		if item.Label == "type" {
			sawType = true
		}
	}
	assert.True(t, sawType)
}
