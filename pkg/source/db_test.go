package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyyu2004/gqls/pkg/incremental"
	"github.com/andyyu2004/gqls/pkg/source"
)

func TestProjectOfIsOwnNeighborhoodQuery(t *testing.T) {
	e := incremental.New()
	db := source.NewDB(e)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	bar := in.Intern("bar.graphqls")
	baz := in.Intern("baz.graphqls")

	db.SetProjects(source.Projects{
		"app":   {foo, bar},
		"other": {baz},
	})

	ctx := context.Background()
	neighborhood := db.ProjectOf(ctx, foo)
	require.ElementsMatch(t, []source.FileID{foo, bar}, neighborhood)

	other := db.ProjectOf(ctx, baz)
	require.ElementsMatch(t, []source.FileID{baz}, other)
}

func TestEditingOneFileDoesNotAffectAnothersProjectOf(t *testing.T) {
	e := incremental.New()
	db := source.NewDB(e)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	bar := in.Intern("bar.graphqls")
	db.SetProjects(source.Projects{"app": {foo, bar}})

	ctx := context.Background()
	db.SetFileData(foo, source.FileData{Text: "type Foo { bar: Bar }"})
	before := db.ProjectOf(ctx, bar)

	db.SetFileData(foo, source.FileData{Text: "type Foo { bar: Bar baz: Int }"})
	after := db.ProjectOf(ctx, bar)

	assert.Equal(t, before, after)
}

func TestSetProjectsWithSameValueIsEarlyCutoff(t *testing.T) {
	e := incremental.New()
	db := source.NewDB(e)
	in := source.NewInterner()
	foo := in.Intern("foo.graphqls")

	projects := source.Projects{"app": {foo}}
	db.SetProjects(projects)
	ctx := context.Background()
	_ = db.Files(ctx)

	calls := 0
	countProjects := incremental.NewQuery("count-projects", func(a, b int) bool { return a == b }, func(ctx context.Context, e *incremental.Engine, _ struct{}) int {
		calls++
		return len(db.Projects(ctx))
	})
	require.Equal(t, 1, countProjects.Get(ctx, e, struct{}{}))
	require.Equal(t, 1, calls)

	rev1 := e.Revision()
	db.SetProjects(source.Projects{"app": {foo}}) // same content, new map value
	assert.Greater(t, e.Revision(), rev1, "revision still advances on every write")

	assert.Equal(t, 1, countProjects.Get(ctx, e, struct{}{}))
	assert.Equal(t, 1, calls, "a dependent query must not recompute after an equal SetProjects")
}

func TestFilesUnionsAllProjects(t *testing.T) {
	e := incremental.New()
	db := source.NewDB(e)
	in := source.NewInterner()
	foo, bar, baz := in.Intern("foo"), in.Intern("bar"), in.Intern("baz")

	db.SetProjects(source.Projects{
		"a": {foo, bar},
		"b": {bar, baz},
	})

	files := db.Files(context.Background())
	assert.ElementsMatch(t, []source.FileID{foo, bar, baz}, files)
}

func TestFileDataRoundTrips(t *testing.T) {
	e := incremental.New()
	db := source.NewDB(e)
	in := source.NewInterner()
	foo := in.Intern("foo")

	db.SetFileData(foo, source.FileData{Text: "type Foo {}"})
	assert.Equal(t, "type Foo {}", db.FileText(context.Background(), foo))
}
