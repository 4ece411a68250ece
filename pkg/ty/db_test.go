package ty_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyyu2004/gqls/pkg/incremental"
	"github.com/andyyu2004/gqls/pkg/ir"
	"github.com/andyyu2004/gqls/pkg/source"
	"github.com/andyyu2004/gqls/pkg/ty"
)

func TestImplementsAndImplementors(t *testing.T) {
	e := incremental.New()
	sdb := source.NewDB(e)
	defdb := ir.NewDB(sdb)
	tydb := ty.NewDB(defdb)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo}})
	data, err := source.Parse(context.Background(), `
		interface Node { id: ID! }
		type User implements Node { id: ID! name: String }
	`)
	require.NoError(t, err)
	sdb.SetFileData(foo, data)

	ctx := context.Background()
	nodeRes := defdb.Resolve(ctx, foo, ir.Name{Text: "Node"})
	require.Len(t, nodeRes, 1)
	userRes := defdb.Resolve(ctx, foo, ir.Name{Text: "User"})
	require.Len(t, userRes, 1)

	implements := tydb.Implements(ctx, userRes[0])
	require.Len(t, implements, 1)
	assert.Equal(t, nodeRes[0], implements[0])

	implementors := tydb.Implementors(ctx, nodeRes[0])
	require.Len(t, implementors, 1)
	assert.Equal(t, userRes[0], implementors[0])
}

func TestFieldTypesAndArgTypes(t *testing.T) {
	e := incremental.New()
	sdb := source.NewDB(e)
	defdb := ir.NewDB(sdb)
	tydb := ty.NewDB(defdb)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo}})
	data, err := source.Parse(context.Background(), `type Query { user(id: ID!): User } type User { name: String }`)
	require.NoError(t, err)
	sdb.SetFileData(foo, data)

	ctx := context.Background()
	queryRes := defdb.Resolve(ctx, foo, ir.Name{Text: "Query"})
	require.Len(t, queryRes, 1)

	fields := tydb.FieldTypes(ctx, queryRes[0])
	require.Contains(t, fields, "user")
	assert.Equal(t, "User", fields["user"].NamedName().Text)

	args := tydb.ArgTypes(ctx, queryRes[0], "user")
	require.Contains(t, args, "id")
	assert.Equal(t, ir.TyKindNonNull, args["id"].Kind)
}

func TestUnionMembers(t *testing.T) {
	e := incremental.New()
	sdb := source.NewDB(e)
	defdb := ir.NewDB(sdb)
	tydb := ty.NewDB(defdb)
	in := source.NewInterner()

	foo := in.Intern("foo.graphqls")
	sdb.SetProjects(source.Projects{"app": {foo}})
	data, err := source.Parse(context.Background(), `type A { a: Int } type B { b: Int } union AB = A | B`)
	require.NoError(t, err)
	sdb.SetFileData(foo, data)

	ctx := context.Background()
	abRes := defdb.Resolve(ctx, foo, ir.Name{Text: "AB"})
	require.Len(t, abRes, 1)

	members := tydb.UnionMembers(ctx, abRes[0])
	assert.Len(t, members, 2)
}
