package syntax_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andyyu2004/gqls/pkg/syntax"
)

const sample = `
type Query {
  user(id: ID!): User
}

type User implements Node {
  id: ID!
  name: String
}
`

func TestParseProducesItems(t *testing.T) {
	tree, err := syntax.Parse(context.Background(), sample)
	require.NoError(t, err)
	require.False(t, tree.RootNode().HasError())

	items := syntax.ChildrenOfKind(tree.RootNode(), syntax.KindItem)
	require.Len(t, items, 2)
}

func TestSoleNamedChildUnwrapsItem(t *testing.T) {
	tree, err := syntax.Parse(context.Background(), sample)
	require.NoError(t, err)

	item := syntax.ChildrenOfKind(tree.RootNode(), syntax.KindItem)[0]
	typedef := syntax.SoleNamedChild(item)
	require.Equal(t, syntax.KindTypeDefinition, typedef.Type())

	object := syntax.SoleNamedChild(typedef)
	require.Equal(t, syntax.KindObjectTypeDefinition, object.Type())

	name := syntax.NameNode(object)
	require.NotNil(t, name)
	require.Equal(t, "Query", syntax.Text(name, sample))
}

func TestNamedNodeAtLocatesFieldName(t *testing.T) {
	tree, err := syntax.Parse(context.Background(), sample)
	require.NoError(t, err)

	// "name" field of User, line 8 (0-indexed row 7): the identifier spans
	// columns 2..6, and the point sits inside it at column 3.
	node := syntax.NamedNodeAt(tree.RootNode(), syntax.Point{Row: 7, Column: 3})
	require.NotNil(t, node)
	require.Equal(t, "name", syntax.Text(node, sample))
}

func TestChildOfKindImplementsInterfaces(t *testing.T) {
	tree, err := syntax.Parse(context.Background(), sample)
	require.NoError(t, err)

	items := syntax.ChildrenOfKind(tree.RootNode(), syntax.KindItem)
	userTypedef := syntax.SoleNamedChild(syntax.SoleNamedChild(items[1]))
	implements := syntax.ChildOfKind(userTypedef, syntax.KindImplementsInterfaces)
	require.NotNil(t, implements)

	named := syntax.ChildrenOfKind(implements, syntax.KindNamedType)
	require.Len(t, named, 1)
	require.Equal(t, "Node", syntax.Text(syntax.NameNode(named[0]), sample))
}
