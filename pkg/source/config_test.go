package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andyyu2004/gqls/pkg/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestManifestResolveMatchesRecursiveGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app", "user.graphqls"), "type User {}")
	writeFile(t, filepath.Join(dir, "app", "nested", "order.graphqls"), "type Order {}")
	writeFile(t, filepath.Join(dir, "admin", "role.graphqls"), "type Role {}")
	writeFile(t, filepath.Join(dir, "README.md"), "not a schema")

	writeFile(t, filepath.Join(dir, "gqls.toml"), `
[projects.app]
include = ["app/**/*.graphqls"]

[projects.admin]
include = ["app/**/*.graphqls", "admin/**/*.graphqls"]
`)

	path, manifest, err := source.FindManifest(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "gqls.toml"), path)

	in := source.NewInterner()
	projects, err := manifest.Resolve(in, dir)
	require.NoError(t, err)

	require.Len(t, projects["app"], 2)
	require.Len(t, projects["admin"], 3)
}

func TestFindManifestStopsAtGitBoundary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	path, manifest, err := source.FindManifest(sub)
	require.NoError(t, err)
	require.Empty(t, path)
	require.Nil(t, manifest)
}
