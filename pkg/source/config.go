package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a gqls.toml project manifest: a set of named projects, each
// naming the schema files it contains by glob pattern. This is purely a
// convenience for standalone/batch use (the CLI, tests); the Writer API
// itself (DB.SetProjects) takes an already-resolved Projects value and
// has no opinion on where it came from, matching spec.md §4.2/§6.
type Manifest struct {
	Projects map[string]ManifestProject `toml:"projects"`
}

// ManifestProject lists the glob patterns (resolved relative to the
// manifest's own directory) that make up one project.
type ManifestProject struct {
	Include []string `toml:"include"`
}

// LoadManifest reads and parses a gqls.toml file at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("source: parsing %s: %w", path, err)
	}
	return &m, nil
}

// FindManifest searches for gqls.toml starting at dir and walking up to
// parent directories, stopping at a .git boundary. Mirrors the teacher's
// own project.go config-discovery walk.
func FindManifest(dir string) (string, *Manifest, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("source: resolving %s: %w", dir, err)
	}
	for {
		path := filepath.Join(dir, "gqls.toml")
		if _, err := os.Stat(path); err == nil {
			m, err := LoadManifest(path)
			if err != nil {
				return "", nil, err
			}
			return path, m, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", nil, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}

// Resolve walks configDir (the manifest's own directory) and interns
// every file matching one of each project's Include patterns, returning
// a Projects value ready for DB.SetProjects along with the interned
// FileIDs' paths recorded in in.
func (m *Manifest) Resolve(in *Interner, configDir string) (Projects, error) {
	matches := make(map[string][]string, len(m.Projects)) // project -> relative paths
	err := filepath.WalkDir(configDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(configDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for name, proj := range m.Projects {
			for _, pattern := range proj.Include {
				if matchGlob(pattern, rel) {
					matches[name] = append(matches[name], rel)
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("source: resolving manifest at %s: %w", configDir, err)
	}

	projects := make(Projects, len(matches))
	for name, rels := range matches {
		sort.Strings(rels)
		ids := make([]FileID, len(rels))
		for i, rel := range rels {
			ids[i] = in.Intern(filepath.Join(configDir, rel))
		}
		projects[name] = ids
	}
	return projects, nil
}

// matchGlob matches a slash-separated pattern against a slash-separated
// relative path, treating "**" as "zero or more path segments" and every
// other segment as a filepath.Match pattern. There's no third-party glob
// matcher in the example corpus to ground this on, so it's hand-rolled.
func matchGlob(pattern, path string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

func matchSegments(pattern, path []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}
	if pattern[0] == "**" {
		if matchSegments(pattern[1:], path) {
			return true
		}
		if len(path) == 0 {
			return false
		}
		return matchSegments(pattern, path[1:])
	}
	if len(path) == 0 {
		return false
	}
	ok, err := filepath.Match(pattern[0], path[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], path[1:])
}
