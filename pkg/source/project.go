package source

import "sort"

// Projects is the full project-configuration input: a mapping from
// project name to the set of files it contains. A file may belong to
// more than one project.
type Projects map[string][]FileID

// Equal reports whether p and other name the same projects with the same
// member files (order-insensitive). This is the Equal spec.md §4.1
// requires for early cutoff on the `projects` input: setting an
// unchanged project map must not invalidate `project_of` or `resolve`.
func (p Projects) Equal(other Projects) bool {
	if len(p) != len(other) {
		return false
	}
	for name, files := range p {
		otherFiles, ok := other[name]
		if !ok || !sameFileSet(files, otherFiles) {
			return false
		}
	}
	return true
}

func sameFileSet(a, b []FileID) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := sortedCopy(a), sortedCopy(b)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func sortedCopy(ids []FileID) []FileID {
	out := make([]FileID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Files returns the union of every project's members, deduplicated and
// sorted by FileID.
func (p Projects) Files() []FileID {
	seen := make(map[FileID]struct{})
	for _, files := range p {
		for _, f := range files {
			seen[f] = struct{}{}
		}
	}
	out := make([]FileID, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ProjectsOf returns the names of every project containing file.
func (p Projects) ProjectsOf(file FileID) []string {
	var names []string
	for name, files := range p {
		for _, f := range files {
			if f == file {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// Neighborhood returns the union of files belonging to any project that
// contains file, file itself included even if it belongs to no project.
func (p Projects) Neighborhood(file FileID) []FileID {
	seen := map[FileID]struct{}{file: {}}
	for _, files := range p {
		member := false
		for _, f := range files {
			if f == file {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		for _, f := range files {
			seen[f] = struct{}{}
		}
	}
	out := make([]FileID, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
