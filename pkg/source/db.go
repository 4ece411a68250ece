package source

import (
	"context"
	"sync"

	"github.com/andyyu2004/gqls/pkg/incremental"
)

// DB is SourceDB (spec.md §4.2): the bottom layer of the query stack. It
// owns exactly two kinds of input — `projects` and one `file_data` per
// file — and exposes `files()` and `project_of(file)` as their own
// memoized queries, so that editing one project's membership or one
// file's text never invalidates a neighborhood computed over a disjoint
// project.
type DB struct {
	engine   *incremental.Engine
	projects *incremental.Input[Projects]

	mu         sync.RWMutex
	fileInputs map[FileID]*incremental.Input[FileData]

	filesQ     *incremental.Query[struct{}, []FileID]
	projectOfQ *incremental.Query[FileID, []FileID]
}

// NewDB wires a SourceDB on top of e. The engine is shared with every
// other layer (DefDB, TyDB) built against the same project.
func NewDB(e *incremental.Engine) *DB {
	db := &DB{
		engine:     e,
		projects:   incremental.NewInput(Projects.Equal),
		fileInputs: make(map[FileID]*incremental.Input[FileData]),
	}
	db.filesQ = incremental.NewQuery("source.files", equalFileIDSlice, func(ctx context.Context, e *incremental.Engine, _ struct{}) []FileID {
		return db.projects.Get(ctx, e).Files()
	})
	db.projectOfQ = incremental.NewQuery("source.project_of", equalFileIDSlice, func(ctx context.Context, e *incremental.Engine, file FileID) []FileID {
		return db.projects.Get(ctx, e).Neighborhood(file)
	})
	return db
}

func equalFileIDSlice(a, b []FileID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SetProjects installs a new project-configuration input, at High
// durability per spec.md §4.1 (project membership changes far less often
// than file text).
func (db *DB) SetProjects(projects Projects) {
	db.projects.Set(db.engine, projects, incremental.High)
}

// SetFileData installs data as file's current content, creating the
// file's input on first use. Durability is Low: file edits are the
// hottest write path.
func (db *DB) SetFileData(file FileID, data FileData) {
	db.mu.Lock()
	in, ok := db.fileInputs[file]
	if !ok {
		in = incremental.NewInput(FileData.Equal)
		db.fileInputs[file] = in
	}
	db.mu.Unlock()
	in.Set(db.engine, data, incremental.Low)
}

// Projects returns the current project-configuration input.
func (db *DB) Projects(ctx context.Context) Projects {
	return db.projects.Get(ctx, db.engine)
}

// FileData returns file's current text and syntax tree. Calling it for a
// FileID that was never passed to SetFileData returns the zero FileData.
func (db *DB) FileData(ctx context.Context, file FileID) FileData {
	db.mu.RLock()
	in, ok := db.fileInputs[file]
	db.mu.RUnlock()
	if !ok {
		return FileData{}
	}
	return in.Get(ctx, db.engine)
}

// FileText is a thin projection of FileData for callers that only need
// the text.
func (db *DB) FileText(ctx context.Context, file FileID) string {
	return db.FileData(ctx, file).Text
}

// Files returns the union of every project's members.
func (db *DB) Files(ctx context.Context) []FileID {
	return db.filesQ.Get(ctx, db.engine, struct{}{})
}

// ProjectOf returns file's neighborhood: the union of files in every
// project containing it, file itself included. It is its own memoized
// query (spec.md §4.2) so that an edit to an unrelated project leaves a
// file's neighborhood, and everything computed over it, cache-valid.
func (db *DB) ProjectOf(ctx context.Context, file FileID) []FileID {
	return db.projectOfQ.Get(ctx, db.engine, file)
}

// Engine returns the shared incremental engine, for layers built on top
// of this DB (DefDB, TyDB) that need to register their own queries
// against it.
func (db *DB) Engine() *incremental.Engine {
	return db.engine
}
