package source

import "sync"

// FileID is an opaque, interned identifier for a file path. It is stable
// for the life of the process and compares by identity: two FileIDs are
// equal iff they name the same path.
type FileID int32

// Interner assigns a stable FileID to each distinct path it sees. It is
// the Go counterpart of the virtual filesystem's path-interning table,
// which spec.md §1 explicitly keeps out of this core's scope — callers
// (the CLI, tests) own an Interner and pass FileIDs into the DB.
type Interner struct {
	mu   sync.Mutex
	byID []string
	toID map[string]FileID
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{toID: make(map[string]FileID)}
}

// Intern returns path's FileID, assigning a new one if path hasn't been
// seen before.
func (in *Interner) Intern(path string) FileID {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.toID[path]; ok {
		return id
	}
	id := FileID(len(in.byID))
	in.byID = append(in.byID, path)
	in.toID[path] = id
	return id
}

// Path returns the path id was interned from. Panics if id was never
// issued by this Interner.
func (in *Interner) Path(id FileID) string {
	in.mu.Lock()
	defer in.mu.Unlock()
	if int(id) < 0 || int(id) >= len(in.byID) {
		panic("source: Path called with a FileID this Interner never issued")
	}
	return in.byID[id]
}
