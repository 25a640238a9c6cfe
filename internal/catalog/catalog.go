package catalog

import (
	"context"
	"errors"
	"time"

	member "Girder/internal/calc/member"
)

// ErrNotFound is returned when no section exists for a designation.
var ErrNotFound = errors.New("section not found")

// Entry is one catalog row: a section designation with its resolved
// geometric and material properties.
type Entry struct {
	Designation string                   `json:"designation"`
	Section     member.SectionProperties `json:"section"`
	Steel       member.SteelProperties   `json:"steel"`
}

// Metadata is the lightweight probe callers poll to decide whether their
// cached ListAll snapshot is stale.
type Metadata struct {
	Count        int       `json:"count"`
	ContentHash  string    `json:"content_hash"`
	LastModified time.Time `json:"last_modified"`
}

// Catalog is the designation-keyed property store. The analysis engine
// never touches it directly; handlers resolve properties through it
// before invoking the engine.
type Catalog interface {
	Lookup(ctx context.Context, designation string) (Entry, error)
	ListAll(ctx context.Context) ([]Entry, error)
	Metadata(ctx context.Context) (Metadata, error)
}
