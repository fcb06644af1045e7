package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Adapter defines the catalog-specific part of a run.
// Every method receives the run transaction; implementations must not open their own.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "audiobookshelf").
	Name() string

	// ScopeID returns the identifier of the named scope. A missing scope is an error.
	ScopeID(ctx context.Context, tx *gorm.DB, name string) (string, error)

	// Resolve maps a record identity to at most one catalog identifier within the scope.
	// A miss is a zero Resolution with a nil error; only query failures are errors.
	Resolve(ctx context.Context, tx *gorm.DB, identity Identity, scopeID string) (Resolution, error)

	// SyncGroup ensures the named collection exists in the scope and replaces its membership
	// with ids, in order. It returns the collection identifier.
	SyncGroup(ctx context.Context, tx *gorm.DB, name, scopeID string, ids []string) (string, error)
}
