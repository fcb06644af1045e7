package catalog

import (
	"context"
	"time"

	"bestseller-sync/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Adapter implements reconcile.Adapter for an Audiobookshelf catalog.
type Adapter struct {
	strict bool
	now    func() time.Time
	newID  func() string
}

// NewAdapter creates the catalog adapter. strict enables unique title+author matching.
func NewAdapter(strict bool) *Adapter {
	return &Adapter{strict: strict, now: time.Now, newID: uuid.NewString}
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return "audiobookshelf"
}

// ScopeID returns the id of the named library.
func (a *Adapter) ScopeID(ctx context.Context, tx *gorm.DB, name string) (string, error) {
	return NewStore(tx).LibraryID(ctx, name)
}

// Resolve matches an identity against the books of the library.
func (a *Adapter) Resolve(ctx context.Context, tx *gorm.DB, identity reconcile.Identity, libraryID string) (reconcile.Resolution, error) {
	return NewResolver(NewStore(tx), a.strict).Resolve(ctx, identity, libraryID)
}

// SyncGroup writes the named collection and its membership.
func (a *Adapter) SyncGroup(ctx context.Context, tx *gorm.DB, name, libraryID string, ids []string) (string, error) {
	c := NewCollections(tx)
	c.now, c.newID = a.now, a.newID
	return c.SyncGroup(ctx, name, libraryID, ids)
}
