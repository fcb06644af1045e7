// Package catalog is the Audiobookshelf side of a sync.
//
// Store reads the catalog: library lookup, book lookups by ISBN and by title plus author,
// and the published collections. Resolver applies the matching strategies in order.
// Collections writes a collection and replaces its membership. Adapter binds the three to
// the run transaction for core/reconcile.
//
// Every lookup is confined to one library through libraryItems (mediaId, libraryId).
// Membership rows are always rewritten in full with "order" 1..N.
//
// The Feature exposes the collections over HTTP in service mode:
//
//	GET  /collections         collections of the library with member counts
//	GET  /collections/:name   ordered members of one collection
//	POST /sync?dry_run=true   trigger a run (not registered when read only)
package catalog
