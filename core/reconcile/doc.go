// Package reconcile runs one best-seller reconciliation against the catalog: every
// configured collection is resolved to catalog identifiers and then republished, all inside a
// single exclusive transaction.
//
// # Architecture
//
// The reconcile system consists of three parts:
//
// 1. Plan: the enrich and filter pass. Each record of each group is resolved through the
// adapter; unresolved records and repeated identifiers are dropped. Nothing is written.
//
// 2. Apply: every planned group is synced through the adapter, replacing its membership.
//
// 3. Run: opens the transaction (retrying on a busy catalog), looks up the scope, plans,
// applies and commits. Any error rolls the whole batch back, so partial group updates are never
// visible. A dry run performs the same work and rolls back at the end.
//
// The Runner collapses concurrent triggers of the same run into one execution.
//
// # Adapters
//
// The catalog-specific lookups and writes live behind the Adapter interface
// (see feature/catalog). The engine only knows Identity values, never concrete source types.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter:   catalog.NewAdapter(cfg.Sync.StrictTitleMatch),
//	    ScopeName: "books",
//	    Groups:    groups,
//	}
//	result, err := reconcile.Run(ctx, spec, db, reconcile.ReconcileOptions{})
package reconcile
