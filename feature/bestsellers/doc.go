// Package bestsellers turns New York Times best-seller snapshots into ranked collections.
//
// The NYT overview endpoint returns every current list in one document. This package fetches
// that document, optionally archives it, extracts typed work records per list, and unions the
// configured lists of each collection into a single deduplicated, rank-ordered sequence.
//
// # Components
//
//   - Client: fetches the overview JSON for a published date (rate limited).
//   - Archive: stores fetched snapshots in object storage and reads them back.
//   - Source: fetch, validate and archive in one step; or load an archived snapshot.
//   - ExtractList: one WorkRecord per list entry, in source order, nothing dropped.
//   - BuildCollections: merges lists per TargetGroup, keeping the best rank per work.
//
// Records never carry a catalog identifier; resolution happens in core/reconcile through
// the Identity capability.
package bestsellers
