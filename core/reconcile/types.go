package reconcile

import "bestseller-sync/core/database"

// Identity is the part of a source record the resolver needs.
type Identity struct {
	// Title is the free-text title as published by the source.
	Title string `json:"title"`

	// Authors is the ordered, deduplicated list of contributor names.
	Authors []string `json:"authors"`

	// ISBN is the raw ISBN text, possibly empty.
	ISBN string `json:"isbn"`
}

// Record is anything that can be resolved against the catalog.
type Record interface {
	Identity() Identity
}

// Group is a named collection and its candidate records, best first.
type Group struct {
	Name    string
	Records []Record
}

// Strategy describes how a record was matched.
type Strategy string

const (
	// StrategyISBN matched on the normalized ISBN.
	StrategyISBN Strategy = "isbn"
	// StrategyTitleAuthor matched on exact title plus a contributor pattern.
	StrategyTitleAuthor Strategy = "title_author"
)

// Resolution is the outcome of resolving one record. An empty ID means unresolved.
type Resolution struct {
	ID       string   `json:"id,omitempty"`
	Strategy Strategy `json:"strategy,omitempty"`
}

// Resolved reports whether a catalog identifier was found.
func (r Resolution) Resolved() bool {
	return r.ID != ""
}

// OutcomeType classifies what happened to a record during planning.
type OutcomeType string

const (
	// OutcomeKept means the record resolved and is part of the membership.
	OutcomeKept OutcomeType = "kept"
	// OutcomeUnresolved means no catalog entity matched; the record is dropped.
	OutcomeUnresolved OutcomeType = "unresolved"
	// OutcomeDuplicate means an earlier record of the group resolved to the same identifier.
	OutcomeDuplicate OutcomeType = "duplicate"
)

// Outcome records the planning decision for a single source record.
type Outcome struct {
	Identity   Identity    `json:"identity"`
	Resolution Resolution  `json:"resolution"`
	Type       OutcomeType `json:"type"`
}

// PlannedGroup is a group after the enrich and filter pass.
type PlannedGroup struct {
	// Name is the collection name.
	Name string `json:"name"`

	// IDs is the ordered, duplicate-free list of catalog identifiers to publish.
	IDs []string `json:"ids"`

	// Outcomes has one entry per source record, in source order.
	Outcomes []Outcome `json:"outcomes"`
}

// ReconcilePlan contains the resolved groups of a run and aggregate counts.
type ReconcilePlan struct {
	// ScopeID is the catalog scope (library) the run is confined to.
	ScopeID string `json:"scope_id"`

	// Groups holds one planned group per configured collection, in configured order.
	Groups []PlannedGroup `json:"groups"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// Groups is the number of collections planned.
	Groups int `json:"groups"`

	// Records is the number of source records considered.
	Records int `json:"records"`

	// Resolved counts records kept in a membership.
	Resolved int `json:"resolved"`

	// ByISBN counts kept records matched by ISBN.
	ByISBN int `json:"by_isbn"`

	// ByTitleAuthor counts kept records matched by title and author.
	ByTitleAuthor int `json:"by_title_author"`

	// Unresolved counts records without a catalog match.
	Unresolved int `json:"unresolved"`

	// Duplicates counts records dropped because their identifier was already kept.
	Duplicates int `json:"duplicates"`
}

// SyncedGroup reports one collection written by Apply.
type SyncedGroup struct {
	Name         string `json:"name"`
	CollectionID string `json:"collection_id"`
	Members      int    `json:"members"`
}

// RunResult is the outcome of a full run.
type RunResult struct {
	Plan      *ReconcilePlan `json:"plan"`
	Synced    []SyncedGroup  `json:"synced"`
	Committed bool           `json:"committed"`
}

// Spec defines one reconciliation run.
type Spec struct {
	// Adapter provides catalog-specific lookups and writes.
	Adapter Adapter

	// ScopeName is the name of the catalog scope (library).
	ScopeName string

	// Groups are the collections to publish, in configured order.
	Groups []Group

	// Retry controls how beginning the transaction is retried on a busy catalog.
	Retry database.RetryConfig
}

// ReconcileOptions controls run behavior.
type ReconcileOptions struct {
	// DryRun performs the whole run and then rolls back instead of committing.
	DryRun bool
}
