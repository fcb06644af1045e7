package reconcile

import (
	"context"
	"errors"
	"fmt"

	"bestseller-sync/core/database"

	"gorm.io/gorm"
)

// ErrNoAdapter is returned when a spec has no adapter configured.
var ErrNoAdapter = errors.New("reconcile spec has no adapter")

// Apply syncs every planned group through the adapter, in plan order.
// It returns the groups written so far and the first error encountered.
func Apply(ctx context.Context, spec *Spec, tx *gorm.DB, plan *ReconcilePlan) ([]SyncedGroup, error) {
	synced := make([]SyncedGroup, 0, len(plan.Groups))
	for _, group := range plan.Groups {
		collectionID, err := spec.Adapter.SyncGroup(ctx, tx, group.Name, plan.ScopeID, group.IDs)
		if err != nil {
			return synced, fmt.Errorf("failed to sync collection %q: %w", group.Name, err)
		}
		synced = append(synced, SyncedGroup{
			Name:         group.Name,
			CollectionID: collectionID,
			Members:      len(group.IDs),
		})
	}
	return synced, nil
}

// Run executes a full reconciliation: scope lookup, Plan and Apply inside one transaction.
// The transaction is begun before any resolution so reads and writes share one snapshot, and it
// is committed only after every group is synced. Any error or panic rolls it back.
// With opts.DryRun the work is done and then rolled back; the result reports Committed=false.
func Run(ctx context.Context, spec *Spec, db *gorm.DB, opts ReconcileOptions) (result *RunResult, err error) {
	if spec.Adapter == nil {
		return nil, ErrNoAdapter
	}

	var tx *gorm.DB
	err = database.WithRetry(ctx, spec.Retry, func() error {
		tx = db.WithContext(ctx).Begin()
		return tx.Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin catalog transaction: %w", err)
	}

	committed := false
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
		if !committed {
			tx.Rollback()
		}
	}()

	scopeID, err := spec.Adapter.ScopeID(ctx, tx, spec.ScopeName)
	if err != nil {
		return nil, err
	}

	plan, err := Plan(ctx, spec, tx, scopeID)
	if err != nil {
		return nil, err
	}

	synced, err := Apply(ctx, spec, tx, plan)
	if err != nil {
		return nil, err
	}

	result = &RunResult{Plan: plan, Synced: synced}
	if opts.DryRun {
		return result, nil
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit catalog transaction: %w", err)
	}
	committed = true
	result.Committed = true

	return result, nil
}
