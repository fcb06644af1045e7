package reconcile

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// PrepareFunc builds the spec for a run. It is where the source snapshot is fetched, so it
// runs before the catalog transaction is opened.
type PrepareFunc func(ctx context.Context) (*Spec, error)

// Runner triggers runs on demand (service mode).
// Concurrent triggers with the same options share a single execution.
type Runner struct {
	db      *gorm.DB
	prepare PrepareFunc
	sf      singleflight.Group
}

// NewRunner creates a runner that prepares each run with prepare and executes it against db.
func NewRunner(db *gorm.DB, prepare PrepareFunc) *Runner {
	return &Runner{db: db, prepare: prepare}
}

// Trigger prepares and executes a run. shared is true when the result came from a run that
// another caller had already started.
func (r *Runner) Trigger(ctx context.Context, opts ReconcileOptions) (result *RunResult, shared bool, err error) {
	key := "commit"
	if opts.DryRun {
		key = "dry-run"
	}

	v, err, shared := r.sf.Do(key, func() (interface{}, error) {
		spec, err := r.prepare(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare run: %w", err)
		}
		return Run(ctx, spec, r.db, opts)
	})
	if err != nil {
		return nil, shared, err
	}

	return v.(*RunResult), shared, nil
}
