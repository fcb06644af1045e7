package catalog

import (
	"context"

	"bestseller-sync/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service serves read access to the published collections and triggers runs.
type Service struct {
	db      *gorm.DB
	runner  *reconcile.Runner
	library string
	logger  *zap.Logger
}

// NewService creates a catalog service for the named library.
func NewService(db *gorm.DB, runner *reconcile.Runner, library string, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		runner:  runner,
		library: library,
		logger:  logger,
	}
}

// ListCollections returns the collections of the library.
func (s *Service) ListCollections(ctx context.Context) ([]CollectionSummary, error) {
	store := NewStore(s.db)
	libraryID, err := store.LibraryID(ctx, s.library)
	if err != nil {
		return nil, err
	}
	return store.Collections(ctx, libraryID)
}

// GetCollection returns the ordered membership of a collection.
func (s *Service) GetCollection(ctx context.Context, name string) (*CollectionDetail, error) {
	store := NewStore(s.db)
	libraryID, err := store.LibraryID(ctx, s.library)
	if err != nil {
		return nil, err
	}
	return store.Collection(ctx, libraryID, name)
}

// Sync triggers a run. shared reports that the caller joined a run already in progress.
func (s *Service) Sync(ctx context.Context, dryRun bool) (*reconcile.RunResult, bool, error) {
	result, shared, err := s.runner.Trigger(ctx, reconcile.ReconcileOptions{DryRun: dryRun})
	if err != nil {
		return nil, shared, err
	}
	s.logger.Info("Sync finished",
		zap.Bool("dry_run", dryRun),
		zap.Bool("shared", shared),
		zap.Bool("committed", result.Committed),
		zap.Int("resolved", result.Plan.Summary.Resolved),
		zap.Int("unresolved", result.Plan.Summary.Unresolved))
	return result, shared, nil
}
