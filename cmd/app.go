package cmd

import (
	"context"
	"fmt"
	"time"

	"bestseller-sync/core/config"
	"bestseller-sync/core/logger"
	"bestseller-sync/core/reconcile"
	"bestseller-sync/core/storage"
	"bestseller-sync/feature/bestsellers"
	"bestseller-sync/feature/catalog"

	"go.uber.org/zap"
)

// bootstrap loads the configuration and creates the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// newArchive returns the snapshot archive, or nil when storage is disabled.
func newArchive(cfg *config.Config) (*bestsellers.Archive, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return bestsellers.NewArchive(client, cfg.Storage.Bucket, cfg.Storage.Prefix), nil
}

// prepareRun returns a PrepareFunc that obtains the snapshot and merges the configured
// collections. An empty date means the configured (or current) published date at each call.
func prepareRun(cfg *config.Config, l *zap.Logger, source *bestsellers.Source, date string, fromArchive bool) reconcile.PrepareFunc {
	return func(ctx context.Context) (*reconcile.Spec, error) {
		d := date
		if d == "" {
			d = cfg.Source.Date(time.Now())
		}

		overview, err := source.Snapshot(ctx, d, fromArchive)
		if err != nil {
			return nil, err
		}

		spec := &reconcile.Spec{
			Adapter:   catalog.NewAdapter(cfg.Sync.StrictTitleMatch),
			ScopeName: cfg.Sync.Library,
			Retry:     cfg.Catalog.Retry(),
		}
		for _, c := range bestsellers.BuildCollections(overview, cfg.Sync.Collections) {
			if len(c.Missing) > 0 {
				l.Debug("Lists not in snapshot", zap.String("collection", c.Name), zap.Strings("lists", c.Missing))
			}
			spec.Groups = append(spec.Groups, c.Group())
		}
		return spec, nil
	}
}

// printRunReport logs the outcome of a run.
func printRunReport(l *zap.Logger, result *reconcile.RunResult) {
	for i, g := range result.Synced {
		l.Info("Updated collection",
			zap.String("name", g.Name),
			zap.String("id", g.CollectionID),
			zap.Int("books", g.Members),
		)
		for _, o := range result.Plan.Groups[i].Outcomes {
			if o.Type == reconcile.OutcomeUnresolved {
				l.Debug("Not in library",
					zap.String("collection", g.Name),
					zap.String("title", o.Identity.Title),
					zap.Strings("authors", o.Identity.Authors),
					zap.String("isbn", o.Identity.ISBN),
				)
			}
		}
	}

	s := result.Plan.Summary
	l.Info("Sync report",
		zap.Int("collections", s.Groups),
		zap.Int("records", s.Records),
		zap.Int("resolved", s.Resolved),
		zap.Int("by_isbn", s.ByISBN),
		zap.Int("by_title_author", s.ByTitleAuthor),
		zap.Int("unresolved", s.Unresolved),
		zap.Int("duplicates", s.Duplicates),
		zap.Bool("committed", result.Committed),
	)
}
