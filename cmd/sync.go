package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bestseller-sync/core/database"
	"bestseller-sync/core/reconcile"
	"bestseller-sync/feature/bestsellers"

	"github.com/spf13/cobra"
)

var (
	// Flags for the sync command
	dryRunSync      bool
	syncDate        string
	fromArchiveSync bool
)

// syncCmd runs one sync.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the best-seller lists and republish the collections",
	Long: `Fetches the NYT overview, resolves every listed book against the library and replaces
the membership of every configured collection inside a single transaction.

Examples:
  # Publish today's lists
  sync

  # Report what would be written without changing the catalog
  sync --dry-run

  # Re-run an archived week without calling the API
  sync --date 2025-09-28 --from-archive`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Do the whole run and roll it back")
	syncCmd.Flags().StringVar(&syncDate, "date", "", "Published date to sync (YYYY-MM-DD, default today)")
	syncCmd.Flags().BoolVar(&fromArchiveSync, "from-archive", false, "Read the snapshot from the archive instead of the API")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	archive, err := newArchive(cfg)
	if err != nil {
		return err
	}
	source := bestsellers.NewSource(bestsellers.NewClient(cfg.Source), archive, l)

	// The snapshot is fetched before the catalog is opened so no lock is held over the network.
	spec, err := prepareRun(cfg, l, source, syncDate, fromArchiveSync)(ctx)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Catalog)
	if err != nil {
		return err
	}

	result, err := reconcile.Run(ctx, spec, db, reconcile.ReconcileOptions{DryRun: dryRunSync})
	if err != nil {
		return fmt.Errorf("sync failed, catalog unchanged: %w", err)
	}

	printRunReport(l, result)
	if dryRunSync {
		l.Info("Dry-run mode: No changes were made.")
	}
	return nil
}
