package cmd

import (
	"context"

	"bestseller-sync/core/database"
	"bestseller-sync/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// schemaCmd checks that the catalog can be synced without writing anything.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the catalog schema and library",
	Long:  `Verifies that the Audiobookshelf database has every table and column a sync uses and that the configured library exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		db, err := database.Connect(cfg.Catalog)
		if err != nil {
			return err
		}

		if err := database.CheckSchema(db, catalog.RequiredSchema()); err != nil {
			return err
		}

		libraryID, err := catalog.NewStore(db).LibraryID(context.Background(), cfg.Sync.Library)
		if err != nil {
			return err
		}

		l.Info("Catalog schema OK",
			zap.String("path", cfg.Catalog.Path),
			zap.String("library", cfg.Sync.Library),
			zap.String("library_id", libraryID),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(schemaCmd)
}
