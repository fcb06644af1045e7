package cmd

import (
	"context"
	"errors"
	"time"

	"bestseller-sync/feature/bestsellers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// archiveCmd is the parent command for snapshot archive operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect archived snapshots",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the published dates available in the archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		archive, err := newArchive(cfg)
		if err != nil {
			return err
		}
		if archive == nil {
			return errors.New("storage is disabled; set STORAGE_ENABLED=true")
		}

		dates, err := archive.Dates(context.Background())
		if err != nil {
			return err
		}
		for _, d := range dates {
			l.Info("Archived snapshot", zap.String("date", d), zap.String("key", archive.Key(d)))
		}
		l.Info("Archive listing", zap.Int("snapshots", len(dates)))
		return nil
	},
}

var archiveFetchCmd = &cobra.Command{
	Use:   "fetch [date]",
	Short: "Fetch a snapshot and store it without syncing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		archive, err := newArchive(cfg)
		if err != nil {
			return err
		}
		if archive == nil {
			return errors.New("storage is disabled; set STORAGE_ENABLED=true")
		}

		date := cfg.Source.Date(time.Now())
		if len(args) == 1 {
			date = args[0]
		}

		ctx := context.Background()
		data, err := bestsellers.NewClient(cfg.Source).FetchOverview(ctx, date)
		if err != nil {
			return err
		}
		overview, err := bestsellers.Decode(data)
		if err != nil {
			return err
		}
		key, err := archive.Save(ctx, date, data)
		if err != nil {
			return err
		}
		l.Info("Snapshot stored", zap.String("key", key), zap.Int("lists", len(overview.Results.Lists)))
		return nil
	},
}

func init() {
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveFetchCmd)
	RootCmd.AddCommand(archiveCmd)
}
