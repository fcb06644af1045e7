package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"bestseller-sync/core/database"
	"bestseller-sync/core/loader"
	"bestseller-sync/core/logger"
	"bestseller-sync/core/middleware/auth"
	"bestseller-sync/core/middleware/rayid"
	"bestseller-sync/core/reconcile"
	"bestseller-sync/feature/bestsellers"
	"bestseller-sync/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the collections API",
	Long:  `Starts the HTTP server exposing the published collections and an on-demand sync trigger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration and Logger
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Connect to the catalog
		db, err := database.Connect(cfg.Catalog)
		if err != nil {
			return err
		}
		logg.Info("Connected to catalog", zap.String("path", cfg.Catalog.Path))

		// 3. Source and runner
		archive, err := newArchive(cfg)
		if err != nil {
			return err
		}
		source := bestsellers.NewSource(bestsellers.NewClient(cfg.Source), archive, logg)
		runner := reconcile.NewRunner(db, prepareRun(cfg, logg, source, "", false))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(db, runner, cfg.Sync.Library, cfg.Server.ReadOnly, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		if cfg.Server.ApiKey == "" {
			logg.Warn("SERVER_API_KEY is empty; the API is unauthenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
