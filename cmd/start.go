package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"bucket-catalog/core/loader"
	"bucket-catalog/core/logger"
	"bucket-catalog/core/metrics"
	"bucket-catalog/core/middleware/cors"
	"bucket-catalog/core/middleware/rayid"
	"bucket-catalog/feature/catalog"
	"bucket-catalog/feature/health"
	"bucket-catalog/feature/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bucket-catalog/docs/swagger"
)

// @title Bucket Catalog API
// @version 1.0
// @description Tagged listing and upload API for a single S3 bucket.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bucket catalog server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := metrics.New()

		// 1. Configuration, logger and bucket
		e, err := setup(m.Storage())
		if err != nil {
			return err
		}
		logg := e.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Initialize Fiber App
		app := fiber.New(e.cfg.Server.Fiber())

		// 3. Middleware
		// RayID first so every later log line and response carries it
		app.Use(rayid.New())
		if e.cfg.Metrics.Enabled {
			app.Use(m.Middleware())
		}
		app.Use(cors.New(cors.Config{Origin: e.cfg.Server.CorsOrigin}))
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

		// 4. Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		if e.cfg.Metrics.Enabled {
			app.Get(e.cfg.Metrics.Path, m.Handler())
		}

		// 5. Features
		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(e.bucket, logg))
		mgr.Register(upload.NewFeature(e.bucket, logg))
		mgr.Register(health.NewFeature(e.bucket, logg))
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 6. Start Server
		errs := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("port", e.cfg.Server.Port),
				zap.String("bucket", e.bucket.Name()),
			)
			errs <- app.Listen(":" + e.cfg.Server.Port)
		}()

		// 7. Graceful Shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errs:
			return err
		case <-sig:
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
