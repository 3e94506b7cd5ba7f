package cmd

import (
	"fmt"
	"os"

	"bucket-catalog/core/config"
	"bucket-catalog/core/logger"
	"bucket-catalog/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bucket-catalog",
	Short: "Bucket Catalog Service",
	Long: `Bucket Catalog serves a tagged, filterable listing of the files in an S3 bucket
and accepts new tagged uploads. Every listed file comes with a time-limited signed URL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// env bundles what every command needs to talk to the bucket.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	bucket *storage.Bucket
}

// setup loads and validates configuration, then builds the logger and bucket.
// observer may be nil.
func setup(observer storage.Observer) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &env{
		cfg:    cfg,
		logger: logg,
		bucket: storage.NewBucket(client, cfg.Storage.Bucket, cfg.Storage.PresignTTL(), observer),
	}, nil
}
