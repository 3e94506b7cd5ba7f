// Package config provides configuration management for the bucket catalog.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded with godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, allowed CORS origin, body limit
//   - Storage: S3/MinIO endpoint, credentials, bucket, region, presign lifetime
//   - Log: Logging level and format
//   - Metrics: Prometheus endpoint toggle and path
//
// Defaults come from the `default` struct tags; every key can be overridden by
// an upper-case environment variable such as STORAGE_BUCKET.
//
// Validate refuses to start without bucket, access key, secret key and region
// instead of silently running against empty values.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
