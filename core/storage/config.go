package storage

import "time"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the host of the S3 compatible service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the name of the bucket that is catalogued.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	// It must be set so that presigning never has to look the bucket location up.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PresignMinutes is how long a presigned access URL stays valid.
	PresignMinutes int `mapstructure:"presign_minutes" default:"30"`
}

// PresignTTL returns the lifetime of presigned URLs, falling back to 30 minutes.
func (c Config) PresignTTL() time.Duration {
	if c.PresignMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.PresignMinutes) * time.Minute
}
