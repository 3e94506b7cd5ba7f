package metrics

// Config holds configuration for the Prometheus endpoint.
type Config struct {
	// Enabled exposes the metrics endpoint when true.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is the route serving the Prometheus exposition format.
	Path string `mapstructure:"path" default:"/metrics"`
}
