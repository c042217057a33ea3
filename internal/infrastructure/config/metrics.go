package config

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether API request metrics are collected
	Enabled bool `mapstructure:"enabled"`

	// Namespace prefixed to every metric name
	Namespace string `mapstructure:"namespace" validate:"required"`
}
