package config

// TracingConfig holds OpenTelemetry tracing configuration
type TracingConfig struct {
	// Enabled installs a real tracer provider; otherwise spans are dropped
	Enabled bool `mapstructure:"enabled"`

	// Service name reported on every span
	ServiceName string `mapstructure:"service_name" validate:"required"`

	// Exporter: stdout
	Exporter string `mapstructure:"exporter" validate:"required,oneof=stdout"`

	// Fraction of root spans sampled, 0..1
	SampleRatio float64 `mapstructure:"sample_ratio" validate:"min=0,max=1"`
}
