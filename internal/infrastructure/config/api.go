package config

import "time"

// APIVersion is the only version segment the Traikoa API serves
const APIVersion = "v1"

// APIConfig holds Traikoa API client configuration
type APIConfig struct {
	// Base URL for the Traikoa API, without the version segment
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Version path segment inserted after BaseURL
	Version string `mapstructure:"version" validate:"required,eq=v1"`

	// Request timeout applied by the HTTP client
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	// Optional client-side rate limiting; zero requests disables it
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=0"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=0"`
}
