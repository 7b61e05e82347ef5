// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file (if present) on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/notifier/core/config"
//
//	type MetricsConfig struct {
//		Namespace string `env:"METRICS_NAMESPACE" envDefault:"notifier"`
//	}
//
//	var cfg MetricsConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process. Different types are
// cached independently, so logger.Config and metrics.Config are parsed separately.
package config
