// Package metrics exports dispatcher statistics to Prometheus.
//
// The collector reads dispatch.Stats on every scrape:
//
//	var cfg metrics.Config
//	config.MustLoad(&cfg)
//
//	d := dispatch.New(dispatch.WithLogger(log))
//	metrics.MustRegister(prometheus.DefaultRegisterer, cfg, d)
//
// With the default configuration the exported series are prefixed with
// notifier_dispatch_, e.g. notifier_dispatch_dispatches_total{mode="async"}.
//
// # Configuration
//
//	type Config struct {
//		Namespace string `env:"METRICS_NAMESPACE" envDefault:"notifier"`
//		Subsystem string `env:"METRICS_SUBSYSTEM" envDefault:"dispatch"`
//	}
package metrics
