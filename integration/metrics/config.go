package metrics

// Config holds the metric naming settings.
type Config struct {
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"notifier"`
	Subsystem string `env:"METRICS_SUBSYSTEM" envDefault:"dispatch"`
}
