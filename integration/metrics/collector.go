package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/notifier/core/dispatch"
)

// StatsProvider is satisfied by *dispatch.Dispatcher.
type StatsProvider interface {
	Stats() dispatch.Stats
}

// Collector exports dispatcher counters as Prometheus metrics. Values are read
// from the provider on every scrape, so nothing has to be updated on the
// dispatch path.
type Collector struct {
	provider StatsProvider

	dispatches         *prometheus.Desc
	observersNotified  *prometheus.Desc
	observerFailures   *prometheus.Desc
	contractViolations *prometheus.Desc
	passThrough        *prometheus.Desc
	activeWorkers      *prometheus.Desc
	lastActivity       *prometheus.Desc
}

// NewCollector creates a collector for the given provider.
func NewCollector(cfg Config, provider StatsProvider) (*Collector, error) {
	if provider == nil {
		return nil, ErrNilStatsProvider
	}
	if strings.TrimSpace(cfg.Namespace) == "" {
		return nil, ErrEmptyNamespace
	}

	name := func(metric string) string {
		return prometheus.BuildFQName(cfg.Namespace, cfg.Subsystem, metric)
	}

	return &Collector{
		provider: provider,
		dispatches: prometheus.NewDesc(name("dispatches_total"),
			"Total number of dispatches by mode", []string{"mode"}, nil),
		observersNotified: prometheus.NewDesc(name("observers_notified_total"),
			"Total number of observer invocations", nil, nil),
		observerFailures: prometheus.NewDesc(name("observer_failures_total"),
			"Total number of observer errors and panics", nil, nil),
		contractViolations: prometheus.NewDesc(name("contract_violations_total"),
			"Total number of result contract violations", nil, nil),
		passThrough: prometheus.NewDesc(name("pass_through_total"),
			"Total number of observer errors propagated to the caller", nil, nil),
		activeWorkers: prometheus.NewDesc(name("active_workers"),
			"Asynchronous dispatches currently running", nil, nil),
		lastActivity: prometheus.NewDesc(name("last_activity_timestamp_seconds"),
			"Unix time of the last dispatch", nil, nil),
	}, nil
}

// MustRegister creates a collector and registers it with reg. It panics on error.
func MustRegister(reg prometheus.Registerer, cfg Config, provider StatsProvider) *Collector {
	c, err := NewCollector(cfg, provider)
	if err != nil {
		panic(err)
	}
	reg.MustRegister(c)
	return c
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.dispatches
	ch <- c.observersNotified
	ch <- c.observerFailures
	ch <- c.contractViolations
	ch <- c.passThrough
	ch <- c.activeWorkers
	ch <- c.lastActivity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.provider.Stats()

	ch <- prometheus.MustNewConstMetric(c.dispatches, prometheus.CounterValue, float64(s.SyncDispatches), "sync")
	ch <- prometheus.MustNewConstMetric(c.dispatches, prometheus.CounterValue, float64(s.AsyncDispatches), "async")
	ch <- prometheus.MustNewConstMetric(c.observersNotified, prometheus.CounterValue, float64(s.ObserversNotified))
	ch <- prometheus.MustNewConstMetric(c.observerFailures, prometheus.CounterValue, float64(s.ObserverFailures))
	ch <- prometheus.MustNewConstMetric(c.contractViolations, prometheus.CounterValue, float64(s.ContractViolations))
	ch <- prometheus.MustNewConstMetric(c.passThrough, prometheus.CounterValue, float64(s.PassThrough))
	ch <- prometheus.MustNewConstMetric(c.activeWorkers, prometheus.GaugeValue, float64(s.ActiveWorkers))

	var last float64
	if !s.LastActivityAt.IsZero() {
		last = float64(s.LastActivityAt.UnixNano()) / 1e9
	}
	ch <- prometheus.MustNewConstMetric(c.lastActivity, prometheus.GaugeValue, last)
}
