package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	hostUp               prometheus.Gauge
	consecutiveFailures  prometheus.Gauge
	filterSynced         prometheus.Gauge
	probeDurationSeconds prometheus.Gauge
	transitionsTotal     *prometheus.CounterVec
}

const (
	prefix = "filterwatch_"
)

func newMetrics(reg *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		hostUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "host_up",
			Help: "Debounced verdict for the monitored host (1: up, 0: down)",
		}),
		consecutiveFailures: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "consecutive_failures",
			Help: "Consecutive failed probes since the last success",
		}),
		filterSynced: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "filter_synced",
			Help: "Whether the device filter object is known to match the verdict (1: synced, 0: pending)",
		}),
		probeDurationSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "probe_duration_seconds",
			Help: "Duration of the most recent probe",
		}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "transitions_total",
			Help: "Verdict transitions since process start",
		}, []string{"direction"}),
	}

	err := register(reg,
		m.hostUp,
		m.consecutiveFailures,
		m.filterSynced,
		m.probeDurationSeconds,
		m.transitionsTotal,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func register(r *prometheus.Registry, cs ...prometheus.Collector) error {
	for i, c := range cs {
		if err := r.Register(c); err != nil {
			for _, c := range cs[:i] {
				r.Unregister(c)
			}

			return err
		}
	}

	return nil
}
