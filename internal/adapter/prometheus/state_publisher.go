package prometheus

import (
	"context"
	"log/slog"

	"github.com/filterwatch/filterwatch/internal/ports"
)

type StatePublisher struct {
	logger   *slog.Logger
	exporter *Exporter
}

func NewStatePublisher(logger *slog.Logger, exporter *Exporter) *StatePublisher {
	return &StatePublisher{
		logger:   logger,
		exporter: exporter,
	}
}

func (p *StatePublisher) Publish(ctx context.Context, status ports.HostStatus) error {
	p.logger.DebugContext(ctx, "Publishing host status",
		slog.Group("publish",
			slog.Bool("up", status.Up),
			slog.Int("consecutive_failures", status.ConsecutiveFailures),
			slog.Bool("filter_synced", status.FilterSynced),
		))

	m := p.exporter.metrics

	m.hostUp.Set(boolGauge(status.Up))
	m.consecutiveFailures.Set(float64(status.ConsecutiveFailures))
	m.filterSynced.Set(boolGauge(status.FilterSynced))
	m.probeDurationSeconds.Set(status.ProbeDuration.Seconds())

	if status.Transition != "" {
		m.transitionsTotal.WithLabelValues(status.Transition).Inc()
	}

	return nil
}

func boolGauge(v bool) float64 {
	if v {
		return 1.0
	}

	return 0.0
}
