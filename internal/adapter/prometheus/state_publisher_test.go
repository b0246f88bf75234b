package prometheus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/filterwatch/filterwatch/internal/ports"
)

func TestStatePublisher_PublishUpStatus(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(ctx, ports.HostStatus{
		Up:            true,
		FilterSynced:  true,
		ProbeDuration: 250 * time.Millisecond,
	})
	require.NoError(t, err)

	requireMetric(t, 1.0, exporter.metrics.hostUp)
	requireMetric(t, 0.0, exporter.metrics.consecutiveFailures)
	requireMetric(t, 1.0, exporter.metrics.filterSynced)
	requireMetric(t, 0.25, exporter.metrics.probeDurationSeconds)
}

func TestStatePublisher_PublishDownTransition(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(ctx, ports.HostStatus{
		Up:                  false,
		ConsecutiveFailures: 3,
		FilterSynced:        false,
		Transition:          "down",
	})
	require.NoError(t, err)

	requireMetric(t, 0.0, exporter.metrics.hostUp)
	requireMetric(t, 3.0, exporter.metrics.consecutiveFailures)
	requireMetric(t, 0.0, exporter.metrics.filterSynced)
	requireMetric(t, 1.0, exporter.metrics.transitionsTotal.WithLabelValues("down"))
}

func TestStatePublisher_SteadyStateDoesNotCountTransitions(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	for i := 0; i < 3; i++ {
		err := publisher.Publish(ctx, ports.HostStatus{Up: true, FilterSynced: true})
		require.NoError(t, err)
	}

	requireMetric(t, 0.0, exporter.metrics.transitionsTotal.WithLabelValues("up"))
	requireMetric(t, 0.0, exporter.metrics.transitionsTotal.WithLabelValues("down"))
}

func newTestPublisher(t *testing.T) (*Exporter, *StatePublisher) {
	t.Helper()

	exporter, err := NewExporter()
	require.NoError(t, err)

	publisher := NewStatePublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), exporter)

	return exporter, publisher
}

func requireMetric(t *testing.T, expected float64, metric prometheus.Collector) {
	t.Helper()

	require.InDelta(t, expected, testutil.ToFloat64(metric), 0.001)
}
