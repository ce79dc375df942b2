package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simcluster/comparison"
	"github.com/katalvlaran/simcluster/threshold"
)

func TestMetricsObserveRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	a, b := &comparison.Submission{Name: "a"}, &comparison.Submission{Name: "b"}
	good := Job{Name: "good", Comparisons: []*comparison.Comparison{{First: a, Second: b, Similarity: 0.9}}}
	bad := Job{Name: "bad", Comparisons: []*comparison.Comparison{{First: a, Second: b, Similarity: -1}}}

	r, err := NewRunner(threshold.New(), WithMetrics(m))
	require.NoError(t, err)
	_, err = r.Run(context.Background(), []Job{good, good})
	require.NoError(t, err)
	_, err = r.Run(context.Background(), []Job{bad})
	require.Error(t, err)

	require.Equal(t, 2.0, testutil.ToFloat64(m.runs.WithLabelValues(statusOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(statusError)))
	require.Equal(t, 3, testutil.CollectAndCount(m.runs)+testutil.CollectAndCount(m.duration))
}

func TestMetricsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	var already prometheus.AlreadyRegisteredError
	require.True(t, errors.As(err, &already))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() { m.observe(time.Millisecond, 3, nil) })
}
