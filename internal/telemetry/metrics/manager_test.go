package metrics_test

import (
	"testing"

	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	promcl "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Counters(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()
	require.NotNil(t, m)
	require.NotNil(t, reg)

	m.CounterDaysLogged.Inc()
	m.CounterDaysLogged.Inc()
	m.CounterNewPRs.Inc()
	m.CounterAnalyticsRequests.WithLabelValues("summary").Inc()
	m.CounterAnalyticsRequests.WithLabelValues("summary").Inc()
	m.CounterAnalyticsRequests.WithLabelValues("cardio").Inc()
	m.CounterLeaderboardRequests.WithLabelValues("volume").Inc()

	// https://pkg.go.dev/github.com/prometheus/client_golang/prometheus/testutil
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterDaysLogged))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterNewPRs))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterAnalyticsRequests.WithLabelValues("summary")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterAnalyticsRequests.WithLabelValues("cardio")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterLeaderboardRequests.WithLabelValues("volume")))

	analyticsCount, err := testutil.GatherAndCount(reg, "liftledger_test_server_analytics_requests")
	require.NoError(t, err)
	assert.Equal(t, 2, analyticsCount)
}

func TestManager_RequestDurationHistogram(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()

	duration := 0.1234
	m.HistogramRequestDuration.
		WithLabelValues("list-days", "GET", "200").
		Observe(duration)

	gathered, err := reg.Gather()
	require.NoError(t, err)
	require.NotNil(t, gathered)

	var foundDurationHistogram *promcl.MetricFamily
	for _, mf := range gathered {
		if *mf.Name == "liftledger_test_server_request_duration_seconds" {
			foundDurationHistogram = mf
			break
		}
	}
	if foundDurationHistogram == nil {
		t.Fatal("found duration histogram is nil")
	}

	require.NotNil(t, foundDurationHistogram.Metric)
	require.Len(t, foundDurationHistogram.Metric, 1)
	foundHistMetric := foundDurationHistogram.Metric[0]
	require.NotNil(t, foundHistMetric)
	require.NotNil(t, foundHistMetric.Histogram)
	assert.Equal(t, duration, *foundHistMetric.Histogram.SampleSum)
	assert.Equal(t, uint64(1), *foundHistMetric.Histogram.SampleCount)
}

func TestManager_LifeSignal(t *testing.T) {
	m := metrics.NewTestManager()

	m.GaugeLifeSignal.Set(1)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GaugeLifeSignal))

	m.GaugeRequests.Inc()
	m.GaugeRequests.Inc()
	m.GaugeRequests.Dec()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GaugeRequests))
}
