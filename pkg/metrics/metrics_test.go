package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "pricing-service")

	m.ObserveQuote("month")
	m.ObserveQuote("month")
	m.ObserveQuote("")
	m.ObserveCache("local", "hit")
	m.ObserveAvailabilityDegraded("fail_open")
	m.ObserveBookingSubmission("created")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.QuotesTotal.WithLabelValues("month")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.QuotesTotal.WithLabelValues("none")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookupsTotal.WithLabelValues("local", "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AvailabilityDegradedTotal.WithLabelValues("fail_open")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingSubmissionsTotal.WithLabelValues("created")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveQuote("day")
		m.ObserveCache("remote", "miss")
		m.ObserveAvailabilityDegraded("fail_closed")
		m.ObserveBookingSubmission("rejected")
	})
}
