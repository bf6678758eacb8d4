package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the notification
// pipeline. A nil *Metrics is valid and turns every observation into a no-op,
// which keeps unit tests free of registry state.
type Metrics struct {
	DispatchesTotal  prometheus.Counter
	DispatchDuration prometheus.Histogram
	RecipientsFound  prometheus.Histogram

	// Labels: channel={broadcast,authority_email,email,sms}, outcome={success,failure}.
	ChannelAttempts *prometheus.CounterVec

	AuthoritySuppressed prometheus.Counter
	DispatchQueueDrops  prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DispatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ocean",
			Name:      "dispatches_total",
			Help:      "Total hazard notification fan-out passes.",
		}),
		DispatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ocean",
			Name:      "dispatch_duration_seconds",
			Help:      "Duration of a complete dispatch pass.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		RecipientsFound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ocean",
			Name:      "recipients_found",
			Help:      "Recipients returned by the proximity query per dispatch.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),
		ChannelAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ocean",
			Name:      "channel_attempts_total",
			Help:      "Delivery attempts by channel and outcome.",
		}, []string{"channel", "outcome"}),
		AuthoritySuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ocean",
			Name:      "authority_suppressed_total",
			Help:      "Authority emails skipped by the deduplication ledger.",
		}),
		DispatchQueueDrops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ocean",
			Name:      "dispatch_queue_drops_total",
			Help:      "Hazard events dropped because the dispatch queue was full.",
		}),
	}

	prometheus.MustRegister(
		m.DispatchesTotal,
		m.DispatchDuration,
		m.RecipientsFound,
		m.ChannelAttempts,
		m.AuthoritySuppressed,
		m.DispatchQueueDrops,
	)
	return m
}

func (m *Metrics) ObserveDispatch(seconds float64, recipients int) {
	if m == nil {
		return
	}
	m.DispatchesTotal.Inc()
	m.DispatchDuration.Observe(seconds)
	m.RecipientsFound.Observe(float64(recipients))
}

func (m *Metrics) IncChannelAttempt(channel string, ok bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	m.ChannelAttempts.WithLabelValues(channel, outcome).Inc()
}

func (m *Metrics) IncAuthoritySuppressed() {
	if m == nil {
		return
	}
	m.AuthoritySuppressed.Inc()
}

func (m *Metrics) IncQueueDrop() {
	if m == nil {
		return
	}
	m.DispatchQueueDrops.Inc()
}
