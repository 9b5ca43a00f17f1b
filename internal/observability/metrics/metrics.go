package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters/histograms for the quote-intake and
// admin-dashboard flows.
type IntakeMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	emailsTotal        *prometheus.CounterVec
	statusUpdatesTotal *prometheus.CounterVec
	intakeLatency      prometheus.Histogram
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "djservices",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Total contact-form submissions by outcome",
		}, []string{"outcome"}),
		emailsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "djservices",
			Subsystem: "intake",
			Name:      "emails_total",
			Help:      "Total notification/confirmation email sends",
		}, []string{"kind", "status"}),
		statusUpdatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "djservices",
			Subsystem: "admin",
			Name:      "status_updates_total",
			Help:      "Total submission status updates",
		}, []string{"status"}),
		intakeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "djservices",
			Subsystem: "intake",
			Name:      "latency_seconds",
			Help:      "Latency of accepted contact-form submissions",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.emailsTotal, m.statusUpdatesTotal, m.intakeLatency)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *IntakeMetrics) ObserveEmail(kind string, ok bool) {
	if m == nil {
		return
	}
	status := "error"
	if ok {
		status = "sent"
	}
	m.emailsTotal.WithLabelValues(kind, status).Inc()
}

func (m *IntakeMetrics) ObserveStatusUpdate(status string) {
	if m == nil {
		return
	}
	m.statusUpdatesTotal.WithLabelValues(status).Inc()
}

func (m *IntakeMetrics) ObserveIntakeLatency(seconds float64) {
	if m == nil {
		return
	}
	m.intakeLatency.Observe(seconds)
}
