package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce         sync.Once
	formSubmissionsTotal *prometheus.CounterVec
	emailDeliveriesTotal *prometheus.CounterVec
	formLatencySeconds   *prometheus.HistogramVec
)

// RegisterMetrics initialises the Prometheus collectors used by the form pipeline.
func RegisterMetrics() {
	registerOnce.Do(func() {
		formSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Total number of form submissions processed, by kind and outcome.",
		}, []string{"kind", "outcome"})

		emailDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "email_deliveries_total",
			Help: "Total number of transactional email delivery attempts, by template and outcome.",
		}, []string{"template", "outcome"})

		formLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "form_latency_seconds",
			Help:    "Latency distribution for form endpoints.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0},
		}, []string{"method", "route"})

		prometheus.MustRegister(formSubmissionsTotal, emailDeliveriesTotal, formLatencySeconds)
	})
}

// FormSubmissions exposes the counter for processed form submissions.
func FormSubmissions() *prometheus.CounterVec {
	RegisterMetrics()
	return formSubmissionsTotal
}

// EmailDeliveries exposes the counter for email delivery attempts.
func EmailDeliveries() *prometheus.CounterVec {
	RegisterMetrics()
	return emailDeliveriesTotal
}

// FormLatency exposes the latency histogram for form endpoints.
func FormLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return formLatencySeconds
}
