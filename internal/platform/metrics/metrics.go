package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for license actions and the activation authority.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// License action outcomes by action and outcome
	LicenseActions *prometheus.CounterVec

	// License action latency by action
	LicenseActionLatency *prometheus.HistogramVec

	// Activation authority call outcomes
	ActivationOutcome *prometheus.CounterVec

	ActivationLatency prometheus.Histogram
}

// New creates a Metrics instance registered on the default Prometheus registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a Metrics instance registered on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LicenseActions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "license_portal_license_actions_total",
			Help: "Total license actions by action and outcome",
		}, []string{"action", "outcome"}), // action: "generate", "move"

		LicenseActionLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "license_portal_license_action_duration_seconds",
			Help:    "Duration of license actions including the activation call",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"action"}),

		ActivationOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "license_portal_activation_calls_total",
			Help: "Total activation authority calls by outcome",
		}, []string{"outcome"}), // outcome: "issued", "rejected", "error"

		ActivationLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "license_portal_activation_call_duration_seconds",
			Help:    "Duration of activation authority calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// ObserveLicenseAction records the outcome and duration of a license action.
func (m *Metrics) ObserveLicenseAction(action, outcome string, d time.Duration) {
	if m != nil {
		m.LicenseActions.WithLabelValues(action, outcome).Inc()
		m.LicenseActionLatency.WithLabelValues(action).Observe(d.Seconds())
	}
}

// ObserveActivation records the outcome and duration of an activation call.
func (m *Metrics) ObserveActivation(outcome string, d time.Duration) {
	if m != nil {
		m.ActivationOutcome.WithLabelValues(outcome).Inc()
		m.ActivationLatency.Observe(d.Seconds())
	}
}
