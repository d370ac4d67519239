package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registration flow.
type Metrics struct {
	// Link validation outcomes by reason ("eligible" when usable)
	LinkValidations *prometheus.CounterVec

	// Submission outcomes: success, invalid_form, backend_error
	Submissions *prometheus.CounterVec

	// Duration of the create-registration backend call
	SubmitLatency prometheus.Histogram

	// Flow instances currently held in memory
	ActiveFlows prometheus.Gauge
}

// New registers all flow metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LinkValidations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "guestlink_link_validations_total",
			Help: "Total registration link validations by outcome reason",
		}, []string{"reason"}),

		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "guestlink_submissions_total",
			Help: "Total registration submission attempts by outcome",
		}, []string{"outcome"}),

		SubmitLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "guestlink_submission_duration_seconds",
			Help:    "Duration of the create registration backend call",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		ActiveFlows: f.NewGauge(prometheus.GaugeOpts{
			Name: "guestlink_active_flows",
			Help: "Registration flows currently held in memory",
		}),
	}
}

func (m *Metrics) IncrementValidation(reason string) {
	if m != nil {
		m.LinkValidations.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) IncrementSubmission(outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveSubmitLatency(d time.Duration) {
	if m != nil {
		m.SubmitLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) SetActiveFlows(n int) {
	if m != nil {
		m.ActiveFlows.Set(float64(n))
	}
}
