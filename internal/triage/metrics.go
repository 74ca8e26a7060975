package triage

import (
	"errors"

	"github.com/alexanderramin/sehat/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for the triage subsystem.
type Metrics struct {
	ClassificationsTotal *prometheus.CounterVec
	ErrorsTotal          *prometheus.CounterVec
	SelectedSymptoms     prometheus.Histogram
	TransitionsTotal     *prometheus.CounterVec
}

// NewMetrics registers and returns triage metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ClassificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sehat_classifications_total",
			Help: "Total successful classifications by severity and matched rule.",
		}, []string{"severity", "rule"}),
		ErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sehat_classification_errors_total",
			Help: "Total failed classifications by error kind.",
		}, []string{"kind"}),
		SelectedSymptoms: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sehat_selected_symptoms",
			Help:    "Number of symptoms selected per classification.",
			Buckets: prometheus.LinearBuckets(1, 1, 9), // 1 .. 9
		}),
		TransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sehat_session_transitions_total",
			Help: "Total session actions (toggle, submit, reset) by source and target state.",
		}, []string{"action", "from", "to"}),
	}

	reg.MustRegister(
		m.ClassificationsTotal,
		m.ErrorsTotal,
		m.SelectedSymptoms,
		m.TransitionsTotal,
	)

	return m
}

// Observer returns an Observer that increments the corresponding metrics.
func (m *Metrics) Observer() Observer {
	return metricsObserver{m: m}
}

type metricsObserver struct {
	m *Metrics
}

func (o metricsObserver) OnClassify(e ClassifyEvent) {
	if e.Err != nil {
		o.m.ErrorsTotal.WithLabelValues(errorKind(e.Err)).Inc()
		return
	}
	o.m.ClassificationsTotal.WithLabelValues(string(e.Severity), e.Rule).Inc()
	o.m.SelectedSymptoms.Observe(float64(len(e.Symptoms)))
}

func (o metricsObserver) OnTransition(e TransitionEvent) {
	o.m.TransitionsTotal.WithLabelValues(e.Action, string(e.From), string(e.To)).Inc()
}

func errorKind(err error) string {
	var mk *domain.MissingKeyError
	var us *domain.UnknownSymptomError
	switch {
	case errors.Is(err, domain.ErrInsufficientInput):
		return "insufficient_input"
	case errors.Is(err, domain.ErrUnsupportedLanguage):
		return "unsupported_language"
	case errors.As(err, &us):
		return "unknown_symptom"
	case errors.As(err, &mk):
		return "missing_key"
	default:
		return "other"
	}
}
