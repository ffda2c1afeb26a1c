package metrics

import (
	"errors"
	"strconv"

	"fileproc/internal/processor/core/runner"
	"fileproc/internal/processor/domain"
	_errors "fileproc/pkg/errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fileproc"

const OutcomeSuccess = "success"

// Metrics holds the session collectors. Each instance owns its collectors,
// so tests can use a private registry.
type Metrics struct {
	sessionsTotal    *prometheus.CounterVec
	sessionsActive   *prometheus.GaugeVec
	sessionDuration  *prometheus.HistogramVec
	sessionsRejected prometheus.Counter
	bytesReceived    *prometheus.CounterVec
	bytesSent        *prometheus.CounterVec
	commandDuration  *prometheus.HistogramVec
	commandsTotal    *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		sessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_total",
				Help:      "Finished sessions by operation and outcome",
			},
			[]string{"operation", "outcome"}, // outcome: success or an error kind
		),
		sessionsActive: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Sessions currently in progress",
			},
			[]string{"operation"},
		),
		sessionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "session_duration_seconds",
				Help:      "End-to-end session duration in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"operation", "outcome"},
		),
		sessionsRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_rejected_total",
				Help:      "Sessions refused because the concurrency limit was reached",
			},
		),
		bytesReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "received_bytes_total",
				Help:      "Input bytes written to scratch files",
			},
			[]string{"operation"},
		),
		bytesSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sent_bytes_total",
				Help:      "Output bytes streamed back to clients",
			},
			[]string{"operation"},
		),
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "External converter run time in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"operation"},
		),
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "External converter runs by result",
			},
			[]string{"operation", "result"}, // result: exit code, "timeout" or "error"
		),
	}
}

// Collectors returns everything Register adds, for callers that manage
// their own registry.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.sessionsTotal,
		m.sessionsActive,
		m.sessionDuration,
		m.sessionsRejected,
		m.bytesReceived,
		m.bytesSent,
		m.commandDuration,
		m.commandsTotal,
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RegisterAuditQueue exposes the audit recorder's drop counter.
func RegisterAuditQueue(reg prometheus.Registerer, dropped func() uint64) error {
	return reg.Register(prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_dropped_total",
			Help:      "Audit entries dropped because the queue was full",
		},
		func() float64 { return float64(dropped()) },
	))
}

func (m *Metrics) SessionStarted(op domain.Operation) {
	m.sessionsActive.WithLabelValues(op.String()).Inc()
}

func (m *Metrics) SessionFinished(s *domain.Session) {
	op := s.Op.String()
	outcome := Outcome(s)

	m.sessionsActive.WithLabelValues(op).Dec()
	m.sessionsTotal.WithLabelValues(op, outcome).Inc()
	m.sessionDuration.WithLabelValues(op, outcome).Observe(s.Duration().Seconds())
	m.bytesReceived.WithLabelValues(op).Add(float64(s.BytesIn))
	m.bytesSent.WithLabelValues(op).Add(float64(s.BytesOut))
}

func (m *Metrics) SessionRejected() {
	m.sessionsRejected.Inc()
}

func (m *Metrics) CommandFinished(op domain.Operation, res runner.Result, err error) {
	result := strconv.Itoa(res.ExitCode)
	switch {
	case errors.Is(err, _errors.ErrCommandTimeout):
		result = "timeout"
	case err != nil:
		result = "error"
	}
	m.commandsTotal.WithLabelValues(op.String(), result).Inc()
	m.commandDuration.WithLabelValues(op.String()).Observe(res.Duration.Seconds())
}

// Outcome is the label value for a finished session.
func Outcome(s *domain.Session) string {
	if s.State == domain.StateDone {
		return OutcomeSuccess
	}
	if kind, ok := domain.KindOf(s.Err); ok {
		return string(kind)
	}
	return "unknown"
}
