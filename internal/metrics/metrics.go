package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors describing scrum runs
type Metrics struct {
	Runs                 *prometheus.CounterVec
	MissingMembers       prometheus.Gauge
	ReconciliationFaults *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scrum",
			Name:      "runs_total",
			Help:      "Daily scrum runs by trigger and result.",
		}, []string{"trigger", "result"}),
		MissingMembers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "scrum",
			Name:      "missing_members",
			Help:      "Members who did not post in the previous day's thread, as of the last run.",
		}),
		ReconciliationFaults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scrum",
			Name:      "reconciliation_faults_total",
			Help:      "Faults swallowed while reconciling attendance, by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(m.Runs, m.MissingMembers, m.ReconciliationFaults)
	return m
}

func (m *Metrics) ObserveRun(trigger, result string, missing int) {
	m.Runs.WithLabelValues(trigger, result).Inc()
	if result == "success" {
		m.MissingMembers.Set(float64(missing))
	}
}

func (m *Metrics) ObserveFault(op string) {
	m.ReconciliationFaults.WithLabelValues(op).Inc()
}
