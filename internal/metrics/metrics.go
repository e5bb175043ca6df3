package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gomoku"

type Metrics struct {
	moves         *prometheus.CounterVec
	undos         prometheus.Counter
	gamesFinished *prometheus.CounterVec
	sessions      prometheus.Gauge
}

// New registers the game counters on reg. Pass prometheus.NewRegistry() in
// tests to keep them isolated from the default registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Cell selections by outcome and forbidden reason.",
		}, []string{"outcome", "reason"}),
		undos: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "undos_total",
			Help:      "Moves taken back.",
		}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Finished games by winning stone.",
		}, []string{"winner"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently awaiting a move.",
		}),
	}

	reg.MustRegister(m.moves, m.undos, m.gamesFinished, m.sessions)

	return m
}

func (that *Metrics) ObserveMove(outcome, reason string) {
	that.moves.WithLabelValues(outcome, reason).Inc()
}

func (that *Metrics) ObserveUndo() {
	that.undos.Inc()
}

func (that *Metrics) ObserveGameFinished(winner string) {
	that.gamesFinished.WithLabelValues(winner).Inc()
}

func (that *Metrics) SessionStarted() {
	that.sessions.Inc()
}

func (that *Metrics) SessionEnded() {
	that.sessions.Dec()
}
