package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Simulations cuenta las simulaciones por tipo y resultado.
	Simulations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulations_total",
			Help: "Total de simulaciones ejecutadas",
		},
		[]string{"kind", "status"},
	)

	// CacheHits cuenta los aciertos y fallos del cache de simulaciones.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulation_cache_total",
			Help: "Accesos al cache de simulaciones",
		},
		[]string{"kind", "result"},
	)

	// RemindersDispatched cuenta los recordatorios de agenda despachados.
	RemindersDispatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminders_dispatched_total",
			Help: "Recordatorios de agenda despachados",
		},
	)
)
