package service

import "time"

const (
	// Las simulaciones son determinísticas; el TTL solo acota la memoria de Redis.
	SimulationCacheTTL = 24 * time.Hour

	// Límites de plazos para la recomendación
	MaxTermRangeMonths = 120
)

const (
	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMinimizePayment  = "minimize_payment"
	PreferenceBalanced         = "balanced"
)
