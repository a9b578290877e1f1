package repository

import "time"

// CacheRepository cachea resultados de simulación serializados, con expiración.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
