package http

import (
	"sync"
	"time"
)

const (
	idleClientTTL = 1 * time.Hour
	sweepInterval = 30 * time.Minute
)

type clientWindow struct {
	remaining int
	windowAt  time.Time
}

// RateLimiter limita las simulaciones por IP: cada cliente dispone de una
// cuota fija que se restablece completa al cumplirse la ventana.
type RateLimiter struct {
	mu      sync.Mutex
	quota   int
	window  time.Duration
	clients map[string]*clientWindow
	done    chan struct{}
}

func NewRateLimiter(quota int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		quota:   quota,
		window:  window,
		clients: make(map[string]*clientWindow),
		done:    make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// sweepLoop descarta periódicamente las ventanas de clientes inactivos.
func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			r.mu.Lock()
			for ip, cw := range r.clients {
				if now.Sub(cw.windowAt) > idleClientTTL {
					delete(r.clients, ip)
				}
			}
			r.mu.Unlock()
		case <-r.done:
			return
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.done)
}

// Allow descuenta una petición de la cuota del cliente; false significa
// límite excedido dentro de la ventana vigente.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cw, ok := r.clients[ip]
	if !ok {
		r.clients[ip] = &clientWindow{remaining: r.quota - 1, windowAt: now}
		return true
	}

	if now.Sub(cw.windowAt) >= r.window {
		cw.remaining = r.quota
		cw.windowAt = now
	}
	if cw.remaining <= 0 {
		return false
	}
	cw.remaining--
	return true
}

// RetryAfter indica cuánto falta para que se restablezca la cuota del cliente.
func (r *RateLimiter) RetryAfter(ip string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	cw, ok := r.clients[ip]
	if !ok {
		return 0
	}
	if left := r.window - time.Since(cw.windowAt); left > 0 {
		return left
	}
	return 0
}
