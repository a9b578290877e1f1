package http

import (
	"fmt"
	"net"
	"net/http"
)

// RateLimitMiddleware aplica el límite por IP y anuncia Retry-After al excederlo.
func RateLimitMiddleware(
	limiter *RateLimiter,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			retry := limiter.RetryAfter(ip)
			w.Header().Set("Retry-After", fmt.Sprintf("%.0f", retry.Seconds()))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
