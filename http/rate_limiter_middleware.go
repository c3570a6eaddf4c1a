package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// RateLimit rejects clients that have used up their tokens with 429 and a
// Retry-After header. Clients are keyed by IP.
func RateLimit(limiter *RateLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientIP(r)

			allowed, retryAfter := limiter.Allow(client)
			if !allowed {
				logger.Info("rate limit exceeded", zap.String("client", client), zap.String("path", r.URL.Path))
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				writeError(w, logger, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port when present; chi's RealIP middleware leaves a
// bare address in RemoteAddr.
func clientIP(r *http.Request) string {
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}
