package rate_limiter

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/rs/zerolog/hlog"
)

// Middleware rejects requests over the limit with 429. Limiter errors are
// logged and the request is let through.
func Middleware(l Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := l.Allow(r.Context(), clientIP(r))
			if err != nil {
				hlog.FromRequest(r).Warn().Err(err).Msg("rate limiter unavailable")
			}
			if !allowed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"message": "Too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys on RemoteAddr. Forwarding headers are only honored when
// the router was configured to rewrite RemoteAddr from them.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
