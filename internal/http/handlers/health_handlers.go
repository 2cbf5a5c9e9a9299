package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler godoc
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				hlog.FromRequest(r).Warn().Err(err).Msg("health check failed")
				respond(w, r, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
				return
			}
		}
		respond(w, r, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
