package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Health reports the outcome of a database connectivity probe.
type Health struct {
	Status  string        `json:"status"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

// Check pings the pool with a short timeout and reports the result.
func Check(ctx context.Context, pool *pgxpool.Pool) Health {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := pool.Ping(ctx)
	h := Health{Status: "ok", Latency: time.Since(start)}
	if err != nil {
		h.Status = "unavailable"
		h.Error = err.Error()
	}
	return h
}
