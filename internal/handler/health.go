package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything whose connectivity can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Health returns a JSON health check response.
// DB and Redis are required; the graph store is optional and only reported,
// since the mirror is best-effort. Never exposes credentials or internals.
func Health(db, rdb, graph Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := probe(ctx, db)
		redisStatus := probe(ctx, rdb)

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		body := gin.H{
			"ok":    status == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
			"graph": "disabled",
		}
		if graph != nil {
			body["graph"] = probe(ctx, graph)
		}
		c.JSON(status, body)
	}
}

func probe(ctx context.Context, p Pinger) string {
	if p == nil || p.Ping(ctx) != nil {
		return "error"
	}
	return "connected"
}
