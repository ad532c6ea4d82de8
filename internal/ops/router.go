// Package ops exposes the operational HTTP surface: health, pool
// statistics and Prometheus metrics.
package ops

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"hellopool/pkg/pool"
	"hellopool/pkg/types"
)

// statsResponse is the payload of GET /stats
type statsResponse struct {
	Pool    types.PoolStats    `json:"pool"`
	Workers []pool.WorkerStats `json:"workers"`
}

// NewRouter builds the ops router for a pool. The gatherer backs the
// /metrics endpoint; pass prometheus.DefaultGatherer unless metrics
// were registered on a private registry.
func NewRouter(p *pool.Pool, gatherer prometheus.Gatherer, logger *logrus.Entry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		stats := p.Stats()
		if stats.LiveWorkers == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "reason": "no live workers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, statsResponse{
			Pool:    p.Stats(),
			Workers: p.WorkerStats(),
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	logger.Debug("ops router initialized")
	return r
}
