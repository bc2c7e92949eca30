package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	// Tracker metrics
	ScoresRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scores_recorded_total",
			Help: "Daily scores written into a history",
		},
		[]string{"metric"}, // checklist, stress
	)

	RewardsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rewards_claimed_total",
			Help: "Monthly rewards successfully claimed",
		},
	)

	CoinsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coins_awarded_total",
			Help: "Coins credited to the student wallet",
		},
	)
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
