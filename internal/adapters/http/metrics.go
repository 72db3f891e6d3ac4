package httpadapter

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

var (
	// solvesTotal counts solve requests by outcome.
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_solves_total",
		Help: "Solve requests by outcome (solved, unsolvable, invalid)",
	}, []string{"outcome"})

	// solveDuration tracks engine run time per solve request.
	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sudoku_solve_duration_seconds",
		Help:    "Deduction engine run time per solve request",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 0.1ms to ~400ms
	})

	// eliminationsTotal counts candidate eliminations by strategy.
	eliminationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_eliminations_total",
		Help: "Candidate eliminations by strategy",
	}, []string{"strategy"})

	// httpRequests counts requests by route template, method and status.
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_http_requests_total",
		Help: "HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	// httpDuration tracks request latency by route template.
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sudoku_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// RecordSolve counts one solve request and its engine runtime.
func RecordSolve(outcome string, dur time.Duration) {
	solvesTotal.WithLabelValues(outcome).Inc()
	if dur > 0 {
		solveDuration.Observe(dur.Seconds())
	}
}

// RecordEliminations adds one run's per-strategy elimination counts.
func RecordEliminations(counts map[domain.Strategy]int) {
	for s, n := range counts {
		eliminationsTotal.WithLabelValues(string(s)).Add(float64(n))
	}
}

// metricsMiddleware observes every request, labeled by the route
// template so path parameters don't explode cardinality.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
