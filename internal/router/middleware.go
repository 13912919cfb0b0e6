package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loan-tracker/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// URLMiddleware sets the public base URL of the API in the context
// so that handlers can build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	base := strings.TrimSuffix(url.String(), "/")

	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), base)
		c.Next()
	}
}

const metricsNamespace = "loan_tracker"

// unmatchedRoute is the route label for requests that no route handles.
// Using the raw path would let clients create a series per path.
const unmatchedRoute = "unmatched"

var (
	requestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "HTTP requests currently being served.",
	})

	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by status code, method and route.",
	}, []string{"code", "method", "route"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds, by status code, method and route.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"code", "method", "route"})
)

var metrics = []prometheus.Collector{
	requestsInFlight,
	requestCount,
	requestDuration,
}

// registerPrometheusMetrics registers the HTTP metrics with the
// default registry. If one of them cannot be registered, the ones
// registered before it are unregistered again.
func registerPrometheusMetrics() error {
	for i, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			for _, registered := range metrics[:i] {
				prometheus.Unregister(registered)
			}
			return fmt.Errorf("could not register HTTP metrics: %w", err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters the HTTP metrics so that
// the router can be configured again, e.g. in tests.
func unregisterPrometheusMetrics() bool {
	ok := true
	for _, c := range metrics {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}

// route is the route template that handled the request, e.g.
// /v1/loans/:id.
func route(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}
	return unmatchedRoute
}

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		start := time.Now()

		c.Next()

		labels := prometheus.Labels{
			"code":   strconv.Itoa(c.Writer.Status()),
			"method": c.Request.Method,
			"route":  route(c),
		}

		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestCount.With(labels).Inc()
	}
}
