package metrics

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const divisor = 100

// Metrics holds Prometheus metric vectors for the relay service.
type Metrics struct {
	Registry  *prometheus.Registry
	Namespace string

	// HTTP server metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Domain metrics
	WeatherRequestsTotal *prometheus.CounterVec
	WeatherErrorsTotal   *prometheus.CounterVec
}

// NewMetrics constructs and registers all relay metrics on a private registry.
func NewMetrics(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	namespace := strings.ReplaceAll(serviceName, "-", "_")

	m := &Metrics{
		Registry:  reg,
		Namespace: namespace,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests received",
			},
			[]string{"method", "endpoint", "status_class"},
		),

		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of HTTP request latencies",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		WeatherRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weather_requests_total",
				Help:      "Total number of weather data requests by query kind",
			},
			[]string{"query_kind"},
		),

		WeatherErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weather_errors_total",
				Help:      "Total number of weather data errors",
			},
			[]string{"query_kind", "error_type"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.WeatherRequestsTotal,
		m.WeatherErrorsTotal,
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile("/sched/latencies:seconds")},
			),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// HTTPMiddleware returns a Gin middleware to instrument HTTP endpoints.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		d := time.Since(start)

		status := c.Writer.Status()
		statusClass := getStatusClass(status)
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.HTTPRequestsTotal.With(prometheus.Labels{
			"method":       c.Request.Method,
			"endpoint":     endpoint,
			"status_class": statusClass,
		}).Inc()
		m.HTTPRequestDuration.With(prometheus.Labels{
			"method":   c.Request.Method,
			"endpoint": endpoint,
		}).Observe(d.Seconds())

		kind := queryKind(endpoint)
		if kind == "" {
			return
		}
		m.WeatherRequestsTotal.WithLabelValues(kind).Inc()
		if statusClass == "5xx" {
			m.WeatherErrorsTotal.WithLabelValues(kind, "server_error").Inc()
		}
		if statusClass == "4xx" {
			m.WeatherErrorsTotal.WithLabelValues(kind, "client_error").Inc()
		}
	}
}

func queryKind(endpoint string) string {
	switch {
	case strings.HasPrefix(endpoint, "/api/weather/coords/"):
		return "coords"
	case strings.HasPrefix(endpoint, "/api/weather/"):
		return "name"
	case strings.HasPrefix(endpoint, "/api/location/"):
		return "reverse_geocode"
	default:
		return ""
	}
}

func getStatusClass(code int) string {
	return fmt.Sprintf("%dxx", code/divisor)
}
