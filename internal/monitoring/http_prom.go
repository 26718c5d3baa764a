package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gsccapital_http_requests_total",
	Help: "The total number of handled HTTP requests",
}, []string{"method", "route", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "gsccapital_http_request_duration_seconds",
	Help:    "Duration of HTTP requests in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})
