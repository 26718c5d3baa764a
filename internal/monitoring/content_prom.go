package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UploadsTotal is labelled by outcome: ok, rejected or host_error.
var UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gsccapital_media_uploads_total",
	Help: "The total number of image upload attempts",
}, []string{"outcome"})

var ContactSubmissionsAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "gsccapital_contact_submissions_amount",
	Help: "The total number of stored contact form submissions",
})

var RateLimitedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gsccapital_rate_limited_amount",
	Help: "The total number of requests rejected by a rate limiter",
}, []string{"limiter"})
