package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

// apiRequests counts served API requests by endpoint
var apiRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "weather_api_requests_total",
		Help: "API requests served, by endpoint.",
	},
	[]string{"endpoint"},
)

func init() {
	prometheus.MustRegister(apiRequests)
}
