package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// cacheRequests counts cache lookups by wrapped source and outcome
// (hit or miss)
var cacheRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "weather_cache_requests_total",
		Help: "Cache lookups against wrapped weather sources, by outcome.",
	},
	[]string{"source", "result"},
)

func init() {
	prometheus.MustRegister(cacheRequests)
}
