package collector

import (
	"github.com/prometheus/client_golang/prometheus"
)

// providerFetches counts upstream fetches by provider and outcome
var providerFetches = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "weather_provider_fetches_total",
		Help: "Upstream provider fetches, by provider and outcome.",
	},
	[]string{"provider", "result"},
)

func init() {
	prometheus.MustRegister(providerFetches)
}
