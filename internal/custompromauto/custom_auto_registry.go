// Package custompromauto holds the private registry every txflowgraph metric is registered with,
// keeping the default go and process collectors off /metrics.
package custompromauto

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()
	auto     = promauto.With(registry)
)

func Auto() promauto.Factory {
	return auto
}

// Handler serves the metrics of the private registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
