// Package metrics holds the service's prometheus collectors. They register
// on the default registry served by pkg/metrics.PrometheusServer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	PriceEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sock_price_evaluations_total",
		Help: "Price rule engine evaluations served over the API, by event tag.",
	}, []string{"event"})

	SpotPrice = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sock_spot_price_dollars",
		Help: "Predicted sock price at the current wall-clock time.",
	})
)
