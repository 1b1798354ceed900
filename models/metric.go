package models

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	modelRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "domalens",
			Name:      "model_request_total",
			Help:      "inference endpoint requests by model and result",
		},
		[]string{"model", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		modelRequests,
	)
}

func metricModelRequest(model string, ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	modelRequests.WithLabelValues(model, result).Inc()
}
