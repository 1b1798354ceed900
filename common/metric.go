package common

import (
	"net/http"

	"github.com/gorilla/handlers"
	_ "github.com/mkevac/debugcharts" // registers /debug/charts on the default mux
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = NewLog("common")

// NewMetricServer serves /metrics and /debug/charts on port. The returned
// server is already listening in the background.
func NewMetricServer(port string) *http.Server {
	log.Info("Starting metric server", "listen", port)
	http.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:    port,
		Handler: handlers.RecoveryHandler()(http.DefaultServeMux),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metric server stopped", "err", err)
		}
	}()
	return srv
}
