package domalens

import (
	"context"

	"github.com/domalens/domalens/dashboard"
	"github.com/domalens/domalens/schema"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricNameSpace = "domalens"
)

var (
	pageFetch = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNameSpace,
			Name:      "page_fetch_total",
			Help:      "domain directory page fetches by result",
		},
		[]string{"result"},
	)
	liveListings = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: MetricNameSpace,
			Name:      "live_listings",
			Help:      "trading domains on the last fetched page",
		},
	)
	liveEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNameSpace,
			Name:      "live_event_total",
			Help:      "simulated marketplace events",
		},
		[]string{"type"},
	)
	offers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNameSpace,
			Name:      "offer_total",
			Help:      "offer submissions by outcome",
		},
		[]string{"success"},
	)
)

func init() {
	prometheus.MustRegister(
		pageFetch,
		liveListings,
		liveEvents,
		offers,
	)
}

func metricLiveEvent(typ schema.LiveEventType) {
	liveEvents.WithLabelValues(string(typ)).Inc()
}

func metricOffer(res schema.OfferResult) {
	if res.Success {
		offers.WithLabelValues("true").Inc()
	} else {
		offers.WithLabelValues("false").Inc()
	}
}

// meteredSource counts page fetches on their way to the dashboard.
type meteredSource struct {
	source dashboard.DomainSource
}

func (m *meteredSource) FetchPage(ctx context.Context, page, pageSize int) schema.PaginatedDomains {
	res := m.source.FetchPage(ctx, page, pageSize)
	if len(res.Domains) == 0 {
		pageFetch.WithLabelValues("empty").Inc()
	} else {
		pageFetch.WithLabelValues("ok").Inc()
	}
	liveListings.Set(float64(dashboard.LiveListings(res.Domains)))
	return res
}
