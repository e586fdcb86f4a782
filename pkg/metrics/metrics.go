package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cmsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pressdeck_cms_requests_total",
		Help: "Tracks the number of requests issued to the CMS, by method and outcome.",
	}, []string{"method", "outcome"})

	cmsRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pressdeck_cms_request_duration_seconds",
		Help:    "Tracks the latencies of requests issued to the CMS.",
		Buckets: prometheus.DefBuckets,
	})
)

func Registry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		cmsRequestsTotal,
		cmsRequestDuration,
	)
	return registry
}

func ObserveCMSRequest(method, outcome string, seconds float64) {
	cmsRequestsTotal.WithLabelValues(method, outcome).Inc()
	cmsRequestDuration.Observe(seconds)
}
