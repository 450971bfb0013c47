// Package metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ConversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url2md_conversions_total",
			Help: "Total number of conversion requests, labeled by result (success or failure kind).",
		},
		[]string{"result"},
	)
	ConversionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "url2md_conversion_duration_seconds",
			Help:    "End-to-end pipeline duration in seconds, labeled by document format.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)
	FetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "url2md_fetch_duration_seconds",
			Help:    "Duration of the fetch stage in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
	FetchedBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "url2md_fetched_bytes",
			Help:    "Size of fetched resources in bytes.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(ConversionsTotal)
	prometheus.MustRegister(ConversionDuration)
	prometheus.MustRegister(FetchDuration)
	prometheus.MustRegister(FetchedBytes)
}
