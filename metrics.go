// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hbasex

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// A Collector provides Prometheus metrics for the Requester's exchange
// lifecycle. Install one with WithMetrics. It is safe for concurrent
// use.
type Collector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	errorsTotal      *prometheus.CounterVec
}

// NewCollector creates a collector registered on the default
// registerer.
func NewCollector() *Collector {
	return NewCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewCollectorWithRegistry(registry prometheus.Registerer) *Collector {
	return &Collector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "hbasex_requests_total",
				Help: "Total number of gateway exchanges completed",
			},
			[]string{"method", "status_code", "endpoint"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hbasex_request_duration_seconds",
				Help:    "Round-trip latency of gateway exchanges in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status_code", "endpoint"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hbasex_requests_in_flight",
				Help: "Number of gateway exchanges currently in flight",
			},
			[]string{"method", "endpoint"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "hbasex_errors_total",
				Help: "Total number of gateway exchanges ended in error, by kind",
			},
			[]string{"method", "endpoint", "kind"},
		),
	}
}

func (c *Collector) startRequest(method, endpoint string) {
	c.requestsInFlight.WithLabelValues(method, endpoint).Inc()
}

func (c *Collector) endRequest(method, endpoint string) {
	c.requestsInFlight.WithLabelValues(method, endpoint).Dec()
}

func (c *Collector) observeRequest(method, endpoint string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	c.requestsTotal.WithLabelValues(method, code, endpoint).Inc()
	c.requestDuration.WithLabelValues(method, code, endpoint).Observe(elapsed.Seconds())
}

func (c *Collector) observeError(method, endpoint string, kind Kind) {
	c.errorsTotal.WithLabelValues(method, endpoint, kind.String()).Inc()
}
