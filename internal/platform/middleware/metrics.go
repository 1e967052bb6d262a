// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// latencyBuckets cover the expected handler range: sub-10ms cache hits up to
// multi-second bcrypt verifications.
var latencyBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

var (
	metricsOnce     sync.Once
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
)

// initMetrics registers the HTTP collectors exactly once per process.
func initMetrics() {
	metricsOnce.Do(func() {
		requestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ridelink",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "path", "status"})

		requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ridelink",
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   latencyBuckets,
		}, []string{"method", "path", "status"})

		for _, collector := range []prometheus.Collector{requestTotal, requestDuration} {
			if err := prometheus.Register(collector); err != nil {
				if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
					switch existing := already.ExistingCollector.(type) {
					case *prometheus.CounterVec:
						requestTotal = existing
					case *prometheus.HistogramVec:
						requestDuration = existing
					}
				}
			}
		}
	})
}

// Metrics instruments every request with a Prometheus counter and latency
// histogram labelled by method, path, and response status.
func Metrics() func(http.Handler) http.Handler {
	initMetrics()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
			startTime := time.Now()

			next.ServeHTTP(recorder, request)

			labels := prometheus.Labels{
				"method": request.Method,
				"path":   request.URL.Path,
				"status": strconv.Itoa(recorder.status),
			}
			requestTotal.With(labels).Inc()
			requestDuration.With(labels).Observe(time.Since(startTime).Seconds())
		})
	}
}
