// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "placeholder",
		Subsystem: "restclient",
		Name:      "request_duration_seconds",
		Help:      "Latency of REST API calls",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{
		"method",
		"resource",
		"status",
	},
)

func init() {
	prometheus.MustRegister(requestDuration)
}

func observeRequest(method, resource, status string, elapsed time.Duration) {
	requestDuration.With(prometheus.Labels{
		"method":   method,
		"resource": resource,
		"status":   status,
	}).Observe(elapsed.Seconds())
}
