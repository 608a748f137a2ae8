// Package metrics defines and registers all custom Prometheus metrics for the
// campus API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campus"

// AuthAttemptsTotal counts signup and login attempts.
// Labels:
//   - endpoint: "signup" or "login"
//   - result: "success", "rejected" (401/409/400), or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by endpoint and result.",
	},
	[]string{"endpoint", "result"},
)

// ValidationRejectionsTotal counts requests rejected by the request validator.
// Label:
//   - resource: "signup", "user", "building", "drawing"
var ValidationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Total number of requests rejected with a field-level validation error.",
	},
	[]string{"resource"},
)

// ResourceWritesTotal counts successful mutating operations per resource.
// Labels:
//   - resource: "user", "building", "drawing"
//   - op: "create", "replace", "delete"
var ResourceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Total number of successful resource writes, by resource and operation.",
	},
	[]string{"resource", "op"},
)
