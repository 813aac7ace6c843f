// Package metrics defines all custom Prometheus metrics for the 48 Hauling
// web panel. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "webpanel"

// ── Upstream (DevApi) metrics ────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls made to the DevApi backend.
// Labels:
//   - endpoint: the logical endpoint group (e.g. "hauling/drivers")
//   - outcome: "success", "error" (backend-reported) or "network_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the DevApi backend.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRequestDuration measures the wall-clock duration of DevApi calls.
// Label:
//   - endpoint: the logical endpoint group
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of DevApi backend calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts login attempts through the admin login screen.
// Label:
//   - result: "success", "rejected" (non-admin role), "failed" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ── Polling metrics ──────────────────────────────────────────────────────────

// PollRefreshTotal counts background poll cycles.
// Labels:
//   - collector: the refresher name (e.g. "devices", "locations")
//   - result: "ok", "error" or "stale" (result discarded after stop)
var PollRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "poll_refresh_total",
		Help:      "Total number of background poll cycles, by collector and result.",
	},
	[]string{"collector", "result"},
)
