// Package metrics defines and registers all custom Prometheus metrics for
// the user-auth service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed alongside the echoprometheus request metrics on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carboncell"

// ── Authentication metrics ────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure" (all failures collapse into one bucket,
//     mirroring the undifferentiated rejection returned to clients)
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// SignUpsTotal counts completed registrations.
// Label:
//   - label: the derived display label ("Admin", "Moderator", "User")
var SignUpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful registrations, by display label.",
	},
	[]string{"label"},
)

// SignUpRejectionsTotal counts registrations rejected before persistence.
// Label:
//   - reason: "username_taken", "email_in_use", or "error"
var SignUpRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_rejections_total",
		Help:      "Total number of rejected registrations, by reason.",
	},
	[]string{"reason"},
)

// ── Directory proxy metrics ───────────────────────────────────────────────────

// DirectoryCacheTotal counts cache decisions for the directory entry list.
// Label:
//   - result: "hit", "miss", or "error"
var DirectoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_cache_total",
		Help:      "Total number of directory cache lookups, by result.",
	},
	[]string{"result"},
)

// DirectoryFetchDuration measures the latency of upstream directory fetches.
// Label:
//   - result: "success" or "error"
var DirectoryFetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "directory_fetch_duration_seconds",
		Help:      "Duration of public-apis upstream fetches.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"result"},
)
