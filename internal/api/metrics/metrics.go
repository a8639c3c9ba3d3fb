// Package metrics defines and registers all custom Prometheus metrics for
// the bookmarks API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookmarks"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// SigninsTotal counts signin attempts by outcome.
// Label:
//   - result: "success", "failure" (bad credentials), or "throttled"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests turned away by the auth middleware.
// Label:
//   - reason: "missing_header", "invalid_header", "invalid_token", or
//     "unknown_account"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// ── Bookmark metrics ──────────────────────────────────────────────────────────

// BookmarkOpsTotal counts successful bookmark mutations.
// Label:
//   - op: "create", "update", or "delete"
var BookmarkOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_ops_total",
		Help:      "Total number of successful bookmark mutations, by operation.",
	},
	[]string{"op"},
)
