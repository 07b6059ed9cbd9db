// Package metrics defines and registers the custom Prometheus metrics for
// the Happy Thoughts API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "happythoughts"

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the auth gate.
// Label:
//   - reason: "missing_header", "unknown_token", or "store_error"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth gate, by reason.",
	},
	[]string{"reason"},
)

// ThoughtsCreatedTotal counts stored thoughts.
var ThoughtsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "thoughts_created_total",
		Help:      "Total number of thoughts created.",
	},
)

// LikesTotal counts successful like operations.
var LikesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_total",
		Help:      "Total number of hearts added to thoughts.",
	},
)
