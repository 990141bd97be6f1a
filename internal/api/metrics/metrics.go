// Package metrics defines and registers all custom Prometheus metrics for
// the OptiiFreight quoting engine. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the echoprometheus middleware serves them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quoting"

// ── Quote metrics ─────────────────────────────────────────────────────────────

// QuotesComputedTotal counts ranked-quote requests that completed.
// Labels:
//   - basis: chargeable basis of the best offer ("WEIGHT"/"VOLUME"), or
//     "none" when no carrier was eligible
var QuotesComputedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_computed_total",
		Help:      "Total number of ranked quote requests successfully computed.",
	},
	[]string{"basis"},
)

// QuoteCacheTotal counts quote cache decisions.
// Label:
//   - result: "hit" (served from cache) or "miss" (computed fresh)
var QuoteCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_cache_total",
		Help:      "Total number of quote cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// CarriersRanked observes how many offers each ranked result contained.
var CarriersRanked = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "carriers_ranked",
		Help:      "Number of carrier offers returned per ranked quote request.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	},
)

// QuoteDuration measures end-to-end ranked quote computation time.
var QuoteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_duration_seconds",
		Help:      "Duration of ranked quote computation from request to response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit records waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditErrorsTotal counts audit records that failed persistence.
// Label:
//   - reason: short description of the failure (e.g. "record_failed")
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of quote audit records that failed processing.",
	},
	[]string{"reason"},
)
