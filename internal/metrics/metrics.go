// AngelaMos | 2026
// metrics.go

// Package metrics defines and registers the portal's Prometheus metrics. It
// is the single source of truth for metric names, labels, and help strings;
// everything registers against the default registry via promauto, so the
// /metrics endpoint only needs promhttp.Handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "accepted" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// QueriesTotal counts portal read operations.
// Label:
//   - feature: "projects", "invoices", "messages", or "expenses"
var QueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of portal list queries, by feature.",
	},
	[]string{"feature"},
)

// MessagesPostedTotal counts messages appended to project threads.
var MessagesPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_posted_total",
		Help:      "Total number of messages posted.",
	},
)

// PaymentInitiationsTotal counts invoice payment hand-offs.
var PaymentInitiationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_initiations_total",
		Help:      "Total number of invoice payment initiations.",
	},
)

// DocumentOpsTotal counts document bridge operations.
// Labels:
//   - op: "list", "upload", or "download"
//   - result: "ok", "error", or "unavailable"
var DocumentOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "document_ops_total",
		Help:      "Total number of document bridge operations, by op and result.",
	},
	[]string{"op", "result"},
)

// DocumentTransferDuration measures document upload/download wall time.
// Label:
//   - op: "upload" or "download"
var DocumentTransferDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "document_transfer_duration_seconds",
		Help:      "Duration of document uploads and downloads.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)
