// Package metrics defines all custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at package
// load; the /metrics endpoint serves that registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts products created through the seller dashboard.
// Label:
//   - category: the product's category
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created, by category.",
	},
	[]string{"category"},
)

// ProductsDeletedTotal counts products deleted through the seller dashboard.
var ProductsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of products deleted.",
	},
)

// CatalogQueryDuration measures catalog read latency.
// Label:
//   - operation: "list", "get", "facets", "list_seller"
var CatalogQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_query_duration_seconds",
		Help:      "Duration of catalog read operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartOperationsTotal counts cart mutations.
// Label:
//   - op: "add", "update", "remove", "clear", "checkout"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart operations, by operation.",
	},
	[]string{"op"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - method: "register", "login", "federated", "logout"
//   - outcome: "ok" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by method and outcome.",
	},
	[]string{"method", "outcome"},
)
