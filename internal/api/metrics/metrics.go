// Package metrics defines the custom Prometheus metrics of the menu server.
// Metric names, labels and help strings live here and nowhere else.
//
// All metrics are registered with the default registry through promauto, so
// importing the package is enough; /metrics serves them alongside the HTTP
// metrics produced by echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "menu"

// ── Identity ─────────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "admin" or "restaurant"
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal kind and result.",
	},
	[]string{"kind", "result"},
)

// RestaurantsRegisteredTotal counts successful restaurant self-registrations.
var RestaurantsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restaurants_registered_total",
		Help:      "Total number of restaurants registered.",
	},
)

// ── Categories ───────────────────────────────────────────────────────────────

// CategoryResolutionsTotal counts find-or-create outcomes.
// Label:
//   - outcome: "reused", "created" or "race_recovered" (insert lost to a
//     concurrent creator and the winner was re-read)
var CategoryResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_resolutions_total",
		Help:      "Total number of category resolutions, by outcome.",
	},
	[]string{"outcome"},
)

// ── Menus ────────────────────────────────────────────────────────────────────

// MenuMutationsTotal counts saved menu changes.
// Label:
//   - op: "add", "update" or "remove"
var MenuMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_mutations_total",
		Help:      "Total number of menu item mutations persisted, by operation.",
	},
	[]string{"op"},
)

// RestaurantStatusChangesTotal counts admin status updates.
// Label:
//   - status: the new status
var RestaurantStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restaurant_status_changes_total",
		Help:      "Total number of restaurant status updates, by new status.",
	},
	[]string{"status"},
)

// RestaurantCacheLookupsTotal counts profile cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var RestaurantCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restaurant_cache_lookups_total",
		Help:      "Total number of restaurant profile cache lookups, by result.",
	},
	[]string{"result"},
)
