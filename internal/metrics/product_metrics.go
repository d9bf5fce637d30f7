package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalog counters, registered on the default registry.
var (
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "Products added to the catalog",
	})

	ProductsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "Products replaced through PUT",
	})

	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "Products removed from the catalog",
	})

	// NotificationFailures counts product notifications that could not be published.
	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_notification_failures_total",
		Help: "Product notifications dropped after a publish error",
	}, []string{"action"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served, by method and status code",
	}, []string{"method", "status"})
)
