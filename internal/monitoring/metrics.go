// Package monitoring exposes Prometheus metrics for the storefront: order
// volume, lifecycle transitions, and inventory health.
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the storefront's operational counters and gauges on a
// dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	ordersCreated     *prometheus.CounterVec
	statusTransitions *prometheus.CounterVec
	stockAdjustments  prometheus.Counter
	lowStockItems     prometheus.Gauge
}

// NewMetrics creates and registers the storefront collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "takeabite_orders_created_total",
			Help: "Orders created, by order type.",
		}, []string{"type"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "takeabite_order_status_transitions_total",
			Help: "Order status updates, by new status.",
		}, []string{"status"}),
		stockAdjustments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "takeabite_stock_adjustments_total",
			Help: "Inventory stock adjustments applied.",
		}),
		lowStockItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "takeabite_low_stock_items",
			Help: "In-stock cookies below the restock threshold.",
		}),
	}

	m.registry.MustRegister(
		m.ordersCreated,
		m.statusTransitions,
		m.stockAdjustments,
		m.lowStockItems,
	)
	return m
}

// OrderCreated records a newly placed order.
func (m *Metrics) OrderCreated(orderType string) {
	m.ordersCreated.WithLabelValues(orderType).Inc()
}

// StatusChanged records a status transition to the given status.
func (m *Metrics) StatusChanged(status string) {
	m.statusTransitions.WithLabelValues(status).Inc()
}

// StockAdjusted records an inventory adjustment.
func (m *Metrics) StockAdjusted() {
	m.stockAdjustments.Inc()
}

// SetLowStockItems updates the low-stock gauge.
func (m *Metrics) SetLowStockItems(n int) {
	m.lowStockItems.Set(float64(n))
}

// Handler returns an HTTP handler serving this registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
