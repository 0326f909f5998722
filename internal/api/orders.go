package api

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"takeabite/internal/models"
	"takeabite/internal/orders"
)

// CreateOrder places a new customer order. Validation failures come back as
// 422 with the full field-to-message map so every problem can be shown at
// once.
func (s *Server) CreateOrder(c *gin.Context) {
	var draft orders.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.orders.Create(c.Request.Context(), draft)
	if err != nil {
		var verr orders.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "validation failed",
				"fields": verr,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.metrics.OrderCreated(string(order.OrderType))
	c.JSON(http.StatusCreated, order)
}

// GetOrder returns a single order for customer-side tracking.
func (s *Server) GetOrder(c *gin.Context) {
	order, err := s.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// statusPriority orders the admin list: orders needing attention first.
var statusPriority = map[models.OrderStatus]int{
	models.StatusPending:   1,
	models.StatusConfirmed: 2,
	models.StatusPreparing: 3,
	models.StatusReady:     4,
	models.StatusCompleted: 5,
	models.StatusCancelled: 6,
}

// ListOrders returns all orders for the back office, optionally filtered by
// status (?status=) and a customer/identifier search (?q=). Active orders
// sort first, newest within each status.
func (s *Server) ListOrders(c *gin.Context) {
	all, err := s.orders.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := c.Query("status")
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	filtered := make([]models.Order, 0, len(all))
	for _, o := range all {
		if status != "" && status != "all" && string(o.Status) != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(o.ID), query) &&
			!strings.Contains(strings.ToLower(o.CustomerName), query) &&
			!strings.Contains(strings.ToLower(o.CustomerPhone), query) {
			continue
		}
		filtered = append(filtered, o)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		pi, pj := priorityOf(filtered[i].Status), priorityOf(filtered[j].Status)
		if pi != pj {
			return pi < pj
		}
		return filtered[i].OrderDate.After(filtered[j].OrderDate)
	})

	c.JSON(http.StatusOK, filtered)
}

func priorityOf(s models.OrderStatus) int {
	if p, ok := statusPriority[s]; ok {
		return p
	}
	return 7
}

// UpdateOrder replaces an order wholesale; the repository recomputes the
// total and completed-date coupling from what is submitted.
func (s *Server) UpdateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order.ID = c.Param("id")

	updated, err := s.orders.Update(c.Request.Context(), order)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

type statusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle. In strict mode an
// illegal transition comes back as 409.
func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	order, err := s.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, orders.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	s.metrics.StatusChanged(string(order.Status))
	c.JSON(http.StatusOK, order)
}

// GetDashboard aggregates order activity and inventory health for the admin
// home screen.
func (s *Server) GetDashboard(c *gin.Context) {
	stats, err := s.orders.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	low, err := s.catalog.LowStock(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.metrics.SetLowStockItems(len(low))

	c.JSON(http.StatusOK, gin.H{
		"todayOrders":       stats.TodayOrders,
		"todaySales":        stats.TodaySales,
		"activeOrders":      stats.ActiveOrders,
		"completedToday":    stats.CompletedToday,
		"totalRevenue":      stats.TotalRevenue,
		"mostPopularCookie": stats.MostPopular,
		"lowStockItems":     len(low),
	})
}
