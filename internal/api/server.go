// Package api is the HTTP presentation layer: a storefront surface for
// browsing the menu, placing orders, and tracking them, and an unauthenticated
// back-office surface for the dashboard, order lifecycle, and inventory.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"takeabite/internal/catalog"
	"takeabite/internal/monitoring"
	"takeabite/internal/orders"
	"takeabite/internal/seed"
	"takeabite/internal/storage"
)

// Server wires the repositories to the HTTP routes.
type Server struct {
	router   *gin.Engine
	catalog  *catalog.Repository
	orders   *orders.Repository
	metrics  *monitoring.Metrics
	store    *storage.Store
	seedData seed.Data
	info     seed.BusinessInfo
	log      *zap.Logger
}

// NewServer creates the API server and registers all routes.
func NewServer(cat *catalog.Repository, ord *orders.Repository, metrics *monitoring.Metrics,
	store *storage.Store, seedData seed.Data, info seed.BusinessInfo, log *zap.Logger) *Server {

	s := &Server{
		router:   gin.Default(),
		catalog:  cat,
		orders:   ord,
		metrics:  metrics,
		store:    store,
		seedData: seedData,
		info:     info,
		log:      log,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints.
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Take a Bite API is running"})
	})

	v1 := s.router.Group("/api/v1")
	{
		// Storefront
		v1.GET("/info", s.GetBusinessInfo)
		v1.GET("/menu", s.GetMenu)
		v1.POST("/orders", s.CreateOrder)
		v1.GET("/orders/:id", s.GetOrder)

		// Back office. Intentionally unauthenticated: the admin surface is
		// reachable by anyone on this single-user deployment.
		admin := v1.Group("/admin")
		{
			admin.GET("/dashboard", s.GetDashboard)
			admin.GET("/orders", s.ListOrders)
			admin.PUT("/orders/:id", s.UpdateOrder)
			admin.PUT("/orders/:id/status", s.UpdateOrderStatus)
			admin.GET("/inventory", s.GetInventory)
			admin.PUT("/inventory/:id", s.UpdateCookie)
			admin.POST("/inventory/:id/adjust", s.AdjustStock)
			admin.POST("/reset", s.ResetData)
		}
	}
}

// Router returns the Gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// GetBusinessInfo returns the bakery's public details for the welcome screen.
func (s *Server) GetBusinessInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.info)
}

// ResetData clears both collections and reseeds them from the defaults.
func (s *Server) ResetData(c *gin.Context) {
	if err := s.store.Reset(s.seedData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.log.Info("data reset to defaults")
	c.JSON(http.StatusOK, gin.H{"message": "Data reset to defaults"})
}
