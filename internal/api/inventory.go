package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"takeabite/internal/catalog"
	"takeabite/internal/models"
)

// GetMenu returns the cookies currently available to order, optionally
// filtered by category (?category=).
func (s *Server) GetMenu(c *gin.Context) {
	cookies, err := s.catalog.Available(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cookies)
}

// GetInventory returns the full catalog, including unavailable cookies, for
// the back office.
func (s *Server) GetInventory(c *gin.Context) {
	cookies, err := s.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cookies)
}

// UpdateCookie replaces a catalog item. The stock/availability invariant is
// re-asserted by the repository, so a zero count always comes back
// unavailable no matter what was submitted.
func (s *Server) UpdateCookie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cookie id"})
		return
	}

	var cookie models.Cookie
	if err := c.ShouldBindJSON(&cookie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cookie.ID = id

	updated, err := s.catalog.Update(c.Request.Context(), cookie)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cookie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

// AdjustStock applies a relative stock change to one cookie. The count never
// goes below zero however negative the delta.
func (s *Server) AdjustStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cookie id"})
		return
	}

	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cookie, err := s.catalog.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cookie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.metrics.StockAdjusted()
	c.JSON(http.StatusOK, cookie)
}
