package models

import "github.com/shopspring/decimal"

func init() {
	// Persisted payloads keep amounts as bare numeric literals.
	decimal.MarshalJSONWithoutQuotes = true
}

// Cookie represents a sellable catalog item with pricing, stock, and
// availability. Availability is derived: a cookie with no stock is never
// offered for sale, regardless of how it was edited.
type Cookie struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	InStock     bool            `json:"inStock"`
	StockCount  int             `json:"stockCount"`
	Category    string          `json:"category"`
}

// Normalize re-asserts the stock/availability invariant: a negative count is
// clamped to zero, and a zero count forces the cookie out of stock. Called on
// every catalog mutation, not just at creation.
func (c *Cookie) Normalize() {
	if c.StockCount < 0 {
		c.StockCount = 0
	}
	if c.StockCount == 0 {
		c.InStock = false
	}
}

// CookieCategory represents the category of a catalog item. The set is open;
// these are the values used by the default catalog.
type CookieCategory string

const (
	CategoryClassic CookieCategory = "Classic"
	CategoryPremium CookieCategory = "Premium"
	CategoryHealthy CookieCategory = "Healthy"
)

// LowStockThreshold is the count below which an in-stock cookie is flagged
// for restocking on the admin dashboard.
const LowStockThreshold = 10
