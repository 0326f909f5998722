package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a customer's placed purchase request
type Order struct {
	ID                  string          `json:"id"`
	CustomerName        string          `json:"customerName"`
	CustomerPhone       string          `json:"customerPhone"`
	CustomerEmail       string          `json:"customerEmail"`
	Items               []OrderItem     `json:"items"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	OrderType           OrderType       `json:"orderType"`
	DeliveryAddress     string          `json:"deliveryAddress,omitempty"`
	Status              OrderStatus     `json:"status"`
	SpecialInstructions string          `json:"specialInstructions"`
	OrderDate           time.Time       `json:"orderDate"`
	EstimatedReady      time.Time       `json:"estimatedReady"`
	CompletedDate       *time.Time      `json:"completedDate"`
}

// OrderItem represents one cookie line within an order. Name and unit price
// are captured at order time and stay fixed even if the catalog changes.
type OrderItem struct {
	CookieID   int             `json:"cookieId"`
	CookieName string          `json:"cookieName"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// Subtotal returns quantity × unit price for the line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemsTotal sums the line subtotals. The stored TotalAmount is always this
// value, never edited independently.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// OrderStatus represents the order's position in its fulfillment lifecycle
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the order can take no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Active reports whether the order still needs staff attention.
func (s OrderStatus) Active() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady:
		return true
	}
	return false
}

// OrderType represents how the customer receives the order
type OrderType string

const (
	TypePickup   OrderType = "pickup"
	TypeDelivery OrderType = "delivery"
)
