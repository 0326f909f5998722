// Package seed holds the static default data written to the store on first
// run. Default builds a fresh copy on every call so callers can never mutate
// the canonical values through a shared slice.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"takeabite/internal/models"
)

// Data bundles the default catalog and sample orders injected into the
// store's seeding routine.
type Data struct {
	Cookies []models.Cookie
	Orders  []models.Order
}

// Default returns the Take a Bite sample data set.
func Default() Data {
	return Data{
		Cookies: defaultCookies(),
		Orders:  sampleOrders(),
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultCookies() []models.Cookie {
	return []models.Cookie{
		{
			ID:          1,
			Name:        "Chocolate Chip Classic",
			Price:       price("2.50"),
			Description: "Our signature chocolate chip cookies made with premium chocolate chips",
			Image:       "🍪",
			InStock:     true,
			StockCount:  50,
			Category:    string(models.CategoryClassic),
		},
		{
			ID:          2,
			Name:        "Double Chocolate Fudge",
			Price:       price("3.00"),
			Description: "Rich chocolate cookies with chocolate chips and fudge pieces",
			Image:       "🍫",
			InStock:     true,
			StockCount:  30,
			Category:    string(models.CategoryPremium),
		},
		{
			ID:          3,
			Name:        "Sugar Cookie Delight",
			Price:       price("2.25"),
			Description: "Classic sugar cookies with a sweet vanilla flavor",
			Image:       "⭐",
			InStock:     true,
			StockCount:  40,
			Category:    string(models.CategoryClassic),
		},
		{
			ID:          4,
			Name:        "Oatmeal Raisin",
			Price:       price("2.75"),
			Description: "Hearty oatmeal cookies with plump raisins and cinnamon",
			Image:       "🌾",
			InStock:     true,
			StockCount:  25,
			Category:    string(models.CategoryHealthy),
		},
		{
			ID:          5,
			Name:        "Peanut Butter Crunch",
			Price:       price("2.75"),
			Description: "Creamy peanut butter cookies with a satisfying crunch",
			Image:       "🥜",
			InStock:     true,
			StockCount:  35,
			Category:    string(models.CategoryClassic),
		},
		{
			ID:          6,
			Name:        "Snickerdoodle",
			Price:       price("2.50"),
			Description: "Soft and chewy cookies rolled in cinnamon sugar",
			Image:       "✨",
			InStock:     true,
			StockCount:  20,
			Category:    string(models.CategoryClassic),
		},
		{
			ID:          7,
			Name:        "White Chocolate Macadamia",
			Price:       price("3.25"),
			Description: "Premium cookies with white chocolate chips and macadamia nuts",
			Image:       "🤍",
			InStock:     false,
			StockCount:  0,
			Category:    string(models.CategoryPremium),
		},
		{
			ID:          8,
			Name:        "Red Velvet Cream",
			Price:       price("3.50"),
			Description: "Luxurious red velvet cookies with cream cheese frosting",
			Image:       "❤️",
			InStock:     true,
			StockCount:  15,
			Category:    string(models.CategoryPremium),
		},
	}
}

func sampleOrders() []models.Order {
	completed := time.Date(2024, 1, 14, 14, 45, 0, 0, time.Local)

	return []models.Order{
		{
			ID:            "ORD001",
			CustomerName:  "John Smith",
			CustomerPhone: "(555) 123-4567",
			CustomerEmail: "john@example.com",
			Items: []models.OrderItem{
				{CookieID: 1, CookieName: "Chocolate Chip Classic", Quantity: 12, Price: price("2.50")},
				{CookieID: 3, CookieName: "Sugar Cookie Delight", Quantity: 6, Price: price("2.25")},
			},
			TotalAmount:         price("43.50"),
			OrderType:           models.TypePickup,
			Status:              models.StatusPreparing,
			SpecialInstructions: "Please pack separately",
			OrderDate:           time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local),
			EstimatedReady:      time.Date(2024, 1, 15, 11, 0, 0, 0, time.Local),
		},
		{
			ID:            "ORD002",
			CustomerName:  "Sarah Johnson",
			CustomerPhone: "(555) 987-6543",
			CustomerEmail: "sarah@example.com",
			Items: []models.OrderItem{
				{CookieID: 2, CookieName: "Double Chocolate Fudge", Quantity: 24, Price: price("3.00")},
			},
			TotalAmount:         price("72.00"),
			OrderType:           models.TypeDelivery,
			DeliveryAddress:     "456 Main Street, Sweet City, SC 12345",
			Status:              models.StatusReady,
			SpecialInstructions: "Ring doorbell twice",
			OrderDate:           time.Date(2024, 1, 15, 9, 15, 0, 0, time.Local),
			EstimatedReady:      time.Date(2024, 1, 15, 10, 15, 0, 0, time.Local),
		},
		{
			ID:            "ORD003",
			CustomerName:  "Mike Davis",
			CustomerPhone: "(555) 456-7890",
			CustomerEmail: "mike@example.com",
			Items: []models.OrderItem{
				{CookieID: 4, CookieName: "Oatmeal Raisin", Quantity: 6, Price: price("2.75")},
				{CookieID: 5, CookieName: "Peanut Butter Crunch", Quantity: 12, Price: price("2.75")},
				{CookieID: 8, CookieName: "Red Velvet Cream", Quantity: 6, Price: price("3.50")},
			},
			TotalAmount:    price("70.50"),
			OrderType:      models.TypePickup,
			Status:         models.StatusCompleted,
			OrderDate:      time.Date(2024, 1, 14, 14, 20, 0, 0, time.Local),
			EstimatedReady: time.Date(2024, 1, 14, 14, 50, 0, 0, time.Local),
			CompletedDate:  &completed,
		},
	}
}

// BusinessInfo describes the storefront's public details, surfaced on the
// welcome endpoint and used as config defaults.
type BusinessInfo struct {
	Name     string `json:"name" yaml:"name"`
	Tagline  string `json:"tagline" yaml:"tagline"`
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email" yaml:"email"`
	Address  string `json:"address" yaml:"address"`
	Weekdays string `json:"weekdayHours" yaml:"weekday_hours"`
	Weekends string `json:"weekendHours" yaml:"weekend_hours"`
}

// DefaultBusinessInfo returns the bakery's sample identity.
func DefaultBusinessInfo() BusinessInfo {
	return BusinessInfo{
		Name:     "Take a Bite",
		Tagline:  "Freshly Baked Daily",
		Phone:    "(555) 123-BITE",
		Email:    "orders@takeabite.com",
		Address:  "123 Cookie Lane, Sweet City, SC 12345",
		Weekdays: "7:00 AM - 8:00 PM",
		Weekends: "8:00 AM - 9:00 PM",
	}
}
