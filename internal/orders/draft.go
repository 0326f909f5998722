package orders

import (
	"github.com/shopspring/decimal"

	"takeabite/internal/models"
)

// Draft is an order under construction, before submission. Line items carry
// the cookie's name and unit price as of the moment it was added; later
// catalog edits do not reach into drafts or placed orders.
type Draft struct {
	CustomerName        string             `json:"customerName"`
	CustomerPhone       string             `json:"customerPhone"`
	CustomerEmail       string             `json:"customerEmail"`
	Items               []models.OrderItem `json:"items"`
	OrderType           models.OrderType   `json:"orderType"`
	DeliveryAddress     string             `json:"deliveryAddress"`
	SpecialInstructions string             `json:"specialInstructions"`
}

// AddItem adds one unit of the cookie to the draft, or bumps the quantity if
// it is already present.
func (d *Draft) AddItem(c models.Cookie) {
	for i := range d.Items {
		if d.Items[i].CookieID == c.ID {
			d.Items[i].Quantity++
			return
		}
	}
	d.Items = append(d.Items, models.OrderItem{
		CookieID:   c.ID,
		CookieName: c.Name,
		Quantity:   1,
		Price:      c.Price,
	})
}

// SetQuantity sets the quantity for the given cookie's line. A quantity of
// zero or less removes the line.
func (d *Draft) SetQuantity(cookieID, quantity int) {
	for i := range d.Items {
		if d.Items[i].CookieID != cookieID {
			continue
		}
		if quantity <= 0 {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
		} else {
			d.Items[i].Quantity = quantity
		}
		return
	}
}

// Total returns the draft's current total, the sum of quantity × unit price
// over its lines.
func (d *Draft) Total() decimal.Decimal {
	return models.ItemsTotal(d.Items)
}
