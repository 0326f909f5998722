package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"takeabite/internal/models"
)

// Stats summarizes order activity for the back-office dashboard.
type Stats struct {
	TodayOrders    int             `json:"todayOrders"`
	TodaySales     decimal.Decimal `json:"todaySales"`
	ActiveOrders   int             `json:"activeOrders"`
	CompletedToday int             `json:"completedToday"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	MostPopular    string          `json:"mostPopularCookie"`
}

// Stats computes dashboard metrics over all orders. "Today" is the local
// calendar day of the repository clock. Revenue counts completed orders only.
func (r *Repository) Stats(ctx context.Context) (Stats, error) {
	all, err := r.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	now := r.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := Stats{
		TodaySales:   decimal.Zero,
		TotalRevenue: decimal.Zero,
	}
	popularity := map[string]int{}

	for _, o := range all {
		today := !o.OrderDate.Before(dayStart) && o.OrderDate.Before(dayEnd)
		if today {
			stats.TodayOrders++
			stats.TodaySales = stats.TodaySales.Add(o.TotalAmount)
			if o.Status == models.StatusCompleted {
				stats.CompletedToday++
			}
		}
		if o.Status.Active() {
			stats.ActiveOrders++
		}
		if o.Status == models.StatusCompleted {
			stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		}
		for _, item := range o.Items {
			popularity[item.CookieName] += item.Quantity
		}
	}

	best := 0
	for name, count := range popularity {
		if count > best || (count == best && name < stats.MostPopular) {
			best = count
			stats.MostPopular = name
		}
	}
	return stats, nil
}
