package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeabite/internal/models"
)

func TestStats(t *testing.T) {
	repo := newTestRepo(t, Config{})

	// Pin the clock to the sample data's "today".
	repo.now = func() time.Time {
		return time.Date(2024, 1, 15, 16, 0, 0, 0, time.Local)
	}

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)

	// ORD001 and ORD002 were placed on the 15th; ORD003 the day before.
	assert.Equal(t, 2, stats.TodayOrders)
	assert.Equal(t, "115.50", stats.TodaySales.StringFixed(2))
	assert.Equal(t, 2, stats.ActiveOrders)
	assert.Equal(t, 0, stats.CompletedToday)
	// Revenue counts completed orders only: ORD003.
	assert.Equal(t, "70.50", stats.TotalRevenue.StringFixed(2))
	// 24 Double Chocolate Fudge beats every other cookie's quantity.
	assert.Equal(t, "Double Chocolate Fudge", stats.MostPopular)
}

func TestStatsCompletedToday(t *testing.T) {
	repo := newTestRepo(t, Config{})
	now := time.Date(2024, 1, 15, 16, 0, 0, 0, time.Local)
	repo.now = func() time.Time { return now }

	_, err := repo.UpdateStatus(context.Background(), "ORD002", models.StatusCompleted)
	require.NoError(t, err)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CompletedToday)
	assert.Equal(t, 1, stats.ActiveOrders)
	// ORD002 now adds its 72.00 to revenue.
	assert.Equal(t, "142.50", stats.TotalRevenue.StringFixed(2))
}
