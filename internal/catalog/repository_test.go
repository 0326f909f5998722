package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"takeabite/internal/models"
	"takeabite/internal/seed"
	"takeabite/internal/storage"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewRepository(store, seed.Default().Cookies, zap.NewNop())
}

func TestListSeedsDefaults(t *testing.T) {
	repo := newTestRepo(t)

	cookies, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cookies, 8)

	// A second call reads the stored collection, not the defaults again.
	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cookies, again)
}

func TestUpdateReassertsAvailabilityInvariant(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// A zero count must force the cookie out of stock, however it was edited.
	updated, err := repo.Update(ctx, models.Cookie{
		ID:         1,
		Name:       "Chocolate Chip Classic",
		Price:      decimal.RequireFromString("2.50"),
		InStock:    true,
		StockCount: 0,
		Category:   "Classic",
	})
	require.NoError(t, err)

	var got models.Cookie
	for _, c := range updated {
		if c.ID == 1 {
			got = c
		}
	}
	assert.False(t, got.InStock)
	assert.Equal(t, 0, got.StockCount)
}

func TestUpdateClampsNegativeCount(t *testing.T) {
	repo := newTestRepo(t)

	updated, err := repo.Update(context.Background(), models.Cookie{
		ID:         2,
		Name:       "Double Chocolate Fudge",
		Price:      decimal.RequireFromString("3.00"),
		InStock:    true,
		StockCount: -5,
	})
	require.NoError(t, err)

	for _, c := range updated {
		if c.ID == 2 {
			assert.Equal(t, 0, c.StockCount)
			assert.False(t, c.InStock)
		}
	}
}

func TestUpdateManualUnavailabilityStands(t *testing.T) {
	repo := newTestRepo(t)

	// Positive stock with a manual out-of-stock flag is a valid state.
	updated, err := repo.Update(context.Background(), models.Cookie{
		ID:         3,
		Name:       "Sugar Cookie Delight",
		Price:      decimal.RequireFromString("2.25"),
		InStock:    false,
		StockCount: 12,
	})
	require.NoError(t, err)

	for _, c := range updated {
		if c.ID == 3 {
			assert.False(t, c.InStock)
			assert.Equal(t, 12, c.StockCount)
		}
	}
}

func TestUpdateUnknownCookie(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Update(context.Background(), models.Cookie{ID: 404})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdjustStockFloor(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Red Velvet Cream seeds with 15 in stock.
	cookie, err := repo.AdjustStock(ctx, 8, -10)
	require.NoError(t, err)
	assert.Equal(t, 5, cookie.StockCount)
	assert.True(t, cookie.InStock)

	// Overshooting the remaining count clamps at zero and flips availability.
	cookie, err = repo.AdjustStock(ctx, 8, -10)
	require.NoError(t, err)
	assert.Equal(t, 0, cookie.StockCount)
	assert.False(t, cookie.InStock)
}

func TestAdjustStockRestocksAvailability(t *testing.T) {
	repo := newTestRepo(t)

	// White Chocolate Macadamia seeds out of stock.
	cookie, err := repo.AdjustStock(context.Background(), 7, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, cookie.StockCount)
	assert.True(t, cookie.InStock)
}

func TestAdjustStockUnknownCookie(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AdjustStock(context.Background(), 404, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAvailableFiltersStockAndCategory(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	all, err := repo.Available(ctx, "")
	require.NoError(t, err)
	for _, c := range all {
		assert.True(t, c.InStock)
		assert.NotEqual(t, 7, c.ID)
	}

	premium, err := repo.Available(ctx, "Premium")
	require.NoError(t, err)
	for _, c := range premium {
		assert.Equal(t, "Premium", c.Category)
	}
	// Two premium cookies are in stock in the default catalog.
	assert.Len(t, premium, 2)
}

func TestUpdateStoreFailureLeavesStateUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.Open(path, zap.NewNop())
	require.NoError(t, err)

	repo := NewRepository(store, seed.Default().Cookies, zap.NewNop())
	_, err = repo.List(context.Background())
	require.NoError(t, err)

	// With the store down the update must fail outright, not half-apply.
	require.NoError(t, store.Close())
	_, err = repo.Update(context.Background(), models.Cookie{
		ID:         1,
		Name:       "Misprint",
		Price:      decimal.RequireFromString("9.99"),
		InStock:    true,
		StockCount: 99,
	})
	require.Error(t, err)

	// A healthy read afterwards shows the pre-mutation state.
	reopened, err := storage.Open(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	cookies, err := NewRepository(reopened, seed.Default().Cookies, zap.NewNop()).List(context.Background())
	require.NoError(t, err)
	for _, c := range cookies {
		if c.ID == 1 {
			assert.Equal(t, "Chocolate Chip Classic", c.Name)
			assert.Equal(t, 50, c.StockCount)
		}
	}
}

func TestAdjustStockStoreFailurePropagates(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	repo := NewRepository(store, seed.Default().Cookies, zap.NewNop())
	require.NoError(t, store.Close())

	_, err = repo.AdjustStock(context.Background(), 1, -5)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestListFallbackReturnsCopyOfDefaults(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	repo := NewRepository(store, seed.Default().Cookies, zap.NewNop())
	require.NoError(t, store.Close())

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "Scribbled"
	first[0].StockCount = 0

	// Mutating the fallback slice must never reach the injected defaults.
	second, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Chocolate Chip Classic", second[0].Name)
	assert.Equal(t, 50, second[0].StockCount)
}

func TestLowStock(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AdjustStock(ctx, 1, -45) // 50 -> 5
	require.NoError(t, err)

	low, err := repo.LowStock(ctx)
	require.NoError(t, err)

	ids := make([]int, 0, len(low))
	for _, c := range low {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, 1)
	// Out-of-stock cookies are not "low", they are gone from the menu.
	assert.NotContains(t, ids, 7)
}
