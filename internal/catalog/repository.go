// Package catalog provides read/update access to the cookie catalog and
// enforces the stock/availability rules on every mutation.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"takeabite/internal/models"
	"takeabite/internal/storage"
)

// ErrNotFound is returned when no cookie matches the requested identifier.
var ErrNotFound = errors.New("cookie not found")

// Repository reads and mutates the catalog collection. It holds no cached
// state: every operation re-reads the stored collection, applies the change,
// and writes the whole collection back.
type Repository struct {
	store    *storage.Store
	defaults []models.Cookie
	log      *zap.Logger
}

// NewRepository returns a catalog repository backed by store. defaults is the
// static catalog used for first-run seeding fallback when a read fails.
func NewRepository(store *storage.Store, defaults []models.Cookie, log *zap.Logger) *Repository {
	return &Repository{store: store, defaults: defaults, log: log}
}

// List returns all catalog items. If the collection has never been written it
// is seeded from the defaults first; if the read itself fails a copy of the
// defaults is returned so callers always have a catalog to render.
func (r *Repository) List(ctx context.Context) ([]models.Cookie, error) {
	cookies, err := r.loadOrSeed()
	if err != nil {
		r.log.Warn("failed to read catalog, serving defaults", zap.Error(err))
		return r.cloneDefaults(), nil
	}
	return cookies, nil
}

// Update replaces the stored cookie matching c's identifier, re-asserting the
// stock/availability invariant first, and returns the full updated catalog.
// The write is all-or-nothing: on store failure nothing is applied. Unlike
// List, a failed read propagates here — mutating a fallback catalog would
// partially apply the change.
func (r *Repository) Update(ctx context.Context, c models.Cookie) ([]models.Cookie, error) {
	c.Normalize()

	cookies, err := r.loadOrSeed()
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cookies {
		if cookies[i].ID == c.ID {
			cookies[i] = c
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("update cookie %d: %w", c.ID, ErrNotFound)
	}

	if err := r.save(cookies); err != nil {
		return nil, err
	}
	return cookies, nil
}

// AdjustStock applies delta to the cookie's stock count, clamping at zero,
// and derives availability from the resulting count. This is the only
// supported form of incremental stock change.
func (r *Repository) AdjustStock(ctx context.Context, id, delta int) (models.Cookie, error) {
	cookies, err := r.loadOrSeed()
	if err != nil {
		return models.Cookie{}, err
	}

	for i := range cookies {
		if cookies[i].ID != id {
			continue
		}
		newCount := cookies[i].StockCount + delta
		if newCount < 0 {
			newCount = 0
		}
		cookies[i].StockCount = newCount
		cookies[i].InStock = newCount > 0

		if err := r.save(cookies); err != nil {
			return models.Cookie{}, err
		}
		return cookies[i], nil
	}
	return models.Cookie{}, fmt.Errorf("adjust stock for cookie %d: %w", id, ErrNotFound)
}

// Available returns the cookies currently offered for sale, optionally
// filtered by category ("All" or empty matches everything).
func (r *Repository) Available(ctx context.Context, category string) ([]models.Cookie, error) {
	cookies, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Cookie, 0, len(cookies))
	for _, c := range cookies {
		if !c.InStock {
			continue
		}
		if category != "" && category != "All" && c.Category != category {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// LowStock returns in-stock cookies whose count has fallen below the restock
// threshold.
func (r *Repository) LowStock(ctx context.Context) ([]models.Cookie, error) {
	cookies, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Cookie
	for _, c := range cookies {
		if c.InStock && c.StockCount < models.LowStockThreshold {
			out = append(out, c)
		}
	}
	return out, nil
}

// loadOrSeed returns the stored catalog, seeding it from the defaults if the
// collection has never been written. Read failures propagate; the
// serve-defaults fallback belongs to List alone.
func (r *Repository) loadOrSeed() ([]models.Cookie, error) {
	cookies, err := r.load()
	if err == nil {
		return cookies, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if err := r.save(r.defaults); err != nil {
		return nil, err
	}
	return r.cloneDefaults(), nil
}

// cloneDefaults copies the injected default catalog so callers can never
// mutate the seed data through a shared slice.
func (r *Repository) cloneDefaults() []models.Cookie {
	out := make([]models.Cookie, len(r.defaults))
	copy(out, r.defaults)
	return out
}

func (r *Repository) load() ([]models.Cookie, error) {
	payload, err := r.store.ReadCollection(storage.CookiesKey)
	if err != nil {
		return nil, err
	}
	var cookies []models.Cookie
	if err := json.Unmarshal(payload, &cookies); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return cookies, nil
}

func (r *Repository) save(cookies []models.Cookie) error {
	payload, err := json.Marshal(cookies)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return r.store.WriteCollection(storage.CookiesKey, payload)
}
