// Package orders implements the order repository: creation with full draft
// validation, listing, and lifecycle updates, with totals and readiness
// estimates derived rather than caller-supplied.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"takeabite/internal/models"
	"takeabite/internal/storage"
)

// ErrNotFound is returned when no order matches the requested identifier.
var ErrNotFound = errors.New("order not found")

// ErrInvalidTransition is returned in strict mode when a status change is not
// a forward-adjacent transition (or a cancellation of a non-terminal order).
var ErrInvalidTransition = errors.New("invalid status transition")

// Config carries the tunable behavior of the repository.
type Config struct {
	// PickupLead and DeliveryLead are added to the order time to derive the
	// estimated-ready timestamp. Zero values fall back to 15 and 30 minutes.
	PickupLead   time.Duration
	DeliveryLead time.Duration

	// StrictTransitions rejects status changes that skip or rewind the
	// fulfillment flow. Off by default: the storefront historically accepted
	// any status at any time, and callers may rely on that.
	StrictTransitions bool

	// UUIDIdentifiers switches order-ID generation from timestamp+random to
	// a collision-resistant UUID-backed scheme. Both produce ORD-prefixed
	// strings.
	UUIDIdentifiers bool
}

// Repository reads and mutates the orders collection. Like the catalog it is
// stateless between calls: read, mutate, write back the whole collection.
type Repository struct {
	store    *storage.Store
	defaults []models.Order
	cfg      Config
	log      *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewRepository returns an order repository backed by store. defaults is the
// sample order set used for seeding and read-failure fallback.
func NewRepository(store *storage.Store, defaults []models.Order, cfg Config, log *zap.Logger) *Repository {
	if cfg.PickupLead <= 0 {
		cfg.PickupLead = 15 * time.Minute
	}
	if cfg.DeliveryLead <= 0 {
		cfg.DeliveryLead = 30 * time.Minute
	}

	r := &Repository{
		store:    store,
		defaults: defaults,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
	if cfg.UUIDIdentifiers {
		r.newID = uuidOrderID
	} else {
		r.newID = func() string { return timestampOrderID(r.now()) }
	}
	return r
}

// List returns all orders with date fields materialized as time values. A
// missing collection is seeded from the samples; a failed read falls back to
// a copy of them so the UI always has something to render.
func (r *Repository) List(ctx context.Context) ([]models.Order, error) {
	all, err := r.loadOrSeed()
	if err != nil {
		r.log.Warn("failed to read orders, serving samples", zap.Error(err))
		return r.cloneDefaults(), nil
	}
	return all, nil
}

// Get returns the order with the given identifier.
func (r *Repository) Get(ctx context.Context, id string) (models.Order, error) {
	all, err := r.List(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range all {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, fmt.Errorf("get order %s: %w", id, ErrNotFound)
}

// Create validates the draft and, on success, persists a new pending order
// with a fresh identifier, the current time as its order date, a derived
// estimated-ready time, and a total recomputed from the line items. On
// validation failure it returns a ValidationError carrying every failing
// field and persists nothing.
func (r *Repository) Create(ctx context.Context, draft Draft) (models.Order, error) {
	if verr := draft.Validate(); len(verr) > 0 {
		return models.Order{}, verr
	}

	now := r.now()
	lead := r.cfg.PickupLead
	if draft.OrderType == models.TypeDelivery {
		lead = r.cfg.DeliveryLead
	}

	order := models.Order{
		ID:                  r.newID(),
		CustomerName:        draft.CustomerName,
		CustomerPhone:       draft.CustomerPhone,
		CustomerEmail:       draft.CustomerEmail,
		Items:               draft.Items,
		TotalAmount:         models.ItemsTotal(draft.Items),
		OrderType:           draft.OrderType,
		DeliveryAddress:     draft.DeliveryAddress,
		Status:              models.StatusPending,
		SpecialInstructions: draft.SpecialInstructions,
		OrderDate:           now,
		EstimatedReady:      now.Add(lead),
	}

	all, err := r.loadOrSeed()
	if err != nil {
		return models.Order{}, err
	}
	all = append(all, order)
	if err := r.save(all); err != nil {
		return models.Order{}, err
	}

	r.log.Info("order created",
		zap.String("id", order.ID),
		zap.String("type", string(order.OrderType)),
		zap.String("total", order.TotalAmount.StringFixed(2)))
	return order, nil
}

// Update replaces the stored order matching o's identifier. The total is
// recomputed from the line items and the completed-date coupling is
// re-asserted, so neither can drift from the rest of the record.
func (r *Repository) Update(ctx context.Context, o models.Order) (models.Order, error) {
	o.TotalAmount = models.ItemsTotal(o.Items)
	r.coupleCompletedDate(&o)

	all, err := r.loadOrSeed()
	if err != nil {
		return models.Order{}, err
	}
	for i := range all {
		if all[i].ID == o.ID {
			all[i] = o
			if err := r.save(all); err != nil {
				return models.Order{}, err
			}
			return o, nil
		}
	}
	return models.Order{}, fmt.Errorf("update order %s: %w", o.ID, ErrNotFound)
}

// UpdateStatus sets the order's status. Completing an order stamps its
// completed date; any other status clears it. By default any known status is
// accepted regardless of the current one; with StrictTransitions enabled only
// forward-adjacent moves and cancellation of non-terminal orders pass.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("unknown status %q", status)
	}

	all, err := r.loadOrSeed()
	if err != nil {
		return models.Order{}, err
	}
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if r.cfg.StrictTransitions {
			if err := checkTransition(all[i].Status, status); err != nil {
				return models.Order{}, err
			}
		}
		all[i].Status = status
		r.coupleCompletedDate(&all[i])
		if err := r.save(all); err != nil {
			return models.Order{}, err
		}
		return all[i], nil
	}
	return models.Order{}, fmt.Errorf("update status of order %s: %w", id, ErrNotFound)
}

// coupleCompletedDate keeps CompletedDate non-nil exactly when the order is
// completed.
func (r *Repository) coupleCompletedDate(o *models.Order) {
	if o.Status == models.StatusCompleted {
		if o.CompletedDate == nil {
			now := r.now()
			o.CompletedDate = &now
		}
		return
	}
	o.CompletedDate = nil
}

// statusFlow is the forward fulfillment sequence used in strict mode.
var statusFlow = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusCompleted,
}

func checkTransition(from, to models.OrderStatus) error {
	if to == models.StatusCancelled {
		if from.Terminal() {
			return fmt.Errorf("cancel %s order: %w", from, ErrInvalidTransition)
		}
		return nil
	}
	for i, s := range statusFlow {
		if s == from && i+1 < len(statusFlow) && statusFlow[i+1] == to {
			return nil
		}
	}
	return fmt.Errorf("%s to %s: %w", from, to, ErrInvalidTransition)
}

// loadOrSeed returns the stored orders, seeding the samples if the collection
// has never been written. Read failures propagate; only List serves the
// sample fallback, since mutating a fallback collection would partially apply
// the change and could overwrite stored data on a transient read failure.
func (r *Repository) loadOrSeed() ([]models.Order, error) {
	all, err := r.load()
	if err == nil {
		return all, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if err := r.save(r.defaults); err != nil {
		return nil, err
	}
	return r.cloneDefaults(), nil
}

// cloneDefaults copies the sample orders, including each line-item slice, so
// callers can never mutate the seed data through shared backing arrays.
func (r *Repository) cloneDefaults() []models.Order {
	out := make([]models.Order, len(r.defaults))
	copy(out, r.defaults)
	for i := range out {
		items := make([]models.OrderItem, len(out[i].Items))
		copy(items, out[i].Items)
		out[i].Items = items
	}
	return out
}

func (r *Repository) load() ([]models.Order, error) {
	payload, err := r.store.ReadCollection(storage.OrdersKey)
	if err != nil {
		return nil, err
	}
	var all []models.Order
	if err := json.Unmarshal(payload, &all); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return all, nil
}

func (r *Repository) save(all []models.Order) error {
	payload, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}
	return r.store.WriteCollection(storage.OrdersKey, payload)
}
