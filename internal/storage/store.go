// Package storage implements the on-device persistent store: named JSON
// collections kept in a single SQLite file. Repositories read and write whole
// collections through it; it owns the durable representation exclusively.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"go.uber.org/zap"

	"takeabite/internal/seed"
)

// Collection keys. The values are part of the on-disk layout; changing them
// orphans existing data.
const (
	CookiesKey = "cookies_data"
	OrdersKey  = "orders_data"
)

// ErrNotFound is returned by ReadCollection when the key has never been
// written.
var ErrNotFound = errors.New("collection not found")

// collection is the storage row: one JSON payload per collection key.
type collection struct {
	Key     string `gorm:"primary_key;type:varchar(64)"`
	Payload []byte `gorm:"type:blob"`
}

func (collection) TableName() string {
	return "collections"
}

// Store provides durable key-value collection storage over SQLite.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open connects to the SQLite file at path and ensures the schema exists.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&collection{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ReadCollection returns the raw JSON payload stored under key, or
// ErrNotFound when the key is absent.
func (s *Store) ReadCollection(key string) ([]byte, error) {
	var rec collection
	if err := s.db.Where("key = ?", key).First(&rec).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read collection %q: %w", key, err)
	}
	return rec.Payload, nil
}

// WriteCollection durably replaces the payload stored under key. The whole
// collection is rewritten on every mutation; at this data scale that is
// cheaper than keyed row storage and keeps the read path trivial.
func (s *Store) WriteCollection(key string, payload []byte) error {
	var existing collection
	err := s.db.Where("key = ?", key).First(&existing).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		if err := s.db.Create(&collection{Key: key, Payload: payload}).Error; err != nil {
			return fmt.Errorf("failed to write collection %q: %w", key, err)
		}
	case err != nil:
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	default:
		if err := s.db.Model(&collection{}).Where("key = ?", key).
			Update("payload", payload).Error; err != nil {
			return fmt.Errorf("failed to write collection %q: %w", key, err)
		}
	}
	return nil
}

// RemoveAll deletes the given collections. Missing keys are not an error.
func (s *Store) RemoveAll(keys ...string) error {
	if err := s.db.Where("key IN (?)", keys).Delete(&collection{}).Error; err != nil {
		return fmt.Errorf("failed to remove collections: %w", err)
	}
	return nil
}

// Seed writes the default catalog and sample orders for any collection that
// has never been written. Existing data is never overwritten, so calling Seed
// repeatedly is a no-op after the first run.
func (s *Store) Seed(data seed.Data) error {
	if err := s.seedCollection(CookiesKey, data.Cookies); err != nil {
		return err
	}
	return s.seedCollection(OrdersKey, data.Orders)
}

func (s *Store) seedCollection(key string, records interface{}) error {
	_, err := s.ReadCollection(key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode seed data for %q: %w", key, err)
	}
	if err := s.WriteCollection(key, payload); err != nil {
		return err
	}
	s.log.Info("seeded collection", zap.String("key", key))
	return nil
}

// Reset clears both collections and reseeds them from data.
func (s *Store) Reset(data seed.Data) error {
	if err := s.RemoveAll(CookiesKey, OrdersKey); err != nil {
		return err
	}
	return s.Seed(data)
}
