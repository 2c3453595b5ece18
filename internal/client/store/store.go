// Package store holds the authoritative in-memory product list and mirrors
// it to a persistent string store after every change.
package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
)

// Store is not safe for concurrent use; it expects a single event loop.
type Store struct {
	repo     kv.Repository
	version  models.Version
	log      logging.Logger
	products []models.Product
	lastID   int64
}

func New(repo kv.Repository, version models.Version, log logging.Logger) *Store {
	return &Store{
		repo:     repo,
		version:  version,
		log:      log.With("component", "store", "key", version.StorageKey()),
		products: []models.Product{},
	}
}

// Version returns the schema version the store persists.
func (s *Store) Version() models.Version {
	return s.version
}

// Load reads the persisted list, falling back to the version seed when the
// key is absent. The loaded list replaces the in-memory one.
func (s *Store) Load(ctx context.Context) ([]models.Product, error) {
	data, found, err := s.repo.Get(ctx, s.version.StorageKey())
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	var products []models.Product
	if !found {
		products = s.version.Seed()
		s.log.Debug(ctx, "no persisted products, using seed", "count", len(products))
	} else {
		products, err = Decode(s.version, data)
		if err != nil {
			s.log.Error(ctx, "persisted products are unreadable", "error", err)
			return nil, fmt.Errorf("load products: %w", err)
		}
	}

	s.products = products
	return s.Products(), nil
}

// Persist writes the full in-memory list under the version key.
func (s *Store) Persist(ctx context.Context) error {
	return s.write(ctx, s.products)
}

func (s *Store) write(ctx context.Context, products []models.Product) error {
	data, err := Encode(s.version, products)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, s.version.StorageKey(), data); err != nil {
		s.log.Error(ctx, "failed to persist products", "error", err)
		return fmt.Errorf("persist products: %w", err)
	}
	s.log.Debug(ctx, "products persisted", "count", len(products))
	return nil
}

// commit persists next and adopts it only when the write succeeded.
func (s *Store) commit(ctx context.Context, next []models.Product) error {
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.products = next
	return nil
}

// InsertFront prepends p and persists.
func (s *Store) InsertFront(ctx context.Context, p models.Product) error {
	return s.commit(ctx, InsertFront(s.products, p))
}

// Replace updates the product with id in place and persists. A missing id is
// a no-op that does not persist.
func (s *Store) Replace(ctx context.Context, id int64, update func(*models.Product)) (bool, error) {
	next, found := Replace(s.products, id, update)
	if !found {
		return false, nil
	}
	return true, s.commit(ctx, next)
}

// Remove deletes the product with id and persists. found tells the caller
// whether anything was removed; a missing id does not persist.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	next, found := Remove(s.products, id)
	if !found {
		return false, nil
	}
	return true, s.commit(ctx, next)
}

// Products returns a copy of the current list.
func (s *Store) Products() []models.Product {
	return clone(s.products)
}

// Find returns the product with id.
func (s *Store) Find(id int64) (models.Product, bool) {
	if idx := indexOf(s.products, id); idx >= 0 {
		return s.products[idx], true
	}
	return models.Product{}, false
}

// NextID hands out an id larger than every id issued or stored so far.
func (s *Store) NextID() int64 {
	next := s.lastID
	for _, p := range s.products {
		if p.ID > next {
			next = p.ID
		}
	}
	next++
	s.lastID = next
	return next
}
