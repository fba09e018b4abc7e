package jsonfile

import (
	"context"
	"fmt"
	"sync"

	"jobcart/internal/models"
	"jobcart/internal/server/storage"
)

// CartStore is a file-backed implementation of storage.CartStorage.
type CartStore struct {
	path  string
	mu    sync.RWMutex
	items []*models.CartItem
}

// NewCartStore loads the cart file at path. A missing file yields an
// empty store.
func NewCartStore(path string) (*CartStore, error) {
	s := &CartStore{path: path}
	if err := load(path, &s.items); err != nil {
		return nil, fmt.Errorf("failed to load cart store: %w", err)
	}
	return s, nil
}

// GetItem retrieves the owner's cart entry for one product
func (s *CartStore) GetItem(ctx context.Context, owner string, productID int) (*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.Owner == owner && item.ProductID == productID {
			copied := *item
			return &copied, nil
		}
	}

	return nil, storage.ErrCartItemNotFound
}

// SetItem creates or replaces the owner's cart entry for a product
func (s *CartStore) SetItem(ctx context.Context, item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.Owner == item.Owner && existing.ProductID == item.ProductID {
			previous := existing.Quantity
			existing.Quantity = item.Quantity

			if err := flush(s.path, s.items); err != nil {
				existing.Quantity = previous
				return fmt.Errorf("failed to flush cart store: %w", err)
			}

			return nil
		}
	}

	stored := *item
	s.items = append(s.items, &stored)

	if err := flush(s.path, s.items); err != nil {
		s.items = s.items[:len(s.items)-1]
		return fmt.Errorf("failed to flush cart store: %w", err)
	}

	return nil
}

// ListByOwner retrieves the cart items owned by the given user in insertion order
func (s *CartStore) ListByOwner(ctx context.Context, owner string) ([]*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.CartItem, 0)
	for _, item := range s.items {
		if item.Owner == owner {
			copied := *item
			result = append(result, &copied)
		}
	}

	return result, nil
}
