package jsonfile

import (
	"context"
	"fmt"
	"sync"

	"jobcart/internal/models"
	"jobcart/internal/server/storage"
)

// ProductStore is a file-backed implementation of storage.ProductStorage.
type ProductStore struct {
	path     string
	mu       sync.RWMutex
	products []*models.Product
	nextID   int
}

// NewProductStore loads the products file at path. The next
// auto-increment id continues from the highest stored id.
func NewProductStore(path string) (*ProductStore, error) {
	s := &ProductStore{path: path, nextID: 1}
	if err := load(path, &s.products); err != nil {
		return nil, fmt.Errorf("failed to load product store: %w", err)
	}

	for _, p := range s.products {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}

	return s, nil
}

// CreateProduct stores a new product, assigning the next auto-increment id
func (s *ProductStore) CreateProduct(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextID

	stored := *product
	s.products = append(s.products, &stored)

	if err := flush(s.path, s.products); err != nil {
		s.products = s.products[:len(s.products)-1]
		return fmt.Errorf("failed to flush product store: %w", err)
	}

	s.nextID++
	return nil
}

// ListProducts retrieves all products in insertion order
func (s *ProductStore) ListProducts(ctx context.Context) ([]*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Product, 0, len(s.products))
	for _, p := range s.products {
		copied := *p
		result = append(result, &copied)
	}

	return result, nil
}

// GetProductByID retrieves one product
func (s *ProductStore) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := *p
			return &product, nil
		}
	}

	return nil, storage.ErrProductNotFound
}
