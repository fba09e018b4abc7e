package storage

import (
	"context"

	"jobcart/internal/models"
)

// ProductStorage defines interface for catalog persistence
type ProductStorage interface {
	// CreateProduct stores a new product, assigning the next auto-increment id
	CreateProduct(ctx context.Context, product *models.Product) error

	// ListProducts retrieves all products in insertion order
	ListProducts(ctx context.Context) ([]*models.Product, error)

	// GetProductByID retrieves one product
	// Returns ErrProductNotFound if the id is unknown
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
}

// CartStorage defines interface for per-user cart persistence
type CartStorage interface {
	// GetItem retrieves the owner's cart entry for one product
	// Returns ErrCartItemNotFound when the cart has no such entry
	GetItem(ctx context.Context, owner string, productID int) (*models.CartItem, error)

	// SetItem creates or replaces the owner's cart entry for a product
	SetItem(ctx context.Context, item *models.CartItem) error

	// ListByOwner retrieves the cart items owned by the given user
	// in insertion order
	ListByOwner(ctx context.Context, owner string) ([]*models.CartItem, error)
}
