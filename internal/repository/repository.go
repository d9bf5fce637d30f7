package repository

import (
	"context"
	"errors"

	"github.com/iyhunko/product-catalog-api/internal/model"
)

var (
	// ErrNotFound is returned when no product matches the requested ID.
	ErrNotFound = errors.New("product not found")
)

// Store defines the operations on the product collection.
type Store interface {
	// List returns the products matching the query filters, in insertion order, and the count before pagination.
	List(ctx context.Context, query Query) (result []model.Product, total int, err error)
	// All returns every product in insertion order.
	All(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	// Update replaces the product with the same ID in place.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteByID(ctx context.Context, id string) error
}
