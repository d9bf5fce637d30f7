// Package memory provides the in-memory product store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iyhunko/product-catalog-api/internal/model"
	"github.com/iyhunko/product-catalog-api/internal/repository"
)

// ProductRepository keeps products in an ordered slice guarded by a mutex.
type ProductRepository struct {
	mu       sync.RWMutex
	products []model.Product
}

// NewProductRepository creates a store holding copies of the given products.
func NewProductRepository(seed ...model.Product) *ProductRepository {
	products := make([]model.Product, len(seed))
	copy(products, seed)
	return &ProductRepository{products: products}
}

// List filters then paginates the stored products.
func (r *ProductRepository) List(_ context.Context, query repository.Query) ([]model.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if query.Matches(p.Category) {
			filtered = append(filtered, p)
		}
	}

	start, end := query.Window(len(filtered))
	return filtered[start:end], len(filtered), nil
}

// All returns a snapshot of every stored product.
func (r *ProductRepository) All(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Product, len(r.products))
	copy(result, r.products)
	return result, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("find product %s: %w", id, repository.ErrNotFound)
	}
	p := r.products[i]
	return &p, nil
}

func (r *ProductRepository) Create(_ context.Context, product *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for product.ID == "" || r.indexOf(product.ID) >= 0 {
		product.InitMeta()
	}
	r.products = append(r.products, *product)
	created := *product
	return &created, nil
}

func (r *ProductRepository) Update(_ context.Context, product *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return nil, fmt.Errorf("update product %s: %w", product.ID, repository.ErrNotFound)
	}
	r.products[i] = *product
	updated := *product
	return &updated, nil
}

// DeleteByID removes every product with the given ID.
func (r *ProductRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.products)
	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	clear(r.products[len(kept):])
	r.products = kept

	if len(kept) == before {
		return fmt.Errorf("delete product %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *ProductRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
