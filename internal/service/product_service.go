package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iyhunko/product-catalog-api/internal/apperror"
	"github.com/iyhunko/product-catalog-api/internal/metrics"
	"github.com/iyhunko/product-catalog-api/internal/model"
	"github.com/iyhunko/product-catalog-api/internal/repository"
	"github.com/iyhunko/product-catalog-api/internal/sqs"
)

// Notifier publishes product lifecycle notifications.
type Notifier interface {
	PublishProductMessage(ctx context.Context, msg sqs.ProductMessage) error
}

type ProductService struct {
	repo     repository.Store
	notifier Notifier
}

// NewProductService creates the service. notifier may be nil, in which case no notifications are sent.
func NewProductService(repo repository.Store, notifier Notifier) *ProductService {
	return &ProductService{
		repo:     repo,
		notifier: notifier,
	}
}

// ListProducts returns one page of products matching the query and its pagination block.
func (ps *ProductService) ListProducts(ctx context.Context, query repository.Query) ([]model.Product, repository.Pagination, error) {
	products, total, err := ps.repo.List(ctx, query)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return products, repository.NewPagination(query, total), nil
}

func (ps *ProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return product, nil
}

func (ps *ProductService) CreateProduct(ctx context.Context, patch model.ProductPatch) (*model.Product, error) {
	created, err := ps.repo.Create(ctx, model.NewProduct(patch))
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	ps.notify(ctx, sqs.ActionCreated, created)

	return created, nil
}

// UpdateProduct merges the patch onto the stored product. The ID always comes from the argument.
func (ps *ProductService) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	existing, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, id)
	}

	existing.Apply(patch)
	existing.ID = id

	updated, err := ps.repo.Update(ctx, existing)
	if err != nil {
		return nil, notFoundOr(err, id)
	}

	metrics.ProductsUpdated.Inc()
	ps.notify(ctx, sqs.ActionUpdated, updated)

	return updated, nil
}

func (ps *ProductService) DeleteProduct(ctx context.Context, id string) error {
	// Find the product first to get its details for the message
	product, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, id)
	}

	if err := ps.repo.DeleteByID(ctx, id); err != nil {
		return notFoundOr(err, id)
	}

	metrics.ProductsDeleted.Inc()
	ps.notify(ctx, sqs.ActionDeleted, product)

	return nil
}

// SearchProducts returns products whose name or description contains term, ignoring case.
func (ps *ProductService) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	if term == "" {
		return nil, apperror.Validation("Validation failed", "q parameter is missing")
	}

	products, err := ps.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	result := make([]model.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			(p.Description != "" && strings.Contains(strings.ToLower(p.Description), needle)) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (ps *ProductService) Stats(ctx context.Context) (model.Stats, error) {
	products, err := ps.repo.All(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return model.ComputeStats(products), nil
}

func (ps *ProductService) notify(ctx context.Context, action string, product *model.Product) {
	if ps.notifier == nil {
		return
	}
	msg := sqs.ProductMessage{
		Action:    action,
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
	}
	if err := ps.notifier.PublishProductMessage(ctx, msg); err != nil {
		metrics.NotificationFailures.WithLabelValues(action).Inc()
		slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", action), slog.String("product_id", product.ID))
	}
}

func notFoundOr(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Product with id %s not found", id)
	}
	return fmt.Errorf("product %s: %w", id, err)
}
