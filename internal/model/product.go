package model

import (
	"github.com/google/uuid"
)

// Product represents a catalog product.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// InitMeta assigns a freshly generated ID to the product.
func (p *Product) InitMeta() {
	p.ID = uuid.New().String()
}

// ProductPatch holds the fields a request may provide when creating or updating a product.
// Nil fields were absent from the request.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// NewProduct builds a product from the patch, applying defaults for absent fields.
func NewProduct(patch ProductPatch) *Product {
	p := &Product{InStock: true}
	p.Apply(patch)
	p.InitMeta()
	return p
}

// Apply overwrites the product's fields with those present in the patch. The ID is never touched.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
}

// SeedProducts returns the records present when the process starts.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Description: "High-performance laptop",
			Price:       999.99,
			Category:    "Electronics",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Coffee Mug",
			Description: "Ceramic coffee mug",
			Price:       12.99,
			Category:    "Kitchen",
			InStock:     true,
		},
	}
}
