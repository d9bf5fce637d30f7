package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/iyhunko/product-catalog-api/internal/apperror"
	"github.com/iyhunko/product-catalog-api/internal/model"
	"github.com/iyhunko/product-catalog-api/internal/repository"
	"github.com/iyhunko/product-catalog-api/internal/service"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ListProductsResponse represents the response body for listing products.
type ListProductsResponse struct {
	Data       []model.Product       `json:"data"`
	Pagination repository.Pagination `json:"pagination"`
}

// ListProducts handles the HTTP GET request for listing products with filtering and pagination.
func (pc *ProductController) ListProducts(c *gin.Context) {
	// page and limit stay text so malformed values fall back to defaults
	query := repository.NewQuery().
		With(repository.CategoryField, c.Query("category")).
		ApplyPagination(c.Query("page"), c.Query("limit"))

	products, pagination, err := pc.productService.ListProducts(c.Request.Context(), *query)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ListProductsResponse{
		Data:       products,
		Pagination: pagination,
	})
}

// GetProduct handles the HTTP GET request for a single product.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles the HTTP POST request for creating a new product.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	created, err := pc.productService.CreateProduct(c.Request.Context(), patch)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateProduct handles the HTTP PUT request for updating a product by ID.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	updated, err := pc.productService.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProduct handles the HTTP DELETE request for deleting a product by ID.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchProducts handles the HTTP GET request for searching products by name or description.
func (pc *ProductController) SearchProducts(c *gin.Context) {
	products, err := pc.productService.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// Stats handles the HTTP GET request for catalog statistics.
func (pc *ProductController) Stats(c *gin.Context) {
	stats, err := pc.productService.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func bindPatch(c *gin.Context) (model.ProductPatch, bool) {
	var patch model.ProductPatch
	if err := c.ShouldBindBodyWith(&patch, binding.JSON); err != nil {
		fail(c, apperror.Validation("Invalid JSON body", err.Error()))
		return patch, false
	}
	return patch, true
}

// fail hands the error to the error handler middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
