package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog-api/internal/apperror"
	"github.com/iyhunko/product-catalog-api/internal/config"
)

// Version is the API version reported by the info endpoint.
const Version = "1.0.0"

// Controller handles general HTTP requests.
type Controller struct {
	config *config.Config
}

// New creates a new Controller with the given configuration.
func New(config *config.Config) *Controller {
	return &Controller{
		config: config,
	}
}

// InfoResponse describes the service and its endpoints.
type InfoResponse struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Endpoints   map[string]string `json:"endpoints"`
}

// Info handles the HTTP GET request for the service root.
func (con *Controller) Info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Message:     "Welcome to the Product API",
		Version:     Version,
		Environment: con.config.Env,
		Endpoints: map[string]string{
			"products": "/api/products",
			"product":  "/api/products/:id",
			"search":   "/api/products/search?q=term",
			"stats":    "/api/products/stats",
		},
	})
}

// NoRoute reports requests that matched no route as not found.
func (con *Controller) NoRoute(c *gin.Context) {
	_ = c.Error(apperror.NotFound("Route %s %s not found", c.Request.Method, c.Request.URL.Path))
	c.Abort()
}
