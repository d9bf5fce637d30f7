package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog-api/internal/config"
	"github.com/iyhunko/product-catalog-api/internal/http/controller"
	"github.com/iyhunko/product-catalog-api/internal/http/middleware"
)

// InitRouter registers the middleware pipeline and routes on server.
// Every request passes through logging, CORS and error rendering; mutating routes
// additionally require the API key, and create/update validate the body.
func InitRouter(conf *config.Config, server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController) *gin.Engine {
	httpMiddleware := middleware.New(conf)

	server.Use(
		middleware.Logger(),
		middleware.CORS(),
		middleware.ErrorHandler(!conf.IsProduction()),
		middleware.Recovery(),
	)
	server.NoRoute(ctr.NoRoute)

	server.GET("/", ctr.Info)

	products := server.Group("/api/products")
	{
		products.GET("", productCtr.ListProducts)
		products.GET("/search", productCtr.SearchProducts)
		products.GET("/stats", productCtr.Stats)
		products.GET("/:id", productCtr.GetProduct)
		products.POST("", httpMiddleware.RequireAPIKey(), middleware.ValidateProduct(), productCtr.CreateProduct)
		products.PUT("/:id", httpMiddleware.RequireAPIKey(), middleware.ValidateProduct(), productCtr.UpdateProduct)
		products.DELETE("/:id", httpMiddleware.RequireAPIKey(), productCtr.DeleteProduct)
	}

	return server
}
