package route

import (
	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/controller"
)

// RegisterProductRoutes registers the catalog routes
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
	}
}
