package route

import (
	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/controller"
	"github.com/wallysmart/shopping-assistant/pkg/middleware"
)

// RegisterCartRoutes registers the cart routes
func RegisterCartRoutes(r *gin.RouterGroup, cartController *controller.CartController) {
	cart := r.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.GET("", cartController.Get)
		cart.DELETE("", cartController.Clear)
		cart.POST("/items", cartController.AddItem)
		cart.DELETE("/items/:id", cartController.RemoveItem)
	}
}
