package route

import (
	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/controller"
	"github.com/wallysmart/shopping-assistant/pkg/middleware"
)

// RegisterListRoutes registers the SmartList routes
func RegisterListRoutes(r *gin.RouterGroup, listController *controller.ListController) {
	lists := r.Group("/lists")
	lists.Use(middleware.AuthMiddleware())
	{
		lists.GET("", listController.List)
		lists.POST("", listController.Create)
		lists.DELETE("/:id", listController.Delete)
		lists.POST("/:id/items", listController.AddItem)
		lists.DELETE("/:id/items/:itemId", listController.RemoveItem)
	}
}
