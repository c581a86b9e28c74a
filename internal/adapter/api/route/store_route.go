package route

import (
	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/controller"
	"github.com/wallysmart/shopping-assistant/pkg/middleware"
)

// RegisterStoreRoutes registers the store directory routes
func RegisterStoreRoutes(r *gin.RouterGroup, storeController *controller.StoreController) {
	stores := r.Group("/stores")
	{
		stores.GET("", storeController.List)
		stores.PUT("/current", middleware.AuthMiddleware(), storeController.Select)
	}
}
