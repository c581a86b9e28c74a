package route

import (
	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/controller"
	"github.com/wallysmart/shopping-assistant/pkg/middleware"
)

// RegisterCheckoutRoutes registers the snap-scan and checkout routes
func RegisterCheckoutRoutes(r *gin.RouterGroup, checkoutController *controller.CheckoutController) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware())
	{
		checkout.POST("", checkoutController.Checkout)
		checkout.POST("/scan", checkoutController.Scan)
	}
}
