package route

import (
	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/controller"
	"github.com/wallysmart/shopping-assistant/pkg/middleware"
)

// RegisterAssistantRoutes registers the conversation routes
func RegisterAssistantRoutes(r *gin.RouterGroup, assistantController *controller.AssistantController) {
	assistant := r.Group("/assistant")
	assistant.Use(middleware.AuthMiddleware())
	{
		assistant.POST("/messages", assistantController.SendMessage)
		assistant.GET("/messages", assistantController.History)
		assistant.DELETE("/messages", assistantController.ClearHistory)
	}
}
