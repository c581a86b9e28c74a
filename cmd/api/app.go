package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/controller"
	"github.com/wallysmart/shopping-assistant/internal/adapter/api/route"
	"github.com/wallysmart/shopping-assistant/internal/adapter/repository"
	"github.com/wallysmart/shopping-assistant/pkg/assistant"
	"github.com/wallysmart/shopping-assistant/pkg/assistant/intent"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// App holds the application's wiring
type App struct {
	router *gin.Engine
	logger logger.Logger

	authController      *controller.AuthController
	userController      *controller.UserController
	assistantController *controller.AssistantController
	productController   *controller.ProductController
	cartController      *controller.CartController
	listController      *controller.ListController
	orderController     *controller.OrderController
	checkoutController  *controller.CheckoutController
	storeController     *controller.StoreController
}

// NewApp builds the application graph: in-memory repositories, the
// assistant composer and the HTTP controllers.
func NewApp() *App {
	log := logger.NewLogger()

	userRepo := repository.NewUserRepository()
	productRepo := repository.NewProductRepository()
	chatRepo := repository.NewChatRepository()
	listRepo := repository.NewListRepository()
	orderRepo := repository.NewOrderRepository()
	storeRepo := repository.NewStoreRepository()

	router := intent.NewRouter(nil, log)
	generator := assistant.NewGeminiGenerator()
	composer := assistant.NewComposer(router, generator, log)

	engine := gin.Default()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())

	return &App{
		router:              engine,
		logger:              log,
		authController:      controller.NewAuthController(userRepo, log),
		userController:      controller.NewUserController(userRepo, log),
		assistantController: controller.NewAssistantController(composer, chatRepo, storeRepo, log),
		productController:   controller.NewProductController(productRepo, log),
		cartController:      controller.NewCartController(listRepo, productRepo, log),
		listController:      controller.NewListController(listRepo, productRepo, log),
		orderController:     controller.NewOrderController(orderRepo, log),
		checkoutController:  controller.NewCheckoutController(listRepo, orderRepo, log),
		storeController:     controller.NewStoreController(storeRepo, log),
	}
}

// SetupRoutes mounts every route group under the base path
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterUserRoutes(api, a.userController)
	route.RegisterAssistantRoutes(api, a.assistantController)
	route.RegisterProductRoutes(api, a.productController)
	route.RegisterCartRoutes(api, a.cartController)
	route.RegisterListRoutes(api, a.listController)
	route.RegisterOrderRoutes(api, a.orderController)
	route.RegisterCheckoutRoutes(api, a.checkoutController)
	route.RegisterStoreRoutes(api, a.storeController)

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start configures routes and runs the HTTP server
func (a *App) Start() {
	a.SetupRoutes("/api/v1")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("starting server", "port", port)
	if err := a.router.Run(":" + port); err != nil {
		a.logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
