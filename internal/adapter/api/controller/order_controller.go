package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/dto"
	"github.com/wallysmart/shopping-assistant/internal/adapter/repository"
	"github.com/wallysmart/shopping-assistant/internal/domain/order"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// OrderController handles order tracking
type OrderController struct {
	orderRepository order.Repository
	logger          logger.Logger
}

// NewOrderController creates an OrderController
func NewOrderController(orderRepository order.Repository, log logger.Logger) *OrderController {
	return &OrderController{
		orderRepository: orderRepository,
		logger:          log,
	}
}

// List returns the user's orders split into active and history
// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	orders, err := c.orderRepository.List(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load orders", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders))
}

// Get returns a single order
// @Summary Get an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Failure 404 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	id := ctx.Param("id")

	o, err := c.orderRepository.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Order not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load order", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, o)
}
