package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/dto"
	"github.com/wallysmart/shopping-assistant/internal/domain/list"
	"github.com/wallysmart/shopping-assistant/internal/domain/order"
	"github.com/wallysmart/shopping-assistant/internal/domain/product"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// CheckoutController handles the snap-scan flow and cart checkout
type CheckoutController struct {
	listRepository  list.Repository
	orderRepository order.Repository
	logger          logger.Logger
}

// NewCheckoutController creates a CheckoutController
func NewCheckoutController(listRepository list.Repository, orderRepository order.Repository, log logger.Logger) *CheckoutController {
	return &CheckoutController{
		listRepository:  listRepository,
		orderRepository: orderRepository,
		logger:          log,
	}
}

// Scan simulates product detection on a submitted camera frame. The
// image itself is ignored; detection always yields the demo products.
// @Summary Scan products from an image
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ScanResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /checkout/scan [post]
func (c *CheckoutController) Scan(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ScanResponse{
		DetectedProducts: detectedProducts(),
	})
}

// Checkout converts the cart into an order and empties it
// @Summary Check out the cart
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.CheckoutResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /checkout [post]
func (c *CheckoutController) Checkout(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	cart, err := c.listRepository.Cart(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load cart", err.Error()))
		return
	}
	if len(cart) == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Cart is empty", "add products before checking out"))
		return
	}

	now := time.Now()
	items := make([]list.SmartListItem, 0, len(cart))
	var total float64
	for _, p := range cart {
		items = append(items, list.SmartListItem{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Product:   p,
			Quantity:  1,
			AddedAt:   now,
		})
		total += p.Price
	}

	o := &order.Order{
		ID:             fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		UserID:         userID,
		Items:          items,
		Total:          total,
		Status:         order.StatusPending,
		OrderDate:      now,
		TrackingNumber: fmt.Sprintf("WM%d", now.UnixNano()%1e10),
	}

	if err := c.orderRepository.Create(ctx, o); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to create order", err.Error()))
		return
	}

	if err := c.listRepository.ClearCart(ctx, userID); err != nil {
		c.logger.Warn("failed to clear cart after checkout", "user_id", userID, "error", err)
	}

	c.logger.Info("order placed", "user_id", userID, "order_id", o.ID, "total", total)

	ctx.JSON(http.StatusCreated, dto.CheckoutResponse{
		Order: *o,
		Total: total,
	})
}

func detectedProducts() []product.Product {
	return []product.Product{
		{
			ID:           "detected-1",
			Title:        "Coca-Cola Classic, 12 pack",
			Price:        5.48,
			Image:        "https://images.pexels.com/photos/50593/coca-cola-cold-drink-soft-drink-coke-50593.jpeg?auto=compress&cs=tinysrgb&w=300&h=300&dpr=2",
			Availability: product.AvailabilityInStock,
			Rating:       4.5,
			Aisle:        "4",
			Category:     "Beverages",
		},
		{
			ID:           "detected-2",
			Title:        "Doritos Nacho Cheese",
			Price:        3.98,
			Image:        "https://images.pexels.com/photos/6287523/pexels-photo-6287523.jpeg?auto=compress&cs=tinysrgb&w=300&h=300&dpr=2",
			Availability: product.AvailabilityInStock,
			Rating:       4.3,
			Aisle:        "6",
			Category:     "Snacks",
		},
	}
}
