package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/dto"
	"github.com/wallysmart/shopping-assistant/internal/adapter/repository"
	"github.com/wallysmart/shopping-assistant/internal/domain/list"
	"github.com/wallysmart/shopping-assistant/internal/domain/product"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// CartController handles the shopping cart
type CartController struct {
	listRepository    list.Repository
	productRepository product.Repository
	logger            logger.Logger
}

// NewCartController creates a CartController
func NewCartController(listRepository list.Repository, productRepository product.Repository, log logger.Logger) *CartController {
	return &CartController{
		listRepository:    listRepository,
		productRepository: productRepository,
		logger:            log,
	}
}

// Get returns the current cart
// @Summary Get the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /cart [get]
func (c *CartController) Get(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	items, err := c.listRepository.Cart(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load cart", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(items))
}

// AddItem puts a catalog product in the cart
// @Summary Add a product to the cart
// @Description Out-of-stock products are rejected; adding the same product twice is a no-op
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body dto.AddToCartRequest true "Product reference"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /cart/items [post]
func (c *CartController) AddItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	var request dto.AddToCartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	p, err := c.productRepository.FindByID(ctx, request.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Product not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load product", err.Error()))
		return
	}

	if err := c.listRepository.AddToCart(ctx, userID, *p); err != nil {
		if errors.Is(err, repository.ErrOutOfStock) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Product is out of stock", p.Title))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to add to cart", err.Error()))
		return
	}

	items, err := c.listRepository.Cart(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load cart", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(items))
}

// RemoveItem removes a product from the cart
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cart/items/{id} [delete]
func (c *CartController) RemoveItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	productID := ctx.Param("id")

	if err := c.listRepository.RemoveFromCart(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Product not in cart", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to remove from cart", err.Error()))
		return
	}

	items, err := c.listRepository.Cart(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load cart", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(items))
}

// Clear empties the cart
// @Summary Clear the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Router /cart [delete]
func (c *CartController) Clear(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	if err := c.listRepository.ClearCart(ctx, userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to clear cart", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cart cleared", nil))
}
