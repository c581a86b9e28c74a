package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/dto"
	"github.com/wallysmart/shopping-assistant/internal/adapter/repository"
	"github.com/wallysmart/shopping-assistant/internal/domain/product"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// ProductController handles catalog requests
type ProductController struct {
	productRepository product.Repository
	logger            logger.Logger
}

// NewProductController creates a ProductController
func NewProductController(productRepository product.Repository, log logger.Logger) *ProductController {
	return &ProductController{
		productRepository: productRepository,
		logger:            log,
	}
}

// List returns catalog products, optionally filtered by a search query
// @Summary List products
// @Tags products
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	query := ctx.Query("q")

	var (
		products []product.Product
		err      error
	)
	if query != "" {
		products, err = c.productRepository.Search(ctx, query)
	} else {
		products, err = c.productRepository.List(ctx)
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to list products", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// Get returns a single product by id
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} product.Product
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	p, err := c.productRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Product not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, p)
}
