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

// ListController handles SmartLists
type ListController struct {
	listRepository    list.Repository
	productRepository product.Repository
	logger            logger.Logger
}

// NewListController creates a ListController
func NewListController(listRepository list.Repository, productRepository product.Repository, log logger.Logger) *ListController {
	return &ListController{
		listRepository:    listRepository,
		productRepository: productRepository,
		logger:            log,
	}
}

// List returns the user's SmartLists
// @Summary List SmartLists
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SmartListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /lists [get]
func (c *ListController) List(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	lists, err := c.listRepository.Lists(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load lists", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSmartListResponses(lists))
}

// Create makes a new SmartList
// @Summary Create a SmartList
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param list body dto.CreateListRequest true "List name"
// @Success 201 {object} dto.SmartListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /lists [post]
func (c *ListController) Create(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	var request dto.CreateListRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	created, err := c.listRepository.CreateList(ctx, userID, request.Name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to create list", err.Error()))
		return
	}

	c.logger.Info("list created", "user_id", userID, "list_id", created.ID)
	ctx.JSON(http.StatusCreated, dto.ToSmartListResponse(*created))
}

// Delete removes a SmartList
// @Summary Delete a SmartList
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /lists/{id} [delete]
func (c *ListController) Delete(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	listID := ctx.Param("id")

	if err := c.listRepository.DeleteList(ctx, userID, listID); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "List not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to delete list", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("List deleted", nil))
}

// AddItem adds a catalog product to a SmartList
// @Summary Add an item to a SmartList
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Param item body dto.AddListItemRequest true "Item data"
// @Success 201 {object} list.SmartListItem
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /lists/{id}/items [post]
func (c *ListController) AddItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	listID := ctx.Param("id")

	var request dto.AddListItemRequest
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

	item, err := c.listRepository.AddItem(ctx, userID, listID, *p, request.Quantity, request.Note)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "List not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to add item", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// RemoveItem removes an item from a SmartList
// @Summary Remove an item from a SmartList
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /lists/{id}/items/{itemId} [delete]
func (c *ListController) RemoveItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	listID := ctx.Param("id")
	itemID := ctx.Param("itemId")

	if err := c.listRepository.RemoveItem(ctx, userID, listID, itemID); err != nil {
		switch {
		case errors.Is(err, repository.ErrListNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "List not found", ""))
		case errors.Is(err, repository.ErrItemNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Item not found", ""))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to remove item", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Item removed", nil))
}
