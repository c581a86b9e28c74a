package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/dto"
	"github.com/wallysmart/shopping-assistant/internal/adapter/repository"
	"github.com/wallysmart/shopping-assistant/internal/domain/store"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// StoreController handles the store directory
type StoreController struct {
	storeRepository store.Repository
	logger          logger.Logger
}

// NewStoreController creates a StoreController
func NewStoreController(storeRepository store.Repository, log logger.Logger) *StoreController {
	return &StoreController{
		storeRepository: storeRepository,
		logger:          log,
	}
}

// List returns the known stores and the current selection
// @Summary List stores
// @Tags stores
// @Produce json
// @Success 200 {object} dto.StoreListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores [get]
func (c *StoreController) List(ctx *gin.Context) {
	stores, err := c.storeRepository.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to list stores", err.Error()))
		return
	}

	resp := dto.StoreListResponse{Stores: stores}
	if current, err := c.storeRepository.Current(ctx); err == nil {
		resp.Current = current
	}

	ctx.JSON(http.StatusOK, resp)
}

// Select switches the session's current store
// @Summary Select the current store
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param store body dto.SelectStoreRequest true "Store reference"
// @Success 200 {object} store.Store
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stores/current [put]
func (c *StoreController) Select(ctx *gin.Context) {
	var request dto.SelectStoreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	selected, err := c.storeRepository.SetCurrent(ctx, request.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Store not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to select store", err.Error()))
		return
	}

	c.logger.Info("store selected", "store_id", selected.ID)
	ctx.JSON(http.StatusOK, selected)
}
