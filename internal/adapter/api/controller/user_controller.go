package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/dto"
	"github.com/wallysmart/shopping-assistant/internal/adapter/repository"
	"github.com/wallysmart/shopping-assistant/internal/domain/user"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// UserController handles profile requests
type UserController struct {
	userRepository user.Repository
	logger         logger.Logger
}

// NewUserController creates a UserController
func NewUserController(userRepository user.Repository, log logger.Logger) *UserController {
	return &UserController{
		userRepository: userRepository,
		logger:         log,
	}
}

// Me returns the authenticated user's profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	u, err := c.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "User not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load profile", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// UpdateMe updates the authenticated user's profile
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users/me [put]
func (c *UserController) UpdateMe(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	var request dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	u, err := c.userRepository.FindByID(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "User not found", ""))
		return
	}

	if request.Name != "" {
		u.Name = request.Name
	}
	if request.Email != "" {
		u.Email = request.Email
	}
	if request.ProfileImage != "" {
		u.ProfileImage = request.ProfileImage
	}

	if err := c.userRepository.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailInUse) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Email already registered", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to update profile", err.Error()))
		return
	}

	c.logger.Info("profile updated", "user_id", userID)
	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
