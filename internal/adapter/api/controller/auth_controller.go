package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/dto"
	"github.com/wallysmart/shopping-assistant/internal/adapter/repository"
	"github.com/wallysmart/shopping-assistant/internal/domain/user"
	"github.com/wallysmart/shopping-assistant/pkg/jwt"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

const tokenLifetime = 24 * time.Hour

// AuthController handles registration and login
type AuthController struct {
	userRepository user.Repository
	logger         logger.Logger
}

// NewAuthController creates an AuthController
func NewAuthController(userRepository user.Repository, log logger.Logger) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		logger:         log,
	}
}

// Register creates a new account and signs the user in
// @Summary Register a new user
// @Description Creates an account and returns a JWT for the new session
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	u := &user.User{
		Name:  request.Name,
		Email: request.Email,
	}
	if err := u.SetPassword(request.Password); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to process password", err.Error()))
		return
	}

	if err := c.userRepository.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailInUse) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Email already registered", "Use another email or sign in"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to create user", err.Error()))
		return
	}

	token, err := jwt.GenerateToken(u.ID, u.Email, u.Name, tokenLifetime)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to generate token", err.Error()))
		return
	}

	c.logger.Info("user registered", "user_id", u.ID)

	ctx.JSON(http.StatusCreated, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(tokenLifetime),
	})
}

// Login authenticates a user and returns a JWT
// @Summary Authenticate a user
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	u, err := c.userRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to authenticate user", err.Error()))
		return
	}

	if !u.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect"))
		return
	}

	token, err := jwt.GenerateToken(u.ID, u.Email, u.Name, tokenLifetime)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to generate token", err.Error()))
		return
	}

	if err := c.userRepository.UpdateLastLogin(ctx, u.ID); err != nil {
		c.logger.Warn("failed to update last login", "user_id", u.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(tokenLifetime),
	})
}
