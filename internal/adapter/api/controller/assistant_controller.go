package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wallysmart/shopping-assistant/internal/adapter/api/dto"
	"github.com/wallysmart/shopping-assistant/internal/domain/chat"
	"github.com/wallysmart/shopping-assistant/internal/domain/store"
	"github.com/wallysmart/shopping-assistant/pkg/assistant"
	"github.com/wallysmart/shopping-assistant/pkg/assistant/intent"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// AssistantController handles the conversation with the shopping
// assistant.
type AssistantController struct {
	composer        *assistant.Composer
	chatRepository  chat.Repository
	storeRepository store.Repository
	logger          logger.Logger
}

// NewAssistantController creates an AssistantController
func NewAssistantController(composer *assistant.Composer, chatRepository chat.Repository, storeRepository store.Repository, log logger.Logger) *AssistantController {
	return &AssistantController{
		composer:        composer,
		chatRepository:  chatRepository,
		storeRepository: storeRepository,
		logger:          log,
	}
}

// SendMessage posts a user message and returns the assistant's reply
// @Summary Send a message to the assistant
// @Description Appends the user message to the transcript and returns the generated reply
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body dto.SendMessageRequest true "User message"
// @Success 200 {object} dto.ConversationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/messages [post]
func (c *AssistantController) SendMessage(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	var request dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}
	if request.Timeframe != "" && request.SubjectProduct == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", "a timeframe change requires the subject product"))
		return
	}

	userMsg := chat.Message{
		UserID:    userID,
		Author:    chat.AuthorUser,
		Text:      request.Content,
		CreatedAt: time.Now(),
	}
	if err := c.chatRepository.SaveMessage(ctx, &userMsg); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to save message", err.Error()))
		return
	}

	convCtx := intent.Context{Timeframe: intent.Timeframe(request.Timeframe)}
	if current, err := c.storeRepository.Current(ctx); err == nil {
		convCtx.Store = current
	}

	resolution := c.composer.Compose(ctx, request.Content, convCtx)

	aiMsg := chat.Message{
		UserID:    userID,
		Author:    chat.AuthorAssistant,
		CreatedAt: time.Now(),
	}
	resolution.Response.Apply(&aiMsg)

	if err := c.chatRepository.SaveMessage(ctx, &aiMsg); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to save message", err.Error()))
		return
	}

	c.logger.Debug("assistant replied", "user_id", userID, "source", string(resolution.Source))

	aiResp := dto.ToMessageResponse(aiMsg)
	aiResp.Source = string(resolution.Source)

	ctx.JSON(http.StatusOK, dto.ConversationResponse{
		UserMessage: dto.ToMessageResponse(userMsg),
		AIMessage:   aiResp,
	})
}

// History returns a page of the conversation transcript
// @Summary Get conversation history
// @Tags assistant
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /assistant/messages [get]
func (c *AssistantController) History(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "50"))
	pagination := dto.GetPagination(page, pageSize)

	messages, err := c.chatRepository.GetUserHistory(ctx, userID, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load history", err.Error()))
		return
	}

	total, err := c.chatRepository.CountUserMessages(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to count messages", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.HistoryResponse{
		Messages: dto.ToMessageResponses(messages),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
}

// ClearHistory resets the conversation transcript
// @Summary Clear conversation history
// @Tags assistant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /assistant/messages [delete]
func (c *AssistantController) ClearHistory(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	if err := c.chatRepository.DeleteUserHistory(ctx, userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to clear history", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Conversation cleared", nil))
}
