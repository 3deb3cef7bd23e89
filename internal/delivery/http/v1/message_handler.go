package v1

import (
	"net/http"

	"reelhire-backend/internal/delivery/http/middleware"
	"reelhire-backend/internal/delivery/http/response"
	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	messages := protected.Group("/messages")
	{
		messages.GET("", handler.Inbox)
		messages.GET("/:userId", handler.Conversation)
		messages.POST("", handler.Send)
	}
}

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required,max=2000"`
}

// Inbox godoc
// @Summary      Inbox
// @Description  One summary per conversation partner with the last message and the caller's unread count, most recent first.
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /messages [get]
func (h *MessageHandler) Inbox(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	conversations, err := h.messageUC.ListConversations(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conversations", gin.H{"conversations": conversations})
}

// Conversation godoc
// @Summary      Conversation History
// @Description  Every message exchanged with the given user, oldest first. Fetching marks their messages to the caller as read.
// @Tags         messages
// @Produce      json
// @Param        userId  path      int  true  "Other user's ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /messages/{userId} [get]
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	otherID, err := pathID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}

	messages, err := h.messageUC.GetConversation(c.Request.Context(), userID, otherID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Messages", gin.H{"messages": messages})
}

// Send godoc
// @Summary      Send Message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message  body      SendMessageRequest  true  "Message"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	message, err := h.messageUC.Send(c.Request.Context(), userID, req.ReceiverID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", gin.H{"message": message})
}
