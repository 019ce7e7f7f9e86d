package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/usecase/messages"
)

type MessageHandler struct {
	messageUseCase *messages.MessageUseCase
}

func NewMessageHandler(messageUseCase *messages.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

// SendMessageRequest represents an outgoing message
type SendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" binding:"required"`
	Content    string    `json:"content" binding:"required,max=2000"`
}

// Partners returns the inbox: one row per conversation partner
// @Summary Conversation list
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {array} messages.Partner
// @Failure 401 {object} ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) Partners(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	partners, err := h.messageUseCase.Partners(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, partners)
}

// Chat returns the conversation with one partner and marks it read
// @Summary Conversation thread
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param partner_id path string true "Partner user ID"
// @Success 200 {array} domain.Message
// @Failure 401 {object} ErrorResponse
// @Router /messages/{partner_id} [get]
func (h *MessageHandler) Chat(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	partnerID, err := uuid.Parse(c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid partner id"})
		return
	}

	msgs, err := h.messageUseCase.Chat(c.Request.Context(), userID, partnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}

// Send delivers a message
// @Summary Send message
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message"
// @Success 200 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	msg, err := h.messageUseCase.Send(c.Request.Context(), userID, req.ReceiverID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}
