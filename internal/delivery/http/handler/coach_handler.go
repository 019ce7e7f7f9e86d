package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movemate/movemate-backend/internal/usecase/coach"
)

type CoachHandler struct {
	coachUseCase *coach.CoachUseCase
}

func NewCoachHandler(coachUseCase *coach.CoachUseCase) *CoachHandler {
	return &CoachHandler{
		coachUseCase: coachUseCase,
	}
}

// AskRequest represents a coach question
type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

// History returns past coach exchanges, oldest first
// @Summary Coach history
// @Tags coach
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.AIConversation
// @Failure 401 {object} ErrorResponse
// @Router /coach/history [get]
func (h *CoachHandler) History(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	history, err := h.coachUseCase.History(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// Ask sends a question to the coach
// @Summary Ask the coach
// @Description Get a templated training answer personalized with stored preferences
// @Tags coach
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question"
// @Success 200 {object} domain.AIConversation
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /coach/ask [post]
func (h *CoachHandler) Ask(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	conv, err := h.coachUseCase.Ask(c.Request.Context(), userID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, conv)
}
