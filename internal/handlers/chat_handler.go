package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "flexicoach/internal/errors"
	"flexicoach/internal/models"
	"flexicoach/internal/services"
)

// ChatHandler handles coaching questions.
type ChatHandler struct {
	coachService services.CoachServicer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(coachService services.CoachServicer) *ChatHandler {
	return &ChatHandler{coachService: coachService}
}

// ChatRequest represents the request payload for a coaching question.
type ChatRequest struct {
	Question string                   `json:"question" binding:"required,min=1,max=2000"`
	Snapshot *models.AnalysisSnapshot `json:"snapshot"`
}

// ChatResponse represents the coach's answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// Chat answers a free-form financial question grounded in the caller's
// latest analysis snapshot.
// @Summary     Ask the coach
// @Description Ask a financial coaching question, optionally grounded in a previously returned analysis snapshot
// @Tags        coach
// @Accept      json
// @Produce     json
// @Param       request body ChatRequest true "Question and optional snapshot"
// @Success     200 {object} ChatResponse "Coach answer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Failure     503 {object} ErrorResponse "Coach unavailable"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	answer, err := h.coachService.Ask(c.Request.Context(), req.Question, req.Snapshot)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Answer: answer})
}
