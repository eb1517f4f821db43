package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "flexicoach/internal/errors"
	"flexicoach/internal/models"
	"flexicoach/internal/pagination"
	"flexicoach/internal/services"
)

// ChallengeHandler handles challenge lifecycle requests.
type ChallengeHandler struct {
	challengeService services.ChallengeServicer
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(challengeService services.ChallengeServicer) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// UpdateProgressRequest represents the request payload for reporting
// challenge progress.
type UpdateProgressRequest struct {
	Current decimal.Decimal `json:"current" binding:"required"`
}

// HistoryQuery carries the optional filters and paging for a challenge
// history listing.
type HistoryQuery struct {
	pagination.PageRequest
	Status     string `form:"status" binding:"omitempty,challenge_status"`
	Difficulty string `form:"difficulty" binding:"omitempty,difficulty"`
}

// ListChallenges returns the user's challenges partitioned by status.
// @Summary     List challenges
// @Description Get the user's active and completed challenges
// @Tags        challenges
// @Accept      json
// @Produce     json
// @Param       user_id path string true "User identifier"
// @Success     200 {object} services.ChallengeList "Active and completed challenges"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{user_id}/challenges [get]
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	userID, err := pathParam(c, "user_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	list, err := h.challengeService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ChallengeHistory returns the user's full challenge history, paginated.
// @Summary     Challenge history
// @Description Get a paginated list of all challenges ever offered to the user
// @Tags        challenges
// @Accept      json
// @Produce     json
// @Param       user_id    path  string true  "User identifier"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Param       status     query string false "Filter by status (not_started, active, completed)"
// @Param       difficulty query string false "Filter by difficulty (easy, medium, hard)"
// @Success     200 {object} pagination.PageResponse[models.Challenge] "Paginated challenges"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{user_id}/challenges/history [get]
func (h *ChallengeHandler) ChallengeHistory(c *gin.Context) {
	userID, err := pathParam(c, "user_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.ChallengeFilter{
		Status:     models.ChallengeStatus(query.Status),
		Difficulty: models.ChallengeDifficulty(query.Difficulty),
	}
	result, err := h.challengeService.History(userID, filter, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AcceptChallenge moves a challenge from not_started to active.
// @Summary     Accept a challenge
// @Description Accept an offered challenge, starting it with zero progress
// @Tags        challenges
// @Accept      json
// @Produce     json
// @Param       user_id      path string true "User identifier"
// @Param       challenge_id path string true "Challenge identifier"
// @Success     200 {object} models.Challenge "Accepted challenge"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Challenge not found"
// @Failure     409 {object} ErrorResponse "Challenge already accepted or completed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{user_id}/challenges/{challenge_id}/accept [post]
func (h *ChallengeHandler) AcceptChallenge(c *gin.Context) {
	userID, err := pathParam(c, "user_id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	challengeID, err := pathParam(c, "challenge_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	challenge, err := h.challengeService.Accept(userID, challengeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenge": challenge})
}

// UpdateProgress reports new progress on an active challenge.
// @Summary     Update challenge progress
// @Description Report cumulative progress on an active challenge; reaching the target completes it
// @Tags        challenges
// @Accept      json
// @Produce     json
// @Param       user_id      path string                true "User identifier"
// @Param       challenge_id path string                true "Challenge identifier"
// @Param       request      body UpdateProgressRequest true "New cumulative progress"
// @Success     200 {object} models.Challenge "Updated challenge"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Challenge not found"
// @Failure     409 {object} ErrorResponse "Invalid transition or decreasing progress"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{user_id}/challenges/{challenge_id}/progress [put]
func (h *ChallengeHandler) UpdateProgress(c *gin.Context) {
	userID, err := pathParam(c, "user_id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	challengeID, err := pathParam(c, "challenge_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Current.IsNegative() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "current must not be negative"))
		return
	}

	challenge, err := h.challengeService.UpdateProgress(userID, challengeID, req.Current)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenge": challenge})
}
