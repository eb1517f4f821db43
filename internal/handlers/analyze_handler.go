package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "flexicoach/internal/errors"
	"flexicoach/internal/ingest"
	"flexicoach/internal/services"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// AnalyzeHandler handles transaction file analysis requests.
type AnalyzeHandler struct {
	profileService services.ProfileServicer
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(profileService services.ProfileServicer) *AnalyzeHandler {
	return &AnalyzeHandler{profileService: profileService}
}

// Analyze ingests an uploaded CSV of transactions and returns the full
// analysis snapshot for the user.
// @Summary     Analyze transactions
// @Description Upload a CSV of bank transactions and receive the full analysis snapshot: summary totals, category breakdown, weekly series, flags, behavioral scores, and personalized challenges
// @Tags        analysis
// @Accept      multipart/form-data
// @Produce     json
// @Param       user_id formData string true "User identifier"
// @Param       file    formData file   true "Transaction CSV file"
// @Success     200 {object} models.AnalysisSnapshot "Analysis snapshot"
// @Failure     400 {object} ErrorResponse "Unreadable file or missing column"
// @Failure     422 {object} ErrorResponse "No valid transactions after cleaning"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	userID := c.PostForm("user_id")
	if userID == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "A transaction file upload is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Transaction file exceeds the 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrUnreadableInput, err))
		return
	}
	defer file.Close()

	rows, err := ingest.ReadRows(file)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.profileService.BuildSnapshot(userID, rows)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
