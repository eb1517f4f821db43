package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "flexicoach/internal/errors"
	"flexicoach/internal/models"
	"flexicoach/internal/services"
)

// --- mock coach service ---

type mockCoachService struct {
	askFn func(ctx context.Context, question string, snapshot *models.AnalysisSnapshot) (string, error)
}

var _ services.CoachServicer = (*mockCoachService)(nil)

func (m *mockCoachService) Ask(ctx context.Context, question string, snapshot *models.AnalysisSnapshot) (string, error) {
	if m.askFn != nil {
		return m.askFn(ctx, question, snapshot)
	}
	return "ok", nil
}

func setupChatRouter(handler *ChatHandler) *gin.Engine {
	r := gin.New()
	r.POST("/chat", handler.Chat)
	return r
}

func TestChatHandler_Chat(t *testing.T) {
	t.Run("returns_200_with_answer", func(t *testing.T) {
		svc := &mockCoachService{
			askFn: func(_ context.Context, question string, _ *models.AnalysisSnapshot) (string, error) {
				if question != "How can I save more?" {
					t.Errorf("unexpected question: %q", question)
				}
				return "Start with a weekly budget.", nil
			},
		}
		r := setupChatRouter(NewChatHandler(svc))

		rec := doRequest(r, "POST", "/chat", `{"question":"How can I save more?"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		result := parseJSON(t, rec)
		if result["answer"] != "Start with a weekly budget." {
			t.Errorf("unexpected answer: %v", result["answer"])
		}
	})

	t.Run("passes_snapshot_through", func(t *testing.T) {
		var gotSnapshot *models.AnalysisSnapshot
		svc := &mockCoachService{
			askFn: func(_ context.Context, _ string, snapshot *models.AnalysisSnapshot) (string, error) {
				gotSnapshot = snapshot
				return "ok", nil
			},
		}
		r := setupChatRouter(NewChatHandler(svc))

		rec := doRequest(r, "POST", "/chat",
			`{"question":"q","snapshot":{"summary":{"total_income":50000},"flags":["a flag"]}}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotSnapshot == nil || len(gotSnapshot.Flags) != 1 {
			t.Errorf("expected the snapshot forwarded, got %+v", gotSnapshot)
		}
	})

	t.Run("returns_503_when_coach_unavailable", func(t *testing.T) {
		svc := &mockCoachService{
			askFn: func(_ context.Context, _ string, _ *models.AnalysisSnapshot) (string, error) {
				return "", apperrors.Wrap(apperrors.ErrCoachUnavailable, errors.New("model timeout"))
			},
		}
		r := setupChatRouter(NewChatHandler(svc))

		rec := doRequest(r, "POST", "/chat", `{"question":"q"}`)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "COACH_UNAVAILABLE")
	})

	t.Run("returns_400_missing_question", func(t *testing.T) {
		r := setupChatRouter(NewChatHandler(&mockCoachService{}))

		rec := doRequest(r, "POST", "/chat", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
