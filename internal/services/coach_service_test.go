package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"flexicoach/internal/models"
	"flexicoach/internal/testutil"
)

func TestNewCoachServiceWithoutKey(t *testing.T) {
	svc, err := NewCoachService(context.Background(), "", "gemini-2.0-flash", time.Second)
	testutil.AssertNoError(t, err)

	answer, err := svc.Ask(context.Background(), "How do I save more?", nil)
	testutil.AssertNoError(t, err)

	if answer != fallbackCoachAnswer {
		t.Error("expected the fallback answer when no API key is configured")
	}
}

func TestBuildCoachPrompt(t *testing.T) {
	t.Run("includes_summary_and_question", func(t *testing.T) {
		snapshot := &models.AnalysisSnapshot{
			Summary: models.Summary{
				TotalIncome:           decimal.NewFromInt(50000),
				TotalExpenses:         decimal.NewFromInt(2800),
				TotalNeeds:            decimal.NewFromInt(1500),
				TotalWants:            decimal.NewFromInt(1300),
				SavingsPotential:      decimal.NewFromInt(47200),
				SuggestedWeeklyBudget: decimal.NewFromFloat(2177.78),
			},
			Flags: []string{"flag one", "flag two", "flag three", "flag four"},
		}

		prompt := BuildCoachPrompt("How am I doing?", snapshot)

		for _, want := range []string{"50000.00", "2800.00", "47200.00", "How am I doing?"} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})

	t.Run("caps_flags_at_three", func(t *testing.T) {
		snapshot := &models.AnalysisSnapshot{
			Flags: []string{"flag one", "flag two", "flag three", "flag four"},
		}

		prompt := BuildCoachPrompt("q", snapshot)
		if strings.Contains(prompt, "flag four") {
			t.Error("expected only the top three flags in the prompt")
		}
		if !strings.Contains(prompt, "flag three") {
			t.Error("expected the third flag present")
		}
	})

	t.Run("nil_snapshot", func(t *testing.T) {
		prompt := BuildCoachPrompt("What's a good savings rate?", nil)
		if !strings.Contains(prompt, "What's a good savings rate?") {
			t.Error("expected the question in the prompt")
		}
	})
}
