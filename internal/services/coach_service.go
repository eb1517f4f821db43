package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	apperrors "flexicoach/internal/errors"
	"flexicoach/internal/logger"
	"flexicoach/internal/models"
)

// coachSystemPrompt defines the coach persona sent ahead of every question.
const coachSystemPrompt = `You are FlexiCoach, a friendly and practical money coach for young professionals and gig workers.

Your role:
- Help users understand their spending patterns and make better financial decisions
- Provide clear, actionable advice without financial jargon
- Be empathetic and non-judgmental
- Focus on small, achievable steps
- Understand the challenges of gig work (irregular income, no benefits)

Your tone:
- Warm, supportive, and conversational
- Specific and concrete rather than vague
- Concise (3-5 short paragraphs max)

When giving advice:
- Reference the user's actual numbers when relevant
- Offer 2-4 concrete action steps for this week
- Prioritize needs over wants, but don't shame discretionary spending
- Suggest a 3-6 month emergency fund as a foundation`

// fallbackCoachAnswer is returned when no model is configured or the model
// replies with nothing usable.
const fallbackCoachAnswer = "I'm having trouble connecting right now. Here's a basic rule of thumb: " +
	"keep your 'wants' spending below 30% of your income, build an emergency fund covering " +
	"at least 3 months of expenses, and review your spending weekly to stay on track. " +
	"If your income is irregular, save extra during high-earning periods to buffer the slow ones."

// coachService is the boundary to the external language-generation
// service. Every call is bounded by the configured timeout; the core never
// blocks on the model beyond it.
type coachService struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewCoachService creates a CoachServicer backed by the GenAI API. When no
// API key is configured the service still works, answering with the
// fallback advice.
func NewCoachService(ctx context.Context, apiKey, model string, timeout time.Duration) (CoachServicer, error) {
	svc := &coachService{model: model, timeout: timeout}

	if apiKey == "" {
		logger.Get().Warn("no coach API key configured, chat will use fallback answers")
		return svc, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	svc.client = client
	return svc, nil
}

// Ask sends the question plus a formatted snapshot context to the model
// and returns its answer. An unconfigured service answers with the
// fallback advice; a configured service whose model call fails reports
// CoachUnavailable so the caller sees an honest 503 rather than canned
// text masquerading as the model.
func (s *coachService) Ask(ctx context.Context, question string, snapshot *models.AnalysisSnapshot) (string, error) {
	if s.client == nil {
		return fallbackCoachAnswer, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := coachSystemPrompt + "\n\n" + BuildCoachPrompt(question, snapshot)
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		logger.Get().Errorw("coach model call failed", "error", err)
		return "", apperrors.Wrap(apperrors.ErrCoachUnavailable, err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		logger.Get().Warn("coach model returned an empty answer")
		return fallbackCoachAnswer, nil
	}
	return answer, nil
}

// BuildCoachPrompt formats the user's snapshot and question into the
// context block sent to the model. Only the summary and the top flags go
// in; the model doesn't need the full series to coach.
func BuildCoachPrompt(question string, snapshot *models.AnalysisSnapshot) string {
	var b strings.Builder
	b.WriteString("Here's my current financial snapshot:\n\n")

	if snapshot != nil {
		s := snapshot.Summary
		fmt.Fprintf(&b, "Income: %s\n", s.TotalIncome.StringFixed(2))
		fmt.Fprintf(&b, "Total Expenses: %s\n", s.TotalExpenses.StringFixed(2))
		fmt.Fprintf(&b, "  Needs: %s\n", s.TotalNeeds.StringFixed(2))
		fmt.Fprintf(&b, "  Wants: %s\n", s.TotalWants.StringFixed(2))
		fmt.Fprintf(&b, "Savings Potential: %s\n", s.SavingsPotential.StringFixed(2))
		fmt.Fprintf(&b, "Suggested Weekly Budget: %s\n", s.SuggestedWeeklyBudget.StringFixed(2))

		if len(snapshot.Flags) > 0 {
			b.WriteString("\nKey insights:\n")
			for i, flag := range snapshot.Flags {
				if i == 3 {
					break
				}
				fmt.Fprintf(&b, "- %s\n", flag)
			}
		}
	}

	fmt.Fprintf(&b, "\nMy question: %s", question)
	return b.String()
}
