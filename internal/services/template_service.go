package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"flexicoach/internal/models"
)

// Template catalog parameters.
const (
	// TemplateMinTransactions is the minimum batch size before challenges
	// are generated at all.
	TemplateMinTransactions = 5
	// TemplateNoSpendExtraDays is how many no-spend days beyond the
	// current count the no-spend challenge asks for.
	TemplateNoSpendExtraDays = 3
	// TemplateEatingOutMinOrders gates the home-chef challenge.
	TemplateEatingOutMinOrders = 3
	// TemplateEatingOutCutFactor is the target share of current ordering.
	TemplateEatingOutCutFactor = 0.7
	// TemplateRoundUpStep rounds purchases up to the nearest multiple.
	TemplateRoundUpStep = 10
	// TemplateDailyLimitFactor is the daily-limit share of the current
	// daily average.
	TemplateDailyLimitFactor = 0.85
	// TemplateDailyLimitStreak is the required streak length in days.
	TemplateDailyLimitStreak = 7
	// TemplateCategoryCutPct is the reduction asked of the top category.
	TemplateCategoryCutPct = 0.20
)

// templateCatalogIDs is the fixed set of identifiers Build can produce.
// Challenge operations use it to tell a typo from a template the user was
// simply never offered.
var templateCatalogIDs = map[string]struct{}{
	"no_spend_days":      {},
	"reduce_eating_out":  {},
	"round_up_savings":   {},
	"daily_limit":        {},
	"category_reduction": {},
}

// KnownTemplateID reports whether id belongs to the template catalog.
func KnownTemplateID(id string) bool {
	_, ok := templateCatalogIDs[id]
	return ok
}

// templateService builds the personalized challenge catalog from a user's
// aggregates. Targets are derived from observed behavior so the same
// profile always produces the same catalog.
type templateService struct{}

// NewTemplateService creates a new TemplateServicer.
func NewTemplateService() TemplateServicer {
	return &templateService{}
}

// Build returns the challenge templates applicable to this profile. All
// progress metrics accumulate upward (days achieved, amount saved), so
// challenge progress is monotonic by construction.
func (s *templateService) Build(agg *AggregateResult, txns []models.Transaction) []models.ChallengeTemplate {
	if len(txns) < TemplateMinTransactions {
		return nil
	}

	expenses := expensesOnly(txns)
	if len(expenses) == 0 {
		return nil
	}

	totalDays := observedDaysSpan(txns) + 1
	spendingDays := distinctSpendDays(expenses)
	noSpendDays := totalDays - spendingDays

	templates := make([]models.ChallengeTemplate, 0, 5)

	templates = append(templates, models.ChallengeTemplate{
		ID:    "no_spend_days",
		Title: "No-Spend Challenge",
		Description: fmt.Sprintf("You had %d no-spend days. Try for %d this month.",
			noSpendDays, noSpendDays+TemplateNoSpendExtraDays),
		Difficulty:     models.ChallengeDifficultyMedium,
		Target:         decimal.NewFromInt(int64(noSpendDays + TemplateNoSpendExtraDays)),
		InitialCurrent: decimal.NewFromInt(int64(noSpendDays)),
		Reward:         "Painless monthly savings",
		Points:         150,
	})

	// Eating-out reduction, only when ordering is a real habit.
	var foodOrders int
	var foodTotal decimal.Decimal
	for _, t := range expenses {
		if t.Category == models.CategoryFood && !t.IsNeed {
			foodOrders++
			foodTotal = foodTotal.Add(t.Amount)
		}
	}
	if foodOrders >= TemplateEatingOutMinOrders {
		weeks := float64(totalDays) / 7
		if weeks < 1 {
			weeks = 1
		}
		ordersPerWeek := float64(foodOrders) / weeks
		target := int(ordersPerWeek * TemplateEatingOutCutFactor)
		if target < 1 {
			target = 1
		}
		saved := foodTotal.Mul(decimal.NewFromFloat(1 - TemplateEatingOutCutFactor)).Round(0)
		templates = append(templates, models.ChallengeTemplate{
			ID:    "reduce_eating_out",
			Title: "Home Chef Challenge",
			Description: fmt.Sprintf("You order food about %d times a week. Get down to %d.",
				int(ordersPerWeek), target),
			Difficulty:     models.ChallengeDifficultyEasy,
			Target:         decimal.NewFromInt(int64(target)),
			InitialCurrent: decimal.Zero,
			Reward:         fmt.Sprintf("Around %s in monthly savings", saved.String()),
			Points:         100,
		})
	}

	// Round-up saver: the gap between each purchase and the next
	// TemplateRoundUpStep multiple, accumulated.
	step := decimal.NewFromInt(TemplateRoundUpStep)
	var roundUp decimal.Decimal
	for _, t := range expenses {
		rounded := t.Amount.Div(step).Ceil().Mul(step)
		roundUp = roundUp.Add(rounded.Sub(t.Amount))
	}
	templates = append(templates, models.ChallengeTemplate{
		ID:             "round_up_savings",
		Title:          "Round-Up Saver",
		Description:    fmt.Sprintf("Round every purchase up to the nearest %d and save the difference.", TemplateRoundUpStep),
		Difficulty:     models.ChallengeDifficultyEasy,
		Target:         roundUp.Round(2),
		InitialCurrent: decimal.Zero,
		Reward:         fmt.Sprintf("%s of painless savings", roundUp.Round(0).String()),
		Points:         75,
	})

	// Daily budget streak.
	var expenseTotal decimal.Decimal
	for _, t := range expenses {
		expenseTotal = expenseTotal.Add(t.Amount)
	}
	dailyAvg := expenseTotal.Div(decimal.NewFromInt(int64(len(expenses))))
	dailyLimit := dailyAvg.Mul(decimal.NewFromFloat(TemplateDailyLimitFactor)).Round(0)
	templates = append(templates, models.ChallengeTemplate{
		ID:    "daily_limit",
		Title: "Daily Budget Master",
		Description: fmt.Sprintf("Stay under %s per day for %d consecutive days.",
			dailyLimit.String(), TemplateDailyLimitStreak),
		Difficulty:     models.ChallengeDifficultyHard,
		Target:         decimal.NewFromInt(TemplateDailyLimitStreak),
		InitialCurrent: decimal.Zero,
		Reward:         "Streaker badge and a calmer budget",
		Points:         200,
	})

	// Cut the biggest expense category by 20%. Progress counts the amount
	// saved, from zero up to the cut, so it accumulates like the others.
	if len(agg.Categories) > 0 {
		top := agg.Categories[0]
		cut := top.Amount.Mul(decimal.NewFromFloat(TemplateCategoryCutPct)).Round(2)
		templates = append(templates, models.ChallengeTemplate{
			ID:    "category_reduction",
			Title: fmt.Sprintf("Cut %s spending by 20%%", top.Name),
			Description: fmt.Sprintf("Your %s spending is %s. Save %s of it this month.",
				top.Name, top.Amount.String(), cut.String()),
			Difficulty:     models.ChallengeDifficultyMedium,
			Target:         cut,
			InitialCurrent: decimal.Zero,
			Reward:         fmt.Sprintf("%s back in your pocket", cut.String()),
			Points:         175,
		})
	}

	return templates
}

func distinctSpendDays(expenses []models.Transaction) int {
	days := make(map[string]bool)
	for _, t := range expenses {
		days[t.Date.Format("2006-01-02")] = true
	}
	return len(days)
}
