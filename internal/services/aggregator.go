package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	apperrors "flexicoach/internal/errors"
	"flexicoach/internal/models"
)

var decimalSeven = decimal.NewFromInt(7)

// aggregatorService computes summary totals, category totals, and the
// weekly spending series in a single pass over the batch.
type aggregatorService struct{}

// NewAggregatorService creates a new AggregatorServicer.
func NewAggregatorService() AggregatorServicer {
	return &aggregatorService{}
}

// Aggregate produces the Summary, category totals (amount descending, name
// ascending on ties), chronological weekly buckets, and advisory flags.
// The result is fully recomputed on every call: the same input always
// yields an identical result.
func (s *aggregatorService) Aggregate(txns []models.Transaction) (*AggregateResult, error) {
	if len(txns) == 0 {
		return nil, apperrors.ErrEmptyResult
	}

	var income, expenses, needs, wants decimal.Decimal
	perCategory := make(map[models.Category]decimal.Decimal)
	perWeek := make(map[string]decimal.Decimal)
	minDate, maxDate := txns[0].Date, txns[0].Date

	for _, t := range txns {
		if t.Date.Before(minDate) {
			minDate = t.Date
		}
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}

		if !t.IsExpense() {
			income = income.Add(t.Amount)
			continue
		}

		expenses = expenses.Add(t.Amount)
		if t.IsNeed {
			needs = needs.Add(t.Amount)
		} else {
			wants = wants.Add(t.Amount)
		}
		perCategory[t.Category] = perCategory[t.Category].Add(t.Amount)

		week := weekStart(t.Date)
		perWeek[week] = perWeek[week].Add(t.Amount)
	}

	savings := income.Sub(expenses)

	// Average weekly expenses over the observed span; under one full week
	// of data the whole period counts as one week.
	daysRange := int(maxDate.Sub(minDate).Hours() / 24)
	elapsedWeeks := decimal.NewFromInt(int64(daysRange)).Div(decimalSeven)
	if elapsedWeeks.LessThan(decimal.NewFromInt(1)) {
		elapsedWeeks = decimal.NewFromInt(1)
	}
	weeklyBudget := expenses.Div(elapsedWeeks).Round(2)

	categories := make([]models.CategoryTotal, 0, len(perCategory))
	for name, amount := range perCategory {
		categories = append(categories, models.CategoryTotal{Name: name, Amount: amount.Round(2)})
	}
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Amount.GreaterThan(categories[j].Amount)
		}
		return categories[i].Name < categories[j].Name
	})

	weekly := make([]models.WeeklyBucket, 0, len(perWeek))
	for week, spent := range perWeek {
		weekly = append(weekly, models.WeeklyBucket{WeekStart: week, TotalSpent: spent.Round(2)})
	}
	sort.Slice(weekly, func(i, j int) bool { return weekly[i].WeekStart < weekly[j].WeekStart })

	summary := models.Summary{
		TotalIncome:           income.Round(2),
		TotalExpenses:         expenses.Round(2),
		TotalNeeds:            needs.Round(2),
		TotalWants:            wants.Round(2),
		SavingsPotential:      savings.Round(2),
		SuggestedWeeklyBudget: weeklyBudget,
	}

	result := &AggregateResult{
		Summary:      summary,
		Categories:   categories,
		WeeklySeries: weekly,
		Flags:        buildFlags(summary, categories, weekly, daysRange),
		Goals:        buildSavingsGoals(summary, txns, daysRange),
	}
	return result, nil
}

// buildSavingsGoals derives personalized savings goals from the summary
// and the needs/wants mix: an emergency fund while the buffer is short,
// then discretionary cuts.
func buildSavingsGoals(summary models.Summary, txns []models.Transaction, daysRange int) []models.SavingsGoal {
	goals := make([]models.SavingsGoal, 0, 3)

	months := float64(daysRange) / 30
	if months < 1 {
		months = 1
	}
	monthly := summary.TotalExpenses.Div(decimal.NewFromFloat(months))

	emergencyTarget := monthly.Mul(decimal.NewFromInt(EmergencyFundMinMonths)).Round(2)
	if summary.SavingsPotential.LessThan(emergencyTarget) {
		current := summary.SavingsPotential
		if current.IsNegative() {
			current = decimal.Zero
		}
		goals = append(goals, models.SavingsGoal{
			Type:     "Emergency Fund",
			Target:   emergencyTarget,
			Current:  current.Round(2),
			Timeline: "6-12 months",
			Priority: "High",
		})
	}

	if summary.TotalWants.IsPositive() {
		goals = append(goals, models.SavingsGoal{
			Type:        "Reduce Discretionary Spending",
			Target:      summary.TotalWants.Mul(decimal.NewFromFloat(GoalWantsCutPct)).Round(2),
			Description: "Save by cutting wants by 10%",
			Timeline:    "1 month",
			Priority:    "Medium",
		})
	}

	var foodWants decimal.Decimal
	for _, t := range txns {
		if t.IsExpense() && t.Category == models.CategoryFood && !t.IsNeed {
			foodWants = foodWants.Add(t.Amount)
		}
	}
	if foodWants.GreaterThan(monthly.Mul(decimal.NewFromFloat(GoalFoodShareOfMonthly))) {
		goals = append(goals, models.SavingsGoal{
			Type:        "Cook More at Home",
			Target:      foodWants.Mul(decimal.NewFromFloat(GoalFoodCutPct)).Round(2),
			Description: "Save 30% on eating out",
			Timeline:    "1 month",
			Priority:    "Medium",
		})
	}

	return goals
}

// weekStart returns the ISO date of the Monday of d's week.
func weekStart(d time.Time) string {
	// time.Weekday: Sunday=0 ... Saturday=6; shift so Monday=0.
	daysSinceMonday := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -daysSinceMonday).Format("2006-01-02")
}

// buildFlags generates advisory strings from the documented threshold
// rules in scoring_config.go.
func buildFlags(summary models.Summary, categories []models.CategoryTotal, weekly []models.WeeklyBucket, daysRange int) []string {
	flags := make([]string, 0, 4)

	income, _ := summary.TotalIncome.Float64()
	expenses, _ := summary.TotalExpenses.Float64()
	wants, _ := summary.TotalWants.Float64()
	savings, _ := summary.SavingsPotential.Float64()

	switch {
	case summary.SavingsPotential.IsNegative():
		flags = append(flags, fmt.Sprintf(
			"You're spending %s more than your income. Time to cut back.",
			summary.SavingsPotential.Abs().StringFixed(2)))
	case summary.SavingsPotential.IsPositive():
		rate := 0.0
		if income > 0 {
			rate = savings / income * 100
		}
		flags = append(flags, fmt.Sprintf(
			"You have %s savings potential (%.1f%% of income).",
			summary.SavingsPotential.StringFixed(2), rate))
	}

	if expenses > 0 {
		wantsPct := wants / expenses * 100
		if wantsPct > FlagWantsHighPct {
			flags = append(flags, fmt.Sprintf(
				"%.1f%% of your spending is on wants. Consider reducing discretionary expenses.", wantsPct))
		} else if wantsPct < FlagWantsLowPct {
			flags = append(flags, fmt.Sprintf(
				"You're being disciplined: only %.1f%% of spending is on wants. Keep it up.", wantsPct))
		}
	}

	if len(categories) > 0 && expenses > 0 {
		top := categories[0]
		topAmount, _ := top.Amount.Float64()
		concentration := topAmount / expenses * 100
		if concentration > FlagConcentrationPct {
			flags = append(flags, fmt.Sprintf(
				"High spending concentration: %.1f%% of expenses are in '%s'.", concentration, top.Name))
		}
	}

	if len(weekly) > 1 {
		mean, stddev := weeklyStats(weekly)
		if mean > 0 && stddev/mean > FlagVolatilityCV {
			flags = append(flags,
				"Your weekly spending varies significantly. Try to maintain more consistent spending patterns.")
		}
	}

	if income > 0 && savings > 0 && daysRange > 0 {
		monthly := expenses * 30 / float64(daysRange)
		if savings < monthly {
			flags = append(flags, fmt.Sprintf(
				"Goal: build an emergency fund covering %d-%d months of expenses (%.2f - %.2f).",
				EmergencyFundMinMonths, EmergencyFundMaxMonths,
				monthly*EmergencyFundMinMonths, monthly*EmergencyFundMaxMonths))
		}
	}

	if len(flags) == 0 {
		flags = append(flags, "Keep tracking your expenses regularly to identify more insights.")
	}

	return flags
}

// weeklyStats returns the mean and population standard deviation of the
// weekly spend series.
func weeklyStats(weekly []models.WeeklyBucket) (mean, stddev float64) {
	if len(weekly) == 0 {
		return 0, 0
	}
	var sum float64
	for _, w := range weekly {
		v, _ := w.TotalSpent.Float64()
		sum += v
	}
	mean = sum / float64(len(weekly))

	var sq float64
	for _, w := range weekly {
		v, _ := w.TotalSpent.Float64()
		sq += (v - mean) * (v - mean)
	}
	stddev = math.Sqrt(sq / float64(len(weekly)))
	return mean, stddev
}
