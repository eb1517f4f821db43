package models

import "github.com/shopspring/decimal"

// Summary holds the aggregate totals for one analyzed transaction batch.
// Invariants: TotalExpenses == TotalNeeds + TotalWants and
// SavingsPotential == TotalIncome - TotalExpenses.
type Summary struct {
	TotalIncome           decimal.Decimal `json:"total_income"`
	TotalExpenses         decimal.Decimal `json:"total_expenses"`
	TotalNeeds            decimal.Decimal `json:"total_needs"`
	TotalWants            decimal.Decimal `json:"total_wants"`
	SavingsPotential      decimal.Decimal `json:"savings_potential"`
	SuggestedWeeklyBudget decimal.Decimal `json:"suggested_weekly_budget"`
}

// CategoryTotal is the total expense amount for one category.
type CategoryTotal struct {
	Name   Category        `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// WeeklyBucket is the total spent in one Monday-aligned week. Weeks with
// no transactions are omitted from the series.
type WeeklyBucket struct {
	WeekStart  string          `json:"week_start"` // ISO date of the Monday
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// SavingsGoal is a personalized savings goal derived from the spending
// profile. Current is only meaningful for accumulating goals like the
// emergency fund.
type SavingsGoal struct {
	Type        string          `json:"type"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Description string          `json:"description,omitempty"`
	Timeline    string          `json:"timeline"`
	Priority    string          `json:"priority"`
}

// AnalysisSnapshot is the full assembled output for one transaction batch.
// It is a value object: every field is fully recomputed from the input set
// and never partially updated in place.
type AnalysisSnapshot struct {
	Summary       Summary          `json:"summary"`
	Categories    []CategoryTotal  `json:"categories"`
	WeeklySeries  []WeeklyBucket   `json:"weekly_series"`
	Flags         []string         `json:"flags"`
	Behavioral    BehavioralScores `json:"behavioral"`
	SavingsGoals  []SavingsGoal    `json:"savings_goals"`
	Challenges    []Challenge      `json:"challenges"`
	RejectedRows  []RejectedRow    `json:"rejected_rows,omitempty"`
	RejectedCount int              `json:"rejected_count"`
}
