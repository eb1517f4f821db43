package models

import "github.com/shopspring/decimal"

// BehavioralScores bundles the derived behavioral signals. Each signal is
// computed independently; a signal that cannot be computed from the
// available data carries Available=false and a reason instead of a value
// that could be misread as a real score.
type BehavioralScores struct {
	HealthScore      HealthScore      `json:"health_score"`
	Momentum         Momentum         `json:"momentum"`
	Habits           Habits           `json:"habits_score"`
	SpendingTriggers SpendingTriggers `json:"spending_triggers"`
	Patterns         Patterns         `json:"patterns"`
	Predictions      Predictions      `json:"predictions"`
	Benchmarks       Benchmarks       `json:"benchmarks"`
	PeerComparison   PeerComparison   `json:"peer_comparison"`
	Personality      Personality      `json:"personality"`
}

// HealthScore is the overall financial health score on a 0-100 scale.
type HealthScore struct {
	Available bool     `json:"available"`
	Reason    string   `json:"reason,omitempty"`
	Score     float64  `json:"score"`
	Rating    string   `json:"rating,omitempty"`
	Factors   []string `json:"factors,omitempty"`
}

// MomentumDirection indicates which way recent spending is trending.
type MomentumDirection string

const (
	MomentumUp   MomentumDirection = "up"
	MomentumDown MomentumDirection = "down"
	MomentumFlat MomentumDirection = "flat"
)

// Momentum compares the most recent weekly spend against the trailing
// average of the preceding weeks. Requires at least two weekly buckets.
type Momentum struct {
	Available       bool              `json:"available"`
	Reason          string            `json:"reason,omitempty"`
	Direction       MomentumDirection `json:"direction,omitempty"`
	ChangePct       float64           `json:"change_pct"`
	LatestWeek      decimal.Decimal   `json:"latest_week"`
	TrailingAverage decimal.Decimal   `json:"trailing_average"`
}

// HabitsBreakdown holds the five behavioral sub-scores, each 0-100.
type HabitsBreakdown struct {
	Consistency       float64 `json:"consistency"`
	Mindfulness       float64 `json:"mindfulness"`
	Planning          float64 `json:"planning"`
	ImpulseControl    float64 `json:"impulse_control"`
	SavingsDiscipline float64 `json:"savings_discipline"`
}

// Habits is the money-habits score: the unweighted mean of the five
// breakdown dimensions.
type Habits struct {
	Available bool            `json:"available"`
	Reason    string          `json:"reason,omitempty"`
	Score     float64         `json:"score"`
	Grade     string          `json:"grade,omitempty"`
	Breakdown HabitsBreakdown `json:"breakdown"`
}

// SpendingTrigger is one flagged spending condition with a suggested fix.
type SpendingTrigger struct {
	Type           string `json:"type"`
	Trigger        string `json:"trigger"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

// SpendingTriggers is the set of detected spending triggers.
type SpendingTriggers struct {
	Available bool              `json:"available"`
	Reason    string            `json:"reason,omitempty"`
	Triggers  []SpendingTrigger `json:"triggers"`
}

// OutlierTransaction is an unusually large expense flagged by the pattern
// detector.
type OutlierTransaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
}

// RecurringMerchant is a merchant description seen repeatedly in the batch.
type RecurringMerchant struct {
	Description string          `json:"description"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
}

// Patterns holds recurring-merchant and calendar spending detections.
type Patterns struct {
	Available          bool                       `json:"available"`
	Reason             string                     `json:"reason,omitempty"`
	HighestSpendingDay string                     `json:"highest_spending_day,omitempty"`
	LongestStreak      int                        `json:"longest_spending_streak"`
	DayOfWeekTotals    map[string]decimal.Decimal `json:"day_of_week_totals,omitempty"`
	LargeTransactions  []OutlierTransaction       `json:"large_transactions,omitempty"`
	RecurringMerchants []RecurringMerchant        `json:"recurring_merchants,omitempty"`
}

// Predictions projects next-period spend from the observed history using
// simple extrapolation, not a trained model.
type Predictions struct {
	Available        bool                       `json:"available"`
	Reason           string                     `json:"reason,omitempty"`
	NextWeekSpend    decimal.Decimal            `json:"next_week_spend"`
	MonthlySpend     decimal.Decimal            `json:"predicted_monthly_expenses"`
	DailyAverage     decimal.Decimal            `json:"daily_average"`
	ByCategory       map[string]decimal.Decimal `json:"category_predictions,omitempty"`
	Confidence       string                     `json:"confidence,omitempty"`
	ObservedDaysSpan int                        `json:"observed_days_span"`
}

// BenchmarkSplit expresses needs/wants/savings as percentages of income.
type BenchmarkSplit struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// Benchmarks compares the user's split against the 50/30/20 rule.
type Benchmarks struct {
	Available  bool              `json:"available"`
	Reason     string            `json:"reason,omitempty"`
	YourSplit  BenchmarkSplit    `json:"your_split"`
	IdealSplit BenchmarkSplit    `json:"ideal_split"`
	Assessment map[string]string `json:"comparison,omitempty"`
}

// PeerComparison places the user's savings rate against a reference
// distribution for their income bracket.
type PeerComparison struct {
	Available       bool    `json:"available"`
	Reason          string  `json:"reason,omitempty"`
	IncomeBracket   string  `json:"income_bracket,omitempty"`
	SavingsRate     float64 `json:"your_savings_rate"`
	PeerSavingsRate float64 `json:"peer_avg_savings_rate"`
	Percentile      int     `json:"percentile"`
	Rank            string  `json:"rank,omitempty"`
	Insight         string  `json:"insight,omitempty"`
}

// PersonalityType is the fixed financial-personality taxonomy.
type PersonalityType string

const (
	PersonalityConsistentPlanner  PersonalityType = "consistent_planner"
	PersonalitySpontaneousSpender PersonalityType = "spontaneous_spender"
	PersonalityFrequentShopper    PersonalityType = "frequent_shopper"
	PersonalityBulkBuyer          PersonalityType = "bulk_buyer"
	PersonalityBalanced           PersonalityType = "balanced"
)

// Personality is the categorical label derived from spending behavior.
type Personality struct {
	Available            bool            `json:"available"`
	Reason               string          `json:"reason,omitempty"`
	Type                 PersonalityType `json:"type,omitempty"`
	Traits               []string        `json:"traits,omitempty"`
	Advice               string          `json:"advice,omitempty"`
	SpendingVariability  float64         `json:"spending_variability"`
	TransactionFrequency float64         `json:"transaction_frequency"`
}
