package services

import (
	"context"

	"github.com/shopspring/decimal"

	"flexicoach/internal/models"
	"flexicoach/internal/pagination"
)

// NormalizerServicer defines the contract for turning raw rows into
// canonical transactions. Row-level failures are returned as rejected rows
// and never abort the batch; the error is reserved for batch-level
// conditions (unreadable input, zero valid rows).
type NormalizerServicer interface {
	Normalize(rows []models.RawRow) ([]models.Transaction, []models.RejectedRow, error)
}

// CategorizerServicer assigns a spending category and needs/wants label
// from a transaction description. Must be a pure function of its inputs.
type CategorizerServicer interface {
	Categorize(description string, txType models.TransactionType) (models.Category, bool)
}

// AggregateResult bundles the aggregator's outputs for one batch.
type AggregateResult struct {
	Summary      models.Summary
	Categories   []models.CategoryTotal
	WeeklySeries []models.WeeklyBucket
	Flags        []string
	Goals        []models.SavingsGoal
}

// AggregatorServicer computes summary totals, per-category totals, and the
// weekly time series from a categorized transaction batch.
type AggregatorServicer interface {
	Aggregate(txns []models.Transaction) (*AggregateResult, error)
}

// ScorerServicer derives the behavioral signal bundle from aggregates plus
// the raw transaction sequence. Signals degrade independently: missing data
// marks the single signal unavailable, never the whole bundle.
type ScorerServicer interface {
	Score(agg *AggregateResult, txns []models.Transaction) models.BehavioralScores
}

// TemplateServicer builds the personalized challenge catalog from a user's
// aggregates and transactions.
type TemplateServicer interface {
	Build(agg *AggregateResult, txns []models.Transaction) []models.ChallengeTemplate
}

// ChallengeList partitions a user's challenges by status for display.
type ChallengeList struct {
	Active    []models.Challenge `json:"activeChallenges"`
	Completed []models.Challenge `json:"completedChallenges"`
}

// ChallengeFilter narrows a challenge history listing. Zero-value fields
// match everything.
type ChallengeFilter struct {
	Status     models.ChallengeStatus
	Difficulty models.ChallengeDifficulty
}

// ChallengeServicer owns the per-user challenge state machine
// (not_started -> active -> completed, no other edges). All transitions for
// a single (user, challenge) pair are linearizable.
type ChallengeServicer interface {
	Offer(userID string, tmpl models.ChallengeTemplate) (*models.Challenge, error)
	Accept(userID, challengeID string) (*models.Challenge, error)
	UpdateProgress(userID, challengeID string, current decimal.Decimal) (*models.Challenge, error)
	Get(userID, challengeID string) (*models.Challenge, error)
	List(userID string) (*ChallengeList, error)
	All(userID string) ([]models.Challenge, error)
	History(userID string, filter ChallengeFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Challenge], error)
}

// ProfileServicer composes the full analysis snapshot for one user and one
// raw row batch.
type ProfileServicer interface {
	BuildSnapshot(userID string, rows []models.RawRow) (*models.AnalysisSnapshot, error)
}

// CoachServicer is the boundary to the external language-generation
// service. The call is bounded by a timeout; a failed model call surfaces
// as a CoachUnavailable error, while an unconfigured service degrades to a
// canned answer.
type CoachServicer interface {
	Ask(ctx context.Context, question string, snapshot *models.AnalysisSnapshot) (string, error)
}
