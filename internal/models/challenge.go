package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"flexicoach/internal/uuid"
)

// ChallengeStatus represents the lifecycle state of a user's challenge.
// Transitions only move forward: not_started -> active -> completed.
type ChallengeStatus string

const (
	ChallengeStatusNotStarted ChallengeStatus = "not_started"
	ChallengeStatusActive     ChallengeStatus = "active"
	ChallengeStatusCompleted  ChallengeStatus = "completed"
)

// ChallengeDifficulty is the ordered difficulty scale for challenges.
type ChallengeDifficulty string

const (
	ChallengeDifficultyEasy   ChallengeDifficulty = "easy"
	ChallengeDifficultyMedium ChallengeDifficulty = "medium"
	ChallengeDifficultyHard   ChallengeDifficulty = "hard"
)

// Challenge is a user's progress-tracked spending or saving goal, keyed by
// (user_id, challenge_id). The record ID is internal; the wire identifier
// is the template's challenge ID.
type Challenge struct {
	RecordID    string              `gorm:"type:uuid;primaryKey" json:"-"`
	UserID      string              `gorm:"not null;uniqueIndex:idx_user_challenge" json:"-"`
	ChallengeID string              `gorm:"not null;uniqueIndex:idx_user_challenge" json:"id"`
	Title       string              `gorm:"not null" json:"title"`
	Description string              `json:"description"`
	Difficulty  ChallengeDifficulty `gorm:"not null" json:"difficulty"`
	Target      decimal.Decimal     `gorm:"type:decimal(20,2);not null" json:"target"`
	Current     decimal.Decimal     `gorm:"type:decimal(20,2);not null" json:"current"`
	Reward      string              `json:"reward"`
	Points      int                 `gorm:"not null" json:"points"`
	Status      ChallengeStatus     `gorm:"not null" json:"status"`
	StartedAt   *time.Time          `json:"startedAt,omitempty"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
	CreatedAt   time.Time           `json:"-"`
	UpdatedAt   time.Time           `json:"-"`
}

// BeforeCreate generates a UUIDv7 record ID and guarantees every stored
// challenge has a status. The status invariant is enforced here, at write
// time, never patched on read.
func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.RecordID == "" {
		c.RecordID = uuid.New()
	}
	if c.Status == "" {
		c.Status = ChallengeStatusNotStarted
	}
	return nil
}

// ChallengeTemplate is a catalog entry a challenge is instantiated from.
// Target and InitialCurrent are personalized from the user's aggregates
// when the catalog is built.
type ChallengeTemplate struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Difficulty     ChallengeDifficulty `json:"difficulty"`
	Target         decimal.Decimal     `json:"target"`
	InitialCurrent decimal.Decimal     `json:"current"`
	Reward         string              `json:"reward"`
	Points         int                 `json:"points"`
}
