package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"flexicoach/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestUserID returns a unique user identifier for a test.
func NewTestUserID() string {
	return fmt.Sprintf("user-%d", nextID())
}

// Txn builds an expense transaction on the given day with a categorized
// description. Amounts are always positive; direction lives in the type.
func Txn(date string, amount float64, description string, category models.Category, isNeed bool) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(fmt.Sprintf("bad fixture date %q: %v", date, err))
	}
	return models.Transaction{
		Date:           d,
		Amount:         decimal.NewFromFloat(amount),
		Type:           models.TransactionTypeExpense,
		RawDescription: description,
		Category:       category,
		IsNeed:         isNeed,
	}
}

// IncomeTxn builds an income transaction on the given day.
func IncomeTxn(date string, amount float64, description string) models.Transaction {
	txn := Txn(date, amount, description, models.CategoryIncome, true)
	txn.Type = models.TransactionTypeIncome
	return txn
}

// CreateTestChallenge inserts a not_started challenge for the user.
func CreateTestChallenge(t *testing.T, db *gorm.DB, userID, challengeID string, target float64) *models.Challenge {
	t.Helper()

	challenge := &models.Challenge{
		UserID:      userID,
		ChallengeID: challengeID,
		Title:       "Test Challenge",
		Description: "A challenge created for testing",
		Difficulty:  models.ChallengeDifficultyEasy,
		Target:      decimal.NewFromFloat(target),
		Current:     decimal.Zero,
		Reward:      "Test reward",
		Points:      100,
		Status:      models.ChallengeStatusNotStarted,
	}
	if err := db.Create(challenge).Error; err != nil {
		t.Fatalf("failed to create test challenge: %v", err)
	}
	return challenge
}
