package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction. Normalized
// amounts are always positive; direction lives here.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Category is the fixed spending category set assigned by the categorizer.
type Category string

const (
	CategoryRent          Category = "rent"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryBills         Category = "bills"
	CategoryHealth        Category = "health"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryEducation     Category = "education"
	CategoryIncome        Category = "income"
	CategoryOther         Category = "other"
)

// RawRow is a single unvalidated row handed to the normalizer by the
// ingestion layer. All fields are text as read from the source.
type RawRow struct {
	Line        int    `json:"line"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// RejectedRow records a row the normalizer dropped and why.
type RejectedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Transaction is a validated, categorized transaction record. Immutable
// once normalized.
type Transaction struct {
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Type           TransactionType `json:"type"`
	RawDescription string          `json:"raw_description"`
	Category       Category        `json:"category"`
	IsNeed         bool            `json:"is_need"`
}

// IsExpense reports whether the transaction is money going out.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
