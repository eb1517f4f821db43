package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "flexicoach/internal/errors"
	"flexicoach/internal/logger"
	"flexicoach/internal/models"
)

// dateLayouts are tried in order when parsing a row's date field.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// incomeKeywords mark a transaction as income when the batch's amounts do
// not carry a usable sign convention.
var incomeKeywords = []string{
	"salary", "credit", "deposit", "refund", "cashback", "interest earned",
}

// normalizerService validates and coerces raw rows into canonical
// transactions.
type normalizerService struct{}

// NewNormalizerService creates a new NormalizerServicer.
func NewNormalizerService() NormalizerServicer {
	return &normalizerService{}
}

// parsedRow is an intermediate row with typed date and signed amount,
// before the batch sign convention is resolved.
type parsedRow struct {
	line        int
	date        time.Time
	amount      decimal.Decimal
	description string
}

// Normalize validates each row, resolves the batch's sign convention, and
// returns transactions sorted by date plus the rows it rejected. Amounts on
// the returned transactions are always positive; direction lives in Type.
func (s *normalizerService) Normalize(rows []models.RawRow) ([]models.Transaction, []models.RejectedRow, error) {
	if len(rows) == 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrUnreadableInput, "No transaction rows provided")
	}

	parsed := make([]parsedRow, 0, len(rows))
	rejected := make([]models.RejectedRow, 0)

	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			rejected = append(rejected, models.RejectedRow{Line: row.Line, Reason: fmt.Sprintf("unparseable date %q", row.Date)})
			continue
		}

		amount, err := ParseAmount(row.Amount)
		if err != nil {
			rejected = append(rejected, models.RejectedRow{Line: row.Line, Reason: fmt.Sprintf("unparseable amount %q", row.Amount)})
			continue
		}

		parsed = append(parsed, parsedRow{
			line:        row.Line,
			date:        date,
			amount:      amount,
			description: strings.TrimSpace(row.Description),
		})
	}

	if len(rejected) > 0 {
		logger.Get().Warnw("dropped rows with invalid date/amount",
			"dropped", len(rejected),
			"total", len(rows),
		)
	}

	if len(parsed) == 0 {
		// The caller gets the per-row reasons alongside the batch error so
		// it can report which rows failed and why.
		err := apperrors.WithMessage(apperrors.ErrEmptyResult,
			fmt.Sprintf("No valid transactions found after cleaning %d rows", len(rows)))
		return nil, rejected, apperrors.WithDetails(err, map[string]interface{}{"rejected_rows": rejected})
	}

	txns := resolveSigns(parsed)

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})

	return txns, rejected, nil
}

// resolveSigns fixes the income/expense convention for the whole batch.
// When negative amounts dominate, negative means expense (money out). When
// the source uses positive amounts for everything, income is identified by
// description keywords and the rest defaults to expense.
func resolveSigns(parsed []parsedRow) []models.Transaction {
	var negatives, positives int
	for _, p := range parsed {
		switch {
		case p.amount.IsNegative():
			negatives++
		case p.amount.IsPositive():
			positives++
		}
	}
	negativeMeansExpense := negatives > positives

	txns := make([]models.Transaction, 0, len(parsed))
	for _, p := range parsed {
		txType := models.TransactionTypeExpense
		if negativeMeansExpense {
			if !p.amount.IsNegative() {
				txType = models.TransactionTypeIncome
			}
		} else if matchesIncomeKeyword(p.description) {
			txType = models.TransactionTypeIncome
		}

		txns = append(txns, models.Transaction{
			Date:           p.date,
			Amount:         p.amount.Abs(),
			Type:           txType,
			RawDescription: p.description,
		})
	}
	return txns
}

func matchesIncomeKeyword(description string) bool {
	lower := strings.ToLower(description)
	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// parseDate tries the known date layouts in order.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no matching date layout for %q", value)
}

// ParseAmount parses amount text tolerating thousands separators, currency
// symbols, leading plus signs, and accounting parentheses for negatives.
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	cleaned = strings.NewReplacer(",", "", " ", "", "₹", "", "$", "", "€", "", "£", "", "+", "").Replace(cleaned)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, err
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}
