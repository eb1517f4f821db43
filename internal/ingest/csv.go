// Package ingest reads uploaded transaction files into raw rows for the
// normalizer. It owns header discovery only; field validation and type
// coercion happen downstream.
package ingest

import (
	"encoding/csv"
	"io"
	"regexp"
	"strings"

	apperrors "flexicoach/internal/errors"
	"flexicoach/internal/models"
)

var headerCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Candidate header names per required field. Bank exports disagree wildly
// on naming, so each field is matched against a list, first hit wins.
var (
	dateColumns = []string{
		"date", "transaction_date", "txn_date", "trans_date",
		"posting_date", "value_date", "timestamp",
	}
	descriptionColumns = []string{
		"description", "narration", "particulars", "details",
		"transaction_details", "remarks", "memo",
	}
	amountColumns = []string{
		"amount", "transaction_amount", "value", "txn_amount",
	}
	debitColumns  = []string{"debit", "debit_amount", "withdrawal"}
	creditColumns = []string{"credit", "credit_amount", "deposit"}
)

// ReadRows parses CSV content into raw rows. The header row is matched
// against known column-name variants; a file with separate debit/credit
// columns is folded into a single signed amount (debits negative).
// A structurally unreadable file or a missing required column is a batch
// failure; malformed data rows are passed through for the normalizer to
// reject individually.
func ReadRows(r io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnreadableInput, err)
	}
	if len(records) < 2 {
		return nil, apperrors.WithMessage(apperrors.ErrUnreadableInput, "Transaction file has no data rows")
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = normalizeHeader(col)
	}

	dateIdx := findColumn(header, dateColumns)
	if dateIdx < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrMissingColumn,
			"No date column found. Expected one of: "+strings.Join(dateColumns, ", "))
	}
	descIdx := findColumn(header, descriptionColumns)
	if descIdx < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrMissingColumn,
			"No description column found. Expected one of: "+strings.Join(descriptionColumns, ", "))
	}

	amountIdx := findColumn(header, amountColumns)
	debitIdx := findColumn(header, debitColumns)
	creditIdx := findColumn(header, creditColumns)
	if amountIdx < 0 && (debitIdx < 0 || creditIdx < 0) {
		return nil, apperrors.WithMessage(apperrors.ErrMissingColumn,
			"No amount column found. Expected one of: "+strings.Join(amountColumns, ", ")+" or separate debit/credit columns")
	}

	rows := make([]models.RawRow, 0, len(records)-1)
	for i, record := range records[1:] {
		row := models.RawRow{
			Line:        i + 2, // 1-based, after the header row
			Date:        field(record, dateIdx),
			Description: field(record, descIdx),
		}

		switch {
		case debitIdx >= 0 && creditIdx >= 0:
			if debit := strings.TrimSpace(field(record, debitIdx)); debit != "" && debit != "0" {
				row.Amount = "-" + debit
			} else {
				row.Amount = field(record, creditIdx)
			}
		default:
			row.Amount = field(record, amountIdx)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// normalizeHeader lowercases a column name and collapses spaces and
// special characters to underscores.
func normalizeHeader(col string) string {
	col = strings.ToLower(strings.TrimSpace(col))
	col = headerCleaner.ReplaceAllString(col, "_")
	return strings.Trim(col, "_")
}

func findColumn(header []string, candidates []string) int {
	for _, want := range candidates {
		for i, col := range header {
			if col == want {
				return i
			}
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
