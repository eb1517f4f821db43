package ingest

import (
	"strings"
	"testing"

	"flexicoach/internal/testutil"
)

func TestReadRows(t *testing.T) {
	t.Run("standard_columns", func(t *testing.T) {
		csv := "Date,Description,Amount\n" +
			"2025-11-01,Salary,50000\n" +
			"2025-11-03,Zomato food delivery,-500\n"

		rows, err := ReadRows(strings.NewReader(csv))
		testutil.AssertNoError(t, err)

		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].Line != 2 {
			t.Errorf("expected first data row at line 2, got %d", rows[0].Line)
		}
		if rows[0].Date != "2025-11-01" || rows[0].Amount != "50000" {
			t.Errorf("unexpected first row: %+v", rows[0])
		}
		if rows[1].Description != "Zomato food delivery" {
			t.Errorf("unexpected description: %q", rows[1].Description)
		}
	})

	t.Run("header_name_variants", func(t *testing.T) {
		csv := "Txn Date,Narration,Transaction Amount\n" +
			"2025-11-01,Rent payment,-15000\n"

		rows, err := ReadRows(strings.NewReader(csv))
		testutil.AssertNoError(t, err)

		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].Amount != "-15000" {
			t.Errorf("expected amount -15000, got %q", rows[0].Amount)
		}
	})

	t.Run("debit_credit_columns", func(t *testing.T) {
		csv := "Date,Description,Debit,Credit\n" +
			"2025-11-01,Grocery store,1200,\n" +
			"2025-11-02,Salary,,50000\n"

		rows, err := ReadRows(strings.NewReader(csv))
		testutil.AssertNoError(t, err)

		if rows[0].Amount != "-1200" {
			t.Errorf("expected debit folded to -1200, got %q", rows[0].Amount)
		}
		if rows[1].Amount != "50000" {
			t.Errorf("expected credit 50000, got %q", rows[1].Amount)
		}
	})

	t.Run("ragged_rows_pass_through", func(t *testing.T) {
		csv := "Date,Description,Amount\n" +
			"2025-11-01,Coffee\n" +
			"2025-11-02,Lunch,-250\n"

		rows, err := ReadRows(strings.NewReader(csv))
		testutil.AssertNoError(t, err)

		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].Amount != "" {
			t.Errorf("expected missing amount to be empty, got %q", rows[0].Amount)
		}
	})

	t.Run("missing_date_column", func(t *testing.T) {
		csv := "Description,Amount\nCoffee,-100\n"
		_, err := ReadRows(strings.NewReader(csv))
		testutil.AssertAppError(t, err, "MISSING_COLUMN")
	})

	t.Run("missing_amount_and_debit_credit", func(t *testing.T) {
		csv := "Date,Description,Debit\n2025-11-01,Coffee,100\n"
		_, err := ReadRows(strings.NewReader(csv))
		testutil.AssertAppError(t, err, "MISSING_COLUMN")
	})

	t.Run("header_only", func(t *testing.T) {
		_, err := ReadRows(strings.NewReader("Date,Description,Amount\n"))
		testutil.AssertAppError(t, err, "UNREADABLE_INPUT")
	})

	t.Run("empty_file", func(t *testing.T) {
		_, err := ReadRows(strings.NewReader(""))
		testutil.AssertAppError(t, err, "UNREADABLE_INPUT")
	})
}

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"Date":               "date",
		"  Txn Date ":        "txn_date",
		"Transaction-Amount": "transaction_amount",
		"DEBIT AMOUNT":       "debit_amount",
	}
	for in, want := range cases {
		if got := normalizeHeader(in); got != want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", in, got, want)
		}
	}
}
