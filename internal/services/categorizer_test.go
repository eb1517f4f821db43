package services

import (
	"testing"

	"flexicoach/internal/models"
)

func TestCategorize(t *testing.T) {
	svc := NewCategorizerService()

	t.Run("keyword_matching", func(t *testing.T) {
		cases := []struct {
			description string
			category    models.Category
			isNeed      bool
		}{
			{"Monthly rent payment", models.CategoryRent, true},
			{"DMart grocery run", models.CategoryFood, true},
			{"Zomato food delivery", models.CategoryFood, false},
			{"Uber ride to office", models.CategoryTransport, true},
			{"Electricity bill payment", models.CategoryBills, true},
			{"Apollo pharmacy", models.CategoryHealth, true},
			{"Netflix subscription", models.CategoryEntertainment, false},
			{"Amazon order", models.CategoryShopping, false},
			{"College tuition fee", models.CategoryEducation, true},
		}

		for _, tc := range cases {
			category, isNeed := svc.Categorize(tc.description, models.TransactionTypeExpense)
			if category != tc.category || isNeed != tc.isNeed {
				t.Errorf("Categorize(%q) = (%s, %v), want (%s, %v)",
					tc.description, category, isNeed, tc.category, tc.isNeed)
			}
		}
	})

	t.Run("case_insensitive", func(t *testing.T) {
		category, _ := svc.Categorize("ZOMATO ORDER #1234", models.TransactionTypeExpense)
		if category != models.CategoryFood {
			t.Errorf("expected food, got %s", category)
		}
	})

	t.Run("priority_first_match_wins", func(t *testing.T) {
		// "rent" outranks transport even when both keywords appear.
		category, isNeed := svc.Categorize("Rent paid via Uber cash", models.TransactionTypeExpense)
		if category != models.CategoryRent || !isNeed {
			t.Errorf("expected (rent, true), got (%s, %v)", category, isNeed)
		}
	})

	t.Run("unknown_falls_back_to_other_want", func(t *testing.T) {
		category, isNeed := svc.Categorize("Mystery merchant 42", models.TransactionTypeExpense)
		if category != models.CategoryOther {
			t.Errorf("expected other, got %s", category)
		}
		if isNeed {
			t.Error("expected unknown spend to count as a want")
		}
	})

	t.Run("income_always_income", func(t *testing.T) {
		category, _ := svc.Categorize("Zomato refund", models.TransactionTypeIncome)
		if category != models.CategoryIncome {
			t.Errorf("expected income, got %s", category)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		c1, n1 := svc.Categorize("Swiggy dinner", models.TransactionTypeExpense)
		c2, n2 := svc.Categorize("Swiggy dinner", models.TransactionTypeExpense)
		if c1 != c2 || n1 != n2 {
			t.Error("expected identical results for identical inputs")
		}
	})
}
