package services

import (
	"strings"

	"flexicoach/internal/models"
)

// categoryRule matches a description against keywords for one category.
type categoryRule struct {
	category models.Category
	isNeed   bool
	keywords []string
}

// categoryRules is evaluated top to bottom; the first matching rule wins.
// This order is the documented tie-break priority and must not be
// reordered: rent/housing, groceries, eating out, transport, bills,
// health, entertainment, shopping, education.
var categoryRules = []categoryRule{
	{models.CategoryRent, true, []string{
		"rent", "lease", "emi", "loan", "mortgage", "housing",
	}},
	{models.CategoryFood, true, []string{
		"grocery", "supermarket", "kirana", "vegetable", "fruit",
		"dmart", "reliance fresh", "big bazaar",
	}},
	{models.CategoryFood, false, []string{
		"zomato", "swiggy", "restaurant", "cafe", "coffee", "pizza",
		"burger", "domino", "mcdonald", "kfc", "food delivery",
	}},
	{models.CategoryTransport, true, []string{
		"uber", "ola", "bus", "train", "metro", "fuel", "petrol",
		"diesel", "rapido", "auto",
	}},
	{models.CategoryBills, true, []string{
		"electricity", "water", "wifi", "internet", "phone", "mobile",
		"recharge", "gas", "cylinder", "utility", "bill payment",
	}},
	{models.CategoryHealth, true, []string{
		"medical", "hospital", "doctor", "pharmacy", "medicine",
		"health", "insurance", "apollo",
	}},
	{models.CategoryEntertainment, false, []string{
		"netflix", "spotify", "prime", "hotstar", "movie", "cinema",
		"theatre", "pvr", "inox", "gaming", "game",
	}},
	{models.CategoryShopping, false, []string{
		"amazon", "flipkart", "myntra", "ajio", "shopping", "mall",
		"store", "fashion", "clothing", "shoes",
	}},
	{models.CategoryEducation, true, []string{
		"education", "school", "college", "university", "course",
		"tuition", "book", "study",
	}},
}

// categorizerService assigns categories by deterministic keyword matching.
type categorizerService struct{}

// NewCategorizerService creates a new CategorizerServicer.
func NewCategorizerService() CategorizerServicer {
	return &categorizerService{}
}

// Categorize returns the category and needs/wants label for a description.
// Income transactions always categorize as income. Matching is
// case-insensitive and purely a function of the inputs; when no keyword
// matches, the fallback is ("other", want) so unknown spend gets scrutiny.
func (s *categorizerService) Categorize(description string, txType models.TransactionType) (models.Category, bool) {
	if txType == models.TransactionTypeIncome {
		return models.CategoryIncome, false
	}

	lower := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category, rule.isNeed
			}
		}
	}

	return models.CategoryOther, false
}
