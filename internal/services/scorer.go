package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"flexicoach/internal/models"
)

// scorerService derives the behavioral signal bundle. Every sub-signal is
// computed independently so a degenerate upstream value (no income, too few
// transactions) marks only that signal unavailable.
type scorerService struct{}

// NewScorerService creates a new ScorerServicer.
func NewScorerService() ScorerServicer {
	return &scorerService{}
}

// Score computes the full behavioral bundle from the aggregates and the
// raw transaction sequence. All rules are deterministic threshold rules
// from scoring_config.go; nothing here is learned.
func (s *scorerService) Score(agg *AggregateResult, txns []models.Transaction) models.BehavioralScores {
	expenses := expensesOnly(txns)

	return models.BehavioralScores{
		HealthScore:      computeHealthScore(agg, txns),
		Momentum:         computeMomentum(agg.WeeklySeries),
		Habits:           computeHabits(agg, txns, expenses),
		SpendingTriggers: detectSpendingTriggers(expenses),
		Patterns:         detectPatterns(expenses),
		Predictions:      computePredictions(agg, txns, expenses),
		Benchmarks:       computeBenchmarks(agg.Summary),
		PeerComparison:   computePeerComparison(agg.Summary),
		Personality:      computePersonality(txns, expenses),
	}
}

func expensesOnly(txns []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.IsExpense() {
			out = append(out, t)
		}
	}
	return out
}

// computeHealthScore combines savings rate, wants control, weekly
// consistency, and emergency buffer into a 0-100 score with factor notes.
func computeHealthScore(agg *AggregateResult, txns []models.Transaction) models.HealthScore {
	income, _ := agg.Summary.TotalIncome.Float64()
	expenses, _ := agg.Summary.TotalExpenses.Float64()
	wants, _ := agg.Summary.TotalWants.Float64()

	var score float64
	factors := make([]string, 0, 4)

	if income > 0 {
		savingsRate := (income - expenses) / income * 100
		switch {
		case savingsRate >= HealthSavingsGoodRate:
			score += HealthSavingsGoodPoints
			factors = append(factors, "Excellent savings rate")
		case savingsRate >= HealthSavingsOKRate:
			score += HealthSavingsOKPoints
			factors = append(factors, "Good savings rate")
		case savingsRate >= 0:
			score += HealthSavingsLowPoints
			factors = append(factors, "Low savings rate")
		default:
			factors = append(factors, "Spending exceeds income")
		}
	}

	if expenses > 0 {
		wantsPct := wants / expenses * 100
		switch {
		case wantsPct <= HealthWantsGoodPct:
			score += HealthWantsGoodPoints
			factors = append(factors, "Well-controlled discretionary spending")
		case wantsPct <= HealthWantsOKPct:
			score += HealthWantsOKPoints
			factors = append(factors, "Moderate discretionary spending")
		default:
			score += HealthWantsHighPoints
			factors = append(factors, "High discretionary spending")
		}
	}

	if len(agg.WeeklySeries) > 1 {
		mean, stddev := weeklyStats(agg.WeeklySeries)
		if mean > 0 {
			cv := stddev / mean
			switch {
			case cv < HealthConsistencyGoodCV:
				score += HealthConsistencyGoodPts
				factors = append(factors, "Consistent spending patterns")
			case cv < HealthConsistencyOKCV:
				score += HealthConsistencyOKPts
				factors = append(factors, "Some spending volatility")
			default:
				factors = append(factors, "Highly variable spending")
			}
		}
	}

	days := observedDaysSpan(txns)
	if days > 0 && expenses > 0 {
		monthly := expenses * 30 / float64(days)
		buffer := (income - expenses) / monthly
		switch {
		case buffer >= HealthBufferGoodMonths:
			score += HealthBufferGoodPoints
			factors = append(factors, "Strong emergency buffer")
		case buffer >= HealthBufferOKMonths:
			score += HealthBufferOKPoints
			factors = append(factors, "Decent emergency buffer")
		default:
			score += HealthBufferLowPoints
			factors = append(factors, "Build your emergency fund")
		}
	}

	score = clamp(score, 0, 100)

	var rating string
	switch {
	case score >= HealthRatingExcellent:
		rating = "excellent"
	case score >= HealthRatingGood:
		rating = "good"
	case score >= HealthRatingFair:
		rating = "fair"
	default:
		rating = "needs improvement"
	}

	return models.HealthScore{
		Available: true,
		Score:     round1(score),
		Rating:    rating,
		Factors:   factors,
	}
}

// computeMomentum compares the most recent weekly spend against the
// trailing average of all prior weeks. Below MomentumMinWeeks buckets it
// reports insufficient data rather than fabricating a trend.
func computeMomentum(weekly []models.WeeklyBucket) models.Momentum {
	if len(weekly) < MomentumMinWeeks {
		return models.Momentum{
			Available: false,
			Reason:    fmt.Sprintf("insufficient data: need at least %d weeks of spending", MomentumMinWeeks),
		}
	}

	latest := weekly[len(weekly)-1].TotalSpent
	trailing := decimal.Zero
	for _, w := range weekly[:len(weekly)-1] {
		trailing = trailing.Add(w.TotalSpent)
	}
	trailingAvg := trailing.Div(decimal.NewFromInt(int64(len(weekly) - 1))).Round(2)

	var changePct float64
	if trailingAvg.IsPositive() {
		latestF, _ := latest.Float64()
		trailingF, _ := trailingAvg.Float64()
		changePct = (latestF - trailingF) / trailingF * 100
	}

	direction := models.MomentumFlat
	if changePct > MomentumFlatThresholdPct {
		direction = models.MomentumUp
	} else if changePct < -MomentumFlatThresholdPct {
		direction = models.MomentumDown
	}

	return models.Momentum{
		Available:       true,
		Direction:       direction,
		ChangePct:       round1(changePct),
		LatestWeek:      latest,
		TrailingAverage: trailingAvg,
	}
}

// computeHabits scores the five habit dimensions, each from a distinct
// behavioral proxy, on a 0-100 scale. The overall score is their
// unweighted mean.
func computeHabits(agg *AggregateResult, txns, expenses []models.Transaction) models.Habits {
	if len(expenses) < HabitsMinTransactions {
		return models.Habits{
			Available: false,
			Reason:    fmt.Sprintf("insufficient data: need at least %d expense transactions", HabitsMinTransactions),
		}
	}

	days := observedDaysSpan(txns) + 1
	dailyTotals := dailySpendTotals(expenses)

	// Consistency: coefficient of variation of daily spend.
	mean, stddev := floatStats(dailyTotals)
	cv := 1.0
	if mean > 0 {
		cv = stddev / mean
	}
	consistency := clamp(100-cv*HabitsConsistencyCVPenalty, 0, 100)

	// Mindfulness: transaction frequency.
	txnPerDay := float64(len(expenses)) / float64(days)
	mindfulness := 100.0
	if txnPerDay > HabitsMindfulnessFreeTxnRate {
		mindfulness = clamp(100-(txnPerDay-HabitsMindfulnessFreeTxnRate)*HabitsMindfulnessPenalty, 0, 100)
	}

	// Planning: share of days with no spending at all.
	noSpendRatio := float64(days-len(dailyTotals)) / float64(days)
	planning := clamp(noSpendRatio*100, 0, 100)

	// Impulse control: count of purchases far above the median.
	median := medianAmount(expenses)
	var large int
	threshold := median.Mul(decimal.NewFromFloat(HabitsImpulseOutlierMult))
	for _, t := range expenses {
		if t.Amount.GreaterThan(threshold) {
			large++
		}
	}
	impulse := clamp(100-float64(large)*HabitsImpulsePenalty, 0, 100)

	// Savings discipline: savings rate scaled to points.
	income, _ := agg.Summary.TotalIncome.Float64()
	expensesTotal, _ := agg.Summary.TotalExpenses.Float64()
	savingsRate := 0.0
	if income > 0 {
		savingsRate = (income - expensesTotal) / income * 100
	}
	discipline := clamp(savingsRate*HabitsSavingsRateMultiplier, 0, 100)

	overall := (consistency + mindfulness + planning + impulse + discipline) / 5

	var grade string
	switch {
	case overall >= 90:
		grade = "A+"
	case overall >= 80:
		grade = "A"
	case overall >= 70:
		grade = "B"
	case overall >= 60:
		grade = "C"
	default:
		grade = "D"
	}

	return models.Habits{
		Available: true,
		Score:     round1(overall),
		Grade:     grade,
		Breakdown: models.HabitsBreakdown{
			Consistency:       round1(consistency),
			Mindfulness:       round1(mindfulness),
			Planning:          round1(planning),
			ImpulseControl:    round1(impulse),
			SavingsDiscipline: round1(discipline),
		},
	}
}

// detectSpendingTriggers runs the rule-based trigger detectors over the
// expense sequence: high-spend weekdays, weekend splurges, and same-day
// transaction clusters.
func detectSpendingTriggers(expenses []models.Transaction) models.SpendingTriggers {
	if len(expenses) < TriggersMinTransactions {
		return models.SpendingTriggers{
			Available: false,
			Reason:    fmt.Sprintf("insufficient data: need at least %d expense transactions", TriggersMinTransactions),
			Triggers:  []models.SpendingTrigger{},
		}
	}

	triggers := make([]models.SpendingTrigger, 0, 3)

	var total float64
	for _, t := range expenses {
		v, _ := t.Amount.Float64()
		total += v
	}
	overallMean := total / float64(len(expenses))

	// Per-weekday means, checked in calendar order for deterministic output.
	type dayAgg struct {
		sum   float64
		count int
	}
	byDay := make(map[string]*dayAgg)
	var weekendSum, weekdaySum float64
	var weekendCount, weekdayCount int
	for _, t := range expenses {
		v, _ := t.Amount.Float64()
		day := t.Date.Weekday().String()
		if byDay[day] == nil {
			byDay[day] = &dayAgg{}
		}
		byDay[day].sum += v
		byDay[day].count++

		if t.Date.Weekday() == time.Saturday || t.Date.Weekday() == time.Sunday {
			weekendSum += v
			weekendCount++
		} else {
			weekdaySum += v
			weekdayCount++
		}
	}

	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		agg := byDay[day]
		if agg == nil || agg.count < TriggerHighDayMinCount {
			continue
		}
		dayMean := agg.sum / float64(agg.count)
		if dayMean > overallMean*TriggerHighDayMultiplier {
			triggers = append(triggers, models.SpendingTrigger{
				Type:           "high_spending_day",
				Trigger:        day,
				Impact:         fmt.Sprintf("%.0f per transaction, above your %.0f average", dayMean, overallMean),
				Recommendation: fmt.Sprintf("Plan ahead for %ss: pack lunch or limit eating out", day),
			})
		}
	}

	if weekendCount > 0 && weekdayCount > 0 {
		weekendAvg := weekendSum / float64(weekendCount)
		weekdayAvg := weekdaySum / float64(weekdayCount)
		if weekdayAvg > 0 && weekendAvg > weekdayAvg*TriggerWeekendMultiplier {
			triggers = append(triggers, models.SpendingTrigger{
				Type:           "weekend_splurge",
				Trigger:        "weekends",
				Impact:         fmt.Sprintf("%.0f more per transaction than weekdays", weekendAvg-weekdayAvg),
				Recommendation: "Set a weekend budget or plan free activities",
			})
		}
	}

	perDayCounts := make(map[string]int)
	for _, t := range expenses {
		perDayCounts[t.Date.Format("2006-01-02")]++
	}
	var clusterDays int
	for _, n := range perDayCounts {
		if n >= TriggerImpulseTxnsPerDay {
			clusterDays++
		}
	}
	if clusterDays >= TriggerImpulseMinDays {
		triggers = append(triggers, models.SpendingTrigger{
			Type:           "impulse_spending",
			Trigger:        "multiple transactions per day",
			Impact:         fmt.Sprintf("%d days with %d+ transactions", clusterDays, TriggerImpulseTxnsPerDay),
			Recommendation: "Use the 24-hour rule: wait before non-essential purchases",
		})
	}

	return models.SpendingTriggers{Available: true, Triggers: triggers}
}

// detectPatterns finds calendar spending patterns, streaks, outliers, and
// recurring merchants.
func detectPatterns(expenses []models.Transaction) models.Patterns {
	if len(expenses) < PatternsMinTransactions {
		return models.Patterns{
			Available: false,
			Reason:    fmt.Sprintf("insufficient data: need at least %d expense transactions", PatternsMinTransactions),
		}
	}

	dowTotals := make(map[string]decimal.Decimal)
	for _, t := range expenses {
		day := t.Date.Weekday().String()
		dowTotals[day] = dowTotals[day].Add(t.Amount)
	}

	var highestDay string
	var highestTotal decimal.Decimal
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		if total, ok := dowTotals[day]; ok && total.GreaterThan(highestTotal) {
			highestDay = day
			highestTotal = total
		}
	}

	// Longest run of consecutive calendar days with at least one expense.
	daySet := make(map[string]bool)
	for _, t := range expenses {
		daySet[t.Date.Format("2006-01-02")] = true
	}
	days := make([]string, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Strings(days)
	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		prev, _ := parseDate(days[i-1])
		cur, _ := parseDate(days[i])
		if cur.Sub(prev).Hours() == 24 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}

	// IQR outliers.
	var outliers []models.OutlierTransaction
	if len(expenses) > PatternsMinTransactions {
		amounts := make([]float64, len(expenses))
		for i, t := range expenses {
			amounts[i], _ = t.Amount.Float64()
		}
		sort.Float64s(amounts)
		q1 := quantile(amounts, 0.25)
		q3 := quantile(amounts, 0.75)
		upper := q3 + PatternOutlierIQRFactor*(q3-q1)

		for _, t := range expenses {
			v, _ := t.Amount.Float64()
			if v > upper {
				desc := t.RawDescription
				if r := []rune(desc); len(r) > PatternDescriptionMaxRunes {
					desc = string(r[:PatternDescriptionMaxRunes])
				}
				outliers = append(outliers, models.OutlierTransaction{
					Date:        t.Date.Format("2006-01-02"),
					Description: desc,
					Amount:      t.Amount,
					Category:    t.Category,
				})
				if len(outliers) == PatternOutlierMaxReported {
					break
				}
			}
		}
	}

	// Recurring merchants: repeated normalized descriptions.
	type merchantAgg struct {
		count int
		total decimal.Decimal
	}
	byMerchant := make(map[string]*merchantAgg)
	for _, t := range expenses {
		key := strings.ToLower(strings.TrimSpace(t.RawDescription))
		if key == "" {
			continue
		}
		if byMerchant[key] == nil {
			byMerchant[key] = &merchantAgg{}
		}
		byMerchant[key].count++
		byMerchant[key].total = byMerchant[key].total.Add(t.Amount)
	}
	recurring := make([]models.RecurringMerchant, 0)
	for desc, agg := range byMerchant {
		if agg.count >= PatternRecurringMinCount {
			recurring = append(recurring, models.RecurringMerchant{
				Description: desc,
				Count:       agg.count,
				Total:       agg.total.Round(2),
			})
		}
	}
	sort.Slice(recurring, func(i, j int) bool {
		if recurring[i].Count != recurring[j].Count {
			return recurring[i].Count > recurring[j].Count
		}
		return recurring[i].Description < recurring[j].Description
	})

	return models.Patterns{
		Available:          true,
		HighestSpendingDay: highestDay,
		LongestStreak:      longest,
		DayOfWeekTotals:    dowTotals,
		LargeTransactions:  outliers,
		RecurringMerchants: recurring,
	}
}

// computePredictions projects next-period spend by simple extrapolation:
// a least-squares line over the weekly series for next week, and the daily
// average scaled to 30 days for the month.
func computePredictions(agg *AggregateResult, txns, expenses []models.Transaction) models.Predictions {
	days := observedDaysSpan(txns)
	if days < PredictionMinDaysSpan {
		return models.Predictions{
			Available: false,
			Reason:    fmt.Sprintf("insufficient data: need at least %d days of history", PredictionMinDaysSpan),
		}
	}

	totalExpenses, _ := agg.Summary.TotalExpenses.Float64()
	dailyAvg := totalExpenses / float64(days)

	nextWeek := dailyAvg * 7
	if len(agg.WeeklySeries) >= 2 {
		nextWeek = math.Max(0, linearProjection(agg.WeeklySeries))
	}

	byCategory := make(map[string]decimal.Decimal, len(agg.Categories))
	scale := decimal.NewFromInt(30).Div(decimal.NewFromInt(int64(days)))
	for _, c := range agg.Categories {
		byCategory[string(c.Name)] = c.Amount.Mul(scale).Round(2)
	}

	confidence := "low"
	if days > PredictionMediumConfDaysSpan {
		confidence = "medium"
	}

	return models.Predictions{
		Available:        true,
		NextWeekSpend:    decimal.NewFromFloat(nextWeek).Round(2),
		MonthlySpend:     decimal.NewFromFloat(dailyAvg * 30).Round(2),
		DailyAverage:     decimal.NewFromFloat(dailyAvg).Round(2),
		ByCategory:       byCategory,
		Confidence:       confidence,
		ObservedDaysSpan: days,
	}
}

// linearProjection fits a least-squares line over the weekly totals and
// evaluates it one step past the series.
func linearProjection(weekly []models.WeeklyBucket) float64 {
	n := float64(len(weekly))
	var sumX, sumY, sumXY, sumXX float64
	for i, w := range weekly {
		x := float64(i)
		y, _ := w.TotalSpent.Float64()
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return sumY / n
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n
	return slope*n + intercept
}

// computeBenchmarks compares the user's needs/wants/savings split against
// the 50/30/20 rule.
func computeBenchmarks(summary models.Summary) models.Benchmarks {
	income, _ := summary.TotalIncome.Float64()
	if income <= 0 {
		return models.Benchmarks{
			Available: false,
			Reason:    "no income data available for comparison",
		}
	}

	needs, _ := summary.TotalNeeds.Float64()
	wants, _ := summary.TotalWants.Float64()

	needsPct := needs / income * 100
	wantsPct := wants / income * 100
	savingsPct := (income - needs - wants) / income * 100

	assessment := map[string]string{
		"needs":   "good",
		"wants":   "good",
		"savings": "good",
	}
	if needsPct > BenchmarkNeedsPct+BenchmarkNeedsTolerance {
		assessment["needs"] = "high"
	}
	if wantsPct > BenchmarkWantsPct+BenchmarkWantsTolerance {
		assessment["wants"] = "high"
	}
	if savingsPct < BenchmarkSavingsFloor {
		assessment["savings"] = "low"
	}

	return models.Benchmarks{
		Available: true,
		YourSplit: models.BenchmarkSplit{
			Needs:   round1(needsPct),
			Wants:   round1(wantsPct),
			Savings: round1(savingsPct),
		},
		IdealSplit: models.BenchmarkSplit{
			Needs:   BenchmarkNeedsPct,
			Wants:   BenchmarkWantsPct,
			Savings: BenchmarkSavingsPct,
		},
		Assessment: assessment,
	}
}

// computePeerComparison places the user's savings rate against the
// reference distribution for their income bracket.
func computePeerComparison(summary models.Summary) models.PeerComparison {
	income, _ := summary.TotalIncome.Float64()
	if income <= 0 {
		return models.PeerComparison{
			Available: false,
			Reason:    "no income data available for comparison",
		}
	}

	expenses, _ := summary.TotalExpenses.Float64()
	savingsRate := (income - expenses) / income * 100

	bracket := peerBrackets[len(peerBrackets)-1]
	for _, b := range peerBrackets {
		if b.MaxIncome > 0 && income < b.MaxIncome {
			bracket = b
			break
		}
	}

	var percentile int
	var rank string
	switch {
	case savingsRate > bracket.SavingsRate*PeerTopMultiplier:
		percentile, rank = PeerTopPercentile, "top 15%"
	case savingsRate > bracket.SavingsRate*PeerStrongMultiplier:
		percentile, rank = PeerStrongPercentile, "top 30%"
	case savingsRate > bracket.SavingsRate*PeerAverageMult:
		percentile, rank = PeerAveragePct, "average"
	default:
		percentile, rank = PeerBelowPercentile, "below average"
	}

	direction := "more"
	if savingsRate < bracket.SavingsRate {
		direction = "less"
	}

	return models.PeerComparison{
		Available:       true,
		IncomeBracket:   bracket.Label,
		SavingsRate:     round1(savingsRate),
		PeerSavingsRate: bracket.SavingsRate,
		Percentile:      percentile,
		Rank:            rank,
		Insight: fmt.Sprintf("You're saving %.1f%% %s than peers in your bracket",
			math.Abs(savingsRate-bracket.SavingsRate), direction),
	}
}

// computePersonality classifies the user into the fixed personality
// taxonomy from spending variability, purchase size, and frequency.
func computePersonality(txns, expenses []models.Transaction) models.Personality {
	if len(txns) < PersonalityMinTransactions || len(expenses) == 0 {
		return models.Personality{
			Available: false,
			Reason:    fmt.Sprintf("insufficient data: need at least %d transactions", PersonalityMinTransactions),
		}
	}

	amounts := make([]float64, len(expenses))
	for i, t := range expenses {
		amounts[i], _ = t.Amount.Float64()
	}
	mean, stddev := floatStats(amounts)
	cv := 0.0
	if mean > 0 {
		cv = stddev / mean
	}

	var largeCount int
	for _, v := range amounts {
		if v > mean*PersonalityLargeTxnMult {
			largeCount++
		}
	}
	largeRatio := float64(largeCount) / float64(len(expenses))

	days := observedDaysSpan(txns) + 1
	txnPerDay := float64(len(expenses)) / float64(days)

	median := medianAmount(expenses)
	medianF, _ := median.Float64()

	var pType models.PersonalityType
	var traits []string
	var advice string

	switch {
	case cv < PersonalityPlannerMaxCV:
		pType = models.PersonalityConsistentPlanner
		traits = []string{"Predictable spending patterns", "Good at budgeting", "Rarely makes impulse purchases"}
		advice = "Your consistency is a strength. Try automating savings to make the most of it."
	case cv > PersonalitySpontaneousCV && largeRatio > PersonalityLargeRatio:
		pType = models.PersonalitySpontaneousSpender
		traits = []string{"Variable spending habits", "Makes occasional big purchases", "Flexible with budget"}
		advice = "Consider setting aside an impulse fund to protect your savings."
	case txnPerDay > PersonalityShopperTxnsDay:
		pType = models.PersonalityFrequentShopper
		traits = []string{"High transaction frequency", "Prefers multiple small purchases", "Active spender"}
		advice = "Try consolidating purchases to cut down on small leaks."
	case txnPerDay <= PersonalityBulkMaxTxnsDay && medianF > 0 && mean > medianF*PersonalityBulkAvgMedMult:
		pType = models.PersonalityBulkBuyer
		traits = []string{"Prefers larger purchases", "Plans ahead", "Shops infrequently"}
		advice = "Bulk buying works when you actually use what you buy. Check for waste."
	default:
		pType = models.PersonalityBalanced
		traits = []string{"Moderate spending patterns", "Mix of small and large purchases", "Adaptable habits"}
		advice = "Your balanced approach is solid. Focus on optimizing each category."
	}

	return models.Personality{
		Available:            true,
		Type:                 pType,
		Traits:               traits,
		Advice:               advice,
		SpendingVariability:  round2(cv),
		TransactionFrequency: round2(txnPerDay),
	}
}

// observedDaysSpan returns the whole days between the first and last
// transaction in the batch.
func observedDaysSpan(txns []models.Transaction) int {
	if len(txns) == 0 {
		return 0
	}
	minDate, maxDate := txns[0].Date, txns[0].Date
	for _, t := range txns {
		if t.Date.Before(minDate) {
			minDate = t.Date
		}
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}
	}
	return int(maxDate.Sub(minDate).Hours() / 24)
}

// dailySpendTotals sums expenses per calendar day.
func dailySpendTotals(expenses []models.Transaction) []float64 {
	perDay := make(map[string]float64)
	for _, t := range expenses {
		v, _ := t.Amount.Float64()
		perDay[t.Date.Format("2006-01-02")] += v
	}
	totals := make([]float64, 0, len(perDay))
	for _, v := range perDay {
		totals = append(totals, v)
	}
	return totals
}

// medianAmount returns the median expense amount.
func medianAmount(expenses []models.Transaction) decimal.Decimal {
	if len(expenses) == 0 {
		return decimal.Zero
	}
	sorted := make([]decimal.Decimal, len(expenses))
	for i, t := range expenses {
		sorted[i] = t.Amount
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}

// floatStats returns mean and population standard deviation.
func floatStats(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	stddev = math.Sqrt(sq / float64(len(values)))
	return mean, stddev
}

// quantile returns the q-th quantile of a sorted slice by linear
// interpolation.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
