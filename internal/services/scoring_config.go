package services

// All behavioral thresholds and weights live here so tests can assert on
// the documented cutoffs. None of these values appear as literals inside
// the scoring code.

// Advisory flag thresholds (aggregator).
const (
	// FlagWantsHighPct flags discretionary spend above this share of expenses.
	FlagWantsHighPct = 50.0
	// FlagWantsLowPct praises discretionary spend below this share.
	FlagWantsLowPct = 20.0
	// FlagConcentrationPct flags a single category above this share of expenses.
	FlagConcentrationPct = 40.0
	// FlagVolatilityCV flags weekly spending whose coefficient of variation exceeds this.
	FlagVolatilityCV = 0.5
	// EmergencyFundMinMonths/MaxMonths bound the suggested emergency fund.
	EmergencyFundMinMonths = 3
	EmergencyFundMaxMonths = 6
)

// Savings goal parameters.
const (
	// GoalWantsCutPct is the discretionary-spend reduction asked for.
	GoalWantsCutPct = 0.10
	// GoalFoodShareOfMonthly triggers the cook-at-home goal when food
	// wants exceed this share of monthly expenses.
	GoalFoodShareOfMonthly = 0.15
	// GoalFoodCutPct is the eating-out saving asked for.
	GoalFoodCutPct = 0.30
)

// Health score weights and cutoffs. The four factors sum to 100.
const (
	HealthSavingsMaxPoints     = 30.0
	HealthSavingsGoodRate      = 20.0 // savings rate % for full points
	HealthSavingsOKRate        = 10.0
	HealthSavingsGoodPoints    = 30.0
	HealthSavingsOKPoints      = 20.0
	HealthSavingsLowPoints     = 10.0
	HealthWantsMaxPoints       = 25.0
	HealthWantsGoodPct         = 30.0 // wants share of expenses for full points
	HealthWantsOKPct           = 50.0
	HealthWantsGoodPoints      = 25.0
	HealthWantsOKPoints        = 15.0
	HealthWantsHighPoints      = 5.0
	HealthConsistencyMaxPoints = 20.0
	HealthConsistencyGoodCV    = 0.3
	HealthConsistencyOKCV      = 0.6
	HealthConsistencyGoodPts   = 20.0
	HealthConsistencyOKPts     = 10.0
	HealthBufferMaxPoints      = 25.0
	HealthBufferGoodMonths     = 3.0
	HealthBufferOKMonths       = 1.0
	HealthBufferGoodPoints     = 25.0
	HealthBufferOKPoints       = 15.0
	HealthBufferLowPoints      = 5.0
	HealthRatingExcellent      = 80.0
	HealthRatingGood           = 60.0
	HealthRatingFair           = 40.0
)

// Momentum thresholds.
const (
	// MomentumMinWeeks is the minimum weekly buckets required before a
	// trend is reported instead of an insufficient-data marker.
	MomentumMinWeeks = 2
	// MomentumFlatThresholdPct treats changes within this band as flat.
	MomentumFlatThresholdPct = 5.0
)

// Habits breakdown parameters. Each dimension scores 0-100; the overall
// habits score is their unweighted mean.
const (
	HabitsMinTransactions        = 7
	HabitsConsistencyCVPenalty   = 50.0 // points lost per unit of daily-spend CV
	HabitsMindfulnessFreeTxnRate = 1.5  // transactions/day before penalties start
	HabitsMindfulnessPenalty     = 25.0 // points lost per excess transaction/day
	HabitsImpulseOutlierMult     = 3.0  // median multiple that marks a large purchase
	HabitsImpulsePenalty         = 10.0 // points lost per large purchase
	HabitsSavingsRateMultiplier  = 5.0  // savings rate % to points
)

// Spending trigger thresholds.
const (
	TriggersMinTransactions  = 10
	TriggerHighDayMultiplier = 1.3 // weekday mean vs overall mean
	TriggerHighDayMinCount   = 2
	TriggerWeekendMultiplier = 1.4 // weekend avg vs weekday avg
	TriggerImpulseTxnsPerDay = 4
	TriggerImpulseMinDays    = 2
)

// Pattern detection thresholds.
const (
	PatternsMinTransactions    = 5
	PatternOutlierIQRFactor    = 1.5
	PatternOutlierMaxReported  = 5
	PatternRecurringMinCount   = 3
	PatternDescriptionMaxRunes = 50
)

// Prediction thresholds.
const (
	PredictionMinDaysSpan        = 7
	PredictionMediumConfDaysSpan = 30
)

// Benchmark reference: the 50/30/20 rule.
const (
	BenchmarkNeedsPct   = 50.0
	BenchmarkWantsPct   = 30.0
	BenchmarkSavingsPct = 20.0
	// Acceptable overshoot before a split is labeled high/low.
	BenchmarkNeedsTolerance = 5.0
	BenchmarkWantsTolerance = 5.0
	BenchmarkSavingsFloor   = 15.0
)

// Personality classification thresholds.
const (
	PersonalityMinTransactions = 10
	PersonalityPlannerMaxCV    = 0.5
	PersonalitySpontaneousCV   = 1.5
	PersonalityLargeTxnMult    = 2.0 // mean multiple that marks a large purchase
	PersonalityLargeRatio      = 0.2
	PersonalityShopperTxnsDay  = 2.0
	PersonalityBulkMaxTxnsDay  = 0.5
	PersonalityBulkAvgMedMult  = 2.0
)

// peerBracket is one row of the reference distribution used for peer
// comparison. Values are period-income brackets with typical savings rates.
type peerBracket struct {
	MaxIncome   float64 // exclusive upper bound; 0 = unbounded
	Label       string
	SavingsRate float64 // typical peer savings rate %
}

// peerBrackets is scanned in order; the first bracket whose MaxIncome
// exceeds the user's income applies.
var peerBrackets = []peerBracket{
	{MaxIncome: 30000, Label: "0-30K/month", SavingsRate: 12},
	{MaxIncome: 50000, Label: "30-50K/month", SavingsRate: 18},
	{MaxIncome: 75000, Label: "50-75K/month", SavingsRate: 22},
	{MaxIncome: 0, Label: "75K+/month", SavingsRate: 28},
}

// Peer percentile cutoffs relative to the bracket's typical savings rate.
const (
	PeerTopMultiplier    = 1.3
	PeerStrongMultiplier = 1.1
	PeerAverageMult      = 0.9
	PeerTopPercentile    = 85
	PeerStrongPercentile = 70
	PeerAveragePct       = 50
	PeerBelowPercentile  = 30
)
