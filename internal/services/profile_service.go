package services

import (
	"flexicoach/internal/logger"
	"flexicoach/internal/models"
)

// profileService runs the analysis pipeline and composes the snapshot.
// The pipeline itself is stateless; challenge state is read from the
// challenge service, never recomputed.
type profileService struct {
	normalizer  NormalizerServicer
	categorizer CategorizerServicer
	aggregator  AggregatorServicer
	scorer      ScorerServicer
	templates   TemplateServicer
	challenges  ChallengeServicer
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(
	normalizer NormalizerServicer,
	categorizer CategorizerServicer,
	aggregator AggregatorServicer,
	scorer ScorerServicer,
	templates TemplateServicer,
	challenges ChallengeServicer,
) ProfileServicer {
	return &profileService{
		normalizer:  normalizer,
		categorizer: categorizer,
		aggregator:  aggregator,
		scorer:      scorer,
		templates:   templates,
		challenges:  challenges,
	}
}

// BuildSnapshot runs normalize -> categorize -> aggregate -> score over
// the raw rows, offers the derived challenge templates to the user, and
// assembles the full snapshot. Every analysis field is recomputed from
// scratch; only the challenge list reflects persistent state.
func (s *profileService) BuildSnapshot(userID string, rows []models.RawRow) (*models.AnalysisSnapshot, error) {
	txns, rejected, err := s.normalizer.Normalize(rows)
	if err != nil {
		return nil, err
	}

	for i := range txns {
		txns[i].Category, txns[i].IsNeed = s.categorizer.Categorize(txns[i].RawDescription, txns[i].Type)
	}

	agg, err := s.aggregator.Aggregate(txns)
	if err != nil {
		return nil, err
	}

	scores := s.scorer.Score(agg, txns)

	for _, tmpl := range s.templates.Build(agg, txns) {
		if _, err := s.challenges.Offer(userID, tmpl); err != nil {
			// A failed offer degrades the challenge list, not the analysis.
			logger.Get().Errorw("failed to offer challenge",
				"user_id", userID,
				"challenge_id", tmpl.ID,
				"error", err,
			)
		}
	}

	challenges, err := s.challenges.All(userID)
	if err != nil {
		return nil, err
	}

	return &models.AnalysisSnapshot{
		Summary:       agg.Summary,
		Categories:    agg.Categories,
		WeeklySeries:  agg.WeeklySeries,
		Flags:         agg.Flags,
		Behavioral:    scores,
		SavingsGoals:  agg.Goals,
		Challenges:    challenges,
		RejectedRows:  rejected,
		RejectedCount: len(rejected),
	}, nil
}
