package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdidvp/pushkraft/internal/domain"
	"github.com/abdidvp/pushkraft/internal/domain/scoring"
)

// ScoreService runs scorers in registration order and collects one Score
// per name; a later score under the same name replaces the earlier one.
type ScoreService struct {
	scorers    []domain.Registration[domain.Scorer]
	weightings scoring.Weightings
	logger     *slog.Logger
}

func NewScoreService(scorers []domain.Registration[domain.Scorer]) *ScoreService {
	return &ScoreService{scorers: scorers, logger: discardLogger()}
}

// WithWeightings sets the weightings used by Composite.
func (s *ScoreService) WithWeightings(w scoring.Weightings) *ScoreService {
	s.weightings = w
	return s
}

func (s *ScoreService) WithLogger(logger *slog.Logger) *ScoreService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Score rates an Interpretation, writing into interp.Scores.
func (s *ScoreService) Score(ctx context.Context, interp *domain.Interpretation, sdm *domain.SdmContext, opts domain.AnalysisOptions) error {
	if interp.Scores == nil {
		interp.Scores = make(domain.Scores)
	}
	subject := domain.ScoringSubject{Analysis: interp.Analysis(), Interpretation: interp}
	return s.run(ctx, subject, sdm, opts, interp.Scores)
}

// ScoreAnalysis rates an Analysis on its own.
func (s *ScoreService) ScoreAnalysis(ctx context.Context, analysis *domain.Analysis, sdm *domain.SdmContext, opts domain.AnalysisOptions) (domain.Scores, error) {
	scores := make(domain.Scores)
	if err := s.run(ctx, domain.ScoringSubject{Analysis: analysis}, sdm, opts, scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// Composite returns the weighted composite of scores using the configured
// weightings; false when scores is empty.
func (s *ScoreService) Composite(scores domain.Scores) (float64, bool) {
	return scoring.WeightedCompositeScore(scores, s.weightings)
}

func (s *ScoreService) run(ctx context.Context, subject domain.ScoringSubject, sdm *domain.SdmContext, opts domain.AnalysisOptions, into domain.Scores) error {
	for i, scorer := range domain.Eligible(s.scorers, opts, sdm) {
		score, err := scorer.Score(ctx, subject, sdm)
		if err != nil {
			return fmt.Errorf("scorer %d: %w", i, err)
		}
		if err := score.Validate(); err != nil {
			return fmt.Errorf("scorer %d (%q): %w", i, score.Name, err)
		}
		s.logger.Debug("scored", "score", score.Name, "value", int(score.Score))
		into.Put(score)
	}
	return nil
}
