package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// InterpretService turns an Analysis into an Interpretation by folding the
// eligible interpreters over it one at a time.
type InterpretService struct {
	analyzer     *AnalysisService
	interpreters []domain.Registration[domain.Interpreter]
	scorer       *ScoreService
	logger       *slog.Logger
	newID        func() string
}

func NewInterpretService(analyzer *AnalysisService, interpreters []domain.Registration[domain.Interpreter]) *InterpretService {
	return &InterpretService{
		analyzer:     analyzer,
		interpreters: interpreters,
		logger:       discardLogger(),
		newID:        uuid.NewString,
	}
}

// WithScorer scores every Interpretation once interpreters have run.
func (s *InterpretService) WithScorer(scorer *ScoreService) *InterpretService {
	s.scorer = scorer
	return s
}

func (s *InterpretService) WithLogger(logger *slog.Logger) *InterpretService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Interpret analyzes p and interprets the result.
func (s *InterpretService) Interpret(ctx context.Context, p domain.Project, sdm *domain.SdmContext, opts domain.AnalysisOptions) (*domain.Interpretation, error) {
	if s.analyzer == nil {
		return nil, fmt.Errorf("interpreting %s: no analysis service configured", p.Name())
	}
	analysis, err := s.analyzer.Analyze(ctx, p, sdm, opts)
	if err != nil {
		return nil, fmt.Errorf("analyzing project: %w", err)
	}
	return s.InterpretAnalysis(ctx, analysis, sdm, opts)
}

// InterpretAnalysis interprets a precomputed Analysis. Interpreters run
// strictly in registration order, so each observes the decisions of the
// ones before it. An interpreter returning true is recorded as chosen.
// Any interpreter error aborts the whole interpretation.
func (s *InterpretService) InterpretAnalysis(ctx context.Context, analysis *domain.Analysis, sdm *domain.SdmContext, opts domain.AnalysisOptions) (*domain.Interpretation, error) {
	available := make([]string, 0, len(s.interpreters))
	for _, in := range domain.Actions(s.interpreters) {
		available = append(available, in.Name())
	}

	interp := domain.NewInterpretation(s.newID(), analysis, available)

	for _, in := range domain.Eligible(s.interpreters, opts, sdm) {
		chosen, err := in.Enrich(ctx, interp, sdm)
		if err != nil {
			return nil, fmt.Errorf("interpreter %q: %w", in.Name(), err)
		}
		s.logger.Debug("interpreter ran", "interpreter", in.Name(), "chosen", chosen)
		if chosen {
			interp.Reason.ChosenInterpreters = append(interp.Reason.ChosenInterpreters, in.Name())
		}
	}

	if s.scorer != nil {
		if err := s.scorer.Score(ctx, interp, sdm, opts); err != nil {
			return nil, fmt.Errorf("scoring interpretation: %w", err)
		}
	}

	return interp, nil
}
