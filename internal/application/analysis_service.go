package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// AnalysisService composes scanner output into one Analysis:
// filter scanners → scan (batch or in order) → merge → full-mode extras.
type AnalysisService struct {
	scanners     []domain.Registration[domain.Scanner]
	contributors []domain.RecipeContributorRegistration
	inspections  []domain.Registration[domain.CodeInspection]
	seeds        *SeedService
	scorer       *ScoreService
	vcs          domain.VersionControl
	mode         domain.ScanMode
	logger       *slog.Logger
	newID        func() string
}

func NewAnalysisService(scanners []domain.Registration[domain.Scanner]) *AnalysisService {
	return &AnalysisService{
		scanners: scanners,
		seeds:    NewSeedService(),
		mode:     domain.ScanConcurrent,
		logger:   discardLogger(),
		newID:    uuid.NewString,
	}
}

// WithScanMode selects batch or ordered scanning.
func (s *AnalysisService) WithScanMode(mode domain.ScanMode) *AnalysisService {
	if mode != "" {
		s.mode = mode
	}
	return s
}

// WithRecipeContributors sets the seed recipe contributors used on full analyses.
func (s *AnalysisService) WithRecipeContributors(contributors []domain.RecipeContributorRegistration) *AnalysisService {
	s.contributors = contributors
	return s
}

// WithInspections sets the code inspections run on full analyses.
func (s *AnalysisService) WithInspections(inspections []domain.Registration[domain.CodeInspection]) *AnalysisService {
	s.inspections = inspections
	return s
}

// WithScorer sets the scorers run against full analyses.
func (s *AnalysisService) WithScorer(scorer *ScoreService) *AnalysisService {
	s.scorer = scorer
	return s
}

// WithVersionControl sets the best-effort repository status reader.
func (s *AnalysisService) WithVersionControl(vcs domain.VersionControl) *AnalysisService {
	s.vcs = vcs
	return s
}

func (s *AnalysisService) WithLogger(logger *slog.Logger) *AnalysisService {
	if logger != nil {
		s.logger = logger
		s.seeds.WithLogger(logger)
	}
	return s
}

// Analyze runs every eligible scanner against p and merges their elements.
// Any scanner error aborts the call; there is no partial result.
func (s *AnalysisService) Analyze(ctx context.Context, p domain.Project, sdm *domain.SdmContext, opts domain.AnalysisOptions) (*domain.Analysis, error) {
	analysis := domain.NewAnalysis(s.newID(), p.Name())
	scanners := domain.Eligible(s.scanners, opts, sdm)

	s.logger.Debug("analyzing project",
		"project", p.Name(),
		"scanners", len(scanners),
		"mode", string(s.mode),
		"full", opts.Full,
	)

	var err error
	switch s.mode {
	case domain.ScanSequential:
		err = s.scanSequentially(ctx, p, sdm, opts, scanners, analysis)
	default:
		err = s.scanConcurrently(ctx, p, sdm, opts, scanners, analysis)
	}
	if err != nil {
		return nil, err
	}

	if opts.Full {
		if err := s.completeFullAnalysis(ctx, p, sdm, opts, analysis); err != nil {
			return nil, err
		}
	}

	return analysis, nil
}

// scanConcurrently launches all scanners before awaiting any. Every scanner
// reads the same pre-merge snapshot. Elements are merged in registration
// order once the whole batch has resolved.
func (s *AnalysisService) scanConcurrently(
	ctx context.Context,
	p domain.Project,
	sdm *domain.SdmContext,
	opts domain.AnalysisOptions,
	scanners []domain.Scanner,
	analysis *domain.Analysis,
) error {
	snapshot := analysis.Snapshot()
	elements := make([]*domain.TechnologyElement, len(scanners))

	g, gctx := errgroup.WithContext(ctx)
	for i, sc := range scanners {
		g.Go(func() error {
			el, err := sc.Scan(gctx, p, sdm, snapshot, opts)
			if err != nil {
				return fmt.Errorf("scanner %q: %w", sc.Name(), err)
			}
			elements[i] = el
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("scanning project: %w", err)
	}

	for i, el := range elements {
		s.merge(analysis, scanners[i], el)
	}
	return nil
}

// scanSequentially runs scanners in registration order; each one sees the
// elements merged before it.
func (s *AnalysisService) scanSequentially(
	ctx context.Context,
	p domain.Project,
	sdm *domain.SdmContext,
	opts domain.AnalysisOptions,
	scanners []domain.Scanner,
	analysis *domain.Analysis,
) error {
	for _, sc := range scanners {
		el, err := sc.Scan(ctx, p, sdm, analysis.Snapshot(), opts)
		if err != nil {
			return fmt.Errorf("scanning project: scanner %q: %w", sc.Name(), err)
		}
		s.merge(analysis, sc, el)
	}
	return nil
}

func (s *AnalysisService) merge(analysis *domain.Analysis, sc domain.Scanner, el *domain.TechnologyElement) {
	if el == nil {
		s.logger.Debug("scanner not applicable", "scanner", sc.Name())
		return
	}
	if analysis.HasElement(el.Name) {
		s.logger.Debug("element overwritten", "scanner", sc.Name(), "element", el.Name)
	}
	analysis.Merge(el)
}

func (s *AnalysisService) completeFullAnalysis(
	ctx context.Context,
	p domain.Project,
	sdm *domain.SdmContext,
	opts domain.AnalysisOptions,
	analysis *domain.Analysis,
) error {
	seed, err := s.seeds.PerformSeedAnalysis(ctx, p, analysis, s.contributors, sdm)
	if err != nil {
		return fmt.Errorf("seed analysis: %w", err)
	}
	analysis.SeedAnalysis = seed

	if s.scorer != nil {
		scores, err := s.scorer.ScoreAnalysis(ctx, analysis, sdm, opts)
		if err != nil {
			return fmt.Errorf("scoring analysis: %w", err)
		}
		analysis.Scores = scores
	}

	inspections := domain.Eligible(s.inspections, opts, sdm)
	if len(inspections) > 0 {
		analysis.Inspections = make(map[string]domain.InspectionReport, len(inspections))
		for _, insp := range inspections {
			report, err := insp.Inspect(ctx, p)
			if err != nil {
				return fmt.Errorf("inspection %q: %w", insp.Name(), err)
			}
			analysis.Inspections[insp.Name()] = report
		}
	}

	// Version-control status is best-effort: a failure leaves the field unset.
	if s.vcs != nil {
		status, err := s.vcs.Status(ctx, p.BaseDir())
		if err != nil {
			s.logger.Debug("version control status unavailable", "project", p.Name(), "error", err)
		} else {
			analysis.VersionControl = status
		}
	}

	return nil
}
