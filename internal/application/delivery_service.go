package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abdidvp/pushkraft/internal/domain"
	"github.com/abdidvp/pushkraft/internal/domain/goalgraph"
)

// ErrNotUsableAsSeed is returned by Seed when no optional contributor
// proposed a parameter for the project.
var ErrNotUsableAsSeed = errors.New("project is not usable as a seed")

// DeliveryService orchestrates the whole pipeline for one project path:
// load config → open project → analyze → interpret → score → plan goals.
type DeliveryService struct {
	pack           domain.Pack
	opener         domain.ProjectOpener
	configLoader   domain.ConfigLoader
	vcs            domain.VersionControl
	newPreferences domain.PreferenceStoreFactory
	logger         *slog.Logger
}

func NewDeliveryService(
	pack domain.Pack,
	opener domain.ProjectOpener,
	configLoader domain.ConfigLoader,
	vcs domain.VersionControl,
	newPreferences domain.PreferenceStoreFactory,
) *DeliveryService {
	return &DeliveryService{
		pack:           pack,
		opener:         opener,
		configLoader:   configLoader,
		vcs:            vcs,
		newPreferences: newPreferences,
		logger:         discardLogger(),
	}
}

func (s *DeliveryService) WithLogger(logger *slog.Logger) *DeliveryService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// PlanReport is the result of planning delivery for a project.
type PlanReport struct {
	Interpretation *domain.Interpretation  `json:"interpretation"`
	Plan           *goalgraph.DeliveryPlan `json:"plan"`
	Composite      *float64                `json:"composite_score,omitempty"`
	Push           domain.Push             `json:"push"`
	MaterialChange bool                    `json:"material_change"`
}

type session struct {
	project     domain.Project
	sdm         *domain.SdmContext
	opts        domain.AnalysisOptions
	analyzer    *AnalysisService
	interpreter *InterpretService
	scorer      *ScoreService
}

// Analyze produces the Analysis for the project at path.
func (s *DeliveryService) Analyze(ctx context.Context, path string, opts domain.AnalysisOptions) (*domain.Analysis, error) {
	sess, err := s.prepare(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return sess.analyzer.Analyze(ctx, sess.project, sess.sdm, sess.opts)
}

// Interpret produces the scored Interpretation for the project at path.
func (s *DeliveryService) Interpret(ctx context.Context, path string, opts domain.AnalysisOptions) (*domain.Interpretation, error) {
	sess, err := s.prepare(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return sess.interpreter.Interpret(ctx, sess.project, sess.sdm, sess.opts)
}

// Plan interprets the project and turns the result into a delivery plan.
func (s *DeliveryService) Plan(ctx context.Context, path string, opts domain.AnalysisOptions) (*PlanReport, error) {
	sess, err := s.prepare(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	interp, err := sess.interpreter.Interpret(ctx, sess.project, sess.sdm, sess.opts)
	if err != nil {
		return nil, err
	}

	report := &PlanReport{
		Interpretation: interp,
		Plan:           goalgraph.Build(interp),
		Push:           s.currentPush(ctx, sess.project),
	}
	if composite, ok := sess.scorer.Composite(interp.Scores); ok {
		report.Composite = &composite
	}

	material, err := interp.IsMaterialChange(ctx, report.Push)
	if err != nil {
		return nil, fmt.Errorf("checking material change: %w", err)
	}
	report.MaterialChange = material

	return report, nil
}

// Seed runs a full analysis and applies every accepted transform with the
// given parameter values.
func (s *DeliveryService) Seed(ctx context.Context, path string, values domain.ParameterValues) (*domain.SeedAnalysis, error) {
	sess, err := s.prepare(ctx, path, domain.AnalysisOptions{Full: true})
	if err != nil {
		return nil, err
	}

	analysis, err := sess.analyzer.Analyze(ctx, sess.project, sess.sdm, sess.opts)
	if err != nil {
		return nil, err
	}
	if !analysis.SeedAnalysis.UsableAsSeed() {
		return analysis.SeedAnalysis, ErrNotUsableAsSeed
	}
	if err := analysis.SeedAnalysis.ApplyTransforms(ctx, sess.project, values); err != nil {
		return nil, err
	}
	return analysis.SeedAnalysis, nil
}

func (s *DeliveryService) prepare(ctx context.Context, path string, opts domain.AnalysisOptions) (*session, error) {
	cfg, err := s.configLoader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	project, err := s.opener.Open(path, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("opening project: %w", err)
	}

	sdm, err := s.newSdmContext(ctx, project, cfg)
	if err != nil {
		return nil, err
	}

	opts.Full = opts.Full || cfg.Full

	scorer := NewScoreService(s.pack.Scorers).
		WithWeightings(cfg.ScoreWeightings).
		WithLogger(s.logger)

	analyzer := NewAnalysisService(s.pack.Scanners).
		WithScanMode(cfg.EffectiveScanMode()).
		WithRecipeContributors(s.pack.RecipeContributors).
		WithInspections(s.pack.Inspections).
		WithScorer(NewScoreService(s.pack.AnalysisScorers).WithLogger(s.logger)).
		WithVersionControl(s.vcs).
		WithLogger(s.logger)

	interpreter := NewInterpretService(analyzer, s.pack.Interpreters).
		WithScorer(scorer).
		WithLogger(s.logger)

	return &session{
		project:     project,
		sdm:         sdm,
		opts:        opts,
		analyzer:    analyzer,
		interpreter: interpreter,
		scorer:      scorer,
	}, nil
}

// newSdmContext seeds a fresh preference store from config.
func (s *DeliveryService) newSdmContext(ctx context.Context, project domain.Project, cfg domain.ProjectConfig) (*domain.SdmContext, error) {
	sdm := &domain.SdmContext{WorkspaceID: project.Name()}
	if s.newPreferences == nil {
		return sdm, nil
	}

	prefs := s.newPreferences()
	for k, v := range cfg.Preferences {
		if err := prefs.Put(ctx, k, v); err != nil {
			return nil, fmt.Errorf("seeding preference %q: %w", k, err)
		}
	}
	if len(cfg.DisabledGoals) > 0 {
		if err := prefs.Put(ctx, domain.DisabledGoalsProperty, cfg.DisabledGoals); err != nil {
			return nil, fmt.Errorf("seeding disabled goals: %w", err)
		}
	}
	sdm.Preferences = prefs
	return sdm, nil
}

// currentPush describes HEAD. Failures leave the push empty.
func (s *DeliveryService) currentPush(ctx context.Context, project domain.Project) domain.Push {
	var push domain.Push
	if s.vcs == nil {
		return push
	}
	if status, err := s.vcs.Status(ctx, project.BaseDir()); err == nil {
		push.Branch = status.Branch
		push.SHA = status.SHA
	} else {
		s.logger.Debug("no push information", "project", project.Name(), "error", err)
		return push
	}
	if files, err := s.vcs.ChangedFiles(ctx, project.BaseDir()); err == nil {
		push.ChangedFiles = files
	}
	return push
}
