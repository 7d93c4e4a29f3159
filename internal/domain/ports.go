package domain

import "context"

// Project gives contributors access to repository content. Paths are
// slash-separated and relative to the project root.
type Project interface {
	Name() string
	BaseDir() string
	HasFile(path string) (bool, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	// Walk visits every regular file, skipping vendored and generated trees.
	Walk(fn func(path string) error) error
}

// PreferenceStore is a key-value store scoped by arbitrary string keys.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (any, bool, error)
	Put(ctx context.Context, key string, value any) error
}

// SdmContext carries the invocation's workspace identity and preferences.
type SdmContext struct {
	WorkspaceID string
	Preferences PreferenceStore
}

// Scanner inspects a project and contributes at most one element. Returning
// (nil, nil) means "not applicable"; an error aborts the whole analysis.
type Scanner interface {
	Name() string
	Scan(ctx context.Context, p Project, sdm *SdmContext, soFar *Analysis, opts AnalysisOptions) (*TechnologyElement, error)
}

// ScanFunc is the function form of Scanner.Scan.
type ScanFunc func(ctx context.Context, p Project, sdm *SdmContext, soFar *Analysis, opts AnalysisOptions) (*TechnologyElement, error)

type namedScanner struct {
	name string
	fn   ScanFunc
}

// NewScanner adapts a function into a Scanner.
func NewScanner(name string, fn ScanFunc) Scanner { return namedScanner{name: name, fn: fn} }

func (s namedScanner) Name() string { return s.name }

func (s namedScanner) Scan(ctx context.Context, p Project, sdm *SdmContext, soFar *Analysis, opts AnalysisOptions) (*TechnologyElement, error) {
	return s.fn(ctx, p, sdm, soFar, opts)
}

// TransformRecipeContributor proposes seed parameters and transforms.
// Returning (nil, nil) means "not applicable".
type TransformRecipeContributor interface {
	Analyze(ctx context.Context, p Project, analysis *Analysis, sdm *SdmContext) (*TransformRecipe, error)
}

// RecipeFunc is the function form of TransformRecipeContributor.
type RecipeFunc func(ctx context.Context, p Project, analysis *Analysis, sdm *SdmContext) (*TransformRecipe, error)

func (f RecipeFunc) Analyze(ctx context.Context, p Project, analysis *Analysis, sdm *SdmContext) (*TransformRecipe, error) {
	return f(ctx, p, analysis, sdm)
}

// RecipeContributorRegistration carries a contributor with the provenance
// stamped onto the recipes it produces.
type RecipeContributorRegistration struct {
	Originator  string
	Optional    bool
	Description string
	Contributor TransformRecipeContributor
}

// Interpreter enriches a shared Interpretation. The returned bool records
// whether it contributed; it may mutate the Interpretation either way.
type Interpreter interface {
	Name() string
	Enrich(ctx context.Context, interp *Interpretation, sdm *SdmContext) (bool, error)
}

// EnrichFunc is the function form of Interpreter.Enrich.
type EnrichFunc func(ctx context.Context, interp *Interpretation, sdm *SdmContext) (bool, error)

type namedInterpreter struct {
	name string
	fn   EnrichFunc
}

// NewInterpreter adapts a function into an Interpreter.
func NewInterpreter(name string, fn EnrichFunc) Interpreter {
	return namedInterpreter{name: name, fn: fn}
}

func (i namedInterpreter) Name() string { return i.name }

func (i namedInterpreter) Enrich(ctx context.Context, interp *Interpretation, sdm *SdmContext) (bool, error) {
	return i.fn(ctx, interp, sdm)
}

// ScoringSubject is what a scorer rates: an Analysis, and during push
// interpretation also the Interpretation built from it.
type ScoringSubject struct {
	Analysis       *Analysis
	Interpretation *Interpretation
}

// Scorer produces exactly one named Score.
type Scorer interface {
	Score(ctx context.Context, subject ScoringSubject, sdm *SdmContext) (Score, error)
}

// ScoreFunc is the function form of Scorer.
type ScoreFunc func(ctx context.Context, subject ScoringSubject, sdm *SdmContext) (Score, error)

func (f ScoreFunc) Score(ctx context.Context, subject ScoringSubject, sdm *SdmContext) (Score, error) {
	return f(ctx, subject, sdm)
}

// CodeInspection examines project code and reports findings.
type CodeInspection interface {
	Name() string
	Inspect(ctx context.Context, p Project) (InspectionReport, error)
}

// VersionControl reads repository state.
type VersionControl interface {
	Status(ctx context.Context, dir string) (*VersionControlStatus, error)
	ChangedFiles(ctx context.Context, dir string) ([]string, error)
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}
