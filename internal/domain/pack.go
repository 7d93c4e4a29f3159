package domain

// Pack bundles every contributor registration a delivery run uses.
type Pack struct {
	Scanners           []Registration[Scanner]
	RecipeContributors []RecipeContributorRegistration
	Interpreters       []Registration[Interpreter]
	Scorers            []Registration[Scorer]
	AnalysisScorers    []Registration[Scorer]
	Inspections        []Registration[CodeInspection]
}

// ProjectOpener opens the project rooted at path.
type ProjectOpener interface {
	Open(path string, excludePaths ...string) (Project, error)
}

// PreferenceStoreFactory creates a fresh preference store per invocation.
type PreferenceStoreFactory func() PreferenceStore
