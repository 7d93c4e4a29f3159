// Package builtin holds the collaborators pushkraft ships with: scanners for
// Go modules, containers and CI, the interpreters that turn them into goals,
// scorers, a gofmt inspection and the Go module seed recipe.
package builtin

import "github.com/abdidvp/pushkraft/internal/domain"

// Pack returns the built-in registrations in the order they run.
func Pack() domain.Pack {
	return domain.Pack{
		Scanners: []domain.Registration[domain.Scanner]{
			domain.Always(GoModScanner()),
			domain.Always(GoSourceScanner()),
			domain.Always(DockerfileScanner()),
			domain.Always(ComposeScanner()),
			domain.Always(WorkflowScanner()),
			domain.Always(PreferencesScanner()),
		},
		RecipeContributors: []domain.RecipeContributorRegistration{{
			Originator:  GoModElement,
			Optional:    true,
			Description: "Go module that can be copied under a new module path",
			Contributor: GoModRecipe(),
		}},
		Interpreters: []domain.Registration[domain.Interpreter]{
			domain.Always(GoInterpreter()),
			domain.Always(DockerInterpreter()),
			domain.Always(GofmtInterpreter()),
			domain.Always(NoticesInterpreter()),
		},
		Scorers: []domain.Registration[domain.Scorer]{
			domain.Always(TestsScorer()),
			domain.Always(EnvironmentScorer()),
			domain.Always(DeliveryScorer()),
		},
		AnalysisScorers: []domain.Registration[domain.Scorer]{
			domain.Always(TestsScorer()),
			domain.Always(EnvironmentScorer()),
		},
		Inspections: []domain.Registration[domain.CodeInspection]{
			domain.When(GofmtInspection(), domain.FullOnly),
		},
	}
}
