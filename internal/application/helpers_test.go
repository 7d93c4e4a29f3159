package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/project"
	"github.com/abdidvp/pushkraft/internal/domain"
)

func memProject(t *testing.T) domain.Project {
	t.Helper()
	p, err := project.InMemory("toy", map[string]string{"README.md": "toy"})
	require.NoError(t, err)
	return p
}

func elementScanner(name string, el *domain.TechnologyElement) domain.Scanner {
	return domain.NewScanner(name, func(context.Context, domain.Project, *domain.SdmContext, *domain.Analysis, domain.AnalysisOptions) (*domain.TechnologyElement, error) {
		return el, nil
	})
}

func recipeContributor(originator string, optional bool, recipe *domain.TransformRecipe) domain.RecipeContributorRegistration {
	return domain.RecipeContributorRegistration{
		Originator: originator,
		Optional:   optional,
		Contributor: domain.RecipeFunc(func(context.Context, domain.Project, *domain.Analysis, *domain.SdmContext) (*domain.TransformRecipe, error) {
			return recipe, nil
		}),
	}
}

func fixedScorer(name string, stars domain.FiveStar) domain.Scorer {
	return domain.ScoreFunc(func(context.Context, domain.ScoringSubject, *domain.SdmContext) (domain.Score, error) {
		return domain.Score{Name: name, Score: stars}, nil
	})
}

// toyInterpreter claims the deploy slot whenever the analysis has an
// element named "toy".
func toyInterpreter() domain.Interpreter {
	return domain.NewInterpreter("toy", func(_ context.Context, interp *domain.Interpretation, _ *domain.SdmContext) (bool, error) {
		if !interp.Analysis().HasElement("toy") {
			return false, nil
		}
		interp.Claim(domain.SlotDeploy, domain.NewGoals("toy-deploy", domain.NewGoal("deployToy")))
		return true, nil
	})
}
