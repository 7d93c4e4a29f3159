package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// SeedService composes transform recipes into a SeedAnalysis.
type SeedService struct {
	logger *slog.Logger
}

func NewSeedService() *SeedService {
	return &SeedService{logger: discardLogger()}
}

func (s *SeedService) WithLogger(logger *slog.Logger) *SeedService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// PerformSeedAnalysis runs contributors one after another in registration
// order. A parameter whose name an earlier recipe already claimed is
// dropped, as is a transform whose non-empty ID was already claimed. A
// contributor returning no recipe is skipped; a contributor error aborts.
func (s *SeedService) PerformSeedAnalysis(
	ctx context.Context,
	p domain.Project,
	analysis *domain.Analysis,
	contributors []domain.RecipeContributorRegistration,
	sdm *domain.SdmContext,
) (*domain.SeedAnalysis, error) {
	seed := &domain.SeedAnalysis{TransformRecipes: []domain.ContributedRecipe{}}

	for _, reg := range contributors {
		recipe, err := reg.Contributor.Analyze(ctx, p, analysis, sdm)
		if err != nil {
			return nil, fmt.Errorf("recipe contributor %q: %w", reg.Originator, err)
		}
		if recipe == nil {
			s.logger.Debug("recipe contributor not applicable", "contributor", reg.Originator)
			continue
		}

		accepted := *recipe
		accepted.Parameters = nil
		for _, param := range recipe.Parameters {
			if seed.HasParameter(param.Name) || hasParameter(accepted.Parameters, param.Name) {
				s.logger.Debug("dropping duplicate parameter", "contributor", reg.Originator, "parameter", param.Name)
				continue
			}
			accepted.Parameters = append(accepted.Parameters, param)
		}

		accepted.Transforms = nil
		for _, t := range recipe.Transforms {
			if seed.HasTransform(t.ID) {
				s.logger.Debug("dropping duplicate transform", "contributor", reg.Originator, "transform", t.ID)
				continue
			}
			accepted.Transforms = append(accepted.Transforms, t)
		}

		seed.TransformRecipes = append(seed.TransformRecipes, domain.ContributedRecipe{
			Originator:  reg.Originator,
			Optional:    reg.Optional,
			Description: reg.Description,
			Recipe:      accepted,
		})
	}

	return seed, nil
}

func hasParameter(params []domain.Parameter, name string) bool {
	for _, p := range params {
		if p.Name == name {
			return true
		}
	}
	return false
}
