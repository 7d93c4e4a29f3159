package builtin

import (
	"context"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/preferences"
	"github.com/abdidvp/pushkraft/internal/domain"
)

// PreferencesScanner copies the disabled-goals preference into the analysis
// so later stages can read it without a preference store.
func PreferencesScanner() domain.Scanner {
	return domain.NewScanner(domain.PreferencesElementName, func(ctx context.Context, _ domain.Project, sdm *domain.SdmContext, _ *domain.Analysis, _ domain.AnalysisOptions) (*domain.TechnologyElement, error) {
		if sdm == nil {
			return nil, nil
		}
		disabled, err := preferences.Strings(ctx, sdm.Preferences, domain.DisabledGoalsProperty)
		if err != nil || len(disabled) == 0 {
			return nil, err
		}
		return &domain.TechnologyElement{
			Name:       domain.PreferencesElementName,
			Properties: map[string]any{domain.DisabledGoalsProperty: disabled},
		}, nil
	})
}
