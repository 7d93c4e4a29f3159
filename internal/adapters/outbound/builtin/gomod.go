package builtin

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/abdidvp/pushkraft/internal/domain"
)

const (
	// GoModElement is the element contributed for projects with a go.mod.
	GoModElement = "gomod"

	// ModulePathParameter is the seed parameter naming the new module path.
	ModulePathParameter = "module-path"

	// RenameModuleTransform rewrites go.mod and import paths to the new
	// module path.
	RenameModuleTransform = "gomod.rename-module"

	goModFile = "go.mod"
)

// GoModScanner reads go.mod into module, Go version and dependency facts.
func GoModScanner() domain.Scanner {
	return domain.NewScanner(GoModElement, scanGoMod)
}

func scanGoMod(_ context.Context, p domain.Project, _ *domain.SdmContext, _ *domain.Analysis, _ domain.AnalysisOptions) (*domain.TechnologyElement, error) {
	f, ok, err := readGoMod(p)
	if err != nil || !ok {
		return nil, err
	}

	el := &domain.TechnologyElement{
		Name:       GoModElement,
		Tags:       []string{"go"},
		Properties: map[string]any{"module": modulePath(f)},
	}
	goVersion := ""
	if f.Go != nil {
		goVersion = f.Go.Version
		el.Properties["goVersion"] = goVersion
	}

	lines := make([]string, 0, len(f.Require))
	for _, r := range f.Require {
		el.Dependencies = append(el.Dependencies, domain.Dependency{
			Group:    path.Dir(r.Mod.Path),
			Artifact: r.Mod.Path,
			Version:  r.Mod.Version,
			Indirect: r.Indirect,
		})
		lines = append(lines, r.Mod.Path+"@"+r.Mod.Version)
	}
	sort.Strings(lines)
	data := strings.Join(lines, "\n")

	fp, err := fingerprint("go-dependencies", goVersion, []byte(data))
	if err != nil {
		return nil, fmt.Errorf("fingerprinting go.mod: %w", err)
	}
	fp.Abbrev = "go-deps"
	fp.Data = data
	el.Fingerprints = []domain.Fingerprint{fp}

	return el, nil
}

// GoModRecipe offers the project as a seed whose module path can be
// replaced.
func GoModRecipe() domain.TransformRecipeContributor {
	return domain.RecipeFunc(goModRecipe)
}

func goModRecipe(_ context.Context, p domain.Project, _ *domain.Analysis, _ *domain.SdmContext) (*domain.TransformRecipe, error) {
	f, ok, err := readGoMod(p)
	if err != nil || !ok {
		return nil, err
	}
	current := modulePath(f)
	if current == "" {
		return nil, nil
	}

	recipe := &domain.TransformRecipe{
		Parameters: []domain.Parameter{{
			Name:        ModulePathParameter,
			Description: "module path of the new project",
			Required:    true,
			Pattern:     `^[a-z0-9.\-]+(/[A-Za-z0-9._~\-]+)*$`,
		}},
		Transforms: []domain.Transform{{
			ID:          RenameModuleTransform,
			Description: fmt.Sprintf("rename module %s and rewrite its imports", current),
			Apply:       renameModule(current),
		}},
	}
	if n := len(f.Replace); n > 0 {
		recipe.Warnings = append(recipe.Warnings,
			fmt.Sprintf("go.mod has %d replace directive(s); check them after seeding", n))
	}
	return recipe, nil
}

func renameModule(from string) domain.TransformFunc {
	return func(ctx context.Context, p domain.Project, values domain.ParameterValues) error {
		to := values[ModulePathParameter]
		if to == "" || to == from {
			return nil
		}
		if err := module.CheckPath(to); err != nil {
			return fmt.Errorf("invalid %s: %w", ModulePathParameter, err)
		}

		f, ok, err := readGoMod(p)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s disappeared", goModFile)
		}
		if err := f.AddModuleStmt(to); err != nil {
			return fmt.Errorf("setting module path: %w", err)
		}
		data, err := f.Format()
		if err != nil {
			return fmt.Errorf("formatting %s: %w", goModFile, err)
		}
		if err := p.WriteFile(goModFile, data); err != nil {
			return err
		}

		sources, err := filesMatching(ctx, p, hasSuffix(".go"))
		if err != nil {
			return err
		}
		for _, name := range sources {
			src, err := p.ReadFile(name)
			if err != nil {
				return err
			}
			out := rewriteImports(src, from, to)
			if bytes.Equal(src, out) {
				continue
			}
			if err := p.WriteFile(name, out); err != nil {
				return err
			}
		}
		return nil
	}
}

func rewriteImports(src []byte, from, to string) []byte {
	out := bytes.ReplaceAll(src, []byte(`"`+from+`/`), []byte(`"`+to+`/`))
	return bytes.ReplaceAll(out, []byte(`"`+from+`"`), []byte(`"`+to+`"`))
}

func readGoMod(p domain.Project) (*modfile.File, bool, error) {
	ok, err := p.HasFile(goModFile)
	if err != nil || !ok {
		return nil, false, err
	}
	data, err := p.ReadFile(goModFile)
	if err != nil {
		return nil, false, err
	}
	f, err := modfile.Parse(goModFile, data, nil)
	if err != nil {
		return nil, false, fmt.Errorf("parsing %s: %w", goModFile, err)
	}
	return f, true, nil
}

func modulePath(f *modfile.File) string {
	if f.Module == nil {
		return ""
	}
	return f.Module.Mod.Path
}
