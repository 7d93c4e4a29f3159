package builtin

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// CIElement is contributed for projects with GitHub Actions workflows.
const CIElement = "github-actions"

const (
	PropWorkflows = "workflows"
	PropJobs      = "jobs"

	workflowDir = ".github/workflows/"
)

type workflowFile struct {
	Name string         `yaml:"name"`
	Jobs map[string]any `yaml:"jobs"`
}

// WorkflowScanner fingerprints every workflow file so an unchanged CI
// definition can be recognised across analyses.
func WorkflowScanner() domain.Scanner {
	return domain.NewScanner(CIElement, func(ctx context.Context, p domain.Project, _ *domain.SdmContext, _ *domain.Analysis, _ domain.AnalysisOptions) (*domain.TechnologyElement, error) {
		files, err := filesMatching(ctx, p, func(name string) bool {
			return strings.HasPrefix(name, workflowDir) && hasSuffix(".yml", ".yaml")(name)
		})
		if err != nil || len(files) == 0 {
			return nil, err
		}

		el := &domain.TechnologyElement{
			Name: CIElement,
			Tags: []string{"ci"},
		}
		var workflows, jobs []string
		for _, name := range files {
			data, err := p.ReadFile(name)
			if err != nil {
				return nil, err
			}
			var wf workflowFile
			if err := yaml.Unmarshal(data, &wf); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", name, err)
			}
			base := path.Base(name)
			workflows = append(workflows, base)
			for job := range wf.Jobs {
				jobs = appendUnique(jobs, job)
			}

			fp, err := fingerprint("workflow:"+base, "", data)
			if err != nil {
				return nil, fmt.Errorf("fingerprinting %s: %w", name, err)
			}
			fp.Abbrev = wf.Name
			el.Fingerprints = append(el.Fingerprints, fp)
		}
		sort.Strings(jobs)
		el.Properties = map[string]any{
			PropWorkflows: workflows,
			PropJobs:      jobs,
		}
		return el, nil
	})
}
