package builtin

import (
	"context"
	"fmt"
	"go/format"

	"github.com/abdidvp/pushkraft/internal/domain"
)

type gofmtInspection struct{}

// GofmtInspection reports Go files that gofmt would rewrite or that do not
// parse.
func GofmtInspection() domain.CodeInspection { return gofmtInspection{} }

func (gofmtInspection) Name() string { return "gofmt" }

func (i gofmtInspection) Inspect(ctx context.Context, p domain.Project) (domain.InspectionReport, error) {
	report := domain.InspectionReport{Inspection: i.Name()}

	files, err := filesMatching(ctx, p, hasSuffix(".go"))
	if err != nil {
		return report, err
	}
	for _, name := range files {
		src, err := p.ReadFile(name)
		if err != nil {
			return report, err
		}
		if _, err := format.Source(src); err != nil {
			report.Findings = append(report.Findings, fmt.Sprintf("%s: does not parse", name))
			continue
		}
		if needsFormat(src) {
			report.Findings = append(report.Findings, fmt.Sprintf("%s: not gofmt-formatted", name))
		}
	}
	report.Passed = len(report.Findings) == 0
	return report, nil
}

// gofmtFiles is the autofix transform rewriting files in gofmt style.
func gofmtFiles(files []string) domain.TransformFunc {
	return func(ctx context.Context, p domain.Project, _ domain.ParameterValues) error {
		for _, name := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := p.ReadFile(name)
			if err != nil {
				return err
			}
			out, err := format.Source(src)
			if err != nil {
				return fmt.Errorf("formatting %s: %w", name, err)
			}
			if err := p.WriteFile(name, out); err != nil {
				return err
			}
		}
		return nil
	}
}
