package builtin

import (
	"bytes"
	"context"
	"go/format"
	"strings"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/parser"
	"github.com/abdidvp/pushkraft/internal/domain"
)

// GoSourceElement is the element describing a project's Go source tree.
const GoSourceElement = "go-source"

// Properties set on the go-source element.
const (
	PropFiles       = "files"
	PropTestFiles   = "testFiles"
	PropTests       = "tests"
	PropCommands    = "commands"
	PropUnformatted = "unformatted"
	PropUnparsable  = "unparsable"
)

// GoSourceScanner walks every .go file, collecting referenced environment
// variables, test counts and files gofmt would change. Files that fail to
// parse are listed rather than failing the scan.
func GoSourceScanner() domain.Scanner {
	gp := parser.New()
	return domain.NewScanner(GoSourceElement, func(ctx context.Context, p domain.Project, _ *domain.SdmContext, _ *domain.Analysis, _ domain.AnalysisOptions) (*domain.TechnologyElement, error) {
		files, err := filesMatching(ctx, p, hasSuffix(".go"))
		if err != nil || len(files) == 0 {
			return nil, err
		}

		var (
			testFiles, tests, commands int
			env                        []string
			unformatted, unparsable    []string
			seen                       = make(map[string]bool)
		)
		for _, name := range files {
			src, err := p.ReadFile(name)
			if err != nil {
				return nil, err
			}
			facts, err := gp.Parse(name, src)
			if err != nil {
				unparsable = append(unparsable, name)
				continue
			}
			if strings.HasSuffix(name, "_test.go") {
				testFiles++
			}
			tests += len(facts.Tests)
			if facts.HasMain {
				commands++
			}
			for _, v := range facts.EnvVars {
				if !seen[v] {
					seen[v] = true
					env = append(env, v)
				}
			}
			if needsFormat(src) {
				unformatted = append(unformatted, name)
			}
		}

		return &domain.TechnologyElement{
			Name:                           GoSourceElement,
			Tags:                           []string{"go"},
			ReferencedEnvironmentVariables: env,
			Properties: map[string]any{
				PropFiles:       len(files),
				PropTestFiles:   testFiles,
				PropTests:       tests,
				PropCommands:    commands,
				PropUnformatted: unformatted,
				PropUnparsable:  unparsable,
			},
		}, nil
	})
}

func needsFormat(src []byte) bool {
	out, err := format.Source(src)
	return err == nil && !bytes.Equal(src, out)
}
