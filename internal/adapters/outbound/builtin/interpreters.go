package builtin

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// Goal unique names claimed by the built-in interpreters.
const (
	GoVetGoal       = "goVet"
	GoBuildGoal     = "goBuild"
	GoTestGoal      = "goTest"
	DockerBuildGoal = "dockerBuild"
	DockerPushGoal  = "dockerPush"
)

// GoInterpreter claims the check, build and test slots for Go modules. The
// test slot is only claimed when the source tree has tests.
func GoInterpreter() domain.Interpreter {
	return domain.NewInterpreter("go", func(_ context.Context, interp *domain.Interpretation, _ *domain.SdmContext) (bool, error) {
		a := interp.Analysis()
		if a == nil || !a.HasElement(GoModElement) {
			return false, nil
		}

		claimed := interp.Claim(domain.SlotCheck, domain.NewGoals("go-checks", domain.NewGoal(GoVetGoal)))
		claimed = interp.Claim(domain.SlotBuild, domain.NewGoals("go-build", domain.NewGoal(GoBuildGoal))) || claimed
		if src, ok := a.Element(GoSourceElement); ok {
			if n, _ := src.IntProperty(PropTests); n > 0 {
				claimed = interp.Claim(domain.SlotTest, domain.NewGoals("go-test", domain.NewGoal(GoTestGoal))) || claimed
			}
		}

		interp.MaterialChangePushTests = append(interp.MaterialChangePushTests, domain.PushTest{
			Name: "go-files",
			Test: changedAny(func(name string) bool {
				base := path.Base(name)
				return strings.HasSuffix(name, ".go") || base == "go.mod" || base == "go.sum"
			}),
		})
		return claimed, nil
	})
}

// DockerInterpreter claims the container-build slot when the project has a
// Dockerfile, and the release slot when CI workflows exist to publish it.
func DockerInterpreter() domain.Interpreter {
	return domain.NewInterpreter("docker", func(_ context.Context, interp *domain.Interpretation, _ *domain.SdmContext) (bool, error) {
		a := interp.Analysis()
		if a == nil || !a.HasElement(DockerElement) {
			return false, nil
		}

		claimed := interp.Claim(domain.SlotContainerBuild, domain.NewGoals("docker-build", domain.NewGoal(DockerBuildGoal)))
		if a.HasElement(CIElement) {
			claimed = interp.Claim(domain.SlotRelease, domain.NewGoals("docker-release", domain.NewGoal(DockerPushGoal))) || claimed
		}

		interp.MaterialChangePushTests = append(interp.MaterialChangePushTests, domain.PushTest{
			Name: "container-files",
			Test: changedAny(func(name string) bool {
				switch path.Base(name) {
				case "Dockerfile", "Containerfile", ".dockerignore":
					return true
				}
				return false
			}),
		})
		return claimed, nil
	})
}

// GofmtInterpreter registers the gofmt inspection for Go sources and an
// autofix for files gofmt would change.
func GofmtInterpreter() domain.Interpreter {
	return domain.NewInterpreter("gofmt", func(_ context.Context, interp *domain.Interpretation, _ *domain.SdmContext) (bool, error) {
		a := interp.Analysis()
		if a == nil {
			return false, nil
		}
		src, ok := a.Element(GoSourceElement)
		if !ok {
			return false, nil
		}

		interp.Inspections = append(interp.Inspections, GofmtInspection())
		if files := src.StringsProperty(PropUnformatted); len(files) > 0 {
			interp.Autofixes = append(interp.Autofixes, domain.Autofix{
				Name:      "gofmt",
				Transform: gofmtFiles(files),
			})
		}
		return true, nil
	})
}

// NoticesInterpreter turns analysis facts people should know about into
// messages: goals disabled by preference and Go files that do not parse.
func NoticesInterpreter() domain.Interpreter {
	const originator = "notices"
	return domain.NewInterpreter(originator, func(_ context.Context, interp *domain.Interpretation, _ *domain.SdmContext) (bool, error) {
		a := interp.Analysis()
		if a == nil {
			return false, nil
		}

		before := len(interp.Messages)
		if disabled := a.DisabledGoals(); len(disabled) > 0 {
			interp.AddMessage(domain.LevelInfo, originator,
				fmt.Sprintf("goals disabled by preference: %s", strings.Join(disabled, ", ")))
		}
		if src, ok := a.Element(GoSourceElement); ok {
			if bad := src.StringsProperty(PropUnparsable); len(bad) > 0 {
				interp.AddMessage(domain.LevelWarning, originator,
					fmt.Sprintf("%d Go file(s) do not parse: %s", len(bad), strings.Join(bad, ", ")))
			}
		}
		return len(interp.Messages) > before, nil
	})
}

// changedAny builds a push test that passes when any changed file matches.
// A push with no known changed files is treated as material.
func changedAny(match func(name string) bool) func(context.Context, domain.Push) (bool, error) {
	return func(_ context.Context, p domain.Push) (bool, error) {
		if len(p.ChangedFiles) == 0 {
			return true, nil
		}
		for _, f := range p.ChangedFiles {
			if match(f) {
				return true, nil
			}
		}
		return false, nil
	}
}
