package builtin

import (
	"context"
	"strings"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// filesMatching lists walked files accepted by match, stopping early when
// ctx is cancelled.
func filesMatching(ctx context.Context, p domain.Project, match func(name string) bool) ([]string, error) {
	var out []string
	err := p.Walk(func(name string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if match(name) {
			out = append(out, name)
		}
		return nil
	})
	return out, err
}

func hasSuffix(suffixes ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(name, s) {
				return true
			}
		}
		return false
	}
}

// firstFile returns the first candidate present in the project.
func firstFile(p domain.Project, candidates ...string) (string, bool, error) {
	for _, c := range candidates {
		ok, err := p.HasFile(c)
		if err != nil {
			return "", false, err
		}
		if ok {
			return c, true, nil
		}
	}
	return "", false, nil
}
