package builtin

import (
	"context"
	"fmt"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// TestsScorer rates the share of Go files that are test files.
func TestsScorer() domain.Scorer {
	return domain.ScoreFunc(func(_ context.Context, subject domain.ScoringSubject, _ *domain.SdmContext) (domain.Score, error) {
		score := domain.Score{Name: "tests", Category: "quality"}
		if subject.Analysis == nil {
			score.Reason = "no analysis"
			return score, nil
		}
		src, ok := subject.Analysis.Element(GoSourceElement)
		if !ok {
			score.Reason = "no Go sources"
			return score, nil
		}
		files, _ := src.IntProperty(PropFiles)
		testFiles, _ := src.IntProperty(PropTestFiles)
		if files == 0 {
			score.Reason = "no Go sources"
			return score, nil
		}

		// One test file for every two non-test files earns five stars.
		stars := domain.FiveStar(testFiles * 15 / files)
		if stars > domain.MaxFiveStar {
			stars = domain.MaxFiveStar
		}
		score.Score = stars
		score.Reason = fmt.Sprintf("%d of %d Go files are tests", testFiles, files)
		return score, nil
	})
}

// EnvironmentScorer rewards projects that depend on few environment
// variables.
func EnvironmentScorer() domain.Scorer {
	return domain.ScoreFunc(func(_ context.Context, subject domain.ScoringSubject, _ *domain.SdmContext) (domain.Score, error) {
		score := domain.Score{Name: "environment", Category: "configuration"}
		if subject.Analysis == nil {
			score.Reason = "no analysis"
			return score, nil
		}
		n := len(subject.Analysis.ReferencedEnvironmentVariables)
		switch {
		case n == 0:
			score.Score = 5
		case n <= 3:
			score.Score = 4
		case n <= 6:
			score.Score = 3
		case n <= 10:
			score.Score = 2
		default:
			score.Score = 1
		}
		score.Reason = fmt.Sprintf("%d environment variable(s) referenced", n)
		return score, nil
	})
}

// DeliveryScorer rates how much of the delivery pipeline an interpretation
// covers: one star per filled build, test, container-build, release and
// deploy slot.
func DeliveryScorer() domain.Scorer {
	slots := []domain.Slot{domain.SlotBuild, domain.SlotTest, domain.SlotContainerBuild, domain.SlotRelease, domain.SlotDeploy}
	return domain.ScoreFunc(func(_ context.Context, subject domain.ScoringSubject, _ *domain.SdmContext) (domain.Score, error) {
		score := domain.Score{Name: "delivery", Category: "delivery"}
		if subject.Interpretation == nil {
			score.Reason = "not interpreted"
			return score, nil
		}
		for _, s := range slots {
			if !subject.Interpretation.Goals(s).Empty() {
				score.Score++
			}
		}
		score.Reason = fmt.Sprintf("%d of %d delivery phases planned", score.Score, len(slots))
		return score, nil
	})
}
