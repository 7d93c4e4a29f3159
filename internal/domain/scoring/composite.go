package scoring

import "github.com/abdidvp/pushkraft/internal/domain"

// Weightings maps score names to weights. Weights are expected in 1..3 but
// are not validated; a missing name weighs 1.
type Weightings map[string]int

func (w Weightings) weight(name string) float64 {
	if v, ok := w[name]; ok {
		return float64(v)
	}
	return 1
}

// WeightedCompositeScore returns Σ(score×weight)/Σweight over all scores.
// The second result is false when there are no scores, since no composite
// is defined over an empty set.
func WeightedCompositeScore(scores domain.Scores, weightings Weightings) (float64, bool) {
	if len(scores) == 0 {
		return 0, false
	}
	var totalWeighted, totalWeight float64
	for name, s := range scores {
		w := weightings.weight(name)
		totalWeighted += float64(s.Score) * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0, false
	}
	return totalWeighted / totalWeight, true
}
