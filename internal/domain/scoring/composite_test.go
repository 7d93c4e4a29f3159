package scoring_test

import (
	"testing"

	"github.com/abdidvp/pushkraft/internal/domain"
	"github.com/abdidvp/pushkraft/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func scores(values map[string]domain.FiveStar) domain.Scores {
	sc := domain.Scores{}
	for name, v := range values {
		sc.Put(domain.Score{Name: name, Score: v})
	}
	return sc
}

func TestWeightedCompositeScore_Empty(t *testing.T) {
	_, ok := scoring.WeightedCompositeScore(domain.Scores{}, nil)
	assert.False(t, ok)
}

func TestWeightedCompositeScore_Single(t *testing.T) {
	got, ok := scoring.WeightedCompositeScore(scores(map[string]domain.FiveStar{"thing": 5}), nil)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, got, 0.0001)
}

func TestWeightedCompositeScore_Unweighted(t *testing.T) {
	got, ok := scoring.WeightedCompositeScore(scores(map[string]domain.FiveStar{"dog": 5, "cat": 3}), nil)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, got, 0.0001)
}

func TestWeightedCompositeScore_Weighted(t *testing.T) {
	got, ok := scoring.WeightedCompositeScore(
		scores(map[string]domain.FiveStar{"dog": 5, "cat": 3}),
		scoring.Weightings{"dog": 2},
	)
	assert.True(t, ok)
	assert.InDelta(t, 13.0/3.0, got, 0.0001)
}

func TestWeightedCompositeScore_UnknownWeightingIgnored(t *testing.T) {
	got, ok := scoring.WeightedCompositeScore(
		scores(map[string]domain.FiveStar{"dog": 4}),
		scoring.Weightings{"horse": 3},
	)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, got, 0.0001)
}

func TestWeightedCompositeScore_ZeroTotalWeight(t *testing.T) {
	_, ok := scoring.WeightedCompositeScore(
		scores(map[string]domain.FiveStar{"dog": 4}),
		scoring.Weightings{"dog": 0},
	)
	assert.False(t, ok)
}
