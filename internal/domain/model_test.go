package domain_test

import (
	"testing"

	"github.com/abdidvp/pushkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysis_Merge_EnvironmentVariablesKeepFirstSeenOrder(t *testing.T) {
	a := domain.NewAnalysis("a", "p")
	a.Merge(&domain.TechnologyElement{Name: "one", ReferencedEnvironmentVariables: []string{"frogs", "dogs"}})
	a.Merge(&domain.TechnologyElement{Name: "two", ReferencedEnvironmentVariables: []string{"dogs"}})

	assert.Equal(t, []string{"frogs", "dogs"}, a.ReferencedEnvironmentVariables)
}

func TestAnalysis_Merge_LastElementWins(t *testing.T) {
	a := domain.NewAnalysis("a", "p")
	a.Merge(&domain.TechnologyElement{Name: "go", Tags: []string{"first"}})
	a.Merge(&domain.TechnologyElement{Name: "go", Tags: []string{"second"}})

	require.Len(t, a.Elements, 1)
	assert.Equal(t, []string{"second"}, a.Elements["go"].Tags)
}

func TestAnalysis_Merge_ServicesOverwriteByKey(t *testing.T) {
	a := domain.NewAnalysis("a", "p")
	a.Merge(&domain.TechnologyElement{Name: "x", Services: map[string]domain.Service{
		"db":    {Type: "mysql"},
		"cache": {Type: "redis"},
	}})
	a.Merge(&domain.TechnologyElement{Name: "y", Services: map[string]domain.Service{
		"db": {Type: "postgres"},
	}})

	assert.Equal(t, "postgres", a.Services["db"].Type)
	assert.Equal(t, "redis", a.Services["cache"].Type)
}

func TestAnalysis_Merge_DependenciesConcatenateAndFingerprintsFlatten(t *testing.T) {
	a := domain.NewAnalysis("a", "p")
	a.Merge(&domain.TechnologyElement{
		Name:         "x",
		Dependencies: []domain.Dependency{{Artifact: "a"}},
		Fingerprints: []domain.Fingerprint{{Name: "deps", Digest: "1"}},
	})
	a.Merge(&domain.TechnologyElement{
		Name:         "y",
		Dependencies: []domain.Dependency{{Artifact: "a"}, {Artifact: "b"}},
		Fingerprints: []domain.Fingerprint{{Name: "deps", Digest: "2"}, {Name: "ci", Digest: "3"}},
	})

	assert.Len(t, a.Dependencies, 3)
	assert.Len(t, a.Fingerprints, 2)
	assert.Equal(t, "2", a.Fingerprints["deps"].Digest)
}

func TestAnalysis_Merge_Nil(t *testing.T) {
	a := domain.NewAnalysis("a", "p")
	a.Merge(nil)
	assert.Empty(t, a.Elements)
}

func TestAnalysis_SnapshotIsIndependent(t *testing.T) {
	a := domain.NewAnalysis("a", "p")
	a.Merge(&domain.TechnologyElement{Name: "one", ReferencedEnvironmentVariables: []string{"A"}})

	snap := a.Snapshot()
	a.Merge(&domain.TechnologyElement{Name: "two", ReferencedEnvironmentVariables: []string{"B"}})

	assert.False(t, snap.HasElement("two"))
	assert.Equal(t, []string{"A"}, snap.ReferencedEnvironmentVariables)
	assert.True(t, a.HasElement("two"))
}

func TestAnalysis_DisabledGoals(t *testing.T) {
	a := domain.NewAnalysis("a", "p")
	assert.Nil(t, a.DisabledGoals())

	a.Merge(&domain.TechnologyElement{
		Name:       domain.PreferencesElementName,
		Properties: map[string]any{domain.DisabledGoalsProperty: []any{"autofix", 3}},
	})
	assert.Equal(t, []string{"autofix"}, a.DisabledGoals())
}

func TestTechnologyElement_Properties(t *testing.T) {
	e := domain.TechnologyElement{
		Tags:       []string{"go"},
		Properties: map[string]any{"n": 3, "f": float64(7), "s": "x"},
	}
	assert.True(t, e.HasTag("go"))
	assert.False(t, e.HasTag("java"))

	n, ok := e.IntProperty("n")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	f, ok := e.IntProperty("f")
	assert.True(t, ok)
	assert.Equal(t, 7, f)
	_, ok = e.IntProperty("s")
	assert.False(t, ok)
	assert.Nil(t, e.StringsProperty("s"))
}
