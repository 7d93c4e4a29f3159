package builtin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/builtin"
	"github.com/abdidvp/pushkraft/internal/domain"
)

const shopMain = `package main

import "example.com/shop/internal/store"

func main() { store.Open() }
`

func TestGoModRecipe_OffersModulePath(t *testing.T) {
	p := memProject(t, map[string]string{"go.mod": goMod})

	recipe, err := builtin.GoModRecipe().Analyze(context.Background(), p, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, recipe)

	require.Len(t, recipe.Parameters, 1)
	assert.Equal(t, builtin.ModulePathParameter, recipe.Parameters[0].Name)
	assert.True(t, recipe.Parameters[0].Required)
	require.Len(t, recipe.Transforms, 1)
	assert.Equal(t, builtin.RenameModuleTransform, recipe.Transforms[0].ID)
	assert.Empty(t, recipe.Warnings)
}

func TestGoModRecipe_WarnsAboutReplaces(t *testing.T) {
	p := memProject(t, map[string]string{"go.mod": goMod + "\nreplace example.com/lib => ../lib\n"})

	recipe, err := builtin.GoModRecipe().Analyze(context.Background(), p, nil, nil)
	require.NoError(t, err)
	require.Len(t, recipe.Warnings, 1)
	assert.Contains(t, recipe.Warnings[0], "replace")
}

func TestGoModRecipe_NotApplicable(t *testing.T) {
	recipe, err := builtin.GoModRecipe().Analyze(context.Background(), memProject(t, nil), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, recipe)
}

func TestRenameModule_RewritesGoModAndImports(t *testing.T) {
	p := memProject(t, map[string]string{
		"go.mod":  goMod,
		"main.go": shopMain,
	})
	recipe, err := builtin.GoModRecipe().Analyze(context.Background(), p, nil, nil)
	require.NoError(t, err)

	apply := recipe.Transforms[0].Apply
	require.NoError(t, apply(context.Background(), p, domain.ParameterValues{
		builtin.ModulePathParameter: "example.com/bakery",
	}))

	mod, err := p.ReadFile("go.mod")
	require.NoError(t, err)
	assert.Contains(t, string(mod), "module example.com/bakery")
	assert.Contains(t, string(mod), "github.com/spf13/cobra v1.10.2")

	src, err := p.ReadFile("main.go")
	require.NoError(t, err)
	assert.Contains(t, string(src), `"example.com/bakery/internal/store"`)
}

func TestRenameModule_RejectsInvalidPath(t *testing.T) {
	p := memProject(t, map[string]string{"go.mod": goMod})
	recipe, err := builtin.GoModRecipe().Analyze(context.Background(), p, nil, nil)
	require.NoError(t, err)

	err = recipe.Transforms[0].Apply(context.Background(), p, domain.ParameterValues{
		builtin.ModulePathParameter: "not a path",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), builtin.ModulePathParameter)
}
