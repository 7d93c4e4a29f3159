package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommand_List(t *testing.T) {
	out, err := run(t, "seed", writeShop(t), "--list")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "module-path")
	assert.Contains(t, out.String(), "gomod.rename-module")
}

func TestSeedCommand_AppliesTransforms(t *testing.T) {
	dir := writeShop(t)

	out, err := run(t, "seed", dir, "--param", "module-path=example.com/bakery")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Applied 1 transform(s)")

	mod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	require.NoError(t, err)
	assert.Contains(t, string(mod), "module example.com/bakery")
}

func TestSeedCommand_MissingParameter(t *testing.T) {
	_, err := run(t, "seed", writeShop(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module-path")
}

func TestSeedCommand_RejectsValueNotMatchingPattern(t *testing.T) {
	dir := writeShop(t)
	_, err := run(t, "seed", dir, "--param", "module-path=Not A Path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parameter value")

	mod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	require.NoError(t, err)
	assert.NotContains(t, string(mod), "Not A Path")
}

func TestSeedCommand_NotUsable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o644))

	_, err := run(t, "seed", dir, "-p", "module-path=example.com/x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no contributor proposed seed parameters")
}
