package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/project"
	"github.com/abdidvp/pushkraft/internal/domain"
)

func walk(t *testing.T, p domain.Project) []string {
	t.Helper()
	var names []string
	require.NoError(t, p.Walk(func(name string) error {
		names = append(names, name)
		return nil
	}))
	return names
}

func TestOpen_WalksInLexicalOrderSkippingVendoredDirs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"main.go",
		"internal/b.go",
		"internal/a.go",
		"vendor/x/x.go",
		"node_modules/y/y.js",
		"tmp/scratch.go",
		".git/HEAD",
	} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	p, err := project.New().Open(dir, "tmp/")
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), p.Name())
	assert.Equal(t, dir, p.BaseDir())
	assert.Equal(t, []string{"internal/a.go", "internal/b.go", "main.go"}, walk(t, p))
}

func TestOpen_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := project.New().Open(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestOpen_Missing(t *testing.T) {
	_, err := project.New().Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestFSProject_ReadWrite(t *testing.T) {
	dir := t.TempDir()
	p, err := project.New().Open(dir)
	require.NoError(t, err)

	ok, err := p.HasFile("docs/README.md")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.WriteFile("docs/README.md", []byte("hello")))

	ok, err = p.HasFile("docs/README.md")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = p.HasFile("docs")
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")

	data, err := p.ReadFile("docs/README.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	onDisk, err := os.ReadFile(filepath.Join(dir, "docs", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(onDisk))
}

func TestInMemory(t *testing.T) {
	p, err := project.InMemory("toy", map[string]string{
		"go.mod":          "module toy",
		"cmd/toy/main.go": "package main",
		"vendor/v.go":     "package v",
	})
	require.NoError(t, err)

	assert.Equal(t, "toy", p.Name())
	assert.Empty(t, p.BaseDir())
	assert.Equal(t, []string{"cmd/toy/main.go", "go.mod"}, walk(t, p))
}
