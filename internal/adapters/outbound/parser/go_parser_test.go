package parser_test

import (
	"testing"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainSrc = `package main

import (
	"fmt"
	"os"
)

func main() {
	port := os.Getenv("PORT")
	if _, ok := os.LookupEnv("DEBUG"); ok {
		fmt.Println(port)
	}
	_ = os.Getenv("PORT")
	_ = os.Getenv(port)
}
`

func TestGoParser_FindsEnvVars(t *testing.T) {
	facts, err := parser.New().Parse("main.go", []byte(mainSrc))
	require.NoError(t, err)

	assert.Equal(t, []string{"PORT", "DEBUG"}, facts.EnvVars)
	assert.True(t, facts.HasMain)
	assert.Equal(t, "main", facts.Package)
}

func TestGoParser_FindsImports(t *testing.T) {
	facts, err := parser.New().Parse("main.go", []byte(mainSrc))
	require.NoError(t, err)

	assert.Equal(t, []string{"fmt", "os"}, facts.Imports)
}

func TestGoParser_RespectsImportAlias(t *testing.T) {
	src := `package cfg

import sys "os"

func Load() string { return sys.Getenv("HOME") }
`
	facts, err := parser.New().Parse("cfg.go", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"HOME"}, facts.EnvVars)
	assert.False(t, facts.HasMain)
}

func TestGoParser_IgnoresOtherGetenv(t *testing.T) {
	src := `package cfg

type env struct{}

func (env) Getenv(string) string { return "" }

var os env

func Load() string { return os.Getenv("NOPE") }
`
	facts, err := parser.New().Parse("cfg.go", []byte(src))
	require.NoError(t, err)

	assert.Empty(t, facts.EnvVars)
}

func TestGoParser_FindsTests(t *testing.T) {
	src := `package cfg_test

import "testing"

func TestMain(m *testing.M) {}

func TestLoad(t *testing.T) {}

func TestHelper(x int) {}

func BenchmarkLoad(b *testing.B) {}
`
	facts, err := parser.New().Parse("cfg_test.go", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"TestLoad"}, facts.Tests)
}

func TestGoParser_InvalidSource(t *testing.T) {
	_, err := parser.New().Parse("broken.go", []byte("package"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.go")
}
