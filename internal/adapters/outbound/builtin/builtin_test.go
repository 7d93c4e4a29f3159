package builtin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/project"
	"github.com/abdidvp/pushkraft/internal/domain"
)

const goMod = `module example.com/shop

go 1.24

require (
	github.com/spf13/cobra v1.10.2
	golang.org/x/sync v0.17.0 // indirect
)
`

const mainGo = `package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println(os.Getenv("SHOP_PORT"))
}
`

const mainTestGo = `package main

import "testing"

func TestMain_Runs(t *testing.T) {}
`

const unformattedGo = `package store

import "os"

func DSN() string {
return os.Getenv("DATABASE_URL")
}
`

func memProject(t *testing.T, files map[string]string) domain.Project {
	t.Helper()
	p, err := project.InMemory("shop", files)
	require.NoError(t, err)
	return p
}

func scan(t *testing.T, s domain.Scanner, p domain.Project, sdm *domain.SdmContext) *domain.TechnologyElement {
	t.Helper()
	el, err := s.Scan(context.Background(), p, sdm, domain.NewAnalysis("a", p.Name()), domain.AnalysisOptions{})
	require.NoError(t, err)
	return el
}

func analysisOf(elements ...*domain.TechnologyElement) *domain.Analysis {
	a := domain.NewAnalysis("a", "shop")
	for _, e := range elements {
		a.Merge(e)
	}
	return a
}
