package domain_test

import (
	"testing"

	"github.com/abdidvp/pushkraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewGoal_DisplayName(t *testing.T) {
	tests := map[string]string{
		"dockerBuild":    "docker build",
		"codeInspection": "code inspection",
		"autofix":        "autofix",
		"go-test":        "go test",
	}
	for unique, display := range tests {
		assert.Equal(t, display, domain.NewGoal(unique).DisplayName, unique)
	}
}

func TestGoals_Empty(t *testing.T) {
	var nilGoals *domain.Goals
	assert.True(t, nilGoals.Empty())
	assert.True(t, domain.NewGoals("x").Empty())
	assert.False(t, domain.NewGoals("x", domain.NewGoal("build")).Empty())
}

func TestGoals_DependsOn(t *testing.T) {
	build := domain.NewGoals("build", domain.NewGoal("goBuild"))
	control := domain.NewGoals("control", domain.NewGoal("queue"))
	empty := domain.NewGoals("test")

	deploy := domain.NewGoals("deploy", domain.NewGoal("deploy")).DependsOn(control, build, empty, nil, build)

	assert.Equal(t, []string{"control", "build"}, deploy.After)
	assert.Empty(t, build.After, "receiver is not modified")
}

func TestGoals_DependsOnSelfIgnored(t *testing.T) {
	build := domain.NewGoals("build", domain.NewGoal("goBuild"))
	assert.Empty(t, build.DependsOn(build).After)
}

func TestGoals_Without(t *testing.T) {
	checks := domain.NewGoals("checks", domain.NewGoal("autofix"), domain.NewGoal("codeInspection"))

	filtered := checks.Without([]string{"code inspection"})

	assert.Equal(t, []string{"autofix"}, filtered.DisplayNames())
	assert.Len(t, checks.Goals, 2)
}

func TestGoals_With(t *testing.T) {
	base := domain.NewGoals("build", domain.NewGoal("goBuild"))
	more := base.With(domain.NewGoal("goVet"))

	assert.Equal(t, []string{"go build", "go vet"}, more.DisplayNames())
	assert.Equal(t, []string{"go build"}, base.DisplayNames())
}
