package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/pushkraft/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "pushkraft-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "pushkraft")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/pushkraft")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/projects", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.Output()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Analyze Tests ---

func TestE2E_Analyze(t *testing.T) {
	out, code := run(t, "analyze", fixturePath("shop"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "pushkraft")
	assert.Contains(t, out, "postgres")
}

func TestE2E_AnalyzeJSON(t *testing.T) {
	out, code := run(t, "analyze", fixturePath("shop"), "--json")
	assert.Equal(t, 0, code)

	var analysis domain.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Contains(t, analysis.Elements, "gomod")
	assert.Contains(t, analysis.Elements, "docker")
	assert.Contains(t, analysis.Elements, "compose")
	assert.Contains(t, analysis.Elements, "github-actions")
	assert.Contains(t, analysis.Services, "db")
	assert.Contains(t, analysis.ReferencedEnvironmentVariables, "SHOP_PORT")
	assert.Contains(t, analysis.ReferencedEnvironmentVariables, "SHOP_DB_URL")
	assert.Nil(t, analysis.SeedAnalysis)
}

func TestE2E_AnalyzeFullJSON(t *testing.T) {
	out, code := run(t, "analyze", fixturePath("shop"), "--json", "--full")
	assert.Equal(t, 0, code)

	var analysis domain.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	require.NotNil(t, analysis.SeedAnalysis)
	assert.True(t, analysis.SeedAnalysis.UsableAsSeed())
	assert.Contains(t, analysis.Inspections, "gofmt")
}

// --- Plan Tests ---

func TestE2E_PlanJSON(t *testing.T) {
	out, code := run(t, "plan", fixturePath("shop"), "--json")
	assert.Equal(t, 0, code)

	var report struct {
		Plan struct {
			Phases []struct {
				Phase string `json:"phase"`
			} `json:"phases"`
		} `json:"plan"`
		Composite *float64 `json:"composite_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	var phases []string
	for _, p := range report.Plan.Phases {
		phases = append(phases, p.Phase)
	}
	assert.Equal(t, []string{"checks", "build", "test", "container-build", "release"}, phases)
	require.NotNil(t, report.Composite)
}

func TestE2E_PlanCI(t *testing.T) {
	_, code := run(t, "plan", fixturePath("shop"), "--ci", "--min", "6")
	assert.Equal(t, 1, code, "should exit 1 when below minimum")
}

func TestE2E_PlanNothingToDeliver(t *testing.T) {
	out, code := run(t, "plan", fixturePath("docs"), "--json")
	assert.Equal(t, 0, code)
	assert.NotContains(t, out, `"build"`)
}

// --- Seed Tests ---

func TestE2E_SeedList(t *testing.T) {
	out, code := run(t, "seed", fixturePath("shop"), "--list")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "module-path")
}

func TestE2E_SeedNotUsable(t *testing.T) {
	_, code := run(t, "seed", fixturePath("docs"), "-p", "module-path=example.com/x")
	assert.Equal(t, 1, code)
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "pushkraft")
}
