package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/abdidvp/pushkraft/internal/adapters/inbound/mcp"
	"github.com/abdidvp/pushkraft/internal/adapters/outbound/builtin"
	"github.com/abdidvp/pushkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/pushkraft/internal/adapters/outbound/preferences"
	"github.com/abdidvp/pushkraft/internal/adapters/outbound/project"
	"github.com/abdidvp/pushkraft/internal/application"
)

func newService() *application.DeliveryService {
	return application.NewDeliveryService(builtin.Pack(), project.New(), config.New(), nil, preferences.Factory())
}

func TestNewPushkraftMCPServer(t *testing.T) {
	s := mcpadapter.NewPushkraftMCPServer(".", newService())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewPushkraftMCPServer(".", newService())

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"pushkraft_analyze",
		"pushkraft_interpret",
		"pushkraft_plan",
		"pushkraft_seed_parameters",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

func TestMCPServer_CallPlanTool(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/svc\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0o644))

	s := mcpadapter.NewPushkraftMCPServer(dir, newService())
	msg := s.HandleMessage(context.Background(), json.RawMessage(
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"pushkraft_plan","arguments":{}}}`,
	))

	out, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "goBuild")
	assert.NotContains(t, string(out), `"isError":true`)
}
