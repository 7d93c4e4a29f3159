package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/pushkraft/internal/application"
)

// NewPushkraftMCPServer creates an MCP server exposing analysis, interpretation
// and delivery planning of the project at projectPath.
func NewPushkraftMCPServer(projectPath string, svc *application.DeliveryService) *server.MCPServer {
	s := server.NewMCPServer(
		"pushkraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, svc)
	registerResources(s, projectPath, svc)

	return s
}
