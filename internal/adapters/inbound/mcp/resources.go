package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/pushkraft/internal/application"
	"github.com/abdidvp/pushkraft/internal/domain"
)

const (
	analysisURI = "pushkraft://analysis"
	planURI     = "pushkraft://plan"
)

var errNoPlan = errors.New("project has no goals to plan")

func registerResources(s *server.MCPServer, projectPath string, svc *application.DeliveryService) {
	s.AddResource(
		mcplib.NewResource(
			analysisURI,
			"Project Analysis",
			mcplib.WithResourceDescription("Full analysis of the project, including seed analysis and inspections"),
			mcplib.WithMIMEType("application/json"),
		),
		func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			analysis, err := svc.Analyze(ctx, projectPath, domain.AnalysisOptions{Full: true})
			if err != nil {
				return nil, fmt.Errorf("analysis failed: %w", err)
			}
			return jsonResource(analysisURI, analysis)
		},
	)

	s.AddResource(
		mcplib.NewResource(
			planURI,
			"Delivery Plan",
			mcplib.WithResourceDescription("Delivery goal graph for the current HEAD"),
			mcplib.WithMIMEType("application/json"),
		),
		func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			report, err := svc.Plan(ctx, projectPath, domain.AnalysisOptions{})
			if err != nil {
				return nil, fmt.Errorf("planning failed: %w", err)
			}
			if report.Plan.Empty() {
				return nil, errNoPlan
			}
			return jsonResource(planURI, report)
		},
	)
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
