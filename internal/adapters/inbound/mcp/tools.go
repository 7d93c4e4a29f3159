package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/pushkraft/internal/application"
	"github.com/abdidvp/pushkraft/internal/domain"
)

func registerTools(s *server.MCPServer, projectPath string, svc *application.DeliveryService) {
	s.AddTool(
		mcplib.NewTool("pushkraft_analyze",
			mcplib.WithDescription("Scan the project and return its technology elements, services, dependencies, environment variables and fingerprints"),
			mcplib.WithBoolean("full", mcplib.Description("Include seed analysis, scores, code inspections and git status")),
		),
		handleAnalyze(projectPath, svc),
	)

	s.AddTool(
		mcplib.NewTool("pushkraft_interpret",
			mcplib.WithDescription("Return the interpretation of the project: goals per delivery slot, the interpreters that chose them, scores and messages"),
			mcplib.WithBoolean("full", mcplib.Description("Interpret a full analysis")),
		),
		handleInterpret(projectPath, svc),
	)

	s.AddTool(
		mcplib.NewTool("pushkraft_plan",
			mcplib.WithDescription("Return the delivery goal graph: ordered phases from checks to deploy, composite score and whether HEAD is a material change"),
			mcplib.WithBoolean("full", mcplib.Description("Plan from a full analysis")),
		),
		handlePlan(projectPath, svc),
	)

	s.AddTool(
		mcplib.NewTool("pushkraft_seed_parameters",
			mcplib.WithDescription("List the parameters and transforms available when using the project as a seed for a new one"),
		),
		handleSeedParameters(projectPath, svc),
	)
}

func fullOption(request mcplib.CallToolRequest) domain.AnalysisOptions {
	full, _ := request.GetArguments()["full"].(bool)
	return domain.AnalysisOptions{Full: full}
}

func handleAnalyze(projectPath string, svc *application.DeliveryService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		analysis, err := svc.Analyze(ctx, projectPath, fullOption(request))
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(analysis)
	}
}

func handleInterpret(projectPath string, svc *application.DeliveryService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		interp, err := svc.Interpret(ctx, projectPath, fullOption(request))
		if err != nil {
			return errorResult(fmt.Sprintf("interpretation failed: %v", err)), nil
		}
		return jsonResult(interp)
	}
}

func handlePlan(projectPath string, svc *application.DeliveryService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := svc.Plan(ctx, projectPath, fullOption(request))
		if err != nil {
			return errorResult(fmt.Sprintf("planning failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSeedParameters(projectPath string, svc *application.DeliveryService) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		analysis, err := svc.Analyze(ctx, projectPath, domain.AnalysisOptions{Full: true})
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		if !analysis.SeedAnalysis.UsableAsSeed() {
			return errorResult(application.ErrNotUsableAsSeed.Error()), nil
		}
		return jsonResult(analysis.SeedAnalysis)
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
