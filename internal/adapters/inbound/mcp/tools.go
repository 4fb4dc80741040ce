package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bleready/bleready/internal/application"
	"github.com/bleready/bleready/internal/domain"
)

const resultPathParam = "result_path"

// generator produces one report view from a validated result.
type generator func(*application.ReportService, *domain.ValidationResult) (any, error)

// registerTools registers all bleready MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.ReportService, results domain.ResultLoader) {
	// 1. bleready_report
	s.AddTool(
		newResultTool("bleready_report",
			"Returns the comprehensive validation report for a validation result file as JSON"),
		handleResult(svc, results, "report", func(svc *application.ReportService, r *domain.ValidationResult) (any, error) {
			return svc.GenerateReport(r)
		}),
	)

	// 2. bleready_executive_summary
	s.AddTool(
		newResultTool("bleready_executive_summary",
			"Returns the executive summary: health rating, top issues, Go/No-Go verdict, risk and confidence"),
		handleResult(svc, results, "summary", func(svc *application.ReportService, r *domain.ValidationResult) (any, error) {
			return svc.GenerateExecutiveSummary(r)
		}),
	)

	// 3. bleready_technical_analysis
	s.AddTool(
		newResultTool("bleready_technical_analysis",
			"Returns the per-component technical analysis"),
		handleResult(svc, results, "technical analysis", func(svc *application.ReportService, r *domain.ValidationResult) (any, error) {
			return svc.GenerateTechnicalAnalysis(r)
		}),
	)

	// 4. bleready_issue_tracking
	s.AddTool(
		newResultTool("bleready_issue_tracking",
			"Returns the issue database, prioritized list, remediation roadmap and progress tracker"),
		handleResult(svc, results, "issue tracking", func(svc *application.ReportService, r *domain.ValidationResult) (any, error) {
			return svc.GenerateIssueTracking(r)
		}),
	)

	// 5. bleready_deployment_checklist
	s.AddTool(
		newResultTool("bleready_deployment_checklist",
			"Returns the deployment readiness checklist"),
		handleResult(svc, results, "checklist", func(svc *application.ReportService, r *domain.ValidationResult) (any, error) {
			return svc.GenerateDeploymentChecklist(r)
		}),
	)
}

func newResultTool(name, description string) mcplib.Tool {
	return mcplib.NewTool(name,
		mcplib.WithDescription(description),
		mcplib.WithString(resultPathParam,
			mcplib.Required(),
			mcplib.Description("Path to a YAML or JSON validation result file"),
		),
	)
}

func handleResult(svc *application.ReportService, results domain.ResultLoader, what string, gen generator) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString(resultPathParam)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := results.Load(path)
		if err != nil {
			return errorResult(fmt.Sprintf("loading result failed: %v", err)), nil
		}

		out, err := gen(svc, result)
		if err != nil {
			return errorResult(fmt.Sprintf("%s failed: %v", what, err)), nil
		}
		return jsonResult(out)
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
