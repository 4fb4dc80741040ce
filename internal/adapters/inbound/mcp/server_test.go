package mcp_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/bleready/bleready/internal/adapters/inbound/mcp"
	"github.com/bleready/bleready/internal/adapters/outbound/checklist"
	"github.com/bleready/bleready/internal/adapters/outbound/loader"
	"github.com/bleready/bleready/internal/adapters/outbound/technical"
	"github.com/bleready/bleready/internal/adapters/outbound/tracker"
	"github.com/bleready/bleready/internal/application"
	"github.com/bleready/bleready/internal/domain"
)

var fixtures = filepath.Join("..", "..", "..", "..", "testdata", "results")

func newTestServer(t *testing.T) *server.MCPServer {
	t.Helper()
	svc := application.NewReportService(technical.New(), tracker.New(), checklist.New())
	s := mcpadapter.NewServer("1.2.3", svc, loader.New(), domain.DefaultConfig())
	require.NotNil(t, s)
	return s
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	tool, ok := s.ListTools()[name]
	require.True(t, ok, "tool %q should be registered", name)

	var req mcplib.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPServerHasTools(t *testing.T) {
	s := newTestServer(t)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"bleready_report",
		"bleready_executive_summary",
		"bleready_technical_analysis",
		"bleready_issue_tracking",
		"bleready_deployment_checklist",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

func TestReportTool_ReturnsReport(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s, "bleready_report", map[string]any{
		"result_path": filepath.Join(fixtures, "pass.yaml"),
	})
	require.False(t, res.IsError, resultText(t, res))

	var report domain.ComprehensiveValidationReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &report))
	assert.Equal(t, domain.RecommendGo, report.ExecutiveSummary.GoNoGoRecommendation.Recommendation)
	assert.NotEmpty(t, report.Metadata.ReportID)
}

func TestExecutiveSummaryTool_BlockedResult(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s, "bleready_executive_summary", map[string]any{
		"result_path": filepath.Join(fixtures, "blocked.yaml"),
	})
	require.False(t, res.IsError, resultText(t, res))

	var es domain.ExecutiveSummary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &es))
	assert.Equal(t, domain.RecommendNoGo, es.GoNoGoRecommendation.Recommendation)
}

func TestTools_MissingPathIsToolError(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s, "bleready_deployment_checklist", map[string]any{})
	assert.True(t, res.IsError)
}

func TestTools_MalformedFileIsToolError(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s, "bleready_technical_analysis", map[string]any{
		"result_path": filepath.Join(fixtures, "does-not-exist.yaml"),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "loading result failed")
}

func TestMCPServer_InitializeReportsVersion(t *testing.T) {
	s := newTestServer(t)

	msg := s.HandleMessage(context.Background(), json.RawMessage(`{
		"jsonrpc": "2.0",
		"id": 1,
		"method": "initialize",
		"params": {
			"protocolVersion": "2024-11-05",
			"capabilities": {},
			"clientInfo": {"name": "test-client", "version": "0.0.1"}
		}
	}`))
	require.NotNil(t, msg)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var resp struct {
		Result struct {
			ServerInfo struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "bleready", resp.Result.ServerInfo.Name)
	assert.Equal(t, "1.2.3", resp.Result.ServerInfo.Version)
}
