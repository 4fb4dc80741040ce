package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/bleready/bleready/internal/application"
	"github.com/bleready/bleready/internal/domain"
)

// NewServer creates an MCP server with all bleready tools and resources
// registered. Tools read validation result files from paths given by the client.
// version is announced to clients during initialization.
func NewServer(version string, svc *application.ReportService, results domain.ResultLoader, cfg domain.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"bleready",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc, results)
	registerResources(s, cfg)

	return s
}
