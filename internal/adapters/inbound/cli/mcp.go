package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/bleready/bleready/internal/adapters/inbound/mcp"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the bleready MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(flags))
	return cmd
}

func newMCPServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start bleready MCP server (stdio)",
		Long:  "Start the bleready MCP server using stdio transport. This lets AI assistants request reports and summaries for validation result files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewServer(version, e.reportService(), e.results, e.cfg)
			return server.ServeStdio(s)
		},
	}
}
