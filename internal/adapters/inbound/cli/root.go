package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "bleready",
		Short: "Turn BLE validation results into a Go/No-Go decision",
		Long: "bleready reads the output of a BLE system validation run and produces an executive summary, " +
			"issue tracking, a deployment checklist and a cross-cutting risk analysis with a Go/No-Go recommendation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(cmd)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newReportCmd(&flags))
	cmd.AddCommand(newSummaryCmd(&flags))
	cmd.AddCommand(newTechnicalCmd(&flags))
	cmd.AddCommand(newIssuesCmd(&flags))
	cmd.AddCommand(newChecklistCmd(&flags))
	cmd.AddCommand(newMCPCmd(&flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
