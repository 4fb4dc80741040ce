package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bleready/bleready/internal/adapters/outbound/tui"
	"github.com/bleready/bleready/internal/application"
	"github.com/bleready/bleready/internal/domain"
)

func newSummaryCmd(flags *globalFlags) *cobra.Command {
	var ciMode bool

	cmd := &cobra.Command{
		Use:   "summary <result-file>",
		Short: "Print only the executive summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, result, err := prepare(cmd, flags, args[0])
			if err != nil {
				return err
			}
			es, err := e.reportService().GenerateExecutiveSummary(result)
			if err != nil {
				return fmt.Errorf("summary failed: %w", err)
			}

			w := cmd.OutOrStdout()
			if e.wantsJSON(w) {
				if err := renderJSON(w, es); err != nil {
					return err
				}
			} else {
				fmt.Fprint(w, tui.RenderSummary(es))
			}

			if ciMode && e.cfg.Fails(es.GoNoGoRecommendation.Recommendation) {
				return fmt.Errorf("deployment gate failed: recommendation is %s", es.GoNoGoRecommendation.Recommendation)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 when the recommendation is at or below fail_on")
	return cmd
}

func newTechnicalCmd(flags *globalFlags) *cobra.Command {
	return newSectionCmd(flags, "technical", "Print only the technical analysis",
		func(svc *application.ReportService, r *domain.ValidationResult) (any, error) {
			return svc.GenerateTechnicalAnalysis(r)
		})
}

func newIssuesCmd(flags *globalFlags) *cobra.Command {
	return newSectionCmd(flags, "issues", "Print only the issue database, priorities, roadmap and progress",
		func(svc *application.ReportService, r *domain.ValidationResult) (any, error) {
			return svc.GenerateIssueTracking(r)
		})
}

func newChecklistCmd(flags *globalFlags) *cobra.Command {
	return newSectionCmd(flags, "checklist", "Print only the deployment readiness checklist",
		func(svc *application.ReportService, r *domain.ValidationResult) (any, error) {
			return svc.GenerateDeploymentChecklist(r)
		})
}

// newSectionCmd builds a JSON-only command for one narrow report section.
func newSectionCmd(
	flags *globalFlags,
	name, short string,
	generate func(*application.ReportService, *domain.ValidationResult) (any, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <result-file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, result, err := prepare(cmd, flags, args[0])
			if err != nil {
				return err
			}
			section, err := generate(e.reportService(), result)
			if err != nil {
				return fmt.Errorf("%s failed: %w", name, err)
			}
			return renderJSON(cmd.OutOrStdout(), section)
		},
	}
}

func prepare(cmd *cobra.Command, flags *globalFlags, path string) (*env, *domain.ValidationResult, error) {
	e, err := flags.resolve(cmd)
	if err != nil {
		return nil, nil, err
	}
	result, err := e.results.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading result: %w", err)
	}
	return e, result, nil
}
