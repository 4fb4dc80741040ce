package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bleready/bleready/internal/adapters/outbound/tui"
	"github.com/bleready/bleready/internal/domain"
)

func newReportCmd(flags *globalFlags) *cobra.Command {
	var (
		ciMode      bool
		stampCommit bool
		repoPath    string
	)

	cmd := &cobra.Command{
		Use:   "report <result-file> [result-file...]",
		Short: "Generate the comprehensive validation report",
		Long: "Generate the full decision-support report for one or more validation result files (YAML or JSON). " +
			"Multiple files are processed in parallel and printed in argument order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			stamp := stampCommit || e.cfg.StampCommit

			svc := e.reportService()

			reports := make([]*domain.ComprehensiveValidationReport, len(args))
			g := new(errgroup.Group)
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, path := range args {
				g.Go(func() error {
					result, err := e.results.Load(path)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					report, err := svc.GenerateReport(result)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					if stamp {
						repo := repoPath
						if repo == "" {
							repo = filepath.Dir(path)
						}
						if hash, err := e.git.CommitHash(repo); err == nil {
							report.Metadata.SourceRevision = hash
						} else {
							e.logger.Warn("could not stamp source revision", "path", repo, "error", err)
						}
					}
					reports[i] = report
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return fmt.Errorf("report failed: %w", err)
			}

			if err := writeReports(cmd.OutOrStdout(), e, reports); err != nil {
				return err
			}

			if ciMode {
				return gate(e.cfg, args, reports)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 when a recommendation is at or below fail_on")
	cmd.Flags().BoolVar(&stampCommit, "stamp-commit", false, "Record the git HEAD commit in report metadata")
	cmd.Flags().StringVar(&repoPath, "repo", "", "Repository to read HEAD from (defaults to each result file's directory)")

	return cmd
}

func writeReports(w io.Writer, e *env, reports []*domain.ComprehensiveValidationReport) error {
	if e.wantsJSON(w) {
		if len(reports) == 1 {
			return renderJSON(w, reports[0])
		}
		return renderJSON(w, reports)
	}
	for _, r := range reports {
		fmt.Fprint(w, tui.RenderReport(r))
	}
	return nil
}

func gate(cfg domain.Config, paths []string, reports []*domain.ComprehensiveValidationReport) error {
	failed := 0
	for _, r := range reports {
		if cfg.Fails(r.ExecutiveSummary.GoNoGoRecommendation.Recommendation) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("deployment gate failed: %d of %d result(s) at or below %s", failed, len(paths), cfg.WithDefaults().FailOn)
	}
	return nil
}
