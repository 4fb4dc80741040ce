package synthesis

import (
	"math"

	"github.com/bleready/bleready/internal/domain"
)

// ComputeStatistics aggregates report-wide figures. Issue counts and readiness
// percentages are taken from their sources unchanged.
func ComputeStatistics(
	r *domain.ValidationResult,
	summary domain.ExecutiveSummary,
	technical domain.TechnicalAnalysisReport,
	db domain.IssueDatabase,
	checklist domain.DeploymentReadinessChecklist,
) domain.ReportStatistics {
	analyzed := r.PresentComponents()
	return domain.ReportStatistics{
		ComponentCoverage: domain.ComponentCoverage{
			Analyzed:   analyzed,
			Total:      domain.ComponentCount,
			Percentage: CoveragePercentage(analyzed),
		},
		Issues: domain.IssueStatistics{
			Total:       db.TotalIssues,
			ByCategory:  db.IssuesByCategory,
			ByComponent: db.IssuesByComponent,
		},
		DeploymentReadiness: checklist.Readiness,
		ValidationMetrics: domain.ValidationMetrics{
			ExecutionTimeMs:      r.TotalExecutionTimeMs,
			ConfidenceLevel:      summary.ConfidenceLevel.Level,
			ConfidenceScore:      summary.ConfidenceLevel.Score,
			AnalysisCompleteness: technical.AnalysisCompleteness,
		},
	}
}

// CoveragePercentage is analyzed/ComponentCount as a rounded percentage.
func CoveragePercentage(analyzed int) int {
	return int(math.Round(float64(analyzed) / domain.ComponentCount * 100))
}
