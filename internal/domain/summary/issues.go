package summary

import (
	"sort"

	"github.com/bleready/bleready/internal/domain"
)

// TopIssueCount is the number of issues surfaced in an executive summary.
const TopIssueCount = 5

var impactSummaries = map[domain.Category]string{
	domain.CategoryCritical: "Blocks production deployment; risk of system failure, data loss or security breach",
	domain.CategoryHigh:     "Significantly degrades functionality or security; must be fixed before release",
	domain.CategoryMedium:   "Affects reliability or user experience; schedule for the next iteration",
	domain.CategoryLow:      "Minor impact; address during routine maintenance",
}

var remediationSummaries = map[domain.Effort]string{
	domain.EffortLow:    "Quick fix (hours)",
	domain.EffortMedium: "Moderate effort (1-3 days)",
	domain.EffortHigh:   "Significant effort (1-2 weeks)",
}

// RankIssues returns a copy of issues ordered by category weight descending,
// then deployment blockers first. Ties keep their input order.
func RankIssues(issues []domain.CriticalIssue) []domain.CriticalIssue {
	ranked := make([]domain.CriticalIssue, len(issues))
	copy(ranked, issues)
	sort.SliceStable(ranked, func(i, j int) bool {
		wi, wj := ranked[i].Category.Weight(), ranked[j].Category.Weight()
		if wi != wj {
			return wi > wj
		}
		return ranked[i].DeploymentBlocker && !ranked[j].DeploymentBlocker
	})
	return ranked
}

// TopCriticalIssues ranks issues and annotates the first TopIssueCount.
func TopCriticalIssues(issues []domain.CriticalIssue) []domain.RankedIssue {
	ranked := RankIssues(issues)
	if len(ranked) > TopIssueCount {
		ranked = ranked[:TopIssueCount]
	}

	top := make([]domain.RankedIssue, 0, len(ranked))
	for _, issue := range ranked {
		top = append(top, domain.RankedIssue{
			CriticalIssue:      issue,
			ImpactSummary:      impactSummaries[issue.Category],
			RemediationSummary: remediationSummaries[issue.EstimatedEffort],
		})
	}
	return top
}
