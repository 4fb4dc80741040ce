package summary

import (
	"fmt"

	"github.com/bleready/bleready/internal/domain"
)

// GenericNoGoCondition is the condition attached to a failing result without blockers.
const GenericNoGoCondition = "Address all critical and high priority issues"

// Decide derives the Go/No-Go verdict. Rules are checked in order:
// blockers, then PASS, then CONDITIONAL, then everything else.
func Decide(issues []domain.CriticalIssue, health domain.SystemHealthRating) domain.GoNoGoRecommendation {
	var blockers []string
	for _, issue := range issues {
		if issue.DeploymentBlocker {
			blockers = append(blockers, issue.Title)
		}
	}

	if len(blockers) > 0 {
		return domain.GoNoGoRecommendation{
			Recommendation: domain.RecommendNoGo,
			Justification:  fmt.Sprintf("%d deployment-blocking issue(s) must be resolved before production release.", len(blockers)),
			Conditions:     blockers,
			Timeline:       "Deployment blocked until all blockers are resolved (estimated 1-2 weeks)",
			RiskLevel:      domain.RiskHigh,
		}
	}

	switch health.Rating {
	case domain.RatingPass:
		return domain.GoNoGoRecommendation{
			Recommendation: domain.RecommendGo,
			Justification:  "All components meet quality thresholds and no deployment blockers were found.",
			Conditions:     []string{},
			Timeline:       "Ready for immediate deployment",
			RiskLevel:      domain.RiskLow,
		}
	case domain.RatingConditional:
		conditions := []string{}
		for _, issue := range issues {
			if issue.Category == domain.CategoryCritical {
				conditions = append(conditions, issue.Title)
			}
		}
		return domain.GoNoGoRecommendation{
			Recommendation: domain.RecommendConditionalGo,
			Justification:  "System is functional with no deployment blockers, but outstanding issues must be addressed.",
			Conditions:     conditions,
			Timeline:       "Deploy once conditions are met (estimated 3-5 days)",
			RiskLevel:      domain.RiskMedium,
		}
	default:
		return domain.GoNoGoRecommendation{
			Recommendation: domain.RecommendNoGo,
			Justification:  "System health is below the minimum threshold for deployment.",
			Conditions:     []string{GenericNoGoCondition},
			Timeline:       "Re-validate after remediation (estimated 2-3 weeks)",
			RiskLevel:      domain.RiskHigh,
		}
	}
}
