package synthesis

import (
	"fmt"

	"github.com/bleready/bleready/internal/domain"
)

var (
	goSteps = []string{
		"Proceed with production deployment following the standard release process",
		"Enable production monitoring and alerting for BLE subsystems",
		"Schedule post-deployment validation within 48 hours",
	}
	conditionalGoSteps = []string{
		"Resolve every condition listed in the Go/No-Go recommendation",
		"Re-run targeted validation for the affected components",
		"Obtain stakeholder sign-off on accepted residual risks",
	}
	noGoSteps = []string{
		"Halt deployment preparations until blocking issues are resolved",
		"Assign owners to all critical and deployment-blocking issues",
		"Re-run the full validation pipeline after remediation",
	}
	checklistFailSteps = []string{
		"Complete all critical deployment checklist items",
		"Re-assess deployment readiness once the checklist is remediated",
	}
	closingSteps = []string{
		"Review this report with all stakeholders",
		"Update the deployment timeline based on the recommendation",
		"Prepare the team for the next validation cycle",
	}
)

// DeriveNextSteps builds the ordered action list for the report.
func DeriveNextSteps(
	verdict domain.GoNoGoRecommendation,
	checklist domain.DeploymentReadinessChecklist,
	roadmap domain.RemediationRoadmap,
) []string {
	var steps []string
	switch verdict.Recommendation {
	case domain.RecommendGo:
		steps = append(steps, goSteps...)
	case domain.RecommendConditionalGo:
		steps = append(steps, conditionalGoSteps...)
	default:
		steps = append(steps, noGoSteps...)
	}

	if checklist.OverallReadiness == domain.RatingFail {
		steps = append(steps, checklistFailSteps...)
	}

	if len(roadmap.Phases) > 0 {
		first := roadmap.Phases[0]
		steps = append(steps,
			fmt.Sprintf("Start remediation phase %q (%s)", first.Name, first.Duration),
			fmt.Sprintf("Track the %d issue(s) scheduled in %q", len(first.IssueIDs), first.Name),
			fmt.Sprintf("Review %q deliverables when the phase completes", first.Name),
		)
	}

	return append(steps, closingSteps...)
}
