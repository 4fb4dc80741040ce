// Package synthesis holds the cross-cutting report logic that combines the
// executive summary with collaborator outputs.
package synthesis

import (
	"fmt"

	"github.com/bleready/bleready/internal/domain"
)

const maxTechnicalIssues = 5

// technicalComponents are the components whose issues feed technical risk.
var technicalComponents = []domain.Component{
	domain.ComponentNative, domain.ComponentBridge, domain.ComponentDatabase, domain.ComponentPerformance,
}

// AnalyzeRisk derives the four report-level risk dimensions and rolls them up.
func AnalyzeRisk(
	r *domain.ValidationResult,
	verdict domain.GoNoGoRecommendation,
	checklist domain.DeploymentReadinessChecklist,
) domain.RiskAnalysis {
	ra := domain.RiskAnalysis{
		Security:    securityRule(r).Evaluate(),
		Operational: operationalRule(checklist).Evaluate(),
		Technical:   technicalRule(r).Evaluate(),
		Business:    businessRule(r, verdict).Evaluate(),
	}
	ra.OverallRiskLevel = domain.RollUpRisk(ra.Levels()...)
	return ra
}

func securityRule(r *domain.ValidationResult) domain.RiskRule {
	issues := r.IssuesFor(domain.ComponentSecurity)
	return domain.RiskRule{
		Classify: func() (domain.RiskLevel, []string) {
			level := domain.RiskLow
			for _, i := range issues {
				if i.Category == domain.CategoryCritical {
					level = domain.RiskHigh
					break
				}
				level = domain.RiskMedium
			}
			return level, domain.Titles(issues)
		},
		Impact:     "Unauthorized device access, data exposure or compliance violations",
		Mitigation: "Resolve all security findings and complete a focused security review before release",
		Timeline: func(l domain.RiskLevel) string {
			if l == domain.RiskHigh {
				return "Immediate (1-2 days)"
			}
			return "Short-term (1 week)"
		},
	}
}

func operationalRule(checklist domain.DeploymentReadinessChecklist) domain.RiskRule {
	return domain.RiskRule{
		Classify: func() (domain.RiskLevel, []string) {
			issues := append([]string{}, checklist.CriticalMissingItems...)
			if len(checklist.MonitoringGaps) > 0 {
				issues = append(issues, fmt.Sprintf("Monitoring gaps identified (%d areas)", len(checklist.MonitoringGaps)))
			}
			level := checklist.RiskLevel
			if !level.Valid() {
				level = domain.RiskHigh
			}
			return level, issues
		},
		Impact:     "Deployment failures, undetected production incidents or slow recovery",
		Mitigation: "Complete critical checklist items and close monitoring gaps before go-live",
		Timeline:   domain.FixedTimeline("Pre-deployment (1-2 weeks)"),
	}
}

func technicalRule(r *domain.ValidationResult) domain.RiskRule {
	issues := r.IssuesFor(technicalComponents...)
	return domain.RiskRule{
		Classify: func() (domain.RiskLevel, []string) {
			level := domain.RiskLow
			if len(issues) > 3 {
				level = domain.RiskMedium
			}
			for _, i := range issues {
				if i.Category == domain.CategoryCritical {
					level = domain.RiskHigh
					break
				}
			}
			titles := domain.Titles(issues)
			if len(titles) > maxTechnicalIssues {
				titles = titles[:maxTechnicalIssues]
			}
			return level, titles
		},
		Impact:     "Functional defects, crashes or degraded BLE performance on devices",
		Mitigation: "Prioritize native, bridge, database and performance fixes with regression coverage",
		Timeline:   domain.FixedTimeline("Short-term (1-2 weeks)"),
	}
}

func businessRule(r *domain.ValidationResult, verdict domain.GoNoGoRecommendation) domain.RiskRule {
	blockers := r.Blockers()
	return domain.RiskRule{
		Classify: func() (domain.RiskLevel, []string) {
			switch {
			case verdict.Recommendation == domain.RecommendNoGo:
				return domain.RiskHigh, []string{"Deployment not recommended in current state"}
			case len(blockers) > 0:
				return domain.RiskMedium, domain.Titles(blockers)
			default:
				return domain.RiskLow, nil
			}
		},
		Impact:     "Delayed launch, stakeholder confidence and user adoption",
		Mitigation: "Communicate the remediation timeline and align release plans with the recommendation",
		Timeline:   domain.FixedTimeline(verdict.Timeline),
	}
}
