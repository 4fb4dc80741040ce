package summary

import "github.com/bleready/bleready/internal/domain"

// AssessRisk builds the summary-level risk view over security, performance
// and functional (native, bridge, database) issues.
func AssessRisk(issues []domain.CriticalIssue) domain.RiskAssessment {
	result := &domain.ValidationResult{CriticalIssues: issues}

	security := domain.RiskRule{
		Classify:   presence(result.IssuesFor(domain.ComponentSecurity), domain.RiskHigh),
		Impact:     "Potential exposure of member data or unauthorized BLE access",
		Mitigation: "Complete a security review and fix all security findings before deployment",
		Timeline:   domain.FixedTimeline("Immediate"),
	}.Evaluate()

	performance := domain.RiskRule{
		Classify:   presence(result.IssuesFor(domain.ComponentPerformance), domain.RiskMedium),
		Impact:     "Degraded scan, connection or check-in latency under load",
		Mitigation: "Profile BLE operations and optimize the identified bottlenecks",
		Timeline:   domain.FixedTimeline("Short-term"),
	}.Evaluate()

	functional := domain.RiskRule{
		Classify: presence(result.IssuesFor(
			domain.ComponentNative, domain.ComponentBridge, domain.ComponentDatabase,
		), domain.RiskHigh),
		Impact:     "Core officer and member BLE flows may fail in production",
		Mitigation: "Fix native module, bridge and database defects and re-run end-to-end validation",
		Timeline:   domain.FixedTimeline("Immediate"),
	}.Evaluate()

	return domain.RiskAssessment{
		Security:         security,
		Performance:      performance,
		Functional:       functional,
		OverallRiskLevel: overallIssueRisk(issues),
	}
}

// presence levels a bucket at level when it has any issue, LOW otherwise.
func presence(matching []domain.CriticalIssue, level domain.RiskLevel) func() (domain.RiskLevel, []string) {
	return func() (domain.RiskLevel, []string) {
		if len(matching) == 0 {
			return domain.RiskLow, nil
		}
		return level, domain.Titles(matching)
	}
}

// overallIssueRisk: HIGH on any CRITICAL issue or more than two HIGH issues,
// MEDIUM on any HIGH issue, LOW otherwise.
func overallIssueRisk(issues []domain.CriticalIssue) domain.RiskLevel {
	high := 0
	for _, issue := range issues {
		switch issue.Category {
		case domain.CategoryCritical:
			return domain.RiskHigh
		case domain.CategoryHigh:
			high++
		}
	}
	switch {
	case high > 2:
		return domain.RiskHigh
	case high > 0:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
