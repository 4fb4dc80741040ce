package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bleready/bleready/internal/domain"
)

func onComponent(i domain.CriticalIssue, c domain.Component) domain.CriticalIssue {
	i.Component = c
	return i
}

func TestAssessRisk_NoIssues(t *testing.T) {
	ra := AssessRisk(nil)
	assert.Equal(t, domain.RiskLow, ra.Security.Level)
	assert.Equal(t, domain.RiskLow, ra.Performance.Level)
	assert.Equal(t, domain.RiskLow, ra.Functional.Level)
	assert.Equal(t, domain.RiskLow, ra.OverallRiskLevel)
	assert.NotNil(t, ra.Security.Issues)
}

func TestAssessRisk_BucketsMatchOnComponent(t *testing.T) {
	issues := []domain.CriticalIssue{
		onComponent(issue("token leak", domain.CategoryLow, false), domain.ComponentSecurity),
		onComponent(issue("slow scan", domain.CategoryLow, false), domain.ComponentPerformance),
		onComponent(issue("db lock", domain.CategoryMedium, false), domain.ComponentDatabase),
		onComponent(issue("missing uuid", domain.CategoryMedium, false), domain.ComponentConfig),
	}

	ra := AssessRisk(issues)
	assert.Equal(t, domain.RiskHigh, ra.Security.Level)
	assert.Equal(t, []string{"token leak"}, ra.Security.Issues)
	assert.Equal(t, domain.RiskMedium, ra.Performance.Level)
	assert.Equal(t, domain.RiskHigh, ra.Functional.Level)
	assert.Equal(t, []string{"db lock"}, ra.Functional.Issues)
	assert.Equal(t, domain.RiskLow, ra.OverallRiskLevel)
}

func TestAssessRisk_Overall(t *testing.T) {
	high := issue("h", domain.CategoryHigh, false)

	assert.Equal(t, domain.RiskMedium, AssessRisk([]domain.CriticalIssue{high}).OverallRiskLevel)
	assert.Equal(t, domain.RiskMedium, AssessRisk([]domain.CriticalIssue{high, high}).OverallRiskLevel)
	assert.Equal(t, domain.RiskHigh, AssessRisk([]domain.CriticalIssue{high, high, high}).OverallRiskLevel)
	assert.Equal(t, domain.RiskHigh, AssessRisk([]domain.CriticalIssue{issue("c", domain.CategoryCritical, false)}).OverallRiskLevel)
}
