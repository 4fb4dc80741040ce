package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bleready/bleready/internal/domain"
)

func issue(title string, c domain.Category, blocker bool) domain.CriticalIssue {
	return domain.CriticalIssue{
		Category:          c,
		Component:         domain.ComponentBridge,
		Title:             title,
		DeploymentBlocker: blocker,
		EstimatedEffort:   domain.EffortMedium,
	}
}

func titles(issues []domain.RankedIssue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Title)
	}
	return out
}

func TestTopCriticalIssues_OrdersByCategoryStably(t *testing.T) {
	issues := []domain.CriticalIssue{
		issue("low", domain.CategoryLow, false),
		issue("critical-1", domain.CategoryCritical, false),
		issue("high", domain.CategoryHigh, false),
		issue("critical-2", domain.CategoryCritical, false),
	}

	top := TopCriticalIssues(issues)
	assert.Equal(t, []string{"critical-1", "critical-2", "high", "low"}, titles(top))
}

func TestTopCriticalIssues_BlockersFirstWithinCategory(t *testing.T) {
	issues := []domain.CriticalIssue{
		issue("high", domain.CategoryHigh, false),
		issue("high-blocker", domain.CategoryHigh, true),
		issue("critical", domain.CategoryCritical, false),
	}

	top := TopCriticalIssues(issues)
	assert.Equal(t, []string{"critical", "high-blocker", "high"}, titles(top))
}

func TestTopCriticalIssues_CapsAtFive(t *testing.T) {
	var issues []domain.CriticalIssue
	for range 8 {
		issues = append(issues, issue("medium", domain.CategoryMedium, false))
	}
	issues = append(issues, issue("critical", domain.CategoryCritical, false))

	top := TopCriticalIssues(issues)
	require.Len(t, top, TopIssueCount)
	assert.Equal(t, "critical", top[0].Title)
}

func TestTopCriticalIssues_Annotations(t *testing.T) {
	in := issue("critical", domain.CategoryCritical, true)
	in.EstimatedEffort = domain.EffortLow

	top := TopCriticalIssues([]domain.CriticalIssue{in})
	require.Len(t, top, 1)
	assert.Equal(t, in, top[0].CriticalIssue)
	assert.Equal(t, impactSummaries[domain.CategoryCritical], top[0].ImpactSummary)
	assert.Equal(t, "Quick fix (hours)", top[0].RemediationSummary)
}

func TestRankIssues_DoesNotMutateInput(t *testing.T) {
	issues := []domain.CriticalIssue{
		issue("low", domain.CategoryLow, false),
		issue("critical", domain.CategoryCritical, false),
	}
	RankIssues(issues)
	assert.Equal(t, "low", issues[0].Title)
}

func TestTopCriticalIssues_Empty(t *testing.T) {
	top := TopCriticalIssues(nil)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}
