package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bleready/bleready/internal/adapters/outbound/tui"
	"github.com/bleready/bleready/internal/domain"
)

func sampleSummary() *domain.ExecutiveSummary {
	return &domain.ExecutiveSummary{
		SystemHealthRating: domain.SystemHealthRating{
			Rating:          domain.RatingConditional,
			Score:           0.79,
			ComponentScores: domain.ComponentScores{Native: 0.85, Bridge: 0.75, Database: 0.85, Security: 0.8, Performance: 0.8, Configuration: 0.7},
			Summary:         "System is functional but has issues that need attention before deployment (overall score 79%).",
		},
		CriticalIssues: []domain.RankedIssue{
			{
				CriticalIssue: domain.CriticalIssue{
					Category:          domain.CategoryCritical,
					Component:         domain.ComponentBridge,
					Title:             "Bridge accepts unsigned attendance events",
					DeploymentBlocker: true,
				},
				ImpactSummary:      "Blocks production deployment",
				RemediationSummary: "Significant effort (1-2 weeks)",
			},
		},
		GoNoGoRecommendation: domain.GoNoGoRecommendation{
			Recommendation: domain.RecommendConditionalGo,
			Justification:  "System is functional with no deployment blockers.",
			Conditions:     []string{"Check-in latency exceeds 2s"},
			Timeline:       "Deploy once conditions are met (estimated 3-5 days)",
			RiskLevel:      domain.RiskMedium,
		},
		ConfidenceLevel: domain.ConfidenceLevel{Level: domain.ConfidenceMedium, Score: 0.74},
	}
}

func TestRenderSummary(t *testing.T) {
	out := tui.RenderSummary(sampleSummary())

	assert.Contains(t, out, "bleready")
	assert.Contains(t, out, "CONDITIONAL-GO")
	assert.Contains(t, out, "79 / 100")
	assert.Contains(t, out, "configuration")
	assert.Contains(t, out, "Check-in latency exceeds 2s")
	assert.Contains(t, out, "Bridge accepts unsigned attendance events")
	assert.Contains(t, out, "BLOCKER")
	assert.Contains(t, out, "confidence MEDIUM (0.74)")
}

func TestRenderSummary_NoIssues(t *testing.T) {
	s := sampleSummary()
	s.CriticalIssues = nil

	out := tui.RenderSummary(s)
	assert.Contains(t, out, "No issues reported.")
}

func TestRenderReport(t *testing.T) {
	r := &domain.ComprehensiveValidationReport{
		Metadata:         domain.ReportMetadata{ReportID: "01JABCDEF", SourceRevision: "0123456789abcdef"},
		ExecutiveSummary: *sampleSummary(),
		RiskAnalysis: domain.RiskAnalysis{
			Security:         domain.RiskDimension{Level: domain.RiskHigh, Issues: []string{"Session tokens logged"}, Timeline: "Immediate (1-2 days)"},
			OverallRiskLevel: domain.RiskHigh,
		},
		DeploymentChecklist: domain.DeploymentReadinessChecklist{
			OverallReadiness:     domain.RatingConditional,
			CriticalMissingItems: []string{"Deployment configuration ready"},
			Readiness:            domain.ReadinessPercentages{Overall: 70, CriticalItems: 85.7},
		},
		NextSteps: []string{"Resolve every condition listed in the Go/No-Go recommendation"},
		Statistics: domain.ReportStatistics{
			ComponentCoverage: domain.ComponentCoverage{Analyzed: 4, Total: 6, Percentage: 67},
		},
	}

	out := tui.RenderReport(r)

	assert.Contains(t, out, "Risk Analysis")
	assert.Contains(t, out, "Session tokens logged")
	assert.Contains(t, out, "Deployment Readiness")
	assert.Contains(t, out, "Deployment configuration ready")
	assert.Contains(t, out, "70%")
	assert.Contains(t, out, "Next Steps")
	assert.Contains(t, out, "coverage 4/6 (67%)")
	assert.Contains(t, out, "rev 0123456")
}
