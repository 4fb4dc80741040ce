package technical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bleready/bleready/internal/adapters/outbound/technical"
	"github.com/bleready/bleready/internal/domain"
)

func analysisFor(t *testing.T, report domain.TechnicalAnalysisReport, c domain.Component) domain.ComponentAnalysis {
	t.Helper()
	for _, ca := range report.ComponentAnalyses {
		if ca.Component == c {
			return ca
		}
	}
	require.Failf(t, "component not found", "%s", c)
	return domain.ComponentAnalysis{}
}

func TestGenerateTechnicalReport_EmptyResult(t *testing.T) {
	report, err := technical.New().GenerateTechnicalReport(&domain.ValidationResult{})
	require.NoError(t, err)

	assert.Len(t, report.ComponentAnalyses, 6)
	assert.Equal(t, 0.0, report.AnalysisCompleteness)
	for _, ca := range report.ComponentAnalyses {
		assert.False(t, ca.Analyzed)
		assert.Equal(t, domain.RatingFail, ca.Status)
	}
	assert.Len(t, report.Recommendations, 6)
	assert.Equal(t, "Run the Native modules validation before the next release", report.Recommendations[0])
}

func TestGenerateTechnicalReport_FindingsAndStatus(t *testing.T) {
	r := &domain.ValidationResult{
		NativeModules: &domain.NativeModuleAnalysis{
			IOS:     &domain.PlatformAnalysis{OverallStatus: domain.RatingPass},
			Android: &domain.PlatformAnalysis{OverallStatus: domain.RatingConditional, Findings: []string{"scan throttled"}},
		},
		Database: &domain.DatabaseAnalysis{
			FunctionValidations: []domain.FunctionValidation{
				{Name: "record_attendance", SecurityRating: domain.SecuritySecure},
				{Name: "rotate_token"},
			},
		},
		Simulation: &domain.SimulationResult{
			OfficerFlow:    &domain.FlowResult{Success: true},
			MemberFlow:     &domain.FlowResult{Success: false, Failures: []string{"timeout"}},
			ErrorScenarios: []domain.ErrorScenario{{Name: "bt_off", HandledGracefully: false}},
		},
		CriticalIssues: []domain.CriticalIssue{
			{Category: domain.CategoryHigh, Component: domain.ComponentNative, Title: "Android scan throttled", Recommendation: "Use a foreground service"},
			{Category: domain.CategoryLow, Component: domain.ComponentNative, Title: "Verbose logs", Recommendation: "Trim logs"},
		},
	}

	report, err := technical.New().GenerateTechnicalReport(r)
	require.NoError(t, err)

	native := analysisFor(t, report, domain.ComponentNative)
	assert.True(t, native.Analyzed)
	assert.InDelta(t, 0.85, native.Score, 1e-9)
	assert.Equal(t, domain.RatingConditional, native.Status)
	assert.Equal(t, []string{
		"Android: scan throttled",
		"[HIGH] Android scan throttled",
		"[LOW] Verbose logs",
	}, native.Findings)

	db := analysisFor(t, report, domain.ComponentDatabase)
	assert.Contains(t, db.Findings, "Function rotate_token rated UNKNOWN")

	sim := analysisFor(t, report, domain.ComponentSimulation)
	assert.InDelta(t, 1.0/3, sim.Score, 1e-9)
	assert.Contains(t, sim.Findings, "Member flow: timeout")
	assert.Contains(t, sim.Findings, `Error scenario "bt_off" not handled gracefully`)

	assert.InDelta(t, 50.0, report.AnalysisCompleteness, 1e-9)
	assert.Equal(t, "Use a foreground service", report.Recommendations[0])
	assert.NotContains(t, report.Recommendations, "Trim logs")
}

func TestGenerateTechnicalReport_DeduplicatesRecommendations(t *testing.T) {
	r := &domain.ValidationResult{CriticalIssues: []domain.CriticalIssue{
		{Category: domain.CategoryCritical, Component: domain.ComponentBridge, Title: "a", Recommendation: "Verify signatures"},
		{Category: domain.CategoryHigh, Component: domain.ComponentBridge, Title: "b", Recommendation: "Verify signatures"},
	}}

	report, err := technical.New().GenerateTechnicalReport(r)
	require.NoError(t, err)
	assert.Equal(t, "Verify signatures", report.Recommendations[0])
	assert.NotEqual(t, "Verify signatures", report.Recommendations[1])
}
