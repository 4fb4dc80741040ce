package synthesis

import "github.com/bleready/bleready/internal/domain"

const (
	immediateIssueRecs     = 3
	immediateTechnicalRecs = 2
)

var (
	shortTermFiller = []string{
		"Add automated regression tests for the fixed BLE flows",
		"Establish baseline performance monitoring for BLE operations",
	}
	mediumTermFiller = []string{
		"Improve error handling and recovery for BLE connection failures",
		"Expand end-to-end test coverage across device models and OS versions",
	}
	longTermFiller = []string{
		"Refactor the bridge layer for maintainability and testability",
		"Introduce continuous validation in the release pipeline",
	}
	strategicRecommendations = []string{
		"Adopt a security-first review process for all BLE and native changes",
		"Invest in automated cross-platform BLE testing infrastructure",
		"Define performance budgets and track them in every release",
		"Schedule periodic full-system validation ahead of major releases",
	}
)

// SynthesizeRecommendations groups recommendations by horizon.
func SynthesizeRecommendations(
	summary domain.ExecutiveSummary,
	technical domain.TechnicalAnalysisReport,
	roadmap domain.RemediationRoadmap,
) domain.RecommendationSummary {
	immediate := []string{}
	for i, issue := range summary.CriticalIssues {
		if i == immediateIssueRecs {
			break
		}
		immediate = append(immediate, issue.Recommendation)
	}
	for i, rec := range technical.Recommendations {
		if i == immediateTechnicalRecs {
			break
		}
		immediate = append(immediate, rec)
	}

	return domain.RecommendationSummary{
		Immediate:  immediate,
		ShortTerm:  phaseDeliverables(roadmap, 0, shortTermFiller),
		MediumTerm: phaseDeliverables(roadmap, 1, mediumTermFiller),
		LongTerm:   phaseDeliverables(roadmap, 2, longTermFiller),
		Strategic:  append([]string{}, strategicRecommendations...),
	}
}

// phaseDeliverables returns the deliverables of phase idx followed by filler.
// A missing phase contributes no deliverables.
func phaseDeliverables(roadmap domain.RemediationRoadmap, idx int, filler []string) []string {
	out := []string{}
	if idx < len(roadmap.Phases) {
		out = append(out, roadmap.Phases[idx].Deliverables...)
	}
	return append(out, filler...)
}
