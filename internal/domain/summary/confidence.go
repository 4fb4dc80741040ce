package summary

import "github.com/bleready/bleready/internal/domain"

// ConsistencyScore stands in for a cross-phase consistency check, which the
// upstream pipeline does not yet report.
const ConsistencyScore = 0.9

// defaultCoverage is used when no end-to-end simulation was run.
const defaultCoverage = 0.5

var confidenceFactors = map[domain.ConfidenceTier][]string{
	domain.ConfidenceHigh: {
		"Complete validation coverage across all components",
		"Consistent results across validation phases",
		"End-to-end flows and error scenarios verified",
	},
	domain.ConfidenceMedium: {
		"Most components validated",
		"Some gaps in validation or scenario coverage",
		"Verify key findings before deployment",
	},
	domain.ConfidenceLow: {
		"Significant gaps in validation data",
		"Incomplete component or scenario coverage",
		"Additional validation required before any deployment decision",
	},
}

// AssessConfidence averages completeness, consistency and coverage.
func AssessConfidence(r *domain.ValidationResult) domain.ConfidenceLevel {
	completeness := float64(r.PresentComponents()) / domain.ComponentCount
	coverage := scenarioCoverage(r.Simulation)
	score := (completeness + ConsistencyScore + coverage) / 3

	var tier domain.ConfidenceTier
	switch {
	case score >= 0.9:
		tier = domain.ConfidenceHigh
	case score >= 0.7:
		tier = domain.ConfidenceMedium
	default:
		tier = domain.ConfidenceLow
	}

	factors := make([]string, len(confidenceFactors[tier]))
	copy(factors, confidenceFactors[tier])
	return domain.ConfidenceLevel{Level: tier, Score: score, Factors: factors}
}

// scenarioCoverage is the fraction of officer flow success, member flow
// success and graceful handling of every error scenario that hold.
func scenarioCoverage(sim *domain.SimulationResult) float64 {
	if sim == nil {
		return defaultCoverage
	}
	held := 0
	if sim.OfficerFlow != nil && sim.OfficerFlow.Success {
		held++
	}
	if sim.MemberFlow != nil && sim.MemberFlow.Success {
		held++
	}
	graceful := true
	for _, s := range sim.ErrorScenarios {
		if !s.HandledGracefully {
			graceful = false
			break
		}
	}
	if graceful {
		held++
	}
	return float64(held) / 3
}
