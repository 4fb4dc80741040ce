// Package summary implements the executive summary engine: health rating,
// top issue ranking, the Go/No-Go decision, risk assessment and confidence.
package summary

import (
	"time"

	"github.com/bleready/bleready/internal/domain"
	"github.com/bleready/bleready/internal/domain/scoring"
)

// Summarize reduces a validation result to an executive summary.
// The result must already have passed Validate.
func Summarize(r *domain.ValidationResult, now time.Time) domain.ExecutiveSummary {
	health := scoring.RateHealth(scoring.ScoreComponents(r))

	return domain.ExecutiveSummary{
		GeneratedAt:          now,
		Version:              r.Version,
		ExecutionID:          r.ExecutionID,
		SystemHealthRating:   health,
		CriticalIssues:       TopCriticalIssues(r.CriticalIssues),
		GoNoGoRecommendation: Decide(r.CriticalIssues, health),
		RiskAssessment:       AssessRisk(r.CriticalIssues),
		ConfidenceLevel:      AssessConfidence(r),
		KeyMetrics:           keyMetrics(r),
	}
}

func keyMetrics(r *domain.ValidationResult) domain.KeyMetrics {
	byCategory := make(map[domain.Category]int, len(domain.Categories))
	for _, c := range domain.Categories {
		byCategory[c] = 0
	}
	for _, issue := range r.CriticalIssues {
		byCategory[issue.Category]++
	}
	return domain.KeyMetrics{
		TotalIssues:      len(r.CriticalIssues),
		BlockerCount:     len(r.Blockers()),
		IssuesByCategory: byCategory,
		ComponentsTested: r.PresentComponents(),
	}
}
