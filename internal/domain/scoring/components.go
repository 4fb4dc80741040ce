package scoring

import (
	"math"

	"github.com/bleready/bleready/internal/domain"
)

// ScoreNative averages the iOS and Android platform scores.
// A missing platform counts as 0.
func ScoreNative(n *domain.NativeModuleAnalysis) float64 {
	if n == nil {
		return 0
	}
	return (platformScore(n.IOS) + platformScore(n.Android)) / 2
}

func platformScore(p *domain.PlatformAnalysis) float64 {
	if p == nil {
		return 0
	}
	switch p.OverallStatus {
	case domain.RatingPass:
		return 1
	case domain.RatingConditional:
		return 0.7
	default:
		return 0
	}
}

// ScoreBridge averages the bridge quality tier and its security tier.
func ScoreBridge(b *domain.BridgeLayerAnalysis) float64 {
	if b == nil {
		return 0
	}
	var security domain.SecurityTier
	if b.SecurityValidation != nil {
		security = b.SecurityValidation.OverallSecurity
	}
	return (qualityScore(b.OverallQuality) + securityTierScore(security)) / 2
}

func qualityScore(q domain.QualityTier) float64 {
	switch q {
	case domain.QualityExcellent:
		return 1
	case domain.QualityGood:
		return 0.8
	case domain.QualityNeedsImprovement:
		return 0.6
	case domain.QualityPoor:
		return 0.3
	default:
		return 0
	}
}

func securityTierScore(s domain.SecurityTier) float64 {
	switch s {
	case domain.SecuritySecure:
		return 1
	case domain.SecurityModerate:
		return 0.7
	default:
		return 0.3
	}
}

// ScoreDatabase averages function validation and the security audit tier.
// Function validation is 1 only when every validated function is SECURE;
// an empty list is vacuously secure.
func ScoreDatabase(d *domain.DatabaseAnalysis) float64 {
	if d == nil {
		return 0
	}
	functions := 1.0
	for _, fn := range d.FunctionValidations {
		if fn.SecurityRating != domain.SecuritySecure {
			functions = 0.7
			break
		}
	}
	var audit domain.SecurityTier
	if d.SecurityAudit != nil {
		audit = d.SecurityAudit.OverallSecurity
	}
	return (functions + securityTierScore(audit)) / 2
}

// ScoreSecurity scores the SECURITY-tagged issues: 1 with none, 0 if any is
// CRITICAL, otherwise 1 - 0.2 per issue with a floor of 0.3.
func ScoreSecurity(issues []domain.CriticalIssue) float64 {
	count := 0
	for _, issue := range issues {
		if issue.Component != domain.ComponentSecurity {
			continue
		}
		if issue.Category == domain.CategoryCritical {
			return 0
		}
		count++
	}
	if count == 0 {
		return 1
	}
	return math.Max(0.3, 1-0.2*float64(count))
}

// ScorePerformance maps the overall performance tier; an unreported tier scores 0.5.
func ScorePerformance(p *domain.PerformanceAnalysis) float64 {
	if p == nil {
		return 0
	}
	switch p.OverallPerformance {
	case domain.PerformanceExcellent:
		return 1
	case domain.PerformanceGood:
		return 0.8
	case domain.PerformanceAcceptable:
		return 0.6
	case domain.PerformancePoor:
		return 0.3
	default:
		return 0.5
	}
}

// ScoreConfiguration maps the configuration readiness; an unreported value scores 0.5.
func ScoreConfiguration(c *domain.ConfigurationAudit) float64 {
	if c == nil {
		return 0
	}
	switch c.OverallReadiness {
	case domain.ConfigReady:
		return 1
	case domain.ConfigNeedsConfiguration:
		return 0.7
	case domain.ConfigMissingCritical:
		return 0.3
	default:
		return 0.5
	}
}

// ScoreComponents runs all six component scorers.
func ScoreComponents(r *domain.ValidationResult) domain.ComponentScores {
	return domain.ComponentScores{
		Native:        ScoreNative(r.NativeModules),
		Bridge:        ScoreBridge(r.BridgeLayer),
		Database:      ScoreDatabase(r.Database),
		Security:      ScoreSecurity(r.CriticalIssues),
		Performance:   ScorePerformance(r.Performance),
		Configuration: ScoreConfiguration(r.Configuration),
	}
}
