package domain

// Rating is a PASS/CONDITIONAL/FAIL classification, used for platform status,
// overall health and deployment readiness.
type Rating string

const (
	RatingPass        Rating = "PASS"
	RatingConditional Rating = "CONDITIONAL"
	RatingFail        Rating = "FAIL"
)

func (r Rating) validOrEmpty() bool {
	switch r {
	case "", RatingPass, RatingConditional, RatingFail:
		return true
	}
	return false
}

// Tier returns an ordinal for comparing ratings; higher is healthier.
func (r Rating) Tier() int {
	switch r {
	case RatingPass:
		return 2
	case RatingConditional:
		return 1
	default:
		return 0
	}
}

// QualityTier grades bridge layer implementation quality.
type QualityTier string

const (
	QualityExcellent        QualityTier = "EXCELLENT"
	QualityGood             QualityTier = "GOOD"
	QualityNeedsImprovement QualityTier = "NEEDS_IMPROVEMENT"
	QualityPoor             QualityTier = "POOR"
)

func (q QualityTier) validOrEmpty() bool {
	switch q {
	case "", QualityExcellent, QualityGood, QualityNeedsImprovement, QualityPoor:
		return true
	}
	return false
}

// SecurityTier grades a security audit or a single validated function.
type SecurityTier string

const (
	SecuritySecure     SecurityTier = "SECURE"
	SecurityModerate   SecurityTier = "MODERATE"
	SecurityVulnerable SecurityTier = "VULNERABLE"
)

func (s SecurityTier) validOrEmpty() bool {
	switch s {
	case "", SecuritySecure, SecurityModerate, SecurityVulnerable:
		return true
	}
	return false
}

// PerformanceTier grades overall BLE performance.
type PerformanceTier string

const (
	PerformanceExcellent  PerformanceTier = "EXCELLENT"
	PerformanceGood       PerformanceTier = "GOOD"
	PerformanceAcceptable PerformanceTier = "ACCEPTABLE"
	PerformancePoor       PerformanceTier = "POOR"
)

func (p PerformanceTier) validOrEmpty() bool {
	switch p {
	case "", PerformanceExcellent, PerformanceGood, PerformanceAcceptable, PerformancePoor:
		return true
	}
	return false
}

// ConfigReadiness grades the deployment configuration audit.
type ConfigReadiness string

const (
	ConfigReady              ConfigReadiness = "READY"
	ConfigNeedsConfiguration ConfigReadiness = "NEEDS_CONFIGURATION"
	ConfigMissingCritical    ConfigReadiness = "MISSING_CRITICAL"
)

func (c ConfigReadiness) validOrEmpty() bool {
	switch c {
	case "", ConfigReady, ConfigNeedsConfiguration, ConfigMissingCritical:
		return true
	}
	return false
}

// RiskLevel is the LOW/MEDIUM/HIGH scale shared by every risk dimension.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Valid reports whether the level is one of LOW, MEDIUM or HIGH.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Recommendation is the final deployment verdict.
type Recommendation string

const (
	RecommendGo            Recommendation = "GO"
	RecommendConditionalGo Recommendation = "CONDITIONAL_GO"
	RecommendNoGo          Recommendation = "NO_GO"
)

// Valid reports whether the verdict is one of GO, CONDITIONAL_GO or NO_GO.
func (r Recommendation) Valid() bool {
	switch r {
	case RecommendGo, RecommendConditionalGo, RecommendNoGo:
		return true
	}
	return false
}

// Rank orders verdicts; higher is more permissive.
func (r Recommendation) Rank() int {
	switch r {
	case RecommendGo:
		return 2
	case RecommendConditionalGo:
		return 1
	default:
		return 0
	}
}

// ConfidenceTier is the trust level assigned to a validation result.
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "HIGH"
	ConfidenceMedium ConfidenceTier = "MEDIUM"
	ConfidenceLow    ConfidenceTier = "LOW"
)
