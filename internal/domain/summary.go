package domain

import "time"

// ComponentScores holds one score in [0,1] per scored component.
// Zero means the component was missing or failed outright.
type ComponentScores struct {
	Native        float64 `json:"native"`
	Bridge        float64 `json:"bridge"`
	Database      float64 `json:"database"`
	Security      float64 `json:"security"`
	Performance   float64 `json:"performance"`
	Configuration float64 `json:"configuration"`
}

// Values returns the scores in a fixed order.
func (c ComponentScores) Values() []float64 {
	return []float64{c.Native, c.Bridge, c.Database, c.Security, c.Performance, c.Configuration}
}

// NamedScore pairs a component label with its score.
type NamedScore struct {
	Name  string
	Score float64
}

// Named returns the scores with their labels, in the same order as Values.
func (c ComponentScores) Named() []NamedScore {
	return []NamedScore{
		{"native", c.Native},
		{"bridge", c.Bridge},
		{"database", c.Database},
		{"security", c.Security},
		{"performance", c.Performance},
		{"configuration", c.Configuration},
	}
}

// SystemHealthRating is the overall health classification.
type SystemHealthRating struct {
	Rating          Rating          `json:"rating"`
	Score           float64         `json:"score"`
	ComponentScores ComponentScores `json:"component_scores"`
	Summary         string          `json:"summary"`
}

// GoNoGoRecommendation is the deployment verdict with its supporting detail.
type GoNoGoRecommendation struct {
	Recommendation Recommendation `json:"recommendation"`
	Justification  string         `json:"justification"`
	Conditions     []string       `json:"conditions"`
	Timeline       string         `json:"timeline"`
	RiskLevel      RiskLevel      `json:"risk_level"`
}

// RiskDimension is one leveled risk bucket. Every summary bucket and report
// dimension shares this shape.
type RiskDimension struct {
	Level      RiskLevel `json:"level"`
	Issues     []string  `json:"issues"`
	Impact     string    `json:"impact"`
	Mitigation string    `json:"mitigation"`
	Timeline   string    `json:"timeline"`
}

// RiskAssessment is the summary-level risk view.
type RiskAssessment struct {
	Security         RiskDimension `json:"security"`
	Performance      RiskDimension `json:"performance"`
	Functional       RiskDimension `json:"functional"`
	OverallRiskLevel RiskLevel     `json:"overall_risk_level"`
}

// ConfidenceLevel describes how far the validation result itself can be trusted.
type ConfidenceLevel struct {
	Level   ConfidenceTier `json:"level"`
	Score   float64        `json:"score"`
	Factors []string       `json:"factors"`
}

// KeyMetrics are headline counts over the full issue list.
type KeyMetrics struct {
	TotalIssues      int              `json:"total_issues"`
	BlockerCount     int              `json:"blocker_count"`
	IssuesByCategory map[Category]int `json:"issues_by_category"`
	ComponentsTested int              `json:"components_tested"`
}

// ExecutiveSummary is the stakeholder-facing digest of a validation run.
type ExecutiveSummary struct {
	GeneratedAt          time.Time            `json:"generated_at"`
	Version              string               `json:"version"`
	ExecutionID          string               `json:"execution_id"`
	SystemHealthRating   SystemHealthRating   `json:"system_health_rating"`
	CriticalIssues       []RankedIssue        `json:"critical_issues"`
	GoNoGoRecommendation GoNoGoRecommendation `json:"go_no_go_recommendation"`
	RiskAssessment       RiskAssessment       `json:"risk_assessment"`
	ConfidenceLevel      ConfidenceLevel      `json:"confidence_level"`
	KeyMetrics           KeyMetrics           `json:"key_metrics"`
}
