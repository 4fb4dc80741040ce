package domain

import "time"

// ReportMetadata identifies a generated report.
type ReportMetadata struct {
	ReportID       string    `json:"report_id"`
	GeneratedAt    time.Time `json:"generated_at"`
	Version        string    `json:"version"`
	ExecutionID    string    `json:"execution_id"`
	SourceRevision string    `json:"source_revision,omitempty"`
}

// RiskAnalysis is the cross-cutting, report-level risk view.
type RiskAnalysis struct {
	Security         RiskDimension `json:"security"`
	Operational      RiskDimension `json:"operational"`
	Technical        RiskDimension `json:"technical"`
	Business         RiskDimension `json:"business"`
	OverallRiskLevel RiskLevel     `json:"overall_risk_level"`
}

// Levels returns the four dimension levels in a fixed order.
func (r RiskAnalysis) Levels() []RiskLevel {
	return []RiskLevel{r.Security.Level, r.Operational.Level, r.Technical.Level, r.Business.Level}
}

// RecommendationSummary groups recommendations by horizon.
type RecommendationSummary struct {
	Immediate  []string `json:"immediate"`
	ShortTerm  []string `json:"short_term"`
	MediumTerm []string `json:"medium_term"`
	LongTerm   []string `json:"long_term"`
	Strategic  []string `json:"strategic"`
}

// ComponentCoverage counts how many optional sub-results were analyzed.
type ComponentCoverage struct {
	Analyzed   int `json:"analyzed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// IssueStatistics are issue counts taken from the issue database.
type IssueStatistics struct {
	Total       int               `json:"total"`
	ByCategory  map[Category]int  `json:"by_category"`
	ByComponent map[Component]int `json:"by_component"`
}

// ValidationMetrics pass through execution and trust figures.
type ValidationMetrics struct {
	ExecutionTimeMs      *int64         `json:"execution_time_ms,omitempty"`
	ConfidenceLevel      ConfidenceTier `json:"confidence_level"`
	ConfidenceScore      float64        `json:"confidence_score"`
	AnalysisCompleteness float64        `json:"analysis_completeness"`
}

// ReportStatistics aggregates report-wide figures.
type ReportStatistics struct {
	ComponentCoverage   ComponentCoverage    `json:"component_coverage"`
	Issues              IssueStatistics      `json:"issues"`
	DeploymentReadiness ReadinessPercentages `json:"deployment_readiness"`
	ValidationMetrics   ValidationMetrics    `json:"validation_metrics"`
}

// ComprehensiveValidationReport is the full decision-support report.
type ComprehensiveValidationReport struct {
	Metadata            ReportMetadata               `json:"metadata"`
	ExecutiveSummary    ExecutiveSummary             `json:"executive_summary"`
	TechnicalAnalysis   TechnicalAnalysisReport      `json:"technical_analysis"`
	IssueTracking       IssueTracking                `json:"issue_tracking"`
	DeploymentChecklist DeploymentReadinessChecklist `json:"deployment_checklist"`
	RiskAnalysis        RiskAnalysis                 `json:"risk_analysis"`
	Recommendations     RecommendationSummary        `json:"recommendations"`
	NextSteps           []string                     `json:"next_steps"`
	Statistics          ReportStatistics             `json:"statistics"`
}
