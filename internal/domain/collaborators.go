package domain

// TechnicalAnalysisReport is produced by a TechnicalAnalyzer.
type TechnicalAnalysisReport struct {
	ComponentAnalyses    []ComponentAnalysis `json:"component_analyses"`
	Recommendations      []string            `json:"recommendations"`
	AnalysisCompleteness float64             `json:"analysis_completeness"`
}

// ComponentAnalysis is the technical view of one analyzed component.
type ComponentAnalysis struct {
	Component Component `json:"component"`
	Analyzed  bool      `json:"analyzed"`
	Score     float64   `json:"score"`
	Status    Rating    `json:"status"`
	Findings  []string  `json:"findings"`
}

// TrackedIssue is a CriticalIssue registered in the issue database.
type TrackedIssue struct {
	ID       string        `json:"id"`
	Priority int           `json:"priority"`
	Status   IssueStatus   `json:"status"`
	Issue    CriticalIssue `json:"issue"`
}

// IssueStatus is the lifecycle state of a tracked issue.
type IssueStatus string

const (
	IssueOpen       IssueStatus = "OPEN"
	IssueInProgress IssueStatus = "IN_PROGRESS"
	IssueResolved   IssueStatus = "RESOLVED"
)

// IssueDatabase is the registry of every issue in a validation run.
type IssueDatabase struct {
	Issues            []TrackedIssue    `json:"issues"`
	TotalIssues       int               `json:"total_issues"`
	IssuesByCategory  map[Category]int  `json:"issues_by_category"`
	IssuesByComponent map[Component]int `json:"issues_by_component"`
}

// PrioritizedIssueList buckets tracked issues by urgency.
type PrioritizedIssueList struct {
	Immediate  []TrackedIssue `json:"immediate"`
	ShortTerm  []TrackedIssue `json:"short_term"`
	MediumTerm []TrackedIssue `json:"medium_term"`
	LongTerm   []TrackedIssue `json:"long_term"`
}

// RemediationPhase is one step of a remediation roadmap.
type RemediationPhase struct {
	Name         string   `json:"name"`
	Duration     string   `json:"duration"`
	IssueIDs     []string `json:"issue_ids"`
	Deliverables []string `json:"deliverables"`
}

// RemediationRoadmap orders remediation work into phases.
type RemediationRoadmap struct {
	Phases        []RemediationPhase `json:"phases"`
	TotalDuration string             `json:"total_duration"`
}

// Milestone is a progress checkpoint, one per roadmap phase.
type Milestone struct {
	Name        string `json:"name"`
	Phase       string `json:"phase"`
	TotalIssues int    `json:"total_issues"`
	Resolved    int    `json:"resolved"`
}

// ProgressTracker reports remediation progress against the roadmap.
type ProgressTracker struct {
	TotalIssues          int         `json:"total_issues"`
	Open                 int         `json:"open"`
	InProgress           int         `json:"in_progress"`
	Resolved             int         `json:"resolved"`
	CompletionPercentage float64     `json:"completion_percentage"`
	Milestones           []Milestone `json:"milestones"`
}

// IssueTracking bundles the four issue-tracker outputs.
type IssueTracking struct {
	Database    IssueDatabase        `json:"database"`
	Prioritized PrioritizedIssueList `json:"prioritized"`
	Roadmap     RemediationRoadmap   `json:"roadmap"`
	Progress    ProgressTracker      `json:"progress"`
}

// ChecklistItem is one deployment prerequisite.
type ChecklistItem struct {
	Name     string `json:"name"`
	Area     string `json:"area"`
	Critical bool   `json:"critical"`
	Complete bool   `json:"complete"`
}

// ReadinessPercentages are the per-area completion ratios of a checklist, 0..100.
type ReadinessPercentages struct {
	Overall       float64 `json:"overall"`
	CriticalItems float64 `json:"critical_items"`
	Security      float64 `json:"security"`
	Operational   float64 `json:"operational"`
	Monitoring    float64 `json:"monitoring"`
}

// DeploymentReadinessChecklist is produced by a ChecklistGenerator.
type DeploymentReadinessChecklist struct {
	OverallReadiness     Rating               `json:"overall_readiness"`
	RiskLevel            RiskLevel            `json:"risk_level"`
	Items                []ChecklistItem      `json:"items"`
	CriticalMissingItems []string             `json:"critical_missing_items"`
	MonitoringGaps       []string             `json:"monitoring_gaps"`
	Readiness            ReadinessPercentages `json:"readiness"`
}
