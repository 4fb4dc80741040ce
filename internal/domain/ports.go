package domain

// ResultLoader reads a ValidationResult produced by the upstream pipeline.
type ResultLoader interface {
	Load(path string) (*ValidationResult, error)
}

// ConfigLoader loads tool configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// TechnicalAnalyzer produces the engineering-facing technical analysis.
type TechnicalAnalyzer interface {
	GenerateTechnicalReport(result *ValidationResult) (TechnicalAnalysisReport, error)
}

// IssueTracker turns raw issues into the tracking artifacts, each step feeding the next:
// database → prioritized list → remediation roadmap → progress tracker.
type IssueTracker interface {
	GenerateIssueDatabase(result *ValidationResult) (IssueDatabase, error)
	GeneratePrioritizedIssueList(db IssueDatabase) (PrioritizedIssueList, error)
	GenerateRemediationRoadmap(list PrioritizedIssueList) (RemediationRoadmap, error)
	GenerateProgressTracker(db IssueDatabase, roadmap RemediationRoadmap) (ProgressTracker, error)
}

// ChecklistGenerator produces the deployment-readiness checklist.
type ChecklistGenerator interface {
	GenerateDeploymentChecklist(result *ValidationResult) (DeploymentReadinessChecklist, error)
}

// GitInfo provides read-only git repository information.
type GitInfo interface {
	CommitHash(repoPath string) (string, error)
}
