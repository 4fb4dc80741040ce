package application

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bleready/bleready/internal/domain"
	"github.com/bleready/bleready/internal/domain/synthesis"
)

// ReportService orchestrates report generation:
// validate → executive summary → collaborators → risk, recommendations, next steps, statistics.
type ReportService struct {
	summary   *SummaryService
	technical domain.TechnicalAnalyzer
	tracker   domain.IssueTracker
	checklist domain.ChecklistGenerator
	opts      options
}

func NewReportService(
	technical domain.TechnicalAnalyzer,
	tracker domain.IssueTracker,
	checklist domain.ChecklistGenerator,
	opts ...Option,
) *ReportService {
	return &ReportService{
		summary:   NewSummaryService(opts...),
		technical: technical,
		tracker:   tracker,
		checklist: checklist,
		opts:      buildOptions(opts),
	}
}

// GenerateReport builds the full report. The clock is read once; everything
// else is a pure function of result and the collaborator outputs.
func (s *ReportService) GenerateReport(result *domain.ValidationResult) (*domain.ComprehensiveValidationReport, error) {
	// 0. Reject malformed input
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("validating result: %w", err)
	}
	at := s.opts.now().UTC()
	id, err := reportID(result.ExecutionID, at)
	if err != nil {
		return nil, fmt.Errorf("generating report id: %w", err)
	}

	// 1. Executive summary
	es := s.summary.summarize(result, at)

	// 2. Collaborators
	technical, err := s.technical.GenerateTechnicalReport(result)
	if err != nil {
		return nil, fmt.Errorf("generating technical analysis: %w", err)
	}
	tracking, err := s.issueTracking(result)
	if err != nil {
		return nil, err
	}
	checklist, err := s.checklist.GenerateDeploymentChecklist(result)
	if err != nil {
		return nil, fmt.Errorf("generating deployment checklist: %w", err)
	}

	// 3. Cross-cutting synthesis
	verdict := es.GoNoGoRecommendation
	risk := synthesis.AnalyzeRisk(result, verdict, checklist)

	report := &domain.ComprehensiveValidationReport{
		Metadata: domain.ReportMetadata{
			ReportID:    id,
			GeneratedAt: at,
			Version:     result.Version,
			ExecutionID: result.ExecutionID,
		},
		ExecutiveSummary:    *es,
		TechnicalAnalysis:   technical,
		IssueTracking:       *tracking,
		DeploymentChecklist: checklist,
		RiskAnalysis:        risk,
		Recommendations:     synthesis.SynthesizeRecommendations(*es, technical, tracking.Roadmap),
		NextSteps:           synthesis.DeriveNextSteps(verdict, checklist, tracking.Roadmap),
		Statistics:          synthesis.ComputeStatistics(result, *es, technical, tracking.Database, checklist),
	}

	s.opts.logger.Info("report generated",
		slog.String("report_id", report.Metadata.ReportID),
		slog.String("execution_id", result.ExecutionID),
		slog.String("recommendation", string(verdict.Recommendation)),
		slog.String("overall_risk", string(risk.OverallRiskLevel)),
		slog.Int("issues", tracking.Database.TotalIssues),
		slog.Int("coverage_pct", report.Statistics.ComponentCoverage.Percentage),
	)
	return report, nil
}

// GenerateExecutiveSummary returns only the executive summary.
func (s *ReportService) GenerateExecutiveSummary(result *domain.ValidationResult) (*domain.ExecutiveSummary, error) {
	return s.summary.Summarize(result)
}

// GenerateTechnicalAnalysis returns only the technical analysis.
func (s *ReportService) GenerateTechnicalAnalysis(result *domain.ValidationResult) (*domain.TechnicalAnalysisReport, error) {
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("validating result: %w", err)
	}
	technical, err := s.technical.GenerateTechnicalReport(result)
	if err != nil {
		return nil, fmt.Errorf("generating technical analysis: %w", err)
	}
	return &technical, nil
}

// GenerateIssueTracking returns only the issue-tracking artifacts.
func (s *ReportService) GenerateIssueTracking(result *domain.ValidationResult) (*domain.IssueTracking, error) {
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("validating result: %w", err)
	}
	return s.issueTracking(result)
}

// GenerateDeploymentChecklist returns only the deployment checklist.
func (s *ReportService) GenerateDeploymentChecklist(result *domain.ValidationResult) (*domain.DeploymentReadinessChecklist, error) {
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("validating result: %w", err)
	}
	checklist, err := s.checklist.GenerateDeploymentChecklist(result)
	if err != nil {
		return nil, fmt.Errorf("generating deployment checklist: %w", err)
	}
	return &checklist, nil
}

// issueTracking runs the tracker pipeline: database → prioritized list → roadmap → progress.
func (s *ReportService) issueTracking(result *domain.ValidationResult) (*domain.IssueTracking, error) {
	db, err := s.tracker.GenerateIssueDatabase(result)
	if err != nil {
		return nil, fmt.Errorf("generating issue database: %w", err)
	}
	list, err := s.tracker.GeneratePrioritizedIssueList(db)
	if err != nil {
		return nil, fmt.Errorf("prioritizing issues: %w", err)
	}
	roadmap, err := s.tracker.GenerateRemediationRoadmap(list)
	if err != nil {
		return nil, fmt.Errorf("generating remediation roadmap: %w", err)
	}
	progress, err := s.tracker.GenerateProgressTracker(db, roadmap)
	if err != nil {
		return nil, fmt.Errorf("generating progress tracker: %w", err)
	}
	return &domain.IssueTracking{
		Database:    db,
		Prioritized: list,
		Roadmap:     roadmap,
		Progress:    progress,
	}, nil
}

// reportID derives a ULID from the generation time and the execution id, so
// regenerating a report for the same run at the same instant yields the same id.
// Times before the Unix epoch or past the ULID range are rejected.
func reportID(executionID string, at time.Time) (string, error) {
	if at.Before(time.Unix(0, 0)) {
		return "", ulid.ErrBigTime
	}
	seed := sha256.Sum256([]byte(executionID))
	id, err := ulid.New(ulid.Timestamp(at), bytes.NewReader(seed[:]))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
