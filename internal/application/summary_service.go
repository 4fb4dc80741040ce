package application

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bleready/bleready/internal/domain"
	"github.com/bleready/bleready/internal/domain/summary"
)

// Option configures a service.
type Option func(*options)

type options struct {
	logger *slog.Logger
	now    func() time.Time
}

// WithLogger sets the structured logger. Services discard logs by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now, the only source of non-determinism in a report.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SummaryService produces executive summaries. It holds no mutable state and
// is safe for concurrent use.
type SummaryService struct {
	opts options
}

func NewSummaryService(opts ...Option) *SummaryService {
	return &SummaryService{opts: buildOptions(opts)}
}

// Summarize validates the result and reduces it to an executive summary.
func (s *SummaryService) Summarize(result *domain.ValidationResult) (*domain.ExecutiveSummary, error) {
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("validating result: %w", err)
	}
	return s.summarize(result, s.opts.now().UTC()), nil
}

// summarize assumes result has been validated.
func (s *SummaryService) summarize(result *domain.ValidationResult, at time.Time) *domain.ExecutiveSummary {
	es := summary.Summarize(result, at)

	s.opts.logger.Debug("executive summary computed",
		slog.String("execution_id", result.ExecutionID),
		slog.String("rating", string(es.SystemHealthRating.Rating)),
		slog.Float64("score", es.SystemHealthRating.Score),
		slog.String("recommendation", string(es.GoNoGoRecommendation.Recommendation)),
		slog.String("overall_risk", string(es.RiskAssessment.OverallRiskLevel)),
		slog.String("confidence", string(es.ConfidenceLevel.Level)),
	)
	return &es
}
