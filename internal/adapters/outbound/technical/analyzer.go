package technical

import (
	"fmt"

	"github.com/bleready/bleready/internal/domain"
	"github.com/bleready/bleready/internal/domain/scoring"
	"github.com/bleready/bleready/internal/domain/summary"
)

// Analyzer implements domain.TechnicalAnalyzer.
type Analyzer struct{}

// New creates an Analyzer.
func New() *Analyzer { return &Analyzer{} }

type section struct {
	component domain.Component
	label     string
	analyzed  bool
	score     float64
	findings  []string
}

// GenerateTechnicalReport analyzes each of the six optional sub-results.
func (a *Analyzer) GenerateTechnicalReport(r *domain.ValidationResult) (domain.TechnicalAnalysisReport, error) {
	sections := sectionsFor(r)

	analyses := make([]domain.ComponentAnalysis, 0, len(sections))
	analyzed := 0
	for _, s := range sections {
		ca := domain.ComponentAnalysis{
			Component: s.component,
			Analyzed:  s.analyzed,
			Score:     s.score,
			Status:    statusFor(s.score),
			Findings:  append([]string{}, s.findings...),
		}
		if s.analyzed {
			analyzed++
		} else {
			ca.Findings = append(ca.Findings, fmt.Sprintf("%s was not analyzed", s.label))
		}
		for _, issue := range r.IssuesFor(s.component) {
			ca.Findings = append(ca.Findings, fmt.Sprintf("[%s] %s", issue.Category, issue.Title))
		}
		analyses = append(analyses, ca)
	}

	return domain.TechnicalAnalysisReport{
		ComponentAnalyses:    analyses,
		Recommendations:      recommendations(r, sections),
		AnalysisCompleteness: float64(analyzed) / domain.ComponentCount * 100,
	}, nil
}

func sectionsFor(r *domain.ValidationResult) []section {
	native := section{component: domain.ComponentNative, label: "Native modules", analyzed: r.NativeModules != nil, score: scoring.ScoreNative(r.NativeModules)}
	if n := r.NativeModules; n != nil {
		if n.IOS != nil {
			native.findings = append(native.findings, prefixed("iOS", n.IOS.Findings)...)
		}
		if n.Android != nil {
			native.findings = append(native.findings, prefixed("Android", n.Android.Findings)...)
		}
	}

	bridge := section{component: domain.ComponentBridge, label: "Bridge layer", analyzed: r.BridgeLayer != nil, score: scoring.ScoreBridge(r.BridgeLayer)}
	if b := r.BridgeLayer; b != nil {
		bridge.findings = append(bridge.findings, b.Findings...)
		if b.SecurityValidation != nil {
			bridge.findings = append(bridge.findings, prefixed("Vulnerability", b.SecurityValidation.Vulnerabilities)...)
		}
	}

	database := section{component: domain.ComponentDatabase, label: "Database", analyzed: r.Database != nil, score: scoring.ScoreDatabase(r.Database)}
	if d := r.Database; d != nil {
		for _, fn := range d.FunctionValidations {
			if fn.SecurityRating != domain.SecuritySecure {
				database.findings = append(database.findings, fmt.Sprintf("Function %s rated %s", fn.Name, orUnknown(string(fn.SecurityRating))))
			}
		}
	}

	simulation := section{component: domain.ComponentSimulation, label: "End-to-end simulation", analyzed: r.Simulation != nil, score: simulationScore(r.Simulation)}
	if s := r.Simulation; s != nil {
		if s.OfficerFlow != nil {
			simulation.findings = append(simulation.findings, prefixed("Officer flow", s.OfficerFlow.Failures)...)
		}
		if s.MemberFlow != nil {
			simulation.findings = append(simulation.findings, prefixed("Member flow", s.MemberFlow.Failures)...)
		}
		for _, es := range s.ErrorScenarios {
			if !es.HandledGracefully {
				simulation.findings = append(simulation.findings, fmt.Sprintf("Error scenario %q not handled gracefully", es.Name))
			}
		}
	}

	performance := section{component: domain.ComponentPerformance, label: "Performance", analyzed: r.Performance != nil, score: scoring.ScorePerformance(r.Performance)}
	if p := r.Performance; p != nil {
		performance.findings = append(performance.findings, prefixed("Bottleneck", p.Bottlenecks)...)
	}

	configuration := section{component: domain.ComponentConfig, label: "Configuration", analyzed: r.Configuration != nil, score: scoring.ScoreConfiguration(r.Configuration)}
	if c := r.Configuration; c != nil {
		configuration.findings = append(configuration.findings, prefixed("Missing", c.MissingItems)...)
	}

	return []section{native, bridge, database, simulation, performance, configuration}
}

// simulationScore is the fraction of flows and error handling that passed.
func simulationScore(s *domain.SimulationResult) float64 {
	if s == nil {
		return 0
	}
	passed := 0
	if s.OfficerFlow != nil && s.OfficerFlow.Success {
		passed++
	}
	if s.MemberFlow != nil && s.MemberFlow.Success {
		passed++
	}
	graceful := true
	for _, es := range s.ErrorScenarios {
		graceful = graceful && es.HandledGracefully
	}
	if graceful {
		passed++
	}
	return float64(passed) / 3
}

func statusFor(score float64) domain.Rating {
	switch {
	case score >= 0.9:
		return domain.RatingPass
	case score >= 0.7:
		return domain.RatingConditional
	default:
		return domain.RatingFail
	}
}

// recommendations lists CRITICAL and HIGH issue recommendations in priority
// order, then one per component that was not analyzed. Duplicates are dropped.
func recommendations(r *domain.ValidationResult, sections []section) []string {
	seen := make(map[string]bool)
	out := []string{}
	add := func(rec string) {
		if rec == "" || seen[rec] {
			return
		}
		seen[rec] = true
		out = append(out, rec)
	}

	for _, issue := range summary.RankIssues(r.CriticalIssues) {
		if issue.Category.Weight() >= domain.CategoryHigh.Weight() {
			add(issue.Recommendation)
		}
	}
	for _, s := range sections {
		if !s.analyzed {
			add(fmt.Sprintf("Run the %s validation before the next release", s.label))
		}
	}
	return out
}

func prefixed(prefix string, items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, prefix+": "+it)
	}
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return "UNKNOWN"
	}
	return s
}
