package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedResult is wrapped by every shape violation found in a ValidationResult.
var ErrMalformedResult = errors.New("malformed validation result")

// ValidationResult is the aggregate produced by the upstream BLE validation pipeline.
// A nil sub-result means that component was not analyzed.
type ValidationResult struct {
	Version              string                `yaml:"version"                 json:"version"`
	ExecutionID          string                `yaml:"execution_id"            json:"execution_id"`
	Timestamp            time.Time             `yaml:"timestamp"               json:"timestamp"`
	TotalExecutionTimeMs *int64                `yaml:"total_execution_time_ms" json:"total_execution_time_ms,omitempty"`
	NativeModules        *NativeModuleAnalysis `yaml:"native_modules"          json:"native_modules,omitempty"`
	BridgeLayer          *BridgeLayerAnalysis  `yaml:"bridge_layer"            json:"bridge_layer,omitempty"`
	Database             *DatabaseAnalysis     `yaml:"database"                json:"database,omitempty"`
	Simulation           *SimulationResult     `yaml:"simulation"              json:"simulation,omitempty"`
	Performance          *PerformanceAnalysis  `yaml:"performance"             json:"performance,omitempty"`
	Configuration        *ConfigurationAudit   `yaml:"configuration"           json:"configuration,omitempty"`
	CriticalIssues       []CriticalIssue       `yaml:"critical_issues"         json:"critical_issues"`
}

// NativeModuleAnalysis holds the per-platform native module results.
type NativeModuleAnalysis struct {
	IOS     *PlatformAnalysis `yaml:"ios"     json:"ios,omitempty"`
	Android *PlatformAnalysis `yaml:"android" json:"android,omitempty"`
}

type PlatformAnalysis struct {
	OverallStatus Rating   `yaml:"overall_status" json:"overall_status"`
	Findings      []string `yaml:"findings"       json:"findings,omitempty"`
}

// BridgeLayerAnalysis holds the JS/native bridge results.
type BridgeLayerAnalysis struct {
	OverallQuality     QualityTier         `yaml:"overall_quality"     json:"overall_quality"`
	SecurityValidation *SecurityValidation `yaml:"security_validation" json:"security_validation,omitempty"`
	Findings           []string            `yaml:"findings"            json:"findings,omitempty"`
}

type SecurityValidation struct {
	OverallSecurity SecurityTier `yaml:"overall_security" json:"overall_security"`
	Vulnerabilities []string     `yaml:"vulnerabilities"  json:"vulnerabilities,omitempty"`
}

// DatabaseAnalysis holds the database function and audit results.
type DatabaseAnalysis struct {
	FunctionValidations []FunctionValidation `yaml:"function_validations" json:"function_validations"`
	SecurityAudit       *SecurityValidation  `yaml:"security_audit"       json:"security_audit,omitempty"`
}

type FunctionValidation struct {
	Name           string       `yaml:"name"            json:"name"`
	SecurityRating SecurityTier `yaml:"security_rating" json:"security_rating"`
}

// SimulationResult holds the end-to-end flow simulation results.
type SimulationResult struct {
	OfficerFlow    *FlowResult     `yaml:"officer_flow"    json:"officer_flow,omitempty"`
	MemberFlow     *FlowResult     `yaml:"member_flow"     json:"member_flow,omitempty"`
	ErrorScenarios []ErrorScenario `yaml:"error_scenarios" json:"error_scenarios"`
}

type FlowResult struct {
	Success    bool     `yaml:"success"     json:"success"`
	DurationMs int64    `yaml:"duration_ms" json:"duration_ms,omitempty"`
	Failures   []string `yaml:"failures"    json:"failures,omitempty"`
}

type ErrorScenario struct {
	Name              string `yaml:"name"               json:"name"`
	HandledGracefully bool   `yaml:"handled_gracefully" json:"handled_gracefully"`
}

// PerformanceAnalysis holds the performance benchmark results.
type PerformanceAnalysis struct {
	OverallPerformance PerformanceTier `yaml:"overall_performance" json:"overall_performance"`
	Bottlenecks        []string        `yaml:"bottlenecks"         json:"bottlenecks,omitempty"`
}

// ConfigurationAudit holds the deployment configuration audit results.
type ConfigurationAudit struct {
	OverallReadiness ConfigReadiness `yaml:"overall_readiness" json:"overall_readiness"`
	MissingItems     []string        `yaml:"missing_items"     json:"missing_items,omitempty"`
}

// ComponentCount is the number of optional sub-results a ValidationResult can carry.
const ComponentCount = 6

// PresentComponents counts the optional sub-results that are present.
func (r *ValidationResult) PresentComponents() int {
	n := 0
	for _, present := range []bool{
		r.NativeModules != nil,
		r.BridgeLayer != nil,
		r.Database != nil,
		r.Simulation != nil,
		r.Performance != nil,
		r.Configuration != nil,
	} {
		if present {
			n++
		}
	}
	return n
}

// IssuesFor returns the issues tagged with any of the given components, in input order.
func (r *ValidationResult) IssuesFor(components ...Component) []CriticalIssue {
	var out []CriticalIssue
	for _, issue := range r.CriticalIssues {
		for _, c := range components {
			if issue.Component == c {
				out = append(out, issue)
				break
			}
		}
	}
	return out
}

// Blockers returns the deployment-blocking issues, in input order.
func (r *ValidationResult) Blockers() []CriticalIssue {
	var out []CriticalIssue
	for _, issue := range r.CriticalIssues {
		if issue.DeploymentBlocker {
			out = append(out, issue)
		}
	}
	return out
}

// Validate checks every enum-valued field against its closed set.
// Empty tier values are allowed and score as "unknown"; unrecognized ones are rejected.
func (r *ValidationResult) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: result is nil", ErrMalformedResult)
	}

	seen := make(map[string]int, len(r.CriticalIssues))
	for i, issue := range r.CriticalIssues {
		if err := issue.validate(); err != nil {
			return fmt.Errorf("%w: critical_issues[%d]: %v", ErrMalformedResult, i, err)
		}
		if issue.ID == "" {
			continue
		}
		if j, dup := seen[issue.ID]; dup {
			return fmt.Errorf("%w: critical_issues[%d]: id %q already used by critical_issues[%d]", ErrMalformedResult, i, issue.ID, j)
		}
		seen[issue.ID] = i
	}

	if n := r.NativeModules; n != nil {
		if n.IOS != nil && !n.IOS.OverallStatus.validOrEmpty() {
			return fmt.Errorf("%w: native_modules.ios.overall_status %q", ErrMalformedResult, n.IOS.OverallStatus)
		}
		if n.Android != nil && !n.Android.OverallStatus.validOrEmpty() {
			return fmt.Errorf("%w: native_modules.android.overall_status %q", ErrMalformedResult, n.Android.OverallStatus)
		}
	}

	if b := r.BridgeLayer; b != nil {
		if !b.OverallQuality.validOrEmpty() {
			return fmt.Errorf("%w: bridge_layer.overall_quality %q", ErrMalformedResult, b.OverallQuality)
		}
		if b.SecurityValidation != nil && !b.SecurityValidation.OverallSecurity.validOrEmpty() {
			return fmt.Errorf("%w: bridge_layer.security_validation.overall_security %q", ErrMalformedResult, b.SecurityValidation.OverallSecurity)
		}
	}

	if d := r.Database; d != nil {
		for i, fn := range d.FunctionValidations {
			if !fn.SecurityRating.validOrEmpty() {
				return fmt.Errorf("%w: database.function_validations[%d].security_rating %q", ErrMalformedResult, i, fn.SecurityRating)
			}
		}
		if d.SecurityAudit != nil && !d.SecurityAudit.OverallSecurity.validOrEmpty() {
			return fmt.Errorf("%w: database.security_audit.overall_security %q", ErrMalformedResult, d.SecurityAudit.OverallSecurity)
		}
	}

	if p := r.Performance; p != nil && !p.OverallPerformance.validOrEmpty() {
		return fmt.Errorf("%w: performance.overall_performance %q", ErrMalformedResult, p.OverallPerformance)
	}

	if c := r.Configuration; c != nil && !c.OverallReadiness.validOrEmpty() {
		return fmt.Errorf("%w: configuration.overall_readiness %q", ErrMalformedResult, c.OverallReadiness)
	}

	return nil
}
