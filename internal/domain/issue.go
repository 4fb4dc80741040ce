package domain

import "fmt"

// Category is the severity class of a critical issue.
type Category string

const (
	CategoryCritical Category = "CRITICAL"
	CategoryHigh     Category = "HIGH"
	CategoryMedium   Category = "MEDIUM"
	CategoryLow      Category = "LOW"
)

// Categories lists every category from most to least severe.
var Categories = []Category{CategoryCritical, CategoryHigh, CategoryMedium, CategoryLow}

// Weight ranks categories for prioritization: CRITICAL=4 down to LOW=1.
func (c Category) Weight() int {
	switch c {
	case CategoryCritical:
		return 4
	case CategoryHigh:
		return 3
	case CategoryMedium:
		return 2
	case CategoryLow:
		return 1
	default:
		return 0
	}
}

// Component names the subsystem an issue was raised against.
type Component string

const (
	ComponentNative      Component = "NATIVE"
	ComponentBridge      Component = "BRIDGE"
	ComponentDatabase    Component = "DATABASE"
	ComponentPerformance Component = "PERFORMANCE"
	ComponentSecurity    Component = "SECURITY"
	ComponentConfig      Component = "CONFIG"
	ComponentSimulation  Component = "SIMULATION"
	ComponentIntegration Component = "INTEGRATION"
)

// Components lists every known component tag.
var Components = []Component{
	ComponentNative, ComponentBridge, ComponentDatabase, ComponentPerformance,
	ComponentSecurity, ComponentConfig, ComponentSimulation, ComponentIntegration,
}

// Effort is the estimated remediation effort of an issue.
type Effort string

const (
	EffortLow    Effort = "LOW"
	EffortMedium Effort = "MEDIUM"
	EffortHigh   Effort = "HIGH"
)

// CriticalIssue is a single finding reported by an upstream validator.
// It is treated as immutable; derived annotations live on RankedIssue.
type CriticalIssue struct {
	ID                string    `yaml:"id"                 json:"id,omitempty"`
	Category          Category  `yaml:"category"           json:"category"`
	Component         Component `yaml:"component"          json:"component"`
	Title             string    `yaml:"title"              json:"title"`
	Description       string    `yaml:"description"        json:"description,omitempty"`
	DeploymentBlocker bool      `yaml:"deployment_blocker" json:"deployment_blocker"`
	EstimatedEffort   Effort    `yaml:"estimated_effort"   json:"estimated_effort"`
	Recommendation    string    `yaml:"recommendation"     json:"recommendation"`
}

func (i CriticalIssue) validate() error {
	if i.Category.Weight() == 0 {
		return fmt.Errorf("unknown category %q (valid: CRITICAL, HIGH, MEDIUM, LOW)", i.Category)
	}
	known := false
	for _, c := range Components {
		if i.Component == c {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown component %q", i.Component)
	}
	switch i.EstimatedEffort {
	case EffortLow, EffortMedium, EffortHigh:
	default:
		return fmt.Errorf("unknown estimated_effort %q (valid: LOW, MEDIUM, HIGH)", i.EstimatedEffort)
	}
	if i.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	return nil
}

// RankedIssue is a CriticalIssue annotated for the executive summary.
type RankedIssue struct {
	CriticalIssue      `yaml:",inline"`
	ImpactSummary      string `yaml:"impact_summary"      json:"impact_summary"`
	RemediationSummary string `yaml:"remediation_summary" json:"remediation_summary"`
}
