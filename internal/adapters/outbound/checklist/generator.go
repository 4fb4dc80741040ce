package checklist

import "github.com/bleready/bleready/internal/domain"

const (
	areaSecurity    = "security"
	areaOperational = "operational"
	areaMonitoring  = "monitoring"

	passReadiness = 80.0
)

// Generator implements domain.ChecklistGenerator.
type Generator struct{}

// New creates a Generator.
func New() *Generator { return &Generator{} }

// GenerateDeploymentChecklist evaluates the fixed deployment prerequisites.
func (g *Generator) GenerateDeploymentChecklist(r *domain.ValidationResult) (domain.DeploymentReadinessChecklist, error) {
	items := buildItems(r)

	cl := domain.DeploymentReadinessChecklist{
		Items:                items,
		CriticalMissingItems: []string{},
		MonitoringGaps:       []string{},
	}
	for _, it := range items {
		if it.Complete {
			continue
		}
		if it.Critical {
			cl.CriticalMissingItems = append(cl.CriticalMissingItems, it.Name)
		}
		if it.Area == areaMonitoring {
			cl.MonitoringGaps = append(cl.MonitoringGaps, it.Name)
		}
	}

	cl.Readiness = domain.ReadinessPercentages{
		Overall:       percentComplete(items, func(domain.ChecklistItem) bool { return true }),
		CriticalItems: percentComplete(items, func(it domain.ChecklistItem) bool { return it.Critical }),
		Security:      percentComplete(items, inArea(areaSecurity)),
		Operational:   percentComplete(items, inArea(areaOperational)),
		Monitoring:    percentComplete(items, inArea(areaMonitoring)),
	}

	switch missing := len(cl.CriticalMissingItems); {
	case missing == 0 && cl.Readiness.Overall >= passReadiness:
		cl.OverallReadiness, cl.RiskLevel = domain.RatingPass, domain.RiskLow
	case missing <= 1:
		cl.OverallReadiness, cl.RiskLevel = domain.RatingConditional, domain.RiskMedium
	default:
		cl.OverallReadiness, cl.RiskLevel = domain.RatingFail, domain.RiskHigh
	}
	return cl, nil
}

func buildItems(r *domain.ValidationResult) []domain.ChecklistItem {
	noCriticalSecurity := true
	for _, issue := range r.IssuesFor(domain.ComponentSecurity) {
		if issue.Category == domain.CategoryCritical {
			noCriticalSecurity = false
		}
	}

	bridgeSecure := r.BridgeLayer != nil && r.BridgeLayer.SecurityValidation != nil &&
		r.BridgeLayer.SecurityValidation.OverallSecurity == domain.SecuritySecure
	auditSecure := r.Database != nil && r.Database.SecurityAudit != nil &&
		r.Database.SecurityAudit.OverallSecurity == domain.SecuritySecure

	var ios, android *domain.PlatformAnalysis
	if r.NativeModules != nil {
		ios, android = r.NativeModules.IOS, r.NativeModules.Android
	}

	sim := r.Simulation
	flowsVerified := sim != nil && sim.OfficerFlow != nil && sim.OfficerFlow.Success &&
		sim.MemberFlow != nil && sim.MemberFlow.Success
	errorsHandled := sim != nil
	if sim != nil {
		for _, es := range sim.ErrorScenarios {
			errorsHandled = errorsHandled && es.HandledGracefully
		}
	}

	return []domain.ChecklistItem{
		{Name: "No open critical security issues", Area: areaSecurity, Critical: true, Complete: noCriticalSecurity},
		{Name: "Bridge layer security validated", Area: areaSecurity, Critical: true, Complete: bridgeSecure},
		{Name: "Database security audit passed", Area: areaSecurity, Critical: true, Complete: auditSecure},
		{Name: "iOS native module validated", Area: areaOperational, Critical: true, Complete: platformReady(ios)},
		{Name: "Android native module validated", Area: areaOperational, Critical: true, Complete: platformReady(android)},
		{Name: "Deployment configuration ready", Area: areaOperational, Critical: true,
			Complete: r.Configuration != nil && r.Configuration.OverallReadiness == domain.ConfigReady},
		{Name: "No deployment blockers", Area: areaOperational, Critical: true, Complete: len(r.Blockers()) == 0},
		{Name: "Performance baseline established", Area: areaMonitoring, Complete: r.Performance != nil},
		{Name: "End-to-end flows verified", Area: areaMonitoring, Complete: flowsVerified},
		{Name: "Error scenarios handled gracefully", Area: areaMonitoring, Complete: errorsHandled},
	}
}

func platformReady(p *domain.PlatformAnalysis) bool {
	return p != nil && (p.OverallStatus == domain.RatingPass || p.OverallStatus == domain.RatingConditional)
}

func inArea(area string) func(domain.ChecklistItem) bool {
	return func(it domain.ChecklistItem) bool { return it.Area == area }
}

func percentComplete(items []domain.ChecklistItem, include func(domain.ChecklistItem) bool) float64 {
	total, done := 0, 0
	for _, it := range items {
		if !include(it) {
			continue
		}
		total++
		if it.Complete {
			done++
		}
	}
	if total == 0 {
		return 100
	}
	return float64(done) / float64(total) * 100
}
