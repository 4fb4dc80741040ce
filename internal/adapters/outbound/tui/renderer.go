package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bleready/bleready/internal/domain"
)

// ── palette ──
var (
	accent  = lipgloss.Color("#2563EB") // bluetooth blue
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	lime    = lipgloss.Color("#A3E635")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	blockerStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSummary formats an executive summary for terminal output.
func RenderSummary(s *domain.ExecutiveSummary) string {
	var b strings.Builder
	renderSummary(&b, s)
	return b.String()
}

// RenderReport formats the decision-relevant parts of a full report.
func RenderReport(r *domain.ComprehensiveValidationReport) string {
	var b strings.Builder
	renderSummary(&b, &r.ExecutiveSummary)

	// ── Risk analysis ──
	b.WriteString("  " + titleStyle.Render("Risk Analysis") + "  " + riskTag(r.RiskAnalysis.OverallRiskLevel) + "\n\n")
	for _, d := range []struct {
		name string
		dim  domain.RiskDimension
	}{
		{"security", r.RiskAnalysis.Security},
		{"operational", r.RiskAnalysis.Operational},
		{"technical", r.RiskAnalysis.Technical},
		{"business", r.RiskAnalysis.Business},
	} {
		fmt.Fprintf(&b, "    %s %s  %s\n", nameStyle.Render(padRight(d.name, 14)), riskTag(d.dim.Level), dimStyle.Render(d.dim.Timeline))
		for _, issue := range d.dim.Issues {
			fmt.Fprintf(&b, "         %s\n", faintStyle.Render(issue))
		}
	}
	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Readiness ──
	rd := r.DeploymentChecklist
	b.WriteString("  " + titleStyle.Render("Deployment Readiness") + "  " + ratingStyled(rd.OverallReadiness) + "\n\n")
	fmt.Fprintf(&b, "    %s %s  %s\n", nameStyle.Render(padRight("overall", 14)), coloredBar(rd.Readiness.Overall/100, 20), dimStyle.Render(fmt.Sprintf("%.0f%%", rd.Readiness.Overall)))
	fmt.Fprintf(&b, "    %s %s  %s\n", nameStyle.Render(padRight("critical", 14)), coloredBar(rd.Readiness.CriticalItems/100, 20), dimStyle.Render(fmt.Sprintf("%.0f%%", rd.Readiness.CriticalItems)))
	for _, item := range rd.CriticalMissingItems {
		fmt.Fprintf(&b, "    %s %s\n", blockerStyle.Render("✗"), dimStyle.Render(item))
	}
	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Next steps ──
	b.WriteString("  " + titleStyle.Render("Next Steps") + "\n\n")
	for i, step := range r.NextSteps {
		fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render(fmt.Sprintf("%2d.", i+1)), step)
	}

	cov := r.Statistics.ComponentCoverage
	b.WriteString("\n")
	b.WriteString("  " + faintStyle.Render(fmt.Sprintf("report %s · coverage %d/%d (%d%%)", r.Metadata.ReportID, cov.Analyzed, cov.Total, cov.Percentage)))
	if r.Metadata.SourceRevision != "" {
		b.WriteString(faintStyle.Render(" · rev " + shortHash(r.Metadata.SourceRevision)))
	}
	b.WriteString("\n")
	return b.String()
}

func renderSummary(b *strings.Builder, s *domain.ExecutiveSummary) {
	// ── Header ──
	health := s.SystemHealthRating
	verdict := s.GoNoGoRecommendation
	title := headerStyle.Render("bleready")
	subtitle := dimStyle.Render("BLE Deployment Readiness")
	verdictStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(recommendationColor(verdict.Recommendation)).
		Render(strings.ReplaceAll(string(verdict.Recommendation), "_", "-"))
	scoreLine := fmt.Sprintf("%s  %d / 100", ratingStyled(health.Rating), int(health.Score*100+0.5))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdictStyled + "\n" + scoreLine))
	b.WriteString("\n\n")
	b.WriteString("  " + dimStyle.Render(health.Summary) + "\n\n")

	// ── Component scores ──
	for _, ns := range health.ComponentScores.Named() {
		fmt.Fprintf(b, "  %s %s  %s\n",
			nameStyle.Render(padRight(ns.Name, 16)),
			coloredBar(ns.Score, 20),
			lipgloss.NewStyle().Bold(true).Foreground(scoreColor(ns.Score)).Render(fmt.Sprintf("%.2f", ns.Score)),
		)
	}
	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Verdict detail ──
	b.WriteString("  " + titleStyle.Render("Recommendation") + "  " + riskTag(verdict.RiskLevel) + "\n\n")
	b.WriteString("    " + verdict.Justification + "\n")
	b.WriteString("    " + dimStyle.Render(verdict.Timeline) + "\n")
	for _, c := range verdict.Conditions {
		fmt.Fprintf(b, "    %s %s\n", dimStyle.Render("•"), c)
	}
	b.WriteString("\n")

	// ── Top issues ──
	if len(s.CriticalIssues) > 0 {
		b.WriteString("  " + titleStyle.Render("Top Issues") + "\n\n")
		for _, issue := range s.CriticalIssues {
			tag := categoryTag(issue.Category)
			if issue.DeploymentBlocker {
				tag += " " + blockerStyle.Render("BLOCKER")
			}
			fmt.Fprintf(b, "    %s %s %s\n", tag, dimStyle.Render(string(issue.Component)), issue.Title)
			fmt.Fprintf(b, "         %s\n", faintStyle.Render(issue.ImpactSummary+" · "+issue.RemediationSummary))
		}
	} else {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(success).Render("No issues reported.") + "\n")
	}

	conf := s.ConfidenceLevel
	b.WriteString("\n  " + dimStyle.Render(fmt.Sprintf("confidence %s (%.2f) · overall risk %s", conf.Level, conf.Score, s.RiskAssessment.OverallRiskLevel)) + "\n")
	b.WriteString("\n  " + separatorLine + "\n\n")
}

func categoryTag(c domain.Category) string {
	style := lipgloss.NewStyle().Bold(true)
	switch c {
	case domain.CategoryCritical:
		style = style.Foreground(danger)
	case domain.CategoryHigh:
		style = style.Foreground(warning)
	case domain.CategoryMedium:
		style = style.Foreground(lime)
	default:
		style = style.Foreground(dim)
	}
	return style.Render(padRight(string(c), 8))
}

func riskTag(l domain.RiskLevel) string {
	color := success
	switch l {
	case domain.RiskHigh:
		color = danger
	case domain.RiskMedium:
		color = warning
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(padRight(string(l), 6))
}

func ratingStyled(r domain.Rating) string {
	color := danger
	switch r {
	case domain.RatingPass:
		color = success
	case domain.RatingConditional:
		color = warning
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(string(r))
}

func recommendationColor(r domain.Recommendation) lipgloss.Color {
	switch r {
	case domain.RecommendGo:
		return success
	case domain.RecommendConditionalGo:
		return warning
	default:
		return danger
	}
}

// coloredBar draws a bar for a value in [0,1].
func coloredBar(value float64, width int) string {
	filled := max(0, min(int(value*float64(width)+0.5), width))
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(scoreColor(value)).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(value float64) lipgloss.Color {
	switch {
	case value >= 0.9:
		return success
	case value >= 0.7:
		return lime
	case value > 0:
		return warning
	default:
		return danger
	}
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
