package domain

// RiskRule describes how one risk dimension is classified.
// Classify returns the level and the issue titles that justify it.
type RiskRule struct {
	Classify   func() (RiskLevel, []string)
	Impact     string
	Mitigation string
	// Timeline maps the computed level to a remediation window.
	Timeline func(RiskLevel) string
}

// Evaluate applies the rule and builds the dimension record.
func (r RiskRule) Evaluate() RiskDimension {
	level, issues := r.Classify()
	if issues == nil {
		issues = []string{}
	}
	d := RiskDimension{
		Level:      level,
		Issues:     issues,
		Impact:     r.Impact,
		Mitigation: r.Mitigation,
	}
	if r.Timeline != nil {
		d.Timeline = r.Timeline(level)
	}
	return d
}

// FixedTimeline returns a Timeline func that ignores the level.
func FixedTimeline(s string) func(RiskLevel) string {
	return func(RiskLevel) string { return s }
}

// RollUpRisk combines dimension levels: HIGH if any is HIGH or more than one
// is MEDIUM, MEDIUM if exactly one is MEDIUM, LOW otherwise.
func RollUpRisk(levels ...RiskLevel) RiskLevel {
	medium := 0
	for _, l := range levels {
		switch l {
		case RiskHigh:
			return RiskHigh
		case RiskMedium:
			medium++
		}
	}
	switch {
	case medium > 1:
		return RiskHigh
	case medium == 1:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Titles extracts issue titles in order.
func Titles(issues []CriticalIssue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Title)
	}
	return out
}
