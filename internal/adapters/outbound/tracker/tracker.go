package tracker

import (
	"fmt"
	"sort"

	"github.com/bleready/bleready/internal/domain"
	"github.com/bleready/bleready/internal/domain/summary"
)

const maxDeliverables = 5

// Tracker implements domain.IssueTracker with in-memory bookkeeping.
type Tracker struct{}

// New creates a Tracker.
func New() *Tracker { return &Tracker{} }

// phasePlan describes the roadmap phase built from one priority bucket.
type phasePlan struct {
	name     string
	duration string
	weeks    int
	goal     string
}

var phasePlans = [4]phasePlan{
	{"Critical Remediation", "1 week", 1, "All deployment blockers and critical issues resolved and verified"},
	{"High Priority Fixes", "2 weeks", 2, "High priority issues resolved with regression tests"},
	{"Quality Improvements", "3 weeks", 3, "Medium priority issues resolved"},
	{"Maintenance Backlog", "4 weeks", 4, "Low priority issues triaged into the maintenance backlog"},
}

// GenerateIssueDatabase registers every issue in ranked order.
// Upstream ids are kept; missing ones are assigned the lowest free BLE-NNN.
func (t *Tracker) GenerateIssueDatabase(r *domain.ValidationResult) (domain.IssueDatabase, error) {
	db := domain.IssueDatabase{
		Issues:            []domain.TrackedIssue{},
		IssuesByCategory:  make(map[domain.Category]int, len(domain.Categories)),
		IssuesByComponent: make(map[domain.Component]int),
	}
	for _, c := range domain.Categories {
		db.IssuesByCategory[c] = 0
	}

	taken := make(map[string]bool, len(r.CriticalIssues))
	for _, issue := range r.CriticalIssues {
		if issue.ID != "" {
			taken[issue.ID] = true
		}
	}
	next := 0

	for _, issue := range summary.RankIssues(r.CriticalIssues) {
		id := issue.ID
		if id == "" {
			id, next = nextFreeID(taken, next)
		}
		db.Issues = append(db.Issues, domain.TrackedIssue{
			ID:       id,
			Priority: priorityOf(issue),
			Status:   domain.IssueOpen,
			Issue:    issue,
		})
		db.IssuesByCategory[issue.Category]++
		db.IssuesByComponent[issue.Component]++
	}
	db.TotalIssues = len(db.Issues)
	return db, nil
}

// nextFreeID returns the first BLE-NNN after n that is not taken, and marks it taken.
func nextFreeID(taken map[string]bool, n int) (string, int) {
	for {
		n++
		id := fmt.Sprintf("BLE-%03d", n)
		if !taken[id] {
			taken[id] = true
			return id, n
		}
	}
}

// priorityOf maps an issue to P1..P4. Blockers are always P1.
func priorityOf(issue domain.CriticalIssue) int {
	if issue.DeploymentBlocker {
		return 1
	}
	return 5 - issue.Category.Weight()
}

// GeneratePrioritizedIssueList buckets tracked issues by priority.
func (t *Tracker) GeneratePrioritizedIssueList(db domain.IssueDatabase) (domain.PrioritizedIssueList, error) {
	list := domain.PrioritizedIssueList{
		Immediate:  []domain.TrackedIssue{},
		ShortTerm:  []domain.TrackedIssue{},
		MediumTerm: []domain.TrackedIssue{},
		LongTerm:   []domain.TrackedIssue{},
	}

	issues := append([]domain.TrackedIssue{}, db.Issues...)
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Priority < issues[j].Priority })

	for _, ti := range issues {
		switch ti.Priority {
		case 1:
			list.Immediate = append(list.Immediate, ti)
		case 2:
			list.ShortTerm = append(list.ShortTerm, ti)
		case 3:
			list.MediumTerm = append(list.MediumTerm, ti)
		case 4:
			list.LongTerm = append(list.LongTerm, ti)
		default:
			return domain.PrioritizedIssueList{}, fmt.Errorf("issue %s has invalid priority %d", ti.ID, ti.Priority)
		}
	}
	return list, nil
}

// GenerateRemediationRoadmap creates one phase per non-empty bucket, in urgency order.
func (t *Tracker) GenerateRemediationRoadmap(list domain.PrioritizedIssueList) (domain.RemediationRoadmap, error) {
	buckets := [4][]domain.TrackedIssue{list.Immediate, list.ShortTerm, list.MediumTerm, list.LongTerm}

	roadmap := domain.RemediationRoadmap{Phases: []domain.RemediationPhase{}}
	weeks := 0
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		plan := phasePlans[i]
		phase := domain.RemediationPhase{
			Name:         plan.name,
			Duration:     plan.duration,
			IssueIDs:     make([]string, 0, len(bucket)),
			Deliverables: []string{plan.goal},
		}
		seen := make(map[string]bool)
		for _, ti := range bucket {
			phase.IssueIDs = append(phase.IssueIDs, ti.ID)
			rec := ti.Issue.Recommendation
			if rec != "" && !seen[rec] && len(phase.Deliverables) < maxDeliverables {
				seen[rec] = true
				phase.Deliverables = append(phase.Deliverables, rec)
			}
		}
		roadmap.Phases = append(roadmap.Phases, phase)
		weeks += plan.weeks
	}

	if weeks == 0 {
		roadmap.TotalDuration = "No remediation required"
	} else {
		roadmap.TotalDuration = fmt.Sprintf("%d weeks across %d phase(s)", weeks, len(roadmap.Phases))
	}
	return roadmap, nil
}

// GenerateProgressTracker counts issue states and builds one milestone per phase.
func (t *Tracker) GenerateProgressTracker(db domain.IssueDatabase, roadmap domain.RemediationRoadmap) (domain.ProgressTracker, error) {
	status := make(map[string]domain.IssueStatus, len(db.Issues))
	pt := domain.ProgressTracker{
		TotalIssues: len(db.Issues),
		Milestones:  []domain.Milestone{},
	}
	for _, ti := range db.Issues {
		status[ti.ID] = ti.Status
		switch ti.Status {
		case domain.IssueResolved:
			pt.Resolved++
		case domain.IssueInProgress:
			pt.InProgress++
		default:
			pt.Open++
		}
	}
	if pt.TotalIssues > 0 {
		pt.CompletionPercentage = float64(pt.Resolved) / float64(pt.TotalIssues) * 100
	} else {
		pt.CompletionPercentage = 100
	}

	for _, phase := range roadmap.Phases {
		m := domain.Milestone{
			Name:        phase.Name + " complete",
			Phase:       phase.Name,
			TotalIssues: len(phase.IssueIDs),
		}
		for _, id := range phase.IssueIDs {
			if status[id] == domain.IssueResolved {
				m.Resolved++
			}
		}
		pt.Milestones = append(pt.Milestones, m)
	}
	return pt, nil
}
