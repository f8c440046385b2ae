// Package dashboard derives the summary view from store snapshots: status
// counts, submission progress, milestone position, recent reports, and the
// upcoming/past meeting split. Everything here is a pure function of its
// inputs; the stores are queried by the caller.
package dashboard

import (
	"sort"
	"time"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// Stats summarizes a case report snapshot.
type Stats struct {
	TotalCases       int     `json:"totalCases"`
	SubmittedCases   int     `json:"submittedCases"`
	ApprovedCases    int     `json:"approvedCases"`
	PendingReviews   int     `json:"pendingReviews"`
	Progress         float64 `json:"progress"`
	NextMilestone    int     `json:"nextMilestone"`
	CasesToMilestone int     `json:"casesToMilestone"`
}

// Compute derives Stats from a report snapshot. Submitted counts both
// submitted and approved reports; progress is the submitted share as a
// percentage, 0 for an empty snapshot. The next milestone is the total
// rounded up to the nearest milestone interval.
func Compute(reports []types.CaseReport) Stats {
	s := Stats{TotalCases: len(reports)}
	for _, r := range reports {
		switch r.Status {
		case types.StatusSubmitted:
			s.SubmittedCases++
		case types.StatusApproved:
			s.SubmittedCases++
			s.ApprovedCases++
		case types.StatusUnderReview:
			s.PendingReviews++
		}
	}
	if s.TotalCases > 0 {
		s.Progress = float64(s.SubmittedCases) / float64(s.TotalCases) * 100
	}
	s.NextMilestone = (s.TotalCases + types.MilestoneInterval - 1) / types.MilestoneInterval * types.MilestoneInterval
	s.CasesToMilestone = s.NextMilestone - s.TotalCases
	return s
}

// RecentReports returns the n most recently submitted reports, descending by
// submission date. The input is not modified.
func RecentReports(reports []types.CaseReport, n int) []types.CaseReport {
	out := append([]types.CaseReport(nil), reports...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmissionDate.After(out[j].SubmissionDate)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// SplitMeetings partitions a meeting snapshot into upcoming and past.
// Upcoming meetings are incomplete and scheduled at or after now, soonest
// first; everything else is past, most recent first.
func SplitMeetings(meetings []types.Meeting, now time.Time) (upcoming, past []types.Meeting) {
	for _, m := range meetings {
		if m.IsUpcoming(now) {
			upcoming = append(upcoming, m)
		} else {
			past = append(past, m)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledDate.Before(upcoming[j].ScheduledDate)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].ScheduledDate.After(past[j].ScheduledDate)
	})
	return upcoming, past
}
