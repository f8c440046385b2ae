package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

func reportsWithStatuses(statuses ...string) []types.CaseReport {
	out := make([]types.CaseReport, len(statuses))
	for i, status := range statuses {
		out[i] = types.CaseReport{ID: i + 1, CaseNumber: i + 1, Status: status}
	}
	return out
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     Stats
	}{
		{
			name:     "mixed statuses",
			statuses: []string{types.StatusDraft, types.StatusSubmitted, types.StatusApproved, types.StatusUnderReview},
			want: Stats{
				TotalCases: 4, SubmittedCases: 2, ApprovedCases: 1,
				PendingReviews: 1, Progress: 50,
				NextMilestone: 5, CasesToMilestone: 1,
			},
		},
		{
			name:     "empty snapshot",
			statuses: nil,
			want:     Stats{},
		},
		{
			name:     "exactly on a milestone",
			statuses: []string{types.StatusApproved, types.StatusApproved, types.StatusApproved, types.StatusApproved, types.StatusApproved},
			want: Stats{
				TotalCases: 5, SubmittedCases: 5, ApprovedCases: 5,
				Progress:      100,
				NextMilestone: 5, CasesToMilestone: 0,
			},
		},
		{
			name:     "just past a milestone",
			statuses: []string{types.StatusDraft, types.StatusDraft, types.StatusDraft, types.StatusDraft, types.StatusDraft, types.StatusDraft},
			want: Stats{
				TotalCases:    6,
				NextMilestone: 10, CasesToMilestone: 4,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compute(reportsWithStatuses(tc.statuses...)))
		})
	}
}

func TestRecentReports(t *testing.T) {
	at := func(day int) time.Time {
		return time.Date(2025, 10, day, 0, 0, 0, 0, time.UTC)
	}
	var reports []types.CaseReport
	for i := 1; i <= 7; i++ {
		reports = append(reports, types.CaseReport{ID: i, SubmissionDate: at(i)})
	}

	got := RecentReports(reports, 5)
	require.Len(t, got, 5)
	for i, r := range got {
		assert.Equal(t, 7-i, r.ID)
	}

	// Input order survives the call.
	assert.Equal(t, 1, reports[0].ID)

	short := RecentReports(reports[:2], 5)
	assert.Len(t, short, 2)
}

func TestSplitMeetings(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	at := func(day int) time.Time {
		return time.Date(2025, 11, day, 12, 0, 0, 0, time.UTC)
	}
	meetings := []types.Meeting{
		{ID: 1, ScheduledDate: at(20)},
		{ID: 2, ScheduledDate: at(5)},
		{ID: 3, ScheduledDate: at(15), Completed: true},
		{ID: 4, ScheduledDate: at(12)},
		{ID: 5, ScheduledDate: now},
	}

	upcoming, past := SplitMeetings(meetings, now)

	// Soonest first; a meeting scheduled exactly now is still upcoming.
	require.Len(t, upcoming, 3)
	assert.Equal(t, []int{5, 4, 1}, []int{upcoming[0].ID, upcoming[1].ID, upcoming[2].ID})

	// Completed meetings are past regardless of date; most recent first.
	require.Len(t, past, 2)
	assert.Equal(t, []int{3, 2}, []int{past[0].ID, past[1].ID})
}
