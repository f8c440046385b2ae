// Feedback thread flow: reply nesting, the ownership rule, and transitive
// cascade delete through the thread engine.
package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casetrack/internal/thread"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

func feedbackSeed() types.Seed {
	at := func(min int) time.Time {
		return time.Date(2025, 10, 20, 10, min, 0, 0, time.UTC)
	}
	return types.Seed{
		CaseReports: []types.CaseReport{
			{ID: 1, CaseNumber: 1, Title: "Anxiety case", CaseType: types.CaseTypeIndividual,
				Status: types.StatusSubmitted, Interventions: []string{"CBT"},
				Outcomes: "Progressing", SubmissionDate: at(0), Attachments: []string{}},
		},
		Feedbacks: []types.Feedback{
			{ID: 1, ReportID: 1, UserID: 2, UserRole: types.RoleStudent,
				UserName: "Mark Evans", Content: "Initial self-review",
				CreatedAt: at(1), UpdatedAt: at(1)},
		},
	}
}

func TestFeedbackThreadFlow(t *testing.T) {
	env := NewTestEnv(t, feedbackSeed())
	supervisor := thread.NewEngine(env.Registry.Feedbacks(), env.User)

	// The supervisor comments, then replies to the student's entry.
	comments, err := supervisor.Add(1, "Good structure overall")
	require.NoError(t, err)
	require.Len(t, comments, 2)

	comments, err = supervisor.Reply(1, 1, "Consider exposure exercises next")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Len(t, comments[0].Replies, 1)
	assert.Equal(t, env.User.Name, comments[0].Replies[0].UserName)

	// The supervisor cannot edit the student's comment.
	_, err = supervisor.Edit(1, "rewritten")
	assert.ErrorIs(t, err, types.ErrNotOwner)

	// Editing their own comment marks it edited.
	comments, err = supervisor.Edit(2, "Good structure overall, well referenced")
	require.NoError(t, err)
	assert.True(t, comments[1].Edited())

	// Deleting the student's comment takes the supervisor's reply with it.
	comments, err = supervisor.Delete(1, func() bool { return true })
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, 2, comments[0].ID)
	assert.Empty(t, comments[0].Replies)
}

func TestFeedbackCascadeSkipsRenderedDepth(t *testing.T) {
	seed := feedbackSeed()
	at := func(min int) time.Time {
		return time.Date(2025, 10, 20, 11, min, 0, 0, time.UTC)
	}
	// A reply chain deeper than the thread ever renders.
	seed.Feedbacks = append(seed.Feedbacks,
		types.Feedback{ID: 2, ReportID: 1, ParentID: intPtr(1), UserID: 1,
			UserRole: types.RoleSupervisor, UserName: "Dr. Sarah Johnson",
			Content: "reply", CreatedAt: at(0), UpdatedAt: at(0)},
		types.Feedback{ID: 3, ReportID: 1, ParentID: intPtr(2), UserID: 2,
			UserRole: types.RoleStudent, UserName: "Mark Evans",
			Content: "reply to reply", CreatedAt: at(1), UpdatedAt: at(1)},
	)

	env := NewTestEnv(t, seed)
	eng := thread.NewEngine(env.Registry.Feedbacks(), env.User)

	// The grandchild never shows up in the rendered thread.
	comments, err := eng.Thread(1)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Len(t, comments[0].Replies, 1)
	assert.Equal(t, 2, comments[0].Replies[0].ID)

	// But deleting the root still removes it.
	comments, err = eng.Delete(1, func() bool { return true })
	require.NoError(t, err)
	assert.Empty(t, comments)

	records, err := env.Registry.Feedbacks().ListByReport(1)
	require.NoError(t, err)
	assert.Empty(t, records)
}
