package thread

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casetrack/internal/memstore"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

func intPtr(v int) *int { return &v }

var (
	supervisor = types.User{ID: 1, Name: "Dr. Sarah Johnson", Role: types.RoleSupervisor, Avatar: "SJ"}
	student    = types.User{ID: 2, Name: "Mark Evans", Role: types.RoleStudent, Avatar: "ME"}
)

// threadSeed builds a thread on report 1: comment A with replies B and C,
// a reply D threaded under B (one level deeper than the view renders), and
// an unrelated comment on report 2.
func threadSeed() types.Seed {
	at := func(min int) time.Time {
		return time.Date(2025, 11, 1, 9, min, 0, 0, time.UTC)
	}
	fb := func(id, reportID int, parent *int, userID int, role, name, content string, created time.Time) types.Feedback {
		return types.Feedback{
			ID: id, ReportID: reportID, ParentID: parent,
			UserID: userID, UserRole: role, UserName: name,
			Content: content, CreatedAt: created, UpdatedAt: created,
		}
	}
	return types.Seed{
		Feedbacks: []types.Feedback{
			fb(1, 1, nil, supervisor.ID, supervisor.Role, supervisor.Name, "A", at(0)),
			fb(2, 1, intPtr(1), student.ID, student.Role, student.Name, "B", at(1)),
			fb(3, 1, intPtr(1), supervisor.ID, supervisor.Role, supervisor.Name, "C", at(2)),
			fb(4, 1, intPtr(2), supervisor.ID, supervisor.Role, supervisor.Name, "D", at(3)),
			fb(5, 2, nil, student.ID, student.Role, student.Name, "elsewhere", at(4)),
		},
	}
}

func newEngine(t *testing.T, user types.User) *Engine {
	t.Helper()
	r := memstore.NewRegistry()
	require.NoError(t, r.OpenSeed(types.Config{User: user}, threadSeed()))
	t.Cleanup(func() { _ = r.Close() })
	return NewEngine(r.Feedbacks(), user)
}

func contents(comments []Comment) []string {
	var out []string
	for _, c := range comments {
		out = append(out, c.Content)
	}
	return out
}

func TestBuildNestsOneLevel(t *testing.T) {
	got := Build(threadSeed().Feedbacks)

	// Report filtering is the store's job; Build groups whatever it is given.
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Content)
	assert.Equal(t, "elsewhere", got[1].Content)

	// B and C hang under A. D is a reply to B, which is itself a reply, so
	// it does not appear anywhere in the rendered thread.
	require.Len(t, got[0].Replies, 2)
	assert.Equal(t, "B", got[0].Replies[0].Content)
	assert.Equal(t, "C", got[0].Replies[1].Content)
	assert.Empty(t, got[1].Replies)
}

func TestBuildDropsOrphanReplies(t *testing.T) {
	got := Build([]types.Feedback{
		{ID: 7, ReportID: 1, Content: "orphan", ParentID: intPtr(99)},
	})
	assert.Empty(t, got)
}

func TestThreadFiltersByReport(t *testing.T) {
	eng := newEngine(t, supervisor)

	got, err := eng.Thread(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Content)

	other, err := eng.Thread(2)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "elsewhere", other[0].Content)
}

func TestAddAttributesActingUser(t *testing.T) {
	eng := newEngine(t, student)

	got, err := eng.Add(1, "new comment")
	require.NoError(t, err)

	require.Len(t, got, 2)
	added := got[1]
	assert.Equal(t, "new comment", added.Content)
	assert.Equal(t, student.ID, added.UserID)
	assert.Equal(t, student.Name, added.UserName)
	assert.Equal(t, types.RoleStudent, added.UserRole)
	assert.False(t, added.IsReply())
}

func TestReply(t *testing.T) {
	eng := newEngine(t, student)

	got, err := eng.Reply(1, 1, "me too")
	require.NoError(t, err)

	require.Len(t, got, 1)
	require.Len(t, got[0].Replies, 3)
	assert.Equal(t, "me too", got[0].Replies[2].Content)
}

func TestReplyToWrongReport(t *testing.T) {
	eng := newEngine(t, student)

	_, err := eng.Reply(1, 5, "crossed wires")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEditOwnComment(t *testing.T) {
	eng := newEngine(t, supervisor)

	got, err := eng.Edit(1, "A, revised")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "A, revised", got[0].Content)
	assert.True(t, got[0].Edited())
}

func TestEditSomeoneElsesComment(t *testing.T) {
	eng := newEngine(t, student)

	_, err := eng.Edit(1, "not mine")
	assert.ErrorIs(t, err, types.ErrNotOwner)

	got, err := eng.Thread(1)
	require.NoError(t, err)
	assert.Equal(t, "A", got[0].Content)
}

func TestDeleteDeclinedIsNoop(t *testing.T) {
	eng := newEngine(t, supervisor)

	got, err := eng.Delete(1, func() bool { return false })
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Content)
}

func TestDeleteCascades(t *testing.T) {
	eng := newEngine(t, supervisor)

	got, err := eng.Delete(1, func() bool { return true })
	require.NoError(t, err)
	assert.Empty(t, got)

	// The unrelated report's thread is untouched.
	other, err := eng.Thread(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"elsewhere"}, contents(other))
}

func TestDeleteMissing(t *testing.T) {
	eng := newEngine(t, supervisor)

	_, err := eng.Delete(99, nil)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
