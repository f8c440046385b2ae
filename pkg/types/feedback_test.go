package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   FeedbackDraft
		wantErr error
	}{
		{
			name:  "valid comment",
			draft: FeedbackDraft{ReportID: 1, UserID: 1, UserRole: RoleSupervisor, Content: "Good work"},
		},
		{
			name:  "valid student reply",
			draft: FeedbackDraft{ReportID: 1, UserID: 2, UserRole: RoleStudent, Content: "Thanks", ParentID: intPtr(4)},
		},
		{
			name:    "blank content",
			draft:   FeedbackDraft{UserRole: RoleStudent, Content: "   "},
			wantErr: ErrContentRequired,
		},
		{
			name:    "unknown role",
			draft:   FeedbackDraft{UserRole: "admin", Content: "hi"},
			wantErr: ErrRoleInvalid,
		},
		{
			name:    "empty role",
			draft:   FeedbackDraft{Content: "hi"},
			wantErr: ErrRoleInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeedbackCanEdit(t *testing.T) {
	f := Feedback{UserID: 7}
	assert.True(t, f.CanEdit(7))
	assert.False(t, f.CanEdit(1))
}

func TestFeedbackEdited(t *testing.T) {
	created := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)

	assert.False(t, Feedback{CreatedAt: created, UpdatedAt: created}.Edited())
	assert.True(t, Feedback{CreatedAt: created, UpdatedAt: created.Add(time.Minute)}.Edited())
}

func TestFeedbackClone(t *testing.T) {
	f := Feedback{ID: 2, ParentID: intPtr(1)}

	cp := f.Clone()
	*cp.ParentID = 99

	assert.Equal(t, 1, *f.ParentID, "clone must not share the parent pointer")

	top := Feedback{ID: 3}
	assert.Nil(t, top.Clone().ParentID)
	assert.False(t, top.IsReply())
	assert.True(t, f.IsReply())
}

func intPtr(v int) *int { return &v }
