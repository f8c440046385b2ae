package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeetingDraftValidate(t *testing.T) {
	when := time.Date(2025, 12, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		draft   MeetingDraft
		wantErr error
	}{
		{
			name:  "valid",
			draft: MeetingDraft{ScheduledDate: when, Location: "Room 4", TriggerCaseNumber: 5},
		},
		{
			name:    "missing date",
			draft:   MeetingDraft{Location: "Room 4", TriggerCaseNumber: 5},
			wantErr: ErrScheduledDateRequired,
		},
		{
			name:    "blank location",
			draft:   MeetingDraft{ScheduledDate: when, Location: " ", TriggerCaseNumber: 5},
			wantErr: ErrLocationRequired,
		},
		{
			name:    "missing trigger case",
			draft:   MeetingDraft{ScheduledDate: when, Location: "Room 4"},
			wantErr: ErrTriggerCaseRequired,
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

func TestMeetingIsUpcoming(t *testing.T) {
	now := time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)

	assert.True(t, Meeting{ScheduledDate: now.Add(24 * time.Hour)}.IsUpcoming(now))
	assert.True(t, Meeting{ScheduledDate: now}.IsUpcoming(now), "a meeting scheduled exactly now is upcoming")
	assert.False(t, Meeting{ScheduledDate: now.Add(-time.Hour)}.IsUpcoming(now))
	assert.False(t, Meeting{ScheduledDate: now.Add(24 * time.Hour), Completed: true}.IsUpcoming(now),
		"completed meetings are never upcoming")
}
