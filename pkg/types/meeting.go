package types

import (
	"strings"
	"time"
)

// Meeting is a scheduled supervision meeting. TriggerCaseNumber references a
// case report's case number (the milestone that prompted scheduling); the
// reference is informational and not enforced.
type Meeting struct {
	ID                int       `json:"Id"`
	ScheduledDate     time.Time `json:"scheduledDate"`
	Location          string    `json:"location"`
	TriggerCaseNumber int       `json:"triggerCaseNumber"`
	Completed         bool      `json:"completed"`
	Notes             string    `json:"notes"`
}

// IsUpcoming reports whether the meeting is still pending: not completed and
// scheduled at or after now.
func (m Meeting) IsUpcoming(now time.Time) bool {
	return !m.Completed && !m.ScheduledDate.Before(now)
}

// MeetingDraft carries the caller-supplied fields for scheduling a meeting.
// New meetings always start incomplete; identity is assigned by the store.
type MeetingDraft struct {
	ScheduledDate     time.Time
	Location          string
	TriggerCaseNumber int
	Notes             string
}

// Validate checks the three required scheduling fields.
func (d MeetingDraft) Validate() error {
	if d.ScheduledDate.IsZero() {
		return ErrScheduledDateRequired
	}
	if strings.TrimSpace(d.Location) == "" {
		return ErrLocationRequired
	}
	if d.TriggerCaseNumber <= 0 {
		return ErrTriggerCaseRequired
	}
	return nil
}

// MeetingPatch is a field-level partial update. Nil fields are left
// unchanged. Marking a meeting complete is Patch{Completed: &true}.
type MeetingPatch struct {
	ScheduledDate     *time.Time
	Location          *string
	TriggerCaseNumber *int
	Completed         *bool
	Notes             *string
}

// Validate checks the fields the patch actually sets.
func (p MeetingPatch) Validate() error {
	if p.ScheduledDate != nil && p.ScheduledDate.IsZero() {
		return ErrScheduledDateRequired
	}
	if p.Location != nil && strings.TrimSpace(*p.Location) == "" {
		return ErrLocationRequired
	}
	if p.TriggerCaseNumber != nil && *p.TriggerCaseNumber <= 0 {
		return ErrTriggerCaseRequired
	}
	return nil
}
