package memstore

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// MeetingStore provides CRUD over the registry's meeting collection.
type MeetingStore struct {
	r *Registry
}

// List returns copies of all meetings sorted by descending scheduled date.
func (s *MeetingStore) List() ([]types.Meeting, error) {
	s.r.pause(delayMeetingList)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return nil, types.ErrRegistryClosed
	}

	out := append([]types.Meeting(nil), s.r.meetings...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledDate.After(out[j].ScheduledDate)
	})
	return out, nil
}

// Get returns a copy of the meeting with the given id.
func (s *MeetingStore) Get(id int) (types.Meeting, error) {
	s.r.pause(delayMeetingGet)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return types.Meeting{}, types.ErrRegistryClosed
	}

	for _, rec := range s.r.meetings {
		if rec.ID == id {
			return rec, nil
		}
	}
	return types.Meeting{}, fmt.Errorf("meeting %d: %w", id, types.ErrNotFound)
}

// Create validates the draft, assigns the next id, and appends the record.
// New meetings always start incomplete. Returns a copy of the stored record.
func (s *MeetingStore) Create(draft types.MeetingDraft) (types.Meeting, error) {
	if err := draft.Validate(); err != nil {
		return types.Meeting{}, err
	}

	s.r.pause(delayMeetingCreate)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.Meeting{}, types.ErrRegistryClosed
	}

	maxID := 0
	for _, rec := range s.r.meetings {
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}

	rec := types.Meeting{
		ID:                maxID + 1,
		ScheduledDate:     draft.ScheduledDate,
		Location:          draft.Location,
		TriggerCaseNumber: draft.TriggerCaseNumber,
		Completed:         false,
		Notes:             draft.Notes,
	}

	s.r.meetings = append(s.r.meetings, rec)
	return rec, nil
}

// Update validates and applies the patch to the record with the given id.
// Returns a copy of the updated record.
func (s *MeetingStore) Update(id int, patch types.MeetingPatch) (types.Meeting, error) {
	if err := patch.Validate(); err != nil {
		return types.Meeting{}, err
	}

	s.r.pause(delayMeetingUpdate)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.Meeting{}, types.ErrRegistryClosed
	}

	for i := range s.r.meetings {
		if s.r.meetings[i].ID != id {
			continue
		}
		rec := &s.r.meetings[i]
		if patch.ScheduledDate != nil {
			rec.ScheduledDate = *patch.ScheduledDate
		}
		if patch.Location != nil {
			rec.Location = *patch.Location
		}
		if patch.TriggerCaseNumber != nil {
			rec.TriggerCaseNumber = *patch.TriggerCaseNumber
		}
		if patch.Completed != nil {
			rec.Completed = *patch.Completed
		}
		if patch.Notes != nil {
			rec.Notes = *patch.Notes
		}
		return *rec, nil
	}
	return types.Meeting{}, fmt.Errorf("meeting %d: %w", id, types.ErrNotFound)
}

// Delete removes the meeting with the given id.
func (s *MeetingStore) Delete(id int) error {
	s.r.pause(delayMeetingDelete)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.ErrRegistryClosed
	}

	for i := range s.r.meetings {
		if s.r.meetings[i].ID == id {
			s.r.meetings = append(s.r.meetings[:i], s.r.meetings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("meeting %d: %w", id, types.ErrNotFound)
}
