package memstore

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// FeedbackStore provides CRUD over the registry's feedback collection.
// Deleting a feedback cascades to every record reachable through parentId,
// not just direct replies.
type FeedbackStore struct {
	r *Registry
}

// ListByReport returns copies of the feedback for one case report, sorted
// by ascending creation time.
func (s *FeedbackStore) ListByReport(reportID int) ([]types.Feedback, error) {
	s.r.pause(delayFeedbackList)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return nil, types.ErrRegistryClosed
	}

	var out []types.Feedback
	for _, rec := range s.r.feedbacks {
		if rec.ReportID == reportID {
			out = append(out, rec.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Get returns a copy of the feedback with the given id.
func (s *FeedbackStore) Get(id int) (types.Feedback, error) {
	s.r.pause(delayFeedbackGet)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return types.Feedback{}, types.ErrRegistryClosed
	}

	for _, rec := range s.r.feedbacks {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return types.Feedback{}, fmt.Errorf("feedback %d: %w", id, types.ErrNotFound)
}

// Create validates the draft, assigns the next id, stamps both timestamps
// with the same instant, and appends the record. Returns a copy of the
// stored record.
func (s *FeedbackStore) Create(draft types.FeedbackDraft) (types.Feedback, error) {
	if err := draft.Validate(); err != nil {
		return types.Feedback{}, err
	}

	s.r.pause(delayFeedbackCreate)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.Feedback{}, types.ErrRegistryClosed
	}

	maxID := 0
	for _, rec := range s.r.feedbacks {
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}

	now := s.r.now()
	rec := types.Feedback{
		ID:         maxID + 1,
		ReportID:   draft.ReportID,
		UserID:     draft.UserID,
		UserRole:   draft.UserRole,
		UserName:   draft.UserName,
		UserAvatar: draft.UserAvatar,
		Content:    draft.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if draft.ParentID != nil {
		parent := *draft.ParentID
		rec.ParentID = &parent
	}

	s.r.feedbacks = append(s.r.feedbacks, rec)
	return rec.Clone(), nil
}

// Update validates and applies the patch to the record with the given id,
// stamping updatedAt. Returns a copy of the updated record.
func (s *FeedbackStore) Update(id int, patch types.FeedbackPatch) (types.Feedback, error) {
	if err := patch.Validate(); err != nil {
		return types.Feedback{}, err
	}

	s.r.pause(delayFeedbackUpdate)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.Feedback{}, types.ErrRegistryClosed
	}

	for i := range s.r.feedbacks {
		if s.r.feedbacks[i].ID != id {
			continue
		}
		rec := &s.r.feedbacks[i]
		if patch.Content != nil {
			rec.Content = *patch.Content
		}
		rec.UpdatedAt = s.r.now()
		return rec.Clone(), nil
	}
	return types.Feedback{}, fmt.Errorf("feedback %d: %w", id, types.ErrNotFound)
}

// Delete removes the feedback with the given id together with every record
// transitively referencing it through parentId. The thread view only ever
// renders one level of replies, but the cascade follows the full chain so
// no orphaned replies are left behind.
func (s *FeedbackStore) Delete(id int) error {
	s.r.pause(delayFeedbackDelete)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.ErrRegistryClosed
	}

	found := false
	for _, rec := range s.r.feedbacks {
		if rec.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("feedback %d: %w", id, types.ErrNotFound)
	}

	doomed := map[int]bool{id: true}
	queue := []int{id}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, rec := range s.r.feedbacks {
			if rec.ParentID != nil && *rec.ParentID == parent && !doomed[rec.ID] {
				doomed[rec.ID] = true
				queue = append(queue, rec.ID)
			}
		}
	}

	kept := s.r.feedbacks[:0]
	for _, rec := range s.r.feedbacks {
		if !doomed[rec.ID] {
			kept = append(kept, rec)
		}
	}
	s.r.feedbacks = kept
	return nil
}
