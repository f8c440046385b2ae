// Package thread assembles flat feedback records into the two-level comment
// thread shown for a case report, and drives the comment lifecycle (add,
// reply, edit, delete) on behalf of the acting user.
package thread

import (
	"fmt"

	"github.com/mesh-intelligence/casetrack/internal/memstore"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// Comment is a top-level feedback entry with its direct replies attached.
// Replies to replies exist in the data model but are not nested further;
// they simply do not appear in the rendered thread.
type Comment struct {
	types.Feedback
	Replies []types.Feedback
}

// Build groups flat feedback records into top-level comments with their
// direct replies. Input order is preserved in both levels, so records sorted
// by creation time produce a chronologically ordered thread. Replies whose
// parent is absent from the input are dropped.
func Build(records []types.Feedback) []Comment {
	var out []Comment
	index := make(map[int]int)
	for _, rec := range records {
		if rec.ParentID == nil {
			index[rec.ID] = len(out)
			out = append(out, Comment{Feedback: rec})
		}
	}
	for _, rec := range records {
		if rec.ParentID == nil {
			continue
		}
		if i, ok := index[*rec.ParentID]; ok {
			out[i].Replies = append(out[i].Replies, rec)
		}
	}
	return out
}

// Engine runs thread operations for one acting user. Every mutation reloads
// and returns the full thread so callers always render fresh state.
type Engine struct {
	store *memstore.FeedbackStore
	user  types.User
}

// NewEngine creates an engine bound to the feedback store and acting user.
func NewEngine(store *memstore.FeedbackStore, user types.User) *Engine {
	return &Engine{store: store, user: user}
}

// Thread loads the thread for a case report.
func (e *Engine) Thread(reportID int) ([]Comment, error) {
	records, err := e.store.ListByReport(reportID)
	if err != nil {
		return nil, err
	}
	return Build(records), nil
}

// Add posts a new top-level comment attributed to the acting user and
// returns the updated thread.
func (e *Engine) Add(reportID int, content string) ([]Comment, error) {
	if _, err := e.store.Create(e.draft(reportID, content, nil)); err != nil {
		return nil, err
	}
	return e.Thread(reportID)
}

// Reply posts a reply to an existing comment and returns the updated thread.
// The parent must exist and belong to the same report.
func (e *Engine) Reply(reportID, parentID int, content string) ([]Comment, error) {
	parent, err := e.store.Get(parentID)
	if err != nil {
		return nil, err
	}
	if parent.ReportID != reportID {
		return nil, fmt.Errorf("feedback %d belongs to report %d: %w", parentID, parent.ReportID, types.ErrNotFound)
	}
	if _, err := e.store.Create(e.draft(reportID, content, &parentID)); err != nil {
		return nil, err
	}
	return e.Thread(reportID)
}

// Edit updates a comment's content and returns the updated thread. Only the
// author may edit.
func (e *Engine) Edit(id int, content string) ([]Comment, error) {
	rec, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	if !rec.CanEdit(e.user.ID) {
		return nil, fmt.Errorf("feedback %d: %w", id, types.ErrNotOwner)
	}
	if _, err := e.store.Update(id, types.FeedbackPatch{Content: &content}); err != nil {
		return nil, err
	}
	return e.Thread(rec.ReportID)
}

// Delete removes a comment and everything threaded under it, after asking
// confirm. A declined confirmation leaves the thread untouched and returns
// its current state.
func (e *Engine) Delete(id int, confirm func() bool) ([]Comment, error) {
	rec, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	if confirm != nil && !confirm() {
		return e.Thread(rec.ReportID)
	}
	if err := e.store.Delete(id); err != nil {
		return nil, err
	}
	return e.Thread(rec.ReportID)
}

func (e *Engine) draft(reportID int, content string, parentID *int) types.FeedbackDraft {
	return types.FeedbackDraft{
		ReportID:   reportID,
		UserID:     e.user.ID,
		UserRole:   e.user.Role,
		UserName:   e.user.Name,
		UserAvatar: e.user.Avatar,
		Content:    content,
		ParentID:   parentID,
	}
}
