package types

import (
	"strings"
	"time"
)

// Feedback author roles.
const (
	RoleSupervisor = "supervisor"
	RoleStudent    = "student"
	RoleOther      = "other"
)

// validRoles is the set of recognized feedback author roles.
var validRoles = map[string]bool{
	RoleSupervisor: true,
	RoleStudent:    true,
	RoleOther:      true,
}

// Feedback is a single comment on a case report. ParentID is nil for
// top-level comments and points at another feedback's Id for replies. The
// data model does not prevent chains deeper than one level; rendering nests
// exactly one level while cascade delete follows the chain all the way down.
type Feedback struct {
	ID         int       `json:"Id"`
	ReportID   int       `json:"reportId"`
	UserID     int       `json:"userId"`
	UserRole   string    `json:"userRole"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Content    string    `json:"content"`
	ParentID   *int      `json:"parentId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsReply reports whether this feedback is a reply to another one.
func (f Feedback) IsReply() bool {
	return f.ParentID != nil
}

// Edited reports whether the content was changed after creation.
func (f Feedback) Edited() bool {
	return !f.UpdatedAt.Equal(f.CreatedAt)
}

// CanEdit reports whether the acting user may edit this feedback. The rule
// is ownership by user id. It is an affordance, not an access control
// boundary; every store method works regardless of user.
func (f Feedback) CanEdit(userID int) bool {
	return f.UserID == userID
}

// Clone returns a copy whose ParentID pointer is independent of the
// receiver's.
func (f Feedback) Clone() Feedback {
	cp := f
	if f.ParentID != nil {
		parent := *f.ParentID
		cp.ParentID = &parent
	}
	return cp
}

// FeedbackDraft carries the caller-supplied fields for creating a comment or
// reply. Identity and both timestamps are assigned by the store.
type FeedbackDraft struct {
	ReportID   int
	UserID     int
	UserRole   string
	UserName   string
	UserAvatar string
	Content    string
	ParentID   *int
}

// Validate checks that content is non-blank and the role is recognized.
func (d FeedbackDraft) Validate() error {
	if strings.TrimSpace(d.Content) == "" {
		return ErrContentRequired
	}
	if !validRoles[d.UserRole] {
		return ErrRoleInvalid
	}
	return nil
}

// FeedbackPatch is a field-level partial update. Only the content can
// change after creation; authorship and threading are immutable.
type FeedbackPatch struct {
	Content *string
}

// Validate checks the fields the patch actually sets.
func (p FeedbackPatch) Validate() error {
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return ErrContentRequired
	}
	return nil
}
