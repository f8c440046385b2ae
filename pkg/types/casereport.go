package types

import (
	"strings"
	"time"
)

// Case types. Exactly these four counseling formats are accepted.
const (
	CaseTypeIndividual = "individual"
	CaseTypeCouples    = "couples"
	CaseTypeFamily     = "family"
	CaseTypeGroup      = "group"
)

// validCaseTypes is the set of recognized case type values.
var validCaseTypes = map[string]bool{
	CaseTypeIndividual: true,
	CaseTypeCouples:    true,
	CaseTypeFamily:     true,
	CaseTypeGroup:      true,
}

// Case report states. A report progresses through these during review.
const (
	StatusDraft       = "draft"
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under-review"
	StatusApproved    = "approved"
)

// validStatuses is the set of recognized report status values.
var validStatuses = map[string]bool{
	StatusDraft:       true,
	StatusSubmitted:   true,
	StatusUnderReview: true,
	StatusApproved:    true,
}

// MilestoneInterval is the case-number spacing between supervision
// milestones. Every report whose case number is a multiple of this value
// prompts the user to schedule a supervision meeting; no meeting is
// created automatically.
const MilestoneInterval = 5

// CaseReport is a single clinical case submission. Id and CaseNumber are
// assigned by the store as independent max+1 sequences; the JSON tags match
// the fixture format exactly.
type CaseReport struct {
	ID             int       `json:"Id"`
	CaseNumber     int       `json:"caseNumber"`
	Title          string    `json:"title"`
	CaseType       string    `json:"caseType"`
	Interventions  []string  `json:"interventions"`
	Outcomes       string    `json:"outcomes"`
	Status         string    `json:"status"`
	SubmissionDate time.Time `json:"submissionDate"`
	Attachments    []string  `json:"attachments"`
}

// IsMilestone reports whether this case sits on a supervision milestone.
func (r CaseReport) IsMilestone() bool {
	return r.CaseNumber > 0 && r.CaseNumber%MilestoneInterval == 0
}

// Clone returns a copy whose slices are independent of the receiver's.
func (r CaseReport) Clone() CaseReport {
	cp := r
	cp.Interventions = append([]string(nil), r.Interventions...)
	cp.Attachments = append([]string(nil), r.Attachments...)
	return cp
}

// CaseReportDraft carries the caller-supplied fields for creating a case
// report. Identity, case number, and submission date are assigned by the
// store.
type CaseReportDraft struct {
	Title         string
	CaseType      string
	Interventions []string
	Outcomes      string
	Status        string
	Attachments   []string
}

// Validate applies the boundary checks before a draft reaches the store:
// required title, case type, and outcomes; at least one
// non-blank intervention; enum membership for case type and status.
func (d CaseReportDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.CaseType == "" {
		return ErrCaseTypeRequired
	}
	if !validCaseTypes[d.CaseType] {
		return ErrCaseTypeInvalid
	}
	if strings.TrimSpace(d.Outcomes) == "" {
		return ErrOutcomesRequired
	}
	if len(FilterBlank(d.Interventions)) == 0 {
		return ErrInterventionsEmpty
	}
	if d.Status != "" && !validStatuses[d.Status] {
		return ErrStatusInvalid
	}
	return nil
}

// CaseReportPatch is a field-level partial update. Nil fields are left
// unchanged; identity and case number cannot be patched, so an update can
// never change which record it targets.
type CaseReportPatch struct {
	Title         *string
	CaseType      *string
	Interventions *[]string
	Outcomes      *string
	Status        *string
	Attachments   *[]string
}

// Validate checks the fields the patch actually sets.
func (p CaseReportPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrTitleRequired
	}
	if p.CaseType != nil && !validCaseTypes[*p.CaseType] {
		return ErrCaseTypeInvalid
	}
	if p.Outcomes != nil && strings.TrimSpace(*p.Outcomes) == "" {
		return ErrOutcomesRequired
	}
	if p.Interventions != nil && len(FilterBlank(*p.Interventions)) == 0 {
		return ErrInterventionsEmpty
	}
	if p.Status != nil && !validStatuses[*p.Status] {
		return ErrStatusInvalid
	}
	return nil
}

// FilterBlank returns the entries that are non-empty after trimming
// whitespace, preserving order.
func FilterBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
