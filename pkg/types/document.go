package types

import (
	"strings"
	"time"
)

// Known document categories. The category field itself is free-form;
// this list drives selection and the repository stats breakdown.
const (
	CategorySupervision = "supervision"
	CategoryCaseNotes   = "case-notes"
	CategoryAssessments = "assessments"
	CategoryForms       = "forms"
	CategoryResources   = "resources"
)

// DocumentCategories lists the offered categories in display order.
var DocumentCategories = []string{
	CategorySupervision,
	CategoryCaseNotes,
	CategoryAssessments,
	CategoryForms,
	CategoryResources,
}

// Document is a repository entry. There is no file content behind it; the
// record is the whole artifact. RelatedCaseID is 0 when the document is not
// attached to a case; a JSON null in a fixture decodes to 0.
type Document struct {
	ID            int       `json:"Id"`
	Filename      string    `json:"filename"`
	Category      string    `json:"category"`
	FileSize      int64     `json:"fileSize"`
	FileType      string    `json:"fileType"`
	UploadDate    time.Time `json:"uploadDate"`
	RelatedCaseID int       `json:"relatedCaseId"`
}

// DocumentDraft carries the caller-supplied fields for adding a document.
// Identity and upload date are assigned by the store.
type DocumentDraft struct {
	Filename      string
	Category      string
	FileSize      int64
	FileType      string
	RelatedCaseID int
}

// Validate checks required fields. Category is validated for presence only;
// unknown categories are allowed and simply fall outside the offered list.
func (d DocumentDraft) Validate() error {
	if strings.TrimSpace(d.Filename) == "" {
		return ErrFilenameRequired
	}
	if strings.TrimSpace(d.Category) == "" {
		return ErrCategoryRequired
	}
	if d.FileSize < 0 {
		return ErrFileSizeNegative
	}
	return nil
}

// DocumentPatch is a field-level partial update. Nil fields are left
// unchanged.
type DocumentPatch struct {
	Filename      *string
	Category      *string
	FileSize      *int64
	FileType      *string
	RelatedCaseID *int
}

// Validate checks the fields the patch actually sets.
func (p DocumentPatch) Validate() error {
	if p.Filename != nil && strings.TrimSpace(*p.Filename) == "" {
		return ErrFilenameRequired
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		return ErrCategoryRequired
	}
	if p.FileSize != nil && *p.FileSize < 0 {
		return ErrFileSizeNegative
	}
	return nil
}
