// Package filter implements the conjunctive search and facet filters applied
// to case report and document snapshots. Filters are pure: applying one never
// mutates the snapshot, and re-applying the same filter state yields the same
// result.
package filter

import (
	"strings"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// ReportFilter holds the active facets for the case report list. Empty
// fields are inactive; active facets combine with AND.
type ReportFilter struct {
	SearchTerm string
	Status     string
	CaseType   string
}

// Active reports whether any facet is set.
func (f ReportFilter) Active() bool {
	return f.SearchTerm != "" || f.Status != "" || f.CaseType != ""
}

// Apply returns the reports matching every active facet. The search term is
// a case-insensitive substring match against title or case type; status and
// case type facets are exact matches.
func (f ReportFilter) Apply(reports []types.CaseReport) []types.CaseReport {
	var out []types.CaseReport
	for _, r := range reports {
		if f.SearchTerm != "" && !matches(f.SearchTerm, r.Title, r.CaseType) {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.CaseType != "" && r.CaseType != f.CaseType {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DocumentFilter holds the active facets for the document list.
type DocumentFilter struct {
	SearchTerm string
	Category   string
}

// Active reports whether any facet is set.
func (f DocumentFilter) Active() bool {
	return f.SearchTerm != "" || f.Category != ""
}

// Apply returns the documents matching every active facet. The search term
// matches filename or category; the category facet is exact.
func (f DocumentFilter) Apply(docs []types.Document) []types.Document {
	var out []types.Document
	for _, d := range docs {
		if f.SearchTerm != "" && !matches(f.SearchTerm, d.Filename, d.Category) {
			continue
		}
		if f.Category != "" && d.Category != f.Category {
			continue
		}
		out = append(out, d)
	}
	return out
}

// matches reports whether term is a case-insensitive substring of any field.
func matches(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
