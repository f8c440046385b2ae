package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

var sampleReports = []types.CaseReport{
	{ID: 1, Title: "Anxiety case", CaseType: types.CaseTypeIndividual, Status: types.StatusSubmitted},
	{ID: 2, Title: "Family session", CaseType: types.CaseTypeFamily, Status: types.StatusDraft},
}

func reportIDs(reports []types.CaseReport) []int {
	var out []int
	for _, r := range reports {
		out = append(out, r.ID)
	}
	return out
}

func TestReportFilterApply(t *testing.T) {
	tests := []struct {
		name   string
		filter ReportFilter
		want   []int
	}{
		{"no facets returns all", ReportFilter{}, []int{1, 2}},
		{"search matches title", ReportFilter{SearchTerm: "anx"}, []int{1}},
		{"search is case-insensitive", ReportFilter{SearchTerm: "FAMILY"}, []int{2}},
		{"search matches case type", ReportFilter{SearchTerm: "individ"}, []int{1}},
		{"type facet", ReportFilter{CaseType: types.CaseTypeFamily}, []int{2}},
		{"status facet", ReportFilter{Status: types.StatusSubmitted}, []int{1}},
		{"conjunction with no match", ReportFilter{SearchTerm: "anx", CaseType: types.CaseTypeFamily}, nil},
		{"conjunction with match", ReportFilter{SearchTerm: "case", Status: types.StatusSubmitted}, []int{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reportIDs(tc.filter.Apply(sampleReports)))
		})
	}
}

func TestReportFilterIdempotent(t *testing.T) {
	f := ReportFilter{SearchTerm: "case", Status: types.StatusSubmitted}

	once := f.Apply(sampleReports)
	twice := f.Apply(once)
	assert.Equal(t, once, twice)

	// The snapshot itself is untouched.
	require.Len(t, sampleReports, 2)
}

func TestReportFilterActive(t *testing.T) {
	assert.False(t, ReportFilter{}.Active())
	assert.True(t, ReportFilter{Status: types.StatusDraft}.Active())
}

func TestDocumentFilterApply(t *testing.T) {
	docs := []types.Document{
		{ID: 1, Filename: "supervision-agreement.pdf", Category: types.CategorySupervision},
		{ID: 2, Filename: "GAD-7.pdf", Category: types.CategoryAssessments},
	}

	got := DocumentFilter{SearchTerm: "gad"}.Apply(docs)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got = DocumentFilter{Category: types.CategorySupervision}.Apply(docs)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// The search term also matches category names.
	got = DocumentFilter{SearchTerm: "assess"}.Apply(docs)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	assert.Empty(t, DocumentFilter{SearchTerm: "gad", Category: types.CategorySupervision}.Apply(docs))
}
