package memstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

func TestLoadSeedEmbeddedDefaults(t *testing.T) {
	seed, err := loadSeed("")
	require.NoError(t, err)

	assert.NotEmpty(t, seed.CaseReports)
	assert.NotEmpty(t, seed.Documents)
	assert.NotEmpty(t, seed.Feedbacks)
	assert.NotEmpty(t, seed.Meetings)

	// Spot-check that the fixture field names map onto the structs.
	assert.Equal(t, 1, seed.CaseReports[0].ID)
	assert.NotEmpty(t, seed.CaseReports[0].Title)
	assert.False(t, seed.Documents[0].UploadDate.IsZero())
}

func TestLoadSeedDirOverridesPerFile(t *testing.T) {
	dir := t.TempDir()
	custom := `[{"Id": 42, "filename": "only.pdf", "category": "forms",
		"fileSize": 10, "fileType": "application/pdf",
		"uploadDate": "2025-11-01T00:00:00Z", "relatedCaseId": null}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "documents.json"), []byte(custom), 0o644))

	seed, err := loadSeed(dir)
	require.NoError(t, err)

	// documents.json came from the directory; the other three fixtures fell
	// back to the embedded defaults.
	require.Len(t, seed.Documents, 1)
	assert.Equal(t, 42, seed.Documents[0].ID)
	assert.Equal(t, 0, seed.Documents[0].RelatedCaseID)
	assert.NotEmpty(t, seed.CaseReports)
	assert.NotEmpty(t, seed.Meetings)
}

func TestLoadSeedMalformedFixture(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meetings.json"), []byte("{not json"), 0o644))

	_, err := loadSeed(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse fixture meetings.json")
}

func TestOpenSeedsFromFixtures(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Open(types.Config{}))
	t.Cleanup(func() { _ = r.Close() })

	reports, err := r.CaseReports().List()
	require.NoError(t, err)
	assert.NotEmpty(t, reports)
}
