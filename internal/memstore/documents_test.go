package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

func documentSeed() types.Seed {
	at := func(day int) time.Time {
		return time.Date(2025, 9, day, 8, 0, 0, 0, time.UTC)
	}
	return types.Seed{
		Documents: []types.Document{
			{ID: 1, Filename: "agreement.pdf", Category: types.CategorySupervision, FileSize: 1000, FileType: "application/pdf", UploadDate: at(1)},
			{ID: 2, Filename: "intake.docx", Category: types.CategoryCaseNotes, FileSize: 2000, FileType: "application/msword", UploadDate: at(5), RelatedCaseID: 1},
			{ID: 3, Filename: "gad-7.pdf", Category: types.CategoryAssessments, FileSize: 3000, FileType: "application/pdf", UploadDate: at(3), RelatedCaseID: 1},
		},
	}
}

func TestDocumentListSortedByUploadDateDesc(t *testing.T) {
	store := openRegistry(t, documentSeed()).Documents()

	got, err := store.List()
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestDocumentListByCategory(t *testing.T) {
	store := openRegistry(t, documentSeed()).Documents()

	got, err := store.ListByCategory(types.CategoryCaseNotes)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "intake.docx", got[0].Filename)

	none, err := store.ListByCategory("unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDocumentListRelated(t *testing.T) {
	store := openRegistry(t, documentSeed()).Documents()

	got, err := store.ListRelated(1)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Case id 0 means "unrelated" and never matches, even though records
	// with no related case carry a zero value.
	none, err := store.ListRelated(0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDocumentCreate(t *testing.T) {
	store := openRegistry(t, documentSeed()).Documents()

	created, err := store.Create(types.DocumentDraft{
		Filename: "summary.pdf", Category: types.CategorySupervision,
		FileSize: 512, FileType: "application/pdf", RelatedCaseID: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, created.ID)
	assert.False(t, created.UploadDate.IsZero())

	fetched, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestDocumentCreateValidation(t *testing.T) {
	store := openRegistry(t, documentSeed()).Documents()

	_, err := store.Create(types.DocumentDraft{Category: types.CategoryForms})
	assert.ErrorIs(t, err, types.ErrFilenameRequired)

	_, err = store.Create(types.DocumentDraft{Filename: "x.pdf"})
	assert.ErrorIs(t, err, types.ErrCategoryRequired)
}

func TestDocumentUpdateAndDelete(t *testing.T) {
	store := openRegistry(t, documentSeed()).Documents()

	related := 3
	updated, err := store.Update(1, types.DocumentPatch{RelatedCaseID: &related})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.RelatedCaseID)
	assert.Equal(t, "agreement.pdf", updated.Filename, "unset fields are untouched")

	require.NoError(t, store.Delete(1))
	_, err = store.Get(1)
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, store.Delete(1), types.ErrNotFound)
}
